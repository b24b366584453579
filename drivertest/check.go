package drivertest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gogpu/glshader"
)

var mainRe = regexp.MustCompile(`\bvoid\s+main\s*\(\s*(void\s*)?\)`)

var closers = map[byte]byte{')': '(', ']': '[', '}': '{'}

type position struct {
	line, col int
}

// Check is the default compiler of the fake driver. It accepts source whose
// brackets balance and that defines "void main()", and reports every other
// source as failed with a log in the "0:line(col): error: ..." format used
// by common GLSL compilers. Comments are skipped. The kind only appears in
// log messages.
func Check(kind glshader.Kind, src string) (bool, string) {
	var (
		errs  []string
		stack []byte
		opens []position
		pos   = position{line: 1, col: 1}
	)
	report := func(p position, format string, args ...any) {
		errs = append(errs, fmt.Sprintf("0:%d(%d): error: ", p.line, p.col)+fmt.Sprintf(format, args...))
	}

	code := stripComments(src)
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch c {
		case '(', '[', '{':
			stack = append(stack, c)
			opens = append(opens, pos)
		case ')', ']', '}':
			if len(stack) == 0 || stack[len(stack)-1] != closers[c] {
				report(pos, "syntax error, unexpected '%c'", c)
			} else {
				stack = stack[:len(stack)-1]
				opens = opens[:len(opens)-1]
			}
		}
		if c == '\n' {
			pos.line++
			pos.col = 1
		} else {
			pos.col++
		}
	}
	for i := range stack {
		report(opens[i], "unmatched '%c'", stack[i])
	}
	if !mainRe.MatchString(code) {
		report(pos, "%s shader has no main function", kind)
	}

	if len(errs) == 0 {
		return true, ""
	}
	return false, strings.Join(errs, "\n") + "\n"
}

// stripComments blanks out // and /* */ comments, keeping newlines so that
// positions in the result match the input.
func stripComments(src string) string {
	b := []byte(src)
	for i := 0; i < len(b); i++ {
		if b[i] != '/' || i+1 >= len(b) {
			continue
		}
		switch b[i+1] {
		case '/':
			for ; i < len(b) && b[i] != '\n'; i++ {
				b[i] = ' '
			}
		case '*':
			b[i], b[i+1] = ' ', ' '
			for i += 2; i < len(b); i++ {
				if b[i] == '*' && i+1 < len(b) && b[i+1] == '/' {
					b[i], b[i+1] = ' ', ' '
					i++
					break
				}
				if b[i] != '\n' {
					b[i] = ' '
				}
			}
		}
	}
	return string(b)
}
