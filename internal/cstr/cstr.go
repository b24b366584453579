// Package cstr converts between Go strings and the NUL-terminated byte
// strings exchanged with graphics drivers.
package cstr

import (
	"bytes"
	"errors"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

var (
	// ErrInteriorNul is returned when a string cannot be represented as a
	// C string because it contains a NUL byte.
	ErrInteriorNul = errors.New("cstr: interior NUL byte")

	// ErrMissingTerminator is returned when a driver buffer does not end in
	// exactly one NUL byte.
	ErrMissingTerminator = errors.New("cstr: buffer is not NUL-terminated")

	// ErrInvalidUTF8 is returned when the bytes before the terminator are not
	// valid UTF-8.
	ErrInvalidUTF8 = errors.New("cstr: invalid UTF-8")
)

// Bytes returns s as a NUL-terminated byte slice.
func Bytes(s string) ([]byte, error) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return nil, &NulError{Pos: i}
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b, nil
}

// NulError reports the position of the first NUL byte found in a string
// passed to Bytes.
type NulError struct {
	Pos int
}

func (e *NulError) Error() string {
	return "cstr: interior NUL byte at position " + strconv.Itoa(e.Pos)
}

// Is reports whether target is ErrInteriorNul.
func (e *NulError) Is(target error) bool { return target == ErrInteriorNul }

// String converts a NUL-terminated buffer to text. The buffer must hold
// exactly one NUL byte, in its last position, and the bytes before it must
// be valid UTF-8.
func String(buf []byte) (string, error) {
	i := bytes.IndexByte(buf, 0)
	if i < 0 || i != len(buf)-1 {
		return "", ErrMissingTerminator
	}
	s, _, err := transform.Bytes(encoding.UTF8Validator, buf[:i])
	if err != nil {
		return "", ErrInvalidUTF8
	}
	return string(s), nil
}
