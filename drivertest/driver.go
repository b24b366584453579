// Package drivertest provides an in-memory glshader.Driver for tests.
//
// The fake follows the OpenGL error model: a failing call has no effect and
// records an error code, the first recorded code sticks until GetError reads
// it. Shader sources are checked by a small syntax checker (see Check), so
// tests can exercise both successful and failing compilation without a GPU.
//
//	drv := drivertest.New()
//	sh, _ := glshader.New(drv, glshader.Vertex)
//	cs, _ := sh.Compile("void main(){}")
//	cs.Release()
//	drv.Deletes(1) // 1
package drivertest

import (
	"bytes"
	"fmt"

	"github.com/gogpu/glshader"
)

// Op identifies a Driver method for error injection and call counting.
type Op uint8

// Driver operations.
const (
	OpCreateShader Op = iota
	OpGetError
	OpShaderSource
	OpCompileShader
	OpGetShaderiv
	OpGetShaderInfoLog
	OpGetShaderSource
	OpDeleteShader
	opCount
)

var opNames = [opCount]string{
	OpCreateShader:     "CreateShader",
	OpGetError:         "GetError",
	OpShaderSource:     "ShaderSource",
	OpCompileShader:    "CompileShader",
	OpGetShaderiv:      "GetShaderiv",
	OpGetShaderInfoLog: "GetShaderInfoLog",
	OpGetShaderSource:  "GetShaderSource",
	OpDeleteShader:     "DeleteShader",
}

// String returns the name of the Driver method.
func (op Op) String() string {
	if op < opCount {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

type object struct {
	shader    bool
	kind      glshader.Kind
	source    []byte
	hasSource bool
	compiled  bool
	log       string
}

// Driver is an in-memory implementation of glshader.Driver.
// It is not safe for concurrent use, like the contexts it stands in for.
type Driver struct {
	objects  map[uint32]*object
	next     uint32
	err      glshader.ErrorCode
	inject   map[Op][]glshader.ErrorCode
	rejected map[uint32]bool
	deletes  map[uint32]int
	calls    [opCount]int

	// Compiler decides whether a source compiles and produces its log.
	// Defaults to Check.
	Compiler func(kind glshader.Kind, src string) (ok bool, log string)

	// InfoLogHook, if set, is called after GetShaderInfoLog fills buf and
	// returns the length to report instead of n.
	InfoLogHook func(buf []byte, n int32) int32

	// SourceHook, if set, is called after GetShaderSource fills buf.
	SourceHook func(buf []byte)
}

var _ glshader.Driver = (*Driver)(nil)

// New returns an empty driver. Object names start at 1.
func New() *Driver {
	return &Driver{
		objects:  make(map[uint32]*object),
		next:     1,
		inject:   make(map[Op][]glshader.ErrorCode),
		rejected: make(map[uint32]bool),
		deletes:  make(map[uint32]int),
		Compiler: Check,
	}
}

// RejectKind makes CreateShader fail with GL_INVALID_ENUM for k, as a
// driver without support for that stage would.
func (d *Driver) RejectKind(k glshader.Kind) {
	d.rejected[k.Code()] = true
}

// FailNext makes the next call to op fail with code. Calls queue up, so
// FailNext can be used repeatedly to fail several consecutive calls.
func (d *Driver) FailNext(op Op, code glshader.ErrorCode) {
	d.inject[op] = append(d.inject[op], code)
}

// CreateProgram allocates a non-shader object. Shader calls on its name fail
// with GL_INVALID_OPERATION.
func (d *Driver) CreateProgram() uint32 {
	return d.alloc(&object{})
}

// Deletes returns how many times DeleteShader was called with id.
func (d *Driver) Deletes(id uint32) int { return d.deletes[id] }

// Live returns the number of shader objects that have not been deleted.
func (d *Driver) Live() int {
	n := 0
	for _, obj := range d.objects {
		if obj.shader {
			n++
		}
	}
	return n
}

// Calls returns how many times op was called.
func (d *Driver) Calls(op Op) int {
	if op >= opCount {
		return 0
	}
	return d.calls[op]
}

// Source returns the stored source of shader id without a terminator.
func (d *Driver) Source(id uint32) (string, bool) {
	obj, ok := d.objects[id]
	if !ok || !obj.shader || !obj.hasSource {
		return "", false
	}
	return string(obj.source), true
}

// PendingError returns the recorded error without clearing it.
func (d *Driver) PendingError() glshader.ErrorCode { return d.err }

func (d *Driver) alloc(obj *object) uint32 {
	id := d.next
	d.next++
	d.objects[id] = obj
	return id
}

func (d *Driver) setError(code glshader.ErrorCode) {
	if d.err == glshader.NoError {
		d.err = code
	}
}

// enter counts the call and reports whether an injected failure fired.
func (d *Driver) enter(op Op) bool {
	d.calls[op]++
	q := d.inject[op]
	if len(q) == 0 {
		return false
	}
	d.setError(q[0])
	d.inject[op] = q[1:]
	return true
}

// lookup resolves a shader name, recording the GL error for bad names.
func (d *Driver) lookup(id uint32) (*object, bool) {
	obj, ok := d.objects[id]
	if !ok {
		d.setError(glshader.InvalidValue)
		return nil, false
	}
	if !obj.shader {
		d.setError(glshader.InvalidOperation)
		return nil, false
	}
	return obj, true
}

// CreateShader implements glshader.Driver.
func (d *Driver) CreateShader(kind uint32) uint32 {
	if d.enter(OpCreateShader) {
		return 0
	}
	k, ok := glshader.KindFromCode(kind)
	if !ok || d.rejected[kind] {
		d.setError(glshader.InvalidEnum)
		return 0
	}
	return d.alloc(&object{shader: true, kind: k})
}

// GetError implements glshader.Driver.
func (d *Driver) GetError() glshader.ErrorCode {
	d.calls[OpGetError]++
	code := d.err
	d.err = glshader.NoError
	return code
}

// ShaderSource implements glshader.Driver.
func (d *Driver) ShaderSource(id uint32, sources [][]byte) {
	if d.enter(OpShaderSource) {
		return
	}
	obj, ok := d.lookup(id)
	if !ok {
		return
	}
	var src []byte
	for _, s := range sources {
		if i := bytes.IndexByte(s, 0); i >= 0 {
			s = s[:i]
		}
		src = append(src, s...)
	}
	obj.source = src
	obj.hasSource = true
}

// CompileShader implements glshader.Driver.
func (d *Driver) CompileShader(id uint32) {
	if d.enter(OpCompileShader) {
		return
	}
	obj, ok := d.lookup(id)
	if !ok {
		return
	}
	compiler := d.Compiler
	if compiler == nil {
		compiler = Check
	}
	obj.compiled, obj.log = compiler(obj.kind, string(obj.source))
}

// GetShaderiv implements glshader.Driver.
func (d *Driver) GetShaderiv(id uint32, pname glshader.Param) int32 {
	if d.enter(OpGetShaderiv) {
		return 0
	}
	obj, ok := d.lookup(id)
	if !ok {
		return 0
	}
	switch pname {
	case glshader.ParamShaderType:
		return int32(obj.kind.Code())
	case glshader.ParamDeleteStatus:
		return 0
	case glshader.ParamCompileStatus:
		if obj.compiled {
			return 1
		}
		return 0
	case glshader.ParamInfoLogLength:
		if obj.log == "" {
			return 0
		}
		return int32(len(obj.log) + 1)
	case glshader.ParamSourceLength:
		if !obj.hasSource {
			return 0
		}
		return int32(len(obj.source) + 1)
	default:
		d.setError(glshader.InvalidEnum)
		return 0
	}
}

// GetShaderInfoLog implements glshader.Driver.
func (d *Driver) GetShaderInfoLog(id uint32, buf []byte) int32 {
	if d.enter(OpGetShaderInfoLog) {
		return 0
	}
	obj, ok := d.lookup(id)
	if !ok {
		return 0
	}
	n := fill(buf, []byte(obj.log))
	if d.InfoLogHook != nil {
		n = d.InfoLogHook(buf, n)
	}
	return n
}

// GetShaderSource implements glshader.Driver.
func (d *Driver) GetShaderSource(id uint32, buf []byte, length *int32) {
	if d.enter(OpGetShaderSource) {
		return
	}
	obj, ok := d.lookup(id)
	if !ok {
		return
	}
	n := fill(buf, obj.source)
	if d.SourceHook != nil {
		d.SourceHook(buf)
	}
	if length != nil {
		*length = n
	}
}

// DeleteShader implements glshader.Driver.
func (d *Driver) DeleteShader(id uint32) {
	if d.enter(OpDeleteShader) {
		return
	}
	if id == 0 {
		return
	}
	d.deletes[id]++
	if _, ok := d.lookup(id); !ok {
		return
	}
	delete(d.objects, id)
}

// fill copies as much of src as fits in buf with a NUL terminator and
// returns the number of bytes copied, excluding the terminator.
func fill(buf, src []byte) int32 {
	if len(buf) == 0 {
		return 0
	}
	n := copy(buf[:len(buf)-1], src)
	buf[n] = 0
	return int32(n)
}
