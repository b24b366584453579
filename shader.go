package glshader

import (
	"errors"
	"fmt"

	"github.com/gogpu/glshader/internal/cstr"
)

type handleState uint8

const (
	stateLive handleState = iota
	stateConsumed
	stateReleased
)

// Shader is a driver shader object that has been created but not compiled.
//
// The only transition out of this state is Compile, which consumes the
// Shader: on success its driver object moves into the returned
// CompiledShader, on failure the object is deleted. Either way the Shader is
// invalid afterwards, ID returns 0 and Release does nothing. This makes the
// usual pattern safe:
//
//	sh, err := glshader.New(drv, glshader.Vertex)
//	if err != nil {
//	    return err
//	}
//	defer sh.Release() // no-op once compiled
//
//	cs, err := sh.Compile(src)
//	if err != nil {
//	    return err
//	}
//	defer cs.Release()
//
// A Shader must only be used on the thread that owns the driver context.
type Shader struct {
	drv   Driver
	id    uint32
	kind  Kind
	opts  options
	state handleState
}

// New creates a shader object of the given kind.
func New(drv Driver, kind Kind, opts ...Option) (*Shader, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	id := drv.CreateShader(kind.Code())
	if id == 0 {
		code := drv.GetError()
		err := &CreateError{Cause: createCause(code), Kind: kind, Code: code}
		o.log().Debug("glshader: create failed", "kind", kind, "code", code)
		return nil, err
	}

	o.log().Debug("glshader: shader created", "id", id, "kind", kind)
	return &Shader{drv: drv, id: id, kind: kind, opts: o}, nil
}

// ID returns the driver name of the shader, or 0 once it has been consumed
// or released.
func (s *Shader) ID() uint32 { return s.id }

// Kind returns the pipeline stage the shader was created for.
func (s *Shader) Kind() Kind { return s.kind }

// String returns the kind and driver name, e.g. "vertex shader 1".
func (s *Shader) String() string {
	return fmt.Sprintf("%s shader %d", s.kind, s.id)
}

// Compile uploads src as the shader's only source string, compiles it and
// checks the compile status. It consumes s whatever the outcome.
//
// If the driver reports a compilation failure the returned *CompileError has
// Cause CompileFailed and carries the compile log.
func (s *Shader) Compile(src string) (*CompiledShader, error) {
	if s.state != stateLive {
		return nil, &CompileError{Cause: CompileConsumed, Kind: s.kind}
	}

	cs, err := s.compile(src)
	if err != nil {
		s.opts.log().Debug("glshader: compile failed", "id", s.id, "kind", s.kind, "err", err)
		s.release()
		return nil, err
	}

	s.opts.log().Debug("glshader: shader compiled", "id", cs.ID(), "kind", s.kind)
	s.id = 0
	s.state = stateConsumed
	return cs, nil
}

func (s *Shader) compile(src string) (*CompiledShader, error) {
	csrc, err := cstr.Bytes(src)
	if err != nil {
		return nil, s.compileError(CompileInvalidSource, NoError, err)
	}

	s.drv.ShaderSource(s.id, [][]byte{csrc})
	if code := s.drv.GetError(); code != NoError {
		return nil, s.compileError(uploadCause(code), code, nil)
	}

	s.drv.CompileShader(s.id)
	if code := s.drv.GetError(); code != NoError {
		return nil, s.compileError(compileCause(code), code, nil)
	}

	status := s.drv.GetShaderiv(s.id, ParamCompileStatus)
	if code := s.drv.GetError(); code != NoError {
		return nil, s.compileError(CompileStatusUnknown, code, nil)
	}
	if status == 0 {
		return nil, s.failure()
	}

	return &CompiledShader{shader: *s}, nil
}

// failure reads the compile log into a fixed-capacity buffer and returns the
// resulting error. The driver reports the length it wrote without the
// terminator; the buffer is cut one byte past that, never beyond its
// capacity.
func (s *Shader) failure() *CompileError {
	capacity := s.opts.logCapacity
	buf := make([]byte, capacity)
	n := max(int(s.drv.GetShaderInfoLog(s.id, buf)), 0)
	if code := s.drv.GetError(); code != NoError {
		return s.compileError(CompileLogUnknown, code, nil)
	}
	if n+1 >= capacity {
		s.opts.log().Warn("glshader: compile log may be truncated",
			"id", s.id, "kind", s.kind, "capacity", capacity)
	}

	log, err := cstr.String(buf[:min(n+1, capacity)])
	if err != nil {
		cause := CompileLogInvalidText
		if errors.Is(err, cstr.ErrMissingTerminator) {
			cause = CompileLogMissingTerminator
		}
		return s.compileError(cause, NoError, err)
	}
	cerr := s.compileError(CompileFailed, NoError, nil)
	cerr.Log = log
	return cerr
}

func (s *Shader) compileError(cause CompileCause, code ErrorCode, err error) *CompileError {
	return &CompileError{Cause: cause, ID: s.id, Kind: s.kind, Code: code, Err: err}
}

// Release deletes the driver object. It is safe to call more than once and
// does nothing after Compile.
func (s *Shader) Release() {
	if s.state != stateLive {
		return
	}
	s.release()
}

func (s *Shader) release() {
	s.opts.log().Debug("glshader: shader released", "id", s.id, "kind", s.kind)
	s.drv.DeleteShader(s.id)
	s.id = 0
	s.state = stateReleased
}
