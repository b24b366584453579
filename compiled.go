package glshader

import (
	"errors"
	"fmt"

	"github.com/gogpu/glshader/internal/cstr"
)

// CompiledShader is a shader whose source compiled successfully. It owns the
// driver object of the Shader it was compiled from and is the only handle
// that can be passed on to a program.
//
// After Release the driver object is gone; queries then fail with
// ErrNotAnObject as the driver sees name 0.
type CompiledShader struct {
	shader Shader
}

// ID returns the driver name of the shader, or 0 once released.
func (c *CompiledShader) ID() uint32 { return c.shader.id }

// Kind returns the pipeline stage of the shader.
func (c *CompiledShader) Kind() Kind { return c.shader.kind }

// String returns the kind and driver name, e.g. "compiled vertex shader 1".
func (c *CompiledShader) String() string {
	return fmt.Sprintf("compiled %s shader %d", c.shader.kind, c.shader.id)
}

// SourceLength returns the length of the concatenated source uploaded to
// the shader, including the NUL terminator. A shader without source reports 0.
func (c *CompiledShader) SourceLength() (int, error) {
	drv := c.shader.drv
	n := drv.GetShaderiv(c.shader.id, ParamSourceLength)
	if code := drv.GetError(); code != NoError {
		return 0, &LengthError{Cause: lengthCause(code), ID: c.shader.id, Code: code}
	}
	return max(int(n), 0), nil
}

// Source reads back the source uploaded to the shader.
//
// The buffer is sized from SourceLength before the driver fills it, so the
// result is never truncated.
func (c *CompiledShader) Source() (string, error) {
	n, err := c.SourceLength()
	if err != nil {
		return "", &SourceError{Cause: SourceLengthUnavailable, ID: c.shader.id, Err: err}
	}

	drv := c.shader.drv
	buf := make([]byte, n)
	drv.GetShaderSource(c.shader.id, buf, nil)
	if code := drv.GetError(); code != NoError {
		return "", &SourceError{Cause: fillCause(code), ID: c.shader.id, Code: code}
	}

	src, err := cstr.String(buf)
	if err != nil {
		cause := SourceInvalidText
		if errors.Is(err, cstr.ErrMissingTerminator) {
			cause = SourceMissingTerminator
		}
		return "", &SourceError{Cause: cause, ID: c.shader.id, Err: err}
	}
	return src, nil
}

// Release deletes the driver object. Only the first call has an effect.
func (c *CompiledShader) Release() {
	if c.shader.state != stateLive {
		return
	}
	c.shader.release()
}

// Released reports whether Release has been called.
func (c *CompiledShader) Released() bool {
	return c.shader.state == stateReleased
}
