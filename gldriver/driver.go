// Package gldriver implements glshader.Driver on a real OpenGL 4.3 core
// context through go-gl.
//
// OpenGL calls must come from the thread that owns the context. Programs
// should lock the main goroutine to its OS thread in an init function and
// create the context and all shaders from it:
//
//	func init() { runtime.LockOSThread() }
//
//	func main() {
//	    ctx, err := gldriver.NewHeadless()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer ctx.Close()
//	    sh, err := glshader.New(ctx.Driver(), glshader.Vertex)
//	    ...
//	}
package gldriver

import (
	"github.com/go-gl/gl/v4.3-core/gl"

	"github.com/gogpu/glshader"
)

// Driver calls straight into the current OpenGL context.
// The zero value is ready to use once gl.Init has succeeded.
type Driver struct{}

var _ glshader.Driver = Driver{}

// CreateShader implements glshader.Driver.
func (Driver) CreateShader(kind uint32) uint32 {
	return gl.CreateShader(kind)
}

// GetError implements glshader.Driver.
func (Driver) GetError() glshader.ErrorCode {
	return glshader.ErrorCode(gl.GetError())
}

// ShaderSource implements glshader.Driver.
func (Driver) ShaderSource(id uint32, sources [][]byte) {
	if len(sources) == 0 {
		gl.ShaderSource(id, 0, nil, nil)
		return
	}
	strs := make([]string, len(sources))
	for i, s := range sources {
		strs[i] = string(s)
	}
	// gl.Strs copies into C memory; the Go slices may not be passed to
	// cgo as a pointer-to-pointer.
	csources, free := gl.Strs(strs...)
	defer free()
	gl.ShaderSource(id, int32(len(strs)), csources, nil)
}

// CompileShader implements glshader.Driver.
func (Driver) CompileShader(id uint32) {
	gl.CompileShader(id)
}

// GetShaderiv implements glshader.Driver.
func (Driver) GetShaderiv(id uint32, pname glshader.Param) int32 {
	var v int32
	gl.GetShaderiv(id, uint32(pname), &v)
	return v
}

// GetShaderInfoLog implements glshader.Driver.
func (Driver) GetShaderInfoLog(id uint32, buf []byte) int32 {
	if len(buf) == 0 {
		return 0
	}
	var n int32
	gl.GetShaderInfoLog(id, int32(len(buf)), &n, &buf[0])
	return n
}

// GetShaderSource implements glshader.Driver.
func (Driver) GetShaderSource(id uint32, buf []byte, length *int32) {
	if len(buf) == 0 {
		if length != nil {
			*length = 0
		}
		return
	}
	gl.GetShaderSource(id, int32(len(buf)), length, &buf[0])
}

// DeleteShader implements glshader.Driver.
func (Driver) DeleteShader(id uint32) {
	gl.DeleteShader(id)
}
