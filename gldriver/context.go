package gldriver

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/glshader"
)

// ErrClosed is returned by Context methods after Close.
var ErrClosed = errors.New("gldriver: context closed")

// Context is an OpenGL 4.3 core context on a hidden window.
// It must be created, used and closed on one locked OS thread.
type Context struct {
	win *glfw.Window
}

// NewHeadless initializes GLFW, creates a hidden 1x1 window with an
// OpenGL 4.3 core profile context and makes it current on the calling thread.
func NewHeadless() (*Context, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("gldriver: glfw init: %w", err)
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(1, 1, "glshader", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("gldriver: create window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gldriver: gl init: %w", err)
	}

	glshader.Logger().Debug("gldriver: context created",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return &Context{win: win}, nil
}

// Driver returns the driver for this context.
func (c *Context) Driver() glshader.Driver { return Driver{} }

// Version returns the GL_VERSION string of the context.
func (c *Context) Version() (string, error) {
	if c.win == nil {
		return "", ErrClosed
	}
	return gl.GoStr(gl.GetString(gl.VERSION)), nil
}

// Close destroys the window and terminates GLFW. Shaders created on the
// context must be released before Close.
func (c *Context) Close() {
	if c.win == nil {
		return
	}
	c.win.Destroy()
	c.win = nil
	glfw.Terminate()
}
