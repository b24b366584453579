package glshader

import "fmt"

// Driver is the subset of an OpenGL-style driver that shaders need.
//
// Every method is a synchronous call into the current context. Failures are
// not returned directly; they set the driver's error flag, which is read and
// cleared by GetError. Implementations are bound to the thread that owns the
// context and need not be safe for concurrent use.
//
// The gldriver package implements Driver on a real OpenGL context and the
// drivertest package provides an in-memory fake.
type Driver interface {
	// CreateShader allocates a shader object of the given stage enumerant
	// and returns its name, or 0 on failure.
	CreateShader(kind uint32) uint32

	// GetError returns and clears the oldest recorded error.
	GetError() ErrorCode

	// ShaderSource replaces the source of shader id. Each element of
	// sources is NUL-terminated.
	ShaderSource(id uint32, sources [][]byte)

	// CompileShader compiles the current source of shader id.
	CompileShader(id uint32)

	// GetShaderiv returns the value of pname for shader id. On error the
	// result is 0.
	GetShaderiv(id uint32, pname Param) int32

	// GetShaderInfoLog writes at most len(buf) bytes of the info log,
	// including the NUL terminator, and returns the number of bytes written
	// excluding the terminator.
	GetShaderInfoLog(id uint32, buf []byte) int32

	// GetShaderSource writes at most len(buf) bytes of the concatenated
	// source, including the NUL terminator. If length is non-nil it receives
	// the number of bytes written excluding the terminator.
	GetShaderSource(id uint32, buf []byte, length *int32)

	// DeleteShader flags shader id for deletion. Deleting 0 is ignored.
	DeleteShader(id uint32)
}

// ErrorCode is a value reported by Driver.GetError.
type ErrorCode uint32

// Error codes, with their OpenGL values.
const (
	NoError                     ErrorCode = 0
	InvalidEnum                 ErrorCode = 0x0500
	InvalidValue                ErrorCode = 0x0501
	InvalidOperation            ErrorCode = 0x0502
	StackOverflow               ErrorCode = 0x0503
	StackUnderflow              ErrorCode = 0x0504
	OutOfMemory                 ErrorCode = 0x0505
	InvalidFramebufferOperation ErrorCode = 0x0506
	ContextLost                 ErrorCode = 0x0507
)

// String returns the OpenGL name of the code, e.g. "GL_INVALID_VALUE".
func (c ErrorCode) String() string {
	switch c {
	case NoError:
		return "GL_NO_ERROR"
	case InvalidEnum:
		return "GL_INVALID_ENUM"
	case InvalidValue:
		return "GL_INVALID_VALUE"
	case InvalidOperation:
		return "GL_INVALID_OPERATION"
	case StackOverflow:
		return "GL_STACK_OVERFLOW"
	case StackUnderflow:
		return "GL_STACK_UNDERFLOW"
	case OutOfMemory:
		return "GL_OUT_OF_MEMORY"
	case InvalidFramebufferOperation:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case ContextLost:
		return "GL_CONTEXT_LOST"
	default:
		return fmt.Sprintf("ErrorCode(0x%04X)", uint32(c))
	}
}

// Param names a shader parameter for Driver.GetShaderiv.
type Param uint32

// Shader parameters, with their OpenGL values.
const (
	ParamShaderType    Param = 0x8B4F // GL_SHADER_TYPE
	ParamDeleteStatus  Param = 0x8B80 // GL_DELETE_STATUS
	ParamCompileStatus Param = 0x8B81 // GL_COMPILE_STATUS
	ParamInfoLogLength Param = 0x8B84 // GL_INFO_LOG_LENGTH
	ParamSourceLength  Param = 0x8B88 // GL_SHADER_SOURCE_LENGTH
)

// String returns the OpenGL name of the parameter.
func (p Param) String() string {
	switch p {
	case ParamShaderType:
		return "GL_SHADER_TYPE"
	case ParamDeleteStatus:
		return "GL_DELETE_STATUS"
	case ParamCompileStatus:
		return "GL_COMPILE_STATUS"
	case ParamInfoLogLength:
		return "GL_INFO_LOG_LENGTH"
	case ParamSourceLength:
		return "GL_SHADER_SOURCE_LENGTH"
	default:
		return fmt.Sprintf("Param(0x%04X)", uint32(p))
	}
}
