package glshader

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared by the per-operation error types. Every error
// returned by this package matches the sentinel of its cause with errors.Is,
// so callers that do not care which call failed can test for a cause
// directly.
var (
	// ErrInvalidKind is returned when the driver rejects a stage enumerant.
	ErrInvalidKind = errors.New("glshader: invalid shader kind")

	// ErrNotAnObject is returned when an id is not a driver object.
	ErrNotAnObject = errors.New("glshader: not an OpenGL object")

	// ErrNotAShader is returned when an id names an object that is not a shader.
	ErrNotAShader = errors.New("glshader: object is not a shader")

	// ErrInvalidQueryEnum is returned when the driver rejects a parameter name.
	ErrInvalidQueryEnum = errors.New("glshader: invalid query enum")

	// ErrUnknown is returned for driver error codes a call does not document.
	ErrUnknown = errors.New("glshader: unknown driver error")

	// ErrInvalidSource is returned when shader source contains a NUL byte.
	ErrInvalidSource = errors.New("glshader: source contains a NUL byte")

	// ErrCompilationFailed is returned when the driver reports that the
	// source did not compile.
	ErrCompilationFailed = errors.New("glshader: compilation failed")

	// ErrMissingTerminator is returned when a driver-written string is not
	// NUL-terminated.
	ErrMissingTerminator = errors.New("glshader: driver string is not NUL-terminated")

	// ErrInvalidText is returned when a driver-written string is not UTF-8.
	ErrInvalidText = errors.New("glshader: driver string is not valid UTF-8")

	// ErrLengthUnavailable is returned when the source length query needed to
	// size a buffer fails.
	ErrLengthUnavailable = errors.New("glshader: source length unavailable")

	// ErrConsumed is returned when a Shader is used after Compile.
	ErrConsumed = errors.New("glshader: shader already consumed")
)

// CreateCause enumerates why New failed.
type CreateCause uint8

const (
	// CreateInvalidKind means the driver rejected the stage enumerant.
	CreateInvalidKind CreateCause = iota
	// CreateUnknown covers every other failure.
	CreateUnknown
)

func (c CreateCause) sentinel() error {
	if c == CreateInvalidKind {
		return ErrInvalidKind
	}
	return ErrUnknown
}

// CreateError is returned by New.
type CreateError struct {
	Cause CreateCause
	Kind  Kind
	Code  ErrorCode
}

func (e *CreateError) Error() string {
	if e.Cause == CreateInvalidKind {
		return fmt.Sprintf("glshader: create %s shader: invalid shader kind (%s)", e.Kind, e.Code)
	}
	return fmt.Sprintf("glshader: create %s shader: unknown error (%s)", e.Kind, e.Code)
}

// Is reports whether target is the sentinel for e.Cause.
func (e *CreateError) Is(target error) bool { return target == e.Cause.sentinel() }

// createCause maps the error code reported after CreateShader.
func createCause(code ErrorCode) CreateCause {
	if code == InvalidEnum {
		return CreateInvalidKind
	}
	return CreateUnknown
}

// CompileCause enumerates why Shader.Compile failed. Upload failures and
// compile-call failures are kept apart so a caller can tell which driver
// call rejected the shader.
type CompileCause uint8

const (
	// CompileInvalidSource means the source contains a NUL byte.
	CompileInvalidSource CompileCause = iota
	// CompileUploadNotAnObject means ShaderSource reported GL_INVALID_VALUE.
	CompileUploadNotAnObject
	// CompileUploadNotAShader means ShaderSource reported GL_INVALID_OPERATION.
	CompileUploadNotAShader
	// CompileUploadUnknown means ShaderSource reported another error.
	CompileUploadUnknown
	// CompileNotAnObject means CompileShader reported GL_INVALID_VALUE.
	CompileNotAnObject
	// CompileNotAShader means CompileShader reported GL_INVALID_OPERATION.
	CompileNotAShader
	// CompileUnknown means CompileShader reported another error.
	CompileUnknown
	// CompileStatusUnknown means the compile status query reported an error.
	CompileStatusUnknown
	// CompileFailed means the source did not compile; the error carries the
	// driver's compile log.
	CompileFailed
	// CompileLogUnknown means GetShaderInfoLog reported an error.
	CompileLogUnknown
	// CompileLogMissingTerminator means the compile log was not NUL-terminated.
	CompileLogMissingTerminator
	// CompileLogInvalidText means the compile log was not valid UTF-8.
	CompileLogInvalidText
	// CompileConsumed means the Shader was already compiled or released.
	CompileConsumed
)

var compileCauses = [...]struct {
	step     string
	sentinel error
}{
	CompileInvalidSource:        {"upload", ErrInvalidSource},
	CompileUploadNotAnObject:    {"upload", ErrNotAnObject},
	CompileUploadNotAShader:     {"upload", ErrNotAShader},
	CompileUploadUnknown:        {"upload", ErrUnknown},
	CompileNotAnObject:          {"compile", ErrNotAnObject},
	CompileNotAShader:           {"compile", ErrNotAShader},
	CompileUnknown:              {"compile", ErrUnknown},
	CompileStatusUnknown:        {"status", ErrUnknown},
	CompileFailed:               {"compile", ErrCompilationFailed},
	CompileLogUnknown:           {"info log", ErrUnknown},
	CompileLogMissingTerminator: {"info log", ErrMissingTerminator},
	CompileLogInvalidText:       {"info log", ErrInvalidText},
	CompileConsumed:             {"compile", ErrConsumed},
}

// Step returns the stage of Compile that failed: "upload", "compile",
// "status" or "info log".
func (c CompileCause) Step() string {
	if int(c) >= len(compileCauses) {
		return "compile"
	}
	return compileCauses[c].step
}

func (c CompileCause) sentinel() error {
	if int(c) >= len(compileCauses) {
		return ErrUnknown
	}
	return compileCauses[c].sentinel
}

// CompileError is returned by Shader.Compile.
type CompileError struct {
	Cause CompileCause
	ID    uint32
	Kind  Kind
	// Code is the driver error code, when a driver call failed.
	Code ErrorCode
	// Log is the compile log when Cause is CompileFailed.
	Log string
	// Err is the underlying conversion error, if any.
	Err error
}

func (e *CompileError) Error() string {
	if e.Cause == CompileConsumed {
		return fmt.Sprintf("glshader: compile %s shader: %s", e.Kind, causeText(ErrConsumed))
	}
	prefix := fmt.Sprintf("glshader: compile %s shader %d: %s", e.Kind, e.ID, e.Cause.Step())
	switch e.Cause {
	case CompileFailed:
		return fmt.Sprintf("%s: invalid shader source: %s", prefix, e.Log)
	case CompileInvalidSource, CompileLogMissingTerminator, CompileLogInvalidText:
		if e.Err != nil {
			return fmt.Sprintf("%s: %s: %v", prefix, causeText(e.Cause.sentinel()), e.Err)
		}
		return fmt.Sprintf("%s: %s", prefix, causeText(e.Cause.sentinel()))
	default:
		return fmt.Sprintf("%s: %s (%s)", prefix, causeText(e.Cause.sentinel()), e.Code)
	}
}

// Is reports whether target is the sentinel for e.Cause.
func (e *CompileError) Is(target error) bool { return target == e.Cause.sentinel() }

// Unwrap returns the underlying conversion error.
func (e *CompileError) Unwrap() error { return e.Err }

// uploadCause maps the error code reported after ShaderSource.
func uploadCause(code ErrorCode) CompileCause {
	switch code {
	case InvalidValue:
		return CompileUploadNotAnObject
	case InvalidOperation:
		return CompileUploadNotAShader
	default:
		return CompileUploadUnknown
	}
}

// compileCause maps the error code reported after CompileShader.
func compileCause(code ErrorCode) CompileCause {
	switch code {
	case InvalidValue:
		return CompileNotAnObject
	case InvalidOperation:
		return CompileNotAShader
	default:
		return CompileUnknown
	}
}

// LengthCause enumerates why CompiledShader.SourceLength failed.
type LengthCause uint8

const (
	// LengthNotAnObject means the id is not a driver object.
	LengthNotAnObject LengthCause = iota
	// LengthNotAShader means the id is not a shader.
	LengthNotAShader
	// LengthInvalidQueryEnum means the driver rejected GL_SHADER_SOURCE_LENGTH.
	LengthInvalidQueryEnum
	// LengthUnknown covers every other error code.
	LengthUnknown
)

func (c LengthCause) sentinel() error {
	switch c {
	case LengthNotAnObject:
		return ErrNotAnObject
	case LengthNotAShader:
		return ErrNotAShader
	case LengthInvalidQueryEnum:
		return ErrInvalidQueryEnum
	default:
		return ErrUnknown
	}
}

// LengthError is returned by CompiledShader.SourceLength.
type LengthError struct {
	Cause LengthCause
	ID    uint32
	Code  ErrorCode
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("glshader: source length of shader %d: %s (%s)", e.ID, causeText(e.Cause.sentinel()), e.Code)
}

// Is reports whether target is the sentinel for e.Cause.
func (e *LengthError) Is(target error) bool { return target == e.Cause.sentinel() }

// lengthCause maps the error code reported after the source length query.
func lengthCause(code ErrorCode) LengthCause {
	switch code {
	case InvalidValue:
		return LengthNotAnObject
	case InvalidOperation:
		return LengthNotAShader
	case InvalidEnum:
		return LengthInvalidQueryEnum
	default:
		return LengthUnknown
	}
}

// SourceCause enumerates why CompiledShader.Source failed.
type SourceCause uint8

const (
	// SourceLengthUnavailable means the length query failed; Err holds the
	// *LengthError.
	SourceLengthUnavailable SourceCause = iota
	// SourceMissingTerminator means the returned source was not NUL-terminated.
	SourceMissingTerminator
	// SourceInvalidText means the returned source was not valid UTF-8.
	SourceInvalidText
	// SourceNotAnObject means GetShaderSource reported GL_INVALID_VALUE.
	SourceNotAnObject
	// SourceNotAShader means GetShaderSource reported GL_INVALID_OPERATION.
	SourceNotAShader
	// SourceUnknown means GetShaderSource reported another error.
	SourceUnknown
)

func (c SourceCause) sentinel() error {
	switch c {
	case SourceLengthUnavailable:
		return ErrLengthUnavailable
	case SourceMissingTerminator:
		return ErrMissingTerminator
	case SourceInvalidText:
		return ErrInvalidText
	case SourceNotAnObject:
		return ErrNotAnObject
	case SourceNotAShader:
		return ErrNotAShader
	default:
		return ErrUnknown
	}
}

// SourceError is returned by CompiledShader.Source.
type SourceError struct {
	Cause SourceCause
	ID    uint32
	Code  ErrorCode
	Err   error
}

func (e *SourceError) Error() string {
	prefix := fmt.Sprintf("glshader: source of shader %d", e.ID)
	switch e.Cause {
	case SourceLengthUnavailable, SourceMissingTerminator, SourceInvalidText:
		if e.Err != nil {
			return fmt.Sprintf("%s: %s: %v", prefix, causeText(e.Cause.sentinel()), e.Err)
		}
		return fmt.Sprintf("%s: %s", prefix, causeText(e.Cause.sentinel()))
	default:
		return fmt.Sprintf("%s: %s (%s)", prefix, causeText(e.Cause.sentinel()), e.Code)
	}
}

// Is reports whether target is the sentinel for e.Cause.
func (e *SourceError) Is(target error) bool { return target == e.Cause.sentinel() }

// Unwrap returns the *LengthError or conversion error behind e.
func (e *SourceError) Unwrap() error { return e.Err }

// fillCause maps the error code reported after GetShaderSource.
func fillCause(code ErrorCode) SourceCause {
	switch code {
	case InvalidValue:
		return SourceNotAnObject
	case InvalidOperation:
		return SourceNotAShader
	default:
		return SourceUnknown
	}
}

// causeText strips the package prefix from a sentinel's message.
func causeText(sentinel error) string {
	return strings.TrimPrefix(sentinel.Error(), "glshader: ")
}
