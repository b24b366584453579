// Package glshader provides typed OpenGL shader objects.
//
// # Overview
//
// An OpenGL shader goes through three stages: it is created, compiled, and
// finally attached to a program. glshader models the first two as separate
// types so that only a successfully compiled shader can be handed on:
//
//	sh, err := glshader.New(drv, glshader.Vertex)   // *Shader
//	cs, err := sh.Compile(src)                      // *CompiledShader
//
// Compile consumes the Shader. A second Compile on the same value returns
// ErrConsumed without calling the driver.
//
// # Drivers
//
// All driver access goes through the Driver interface, which mirrors the
// OpenGL entry points for shader objects. Package gldriver implements it
// with go-gl on a real context; package drivertest provides an in-memory
// fake for tests.
//
// # Errors
//
// Each operation has its own error type with a closed set of causes:
// *CreateError, *CompileError, *LengthError and *SourceError. Driver error
// codes that a call does not document map to an Unknown cause. Use
// errors.As to inspect the cause, or errors.Is with the Err sentinels when
// the failing call does not matter:
//
//	cs, err := sh.Compile(src)
//	var cerr *glshader.CompileError
//	if errors.As(err, &cerr) && cerr.Cause == glshader.CompileFailed {
//	    fmt.Println(cerr.Log)
//	}
//
// # Threading
//
// OpenGL contexts are bound to one thread. Shaders perform no locking and
// must only be used on the thread that owns the driver's context.
package glshader
