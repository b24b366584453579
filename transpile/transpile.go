// Package transpile translates WGSL shaders to GLSL with naga so they can be
// compiled through glshader on an OpenGL driver.
//
// WGSL has three stages, so only Vertex, Fragment and Compute kinds can be
// produced from WGSL source.
package transpile

import (
	"errors"
	"fmt"

	"github.com/gogpu/glshader"
	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
	"github.com/gogpu/naga/ir"
)

var (
	// ErrUnsupportedKind is returned for kinds that WGSL cannot express.
	ErrUnsupportedKind = errors.New("transpile: shader kind has no WGSL stage")

	// ErrNoEntryPoint is returned when the module has no entry point for the
	// requested kind or name.
	ErrNoEntryPoint = errors.New("transpile: no matching entry point")
)

// Options configures translation.
type Options struct {
	// Version is the GLSL version to emit. The zero value selects
	// glsl.Version330, or glsl.Version430 for compute shaders.
	Version glsl.Version

	// EntryPoint selects an entry point by name. If empty, the first entry
	// point of the requested kind is used.
	EntryPoint string

	// SkipValidation disables naga IR validation.
	SkipValidation bool
}

// EntryPoint describes a WGSL entry point.
type EntryPoint struct {
	Name string
	Kind glshader.Kind
}

var stages = map[ir.ShaderStage]glshader.Kind{
	ir.StageVertex:   glshader.Vertex,
	ir.StageFragment: glshader.Fragment,
	ir.StageCompute:  glshader.Compute,
}

func stageOf(kind glshader.Kind) (ir.ShaderStage, bool) {
	for stage, k := range stages {
		if k == kind {
			return stage, true
		}
	}
	return 0, false
}

// Parse parses and lowers WGSL source to naga IR.
func Parse(source string) (*ir.Module, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("transpile: %w", err)
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return nil, fmt.Errorf("transpile: lowering: %w", err)
	}
	return module, nil
}

// EntryPoints lists the entry points of a WGSL module in declaration order.
func EntryPoints(source string) ([]EntryPoint, error) {
	module, err := Parse(source)
	if err != nil {
		return nil, err
	}
	eps := make([]EntryPoint, 0, len(module.EntryPoints))
	for _, ep := range module.EntryPoints {
		if k, ok := stages[ep.Stage]; ok {
			eps = append(eps, EntryPoint{Name: ep.Name, Kind: k})
		}
	}
	return eps, nil
}

// GLSL translates one entry point of a WGSL module to GLSL source for the
// given kind. The entry point becomes the GLSL main function.
func GLSL(source string, kind glshader.Kind, opts Options) (string, error) {
	stage, ok := stageOf(kind)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}

	module, err := Parse(source)
	if err != nil {
		return "", err
	}
	if !opts.SkipValidation {
		verrs, err := naga.Validate(module)
		if err != nil {
			return "", fmt.Errorf("transpile: validation: %w", err)
		}
		if len(verrs) > 0 {
			return "", fmt.Errorf("transpile: validation failed: %w", verrs[0])
		}
	}

	name, err := selectEntryPoint(module, stage, opts.EntryPoint)
	if err != nil {
		return "", err
	}

	version := opts.Version
	if version.Major == 0 {
		version = glsl.Version330
		if kind == glshader.Compute {
			version = glsl.Version430
		}
	}
	if kind == glshader.Compute && !version.SupportsCompute() {
		return "", fmt.Errorf("transpile: GLSL %s does not support compute shaders", version)
	}

	out, info, err := glsl.Compile(module, glsl.Options{
		LangVersion:        version,
		EntryPoint:         name,
		ForceHighPrecision: true,
	})
	if err != nil {
		return "", fmt.Errorf("transpile: %w", err)
	}
	glshader.Logger().Debug("transpile: translated WGSL entry point",
		"entry", name, "kind", kind, "version", info.RequiredVersion.String(),
		"extensions", info.UsedExtensions)
	return out, nil
}

func selectEntryPoint(module *ir.Module, stage ir.ShaderStage, name string) (string, error) {
	for _, ep := range module.EntryPoints {
		if name != "" && ep.Name != name {
			continue
		}
		if ep.Stage != stage {
			if name != "" {
				return "", fmt.Errorf("%w: %q is a %s entry point", ErrNoEntryPoint, name, stages[ep.Stage])
			}
			continue
		}
		return ep.Name, nil
	}
	if name != "" {
		return "", fmt.Errorf("%w: %q", ErrNoEntryPoint, name)
	}
	return "", fmt.Errorf("%w: no %s entry point", ErrNoEntryPoint, stages[stage])
}

// Compile translates WGSL source and compiles the result as a new shader of
// the given kind. Errors from the driver are the glshader error types.
func Compile(drv glshader.Driver, kind glshader.Kind, source string, opts Options, shaderOpts ...glshader.Option) (*glshader.CompiledShader, error) {
	src, err := GLSL(source, kind, opts)
	if err != nil {
		return nil, err
	}
	sh, err := glshader.New(drv, kind, shaderOpts...)
	if err != nil {
		return nil, err
	}
	defer sh.Release()
	return sh.Compile(src)
}
