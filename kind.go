package glshader

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind is the pipeline stage a shader targets.
//
// OpenGL supports six shader stages. See
// https://www.khronos.org/opengl/wiki/Shader for the details of each one.
type Kind uint8

const (
	// Compute is a compute shader (OpenGL 4.3+).
	Compute Kind = iota
	// Fragment is a fragment shader.
	Fragment
	// Geometry is a geometry shader.
	Geometry
	// TessControl is a tessellation control shader.
	TessControl
	// TessEvaluation is a tessellation evaluation shader.
	TessEvaluation
	// Vertex is a vertex shader.
	Vertex

	kindCount
)

// OpenGL enumerants for the shader stages.
const (
	codeCompute        uint32 = 0x91B9 // GL_COMPUTE_SHADER
	codeFragment       uint32 = 0x8B30 // GL_FRAGMENT_SHADER
	codeGeometry       uint32 = 0x8DD9 // GL_GEOMETRY_SHADER
	codeTessControl    uint32 = 0x8E88 // GL_TESS_CONTROL_SHADER
	codeTessEvaluation uint32 = 0x8E87 // GL_TESS_EVALUATION_SHADER
	codeVertex         uint32 = 0x8B31 // GL_VERTEX_SHADER
)

var kindInfo = [kindCount]struct {
	code uint32
	name string
	ext  string
}{
	Compute:        {codeCompute, "compute", "comp"},
	Fragment:       {codeFragment, "fragment", "frag"},
	Geometry:       {codeGeometry, "geometry", "geom"},
	TessControl:    {codeTessControl, "tess-control", "tesc"},
	TessEvaluation: {codeTessEvaluation, "tess-evaluation", "tese"},
	Vertex:         {codeVertex, "vertex", "vert"},
}

// Kinds returns every shader kind in declaration order.
func Kinds() []Kind {
	return []Kind{Compute, Fragment, Geometry, TessControl, TessEvaluation, Vertex}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k < kindCount }

// Code returns the driver enumerant for k, or 0 for an undeclared kind.
func (k Kind) Code() uint32 {
	if !k.Valid() {
		return 0
	}
	return kindInfo[k].code
}

// String returns the lowercase stage name.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindInfo[k].name
}

// Ext returns the conventional file extension for k, without the dot.
func (k Kind) Ext() string {
	if !k.Valid() {
		return ""
	}
	return kindInfo[k].ext
}

// KindFromCode maps a driver enumerant back to its Kind.
func KindFromCode(code uint32) (Kind, bool) {
	for k := range kindCount {
		if kindInfo[k].code == code {
			return k, true
		}
	}
	return 0, false
}

// ParseKind parses a stage name. Both the long names returned by String and
// the short extension names are accepted, case-insensitively. Dashes and
// underscores are ignored, so "tess_control", "TessControl" and "tesc" are
// all TessControl.
func ParseKind(name string) (Kind, error) {
	norm := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(name))
	for k := range kindCount {
		info := kindInfo[k]
		if norm == strings.ReplaceAll(info.name, "-", "") || norm == info.ext {
			return k, nil
		}
	}
	return 0, fmt.Errorf("glshader: unknown shader kind %q", name)
}

// KindFromExt infers the kind from a file name such as "blur.frag" or
// "blur.frag.glsl".
func KindFromExt(path string) (Kind, bool) {
	base := filepath.Base(path)
	for {
		ext := filepath.Ext(base)
		if ext == "" {
			return 0, false
		}
		if k, err := ParseKind(ext[1:]); err == nil {
			return k, true
		}
		base = strings.TrimSuffix(base, ext)
	}
}
