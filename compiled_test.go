package glshader_test

import (
	"errors"
	"testing"

	"github.com/gogpu/glshader"
	"github.com/gogpu/glshader/drivertest"
)

func compile(t *testing.T, drv *drivertest.Driver, kind glshader.Kind, src string) *glshader.CompiledShader {
	t.Helper()
	sh, err := glshader.New(drv, kind)
	if err != nil {
		t.Fatalf("New(%v) error = %v", kind, err)
	}
	cs, err := sh.Compile(src)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	t.Cleanup(cs.Release)
	return cs
}

func TestSourceRoundTrip(t *testing.T) {
	sources := []string{
		validSource,
		"#version 430 core\nlayout(local_size_x = 64) in;\nvoid main() {\n}\n",
		"// héllo wörld ✓\nvoid main() { }",
	}
	for _, kind := range glshader.Kinds() {
		for _, src := range sources {
			drv := drivertest.New()
			cs := compile(t, drv, kind, src)

			got, err := cs.Source()
			if err != nil {
				t.Fatalf("%v: Source() error = %v", kind, err)
			}
			if got != src {
				t.Errorf("%v: Source() = %q, want %q", kind, got, src)
			}
		}
	}
}

func TestSourceLengthIncludesTerminator(t *testing.T) {
	drv := drivertest.New()
	cs := compile(t, drv, glshader.Vertex, validSource)

	n, err := cs.SourceLength()
	if err != nil {
		t.Fatalf("SourceLength() error = %v", err)
	}
	src, err := cs.Source()
	if err != nil {
		t.Fatalf("Source() error = %v", err)
	}
	if n != len(src)+1 {
		t.Errorf("SourceLength() = %d, want len(Source())+1 = %d", n, len(src)+1)
	}
}

func TestVertexScenario(t *testing.T) {
	drv := drivertest.New()
	sh, err := glshader.New(drv, glshader.Vertex)
	if err != nil {
		t.Fatal(err)
	}
	if sh.ID() != 1 {
		t.Errorf("first shader ID() = %d, want 1", sh.ID())
	}
	cs, err := sh.Compile("void main(){}")
	if err != nil {
		t.Fatal(err)
	}
	if cs.ID() != 1 || cs.Kind() != glshader.Vertex {
		t.Errorf("CompiledShader = {%d, %v}, want {1, vertex}", cs.ID(), cs.Kind())
	}
	src, err := cs.Source()
	if err != nil || src != "void main(){}" {
		t.Errorf("Source() = %q, %v; want %q, nil", src, err, "void main(){}")
	}
	cs.Release()
}

func TestSourceLengthErrors(t *testing.T) {
	tests := []struct {
		name     string
		code     glshader.ErrorCode
		want     glshader.LengthCause
		sentinel error
	}{
		{"invalid value", glshader.InvalidValue, glshader.LengthNotAnObject, glshader.ErrNotAnObject},
		{"invalid operation", glshader.InvalidOperation, glshader.LengthNotAShader, glshader.ErrNotAShader},
		{"invalid enum", glshader.InvalidEnum, glshader.LengthInvalidQueryEnum, glshader.ErrInvalidQueryEnum},
		{"out of memory", glshader.OutOfMemory, glshader.LengthUnknown, glshader.ErrUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drv := drivertest.New()
			cs := compile(t, drv, glshader.Fragment, validSource)
			drv.FailNext(drivertest.OpGetShaderiv, tt.code)

			n, err := cs.SourceLength()
			if n != 0 {
				t.Errorf("SourceLength() = %d, want 0 on error", n)
			}
			var lerr *glshader.LengthError
			if !errors.As(err, &lerr) {
				t.Fatalf("SourceLength() error = %v, want *LengthError", err)
			}
			if lerr.Cause != tt.want || lerr.Code != tt.code || lerr.ID != cs.ID() {
				t.Errorf("LengthError = %+v, want cause %v code %v", lerr, tt.want, tt.code)
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("errors.Is(err, %v) = false", tt.sentinel)
			}
		})
	}
}

func TestSourceLengthUnavailable(t *testing.T) {
	drv := drivertest.New()
	cs := compile(t, drv, glshader.Vertex, validSource)
	drv.FailNext(drivertest.OpGetShaderiv, glshader.InvalidOperation)

	_, err := cs.Source()
	var serr *glshader.SourceError
	if !errors.As(err, &serr) || serr.Cause != glshader.SourceLengthUnavailable {
		t.Fatalf("Source() error = %v, want SourceLengthUnavailable", err)
	}
	var lerr *glshader.LengthError
	if !errors.As(err, &lerr) || lerr.Cause != glshader.LengthNotAShader {
		t.Errorf("wrapped error = %v, want LengthNotAShader", serr.Err)
	}
	if !errors.Is(err, glshader.ErrLengthUnavailable) || !errors.Is(err, glshader.ErrNotAShader) {
		t.Error("Source() error should match ErrLengthUnavailable and ErrNotAShader")
	}
	if drv.Calls(drivertest.OpGetShaderSource) != 0 {
		t.Error("Source() fetched without a length")
	}
}

func TestSourceFillErrors(t *testing.T) {
	tests := []struct {
		name     string
		code     glshader.ErrorCode
		want     glshader.SourceCause
		sentinel error
	}{
		{"invalid value", glshader.InvalidValue, glshader.SourceNotAnObject, glshader.ErrNotAnObject},
		{"invalid operation", glshader.InvalidOperation, glshader.SourceNotAShader, glshader.ErrNotAShader},
		{"invalid enum", glshader.InvalidEnum, glshader.SourceUnknown, glshader.ErrUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drv := drivertest.New()
			cs := compile(t, drv, glshader.Vertex, validSource)
			drv.FailNext(drivertest.OpGetShaderSource, tt.code)

			_, err := cs.Source()
			var serr *glshader.SourceError
			if !errors.As(err, &serr) {
				t.Fatalf("Source() error = %v, want *SourceError", err)
			}
			if serr.Cause != tt.want || serr.Code != tt.code {
				t.Errorf("SourceError = {%v, %v}, want {%v, %v}", serr.Cause, serr.Code, tt.want, tt.code)
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("errors.Is(err, %v) = false", tt.sentinel)
			}
		})
	}
}

func TestSourceConversionErrors(t *testing.T) {
	tests := []struct {
		name     string
		hook     func(buf []byte)
		want     glshader.SourceCause
		sentinel error
	}{
		{"missing terminator", func(buf []byte) { buf[len(buf)-1] = '}' }, glshader.SourceMissingTerminator, glshader.ErrMissingTerminator},
		{"interior nul", func(buf []byte) { buf[2] = 0 }, glshader.SourceMissingTerminator, glshader.ErrMissingTerminator},
		{"invalid utf8", func(buf []byte) { buf[0] = 0xc3 }, glshader.SourceInvalidText, glshader.ErrInvalidText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			drv := drivertest.New()
			cs := compile(t, drv, glshader.Vertex, validSource)
			drv.SourceHook = tt.hook

			_, err := cs.Source()
			var serr *glshader.SourceError
			if !errors.As(err, &serr) || serr.Cause != tt.want {
				t.Fatalf("Source() error = %v, want cause %v", err, tt.want)
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("errors.Is(err, %v) = false", tt.sentinel)
			}
		})
	}
}

func TestCompiledRelease(t *testing.T) {
	drv := drivertest.New()
	sh, _ := glshader.New(drv, glshader.TessControl)
	id := sh.ID()
	cs, err := sh.Compile(validSource)
	if err != nil {
		t.Fatal(err)
	}

	if cs.Released() {
		t.Error("Released() = true before Release")
	}
	cs.Release()
	cs.Release()
	sh.Release()
	if drv.Deletes(id) != 1 {
		t.Errorf("Deletes() = %d, want 1", drv.Deletes(id))
	}
	if !cs.Released() || cs.ID() != 0 {
		t.Errorf("after Release: Released() = %v, ID() = %d", cs.Released(), cs.ID())
	}

	if _, err := cs.SourceLength(); !errors.Is(err, glshader.ErrNotAnObject) {
		t.Errorf("SourceLength() after Release error = %v, want ErrNotAnObject", err)
	}
}
