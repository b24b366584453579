// Command glshaderc compiles shaders with the system OpenGL driver and
// reports their compile logs.
//
// Usage:
//
//	glshaderc [options] <input>...
//
// The shader kind is taken from the file extension (.vert, .frag, .comp,
// .geom, .tesc, .tese, optionally followed by .glsl) unless -kind is given.
// WGSL files (.wgsl, or any file with -wgsl) are translated to GLSL first.
//
// Examples:
//
//	glshaderc blur.frag                       # compile one shader
//	glshaderc -kind vertex quad.glsl          # explicit kind
//	glshaderc -kind fragment -entry fs_main triangle.wgsl
//	glshaderc -driver fake -source *.vert     # syntax check without a GPU
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/gogpu/glshader"
	"github.com/gogpu/glshader/drivertest"
	"github.com/gogpu/glshader/gldriver"
	"github.com/gogpu/glshader/transpile"
	"github.com/gogpu/naga/glsl"
)

const version = "0.1.0-dev"

func init() {
	// OpenGL contexts are bound to the thread that created them.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, openDriver))
}

// config holds the parsed command line.
type config struct {
	kind        string
	wgsl        bool
	entry       string
	glslVersion string
	driver      string
	source      bool
	logCapacity int
	verbose     bool
	version     bool
	inputs      []string
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("glshaderc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg := &config{}
	fs.StringVar(&cfg.kind, "kind", "", "shader kind (vertex, fragment, compute, geometry, tess-control, tess-evaluation)")
	fs.BoolVar(&cfg.wgsl, "wgsl", false, "treat inputs as WGSL and translate them to GLSL")
	fs.StringVar(&cfg.entry, "entry", "", "WGSL entry point name")
	fs.StringVar(&cfg.glslVersion, "glsl-version", "", "GLSL version for WGSL translation (330, 430, 450, 460, 300es, 310es, 320es)")
	fs.StringVar(&cfg.driver, "driver", "gl", "driver: gl (OpenGL 4.3 context) or fake (syntax check only)")
	fs.BoolVar(&cfg.source, "source", false, "print the source read back from the driver")
	fs.IntVar(&cfg.logCapacity, "log-capacity", glshader.DefaultInfoLogCapacity, "compile log buffer size in bytes")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	fs.BoolVar(&cfg.version, "version", false, "print version")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: glshaderc [options] <input>...\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.inputs = fs.Args()
	return cfg, nil
}

var glslVersions = map[string]glsl.Version{
	"330":   glsl.Version330,
	"400":   glsl.Version400,
	"410":   glsl.Version410,
	"420":   glsl.Version420,
	"430":   glsl.Version430,
	"450":   glsl.Version450,
	"460":   glsl.Version460,
	"300es": glsl.VersionES300,
	"310es": glsl.VersionES310,
	"320es": glsl.VersionES320,
}

// openDriver returns a driver and a function that tears it down.
func openDriver(name string) (glshader.Driver, func(), error) {
	switch name {
	case "gl":
		ctx, err := gldriver.NewHeadless()
		if err != nil {
			return nil, nil, err
		}
		return ctx.Driver(), ctx.Close, nil
	case "fake":
		return drivertest.New(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown driver %q", name)
	}
}

func run(args []string, stdout, stderr io.Writer, open func(string) (glshader.Driver, func(), error)) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if cfg.version {
		fmt.Fprintf(stdout, "glshaderc version %s\n", version)
		return 0
	}
	if len(cfg.inputs) == 0 {
		fmt.Fprintln(stderr, "Error: no input file specified")
		return 2
	}

	if cfg.verbose {
		glshader.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer glshader.SetLogger(nil)
	}

	var opts transpile.Options
	opts.EntryPoint = cfg.entry
	if cfg.glslVersion != "" {
		v, ok := glslVersions[strings.ToLower(cfg.glslVersion)]
		if !ok {
			fmt.Fprintf(stderr, "Error: unknown GLSL version %q\n", cfg.glslVersion)
			return 2
		}
		opts.Version = v
	}

	drv, closeDriver, err := open(cfg.driver)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer closeDriver()

	status := 0
	for _, path := range cfg.inputs {
		if err := compileFile(drv, cfg, opts, path, stdout); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", path, describe(err))
			status = 1
		}
	}
	return status
}

func compileFile(drv glshader.Driver, cfg *config, opts transpile.Options, path string, stdout io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	isWGSL := cfg.wgsl || strings.EqualFold(filepath.Ext(path), ".wgsl")
	kind, err := resolveKind(cfg.kind, path, isWGSL, string(data), opts.EntryPoint)
	if err != nil {
		return err
	}

	shaderOpts := []glshader.Option{glshader.WithInfoLogCapacity(cfg.logCapacity)}
	var cs *glshader.CompiledShader
	if isWGSL {
		cs, err = transpile.Compile(drv, kind, string(data), opts, shaderOpts...)
	} else {
		cs, err = compileGLSL(drv, kind, string(data), shaderOpts)
	}
	if err != nil {
		return err
	}
	defer cs.Release()

	fmt.Fprintf(stdout, "%s: ok (%s)\n", path, cs)
	if cfg.source {
		src, err := cs.Source()
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, src)
	}
	return nil
}

func compileGLSL(drv glshader.Driver, kind glshader.Kind, src string, opts []glshader.Option) (*glshader.CompiledShader, error) {
	sh, err := glshader.New(drv, kind, opts...)
	if err != nil {
		return nil, err
	}
	defer sh.Release()
	return sh.Compile(src)
}

// resolveKind picks the shader kind from the flag, the file name or, for
// WGSL, the module's entry points.
func resolveKind(flagKind, path string, isWGSL bool, src, entry string) (glshader.Kind, error) {
	if flagKind != "" {
		return glshader.ParseKind(flagKind)
	}
	if k, ok := glshader.KindFromExt(path); ok {
		return k, nil
	}
	if !isWGSL {
		return 0, fmt.Errorf("cannot infer shader kind from %q; use -kind", filepath.Base(path))
	}

	eps, err := transpile.EntryPoints(src)
	if err != nil {
		return 0, err
	}
	var match []transpile.EntryPoint
	for _, ep := range eps {
		if entry == "" || ep.Name == entry {
			match = append(match, ep)
		}
	}
	if len(match) != 1 {
		return 0, fmt.Errorf("%d matching entry points; use -kind or -entry", len(match))
	}
	return match[0].Kind, nil
}

// describe formats compile failures with the driver log on its own lines.
func describe(err error) string {
	var cerr *glshader.CompileError
	if errors.As(err, &cerr) && cerr.Cause == glshader.CompileFailed {
		return fmt.Sprintf("%s shader failed to compile:\n%s", cerr.Kind, strings.TrimRight(cerr.Log, "\n"))
	}
	return err.Error()
}
