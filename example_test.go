package glshader_test

import (
	"errors"
	"fmt"

	"github.com/gogpu/glshader"
	"github.com/gogpu/glshader/drivertest"
)

func Example() {
	drv := drivertest.New()

	sh, err := glshader.New(drv, glshader.Vertex)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer sh.Release()

	cs, err := sh.Compile("void main(){}")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer cs.Release()

	src, _ := cs.Source()
	fmt.Println(cs.ID(), cs.Kind(), src)
	// Output: 1 vertex void main(){}
}

func ExampleShader_Compile_failure() {
	drv := drivertest.New()
	sh, _ := glshader.New(drv, glshader.Compute)

	_, err := sh.Compile("void main() {")
	var cerr *glshader.CompileError
	if errors.As(err, &cerr) && cerr.Cause == glshader.CompileFailed {
		fmt.Print(cerr.Log)
	}
	// Output: 0:1(13): error: unmatched '{'
}
