package glplotter

import (
	"fmt"
	"strings"
)

type ShaderCompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, strings.TrimSpace(e.Log))
}

type ProgramLinkError struct {
	Log string
}

func (e *ProgramLinkError) Error() string {
	return fmt.Sprintf("program link failed: %s", strings.TrimSpace(e.Log))
}

// CompileShader compiles one stage and checks its status. The shader object is
// deleted when compilation fails.
func CompileShader(gl GL, stage ShaderStage, source string) (uint32, error) {
	shader := gl.CreateShader(stage)
	gl.ShaderSource(shader, source)
	gl.CompileShader(shader)
	if !gl.ShaderCompiled(shader) {
		log := gl.ShaderInfoLog(shader)
		gl.DeleteShader(shader)
		return 0, &ShaderCompileError{Stage: stage, Log: log}
	}
	return shader, nil
}

// NewProgram compiles both stages, links them and deletes the stage objects,
// which are of no use once the program is linked.
func NewProgram(gl GL, vertexSource, fragmentSource string) (uint32, error) {
	vs, err := CompileShader(gl, VertexStage, vertexSource)
	if err != nil {
		return 0, err
	}
	fs, err := CompileShader(gl, FragmentStage, fragmentSource)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if !gl.ProgramLinked(program) {
		log := gl.ProgramInfoLog(program)
		gl.DeleteProgram(program)
		return 0, &ProgramLinkError{Log: log}
	}
	Logger().Debug("shader program linked", "program", program)
	return program, nil
}
