package native

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"glboot/gman/glplotter"
)

// GL forwards to the process-wide go-gl bindings loaded by Platform.LoadGL.
type GL struct{}

var _ glplotter.GL = GL{}

func (GL) GetString(name uint32) string {
	s := gl.GetString(name)
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

func (GL) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (GL) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (GL) Clear(mask uint32) {
	gl.Clear(mask)
}

func (GL) CreateShader(stage glplotter.ShaderStage) uint32 {
	return gl.CreateShader(uint32(stage))
}

func (GL) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source)
	length := int32(len(source))
	gl.ShaderSource(shader, 1, csources, &length)
	free()
}

func (GL) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (GL) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (GL) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (GL) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (GL) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (GL) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (GL) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (GL) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (GL) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (GL) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (GL) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (GL) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (GL) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (GL) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (GL) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (GL) BindBuffer(target, buffer uint32) {
	gl.BindBuffer(target, buffer)
}

func (GL) BufferData(target uint32, data []float32, usage uint32) {
	gl.BufferData(target, len(data)*4, gl.Ptr(data), usage)
}

func (GL) BufferContents(target uint32, size int) []byte {
	out := make([]byte, size)
	if size > 0 {
		gl.GetBufferSubData(target, 0, size, gl.Ptr(out))
	}
	return out
}

func (GL) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (GL) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(int(offset)))
}

func (GL) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (GL) DrawArrays(mode uint32, first, count int32) {
	gl.DrawArrays(mode, first, count)
}

func (GL) ReadPixels(x, y, width, height int32) []byte {
	pix := make([]byte, int(width)*int(height)*4)
	if len(pix) == 0 {
		return pix
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(x, y, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	return pix
}
