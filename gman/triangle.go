package gman

import (
	_ "embed"
	"math"

	glp "glboot/gman/glplotter"
	"glboot/primatives"
)

var (
	//go:embed shaders/triangle.vert
	VertexShaderSource string
	//go:embed shaders/triangle.frag
	FragmentShaderSource string
)

var sqrt3 = float32(math.Sqrt(3))

// TriangleVertices is an equilateral triangle centered on the origin in
// normalized device coordinates. The second corner is at +x (not a repeat of
// the first) and the apex at +y (not mirrored below the axis): with the
// older data (-0.5, -0.0, -0.577 at floats 3, 6, 7) the triangle had zero
// area and nothing was drawn.
var TriangleVertices = [3]primatives.Vector3[float32]{
	{X: -0.5, Y: -0.5 * sqrt3 / 3, Z: 0},
	{X: 0.5, Y: -0.5 * sqrt3 / 3, Z: 0},
	{X: 0, Y: 0.5 * sqrt3 * 2 / 3, Z: 0},
}

const (
	positionAttrib = 0
	// floats per vertex
	vertexSize = 3
)

// VertexData returns the flattened positions uploaded to the vertex buffer.
func VertexData() []float32 {
	return primatives.Flatten(make([]float32, 0, len(TriangleVertices)*vertexSize), TriangleVertices[:]...)
}

// Triangle owns the only program, vertex array and vertex buffer of the
// renderer.
type Triangle struct {
	VertexSource   string
	FragmentSource string

	program uint32
	vao     uint32
	vbo     uint32
}

var _ glp.Graphic = &Triangle{}

func NewTriangle() *Triangle {
	return &Triangle{
		VertexSource:   VertexShaderSource,
		FragmentSource: FragmentShaderSource,
	}
}

func (t *Triangle) Init(ctx *glp.Context) error {
	gl := ctx.GL
	program, err := glp.NewProgram(gl, t.VertexSource, t.FragmentSource)
	if err != nil {
		return err
	}
	t.program = program

	vertices := VertexData()
	t.vao = gl.GenVertexArray()
	t.vbo = gl.GenBuffer()
	gl.BindVertexArray(t.vao)
	gl.BindBuffer(glp.ArrayBuffer, t.vbo)
	gl.BufferData(glp.ArrayBuffer, vertices, glp.StaticDraw)
	gl.VertexAttribPointer(positionAttrib, vertexSize, glp.Float, false, vertexSize*4, 0)
	gl.EnableVertexAttribArray(positionAttrib)

	glp.Logger().Debug("triangle uploaded",
		"program", t.program, "vao", t.vao, "vbo", t.vbo, "bytes", len(vertices)*4)
	return nil
}

func (t *Triangle) Draw(ctx *glp.Context) {
	ctx.GL.UseProgram(t.program)
	ctx.GL.BindVertexArray(t.vao)
	ctx.GL.DrawArrays(glp.Triangles, 0, int32(len(TriangleVertices)))
}

func (t *Triangle) Release(ctx *glp.Context) {
	if t.vbo != 0 {
		ctx.GL.DeleteBuffer(t.vbo)
		t.vbo = 0
	}
	if t.vao != 0 {
		ctx.GL.DeleteVertexArray(t.vao)
		t.vao = 0
	}
	if t.program != 0 {
		ctx.GL.DeleteProgram(t.program)
		t.program = 0
	}
}

func (t *Triangle) Program() uint32 { return t.program }

func (t *Triangle) VertexArray() uint32 { return t.vao }

func (t *Triangle) Buffer() uint32 { return t.vbo }
