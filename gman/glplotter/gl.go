package glplotter

// Enum values mirror the OpenGL constants so a backend can pass them through
// unchanged.
const (
	ColorBufferBit uint32 = 0x00004000

	Triangles uint32 = 0x0004
	Float     uint32 = 0x1406

	ArrayBuffer uint32 = 0x8892
	StaticDraw  uint32 = 0x88E4

	Vendor   uint32 = 0x1F00
	Renderer uint32 = 0x1F01
	Version  uint32 = 0x1F02
)

type ShaderStage uint32

const (
	FragmentStage ShaderStage = 0x8B30
	VertexStage   ShaderStage = 0x8B31
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

// GL is the subset of the OpenGL 3.3 core API the renderer issues. Every GPU
// call goes through a GL value held by the Context; nothing in this package
// touches a process-wide binding directly.
type GL interface {
	GetString(name uint32) string

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)

	CreateShader(stage ShaderStage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	GenBuffer() uint32
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, data []float32, usage uint32)
	// BufferContents reads size bytes back from the buffer bound to target.
	BufferContents(target uint32, size int) []byte
	DeleteBuffer(buffer uint32)

	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)
	DrawArrays(mode uint32, first, count int32)

	// ReadPixels returns width*height RGBA8 pixels, bottom row first.
	ReadPixels(x, y, width, height int32) []byte
}

type ContextVersion struct {
	Major, Minor int
}

// DefaultVersion matches the "#version 330 core" dialect of the embedded
// shaders.
var DefaultVersion = ContextVersion{Major: 3, Minor: 3}

type WindowConfig struct {
	Width, Height int
	Title         string
	Version       ContextVersion
	Hidden        bool
}

// Platform is the windowing layer: it owns the window system connection and
// resolves GL entry points for a window whose context is current.
type Platform interface {
	Init() error
	CreateWindow(cfg WindowConfig) (Window, error)
	LoadGL(w Window) (GL, error)
	PollEvents()
	Terminate()
}

type Window interface {
	MakeContextCurrent()
	SetSwapInterval(interval int)
	SetKeyCallback(cb func(KeyEvent))
	SetFramebufferSizeCallback(cb func(FramebufferSizeEvent))
	ShouldClose() bool
	SetShouldClose(value bool)
	SwapBuffers()
	FramebufferSize() (width, height int)
	Destroy()
}
