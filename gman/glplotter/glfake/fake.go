// Package glfake is an in-memory glplotter platform for tests. It keeps a
// journal of every call, stores buffer uploads, and validates shader sources
// with a crude syntax check instead of a real compiler.
package glfake

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strings"

	"glboot/gman/glplotter"
)

// Journal records calls in the order they were made, shared by the
// platform, its window and its GL.
type Journal struct {
	Calls []string
}

func (j *Journal) add(format string, args ...any) {
	j.Calls = append(j.Calls, fmt.Sprintf(format, args...))
}

// Index returns the position of the first call with the given prefix, or -1.
func (j *Journal) Index(prefix string) int {
	for i, c := range j.Calls {
		if strings.HasPrefix(c, prefix) {
			return i
		}
	}
	return -1
}

// Count returns how many calls start with prefix.
func (j *Journal) Count(prefix string) int {
	n := 0
	for _, c := range j.Calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

type Platform struct {
	Journal *Journal

	InitErr   error
	CreateErr error
	LoadErr   error

	// Script holds the events delivered by successive PollEvents calls.
	Script [][]glplotter.Event
	// FramebufferScale multiplies the window size into the framebuffer
	// size, as a HiDPI display does. Zero means 1.
	FramebufferScale int

	Window     *Window
	GL         *GL
	Terminated bool
	Polls      int
}

var _ glplotter.Platform = &Platform{}

func NewPlatform() *Platform {
	j := &Journal{}
	return &Platform{Journal: j, GL: NewGL(j)}
}

func (p *Platform) Init() error {
	p.Journal.add("Init")
	return p.InitErr
}

func (p *Platform) CreateWindow(cfg glplotter.WindowConfig) (glplotter.Window, error) {
	p.Journal.add("CreateWindow %dx%d %q %d.%d", cfg.Width, cfg.Height, cfg.Title, cfg.Version.Major, cfg.Version.Minor)
	if p.CreateErr != nil {
		return nil, p.CreateErr
	}
	scale := p.FramebufferScale
	if scale <= 0 {
		scale = 1
	}
	p.Window = &Window{journal: p.Journal, Config: cfg, width: cfg.Width * scale, height: cfg.Height * scale}
	return p.Window, nil
}

func (p *Platform) LoadGL(w glplotter.Window) (glplotter.GL, error) {
	p.Journal.add("LoadGL")
	if p.LoadErr != nil {
		return nil, p.LoadErr
	}
	fw, ok := w.(*Window)
	if !ok || !fw.Current {
		return nil, errors.New("glfake: context not current")
	}
	p.GL.loaded = true
	p.GL.window = fw
	return p.GL, nil
}

func (p *Platform) PollEvents() {
	p.Journal.add("PollEvents")
	p.Polls++
	if len(p.Script) == 0 || p.Window == nil {
		return
	}
	batch := p.Script[0]
	p.Script = p.Script[1:]
	for _, ev := range batch {
		p.Window.Emit(ev)
	}
}

func (p *Platform) Terminate() {
	p.Journal.add("Terminate")
	p.Terminated = true
}

type Window struct {
	journal *Journal
	Config  glplotter.WindowConfig

	Current      bool
	SwapInterval int
	Swaps        int
	Destroyed    bool

	shouldClose   bool
	width, height int
	keyCb         func(glplotter.KeyEvent)
	sizeCb        func(glplotter.FramebufferSizeEvent)
}

var _ glplotter.Window = &Window{}

func (w *Window) MakeContextCurrent() {
	w.journal.add("MakeContextCurrent")
	w.Current = true
}

func (w *Window) SetSwapInterval(interval int) {
	w.journal.add("SwapInterval %d", interval)
	w.SwapInterval = interval
}

func (w *Window) SetKeyCallback(cb func(glplotter.KeyEvent)) {
	w.journal.add("SetKeyCallback")
	w.keyCb = cb
}

func (w *Window) SetFramebufferSizeCallback(cb func(glplotter.FramebufferSizeEvent)) {
	w.journal.add("SetFramebufferSizeCallback")
	w.sizeCb = cb
}

func (w *Window) ShouldClose() bool {
	return w.shouldClose
}

func (w *Window) SetShouldClose(value bool) {
	w.journal.add("SetShouldClose %t", value)
	w.shouldClose = value
}

func (w *Window) SwapBuffers() {
	w.journal.add("SwapBuffers")
	w.Swaps++
}

func (w *Window) FramebufferSize() (int, int) {
	return w.width, w.height
}

func (w *Window) Destroy() {
	w.journal.add("Destroy")
	w.Destroyed = true
}

// Emit delivers ev through the registered callbacks as the window system
// would during PollEvents.
func (w *Window) Emit(ev glplotter.Event) {
	switch e := ev.(type) {
	case glplotter.KeyEvent:
		if w.keyCb != nil {
			w.keyCb(e)
		}
	case glplotter.FramebufferSizeEvent:
		w.width, w.height = e.Width, e.Height
		if w.sizeCb != nil {
			w.sizeCb(e)
		}
	}
}

type Shader struct {
	Stage    glplotter.ShaderStage
	Source   string
	Compiled bool
	Log      string
	Deleted  bool
}

type Program struct {
	Attached []uint32
	Linked   bool
	Log      string
	Deleted  bool
}

type Attrib struct {
	Buffer     uint32
	Size       int32
	Type       uint32
	Normalized bool
	Stride     int32
	Offset     uintptr
	Enabled    bool
}

type Draw struct {
	Program uint32
	VAO     uint32
	Mode    uint32
	First   int32
	Count   int32
}

type GL struct {
	journal *Journal
	window  *Window
	loaded  bool
	next    uint32

	Shaders  map[uint32]*Shader
	Programs map[uint32]*Program
	Buffers  map[uint32][]byte
	VAOs     map[uint32]map[uint32]*Attrib

	Viewports  []glplotter.Viewport
	Background [4]float32
	Clears     int
	Draws      []Draw

	program     uint32
	vao         uint32
	arrayBuffer uint32
}

var _ glplotter.GL = &GL{}

func NewGL(j *Journal) *GL {
	return &GL{
		journal:  j,
		Shaders:  make(map[uint32]*Shader),
		Programs: make(map[uint32]*Program),
		Buffers:  make(map[uint32][]byte),
		VAOs:     make(map[uint32]map[uint32]*Attrib),
	}
}

func (g *GL) call(format string, args ...any) {
	if !g.loaded {
		panic("glfake: GL call before LoadGL: " + fmt.Sprintf(format, args...))
	}
	if g.window == nil || !g.window.Current || g.window.Destroyed {
		panic("glfake: GL call without a current context: " + fmt.Sprintf(format, args...))
	}
	g.journal.add("gl."+format, args...)
}

func (g *GL) handle() uint32 {
	g.next++
	return g.next
}

func (g *GL) GetString(name uint32) string {
	g.call("GetString %#x", name)
	switch name {
	case glplotter.Version:
		return "3.3.0 glfake"
	case glplotter.Vendor:
		return "glboot"
	case glplotter.Renderer:
		return "glfake"
	}
	return ""
}

func (g *GL) Viewport(x, y, width, height int32) {
	g.call("Viewport %d %d %d %d", x, y, width, height)
	g.Viewports = append(g.Viewports, glplotter.NewViewport(x, y, width, height))
}

func (g *GL) ClearColor(r, gr, b, a float32) {
	g.call("ClearColor %g %g %g %g", r, gr, b, a)
	g.Background = [4]float32{r, gr, b, a}
}

func (g *GL) Clear(mask uint32) {
	g.call("Clear %#x", mask)
	g.Clears++
}

func (g *GL) CreateShader(stage glplotter.ShaderStage) uint32 {
	id := g.handle()
	g.call("CreateShader %s %d", stage, id)
	g.Shaders[id] = &Shader{Stage: stage}
	return id
}

func (g *GL) ShaderSource(shader uint32, source string) {
	g.call("ShaderSource %d", shader)
	g.Shaders[shader].Source = source
}

func (g *GL) CompileShader(shader uint32) {
	g.call("CompileShader %d", shader)
	s := g.Shaders[shader]
	s.Log = checkSource(s.Source)
	s.Compiled = s.Log == ""
}

func (g *GL) ShaderCompiled(shader uint32) bool {
	g.call("ShaderCompiled %d", shader)
	return g.Shaders[shader].Compiled
}

func (g *GL) ShaderInfoLog(shader uint32) string {
	g.call("ShaderInfoLog %d", shader)
	return g.Shaders[shader].Log
}

func (g *GL) DeleteShader(shader uint32) {
	g.call("DeleteShader %d", shader)
	g.Shaders[shader].Deleted = true
}

func (g *GL) CreateProgram() uint32 {
	id := g.handle()
	g.call("CreateProgram %d", id)
	g.Programs[id] = &Program{}
	return id
}

func (g *GL) AttachShader(program, shader uint32) {
	g.call("AttachShader %d %d", program, shader)
	p := g.Programs[program]
	p.Attached = append(p.Attached, shader)
}

func (g *GL) LinkProgram(program uint32) {
	g.call("LinkProgram %d", program)
	p := g.Programs[program]
	stages := map[glplotter.ShaderStage]int{}
	for _, id := range p.Attached {
		s := g.Shaders[id]
		if !s.Compiled {
			p.Log = fmt.Sprintf("error: shader %d not compiled", id)
			return
		}
		stages[s.Stage]++
	}
	if stages[glplotter.VertexStage] != 1 || stages[glplotter.FragmentStage] != 1 {
		p.Log = "error: program needs exactly one vertex and one fragment shader"
		return
	}
	p.Linked = true
}

func (g *GL) ProgramLinked(program uint32) bool {
	g.call("ProgramLinked %d", program)
	return g.Programs[program].Linked
}

func (g *GL) ProgramInfoLog(program uint32) string {
	g.call("ProgramInfoLog %d", program)
	return g.Programs[program].Log
}

func (g *GL) UseProgram(program uint32) {
	g.call("UseProgram %d", program)
	g.program = program
}

func (g *GL) DeleteProgram(program uint32) {
	g.call("DeleteProgram %d", program)
	g.Programs[program].Deleted = true
}

func (g *GL) GenVertexArray() uint32 {
	id := g.handle()
	g.call("GenVertexArray %d", id)
	g.VAOs[id] = make(map[uint32]*Attrib)
	return id
}

func (g *GL) BindVertexArray(vao uint32) {
	g.call("BindVertexArray %d", vao)
	g.vao = vao
}

func (g *GL) DeleteVertexArray(vao uint32) {
	g.call("DeleteVertexArray %d", vao)
	delete(g.VAOs, vao)
}

func (g *GL) GenBuffer() uint32 {
	id := g.handle()
	g.call("GenBuffer %d", id)
	g.Buffers[id] = nil
	return id
}

func (g *GL) BindBuffer(target, buffer uint32) {
	g.call("BindBuffer %#x %d", target, buffer)
	if target == glplotter.ArrayBuffer {
		g.arrayBuffer = buffer
	}
}

func (g *GL) BufferData(target uint32, data []float32, usage uint32) {
	g.call("BufferData %#x %d %#x", target, len(data)*4, usage)
	buf := make([]byte, len(data)*4)
	for i, f := range data {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	g.Buffers[g.bound(target)] = buf
}

func (g *GL) BufferContents(target uint32, size int) []byte {
	g.call("BufferContents %#x %d", target, size)
	src := g.Buffers[g.bound(target)]
	out := make([]byte, size)
	copy(out, src)
	return out
}

func (g *GL) DeleteBuffer(buffer uint32) {
	g.call("DeleteBuffer %d", buffer)
	delete(g.Buffers, buffer)
}

func (g *GL) bound(target uint32) uint32 {
	if target != glplotter.ArrayBuffer || g.arrayBuffer == 0 {
		panic(fmt.Sprintf("glfake: no buffer bound to %#x", target))
	}
	return g.arrayBuffer
}

func (g *GL) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	g.call("VertexAttribPointer %d %d %#x %t %d %d", index, size, xtype, normalized, stride, offset)
	attribs := g.VAOs[g.vao]
	if attribs == nil {
		panic("glfake: VertexAttribPointer without a bound vertex array")
	}
	a := attribs[index]
	if a == nil {
		a = &Attrib{}
		attribs[index] = a
	}
	a.Buffer = g.bound(glplotter.ArrayBuffer)
	a.Size, a.Type, a.Normalized, a.Stride, a.Offset = size, xtype, normalized, stride, offset
}

func (g *GL) EnableVertexAttribArray(index uint32) {
	g.call("EnableVertexAttribArray %d", index)
	attribs := g.VAOs[g.vao]
	if attribs == nil {
		panic("glfake: EnableVertexAttribArray without a bound vertex array")
	}
	a := attribs[index]
	if a == nil {
		a = &Attrib{}
		attribs[index] = a
	}
	a.Enabled = true
}

func (g *GL) DrawArrays(mode uint32, first, count int32) {
	g.call("DrawArrays %#x %d %d", mode, first, count)
	g.Draws = append(g.Draws, Draw{Program: g.program, VAO: g.vao, Mode: mode, First: first, Count: count})
}

// ReadPixels returns the framebuffer filled with the last clear color.
func (g *GL) ReadPixels(x, y, width, height int32) []byte {
	g.call("ReadPixels %d %d %d %d", x, y, width, height)
	px := [4]byte{}
	for i, c := range g.Background {
		px[i] = byte(math.Round(float64(c) * 255))
	}
	out := make([]byte, 0, int(width)*int(height)*4)
	for i := 0; i < int(width*height); i++ {
		out = append(out, px[:]...)
	}
	return out
}

// checkSource stands in for a GLSL compiler: it returns a log line for
// sources that are obviously broken and "" otherwise.
func checkSource(src string) string {
	if !strings.HasPrefix(src, "#version ") {
		return "0:1(1): error: missing #version directive"
	}
	if !strings.Contains(src, "void main()") {
		return "0:1(1): error: entry point main not found"
	}
	depth := 0
	for _, r := range src {
		switch r {
		case '{', '(':
			depth++
		case '}', ')':
			depth--
		}
		if depth < 0 {
			return "0:1(1): error: syntax error, unexpected closing bracket"
		}
	}
	if depth != 0 {
		return "0:1(1): error: syntax error, unexpected end of file"
	}
	return ""
}
