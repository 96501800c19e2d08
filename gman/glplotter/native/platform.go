// Package native implements the glplotter platform on GLFW 3.3 and the
// OpenGL 3.3 core profile. All of it must run on the main OS thread.
package native

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"glboot/gman/glplotter"
)

type Platform struct{}

var _ glplotter.Platform = Platform{}

func (Platform) Init() error {
	return glfw.Init()
}

func (Platform) CreateWindow(cfg glplotter.WindowConfig) (glplotter.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.Version.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.Version.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}
	w, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	return &Window{w: w}, nil
}

// LoadGL resolves the GL entry points through glfwGetProcAddress. The
// window's context has to be current.
func (Platform) LoadGL(w glplotter.Window) (glplotter.GL, error) {
	if _, ok := w.(*Window); !ok {
		return nil, fmt.Errorf("native: foreign window type %T", w)
	}
	if glfw.GetCurrentContext() == nil {
		return nil, errors.New("native: no current GL context")
	}
	if err := gl.InitWithProcAddrFunc(glfw.GetProcAddress); err != nil {
		return nil, err
	}
	return GL{}, nil
}

func (Platform) PollEvents() {
	glfw.PollEvents()
}

func (Platform) Terminate() {
	glfw.Terminate()
}

type Window struct {
	w *glfw.Window
}

var _ glplotter.Window = &Window{}

func (w *Window) MakeContextCurrent() {
	w.w.MakeContextCurrent()
}

func (w *Window) SetSwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

func (w *Window) SetKeyCallback(cb func(glplotter.KeyEvent)) {
	w.w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
		cb(glplotter.KeyEvent{Key: mapKey(key), Scancode: scancode, Action: mapAction(action)})
	})
}

func (w *Window) SetFramebufferSizeCallback(cb func(glplotter.FramebufferSizeEvent)) {
	w.w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		cb(glplotter.FramebufferSizeEvent{Width: width, Height: height})
	})
}

func (w *Window) ShouldClose() bool {
	return w.w.ShouldClose()
}

func (w *Window) SetShouldClose(value bool) {
	w.w.SetShouldClose(value)
}

func (w *Window) SwapBuffers() {
	w.w.SwapBuffers()
}

func (w *Window) FramebufferSize() (int, int) {
	return w.w.GetFramebufferSize()
}

func (w *Window) Destroy() {
	w.w.Destroy()
}

func mapKey(k glfw.Key) glplotter.Key {
	switch k {
	case glfw.KeyEscape:
		return glplotter.KeyEscape
	case glfw.KeyEnter:
		return glplotter.KeyEnter
	case glfw.KeySpace:
		return glplotter.KeySpace
	case glfw.KeyQ:
		return glplotter.KeyQ
	case glfw.KeyF12:
		return glplotter.KeyF12
	}
	return glplotter.KeyUnknown
}

func mapAction(a glfw.Action) glplotter.Action {
	switch a {
	case glfw.Press:
		return glplotter.ActionPress
	case glfw.Repeat:
		return glplotter.ActionRepeat
	}
	return glplotter.ActionRelease
}
