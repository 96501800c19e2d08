package glplotter

import "fmt"

type Event interface {
	fmt.Stringer
	isEvent()
}

type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeySpace
	KeyQ
	KeyF12
)

type Action int

const (
	ActionRelease Action = iota
	ActionPress
	ActionRepeat
)

type KeyEvent struct {
	Key      Key
	Scancode int
	Action   Action
}

type FramebufferSizeEvent struct {
	Width, Height int
}

func (KeyEvent) isEvent()             {}
func (FramebufferSizeEvent) isEvent() {}

func (e KeyEvent) String() string {
	return fmt.Sprintf("key(%d, scancode=%d, action=%d)", e.Key, e.Scancode, e.Action)
}

func (e FramebufferSizeEvent) String() string {
	return fmt.Sprintf("framebuffer(%dx%d)", e.Width, e.Height)
}

// HandleEvent applies one window event to the context. Escape pressed sets
// the close flag, a framebuffer resize resets the viewport to cover the new
// size, everything else is ignored.
func HandleEvent(ctx *Context, ev Event) {
	Logger().Debug("window event", "event", ev.String())
	switch e := ev.(type) {
	case KeyEvent:
		if e.Key == KeyEscape && e.Action == ActionPress {
			Logger().Debug("escape pressed, closing window")
			ctx.Window.SetShouldClose(true)
		}
	case FramebufferSizeEvent:
		ctx.setViewport(NewViewport(0, 0, int32(e.Width), int32(e.Height)))
	}
}
