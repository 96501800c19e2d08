package glplotter

import (
	"fmt"
)

// Context is everything the bootstrap produced. It is only valid on the
// thread that called Init.
type Context struct {
	Platform Platform
	Window   Window
	GL       GL
	Config   Config
	Viewport Viewport

	graphic Graphic
	events  []Event
	frames  int
	capture string
}

func windowinit(platform Platform, cfg Config) (Window, GL, error) {
	err := platform.Init()
	if err != nil {
		return nil, nil, fmt.Errorf("initialize windowing: %w", err)
	}
	window, err := platform.CreateWindow(WindowConfig{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Title:   cfg.Title,
		Version: DefaultVersion,
		Hidden:  cfg.Hidden,
	})
	if err != nil {
		platform.Terminate()
		return nil, nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	gl, err := platform.LoadGL(window)
	if err != nil {
		window.Destroy()
		platform.Terminate()
		return nil, nil, fmt.Errorf("load GL entry points: %w", err)
	}
	return window, gl, nil
}

// Init runs the bootstrap in its fixed order: windowing, window and context,
// GL entry points, event delivery, viewport, then the graphic's GPU
// resources. On error nothing is left alive.
func Init(platform Platform, graphic Graphic, cfg Config) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	window, gl, err := windowinit(platform, cfg)
	if err != nil {
		return nil, err
	}
	ctx := &Context{
		Platform: platform,
		Window:   window,
		GL:       gl,
		Config:   cfg,
		graphic:  graphic,
		capture:  cfg.Screenshot,
	}
	Logger().Info("OpenGL context ready",
		"version", gl.GetString(Version),
		"vendor", gl.GetString(Vendor),
		"renderer", gl.GetString(Renderer))

	ctx.initevents()

	if cfg.VSync {
		window.SetSwapInterval(1)
	} else {
		window.SetSwapInterval(0)
	}
	// The framebuffer is larger than the window on HiDPI displays.
	fbw, fbh := window.FramebufferSize()
	if fbw <= 0 || fbh <= 0 {
		fbw, fbh = cfg.Width, cfg.Height
	}
	ctx.setViewport(NewViewport(0, 0, int32(fbw), int32(fbh)))

	if graphic != nil {
		if err := graphic.Init(ctx); err != nil {
			window.Destroy()
			platform.Terminate()
			return nil, err
		}
	}
	return ctx, nil
}

func (c *Context) initevents() {
	c.Window.SetKeyCallback(func(e KeyEvent) { c.events = append(c.events, e) })
	c.Window.SetFramebufferSizeCallback(func(e FramebufferSizeEvent) { c.events = append(c.events, e) })
}

func (c *Context) setViewport(v Viewport) {
	c.GL.Viewport(v.X, v.Y, v.Width, v.Height)
	c.Viewport = v
}

// Frames reports how many frames have been presented.
func (c *Context) Frames() int {
	return c.frames
}

// Release frees the graphic's GPU objects and tears down the window and the
// windowing layer. The context is unusable afterwards.
func (c *Context) Release() {
	if c.graphic != nil {
		c.graphic.Release(c)
		c.graphic = nil
	}
	if c.Window != nil {
		c.Window.Destroy()
		c.Window = nil
	}
	c.Platform.Terminate()
}
