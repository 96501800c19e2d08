package glplotter_test

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glboot/gman/glplotter"
	"glboot/gman/glplotter/glfake"
)

type countingGraphic struct {
	draws    int
	released int
}

func (g *countingGraphic) Init(*glplotter.Context) error { return nil }
func (g *countingGraphic) Draw(*glplotter.Context)       { g.draws++ }
func (g *countingGraphic) Release(*glplotter.Context)    { g.released++ }

func TestServeUntilEscape(t *testing.T) {
	g := &countingGraphic{}
	ctx, p := newContext(t, glplotter.DefaultConfig(), g)
	p.Script = [][]glplotter.Event{
		nil,
		{glplotter.KeyEvent{Key: glplotter.KeyEscape, Action: glplotter.ActionRelease}},
		{glplotter.KeyEvent{Key: glplotter.KeyEscape, Action: glplotter.ActionPress}},
		{glplotter.FramebufferSizeEvent{Width: 10, Height: 10}},
	}

	require.NoError(t, glplotter.Serve(ctx))

	assert.Equal(t, 3, ctx.Frames())
	assert.Equal(t, 3, p.Window.Swaps)
	assert.Equal(t, 3, p.Polls)
	assert.Equal(t, 3, g.draws)
	assert.Equal(t, 3, p.GL.Clears)
	assert.True(t, p.Window.ShouldClose())
	// The fourth batch was never polled.
	assert.Len(t, p.Script, 1)

	ctx.Release()
	assert.Equal(t, 1, g.released)
	assert.True(t, p.Terminated)
}

func TestServeFrameOrder(t *testing.T) {
	ctx, p := newContext(t, glplotter.DefaultConfig(), &countingGraphic{})
	p.Script = [][]glplotter.Event{{glplotter.KeyEvent{Key: glplotter.KeyEscape, Action: glplotter.ActionPress}}}

	require.NoError(t, glplotter.Serve(ctx))

	j := p.Journal
	clearColor := j.Index("gl.ClearColor")
	clear := j.Index("gl.Clear ")
	swap := j.Index("SwapBuffers")
	poll := j.Index("PollEvents")
	closeAt := j.Index("SetShouldClose true")
	require.True(t, clearColor >= 0 && clear >= 0 && swap >= 0 && poll >= 0 && closeAt >= 0, "calls: %v", j.Calls)
	assert.Less(t, clearColor, clear)
	assert.Less(t, clear, swap)
	assert.Less(t, swap, poll)
	assert.Less(t, poll, closeAt)
	assert.Equal(t, [4]float32{0.1, 0.15, 0.2, 1.0}, p.GL.Background)
}

func TestServeResize(t *testing.T) {
	ctx, p := newContext(t, glplotter.DefaultConfig(), nil)
	p.Script = [][]glplotter.Event{
		{glplotter.FramebufferSizeEvent{Width: 1024, Height: 768}},
		{
			glplotter.FramebufferSizeEvent{Width: 300, Height: 200},
			glplotter.KeyEvent{Key: glplotter.KeyEscape, Action: glplotter.ActionPress},
		},
	}

	require.NoError(t, glplotter.Serve(ctx))

	assert.Equal(t, []glplotter.Viewport{
		glplotter.NewViewport(0, 0, 800, 800),
		glplotter.NewViewport(0, 0, 1024, 768),
		glplotter.NewViewport(0, 0, 300, 200),
	}, p.GL.Viewports)
	assert.Equal(t, glplotter.NewViewport(0, 0, 300, 200), ctx.Viewport)
}

func TestServeHiDPIScreenshot(t *testing.T) {
	p := glfake.NewPlatform()
	p.FramebufferScale = 2
	cfg := glplotter.DefaultConfig()
	cfg.Width, cfg.Height = 16, 8
	cfg.Frames = 1
	cfg.Screenshot = filepath.Join(t.TempDir(), "frame.png")
	ctx, err := glplotter.Init(p, nil, cfg)
	require.NoError(t, err)

	require.NoError(t, glplotter.Serve(ctx))

	data, err := os.ReadFile(cfg.Screenshot)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())
}

func TestServeFrameLimit(t *testing.T) {
	cfg := glplotter.DefaultConfig()
	cfg.Frames = 5
	ctx, p := newContext(t, cfg, nil)

	require.NoError(t, glplotter.Serve(ctx))
	assert.Equal(t, 5, ctx.Frames())
	assert.Equal(t, 5, p.Window.Swaps)
}

func TestServeClosedWindow(t *testing.T) {
	ctx, p := newContext(t, glplotter.DefaultConfig(), nil)
	p.Window.SetShouldClose(true)

	require.NoError(t, glplotter.Serve(ctx))
	assert.Zero(t, ctx.Frames())
	assert.Zero(t, p.GL.Clears)
}

func TestServeScreenshot(t *testing.T) {
	cfg := glplotter.DefaultConfig()
	cfg.Width, cfg.Height = 16, 8
	cfg.Frames = 3
	cfg.ClearColor = glplotter.Color{R: 1, G: 0, B: 0, A: 1}
	cfg.Screenshot = filepath.Join(t.TempDir(), "frame.png")
	ctx, p := newContext(t, cfg, nil)

	require.NoError(t, glplotter.Serve(ctx))
	assert.Equal(t, 1, p.Journal.Count("gl.ReadPixels"))
	assert.Less(t, p.Journal.Index("gl.ReadPixels"), p.Journal.Index("SwapBuffers"))

	data, err := os.ReadFile(cfg.Screenshot)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
	assert.Equal(t, color.RGBA{R: 255, A: 255}, color.RGBAModel.Convert(img.At(3, 3)))
}

func TestServeScreenshotFailure(t *testing.T) {
	cfg := glplotter.DefaultConfig()
	cfg.Screenshot = filepath.Join(t.TempDir(), "missing", "frame.png")
	ctx, p := newContext(t, cfg, nil)

	err := glplotter.Serve(ctx)
	require.Error(t, err)
	assert.Zero(t, p.Window.Swaps)
	assert.True(t, p.Window.ShouldClose())
}
