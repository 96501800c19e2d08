package glplotter_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glboot/gman/glplotter"
	"glboot/gman/glplotter/glfake"
)

func TestInitOrder(t *testing.T) {
	ctx, p := newContext(t, glplotter.DefaultConfig(), nil)
	j := p.Journal

	initAt := j.Index("Init")
	createAt := j.Index("CreateWindow")
	currentAt := j.Index("MakeContextCurrent")
	loadAt := j.Index("LoadGL")
	firstGL := j.Index("gl.")
	keysAt := j.Index("SetKeyCallback")
	sizeAt := j.Index("SetFramebufferSizeCallback")
	viewportAt := j.Index("gl.Viewport")

	for _, at := range []int{initAt, createAt, currentAt, loadAt, firstGL, keysAt, sizeAt, viewportAt} {
		require.GreaterOrEqual(t, at, 0, "calls: %v", j.Calls)
	}
	assert.Less(t, initAt, createAt)
	assert.Less(t, createAt, currentAt)
	assert.Less(t, currentAt, loadAt)
	assert.Less(t, loadAt, firstGL)
	assert.Less(t, keysAt, viewportAt)
	assert.Less(t, sizeAt, viewportAt)

	assert.Equal(t, `CreateWindow 800x800 "glboot" 3.3`, j.Calls[createAt])
	assert.Equal(t, glplotter.NewViewport(0, 0, 800, 800), ctx.Viewport)
	assert.Equal(t, []glplotter.Viewport{ctx.Viewport}, p.GL.Viewports)
	assert.Equal(t, 1, p.Window.SwapInterval)
	assert.Same(t, p.GL, ctx.GL)
}

func TestInitNoVSync(t *testing.T) {
	cfg := glplotter.DefaultConfig()
	cfg.VSync = false
	_, p := newContext(t, cfg, nil)
	assert.Equal(t, 0, p.Window.SwapInterval)
}

func TestInitHiDPIViewport(t *testing.T) {
	p := glfake.NewPlatform()
	p.FramebufferScale = 2
	ctx, err := glplotter.Init(p, nil, glplotter.DefaultConfig())
	require.NoError(t, err)

	// The window is created in screen coordinates, the viewport covers pixels.
	assert.Equal(t, 1, p.Journal.Count(`CreateWindow 800x800 "glboot" 3.3`))
	assert.Equal(t, glplotter.NewViewport(0, 0, 1600, 1600), ctx.Viewport)
	assert.Equal(t, []glplotter.Viewport{ctx.Viewport}, p.GL.Viewports)
}

func TestInitPlatformFailure(t *testing.T) {
	p := glfake.NewPlatform()
	p.InitErr = errors.New("no display")

	ctx, err := glplotter.Init(p, nil, glplotter.DefaultConfig())
	require.Error(t, err)
	assert.Nil(t, ctx)
	assert.ErrorIs(t, err, p.InitErr)
	assert.Equal(t, -1, p.Journal.Index("CreateWindow"))
}

func TestInitWindowFailure(t *testing.T) {
	p := glfake.NewPlatform()
	p.CreateErr = errors.New("no matching pixel format")

	_, err := glplotter.Init(p, nil, glplotter.DefaultConfig())
	require.ErrorIs(t, err, p.CreateErr)
	assert.True(t, strings.HasPrefix(err.Error(), "create window"))
	assert.True(t, p.Terminated)
}

func TestInitLoadFailure(t *testing.T) {
	p := glfake.NewPlatform()
	p.LoadErr = errors.New("glCreateShader missing")

	_, err := glplotter.Init(p, nil, glplotter.DefaultConfig())
	require.ErrorIs(t, err, p.LoadErr)
	assert.True(t, p.Window.Destroyed)
	assert.True(t, p.Terminated)
	assert.Equal(t, -1, p.Journal.Index("gl."))
}

func TestInitInvalidConfig(t *testing.T) {
	p := glfake.NewPlatform()
	cfg := glplotter.DefaultConfig()
	cfg.Height = 0

	_, err := glplotter.Init(p, nil, cfg)
	require.Error(t, err)
	assert.Empty(t, p.Journal.Calls)
}

type failingGraphic struct {
	err  error
	seen *glplotter.Context
}

func (g *failingGraphic) Init(ctx *glplotter.Context) error {
	g.seen = ctx
	return g.err
}
func (g *failingGraphic) Draw(*glplotter.Context)    {}
func (g *failingGraphic) Release(*glplotter.Context) {}

func TestInitGraphicFailure(t *testing.T) {
	p := glfake.NewPlatform()
	g := &failingGraphic{err: errors.New("boom")}

	_, err := glplotter.Init(p, g, glplotter.DefaultConfig())
	require.ErrorIs(t, err, g.err)
	require.NotNil(t, g.seen)
	assert.Equal(t, glplotter.NewViewport(0, 0, 800, 800), g.seen.Viewport)
	assert.True(t, p.Window.Destroyed)
	assert.True(t, p.Terminated)
}

func TestRelease(t *testing.T) {
	ctx, p := newContext(t, glplotter.DefaultConfig(), nil)
	ctx.Release()
	assert.True(t, p.Window.Destroyed)
	assert.True(t, p.Terminated)
	assert.Less(t, p.Journal.Index("Destroy"), p.Journal.Index("Terminate"))
}
