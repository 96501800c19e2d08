package glplotter

import "glboot/primatives"

type Viewport primatives.Rectangle[int32]

func NewViewport(x, y, width, height int32) Viewport {
	var vp Viewport
	vp.X = x
	vp.Y = y
	vp.Width = width
	vp.Height = height
	return vp
}

// Graphic is the single drawable owned by a Context. Init runs once during
// the bootstrap, after the GL entry points are loaded. Draw runs once per
// frame after the color buffer has been cleared.
type Graphic interface {
	Init(ctx *Context) error
	Draw(ctx *Context)
	Release(ctx *Context)
}
