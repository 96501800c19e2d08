package glplotter

// draw renders one frame into the back buffer. A pending capture reads the
// frame back before it is presented.
func draw(ctx *Context) error {
	c := ctx.Config.ClearColor
	ctx.GL.ClearColor(c.R, c.G, c.B, c.A)
	ctx.GL.Clear(ColorBufferBit)

	if ctx.graphic != nil {
		ctx.graphic.Draw(ctx)
	}

	if ctx.capture != "" {
		path := ctx.capture
		ctx.capture = ""
		if err := CaptureFile(ctx, path); err != nil {
			return err
		}
		Logger().Info("frame captured", "path", path)
	}
	return nil
}
