package glplotter

// Serve runs the frame loop until the window's close flag is set. Event
// polling never blocks, so the loop renders as fast as the swap interval
// allows.
func Serve(ctx *Context) (err error) {
	for !ctx.Window.ShouldClose() {
		if err = draw(ctx); err != nil {
			ctx.Window.SetShouldClose(true)
			break
		}
		ctx.Window.SwapBuffers()
		ctx.frames++

		ctx.Platform.PollEvents()
		pending := ctx.events
		ctx.events = nil
		for _, ev := range pending {
			HandleEvent(ctx, ev)
		}

		if ctx.Config.Frames > 0 && ctx.frames >= ctx.Config.Frames {
			Logger().Debug("frame limit reached", "frames", ctx.frames)
			ctx.Window.SetShouldClose(true)
		}
	}
	Logger().Info("frame loop finished", "frames", ctx.frames)
	return err
}
