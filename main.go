package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/urfave/cli/v2"

	"glboot/gman"
	"glboot/gman/glplotter"
	"glboot/gman/glplotter/native"
)

func init() {
	// This is needed to arrange that main() runs on main thread.
	// See documentation for functions that are only allowed to be called from the main thread.
	runtime.LockOSThread()
}

func newApp() *cli.App {
	return &cli.App{
		Name:   "glboot",
		Usage:  "open an OpenGL 3.3 core window and draw a triangle",
		Flags:  glplotter.Flags,
		Action: run,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	glplotter.LoggerFromCLI(ctx, os.Stderr)

	cfg, err := glplotter.ConfigFromCLI(ctx)
	if err != nil {
		return err
	}

	glctx, err := glplotter.Init(native.Platform{}, gman.NewTriangle(), cfg)
	if err != nil {
		return err
	}
	defer glctx.Release()

	return glplotter.Serve(glctx)
}
