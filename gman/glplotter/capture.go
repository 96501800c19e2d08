package glplotter

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// Capture reads the current viewport back from the framebuffer and encodes
// it as PNG.
func Capture(ctx *Context, w io.Writer) error {
	vp := ctx.Viewport
	if vp.Width <= 0 || vp.Height <= 0 {
		return fmt.Errorf("capture: empty viewport %dx%d", vp.Width, vp.Height)
	}
	pix := ctx.GL.ReadPixels(vp.X, vp.Y, vp.Width, vp.Height)
	img, err := frameImage(int(vp.Width), int(vp.Height), pix)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func CaptureFile(ctx *Context, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("capture: %w", err)
	}
	if err := Capture(ctx, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// frameImage turns bottom-up RGBA8 rows as returned by glReadPixels into a
// top-down image.
func frameImage(width, height int, pix []byte) (*image.RGBA, error) {
	stride := width * 4
	if len(pix) != stride*height {
		return nil, fmt.Errorf("capture: got %d bytes for %dx%d frame", len(pix), width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		src := pix[(height-1-y)*stride : (height-y)*stride]
		copy(img.Pix[y*img.Stride:y*img.Stride+stride], src)
	}
	return img, nil
}
