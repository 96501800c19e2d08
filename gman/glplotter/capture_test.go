package glplotter

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameImageFlipsRows(t *testing.T) {
	// Two rows, bottom row first as glReadPixels returns them.
	pix := []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	}
	img, err := frameImage(2, 2, pix)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(1, 0))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(0, 1))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(1, 1))
}

func TestFrameImageShortBuffer(t *testing.T) {
	_, err := frameImage(4, 4, make([]byte, 4*4*4-1))
	assert.Error(t, err)
}
