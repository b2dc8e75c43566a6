package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNormalizeToJPGShrinksWideImages(t *testing.T) {
	out, err := NormalizeToJPG(solidPNG(t, 1024, 512), 512, 80)
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 512, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestNormalizeToJPGKeepsSmallImages(t *testing.T) {
	out, err := NormalizeToJPG(solidPNG(t, 64, 48), 512, 0)
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestNormalizeToJPGRejectsGarbage(t *testing.T) {
	_, err := NormalizeToJPG([]byte("not an image"), 512, 85)
	assert.Error(t, err)

	_, err = NormalizeToJPG(nil, 512, 85)
	assert.Error(t, err)
}

func TestApplyOrientationSwapsAxes(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	src.Set(0, 0, color.RGBA{R: 255, A: 255})

	cw := applyOrientation(src, 6)
	assert.Equal(t, image.Rect(0, 0, 2, 4), cw.Bounds())
	// top-left moves to top-right on a clockwise turn
	r, _, _, _ := cw.At(1, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)

	same := applyOrientation(src, 1)
	assert.Equal(t, src.Bounds(), same.Bounds())

	flipped := applyOrientation(src, 2)
	r, _, _, _ = flipped.At(3, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestReadAllLimit(t *testing.T) {
	b, err := ReadAllLimit(strings.NewReader("hello"), 5)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))

	_, err = ReadAllLimit(strings.NewReader("hello!"), 5)
	assert.ErrorIs(t, err, ErrTooLarge)
}
