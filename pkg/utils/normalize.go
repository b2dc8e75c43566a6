// Package utils holds image and upload helpers.
package utils

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"math"

	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

// NormalizeToJPG decodes input (jpg/png/webp), applies EXIF orientation,
// shrinks to maxWidth (if > 0) keeping aspect, and re-encodes as JPEG.
// Re-encoding also drops any metadata the camera embedded.
func NormalizeToJPG(input []byte, maxWidth int, quality int) ([]byte, error) {
	if len(input) == 0 {
		return nil, errors.New("empty image")
	}
	if quality <= 0 || quality > 100 {
		quality = 85
	}

	img, format, err := decodeAnyStrict(bytes.NewReader(input))
	if err != nil {
		return nil, err
	}

	// only JPEG carries orientation in practice
	if format == "jpeg" {
		img = applyOrientation(img, readEXIFOrientation(bytes.NewReader(input)))
	}

	if maxWidth > 0 {
		img = resizeMaxWidth(img, maxWidth)
	}

	var out bytes.Buffer
	if err := jpeg.Encode(&out, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func decodeAnyStrict(r *bytes.Reader) (image.Image, string, error) {
	if img, err := jpeg.Decode(r); err == nil {
		return img, "jpeg", nil
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, "", err
	}
	if img, err := png.Decode(r); err == nil {
		return img, "png", nil
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, "", err
	}
	if img, err := webp.Decode(r); err == nil {
		return img, "webp", nil
	}
	return nil, "", errors.New("unsupported image format (jpeg/png/webp)")
}

func readEXIFOrientation(r io.Reader) int {
	x, err := exif.Decode(r)
	if err != nil {
		return 1
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	ori, err := tag.Int(0)
	if err != nil {
		return 1
	}
	return ori
}

// EXIF orientation values:
// 1 = normal
// 2 = flip horizontal
// 3 = rotate 180
// 4 = flip vertical
// 5 = transpose (flip horizontal + rotate 90 CW)
// 6 = rotate 90 CW
// 7 = transverse (flip horizontal + rotate 90 CCW)
// 8 = rotate 270 CW (90 CCW)
func applyOrientation(src image.Image, ori int) image.Image {
	switch ori {
	case 2:
		return flipHorizontal(src)
	case 3:
		return rotate180(src)
	case 4:
		return flipVertical(src)
	case 5:
		return rotate90CW(flipHorizontal(src))
	case 6:
		return rotate90CW(src)
	case 7:
		return rotate90CCW(flipHorizontal(src))
	case 8:
		return rotate90CCW(src)
	default:
		return src
	}
}

func resizeMaxWidth(src image.Image, maxW int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 || w <= maxW {
		return src
	}

	newH := int(math.Round(float64(h) * float64(maxW) / float64(w)))
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, maxW, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// remap copies src into a w x h canvas, placing source pixel (x, y) at to(x, y).
func remap(src image.Image, w, h int, to func(x, y int) (int, int)) image.Image {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dx, dy := to(x, y)
			dst.Set(dx, dy, src.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

func rotate90CW(src image.Image) image.Image {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	return remap(src, h, w, func(x, y int) (int, int) { return h - 1 - y, x })
}

func rotate90CCW(src image.Image) image.Image {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	return remap(src, h, w, func(x, y int) (int, int) { return y, w - 1 - x })
}

func rotate180(src image.Image) image.Image {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	return remap(src, w, h, func(x, y int) (int, int) { return w - 1 - x, h - 1 - y })
}

func flipHorizontal(src image.Image) image.Image {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	return remap(src, w, h, func(x, y int) (int, int) { return w - 1 - x, y })
}

func flipVertical(src image.Image) image.Image {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	return remap(src, w, h, func(x, y int) (int, int) { return x, h - 1 - y })
}
