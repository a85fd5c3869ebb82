package imaging

import (
	"image"
	"image/color"
)

// newFilledImage creates an in-memory image filled with a single color.
func newFilledImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

var (
	frameBlack = color.NRGBA{R: 10, G: 10, B: 10, A: 255}
	artBright  = color.NRGBA{R: 230, G: 220, B: 200, A: 255}
)

// newFramedCard builds a standard-frame card: bright content surrounded by a
// solid dark frame of the given width on all four sides.
func newFramedCard(contentW, contentH, frameW int) *image.NRGBA {
	w := contentW + 2*frameW
	h := contentH + 2*frameW
	img := newFilledImage(w, h, frameBlack)
	for y := frameW; y < frameW+contentH; y++ {
		for x := frameW; x < frameW+contentW; x++ {
			img.SetNRGBA(x, y, artBright)
		}
	}
	return img
}

// newExtendedArtCard builds a card with dark top and bottom caps and
// full-bleed bright artwork in between.
func newExtendedArtCard(w, h, capH int) *image.NRGBA {
	img := newFilledImage(w, h, frameBlack)
	for y := capH; y < h-capH; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, artBright)
		}
	}
	return img
}
