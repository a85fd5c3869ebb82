package imaging

import (
	"fmt"
	"image"
)

// Box is an axis-aligned bounding box in 0-based pixel coordinates.
// (X0, Y0) is inclusive, (X1, Y1) is exclusive.
type Box struct {
	X0 int `json:"x0"`
	Y0 int `json:"y0"`
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
}

// Dx returns the box width in pixels.
func (b Box) Dx() int { return b.X1 - b.X0 }

// Dy returns the box height in pixels.
func (b Box) Dy() int { return b.Y1 - b.Y0 }

// FullImage returns a box covering an entire w x h image.
func FullImage(w, h int) Box {
	return Box{X0: 0, Y0: 0, X1: w, Y1: h}
}

// isContent reports whether an 8-bit pixel counts as artwork rather than
// border. A pixel is content iff any of its R, G, B channels exceeds the
// threshold; this is the single dark/bright definition used everywhere.
func isContent(r, g, b uint8, threshold int) bool {
	return int(r) > threshold || int(g) > threshold || int(b) > threshold
}

// contentAt samples the pixel at 0-based (x, y) and classifies it.
func contentAt(img image.Image, x, y, threshold int) bool {
	bounds := img.Bounds()
	r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
	// Convert from 16-bit to 8-bit
	return isContent(uint8(r>>8), uint8(g>>8), uint8(b>>8), threshold)
}

// ContentBBox finds the minimal bounding box of all content pixels.
//
// The second return value is false when the image contains no content pixel
// at all (fully border-colored, or zero-sized) — a distinct outcome from a
// zero-area box. Coordinates are 0-based regardless of the image's bounds
// origin.
func ContentBBox(img image.Image, threshold int) (Box, bool) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return Box{}, false
	}

	found := false
	var box Box
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !contentAt(img, x, y, threshold) {
				continue
			}
			if !found {
				box = Box{X0: x, Y0: y, X1: x + 1, Y1: y + 1}
				found = true
				continue
			}
			if x < box.X0 {
				box.X0 = x
			}
			if x+1 > box.X1 {
				box.X1 = x + 1
			}
			// Rows are scanned top to bottom, so Y0 is already minimal.
			if y+1 > box.Y1 {
				box.Y1 = y + 1
			}
		}
	}

	if !found {
		return Box{}, false
	}
	return box, true
}

// RowExtent finds the leftmost and rightmost content pixel columns on a
// single row. startX is found scanning left to right; endX scanning right to
// left, never past startX.
//
// The bool is false when the row holds no content pixel. A row outside the
// image is a precondition violation and returns an error rather than being
// clamped.
func RowExtent(img image.Image, y, threshold int) (startX, endX int, found bool, err error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if y < 0 || y >= height {
		return 0, 0, false, fmt.Errorf("row %d outside image height %d", y, height)
	}

	startX = -1
	for x := 0; x < width; x++ {
		if contentAt(img, x, y, threshold) {
			startX = x
			break
		}
	}
	if startX == -1 {
		return 0, 0, false, nil
	}

	endX = startX
	for x := width - 1; x > startX; x-- {
		if contentAt(img, x, y, threshold) {
			endX = x
			break
		}
	}
	return startX, endX, true, nil
}
