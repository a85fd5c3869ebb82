package imaging

import (
	"image"
	"math"
)

// Borders holds target border widths in final-card pixels, one per side.
type Borders struct {
	Top    int
	Left   int
	Right  int
	Bottom int
}

// CropOutcome tags which path produced a crop decision, so fallbacks are
// observable without scraping log output.
type CropOutcome int

const (
	// CropProportional is the normal path: the content box expanded by
	// back-projected border widths.
	CropProportional CropOutcome = iota

	// CropContentBox means the proportional rectangle was degenerate and
	// the raw content box was used instead.
	CropContentBox

	// CropFullImage means no usable content box existed and the whole
	// original image was used.
	CropFullImage

	// CropBottomTrim is the borderless path with a fixed-pixel bottom trim.
	CropBottomTrim

	// CropResizeOnly is the borderless path with the trim disabled.
	CropResizeOnly

	// CropOriginalResize means the renderer fell back to resizing the
	// untouched original.
	CropOriginalResize
)

func (o CropOutcome) String() string {
	switch o {
	case CropProportional:
		return "proportional"
	case CropContentBox:
		return "content_box"
	case CropFullImage:
		return "full_image"
	case CropBottomTrim:
		return "bottom_trim"
	case CropResizeOnly:
		return "resize_only"
	case CropOriginalResize:
		return "original_resize"
	}
	return "unknown"
}

// PlanCrop computes the source-pixel crop rectangle for a standard or
// extended-art card so that, once the rectangle is scaled to the
// targetW x targetH card, the printed border measures exactly the configured
// width on every side regardless of the source resolution or its original
// border thickness.
//
// content is the effective content extent within a w x h source image. The
// box is expanded outward by each border width divided by the
// artwork scale factor on that axis, then clamped to the image. A degenerate
// result falls back to the raw content box, and failing that to the full
// image; the returned CropOutcome says which path was taken.
func PlanCrop(w, h int, content Box, borders Borders, targetW, targetH int) (image.Rectangle, CropOutcome) {
	contentW := content.Dx()
	contentH := content.Dy()
	if contentW <= 0 || contentH <= 0 {
		return image.Rect(0, 0, w, h), CropFullImage
	}

	artW := max(1, targetW-borders.Left-borders.Right)
	artH := max(1, targetH-borders.Top-borders.Bottom)

	scaleW := float64(artW) / float64(contentW)
	scaleH := float64(artH) / float64(contentH)

	keepLeft := backProject(borders.Left, scaleW)
	keepTop := backProject(borders.Top, scaleH)
	keepRight := backProject(borders.Right, scaleW)
	keepBottom := backProject(borders.Bottom, scaleH)

	x0 := max(0, content.X0-keepLeft)
	y0 := max(0, content.Y0-keepTop)
	x1 := min(w, content.X1+keepRight)
	y1 := min(h, content.Y1+keepBottom)

	if x1 > x0 && y1 > y0 {
		return image.Rect(x0, y0, x1, y1), CropProportional
	}

	if content.X0 >= 0 && content.Y0 >= 0 && content.X1 > content.X0 && content.Y1 > content.Y0 {
		return image.Rect(content.X0, content.Y0, content.X1, content.Y1), CropContentBox
	}

	return image.Rect(0, 0, w, h), CropFullImage
}

// backProject converts a final-card border width into source pixels. A scale
// of ~0 would divide by zero, so it yields no border at all.
func backProject(border int, scale float64) int {
	if math.Abs(scale) <= 1e-6 {
		return 0
	}
	return int(math.Round(float64(border) / scale))
}

// BottomTrimRect computes the borderless full-bleed crop: trim pixels are
// removed from the bottom of a w x h image. A trim that meets or exceeds the
// image height clamps to a 1-pixel-tall crop rather than failing.
func BottomTrimRect(w, h, trim int) image.Rectangle {
	if trim >= h {
		return image.Rect(0, 0, w, 1)
	}
	return image.Rect(0, 0, w, max(1, h-trim))
}
