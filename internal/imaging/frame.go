package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// FrameType labels the printed frame style of a card scan.
type FrameType int

const (
	// FrameStandard cards have a solid black frame on all sides.
	FrameStandard FrameType = iota

	// FrameExtendedArt cards keep a black top/bottom cap but bleed artwork
	// to the side edges at mid-height.
	FrameExtendedArt

	// FrameBorderless cards have no solid margin anywhere.
	FrameBorderless
)

func (t FrameType) String() string {
	switch t {
	case FrameStandard:
		return "standard"
	case FrameExtendedArt:
		return "extended_art"
	case FrameBorderless:
		return "borderless"
	}
	return "unknown"
}

// minClassifyHeight is the smallest image height for which the sampling
// zones are meaningful; anything shorter is classified borderless outright.
const minClassifyHeight = 20

// SolidLRBorder reports whether a horizontal strip has a uniformly dark band
// along both its left and right edges of the given width.
//
// Every pixel in the leftmost edgeWidth columns and the rightmost edgeWidth
// columns must be background across the strip's full height. A strip
// narrower than 2*edgeWidth, a zero-height strip, or a non-positive
// edgeWidth is "not solid": a zero-width check proves nothing. The left band
// is checked first and a failure skips the right band.
func SolidLRBorder(strip image.Image, edgeWidth, threshold int) bool {
	if strip == nil || edgeWidth <= 0 {
		return false
	}
	bounds := strip.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if h == 0 || w < 2*edgeWidth {
		return false
	}

	for x := 0; x < edgeWidth; x++ {
		for y := 0; y < h; y++ {
			if contentAt(strip, x, y, threshold) {
				return false
			}
		}
	}
	for x := w - edgeWidth; x < w; x++ {
		for y := 0; y < h; y++ {
			if contentAt(strip, x, y, threshold) {
				return false
			}
		}
	}
	return true
}

// ClassifyFrame determines the frame style by checking for solid left/right
// borders in two full-width zones: one near the top of the card and one
// spanning 50%-60% of its height.
//
//	top solid, middle solid  -> standard
//	top solid, middle not    -> extended_art
//	top not solid            -> borderless
//
// The function is a pure function of its inputs.
func ClassifyFrame(img image.Image, threshold, edgeWidth int) FrameType {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if h < minClassifyHeight {
		return FrameBorderless
	}

	minZone := 1
	if edgeWidth > 0 {
		minZone = max(1, edgeWidth/2)
	}

	topH := max(minZone, int(float64(h)*0.05))
	topZone := imaging.Crop(img, image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Min.X+w, bounds.Min.Y+topH))

	midTop := int(float64(h) * 0.50)
	midBottom := int(float64(h) * 0.60)
	midCalc := midBottom - midTop
	midH := max(minZone, midCalc)
	// If the zone was clamped up to the minimum, pull its top upward so the
	// crop stays within the image.
	if midH == minZone && midCalc < minZone {
		if midTop+midH > h {
			midTop = max(0, h-midH)
		}
	}
	midZone := imaging.Crop(img, image.Rect(bounds.Min.X, bounds.Min.Y+midTop, bounds.Min.X+w, bounds.Min.Y+midTop+midH))

	topSolid := SolidLRBorder(topZone, edgeWidth, threshold)
	midSolid := SolidLRBorder(midZone, edgeWidth, threshold)

	switch {
	case topSolid && midSolid:
		return FrameStandard
	case topSolid:
		return FrameExtendedArt
	default:
		return FrameBorderless
	}
}
