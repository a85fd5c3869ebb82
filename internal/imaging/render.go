package imaging

import (
	"image"
	"log"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/disintegration/imaging"

	"github.com/jamesreck/proxify/internal/config"
)

// ExtentSource tags how the effective content extents were determined.
type ExtentSource int

const (
	// ExtentBBox means the overall content bounding box was used directly.
	ExtentBBox ExtentSource = iota

	// ExtentRowScan means the horizontal extent came from the extended-art
	// row sample.
	ExtentRowScan

	// ExtentRowScanFallback means the row sample found nothing (or the
	// sample row was out of bounds) and the overall box was kept.
	ExtentRowScanFallback

	// ExtentFullImage means no content box was found and the full image
	// stood in for it.
	ExtentFullImage
)

func (s ExtentSource) String() string {
	switch s {
	case ExtentBBox:
		return "bbox"
	case ExtentRowScan:
		return "row_scan"
	case ExtentRowScanFallback:
		return "row_scan_fallback"
	case ExtentFullImage:
		return "full_image"
	}
	return "unknown"
}

// Report describes how one card was processed. Every fallback decision is
// recorded here so callers and tests can assert on the path taken.
type Report struct {
	Path   string          `json:"path"`
	Frame  FrameType       `json:"frame"`
	Forced bool            `json:"forced"`
	Extent ExtentSource    `json:"extent"`
	ScanY  int             `json:"scan_y"` // extended-art sample row, -1 when not sampled
	Crop   image.Rectangle `json:"crop"`
	Result CropOutcome     `json:"result"`
}

// Renderer turns source scans into fixed-size card images according to a
// PhysicalSpec. It holds no per-card state; one Renderer serves a whole run.
type Renderer struct {
	spec   *config.PhysicalSpec
	logger *log.Logger
}

// NewRenderer creates a Renderer for the given spec. logger may be nil to
// silence per-card diagnostics.
func NewRenderer(spec *config.PhysicalSpec, logger *log.Logger) *Renderer {
	return &Renderer{spec: spec, logger: logger}
}

// RenderCard loads one source image and produces a card of exactly
// CardW x CardH pixels.
//
// A file that cannot be read or decoded returns a nil image with the error;
// the caller skips that cell without aborting the batch. Every other failure
// degrades through the fallback chain and still yields a full-size card,
// with the chosen path recorded in the Report.
func (r *Renderer) RenderCard(path string) (*image.NRGBA, *Report, error) {
	src, err := Load(path)
	if err != nil {
		return nil, nil, err
	}
	card, report := r.Render(src)
	report.Path = path
	return card, report, nil
}

// Render runs the classification and border-normalization pipeline on an
// already-decoded image.
func (r *Renderer) Render(src image.Image) (*image.NRGBA, *Report) {
	spec := r.spec
	// Normalize to NRGBA with a zero origin so every component shares one
	// pixel layout.
	norm := imaging.Clone(src)
	w := norm.Bounds().Dx()
	h := norm.Bounds().Dy()

	report := &Report{ScanY: -1}

	if spec.ForceStandard {
		report.Frame = FrameStandard
		report.Forced = true
	} else {
		report.Frame = ClassifyFrame(norm, spec.Threshold, spec.EdgeCheckWidth)
	}

	var sized *image.NRGBA
	switch report.Frame {
	case FrameStandard, FrameExtendedArt:
		sized = r.renderFramed(norm, w, h, report)
	case FrameBorderless:
		sized = r.renderBorderless(norm, w, h, report)
	}

	if sized == nil {
		// Contract: always hand back a full-size card.
		r.logf("no image produced, resizing original")
		report.Result = CropOriginalResize
		sized = imaging.Resize(norm, spec.CardW, spec.CardH, imaging.Lanczos)
	}

	return r.enhance(sized), report
}

// renderFramed handles standard and extended-art cards: effective content
// extents, the proportional border crop, and the resize to card size.
func (r *Renderer) renderFramed(norm *image.NRGBA, w, h int, report *Report) *image.NRGBA {
	spec := r.spec

	content, ok := ContentBBox(norm, spec.Threshold)
	report.Extent = ExtentBBox
	if !ok {
		r.logf("no content found, treating full image as content")
		content = FullImage(w, h)
		report.Extent = ExtentFullImage
	}

	if report.Frame == FrameExtendedArt && ok {
		scanY := content.Y0 + spec.ScanOffsetY
		report.ScanY = scanY
		if scanY >= 0 && scanY < h {
			x0, x1, found, err := RowExtent(norm, scanY, spec.Threshold)
			if err == nil && found && x0 <= x1 {
				content.X0 = x0
				content.X1 = x1 + 1
				report.Extent = ExtentRowScan
			} else {
				r.logf("no side content at y=%d, keeping overall box", scanY)
				report.Extent = ExtentRowScanFallback
			}
		} else {
			r.logf("sample row y=%d outside image height %d, keeping overall box", scanY, h)
			report.Extent = ExtentRowScanFallback
		}
	}

	borders := Borders{
		Top:    spec.BorderTop,
		Left:   spec.BorderLeft,
		Right:  spec.BorderRight,
		Bottom: spec.BorderBottom,
	}
	rect, outcome := PlanCrop(w, h, content, borders, spec.CardW, spec.CardH)
	if outcome != CropProportional {
		r.logf("proportional crop invalid, fell back to %s", outcome)
	}
	report.Crop = rect
	report.Result = outcome

	cropped := imaging.Crop(norm, rect)
	return r.resizeToCard(cropped)
}

// renderBorderless handles full-bleed cards: an optional fixed trim from the
// bottom, then the resize.
func (r *Renderer) renderBorderless(norm *image.NRGBA, w, h int, report *Report) *image.NRGBA {
	spec := r.spec

	if spec.FullArtBottomCrop <= 0 {
		report.Crop = image.Rect(0, 0, w, h)
		report.Result = CropResizeOnly
		return r.resizeToCard(norm)
	}

	rect := BottomTrimRect(w, h, spec.FullArtBottomCrop)
	if spec.FullArtBottomCrop >= h {
		r.logf("bottom trim %dpx meets or exceeds height %dpx, cropping to 1px", spec.FullArtBottomCrop, h)
	}
	report.Crop = rect
	report.Result = CropBottomTrim
	return r.resizeToCard(imaging.Crop(norm, rect))
}

func (r *Renderer) resizeToCard(img *image.NRGBA) *image.NRGBA {
	if img.Bounds().Dx() == r.spec.CardW && img.Bounds().Dy() == r.spec.CardH {
		return img
	}
	return imaging.Resize(img, r.spec.CardW, r.spec.CardH, imaging.Lanczos)
}

// enhance applies the optional brightness and saturation adjustments, in
// that order. A factor of 1.0 is a no-op. Factors are expressed like
// enhancement multipliers (1.15 = +15%), which bild takes as a change
// relative to zero.
func (r *Renderer) enhance(img *image.NRGBA) *image.NRGBA {
	out := img
	if r.spec.Brightness != 1.0 {
		out = imaging.Clone(adjust.Brightness(out, r.spec.Brightness-1.0))
	}
	if r.spec.Saturation != 1.0 {
		out = imaging.Clone(adjust.Saturation(out, r.spec.Saturation-1.0))
	}
	return out
}

func (r *Renderer) logf(format string, args ...interface{}) {
	if r.logger != nil {
		r.logger.Printf("  "+format, args...)
	}
}
