package sheet

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/disintegration/imaging"

	"github.com/jamesreck/proxify/internal/config"
)

// Compose lays up to nine rendered cards onto a page canvas in a 3x3 grid
// and draws the cut guides.
//
// cards are placed row-major at the spec's precomputed grid offsets; a nil
// entry leaves its cell blank (a card that failed to decode). Entries beyond
// nine are ignored. The canvas is white, guide lines span the full page at
// the two interior column and row boundaries.
func Compose(spec *config.PhysicalSpec, cards []*image.NRGBA) *image.NRGBA {
	page := imaging.New(spec.PaperW, spec.PaperH, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	for i, card := range cards {
		if i >= CardsPerSheet {
			break
		}
		if card == nil {
			continue
		}
		row := i / 3
		col := i % 3
		x := spec.MarginX + col*spec.CardW
		y := spec.MarginY + row*spec.CardH
		page = imaging.Paste(page, card, image.Pt(x, y))
	}

	drawCutGuides(page, spec)
	return page
}

// drawCutGuides draws two vertical and two horizontal lines at the interior
// cell boundaries. Lines are offset left/up by half their width so they
// straddle the boundary the way the cut should.
func drawCutGuides(page *image.NRGBA, spec *config.PhysicalSpec) {
	for col := 1; col < 3; col++ {
		x := spec.MarginX + col*spec.CardW - spec.GuideWidth/2
		drawVLine(page, x, spec.GuideWidth, spec.GuideColor)
	}
	for row := 1; row < 3; row++ {
		y := spec.MarginY + row*spec.CardH - spec.GuideWidth/2
		drawHLine(page, y, spec.GuideWidth, spec.GuideColor)
	}
}

func drawVLine(img *image.NRGBA, x, width int, c color.NRGBA) {
	bounds := img.Bounds()
	for dx := 0; dx < width; dx++ {
		px := x + dx
		if px < bounds.Min.X || px >= bounds.Max.X {
			continue
		}
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			img.SetNRGBA(px, y, c)
		}
	}
}

func drawHLine(img *image.NRGBA, y, width int, c color.NRGBA) {
	bounds := img.Bounds()
	for dy := 0; dy < width; dy++ {
		py := y + dy
		if py < bounds.Min.Y || py >= bounds.Max.Y {
			continue
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			img.SetNRGBA(x, py, c)
		}
	}
}

// Save writes the composed page as a PNG carrying the run DPI, so print
// software sizes the sheet to its physical dimensions.
func Save(page image.Image, path string, dpi int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create sheet file: %w", err)
	}
	if err := encodePNGWithDPI(f, page, dpi); err != nil {
		f.Close()
		return fmt.Errorf("failed to write sheet: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close sheet file: %w", err)
	}
	return nil
}
