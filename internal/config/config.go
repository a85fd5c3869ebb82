// Package config turns millimeter and inch measurements into the pixel
// constants the pipeline runs on.
package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const mmPerInch = 25.4

// Config holds the user-facing run configuration. All physical measurements
// are in millimeters or inches; pixel values are derived once via Derive().
type Config struct {
	CardWidthMM  float64 `json:"card_width_mm"`
	CardHeightMM float64 `json:"card_height_mm"`

	PaperWidthIn  float64 `json:"paper_width_in"`
	PaperHeightIn float64 `json:"paper_height_in"`

	DPI int `json:"dpi"`

	// Desired final black border thickness per side.
	BorderTopMM    float64 `json:"border_top_mm"`
	BorderLeftMM   float64 `json:"border_left_mm"`
	BorderRightMM  float64 `json:"border_right_mm"`
	BorderBottomMM float64 `json:"border_bottom_mm"`

	// Vertical offset below the top of content where extended-art side
	// borders are sampled.
	ExtendedArtScanOffsetMM float64 `json:"extended_art_scan_offset_mm"`

	// Pixels trimmed from the original bottom of borderless cards.
	// 0 disables the trim.
	FullArtBottomCropPx int `json:"full_art_bottom_crop_px"`

	// Cut-guide line appearance on the composed sheet.
	GuideColor   string `json:"guide_color"`
	GuideWidthPx int    `json:"guide_width_px"`

	// A pixel is background iff all of R, G, B are <= this value.
	BorderThreshold int `json:"border_threshold"`

	// Width of the left/right edge zones checked for solid border.
	EdgeCheckWidthPx int `json:"edge_check_width_px"`

	BrightnessFactor float64 `json:"brightness_factor"`
	SaturationFactor float64 `json:"saturation_factor"`

	// ForceStandardFrame processes every card as "standard", skipping
	// automatic frame detection.
	ForceStandardFrame bool `json:"force_standard_frame"`
}

// Default returns the stock configuration: 63.5x88.9mm cards on US letter
// paper at 1200 DPI with 3mm side/top borders and a 4.1mm bottom border.
func Default() *Config {
	return &Config{
		CardWidthMM:             63.5,
		CardHeightMM:            88.9,
		PaperWidthIn:            8.5,
		PaperHeightIn:           11,
		DPI:                     1200,
		BorderTopMM:             3,
		BorderLeftMM:            3,
		BorderRightMM:           3,
		BorderBottomMM:          4.1,
		ExtendedArtScanOffsetMM: 3,
		FullArtBottomCropPx:     80,
		GuideColor:              "#FF3399",
		GuideWidthPx:            4,
		BorderThreshold:         50,
		EdgeCheckWidthPx:        10,
		BrightnessFactor:        1.0,
		SaturationFactor:        1.0,
	}
}

// LoadFromFile reads a JSON configuration file over the defaults, so a file
// only needs to name the values it changes.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration before any pixel math is done.
func (c *Config) Validate() error {
	if c.DPI < 1 {
		return fmt.Errorf("dpi must be positive")
	}
	if c.CardWidthMM <= 0 || c.CardHeightMM <= 0 {
		return fmt.Errorf("card dimensions must be positive")
	}
	if c.PaperWidthIn <= 0 || c.PaperHeightIn <= 0 {
		return fmt.Errorf("paper dimensions must be positive")
	}
	if c.BorderTopMM < 0 || c.BorderLeftMM < 0 || c.BorderRightMM < 0 || c.BorderBottomMM < 0 {
		return fmt.Errorf("border widths must not be negative")
	}
	if c.BorderThreshold < 0 || c.BorderThreshold > 255 {
		return fmt.Errorf("border_threshold must be between 0 and 255")
	}
	if c.FullArtBottomCropPx < 0 {
		return fmt.Errorf("full_art_bottom_crop_px must not be negative")
	}
	if c.GuideWidthPx < 1 {
		return fmt.Errorf("guide_width_px must be at least 1")
	}
	if c.BrightnessFactor < 0 || c.SaturationFactor < 0 {
		return fmt.Errorf("enhancement factors must not be negative")
	}
	if _, err := colorful.Hex(c.GuideColor); err != nil {
		return fmt.Errorf("invalid guide_color %q: %w", c.GuideColor, err)
	}
	return nil
}

// PhysicalSpec is the pixel-space view of a Config at its DPI, computed once
// at startup and treated as read-only for the lifetime of a run.
type PhysicalSpec struct {
	CardW, CardH int

	BorderTop    int
	BorderLeft   int
	BorderRight  int
	BorderBottom int

	ScanOffsetY int

	PaperW, PaperH int
	GridW, GridH   int

	// Top-left of the 3x3 grid on the page.
	MarginX, MarginY int

	// MarginClamped reports that the grid did not fit on the paper and the
	// margins were clamped to zero.
	MarginClamped bool

	DPI int

	GuideColor color.NRGBA
	GuideWidth int

	FullArtBottomCrop int
	Threshold         int
	EdgeCheckWidth    int

	Brightness float64
	Saturation float64

	ForceStandard bool
}

// Derive converts the millimeter/inch configuration into the pixel constants
// used by the rest of the pipeline.
func (c *Config) Derive() (*PhysicalSpec, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	guide, err := colorful.Hex(c.GuideColor)
	if err != nil {
		return nil, fmt.Errorf("invalid guide_color %q: %w", c.GuideColor, err)
	}
	gr, gg, gb := guide.RGB255()

	s := &PhysicalSpec{
		CardW:             mmToPx(c.CardWidthMM, c.DPI),
		CardH:             mmToPx(c.CardHeightMM, c.DPI),
		BorderTop:         mmToPx(c.BorderTopMM, c.DPI),
		BorderLeft:        mmToPx(c.BorderLeftMM, c.DPI),
		BorderRight:       mmToPx(c.BorderRightMM, c.DPI),
		BorderBottom:      mmToPx(c.BorderBottomMM, c.DPI),
		ScanOffsetY:       mmToPx(c.ExtendedArtScanOffsetMM, c.DPI),
		PaperW:            int(math.Round(c.PaperWidthIn * float64(c.DPI))),
		PaperH:            int(math.Round(c.PaperHeightIn * float64(c.DPI))),
		DPI:               c.DPI,
		GuideColor:        color.NRGBA{R: gr, G: gg, B: gb, A: 255},
		GuideWidth:        c.GuideWidthPx,
		FullArtBottomCrop: c.FullArtBottomCropPx,
		Threshold:         c.BorderThreshold,
		EdgeCheckWidth:    c.EdgeCheckWidthPx,
		Brightness:        c.BrightnessFactor,
		Saturation:        c.SaturationFactor,
		ForceStandard:     c.ForceStandardFrame,
	}

	s.GridW = 3 * s.CardW
	s.GridH = 3 * s.CardH
	s.MarginX = (s.PaperW - s.GridW) / 2
	s.MarginY = (s.PaperH - s.GridH) / 2
	if s.MarginX < 0 || s.MarginY < 0 {
		s.MarginClamped = true
		s.MarginX = max(0, s.MarginX)
		s.MarginY = max(0, s.MarginY)
	}

	return s, nil
}

func mmToPx(mm float64, dpi int) int {
	return int(math.Round(mm / mmPerInch * float64(dpi)))
}
