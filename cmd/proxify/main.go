package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/jamesreck/proxify/internal/config"
	"github.com/jamesreck/proxify/internal/imaging"
	"github.com/jamesreck/proxify/internal/scan"
	"github.com/jamesreck/proxify/internal/sheet"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	var (
		inDir         string
		outDir        string
		configPath    string
		forceStandard bool
		brightness    float64
		saturation    float64
		showVersion   bool
	)

	defaults := config.Default()

	flag.StringVar(&inDir, "in", "", "folder containing card images")
	flag.StringVar(&outDir, "out", "", "output directory for print sheets")
	flag.StringVar(&configPath, "config", "", "optional JSON config file")
	flag.BoolVar(&forceStandard, "force-standard", defaults.ForceStandardFrame,
		"process every card as a standard frame, skipping detection")
	flag.Float64Var(&brightness, "brightness", defaults.BrightnessFactor,
		"brightness factor (1.0 = no change)")
	flag.Float64Var(&saturation, "saturation", defaults.SaturationFactor,
		"saturation factor (1.0 = no change)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("proxify %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(0)

	if inDir == "" || outDir == "" {
		log.Fatalf("usage: %s -in <card folder> -out <sheet folder> [-config file.json] [-force-standard]",
			filepath.Base(os.Args[0]))
	}

	cfg := defaults
	if configPath != "" {
		loaded, err := config.LoadFromFile(configPath)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
		cfg = loaded
	}
	// Flags given on the command line win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "force-standard":
			cfg.ForceStandardFrame = forceStandard
		case "brightness":
			cfg.BrightnessFactor = brightness
		case "saturation":
			cfg.SaturationFactor = saturation
		}
	})

	spec, err := cfg.Derive()
	if err != nil {
		log.Fatalf("Error in configuration: %v", err)
	}
	if spec.MarginClamped {
		log.Printf("Warning: calculated grid size exceeds paper dimensions at %d DPI", spec.DPI)
	}

	if err := checkSetup(inDir, outDir); err != nil {
		log.Fatalf("Error: %v", err)
	}

	paths, err := scan.ListImages(inDir)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	log.Printf("Found %d image(s) in %q", len(paths), inDir)

	if len(paths) == 0 {
		log.Fatalf("No images found in the input folder")
	}
	if len(paths) < sheet.CardsPerSheet {
		log.Fatalf("Only %d image(s) found; need at least %d for a full print sheet",
			len(paths), sheet.CardsPerSheet)
	}

	if cfg.ForceStandardFrame {
		log.Printf("All cards will be processed as standard frames (detection disabled)")
	}

	renderer := imaging.NewRenderer(spec, log.Default())
	batch := sheet.Chunk(paths)

	for i, chunk := range batch.Sheets {
		name := sheet.Name(chunk[0], chunk[len(chunk)-1], i+1)
		outPath := filepath.Join(outDir, name)
		log.Printf("--- Sheet %d/%d: %s ---", i+1, len(batch.Sheets), name)

		rendered := renderCards(renderer, chunk)
		page := sheet.Compose(spec, rendered)
		if err := sheet.Save(page, outPath, spec.DPI); err != nil {
			log.Printf("Error saving sheet %s: %v", name, err)
			continue
		}
		log.Printf("Saved sheet: %s", outPath)
	}

	log.Printf("--- Summary ---")
	log.Printf("Created %d print sheet(s) in %q", len(batch.Sheets), outDir)
	if len(batch.Leftover) > 0 {
		log.Printf("Note: %d image(s) did not form a full batch of %d:",
			len(batch.Leftover), sheet.CardsPerSheet)
		for _, p := range batch.Leftover {
			log.Printf("  - %s", filepath.Base(p))
		}
	}
}

// checkSetup validates the input folder and creates the output directory.
// Any failure here is fatal before a single image is processed.
func checkSetup(inDir, outDir string) error {
	info, err := os.Stat(inDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("input folder %q not found or not a directory", inDir)
	}

	info, err = os.Stat(outDir)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory %q: %w", outDir, err)
		}
		log.Printf("Created output directory: %q", outDir)
	case err != nil:
		return fmt.Errorf("checking output path %q: %w", outDir, err)
	case !info.IsDir():
		return fmt.Errorf("output path %q exists but is not a directory", outDir)
	}
	return nil
}

// renderCards runs the pipeline on each path of one sheet. A card that fails
// to decode logs the error and leaves a nil slot for the composer to skip.
func renderCards(renderer *imaging.Renderer, paths []string) []*image.NRGBA {
	cards := make([]*image.NRGBA, len(paths))
	for i, path := range paths {
		log.Printf("Processing %s...", filepath.Base(path))
		card, report, err := renderer.RenderCard(path)
		if err != nil {
			log.Printf("  Error processing %s: %v (cell left blank)", filepath.Base(path), err)
			continue
		}
		if report.Forced {
			log.Printf("  Config override: treating card as %q", report.Frame)
		} else {
			log.Printf("  Detected card type: %s", report.Frame)
		}
		log.Printf("  Crop: %s (extents via %s)", report.Result, report.Extent)
		cards[i] = card
	}
	return cards
}
