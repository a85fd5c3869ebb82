package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
)

// Load reads and decodes a card image from disk.
//
// Supported formats are PNG, JPEG, GIF, BMP, and TIFF. The concrete image
// type depends on the source format; callers that need uniform pixel access
// should normalize the result (see Renderer.RenderCard).
//
// A missing file and a corrupt file are both reported as errors; the batch
// loop treats either as a skipped card rather than a fatal condition.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}
