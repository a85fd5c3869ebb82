package sheet

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"io"
	"math"
)

// pngHeaderLen is the PNG signature plus the fixed-size IHDR chunk
// (length + type + 13 data bytes + CRC), after which ancillary chunks
// may appear.
const pngHeaderLen = 8 + 4 + 4 + 13 + 4

// encodePNGWithDPI encodes img as PNG and splices in a pHYs chunk directly
// after IHDR. The standard library encoder has no resolution support, and
// without the chunk a 1200 DPI sheet prints at a default 72 DPI size.
func encodePNGWithDPI(w io.Writer, img image.Image, dpi int) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	raw := buf.Bytes()
	if len(raw) < pngHeaderLen {
		return fmt.Errorf("encoded PNG too short (%d bytes)", len(raw))
	}

	if _, err := w.Write(raw[:pngHeaderLen]); err != nil {
		return err
	}
	if _, err := w.Write(physChunk(dpi)); err != nil {
		return err
	}
	_, err := w.Write(raw[pngHeaderLen:])
	return err
}

// physChunk builds a pHYs chunk for the given DPI: pixels per meter on both
// axes, unit specifier 1 (meter).
func physChunk(dpi int) []byte {
	ppm := uint32(math.Round(float64(dpi) / 0.0254))

	chunk := make([]byte, 4+4+9+4)
	binary.BigEndian.PutUint32(chunk[0:4], 9)
	copy(chunk[4:8], "pHYs")
	binary.BigEndian.PutUint32(chunk[8:12], ppm)
	binary.BigEndian.PutUint32(chunk[12:16], ppm)
	chunk[16] = 1
	crc := crc32.ChecksumIEEE(chunk[4:17])
	binary.BigEndian.PutUint32(chunk[17:21], crc)
	return chunk
}
