// Package imaging implements the per-card processing pipeline: content
// extent detection, frame classification, border-normalizing cropping, and
// rendering to the fixed card size.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based with the origin at the
// top-left corner, X increasing rightward and Y increasing downward,
// regardless of an image's bounds origin. Boxes and crop rectangles are
// inclusive on the low edge and exclusive on the high edge.
//
// # Content vs Border
//
// A single threshold separates artwork from printed frame everywhere: a
// pixel is content iff any of its R, G, B channels exceeds the threshold.
// Artwork is assumed brighter than the black frame.
//
// # Fallbacks
//
// No failure at or below RenderCard raises an error except an unreadable or
// undecodable source file. Geometric degeneracies fall through an ordered
// chain (proportional crop, content box, full image, resized original) and
// every decision is recorded as a CropOutcome/ExtentSource in the Report so
// callers never have to scrape log output.
package imaging
