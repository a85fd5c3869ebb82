// Package sheet composes rendered cards into print-ready pages.
//
// A page is a 3x3 grid of fixed-size cards centered on the paper, with cut
// guides drawn at the two interior column and row boundaries. Chunk splits a
// sorted file list into full sheets of nine; images that do not fill a sheet
// are reported as leftovers, never packed into a partial page. Saved PNGs
// carry the run DPI in a pHYs chunk so print software reproduces the
// physical dimensions.
package sheet
