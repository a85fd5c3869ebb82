package sheet

// CardsPerSheet is the capacity of the 3x3 grid.
const CardsPerSheet = 9

// Batch is a sorted file list split into full sheets plus the images that
// did not fill one.
type Batch struct {
	// Sheets holds exactly CardsPerSheet paths each, in input order.
	Sheets [][]string

	// Leftover holds the trailing images that did not form a full sheet.
	// They are reported, never silently dropped into a partial sheet.
	Leftover []string
}

// Chunk splits paths into full sheets of CardsPerSheet images. The input
// slice is not modified; sheet slices alias its backing array.
func Chunk(paths []string) Batch {
	full := (len(paths) / CardsPerSheet) * CardsPerSheet

	var b Batch
	for i := 0; i < full; i += CardsPerSheet {
		b.Sheets = append(b.Sheets, paths[i:i+CardsPerSheet])
	}
	b.Leftover = paths[full:]
	return b
}
