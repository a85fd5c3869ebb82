package sheet

import (
	"fmt"
	"testing"
)

func TestChunk(t *testing.T) {
	paths := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = fmt.Sprintf("card_%02d.png", i)
		}
		return out
	}

	tests := []struct {
		name         string
		count        int
		wantSheets   int
		wantLeftover int
	}{
		{"empty", 0, 0, 0},
		{"below one sheet", 8, 0, 8},
		{"exactly one sheet", 9, 1, 0},
		{"one sheet plus leftovers", 11, 1, 2},
		{"two sheets", 18, 2, 0},
		{"two sheets plus leftovers", 26, 2, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := paths(tt.count)
			b := Chunk(in)

			if len(b.Sheets) != tt.wantSheets {
				t.Fatalf("sheets = %d, want %d", len(b.Sheets), tt.wantSheets)
			}
			if len(b.Leftover) != tt.wantLeftover {
				t.Fatalf("leftover = %d, want %d", len(b.Leftover), tt.wantLeftover)
			}

			// Nothing dropped, order preserved.
			var rejoined []string
			for _, s := range b.Sheets {
				if len(s) != CardsPerSheet {
					t.Fatalf("sheet size = %d, want %d", len(s), CardsPerSheet)
				}
				rejoined = append(rejoined, s...)
			}
			rejoined = append(rejoined, b.Leftover...)
			if len(rejoined) != tt.count {
				t.Fatalf("total = %d, want %d", len(rejoined), tt.count)
			}
			for i, p := range rejoined {
				if p != in[i] {
					t.Fatalf("order broken at %d: %q vs %q", i, p, in[i])
				}
			}
		})
	}
}
