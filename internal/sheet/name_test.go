package sheet

import "testing"

func TestSanitizeComponent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain name", "/cards/Lightning_Bolt.png", "Lightning_Bolt"},
		{"spaces collapse", "Serra Angel v2.jpg", "Serra_Angel_v2"},
		{"punctuation collapses", `What? "Why".png`, "What_Why"},
		{"dots inside name", "card.v1.final.png", "card_v1_final"},
		{"leading trailing junk", "  ..card!.png", "card!"},
		{"empty after sanitizing", "....png", "file"},
		{"no extension", "cardname", "cardname"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeComponent(tt.in); got != tt.want {
				t.Errorf("SanitizeComponent(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestName(t *testing.T) {
	got := Name("/in/alpha one.png", "/in/omega.9.png", 3)
	want := "alpha_one_to_omega_9_sheet_3.png"
	if got != want {
		t.Errorf("Name = %q, want %q", got, want)
	}
}
