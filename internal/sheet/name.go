package sheet

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	invalidNameChars = regexp.MustCompile(`[<>:"/\\|?*\s.]+`)
	repeatUnderscore = regexp.MustCompile(`_+`)
)

// SanitizeComponent reduces a path to a filesystem-safe name fragment: the
// base name without extension, with whitespace and punctuation collapsed to
// single underscores. An input that sanitizes to nothing becomes "file".
func SanitizeComponent(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = invalidNameChars.ReplaceAllString(name, "_")
	name = repeatUnderscore.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")
	if name == "" {
		return "file"
	}
	return name
}

// Name builds the output filename for one sheet from the first and last
// source paths it contains and its 1-based sheet number.
func Name(firstPath, lastPath string, number int) string {
	return fmt.Sprintf("%s_to_%s_sheet_%d.png",
		SanitizeComponent(firstPath), SanitizeComponent(lastPath), number)
}
