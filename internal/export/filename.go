package export

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultFilename is used when a title leaves nothing usable.
const DefaultFilename = "chart"

// SanitizeFilename turns a chart title into a file name stem. Accents are
// stripped, whitespace runs become "_" and other unsafe characters become "-".
func SanitizeFilename(title string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	name, _, err := transform.String(t, title)
	if err != nil {
		name = title
	}

	name = strings.Join(strings.Fields(name), "_")
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			return r
		}
		return '-'
	}, name)
	if strings.Trim(name, "-_.") == "" {
		return DefaultFilename
	}
	return name
}

// SVGFilename is the download name of the vector export.
func SVGFilename(title string) string {
	return SanitizeFilename(title) + ".svg"
}

// JSONFilename is the download name of the configuration export.
func JSONFilename(title string) string {
	return SanitizeFilename(title) + "_config.json"
}
