package viajes

import "strings"

// NormalizePlace canonicalizes a free-text place name into a cache key:
// whitespace runs collapse to single spaces, the result is trimmed and
// ASCII-lowercased. Two spellings differing only in casing or spacing
// normalize to the same key.
func NormalizePlace(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// CleanText trims a raw feed value and maps blank or placeholder values
// ("", whitespace, the literal "nan" a spreadsheet export leaks for empty
// cells) to the empty string.
func CleanText(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "nan") {
		return ""
	}
	return s
}
