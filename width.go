package vtcore

import (
	"unicode"

	"github.com/unilibs/uniwidth"
	"golang.org/x/text/width"
)

// runeWidth returns the display width: 2 for wide characters (CJK, emoji), 1 for normal, 0 for zero-width (combining marks, control chars).
//
// uniwidth covers the common case. Combining marks (Mn/Me/Mc), which render
// as zero-width modifiers on the preceding cell regardless of what uniwidth
// reports for them, are reclassified here via the unicode package's
// categories; golang.org/x/text/width serves as a secondary check for
// East-Asian Wide/Fullwidth runes uniwidth doesn't already catch.
func runeWidth(r rune) int {
	if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) || unicode.Is(unicode.Mc, r) {
		return 0
	}
	if w := uniwidth.RuneWidth(r); w == 2 {
		return 2
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return uniwidth.RuneWidth(r)
	}
}

// isWideRune returns true if the rune occupies 2 columns (CJK ideographs, fullwidth forms, emoji).
func isWideRune(r rune) bool {
	return runeWidth(r) == 2
}

// StringWidth returns the total display width of a string (sum of rune widths).
func StringWidth(s string) int {
	return uniwidth.StringWidth(s)
}
