package sie

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Decode converts raw file bytes to text using the Windows-1252 code page.
// The code page is assumed, never detected. Every byte maps to a rune, so
// decoding cannot fail. The five bytes Windows-1252 leaves undefined (0x81,
// 0x8D, 0x8F, 0x90, 0x9D) map to the C1 control with the same value, as
// browsers decode them.
func Decode(data []byte) string {
	var b strings.Builder
	b.Grow(len(data))
	for _, c := range data {
		r := charmap.Windows1252.DecodeByte(c)
		if r == utf8.RuneError {
			r = rune(c)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Exports are usually written in code page 437 but read as Windows-1252,
// which turns the Swedish letters into the glyphs below. A Replacer makes a
// single pass, so a replacement is never substituted again.
var glyphFixer = strings.NewReplacer(
	"\u201e", "ä", // „ 0x84
	"\u201d", "ö", // ” 0x94
	"\u2122", "Ö", // ™ 0x99
	"\u2020", "å", // † 0x86
	"\u008f", "Å", // 0x8F
	"\ufffd", "?",
)

// CleanString normalizes a field value: one layer of surrounding quotes is
// removed, whitespace trimmed and mis-decoded glyphs repaired.
func CleanString(s string) string {
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	s = strings.TrimSpace(s)
	return glyphFixer.Replace(s)
}
