// Package slug turns article titles into URL-safe identifiers restricted
// to lowercase ASCII letters, digits and hyphens.
package slug

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLen bounds generated slugs; longer results are cut and re-trimmed.
const MaxLen = 100

// stripMarks decomposes to NFD and drops combining marks, so accented and
// vowelled variants collapse to the same base form.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Generate converts a title into a slug. Whitespace and punctuation become
// single hyphens, letters without an ASCII base form are dropped, and the
// result is truncated to MaxLen. Empty or whitespace-only input yields the
// empty string; callers decide what to do with that.
func Generate(title string) string {
	s := strings.TrimSpace(title)
	if s == "" {
		return ""
	}
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	dash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteByte(byte(r))
			dash = false
		case r == '-' || unicode.IsSpace(r) || isSeparatorPunct(r):
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		default:
			// Letters with no ASCII form (Arabic included) are dropped
			// without leaving a hyphen behind.
		}
	}

	out := strings.TrimRight(b.String(), "-")
	if len(out) > MaxLen {
		out = strings.TrimRight(out[:MaxLen], "-")
	}
	return out
}

// isSeparatorPunct reports characters that act as word separators: ASCII
// punctuation and symbols plus the Unicode general punctuation block.
func isSeparatorPunct(r rune) bool {
	if r <= unicode.MaxASCII {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}
	return r >= 0x2000 && r <= 0x206F
}

// Unique resolves collisions against an existing slug set by appending the
// first free integer suffix: base, base-1, base-2, and so on.
func Unique(title string, exists func(string) bool) string {
	base := Generate(title)
	if exists == nil || !exists(base) {
		return base
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if !exists(candidate) {
			return candidate
		}
	}
}
