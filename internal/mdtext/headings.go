// Package mdtext derives presentation metadata from markdown bodies
// without a full parse: table-of-contents headings, reading time and
// comment stripping. Everything here is a pure function of its input.
package mdtext

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/MrFadiAi/vibe-wiki-sub003/internal/domain/content"
)

// Level-1 headings are the article title, not body structure, so only
// ## and ### lines count.
var headingLine = regexp.MustCompile(`^(#{2,3})\s+(.+)$`)

// anchorStrip keeps word characters, whitespace, hyphens and the Arabic
// block; everything else is removed before the ID is formed.
var (
	anchorStrip = regexp.MustCompile(`[^\w\s\x{0600}-\x{06FF}-]`)
	wsRun       = regexp.MustCompile(`\s+`)
)

// ExtractHeadings scans the body line by line and returns the headings in
// document order. Repeated anchor IDs are disambiguated with -2, -3, …
// suffixes so in-page links stay unambiguous.
func ExtractHeadings(body string) []content.Heading {
	var out []content.Heading
	seen := make(map[string]int)

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimRight(line, "\r")
		m := headingLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		text := strings.TrimSpace(m[2])
		id := AnchorID(text)
		seen[id]++
		if n := seen[id]; n > 1 {
			id = fmt.Sprintf("%s-%d", id, n)
		}
		out = append(out, content.Heading{
			Level: len(m[1]),
			ID:    id,
			Text:  text,
		})
	}
	return out
}

// AnchorID derives an in-page anchor from heading text. Arabic heading
// text passes through verbatim; only the whitespace-to-hyphen and
// stripping rules apply to it, since Arabic has no case.
func AnchorID(text string) string {
	id := anchorStrip.ReplaceAllString(text, "")
	id = wsRun.ReplaceAllString(strings.TrimSpace(id), "-")
	return strings.ToLower(id)
}
