package mdtext

import (
	"regexp"
	"strings"
)

// DefaultWPM is the words-per-minute figure used when the caller passes
// a non-positive rate.
const DefaultWPM = 200

var (
	fencedCode = regexp.MustCompile("(?s)```.*?```")
	inlineCode = regexp.MustCompile("`[^`\n]*`")
	mdMarkers  = regexp.MustCompile(`[#*_\[\]()>-]`)
)

// ReadingTime estimates minutes of reading from the word count of the
// prose. Code is not prose: fenced blocks and inline spans are removed
// before counting. Zero words yields exactly 0; anything else rounds up,
// so even a one-word body reports 1 minute.
func ReadingTime(body string, wpm int) int {
	if wpm <= 0 {
		wpm = DefaultWPM
	}

	text := fencedCode.ReplaceAllString(body, " ")
	text = inlineCode.ReplaceAllString(text, " ")
	text = mdMarkers.ReplaceAllString(text, " ")

	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	return (words + wpm - 1) / wpm
}

// ReadingTimeDefault applies the default rate.
func ReadingTimeDefault(body string) int {
	return ReadingTime(body, DefaultWPM)
}
