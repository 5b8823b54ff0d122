package verify

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

const bannerWidth = 60

// WriteReport prints the fixed-width banner report CI logs expect. The
// format is for humans; nothing machine-readable is guaranteed here.
func WriteReport(w io.Writer, r Report) {
	line := strings.Repeat("=", bannerWidth)

	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "%s\n", center("CONTENT INTEGRITY REPORT", bannerWidth))
	fmt.Fprintln(w, line)
	fmt.Fprintf(w, "required slugs : %d\n", r.TotalRequired)
	fmt.Fprintf(w, "verified       : %d\n", r.Verified)
	fmt.Fprintf(w, "missing        : %d\n", len(r.Missing))

	slugs := make([]string, 0, len(r.Details))
	for s := range r.Details {
		slugs = append(slugs, s)
	}
	sort.Strings(slugs)

	fmt.Fprintln(w, strings.Repeat("-", bannerWidth))
	for _, s := range slugs {
		d := r.Details[s]
		switch d.Status {
		case StatusComplete:
			fmt.Fprintf(w, "  ok       %s\n", s)
		case StatusMissing:
			fmt.Fprintf(w, "  MISSING  %s\n", s)
		case StatusIncomplete:
			var lacks []string
			if !d.HasTitle {
				lacks = append(lacks, "title")
			}
			if !d.HasContent {
				lacks = append(lacks, "content")
			}
			if !d.HasSection {
				lacks = append(lacks, "section")
			}
			fmt.Fprintf(w, "  partial  %s (missing %s)\n", s, strings.Join(lacks, ", "))
		}
	}
	fmt.Fprintln(w, line)

	if r.AllMeetRequirements {
		fmt.Fprintln(w, "all required content verified")
	} else {
		fmt.Fprintln(w, "content verification FAILED")
	}
	fmt.Fprintln(w, line)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}
