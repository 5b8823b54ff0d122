// Package verify batch-checks that a required set of slugs exists in the
// content and meets the minimum quality bar. It is a CI tool: failures
// are reported, never recovered from.
package verify

import (
	"github.com/MrFadiAi/vibe-wiki-sub003/internal/domain/content"
	"github.com/MrFadiAi/vibe-wiki-sub003/internal/validate"
)

type Status string

const (
	StatusMissing    Status = "missing"
	StatusIncomplete Status = "incomplete"
	StatusComplete   Status = "complete"
)

// Detail is the per-slug outcome. Incomplete entries exist but fail one
// or more of the presence checks.
type Detail struct {
	Slug       string `json:"slug"`
	Status     Status `json:"status"`
	HasTitle   bool   `json:"has_title"`
	HasContent bool   `json:"has_content"`
	HasSection bool   `json:"has_section"`
}

type Report struct {
	TotalRequired       int               `json:"total_required"`
	Verified            int               `json:"verified"`
	Missing             []string          `json:"missing"`
	Details             map[string]Detail `json:"details"`
	AllMeetRequirements bool              `json:"all_meet_requirements"`
}

// RequiredStubs checks each required slug against the article collection.
// Every slug lands in one of three buckets: missing entirely, present but
// incomplete, or present and complete. Only complete entries count as
// verified; incomplete ones stay out of Missing but are listed in
// Details for diagnostics.
func RequiredStubs(articles []content.Article, requiredSlugs []string) Report {
	byShortSlug := make(map[string]content.Article, len(articles))
	for _, a := range articles {
		byShortSlug[a.Slug] = a
	}

	r := Report{
		TotalRequired: len(requiredSlugs),
		Missing:       []string{},
		Details:       make(map[string]Detail, len(requiredSlugs)),
	}

	for _, slug := range requiredSlugs {
		a, ok := byShortSlug[slug]
		if !ok {
			r.Missing = append(r.Missing, slug)
			r.Details[slug] = Detail{Slug: slug, Status: StatusMissing}
			continue
		}

		d := Detail{
			Slug:       slug,
			HasTitle:   validate.HasTitle(a),
			HasContent: validate.HasContent(a),
			HasSection: validate.HasSection(a),
		}
		if d.HasTitle && d.HasContent && d.HasSection {
			d.Status = StatusComplete
			r.Verified++
		} else {
			d.Status = StatusIncomplete
		}
		r.Details[slug] = d
	}

	r.AllMeetRequirements = r.Verified == r.TotalRequired
	return r
}
