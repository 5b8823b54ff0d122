// Package validate holds the single-record content invariants. Slug
// uniqueness is deliberately not checked here; that belongs to the
// catalog, which sees the whole collection.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MrFadiAi/vibe-wiki-sub003/internal/domain/content"
	domainerr "github.com/MrFadiAi/vibe-wiki-sub003/internal/domain/errors"
)

const (
	TitleMinLen   = 5
	TitleMaxLen   = 200
	ContentMinLen = 100
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Article runs every structural check and reports all failures at once.
// An empty result means the record passed.
func Article(a content.Article) []domainerr.FieldError {
	var errs []domainerr.FieldError
	add := func(field, msg string) {
		errs = append(errs, domainerr.FieldError{Field: field, Message: msg})
	}

	if strings.TrimSpace(a.Slug) == "" {
		add("slug", "must not be empty")
	} else if !slugPattern.MatchString(a.Slug) {
		add("slug", "must contain only lowercase letters, digits and hyphens")
	}

	if !HasTitle(a) {
		add("title", "must not be empty")
	} else if n := utf8.RuneCountInString(a.Title); n < TitleMinLen || n > TitleMaxLen {
		add("title", "must be between 5 and 200 characters")
	}

	if !HasContent(a) {
		add("content", "must not be empty")
	} else if utf8.RuneCountInString(a.Content) < ContentMinLen {
		add("content", "must be at least 100 characters")
	}

	if !HasSection(a) {
		add("section", "must not be empty")
	}

	return errs
}

// The stub verifier reuses these predicates rather than re-deriving its
// own notion of completeness.

func HasTitle(a content.Article) bool {
	return strings.TrimSpace(a.Title) != ""
}

func HasContent(a content.Article) bool {
	return strings.TrimSpace(a.Content) != ""
}

func HasSection(a content.Article) bool {
	return strings.TrimSpace(a.Section) != ""
}
