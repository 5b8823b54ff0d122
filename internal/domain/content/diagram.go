package content

import (
	"strings"

	domainerr "github.com/MrFadiAi/vibe-wiki-sub003/internal/domain/errors"
)

type DiagramPosition string

const (
	PositionInline        DiagramPosition = "inline"
	PositionBeforeSection DiagramPosition = "before-section"
	PositionAfterSection  DiagramPosition = "after-section"
)

// ParsePosition maps a front-matter position hint onto the enum. The empty
// string defaults to inline.
func ParsePosition(s string) (DiagramPosition, bool) {
	switch DiagramPosition(strings.TrimSpace(s)) {
	case "", PositionInline:
		return PositionInline, true
	case PositionBeforeSection:
		return PositionBeforeSection, true
	case PositionAfterSection:
		return PositionAfterSection, true
	}
	return PositionInline, false
}

// Diagram is an SVG reference placed relative to the article body. Values
// are validated at construction and trusted afterwards.
type Diagram struct {
	File     string
	Alt      string
	Caption  string
	Position DiagramPosition
	Priority bool
}

// NewDiagram validates at the boundary: it either returns a well-formed
// diagram or the full list of reasons the input is not one.
func NewDiagram(file, alt, caption, position string, priority bool) (Diagram, []domainerr.FieldError) {
	var errs []domainerr.FieldError

	file = strings.TrimSpace(file)
	if file == "" {
		errs = append(errs, domainerr.FieldError{Field: "file", Message: "must not be empty"})
	} else if !strings.HasSuffix(strings.ToLower(file), ".svg") {
		errs = append(errs, domainerr.FieldError{Field: "file", Message: "must reference an .svg file"})
	}

	alt = strings.TrimSpace(alt)
	if alt == "" {
		errs = append(errs, domainerr.FieldError{Field: "alt", Message: "must not be empty"})
	}

	pos, ok := ParsePosition(position)
	if !ok {
		errs = append(errs, domainerr.FieldError{
			Field:   "position",
			Message: "must be one of inline, before-section, after-section",
		})
	}

	if len(errs) > 0 {
		return Diagram{}, errs
	}
	return Diagram{
		File:     file,
		Alt:      alt,
		Caption:  strings.TrimSpace(caption),
		Position: pos,
		Priority: priority,
	}, nil
}
