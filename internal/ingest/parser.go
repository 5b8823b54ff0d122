package ingest

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MrFadiAi/vibe-wiki-sub003/internal/slug"
)

var (
	errNoFrontMatter      = errors.New("no front matter found")
	errInvalidFrontMatter = errors.New("invalid front matter")
)

type CodeBlockSpec struct {
	Language string `yaml:"language"`
	Code     string `yaml:"code"`
	Title    string `yaml:"title"`
}

type DiagramSpec struct {
	File     string `yaml:"file"`
	Alt      string `yaml:"alt"`
	Caption  string `yaml:"caption"`
	Position string `yaml:"position"`
	Priority bool   `yaml:"priority"`
}

type FrontMatter struct {
	Title   string `yaml:"title"`
	Slug    string `yaml:"slug"`
	Section string `yaml:"section"`
	Order   int    `yaml:"order"`

	CodeBlocks []CodeBlockSpec `yaml:"code_blocks"`
	Diagrams   []DiagramSpec   `yaml:"diagrams"`
}

// ParseFrontMatter splits a raw source file into its YAML header and
// markdown body. The header is delimited by "---" lines at the top of
// the file.
func ParseFrontMatter(raw []byte) (FrontMatter, []byte, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return FrontMatter{}, raw, errNoFrontMatter
	}

	norm := bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))
	norm = bytes.ReplaceAll(norm, []byte("\r"), []byte("\n"))

	const (
		sep      = "---"
		sepLine  = sep + "\n"
		closeMid = "\n" + sep + "\n"
	)

	if !bytes.HasPrefix(norm, []byte(sepLine)) {
		return FrontMatter{}, raw, errNoFrontMatter
	}
	rest := norm[len(sepLine):]

	var yamlPart, bodyPart []byte
	if parts := bytes.SplitN(rest, []byte(closeMid), 2); len(parts) == 2 {
		yamlPart = parts[0]
		bodyPart = parts[1]
	} else if bytes.HasSuffix(rest, []byte("\n"+sep)) {
		// header with no body
		yamlPart = rest[:len(rest)-len("\n"+sep)]
	} else if bytes.Equal(bytes.TrimSpace(rest), []byte(sep)) {
		// empty header, no body
	} else {
		return FrontMatter{}, raw, errInvalidFrontMatter
	}

	yamlPart = bytes.TrimSpace(yamlPart)
	bodyPart = bytes.TrimSpace(bodyPart)

	var fm FrontMatter
	if len(yamlPart) > 0 {
		if err := yaml.Unmarshal(yamlPart, &fm); err != nil {
			return FrontMatter{}, raw, err
		}
	}
	return fm, bodyPart, nil
}

// ResolveSlug picks the slug source in priority order: explicit front
// matter, then the title, then the file name.
func ResolveSlug(fm FrontMatter, path string) string {
	if s := strings.TrimSpace(fm.Slug); s != "" {
		return slug.Generate(s)
	}
	if t := strings.TrimSpace(fm.Title); t != "" {
		return slug.Generate(t)
	}
	base := filepath.Base(path)
	return slug.Generate(strings.TrimSuffix(base, filepath.Ext(base)))
}
