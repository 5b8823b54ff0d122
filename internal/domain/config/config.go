package config

import (
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	domainerr "github.com/MrFadiAi/vibe-wiki-sub003/internal/domain/errors"
)

type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Content ContentConfig `yaml:"content"`
	Build   BuildConfig   `yaml:"build"`
	Serve   ServeConfig   `yaml:"serve"`
	Verify  VerifyConfig  `yaml:"verify"`
}

type SiteConfig struct {
	Title       string `yaml:"title"`
	SiteURL     string `yaml:"site_url"`
	Language    string `yaml:"language"`
	Description string `yaml:"description"`

	// WordsPerMinute feeds the reading-time estimate. Arabic prose reads
	// slower than the usual English default, so it is configurable.
	WordsPerMinute int `yaml:"words_per_minute"`
}

type ContentConfig struct {
	Dir string `yaml:"dir"`

	// Sections is the canonical display order. Sections found in content
	// but not listed here are appended alphabetically after these.
	Sections []string `yaml:"sections"`
}

type BuildConfig struct {
	PublicDir string `yaml:"public_dir"`
	IndexPath string `yaml:"index_path"`
	Force     bool   `yaml:"-"`
}

type ServeConfig struct {
	Addr  string `yaml:"addr"`
	Watch bool   `yaml:"watch"`
}

type VerifyConfig struct {
	RequiredSlugs []string `yaml:"required_slugs"`
}

func Default() Config {
	return Config{
		Site: SiteConfig{
			Title:          "دليل البرمجة بمساعدة الذكاء الاصطناعي",
			SiteURL:        "https://wiki.example.com",
			Language:       "ar",
			WordsPerMinute: 200,
		},
		Content: ContentConfig{
			Dir: "content",
		},
		Build: BuildConfig{
			PublicDir: "public",
			IndexPath: ".wiki/index.db",
		},
		Serve: ServeConfig{
			Addr:  ":8080",
			Watch: true,
		},
	}
}

func (c Config) Validate() error {
	var ve domainerr.ValidationError

	if strings.TrimSpace(c.Site.Title) == "" {
		ve.Add("site.title", "must not be empty")
	}
	if strings.TrimSpace(c.Site.SiteURL) == "" {
		ve.Add("site.site_url", "must not be empty")
	} else if !isValidAbsURL(c.Site.SiteURL) {
		ve.Add("site.site_url", "must be a valid absolute URL")
	}
	if c.Site.WordsPerMinute <= 0 {
		ve.Add("site.words_per_minute", "must be positive")
	}

	if strings.TrimSpace(c.Content.Dir) == "" {
		ve.Add("content.dir", "must not be empty")
	}
	seen := make(map[string]struct{}, len(c.Content.Sections))
	for _, s := range c.Content.Sections {
		s = strings.TrimSpace(s)
		if s == "" {
			ve.Add("content.sections", "must not contain empty names")
			continue
		}
		if _, ok := seen[s]; ok {
			ve.Add("content.sections", "duplicate section: "+s)
		}
		seen[s] = struct{}{}
	}

	if strings.TrimSpace(c.Build.PublicDir) == "" {
		ve.Add("build.public_dir", "must not be empty")
	}
	if strings.TrimSpace(c.Build.IndexPath) == "" {
		ve.Add("build.index_path", "must not be empty")
	}
	if strings.TrimSpace(c.Serve.Addr) == "" {
		ve.Add("serve.addr", "must not be empty")
	}

	for _, slug := range c.Verify.RequiredSlugs {
		if strings.TrimSpace(slug) == "" {
			ve.Add("verify.required_slugs", "must not contain empty slugs")
		}
	}

	if ve.HasAny() {
		return ve
	}
	return nil
}

func isValidAbsURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadOrDefault falls back to the defaults when the file is absent; any
// other read or parse failure is still an error.
func LoadOrDefault(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			return cfg, cfg.Validate()
		}
		return Default(), err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
