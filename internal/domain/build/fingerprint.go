package build

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/MrFadiAi/vibe-wiki-sub003/internal/domain/content"
)

// Fingerprint captures everything that feeds a build. Two builds with
// the same fingerprint produce identical outputs, so a matching stored
// fingerprint makes regeneration skippable.
type Fingerprint struct {
	Content string
	Config  string
}

func (f Fingerprint) Sum() string {
	h := sha256.New()
	h.Write([]byte(f.Content))
	h.Write([]byte(f.Config))
	return hex.EncodeToString(h.Sum(nil))
}

// ContentHash folds every article in canonical order into one hash.
func ContentHash(articles []content.Article) string {
	h := sha256.New()
	for _, a := range articles {
		h.Write([]byte(a.Slug))
		h.Write([]byte{0})
		h.Write([]byte(a.Title))
		h.Write([]byte{0})
		h.Write([]byte(a.Section))
		h.Write([]byte{0})
		h.Write([]byte(a.Content))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ConfigHash hashes the JSON form of any config value.
func ConfigHash(cfg any) string {
	b, err := json.Marshal(cfg)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
