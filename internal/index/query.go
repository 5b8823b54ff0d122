package index

import (
	"encoding/json"
	"errors"
	"strings"

	bolt "go.etcd.io/bbolt"
)

var ErrNotFound = errors.New("not found")

func (s *Store) GetMeta(slug string) (Meta, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return Meta{}, ErrNotFound
	}
	var m Meta
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bMeta)
		if b == nil {
			return ErrNotFound
		}
		v := b.Get([]byte(slug))
		if v == nil {
			return ErrNotFound
		}
		return json.Unmarshal(v, &m)
	})
	return m, err
}

// ListAll returns every article meta in canonical catalog order.
func (s *Store) ListAll() ([]Meta, error) {
	var out []Meta
	err := s.db.View(func(tx *bolt.Tx) error {
		orderB := tx.Bucket(bOrder)
		metaB := tx.Bucket(bMeta)
		if orderB == nil || metaB == nil {
			return nil
		}
		cur := orderB.Cursor()
		for k, slug := cur.First(); k != nil; k, slug = cur.Next() {
			v := metaB.Get(slug)
			if v == nil {
				continue
			}
			var m Meta
			if err := json.Unmarshal(v, &m); err != nil {
				continue
			}
			out = append(out, m)
		}
		return nil
	})
	return out, err
}

// ListBySection returns the metas of one section in catalog order.
func (s *Store) ListBySection(name string) ([]Meta, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	var out []Meta
	err := s.db.View(func(tx *bolt.Tx) error {
		parent := tx.Bucket(bSection)
		metaB := tx.Bucket(bMeta)
		if parent == nil || metaB == nil {
			return nil
		}
		sb := parent.Bucket([]byte(name))
		if sb == nil {
			return nil
		}
		cur := sb.Cursor()
		for k, slug := cur.First(); k != nil; k, slug = cur.Next() {
			v := metaB.Get(slug)
			if v == nil {
				continue
			}
			var m Meta
			if err := json.Unmarshal(v, &m); err != nil {
				continue
			}
			out = append(out, m)
		}
		return nil
	})
	return out, err
}

type SectionSummary struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	First string `json:"first_slug"`
}

// SectionSummaries lists every section with its article count, ordered by
// the position of the section's first article.
func (s *Store) SectionSummaries() ([]SectionSummary, error) {
	metas, err := s.ListAll()
	if err != nil {
		return nil, err
	}
	var out []SectionSummary
	byName := make(map[string]int)
	for _, m := range metas {
		i, ok := byName[m.Section]
		if !ok {
			byName[m.Section] = len(out)
			out = append(out, SectionSummary{Name: m.Section, Count: 1, First: m.Slug})
			continue
		}
		out[i].Count++
	}
	return out, nil
}

// PrevNext resolves catalog-order neighbours from the persisted ordering.
// An unknown slug yields nil for both; that is a normal outcome, not an
// error.
func (s *Store) PrevNext(slug string) (prev, next *Meta, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		posB := tx.Bucket(bPos)
		orderB := tx.Bucket(bOrder)
		metaB := tx.Bucket(bMeta)
		if posB == nil || orderB == nil || metaB == nil {
			return nil
		}
		key := posB.Get([]byte(slug))
		if key == nil {
			return nil
		}

		cur := orderB.Cursor()
		cur.Seek(key)

		if pk, pslug := cur.Prev(); pk != nil {
			prev = decodeMeta(metaB, pslug)
		}
		cur.Seek(key)
		if nk, nslug := cur.Next(); nk != nil {
			next = decodeMeta(metaB, nslug)
		}
		return nil
	})
	return prev, next, err
}

func decodeMeta(metaB *bolt.Bucket, slug []byte) *Meta {
	v := metaB.Get(slug)
	if v == nil {
		return nil
	}
	var m Meta
	if err := json.Unmarshal(v, &m); err != nil {
		return nil
	}
	return &m
}
