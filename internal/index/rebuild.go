package index

import (
	"encoding/binary"
	"encoding/json"

	bolt "go.etcd.io/bbolt"

	"github.com/MrFadiAi/vibe-wiki-sub003/internal/catalog"
	"github.com/MrFadiAi/vibe-wiki-sub003/internal/mdtext"
)

// Meta is the persisted projection of an article: everything list and
// navigation queries need without the body.
type Meta struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Section  string `json:"section"`
	Position int    `json:"position"`
	ReadMin  int    `json:"read_min"`
}

type RebuildOptions struct {
	WordsPerMinute int
}

// Rebuild drops and recreates every bucket from the catalog in a single
// write transaction. The index is a derived artifact; the catalog is the
// source of truth, so a rebuild is always safe.
func (s *Store) Rebuild(cat *catalog.Catalog, opt RebuildOptions) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bMeta, bOrder, bPos, bSection} {
			_ = tx.DeleteBucket(name)
		}

		metaB, _ := tx.CreateBucket(bMeta)
		orderB, _ := tx.CreateBucket(bOrder)
		posB, _ := tx.CreateBucket(bPos)
		sectionB, _ := tx.CreateBucket(bSection)

		for i, a := range cat.All() {
			m := Meta{
				Slug:     a.Slug,
				Title:    a.Title,
				Section:  a.Section,
				Position: i,
				ReadMin:  mdtext.ReadingTime(a.Content, opt.WordsPerMinute),
			}
			mb, err := json.Marshal(m)
			if err != nil {
				return err
			}
			if err := metaB.Put([]byte(m.Slug), mb); err != nil {
				return err
			}

			key := makePositionKey(i)
			if err := orderB.Put(key, []byte(m.Slug)); err != nil {
				return err
			}
			if err := posB.Put([]byte(m.Slug), key); err != nil {
				return err
			}

			sb, err := sectionB.CreateBucketIfNotExists([]byte(m.Section))
			if err != nil {
				return err
			}
			if err := sb.Put(key, []byte(m.Slug)); err != nil {
				return err
			}
		}
		return nil
	})
}

// SetFingerprint records the build fingerprint so an unchanged content
// tree can skip regeneration.
func (s *Store) SetFingerprint(fp string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bSys)
		if err != nil {
			return err
		}
		return b.Put(kFingerprint, []byte(fp))
	})
}

func (s *Store) Fingerprint() (string, error) {
	var fp string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bSys)
		if b == nil {
			return nil
		}
		fp = string(b.Get(kFingerprint))
		return nil
	})
	return fp, err
}

// Position keys are big-endian so bucket cursor order is catalog order.
func makePositionKey(pos int) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(pos))
	return buf
}
