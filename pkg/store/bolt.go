package store

import (
	"encoding/json"
	"fmt"
	"strings"

	bolt "go.etcd.io/bbolt"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

var (
	boltBucket    = []byte("formbuilder")
	collectionKey = []byte("savedForms")
)

// Bolt is a bbolt-backed Store. The whole collection is serialised as one
// JSON object under a single well-known key, so every save and delete
// rewrites the full snapshot. That keeps the durable layout identical to the
// flat JSON document the in-memory collection round-trips through, at the
// cost of O(collection) writes, which is fine for human-scale form counts.
type Bolt struct {
	db *bolt.DB
}

var _ Store = (*Bolt)(nil)

// OpenBolt opens (creating if needed) the database file at path.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, bolt.DefaultOptions)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("store: init bucket: %w", err)
	}
	return &Bolt{db: db}, nil
}

// Close releases the underlying database file.
func (s *Bolt) Close() error {
	return s.db.Close()
}

func (s *Bolt) ListAll() (map[string]model.FormDocument, error) {
	var forms map[string]model.FormDocument
	err := s.db.View(func(tx *bolt.Tx) error {
		var err error
		forms, err = readCollection(tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return forms, nil
}

func (s *Bolt) Get(formID string) (model.FormDocument, bool, error) {
	var (
		doc model.FormDocument
		ok  bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		forms, err := readCollection(tx)
		if err != nil {
			return err
		}
		doc, ok = forms[formID]
		return nil
	})
	if err != nil {
		return model.FormDocument{}, false, err
	}
	return doc, ok, nil
}

func (s *Bolt) Save(name string, doc model.FormDocument) (string, error) {
	id, err := Slug(name)
	if err != nil {
		return "", err
	}

	stored := doc.Clone()
	stored.Name = strings.TrimSpace(name)

	err = s.db.Update(func(tx *bolt.Tx) error {
		forms, err := readCollection(tx)
		if err != nil {
			return err
		}
		forms[id] = stored
		return writeCollection(tx, forms)
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Bolt) Delete(formID string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		forms, err := readCollection(tx)
		if err != nil {
			return err
		}
		if _, ok := forms[formID]; !ok {
			return nil
		}
		delete(forms, formID)
		return writeCollection(tx, forms)
	})
}

func readCollection(tx *bolt.Tx) (map[string]model.FormDocument, error) {
	forms := make(map[string]model.FormDocument)
	bucket := tx.Bucket(boltBucket)
	if bucket == nil {
		return forms, nil
	}
	raw := bucket.Get(collectionKey)
	if len(raw) == 0 {
		return forms, nil
	}
	if err := json.Unmarshal(raw, &forms); err != nil {
		return nil, fmt.Errorf("store: decode collection: %w", err)
	}
	return forms, nil
}

func writeCollection(tx *bolt.Tx, forms map[string]model.FormDocument) error {
	payload, err := json.Marshal(forms)
	if err != nil {
		return fmt.Errorf("store: encode collection: %w", err)
	}
	bucket := tx.Bucket(boltBucket)
	if bucket == nil {
		return fmt.Errorf("store: bucket %q missing", boltBucket)
	}
	return bucket.Put(collectionKey, payload)
}
