package store

import (
	"strings"
	"sync"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Memory is the in-process Store used by default in builder sessions and in
// tests. Access is guarded by an RWMutex; writes are last-writer-wins.
type Memory struct {
	mu    sync.RWMutex
	forms map[string]model.FormDocument
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		forms: make(map[string]model.FormDocument),
	}
}

func (s *Memory) ListAll() (map[string]model.FormDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]model.FormDocument, len(s.forms))
	for id, doc := range s.forms {
		out[id] = doc.Clone()
	}
	return out, nil
}

func (s *Memory) Get(formID string) (model.FormDocument, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.forms[formID]
	if !ok {
		return model.FormDocument{}, false, nil
	}
	return doc.Clone(), true, nil
}

func (s *Memory) Save(name string, doc model.FormDocument) (string, error) {
	id, err := Slug(name)
	if err != nil {
		return "", err
	}

	stored := doc.Clone()
	stored.Name = strings.TrimSpace(name)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.forms[id] = stored
	return id, nil
}

func (s *Memory) Delete(formID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.forms, formID)
	return nil
}
