package testutil

import (
	"context"
	"sync"

	ierr "github.com/flexprice/gstinvoice/internal/errors"
	"github.com/flexprice/gstinvoice/internal/storage"
)

var _ storage.Store = (*InMemoryDocumentStore)(nil)

// InMemoryDocumentStore keeps saved documents in memory and counts writes.
// Setting SaveErr makes every Save fail with that error.
type InMemoryDocumentStore struct {
	mu        sync.RWMutex
	documents map[string]*storage.Document
	saves     int
	SaveErr   error
}

func NewInMemoryDocumentStore() *InMemoryDocumentStore {
	return &InMemoryDocumentStore{
		documents: make(map[string]*storage.Document),
	}
}

func (s *InMemoryDocumentStore) Save(_ context.Context, doc *storage.Document) (*storage.Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.saves++
	if s.SaveErr != nil {
		return nil, s.SaveErr
	}

	s.documents[doc.Name] = doc
	return &storage.Object{
		Name:        doc.Name,
		Location:    "memory://" + doc.Name,
		ContentType: doc.ContentType,
		Size:        len(doc.Data),
	}, nil
}

func (s *InMemoryDocumentStore) Get(_ context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.documents[name]
	if !ok {
		return nil, ierr.NewError("document not found").
			WithHintf("Document %s was not found", name).
			Mark(ierr.ErrNotFound)
	}
	return doc.Data, nil
}

func (s *InMemoryDocumentStore) Exists(_ context.Context, name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.documents[name]
	return ok, nil
}

func (s *InMemoryDocumentStore) URL(ctx context.Context, name string) (string, error) {
	if ok, _ := s.Exists(ctx, name); !ok {
		return "", ierr.NewError("document not found").
			WithHintf("Document %s was not found", name).
			Mark(ierr.ErrNotFound)
	}
	return "memory://" + name, nil
}

// Saves returns how many times Save was called.
func (s *InMemoryDocumentStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

func (s *InMemoryDocumentStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents = make(map[string]*storage.Document)
	s.saves = 0
	s.SaveErr = nil
}
