package storage

import (
	"context"
	"os"
	"path/filepath"

	ierr "github.com/flexprice/gstinvoice/internal/errors"
	"github.com/flexprice/gstinvoice/internal/logger"
	"github.com/spf13/afero"
)

type fsStore struct {
	fs     afero.Fs
	root   string
	logger *logger.Logger
}

// NewFSStore writes documents under root. Names are used as single path
// elements.
func NewFSStore(fs afero.Fs, root string, logger *logger.Logger) Store {
	return &fsStore{fs: fs, root: root, logger: logger}
}

func (s *fsStore) path(name string) string {
	return filepath.Join(s.root, filepath.Base(name))
}

func (s *fsStore) Save(_ context.Context, doc *Document) (*Object, error) {
	if err := s.fs.MkdirAll(s.root, 0o755); err != nil {
		return nil, ierr.WithError(err).
			WithHintf("failed to create directory %s", s.root).
			Mark(ierr.ErrSystem)
	}

	path := s.path(doc.Name)
	if err := afero.WriteFile(s.fs, path, doc.Data, 0o644); err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to write document").
			WithMessagef("path:%s", path).
			Mark(ierr.ErrSystem)
	}

	s.logger.Debugw("document written", "path", path, "size", len(doc.Data))
	return &Object{
		Name:        doc.Name,
		Location:    path,
		ContentType: doc.ContentType,
		Size:        len(doc.Data),
	}, nil
}

func (s *fsStore) Get(_ context.Context, name string) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ierr.WithError(err).
				WithHintf("Document %s was not found", name).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("failed to read document").
			Mark(ierr.ErrSystem)
	}
	return data, nil
}

func (s *fsStore) Exists(_ context.Context, name string) (bool, error) {
	ok, err := afero.Exists(s.fs, s.path(name))
	if err != nil {
		return false, ierr.WithError(err).
			WithHint("failed to stat document").
			Mark(ierr.ErrSystem)
	}
	return ok, nil
}

func (s *fsStore) URL(_ context.Context, name string) (string, error) {
	return s.path(name), nil
}
