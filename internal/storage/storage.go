// Package storage persists rendered invoice documents.
package storage

import (
	"context"

	"github.com/flexprice/gstinvoice/internal/config"
	ierr "github.com/flexprice/gstinvoice/internal/errors"
	"github.com/flexprice/gstinvoice/internal/logger"
	"github.com/flexprice/gstinvoice/internal/types"
	"github.com/h2non/filetype"
	"github.com/spf13/afero"
)

const defaultContentType = "application/octet-stream"

// Document is a rendered artifact and its name within the store.
type Document struct {
	Name        string `json:"name"`
	Data        []byte `json:"-"`
	ContentType string `json:"content_type"`
}

// Object describes a stored document.
type Object struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
}

// Store saves and retrieves documents by name.
type Store interface {
	Save(ctx context.Context, doc *Document) (*Object, error)
	Get(ctx context.Context, name string) ([]byte, error)
	Exists(ctx context.Context, name string) (bool, error)
	// URL returns a location the document can be fetched from.
	URL(ctx context.Context, name string) (string, error)
}

// NewDocument sniffs the content type from the data.
func NewDocument(name string, data []byte) *Document {
	return &Document{
		Name:        name,
		Data:        data,
		ContentType: ContentType(data),
	}
}

// ContentType detects the MIME type from the leading bytes.
func ContentType(data []byte) string {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return defaultContentType
	}
	return kind.MIME.Value
}

// NewStore builds the configured store.
func NewStore(cfg *config.Configuration, logger *logger.Logger) (Store, error) {
	switch cfg.Storage.Kind {
	case types.StorageKindFS:
		return NewFSStore(afero.NewOsFs(), cfg.Storage.BasePath, logger), nil
	case types.StorageKindS3:
		return NewS3Store(cfg, logger)
	default:
		return nil, ierr.NewErrorf("unknown storage kind: %s", cfg.Storage.Kind).
			Mark(ierr.ErrValidation)
	}
}
