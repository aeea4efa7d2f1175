package users

import (
	"context"

	"github.com/dmitrijs2005/userregistry/internal/models"
)

// UpdateFunc mutates doc in place and reports whether it changed. The
// document is only written back when changed is true and err is nil.
type UpdateFunc func(doc *models.UserDocument) (changed bool, err error)

// Repository loads and persists the user document.
type Repository interface {
	// Load reads and decodes the whole document. Failures match common.ErrRead.
	Load(ctx context.Context) (*models.UserDocument, error)

	// Save replaces the whole document. Failures match common.ErrWrite.
	Save(ctx context.Context, doc *models.UserDocument) error

	// Update performs one serialized read-modify-write cycle.
	Update(ctx context.Context, fn UpdateFunc) error

	// Init writes an empty document if none exists yet and reports whether
	// it did so.
	Init(ctx context.Context) (created bool, err error)
}
