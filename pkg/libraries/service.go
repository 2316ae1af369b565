package libraries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kashihonbooks/kashihon/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// CreateLibraryOptions contains options for creating a library.
type CreateLibraryOptions struct {
	Name       string
	City       string
	State      string
	PostalCode string
}

// CreateLibrary persists a new library with a freshly generated id.
func (svc *Service) CreateLibrary(ctx context.Context, opts CreateLibraryOptions) (*models.Library, error) {
	now := time.Now()
	library := &models.Library{
		ID:         uuid.NewString(),
		CreatedAt:  now,
		UpdatedAt:  now,
		Name:       opts.Name,
		City:       opts.City,
		State:      opts.State,
		PostalCode: opts.PostalCode,
	}

	_, err := svc.db.NewInsert().Model(library).Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return library, nil
}

// ListLibraries returns all libraries ordered by name.
func (svc *Service) ListLibraries(ctx context.Context) ([]*models.Library, error) {
	libraries := []*models.Library{}

	err := svc.db.
		NewSelect().
		Model(&libraries).
		Order("l.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return libraries, nil
}
