package books

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

// CreateBookOptions contains options for creating a book.
type CreateBookOptions struct {
	Title       string
	AuthorName  string
	ISBNNumber  string
	Generation  string
	Description string
}

// CreateBook persists a new book with a freshly generated id.
func (svc *Service) CreateBook(ctx context.Context, opts CreateBookOptions) (*models.Book, error) {
	now := time.Now()
	book := &models.Book{
		ID:          uuid.NewString(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Title:       opts.Title,
		AuthorName:  opts.AuthorName,
		ISBNNumber:  opts.ISBNNumber,
		Generation:  opts.Generation,
		Description: opts.Description,
	}

	_, err := svc.db.NewInsert().Model(book).Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return book, nil
}

// ListBooks returns all books ordered by title.
func (svc *Service) ListBooks(ctx context.Context) ([]*models.Book, error) {
	books := []*models.Book{}

	err := svc.db.
		NewSelect().
		Model(&books).
		Order("b.title ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return books, nil
}
