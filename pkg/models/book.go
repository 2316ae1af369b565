package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Book struct {
	bun.BaseModel `bun:"table:books,alias:b"`

	ID          string    `bun:",pk" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Title       string    `json:"title"`
	AuthorName  string    `json:"author_name"`
	ISBNNumber  string    `bun:"isbn_number" json:"isbn_number"`
	Generation  string    `json:"generation"`
	Description string    `json:"description"`

	// Relations
	Records []*LibraryBookRecord `bun:"rel:has-many,join:id=book_id" json:"records,omitempty"`
}
