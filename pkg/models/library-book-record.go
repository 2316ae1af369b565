package models

import (
	"time"

	"github.com/uptrace/bun"
)

// LibraryBookRecord pairs one book with one library: that library's copy-slot
// for the book. At most one record exists per (book_id, library_id) pair,
// enforced by a unique index.
type LibraryBookRecord struct {
	bun.BaseModel `bun:"table:library_book_records,alias:lbr"`

	ID        string    `bun:",pk" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	BookID    string    `json:"book_id"`
	LibraryID string    `json:"library_id"`

	// LastActivityLibraryID caches the id of the record's most recent activity
	// so current-status lookups don't need a join. It is the only field that
	// mutates after creation and is updated in the same transaction that
	// inserts the activity.
	LastActivityLibraryID *string `json:"last_activity_library_id,omitempty"`

	// Relations
	Book       *Book              `bun:"rel:belongs-to,join:book_id=id" json:"book,omitempty"`
	Library    *Library           `bun:"rel:belongs-to,join:library_id=id" json:"library,omitempty"`
	Activities []*LibraryActivity `bun:"rel:has-many,join:id=library_book_id" json:"activities,omitempty"`
}
