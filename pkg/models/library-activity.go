package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Activity types, as they appear on the wire.
const (
	ActivityTypeCheckOut = "book_check_out"
	ActivityTypeCheckIn  = "book_check_in"
)

// LibraryActivity is a single check-out or check-in event against a
// LibraryBookRecord, attributed to a user. Exactly one of CheckedOutAt and
// CheckedInAt is set, matching ActivityType.
type LibraryActivity struct {
	bun.BaseModel `bun:"table:library_activities,alias:la"`

	ID            string     `bun:",pk" json:"id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	ActivityType  string     `json:"activity_type"`
	LibraryBookID string     `json:"library_book_id"`
	UserID        string     `json:"user_id"`
	CheckedOutAt  *time.Time `json:"checked_out_at,omitempty"`
	CheckedInAt   *time.Time `json:"checked_in_at,omitempty"`

	// Relations
	Record *LibraryBookRecord `bun:"rel:belongs-to,join:library_book_id=id" json:"record,omitempty"`
	User   *User              `bun:"rel:belongs-to,join:user_id=id" json:"user,omitempty"`
}
