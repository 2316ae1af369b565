package models

import (
	"time"

	"github.com/uptrace/bun"
)

// User roles. Staff carries no extra behavior today; it exists so library
// employees can be distinguished from members without a separate table.
const (
	RoleMember = "member"
	RoleStaff  = "staff"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID        string    `bun:",pk" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Token     string    `json:"-"` // Never expose the token
	Role      string    `json:"role"`

	// Relations
	Activities []*LibraryActivity `bun:"rel:has-many,join:id=user_id" json:"activities,omitempty"`
}
