package users

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kashihonbooks/kashihon/pkg/errcodes"
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

// CreateUserOptions contains options for creating a user.
type CreateUserOptions struct {
	Name  string
	Email string
}

// CreateUser persists a new member account. The email must not be taken by
// another user; the check here is advisory and backed by a unique index.
func (svc *Service) CreateUser(ctx context.Context, opts CreateUserOptions) (*models.User, error) {
	taken, err := svc.EmailTaken(ctx, opts.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errcodes.Conflict("Email Already Exist")
	}

	now := time.Now()
	user := &models.User{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		Name:      opts.Name,
		Email:     opts.Email,
		Role:      models.RoleMember,
	}

	_, err = svc.db.NewInsert().Model(user).Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

// EmailTaken reports whether any user already has the given email.
func (svc *Service) EmailTaken(ctx context.Context, email string) (bool, error) {
	exists, err := svc.db.
		NewSelect().
		Model((*models.User)(nil)).
		Where("u.email = ?", email).
		Exists(ctx)
	return exists, errors.WithStack(err)
}

// ListUsers returns all users, unordered.
func (svc *Service) ListUsers(ctx context.Context) ([]*models.User, error) {
	users := []*models.User{}

	err := svc.db.
		NewSelect().
		Model(&users).
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return users, nil
}
