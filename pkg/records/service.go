package records

import (
	"context"
	"database/sql"
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

// CreateRecordOptions contains options for pairing a book with a library.
type CreateRecordOptions struct {
	BookID    string
	LibraryID string
}

// CreateActivityOptions contains options for recording a check-out or check-in.
type CreateActivityOptions struct {
	UserID       string
	ActivityType string
}

// RecordActivityView is the denormalized row shape returned by the by-user and
// by-library find views: one row per activity, joined with its record and book.
type RecordActivityView struct {
	ID                    string     `bun:"id" json:"id"`
	BookID                string     `bun:"book_id" json:"book_id"`
	Title                 string     `bun:"title" json:"title"`
	LibraryID             string     `bun:"library_id" json:"library_id"`
	LastActivityLibraryID *string    `bun:"last_activity_library_id" json:"last_activity_library_id,omitempty"`
	LibraryBookID         string     `bun:"library_book_id" json:"library_book_id"`
	ActivityType          string     `bun:"activity_type" json:"activity_type"`
	CheckedInAt           *time.Time `bun:"checked_in_at" json:"checked_in_at,omitempty"`
	CheckedOutAt          *time.Time `bun:"checked_out_at" json:"checked_out_at,omitempty"`
}

// CreateRecord pairs a book with a library. The book and library must exist,
// and the pair must not already be recorded. Both checks are advisory; the
// unique index on (book_id, library_id) backs the conflict rule.
func (svc *Service) CreateRecord(ctx context.Context, opts CreateRecordOptions) (*models.LibraryBookRecord, error) {
	exists, err := svc.BookExists(ctx, opts.BookID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errcodes.NotFound("Book")
	}

	exists, err = svc.LibraryExists(ctx, opts.LibraryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errcodes.NotFound("Library")
	}

	exists, err = svc.RecordExists(ctx, opts.BookID, opts.LibraryID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errcodes.Conflict("Book Entry Already Exist")
	}

	now := time.Now()
	record := &models.LibraryBookRecord{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		BookID:    opts.BookID,
		LibraryID: opts.LibraryID,
	}

	_, err = svc.db.NewInsert().Model(record).Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return record, nil
}

// ListRecords returns all library book records, unordered.
func (svc *Service) ListRecords(ctx context.Context) ([]*models.LibraryBookRecord, error) {
	records := []*models.LibraryBookRecord{}

	err := svc.db.
		NewSelect().
		Model(&records).
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return records, nil
}

// RetrieveRecord gets a record by id.
func (svc *Service) RetrieveRecord(ctx context.Context, id string) (*models.LibraryBookRecord, error) {
	record := &models.LibraryBookRecord{}

	err := svc.db.
		NewSelect().
		Model(record).
		Where("lbr.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Library Book Record")
		}
		return nil, errors.WithStack(err)
	}

	return record, nil
}

// CreateActivity records a check-out or check-in against a record and points
// the record's last_activity_library_id at the new activity. The activity
// insert and the pointer update commit as one transaction so a crash between
// the two halves can't leave the pointer stale.
func (svc *Service) CreateActivity(ctx context.Context, libraryBookID string, opts CreateActivityOptions) (*models.LibraryActivity, error) {
	var activity *models.LibraryActivity

	err := svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		record := &models.LibraryBookRecord{}
		err := tx.NewSelect().
			Model(record).
			Where("lbr.id = ?", libraryBookID).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errcodes.NotFound("Library Book Record")
			}
			return errors.WithStack(err)
		}

		exists, err := tx.NewSelect().
			Model((*models.User)(nil)).
			Where("u.id = ?", opts.UserID).
			Exists(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if !exists {
			return errcodes.NotFound("User")
		}

		now := time.Now()
		activity = &models.LibraryActivity{
			ID:            uuid.NewString(),
			CreatedAt:     now,
			UpdatedAt:     now,
			ActivityType:  opts.ActivityType,
			LibraryBookID: libraryBookID,
			UserID:        opts.UserID,
		}
		if opts.ActivityType == models.ActivityTypeCheckOut {
			activity.CheckedOutAt = &now
		} else {
			activity.CheckedInAt = &now
		}

		_, err = tx.NewInsert().Model(activity).Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		record.LastActivityLibraryID = &activity.ID
		record.UpdatedAt = now
		_, err = tx.NewUpdate().
			Model(record).
			Column("last_activity_library_id", "updated_at").
			WherePK().
			Exec(ctx)
		return errors.WithStack(err)
	})
	if err != nil {
		return nil, err
	}

	return activity, nil
}

// ListActivities returns all activities for a record, unordered. The record
// must exist.
func (svc *Service) ListActivities(ctx context.Context, libraryBookID string) ([]*models.LibraryActivity, error) {
	exists, err := svc.db.
		NewSelect().
		Model((*models.LibraryBookRecord)(nil)).
		Where("lbr.id = ?", libraryBookID).
		Exists(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if !exists {
		return nil, errcodes.NotFound("Library Book Record")
	}

	activities := []*models.LibraryActivity{}
	err = svc.db.
		NewSelect().
		Model(&activities).
		Where("la.library_book_id = ?", libraryBookID).
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return activities, nil
}

// FindByUser returns the denormalized activity view for every activity by the
// given user.
func (svc *Service) FindByUser(ctx context.Context, userID string) ([]*RecordActivityView, error) {
	return svc.findActivityViews(ctx, "la.user_id = ?", userID)
}

// FindByLibrary returns the denormalized activity view for every activity at
// the given library.
func (svc *Service) FindByLibrary(ctx context.Context, libraryID string) ([]*RecordActivityView, error) {
	return svc.findActivityViews(ctx, "lbr.library_id = ?", libraryID)
}

func (svc *Service) findActivityViews(ctx context.Context, where string, arg string) ([]*RecordActivityView, error) {
	rows := []*RecordActivityView{}

	err := svc.db.
		NewSelect().
		Model((*models.LibraryActivity)(nil)).
		ColumnExpr("la.id, la.library_book_id, la.activity_type, la.checked_in_at, la.checked_out_at").
		ColumnExpr("b.id AS book_id, b.title").
		ColumnExpr("lbr.library_id, lbr.last_activity_library_id").
		Join("INNER JOIN library_book_records lbr ON lbr.id = la.library_book_id").
		Join("INNER JOIN books b ON b.id = lbr.book_id").
		Where(where, arg).
		Scan(ctx, &rows)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return rows, nil
}

// BookExists reports whether a book with the given id exists.
func (svc *Service) BookExists(ctx context.Context, bookID string) (bool, error) {
	exists, err := svc.db.
		NewSelect().
		Model((*models.Book)(nil)).
		Where("b.id = ?", bookID).
		Exists(ctx)
	return exists, errors.WithStack(err)
}

// LibraryExists reports whether a library with the given id exists.
func (svc *Service) LibraryExists(ctx context.Context, libraryID string) (bool, error) {
	exists, err := svc.db.
		NewSelect().
		Model((*models.Library)(nil)).
		Where("l.id = ?", libraryID).
		Exists(ctx)
	return exists, errors.WithStack(err)
}

// RecordExists reports whether a record already pairs the given book and
// library.
func (svc *Service) RecordExists(ctx context.Context, bookID, libraryID string) (bool, error) {
	exists, err := svc.db.
		NewSelect().
		Model((*models.LibraryBookRecord)(nil)).
		Where("lbr.book_id = ? AND lbr.library_id = ?", bookID, libraryID).
		Exists(ctx)
	return exists, errors.WithStack(err)
}

// UserExists reports whether a user with the given id exists.
func (svc *Service) UserExists(ctx context.Context, userID string) (bool, error) {
	exists, err := svc.db.
		NewSelect().
		Model((*models.User)(nil)).
		Where("u.id = ?", userID).
		Exists(ctx)
	return exists, errors.WithStack(err)
}
