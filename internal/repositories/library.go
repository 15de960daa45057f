package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/loglit-app/loglit/internal/logger"
	"github.com/loglit-app/loglit/internal/models"
	"github.com/loglit-app/loglit/internal/tx"
)

// LibraryRepository owns the per-user book records.
type LibraryRepository struct {
	runner tx.Runner
}

// NewLibraryRepository creates a LibraryRepository bound to the given
// transaction runner.
func NewLibraryRepository(runner tx.Runner) *LibraryRepository {
	return &LibraryRepository{runner: runner}
}

// Upsert adds a book to the user's library, or updates rating, review
// and status in place when the (username, book_id) pair already exists.
// The statement is a single atomic insert-on-conflict-update, so
// concurrent adds cannot duplicate the row, and added_at keeps the
// first-added timestamp. A nil addedAt defers to the database clock.
func (r *LibraryRepository) Upsert(ctx context.Context, username, bookID string, rating *int, review, status *string, addedAt *time.Time) (*models.LibraryEntry, error) {
	if err := requireNonEmpty(username, "username"); err != nil {
		return nil, err
	}
	if err := requireNonEmpty(bookID, "bookID"); err != nil {
		return nil, err
	}

	var entry models.LibraryEntry
	err := r.runner.Run(ctx, func(ctx context.Context, q sqlx.ExtContext) error {
		err := sqlx.GetContext(ctx, q, &entry, queryUpsertUserBook,
			username, bookID, rating, review, status, addedAt)
		if err != nil {
			// The PK conflict is handled by the upsert itself, so a
			// constraint failure here means the owning user is gone.
			if foreignKeyViolation(err) {
				return notFound("user not found")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Infow("library entry saved", "username", username, "book_id", bookID)
	return &entry, nil
}

// Remove deletes a library entry.
func (r *LibraryRepository) Remove(ctx context.Context, username, bookID string) error {
	if err := requireNonEmpty(username, "username"); err != nil {
		return err
	}
	if err := requireNonEmpty(bookID, "bookID"); err != nil {
		return err
	}

	return r.runner.Run(ctx, func(ctx context.Context, q sqlx.ExtContext) error {
		res, err := q.ExecContext(ctx, queryDeleteUserBook, username, bookID)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return notFound("library entry not found")
		}
		return nil
	})
}

// List returns every library entry for a user. No ordering is
// guaranteed; callers sort as they see fit.
func (r *LibraryRepository) List(ctx context.Context, username string) ([]models.LibraryEntry, error) {
	if err := requireNonEmpty(username, "username"); err != nil {
		return nil, err
	}

	var entries []models.LibraryEntry
	err := r.runner.Run(ctx, func(ctx context.Context, q sqlx.ExtContext) error {
		return sqlx.SelectContext(ctx, q, &entries, queryListUserBooks, username)
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
