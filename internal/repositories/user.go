package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/loglit-app/loglit/internal/logger"
	"github.com/loglit-app/loglit/internal/models"
	"github.com/loglit-app/loglit/internal/tx"
)

// PasswordHasher turns a plaintext password into its stored hash.
type PasswordHasher func(plaintext string) (string, error)

// BcryptHasher is the production PasswordHasher.
func BcryptHasher(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// UserRepository owns the users table and the follow edges between
// users. Every operation runs inside the injected Runner's transactional
// scope, so tests can substitute a SavepointRunner and compose several
// operations under one rolled-back transaction.
type UserRepository struct {
	runner tx.Runner
	hash   PasswordHasher
}

// NewUserRepository creates a UserRepository. A nil hasher defaults to
// bcrypt.
func NewUserRepository(runner tx.Runner, hash PasswordHasher) *UserRepository {
	if hash == nil {
		hash = BcryptHasher
	}
	return &UserRepository{runner: runner, hash: hash}
}

func requireNonEmpty(value, name string) error {
	if strings.TrimSpace(value) == "" {
		return validationError(name + " must be a non-empty string")
	}
	return nil
}

// Create registers a new user with a hashed password. The email is
// pre-checked explicitly; the username relies on the database constraint
// as the authoritative guard, with the violated constraint inspected to
// tell the two conflicts apart.
func (r *UserRepository) Create(ctx context.Context, username, email, password string) (*models.CreatedUser, error) {
	if err := requireNonEmpty(username, "username"); err != nil {
		return nil, err
	}
	if err := requireNonEmpty(email, "email"); err != nil {
		return nil, err
	}
	if err := requireNonEmpty(password, "password"); err != nil {
		return nil, err
	}

	passwordHash, err := r.hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var created models.CreatedUser
	err = r.runner.Run(ctx, func(ctx context.Context, q sqlx.ExtContext) error {
		var one int
		err := sqlx.GetContext(ctx, q, &one, queryEmailExists, email)
		if err == nil {
			return ErrEmailExists
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		if err := sqlx.GetContext(ctx, q, &created, queryInsertUser, username, email, passwordHash); err != nil {
			if constraint, ok := uniqueViolation(err); ok {
				if strings.Contains(constraint, "email") {
					return ErrEmailExists
				}
				return ErrUsernameExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Infow("user created", "username", created.Username)
	return &created, nil
}

// Rename changes a user's username. Foreign keys with ON UPDATE CASCADE
// propagate the new name into friendship and library rows.
func (r *UserRepository) Rename(ctx context.Context, username, newUsername string) (string, error) {
	if err := requireNonEmpty(username, "username"); err != nil {
		return "", err
	}
	if err := requireNonEmpty(newUsername, "newUsername"); err != nil {
		return "", err
	}
	trimmed := strings.TrimSpace(newUsername)

	var renamed string
	err := r.runner.Run(ctx, func(ctx context.Context, q sqlx.ExtContext) error {
		var existing string
		err := sqlx.GetContext(ctx, q, &existing, queryUserExists, trimmed)
		if err == nil && existing != username {
			return ErrUsernameExists
		}
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		if err := sqlx.GetContext(ctx, q, &renamed, queryUpdateUsername, username, trimmed); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return notFound("user not found")
			}
			if _, ok := uniqueViolation(err); ok {
				return ErrUsernameExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	logger.Log.Infow("user renamed", "from", username, "to", renamed)
	return renamed, nil
}

// UpdateDescription sets the user's profile description, which may be
// nil to clear it.
func (r *UserRepository) UpdateDescription(ctx context.Context, username string, description *string) error {
	if err := requireNonEmpty(username, "username"); err != nil {
		return err
	}

	return r.runner.Run(ctx, func(ctx context.Context, q sqlx.ExtContext) error {
		var row struct {
			Username    string  `db:"username"`
			Description *string `db:"description"`
		}
		err := sqlx.GetContext(ctx, q, &row, queryUpdateDescription, username, description)
		if errors.Is(err, sql.ErrNoRows) {
			return notFound("user not found")
		}
		return err
	})
}

// Delete removes a user. Cascading foreign keys remove the user's
// friendship edges and library entries. Deleted reports whether a row
// existed.
func (r *UserRepository) Delete(ctx context.Context, username string) (*models.DeletedUser, error) {
	if err := requireNonEmpty(username, "username"); err != nil {
		return nil, err
	}

	var deleted bool
	err := r.runner.Run(ctx, func(ctx context.Context, q sqlx.ExtContext) error {
		res, err := q.ExecContext(ctx, queryDeleteUser, username)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		deleted = affected > 0
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Infow("user deleted", "username", username, "deleted", deleted)
	return &models.DeletedUser{Username: username, Deleted: deleted}, nil
}

// GetDetails returns a user's public profile, or (nil, nil) when the
// user does not exist. Absence is a result here, not an error.
func (r *UserRepository) GetDetails(ctx context.Context, username string) (*models.UserDetails, error) {
	if err := requireNonEmpty(username, "username"); err != nil {
		return nil, err
	}

	var details *models.UserDetails
	err := r.runner.Run(ctx, func(ctx context.Context, q sqlx.ExtContext) error {
		var row models.UserDetails
		err := sqlx.GetContext(ctx, q, &row, queryGetUserDetails, username)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		details = &row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return details, nil
}

// GetByEmail returns the full user row for credential checks, or
// (nil, nil) when no user has that email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	if err := requireNonEmpty(email, "email"); err != nil {
		return nil, err
	}

	var user *models.UserDB
	err := r.runner.Run(ctx, func(ctx context.Context, q sqlx.ExtContext) error {
		var row models.UserDB
		err := sqlx.GetContext(ctx, q, &row, queryGetUserByEmail, email)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		user = &row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Follow creates a follow edge from follower to followee. The existing
// edge pre-check and the database uniqueness violation surface as the
// same AlreadyFollowing condition so callers can treat both identically.
func (r *UserRepository) Follow(ctx context.Context, follower, followee string) error {
	if err := requireNonEmpty(follower, "follower"); err != nil {
		return err
	}
	if err := requireNonEmpty(followee, "followee"); err != nil {
		return err
	}
	if follower == followee {
		return ErrSelfReference
	}

	err := r.runner.Run(ctx, func(ctx context.Context, q sqlx.ExtContext) error {
		var existing string
		err := sqlx.GetContext(ctx, q, &existing, queryUserExists, followee)
		if errors.Is(err, sql.ErrNoRows) {
			return notFound("user not found")
		}
		if err != nil {
			return err
		}

		var one int
		err = sqlx.GetContext(ctx, q, &one, queryCheckFriendship, follower, followee)
		if err == nil {
			return ErrAlreadyFollowing
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		if _, err := q.ExecContext(ctx, queryAddFriend, follower, followee); err != nil {
			if _, ok := uniqueViolation(err); ok {
				return ErrAlreadyFollowing
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Log.Infow("follow added", "follower", follower, "followee", followee)
	return nil
}

// Unfollow removes a follow edge.
func (r *UserRepository) Unfollow(ctx context.Context, follower, followee string) error {
	if err := requireNonEmpty(follower, "follower"); err != nil {
		return err
	}
	if err := requireNonEmpty(followee, "followee"); err != nil {
		return err
	}

	return r.runner.Run(ctx, func(ctx context.Context, q sqlx.ExtContext) error {
		res, err := q.ExecContext(ctx, queryRemoveFriend, follower, followee)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return notFound("friendship not found")
		}
		return nil
	})
}

// ListFollowers returns the usernames following the given user.
func (r *UserRepository) ListFollowers(ctx context.Context, username string) ([]string, error) {
	return r.listEdges(ctx, username, queryGetFollowers)
}

// ListFollowing returns the usernames the given user follows.
func (r *UserRepository) ListFollowing(ctx context.Context, username string) ([]string, error) {
	return r.listEdges(ctx, username, queryGetFollowing)
}

func (r *UserRepository) listEdges(ctx context.Context, username, query string) ([]string, error) {
	if err := requireNonEmpty(username, "username"); err != nil {
		return nil, err
	}

	var usernames []string
	err := r.runner.Run(ctx, func(ctx context.Context, q sqlx.ExtContext) error {
		return sqlx.SelectContext(ctx, q, &usernames, query, username)
	})
	if err != nil {
		return nil, err
	}
	return usernames, nil
}
