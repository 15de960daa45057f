package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kind classifies a repository error so that callers can map it to a
// response without matching on message text.
type Kind int

const (
	// KindValidation means a required argument was missing or empty.
	// Raised before any query is issued.
	KindValidation Kind = iota
	// KindNotFound means the targeted row does not exist.
	KindNotFound
	// KindUsernameExists means the username uniqueness constraint fired.
	KindUsernameExists
	// KindEmailExists means the email uniqueness constraint fired.
	KindEmailExists
	// KindAlreadyFollowing means the follow edge already exists.
	KindAlreadyFollowing
	// KindSelfReference means actor and target must differ but do not.
	KindSelfReference
)

// Error is a classified repository error. The Kind is set at the point
// of detection, next to the query that failed.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Is makes two classified errors equal when their kinds match, so
// sentinel values below work with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	return errors.As(target, &t) && t.Kind == e.Kind
}

// Sentinel values for errors.Is checks.
var (
	ErrNotFound         = &Error{Kind: KindNotFound, Msg: "not found"}
	ErrUsernameExists   = &Error{Kind: KindUsernameExists, Msg: "username already exists"}
	ErrEmailExists      = &Error{Kind: KindEmailExists, Msg: "email already exists"}
	ErrAlreadyFollowing = &Error{Kind: KindAlreadyFollowing, Msg: "already following this user"}
	ErrSelfReference    = &Error{Kind: KindSelfReference, Msg: "cannot follow yourself"}
)

func validationError(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

func notFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindValidation
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindNotFound
}

// IsConflict reports whether err is any uniqueness or self-reference
// conflict.
func IsConflict(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	switch e.Kind {
	case KindUsernameExists, KindEmailExists, KindAlreadyFollowing, KindSelfReference:
		return true
	}
	return false
}

// uniqueViolation returns the violated constraint name when err is a
// PostgreSQL unique-constraint violation (SQLSTATE 23505).
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// foreignKeyViolation reports whether err is a PostgreSQL foreign-key
// violation (SQLSTATE 23503).
func foreignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
