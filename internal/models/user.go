package models

import "time"

// UserDB represents a user row in the database.
type UserDB struct {
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	DateJoined   time.Time `db:"date_joined"`
	Description  *string   `db:"description"`
}

// CreatedUser is returned after a successful registration.
type CreatedUser struct {
	Username   string    `db:"username" json:"username"`
	DateJoined time.Time `db:"date_joined" json:"date_joined"`
}

// UserDetails holds the public profile fields of a user.
type UserDetails struct {
	Username    string    `db:"username" json:"username"`
	Email       string    `db:"email" json:"email"`
	DateJoined  time.Time `db:"date_joined" json:"date_joined"`
	Description *string   `db:"description" json:"description"`
}

// DeletedUser is returned by account deletion; Deleted reports whether a
// row actually existed.
type DeletedUser struct {
	Username string `json:"username"`
	Deleted  bool   `json:"deleted"`
}
