package models

import "time"

// LibraryEntry is one user's record of an externally-identified book.
// BookID is the external volume identifier; rating, review and status
// are all optional. Status is free text; labels like "reading" or
// "completed" are a client convention.
type LibraryEntry struct {
	Username string    `db:"username" json:"username"`
	BookID   string    `db:"book_id" json:"book_id"`
	Rating   *int      `db:"rating" json:"rating"`
	Review   *string   `db:"review" json:"review"`
	Status   *string   `db:"status" json:"status"`
	AddedAt  time.Time `db:"added_at" json:"added_at"`
}
