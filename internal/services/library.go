package services

import (
	"context"
	"time"

	"github.com/loglit-app/loglit/internal/models"
)

// LibraryRepo defines the book-library operations the service needs.
type LibraryRepo interface {
	Upsert(ctx context.Context, username, bookID string, rating *int, review, status *string, addedAt *time.Time) (*models.LibraryEntry, error)
	Remove(ctx context.Context, username, bookID string) error
	List(ctx context.Context, username string) ([]models.LibraryEntry, error)
}

// LibraryService handles a user's book library and publishes logging
// activity.
type LibraryService struct {
	repo        LibraryRepo
	kafkaWriter KafkaWriter
}

// NewLibraryService creates a new LibraryService. A nil kafkaWriter
// disables event publishing.
func NewLibraryService(repo LibraryRepo, kafkaWriter KafkaWriter) *LibraryService {
	return &LibraryService{repo: repo, kafkaWriter: kafkaWriter}
}

// Log records a book in the user's library, updating the existing entry
// when the book is already logged, and publishes a book_logged event.
func (s *LibraryService) Log(ctx context.Context, username, bookID string, rating *int, review, status *string, addedAt *time.Time) (*models.LibraryEntry, error) {
	entry, err := s.repo.Upsert(ctx, username, bookID, rating, review, status, addedAt)
	if err != nil {
		return nil, err
	}
	publishActivity(ctx, s.kafkaWriter, models.ActivityBookLogged, username, bookID)
	return entry, nil
}

// Remove deletes a book from the user's library.
func (s *LibraryService) Remove(ctx context.Context, username, bookID string) error {
	return s.repo.Remove(ctx, username, bookID)
}

// List returns every entry in the user's library.
func (s *LibraryService) List(ctx context.Context, username string) ([]models.LibraryEntry, error) {
	return s.repo.List(ctx, username)
}
