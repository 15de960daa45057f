package services

import (
	"context"
	"errors"
	"strings"

	"github.com/loglit-app/loglit/internal/logger"
	"github.com/loglit-app/loglit/internal/models"
)

// ErrNoTitles is returned when no titles are available to base a
// recommendation on.
var ErrNoTitles = errors.New("no book titles available to generate recommendation")

const (
	maxRecommendationTitles = 20
	maxPromptTitleChars     = 1000
)

// VolumeGetter resolves an external book id to its metadata.
type VolumeGetter interface {
	GetVolume(ctx context.Context, volumeID string) (*models.BookResult, error)
}

// TextGenerator produces text from a prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// RecommendationService suggests the next book to read based on what a
// user has already logged.
type RecommendationService struct {
	library   LibraryRepo
	volumes   VolumeGetter
	generator TextGenerator
}

// NewRecommendationService creates a new RecommendationService.
func NewRecommendationService(library LibraryRepo, volumes VolumeGetter, generator TextGenerator) *RecommendationService {
	return &RecommendationService{
		library:   library,
		volumes:   volumes,
		generator: generator,
	}
}

// Recommend returns a single suggested title for the user. When the
// caller supplies no titles, the user's library is resolved to titles
// through the volume provider; per-book lookup failures are skipped.
func (s *RecommendationService) Recommend(ctx context.Context, username string, titles []string) (string, error) {
	if len(titles) == 0 {
		entries, err := s.library.List(ctx, username)
		if err != nil {
			return "", err
		}
		for _, entry := range entries {
			if len(titles) >= maxRecommendationTitles {
				break
			}
			volume, err := s.volumes.GetVolume(ctx, entry.BookID)
			if err != nil {
				logger.Log.Warnw("skipping unresolvable volume", "book_id", entry.BookID, "error", err)
				continue
			}
			if volume.Title != "" {
				titles = append(titles, volume.Title)
			}
		}
	}

	if len(titles) == 0 {
		return "", ErrNoTitles
	}

	if len(titles) > maxRecommendationTitles {
		titles = titles[:maxRecommendationTitles]
	}
	cleaned := make([]string, 0, len(titles))
	for _, t := range titles {
		cleaned = append(cleaned, strings.Join(strings.Fields(t), " "))
	}
	joined := strings.Join(cleaned, "; ")
	if len(joined) > maxPromptTitleChars {
		joined = joined[:maxPromptTitleChars] + "..."
	}

	prompt := "You are a helpful book recommender. Given the following book titles a user has read: " +
		joined +
		". Please recommend exactly one book title the user is likely to enjoy next. " +
		"Return only the book title and author, no explanation."

	recommendation, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		logger.Log.Errorw("failed to generate recommendation", "username", username, "error", err)
		return "", err
	}
	return strings.TrimSpace(recommendation), nil
}
