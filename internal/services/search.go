package services

import (
	"context"
	"errors"
	"strings"

	"github.com/loglit-app/loglit/internal/logger"
	"github.com/loglit-app/loglit/internal/models"
)

// ErrEmptyQuery is returned when a search query is blank.
var ErrEmptyQuery = errors.New("search query must not be empty")

// BookSearcher queries the external book provider.
type BookSearcher interface {
	Search(ctx context.Context, query string) ([]models.BookResult, error)
}

// SearchCache caches search results by query.
type SearchCache interface {
	GetResults(ctx context.Context, query string) ([]models.BookResult, error)
	SetResults(ctx context.Context, query string, results []models.BookResult) error
}

// SearchService serves book searches through a read-through cache.
type SearchService struct {
	searcher BookSearcher
	cache    SearchCache
}

// NewSearchService creates a new SearchService. A nil cache disables
// caching.
func NewSearchService(searcher BookSearcher, cache SearchCache) *SearchService {
	return &SearchService{searcher: searcher, cache: cache}
}

// Search returns books matching the query, consulting the cache first.
// Cache failures fall through to the provider.
func (s *SearchService) Search(ctx context.Context, query string) ([]models.BookResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	if s.cache != nil {
		if results, err := s.cache.GetResults(ctx, query); err == nil {
			logger.Log.Infow("search cache hit", "query", query, "results", len(results))
			return results, nil
		}
	}

	results, err := s.searcher.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetResults(ctx, query, results); err != nil {
			logger.Log.Errorw("failed to cache search results", "query", query, "error", err)
		}
	}
	return results, nil
}
