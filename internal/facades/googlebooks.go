package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/loglit-app/loglit/internal/logger"
	"github.com/loglit-app/loglit/internal/models"
)

// DefaultBooksBaseURL is the production Google Books endpoint.
const DefaultBooksBaseURL = "https://www.googleapis.com/books/v1"

// GoogleBooksFacade implements book search and volume lookup against the
// Google Books volumes API.
type GoogleBooksFacade struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewGoogleBooksFacade creates a facade. An empty baseURL selects the
// production endpoint; tests point it at a local server.
func NewGoogleBooksFacade(baseURL, apiKey string) *GoogleBooksFacade {
	if baseURL == "" {
		baseURL = DefaultBooksBaseURL
	}
	return &GoogleBooksFacade{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// volumesResponse mirrors the subset of the API payload we consume.
type volumesResponse struct {
	Items []volumeItem `json:"items"`
}

type volumeItem struct {
	ID         string `json:"id"`
	VolumeInfo struct {
		Title       string   `json:"title"`
		Authors     []string `json:"authors"`
		Description string   `json:"description"`
		ImageLinks  struct {
			Thumbnail string `json:"thumbnail"`
		} `json:"imageLinks"`
	} `json:"volumeInfo"`
}

func (v volumeItem) toResult() models.BookResult {
	title := v.VolumeInfo.Title
	if title == "" {
		title = "No title"
	}
	return models.BookResult{
		ID:          v.ID,
		Title:       title,
		Authors:     v.VolumeInfo.Authors,
		Description: v.VolumeInfo.Description,
		Thumbnail:   v.VolumeInfo.ImageLinks.Thumbnail,
	}
}

// Search queries the volumes endpoint and returns the matching books.
func (f *GoogleBooksFacade) Search(ctx context.Context, query string) ([]models.BookResult, error) {
	reqURL := fmt.Sprintf("%s/volumes?q=%s&key=%s",
		f.baseURL, url.QueryEscape(query), url.QueryEscape(f.apiKey))

	var payload volumesResponse
	if err := f.getJSON(ctx, reqURL, &payload); err != nil {
		logger.Log.Errorw("book search failed", "query", query, "error", err)
		return nil, err
	}

	results := make([]models.BookResult, 0, len(payload.Items))
	for _, item := range payload.Items {
		results = append(results, item.toResult())
	}
	return results, nil
}

// GetVolume fetches a single volume by its external id.
func (f *GoogleBooksFacade) GetVolume(ctx context.Context, volumeID string) (*models.BookResult, error) {
	reqURL := fmt.Sprintf("%s/volumes/%s", f.baseURL, url.PathEscape(volumeID))

	var item volumeItem
	if err := f.getJSON(ctx, reqURL, &item); err != nil {
		logger.Log.Errorw("volume lookup failed", "volume_id", volumeID, "error", err)
		return nil, err
	}

	result := item.toResult()
	return &result, nil
}

func (f *GoogleBooksFacade) getJSON(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("books api returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
