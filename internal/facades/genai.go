package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/loglit-app/loglit/internal/logger"
)

// DefaultGenAIBaseURL is the production Generative Language endpoint.
const DefaultGenAIBaseURL = "https://generativelanguage.googleapis.com"

// GenAIFacade calls a generative-text model and returns plain text.
type GenAIFacade struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewGenAIFacade creates a facade for the given model. An empty baseURL
// selects the production endpoint.
func NewGenAIFacade(baseURL, apiKey, model string) *GenAIFacade {
	if baseURL == "" {
		baseURL = DefaultGenAIBaseURL
	}
	return &GenAIFacade{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type genPart struct {
	Text string `json:"text"`
}

type genContent struct {
	Parts []genPart `json:"parts"`
}

type generateRequest struct {
	Contents []genContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content genContent `json:"content"`
	} `json:"candidates"`
}

// GenerateText submits a prompt and returns the first candidate's text.
func (f *GenAIFacade) GenerateText(ctx context.Context, prompt string) (string, error) {
	req := generateRequest{
		Contents: []genContent{{Parts: []genPart{{Text: prompt}}}},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	reqURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		f.baseURL, url.PathEscape(f.model), url.QueryEscape(f.apiKey))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(httpReq)
	if err != nil {
		logger.Log.Errorw("text generation request failed", "model", f.model, "error", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generative api returned status %d", resp.StatusCode)
	}

	var payload generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}

	if len(payload.Candidates) == 0 || len(payload.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no text in generative api response")
	}
	return strings.TrimSpace(payload.Candidates[0].Content.Parts[0].Text), nil
}
