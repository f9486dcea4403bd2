package legacy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"new-recruitment-api/internal/domain"
	"new-recruitment-api/pkg/logger"
)

// Client mirrors newly created candidates to the legacy recruitment system.
// The legacy API only understands a reduced candidate shape.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type legacyCandidate struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// NotifyCandidateCreated posts the candidate to the legacy API. Any non-2xx
// status is a failure: the caller must not commit the local write.
func (c *Client) NotifyCandidateCreated(ctx context.Context, candidate *domain.Candidate) error {
	payload := legacyCandidate{
		FirstName: candidate.Name,
		LastName:  candidate.Surname,
		Email:     candidate.Email,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("legacy: failed to encode candidate: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/candidates", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("legacy: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("legacy: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Body is logged server-side only; callers get a generic error
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		logger.Log.Error("Failed to update legacy API",
			"status", resp.StatusCode,
			"body", string(msg),
		)
		return fmt.Errorf("legacy: API returned status %d", resp.StatusCode)
	}

	logger.Log.Info("Legacy API updated successfully", "email", candidate.Email)
	return nil
}
