// Package retrieval provides the client for the semantic shortlist service.
// The service embeds profiles and answers free-text project queries with a
// ranked list of candidate identifiers; the scoring engine consumes the
// returned relevance values without recomputing them.
package retrieval

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Hit is one shortlist entry: a candidate identifier and its semantic
// relevance in [0,1].
type Hit struct {
	CandidateID string  `json:"candidate_id"`
	Relevance   float64 `json:"relevance"`
}

// Client calls the retrieval service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a retrieval client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type shortlistRequest struct {
	Query string `json:"query"`
	TopN  int    `json:"top_n"`
}

type shortlistResponse struct {
	Hits []Hit `json:"hits"`
}

// Shortlist returns the top-N candidates for a free-text project query,
// ranked by semantic relevance.
func (c *Client) Shortlist(ctx context.Context, query string, topN int) ([]Hit, error) {
	body, err := json.Marshal(shortlistRequest{Query: query, TopN: topN})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal shortlist request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/retrieve", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create shortlist request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call retrieval service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("retrieval service error: %s - %s", resp.Status, string(msg))
	}

	var decoded shortlistResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode shortlist response: %w", err)
	}
	return decoded.Hits, nil
}
