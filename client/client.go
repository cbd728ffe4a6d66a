// Package client talks to the Snackify API and keeps a local fallback copy
// of the catalogue for when the server cannot be reached.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/alex-pricope/snackify/api/models"
	"github.com/alex-pricope/snackify/rating"
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api returned %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient targets an API root such as http://localhost:4000/api.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// WithToken returns a copy that sends token as a bearer credential.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

func (c *Client) Snacks(ctx context.Context) ([]models.SnackWithSummaryResponse, error) {
	var out []models.SnackWithSummaryResponse
	if err := c.do(ctx, http.MethodGet, "/snacks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Snack(ctx context.Context, id int) (*models.SnackDetailResponse, error) {
	var out models.SnackDetailResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/snacks/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateSnack(ctx context.Context, req models.CreateSnackRequest) (*models.SnackResponse, error) {
	var out models.SnackResponse
	if err := c.do(ctx, http.MethodPost, "/snacks", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Ratings(ctx context.Context, snackID int) (*models.RatingsResponse, error) {
	var out models.RatingsResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/snacks/%d/ratings", snackID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SubmitRating(ctx context.Context, snackID int, scores rating.Scores) (*models.RatingsResponse, error) {
	var out models.RatingsResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/snacks/%d/ratings", snackID), scores, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Comments(ctx context.Context, snackID int) ([]models.CommentResponse, error) {
	var out []models.CommentResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/snacks/%d/comments", snackID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddComment posts a comment and returns the snack's full comment list.
func (c *Client) AddComment(ctx context.Context, snackID int, req models.CommentRequest) ([]models.CommentResponse, error) {
	var out []models.CommentResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/snacks/%d/comments", snackID), req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Leaderboard(ctx context.Context) (*models.LeaderboardResponse, error) {
	var out models.LeaderboardResponse
	if err := c.do(ctx, http.MethodGet, "/leaderboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return decodeAPIError(res.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(status int, data []byte) *APIError {
	apiErr := &APIError{Status: status, Message: http.StatusText(status)}

	var body models.ErrorResponse
	if err := json.Unmarshal(data, &body); err != nil {
		return apiErr
	}
	switch {
	case body.Error != "":
		apiErr.Message = body.Error
	case body.Message != "":
		apiErr.Message = body.Message
	}
	return apiErr
}
