// Package auth talks to the hosted GoTrue auth service and keeps the
// application profiles in sync with it.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAlreadyRegistered  = errors.New("email already registered")
)

// ProviderError is a non-success answer from the auth service.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("auth provider returned %d: %s", e.Status, e.Message)
}

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
}

// Result is what sign up and sign in hand back. Session is nil when the
// provider requires email confirmation before the first login.
type Result struct {
	User    User
	Session *Session
}

// Provider is the subset of the auth service the application needs.
type Provider interface {
	SignUp(ctx context.Context, email, password string) (*Result, error)
	SignIn(ctx context.Context, email, password string) (*Result, error)
	GetUser(ctx context.Context, accessToken string) (*User, error)
	UpdatePassword(ctx context.Context, accessToken, newPassword string) error
}

type Client struct {
	baseURL string
	anonKey string
	http    *http.Client
}

func NewClient(baseURL, anonKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// sessionResponse covers both shapes GoTrue returns from /signup: a full
// session when auto-confirm is on, or the bare user when it is not.
type sessionResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
	ExpiresIn    int64  `json:"expires_in"`
	User         *User  `json:"user"`
	ID           string `json:"id"`
	Email        string `json:"email"`
}

func (r sessionResponse) result() *Result {
	res := &Result{}
	if r.User != nil {
		res.User = *r.User
	} else {
		res.User = User{ID: r.ID, Email: r.Email}
	}
	if r.AccessToken != "" {
		expiresAt := r.ExpiresAt
		if expiresAt == 0 && r.ExpiresIn > 0 {
			expiresAt = time.Now().Unix() + r.ExpiresIn
		}
		res.Session = &Session{AccessToken: r.AccessToken, RefreshToken: r.RefreshToken, ExpiresAt: expiresAt}
	}
	return res
}

func (c *Client) SignUp(ctx context.Context, email, password string) (*Result, error) {
	var out sessionResponse
	err := c.do(ctx, http.MethodPost, "/auth/v1/signup", "", credentials{Email: email, Password: password}, &out)
	if err != nil {
		var pErr *ProviderError
		if errors.As(err, &pErr) && strings.Contains(strings.ToLower(pErr.Message), "already registered") {
			return nil, ErrAlreadyRegistered
		}
		return nil, err
	}
	if out.User == nil && out.ID == "" {
		return nil, errors.New("failed to create user")
	}
	return out.result(), nil
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*Result, error) {
	var out sessionResponse
	err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", "", credentials{Email: email, Password: password}, &out)
	if err != nil {
		var pErr *ProviderError
		if errors.As(err, &pErr) && isCredentialFailure(pErr.Message) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if out.AccessToken == "" || out.User == nil {
		return nil, errors.New("login failed")
	}
	return out.result(), nil
}

func (c *Client) GetUser(ctx context.Context, accessToken string) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/auth/v1/user", accessToken, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdatePassword(ctx context.Context, accessToken, newPassword string) error {
	body := map[string]string{"password": newPassword}
	return c.do(ctx, http.MethodPut, "/auth/v1/user", accessToken, body, nil)
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("auth request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ProviderError{Status: resp.StatusCode, Message: providerMessage(data)}
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

// providerMessage picks the human readable message out of a GoTrue error.
// Older releases use error_description, newer ones msg.
func providerMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return strings.TrimSpace(string(body))
	}
	res := gjson.GetManyBytes(body, "msg", "message", "error_description", "error")
	for _, r := range res {
		if r.Type == gjson.String && r.Str != "" {
			return r.Str
		}
	}
	return strings.TrimSpace(string(body))
}

func isCredentialFailure(message string) bool {
	m := strings.ToLower(message)
	return strings.Contains(m, "invalid login credentials") || strings.Contains(m, "email not confirmed")
}
