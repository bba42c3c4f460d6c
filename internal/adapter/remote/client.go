package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fitness-planner/internal/adapter"
	"fitness-planner/internal/domain"
)

// Client is the server-backed persistence variant: a thin HTTP client for the
// collection-style /api/users and /api/media endpoints. Non-2xx responses are
// surfaced as adapter-level errors; nothing is retried.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the API server at baseURL (e.g. "http://localhost:8080").
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type usersEnvelope struct {
	Users []domain.User `json:"users"`
}

type mediaEnvelope struct {
	Media []domain.Media `json:"media"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var envelope usersEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Users, nil
}

func (c *Client) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	var created domain.User
	if err := c.do(ctx, http.MethodPost, "/api/users", user, &created); err != nil {
		return domain.User{}, err
	}
	return created, nil
}

func (c *Client) UpdateUser(ctx context.Context, user domain.User) (domain.User, error) {
	var updated domain.User
	if err := c.do(ctx, http.MethodPut, "/api/users", user, &updated); err != nil {
		return domain.User{}, err
	}
	return updated, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/users?id="+url.QueryEscape(id), nil, nil)
}

func (c *Client) ListMedia(ctx context.Context) ([]domain.Media, error) {
	var envelope mediaEnvelope
	if err := c.do(ctx, http.MethodGet, "/api/media", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Media, nil
}

func (c *Client) CreateMedia(ctx context.Context, m domain.Media) (domain.Media, error) {
	var created domain.Media
	if err := c.do(ctx, http.MethodPost, "/api/media", m, &created); err != nil {
		return domain.Media{}, err
	}
	return created, nil
}

func (c *Client) DeleteMedia(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/media?id="+url.QueryEscape(id), nil, nil)
}

// do performs one request and decodes the JSON response into out (when out is
// non-nil). 400 maps to ErrInvalid, 404 to ErrNotFound, other non-2xx
// statuses to a transport error carrying the server's message.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		switch resp.StatusCode {
		case http.StatusBadRequest:
			return adapter.ErrInvalid
		case http.StatusNotFound:
			return adapter.ErrNotFound
		}
		var failure errorEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&failure); err == nil && failure.Error != "" {
			return fmt.Errorf("%s %s: server error: %s", method, path, failure.Error)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

var _ adapter.Store = (*Client)(nil)
