package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/dspetrov/hacksnooze/internal/client/models"
	"github.com/dspetrov/hacksnooze/internal/logging"
)

// HTTPClient talks to the Hacker-or-Snooze REST API.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient binds a client to the given base URL. The timeout applies
// per request; callers can still cancel earlier through the context.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

// wire envelopes, decoded only at this boundary

type storiesResponse struct {
	Stories []models.Story `json:"stories"`
}

type storyResponse struct {
	Story models.Story `json:"story"`
}

type userResponse struct {
	User Profile `json:"user"`
}

type authResponse struct {
	User  Profile `json:"user"`
	Token string  `json:"token"`
}

type userPayload struct {
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Name     string `json:"name,omitempty"`
}

type signupRequest struct {
	User userPayload `json:"user"`
}

type tokenRequest struct {
	Token string `json:"token"`
}

type createStoryRequest struct {
	Token string            `json:"token"`
	Story models.StoryDraft `json:"story"`
}

func (c *HTTPClient) Stories(ctx context.Context) ([]models.Story, error) {
	var resp storiesResponse
	if err := c.do(ctx, http.MethodGet, "/stories", nil, nil, &resp, false); err != nil {
		return nil, err
	}
	return resp.Stories, nil
}

func (c *HTTPClient) CreateStory(ctx context.Context, token string, draft models.StoryDraft) (models.Story, error) {
	req := createStoryRequest{Token: token, Story: draft}
	var resp storyResponse
	if err := c.do(ctx, http.MethodPost, "/stories", nil, req, &resp, false); err != nil {
		return models.Story{}, err
	}
	if resp.Story.StoryID == "" {
		return models.Story{}, fmt.Errorf("api: malformed story response: missing storyId")
	}
	return resp.Story, nil
}

func (c *HTTPClient) DeleteStory(ctx context.Context, token string, storyID string) error {
	req := tokenRequest{Token: token}
	return c.do(ctx, http.MethodDelete, "/stories/"+url.PathEscape(storyID), nil, req, nil, false)
}

func (c *HTTPClient) Signup(ctx context.Context, username, password, name string) (Profile, string, error) {
	req := signupRequest{User: userPayload{Username: username, Password: password, Name: name}}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/signup", nil, req, &resp, true); err != nil {
		return Profile{}, "", err
	}
	if resp.Token == "" || resp.User.Username == "" {
		return Profile{}, "", fmt.Errorf("api: malformed signup response: missing token or user")
	}
	return resp.User, resp.Token, nil
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (Profile, string, error) {
	req := signupRequest{User: userPayload{Username: username, Password: password}}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/login", nil, req, &resp, true); err != nil {
		return Profile{}, "", err
	}
	if resp.Token == "" || resp.User.Username == "" {
		return Profile{}, "", fmt.Errorf("api: malformed login response: missing token or user")
	}
	return resp.User, resp.Token, nil
}

func (c *HTTPClient) User(ctx context.Context, token string, username string) (Profile, error) {
	query := url.Values{"token": {token}}
	var resp userResponse
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(username), query, nil, &resp, false); err != nil {
		return Profile{}, err
	}
	if resp.User.Username == "" {
		return Profile{}, fmt.Errorf("api: malformed user response: missing username")
	}
	return resp.User, nil
}

func (c *HTTPClient) AddFavorite(ctx context.Context, token string, username string, storyID string) error {
	req := tokenRequest{Token: token}
	path := "/users/" + url.PathEscape(username) + "/favorites/" + url.PathEscape(storyID)
	return c.do(ctx, http.MethodPost, path, nil, req, nil, false)
}

func (c *HTTPClient) RemoveFavorite(ctx context.Context, token string, username string, storyID string) error {
	req := tokenRequest{Token: token}
	path := "/users/" + url.PathEscape(username) + "/favorites/" + url.PathEscape(storyID)
	return c.do(ctx, http.MethodDelete, path, nil, req, nil, false)
}

// do issues one request and decodes the JSON result into out (when non-nil).
// Transport failures wrap ErrUnavailable; non-2xx statuses become *Error.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any, out any, authEndpoint bool) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %v", ErrUnavailable, ctxErr)
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", requestID,
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(resp.StatusCode, readErrorMessage(resp.Body), authEndpoint)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// readErrorMessage pulls a human-readable message out of an error body.
// The API nests it under "error", older deployments used a flat "message".
func readErrorMessage(r io.Reader) string {
	var payload struct {
		Error struct {
			Title   string `json:"title"`
			Message string `json:"message"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return ""
	}
	if payload.Error.Message != "" {
		return payload.Error.Message
	}
	if payload.Error.Title != "" {
		return payload.Error.Title
	}
	return payload.Message
}
