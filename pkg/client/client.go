package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/mjholt/deckhand/pkg/domain"
)

// CreateProjectRequest is the payload for creating a new project.
type CreateProjectRequest struct {
	UserID      int64   `json:"userId"`
	ProjectName string  `json:"projectName"`
	Image       *string `json:"image,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UpdateProjectRequest is the payload for updating an existing project.
// The server requires userId alongside the changed fields.
type UpdateProjectRequest struct {
	ProjectName *string `json:"projectName,omitempty"`
	Image       *string `json:"image,omitempty"`
	Description *string `json:"description,omitempty"`
	UserID      int64   `json:"userId"`
}

type signUpRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

type signInRequest struct {
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// Client is the dashboard API client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a new API client. baseURL includes the /api prefix.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SignUp registers a new user. passwordDigest must already be digested by
// the caller; the client never hashes credentials itself.
func (c *Client) SignUp(ctx context.Context, name, email, passwordDigest string) (*domain.User, error) {
	var u domain.User
	req := signUpRequest{Name: name, Email: email, PasswordHash: passwordDigest}
	if err := c.post(ctx, "/users/signup", req, &u); err != nil {
		return nil, fmt.Errorf("client.SignUp: %w", err)
	}
	return &u, nil
}

// SignIn authenticates a user and returns the session token plus profile.
func (c *Client) SignIn(ctx context.Context, email, passwordDigest string) (*domain.AuthData, error) {
	var auth domain.AuthData
	req := signInRequest{Email: email, PasswordHash: passwordDigest}
	if err := c.post(ctx, "/users/signin", req, &auth); err != nil {
		return nil, fmt.Errorf("client.SignIn: %w", err)
	}
	return &auth, nil
}

// ListProjects fetches projects, optionally filtered to one owner.
func (c *Client) ListProjects(ctx context.Context, userID *int64) ([]domain.Project, error) {
	path := "/projects"
	if userID != nil {
		params := url.Values{}
		params.Set("userId", strconv.FormatInt(*userID, 10))
		path += "?" + params.Encode()
	}

	var projects []domain.Project
	if err := c.get(ctx, path, &projects); err != nil {
		return nil, fmt.Errorf("client.ListProjects: %w", err)
	}
	return projects, nil
}

// GetProject fetches a single project by ID.
func (c *Client) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	var p domain.Project
	if err := c.get(ctx, "/projects/"+strconv.FormatInt(id, 10), &p); err != nil {
		return nil, fmt.Errorf("client.GetProject: %w", err)
	}
	return &p, nil
}

// CreateProject creates a new project and returns the server's record.
func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (*domain.Project, error) {
	var created domain.Project
	if err := c.post(ctx, "/projects", req, &created); err != nil {
		return nil, fmt.Errorf("client.CreateProject: %w", err)
	}
	return &created, nil
}

// UpdateProject applies a partial update to an existing project.
func (c *Client) UpdateProject(ctx context.Context, id, userID int64, req UpdateProjectRequest) (*domain.Project, error) {
	req.UserID = userID
	var updated domain.Project
	if err := c.doRequest(ctx, http.MethodPut, "/projects/"+strconv.FormatInt(id, 10), req, &updated); err != nil {
		return nil, fmt.Errorf("client.UpdateProject: %w", err)
	}
	return &updated, nil
}

// DeleteProject deletes a project by ID.
func (c *Client) DeleteProject(ctx context.Context, id, userID int64) error {
	params := url.Values{}
	params.Set("userId", strconv.FormatInt(userID, 10))
	path := "/projects/" + strconv.FormatInt(id, 10) + "?" + params.Encode()
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("client.DeleteProject: %w", err)
	}
	return nil
}

// SearchProjects searches projects by name, optionally scoped to one owner.
func (c *Client) SearchProjects(ctx context.Context, query string, userID *int64) ([]domain.Project, error) {
	params := url.Values{}
	params.Set("q", query)
	if userID != nil {
		params.Set("userId", strconv.FormatInt(*userID, 10))
	}

	var projects []domain.Project
	if err := c.get(ctx, "/projects/search?"+params.Encode(), &projects); err != nil {
		return nil, fmt.Errorf("client.SearchProjects: %w", err)
	}
	return projects, nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.doRequest(ctx, http.MethodPost, path, body, out)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setCommonHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) setCommonHeaders(req *http.Request) {
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// decodeError turns a non-2xx response into an *HTTPError, preferring the
// body's "error" field when present.
func decodeError(resp *http.Response) error {
	respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
	if readErr != nil {
		return &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
	}
	var apiErr struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error != "" {
		return &HTTPError{StatusCode: resp.StatusCode, Message: apiErr.Error}
	}
	return &HTTPError{StatusCode: resp.StatusCode, Message: string(respBody)}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, out)
}
