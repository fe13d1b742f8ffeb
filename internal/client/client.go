// Package client talks to the portfolio REST API.
package client

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
)

// ErrNetwork marks requests that never produced an HTTP response.
var ErrNetwork = errors.New("network failure")

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Message)
}

type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	TechTags    []string  `json:"techTags"`
	DemoURL     string    `json:"demoUrl,omitempty"`
	GithubURL   string    `json:"githubUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

type Skill struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Level     string    `json:"level"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type HTTPClient struct {
	Base  string
	HTTP  *http.Client
	Token string
}

func NewHTTP(base string) *HTTPClient {
	return &HTTPClient{
		Base: strings.TrimRight(base, "/"),
		HTTP: http.DefaultClient,
	}
}

func (c *HTTPClient) Projects(ctx context.Context) ([]Project, error) {
	var out []Project
	if err := c.do(ctx, http.MethodGet, "/api/projects", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Skills(ctx context.Context) ([]Skill, error) {
	var out []Skill
	if err := c.do(ctx, http.MethodGet, "/api/skills", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubmitContact returns the server's acknowledgement message.
func (c *HTTPClient) SubmitContact(ctx context.Context, req ContactRequest) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/contact", req, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *HTTPClient) CreateProject(ctx context.Context, p Project) (Project, error) {
	var out Project
	err := c.do(ctx, http.MethodPost, "/api/projects", p, &out)
	return out, err
}

func (c *HTTPClient) CreateSkill(ctx context.Context, s Skill) (Skill, error) {
	var out Skill
	err := c.do(ctx, http.MethodPost, "/api/skills", s, &out)
	return out, err
}

// Login exchanges admin credentials for a bearer token and keeps it on the client.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var out struct {
		AccessToken string `json:"access_token"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &out); err != nil {
		return "", err
	}
	c.Token = out.AccessToken
	return out.AccessToken, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		msg := e.Message
		if msg == "" {
			msg = e.Error
		}
		return &StatusError{StatusCode: resp.StatusCode, Message: msg}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
