package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/brogergvhs/repolabel/internal/util"
)

var ErrNotFound = errors.New("content was not found")

// StatusError carries the HTTP status of a failed API call.
type StatusError struct {
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: HTTP %d", e.URL, e.Status)
}

func (e *StatusError) Unwrap() error {
	return ErrNotFound
}

type ClientOptions struct {
	APIBase  string
	User     string
	Token    string
	Attempts int
	Backoff  time.Duration
}

// Client talks to the GitHub REST API.
type Client struct {
	http     *http.Client
	apiBase  string
	user     string
	token    string
	attempts int
	backoff  time.Duration
}

func NewClient(c *http.Client, opts ClientOptions) *Client {
	if opts.APIBase == "" {
		opts.APIBase = "https://api.github.com"
	}
	if opts.Attempts <= 0 {
		opts.Attempts = 3
	}
	if opts.Backoff <= 0 {
		opts.Backoff = 500 * time.Millisecond
	}

	return &Client{
		http:     c,
		apiBase:  strings.TrimRight(opts.APIBase, "/"),
		user:     opts.User,
		token:    opts.Token,
		attempts: opts.Attempts,
		backoff:  opts.Backoff,
	}
}

type contentsResponse struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

type topicsResponse struct {
	Names []string `json:"names"`
}

// Readme returns the repository README.md, decoded and lower-cased.
func (c *Client) Readme(ctx context.Context, repo Repo) (string, error) {
	var body contentsResponse
	if err := c.getJSON(ctx, repo.ReadmeURL(c.apiBase), "application/vnd.github+json", &body); err != nil {
		return "", err
	}

	return DecodeContent(body.Content)
}

// Topics returns the topics GitHub lists for the repository.
func (c *Client) Topics(ctx context.Context, repo Repo) ([]string, error) {
	var body topicsResponse
	if err := c.getJSON(ctx, repo.TopicsURL(c.apiBase), "application/vnd.github.mercy-preview+json", &body); err != nil {
		return nil, err
	}

	return body.Names, nil
}

func (c *Client) getJSON(ctx context.Context, target, accept string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", accept)
	if c.user != "" || c.token != "" {
		req.SetBasicAuth(c.user, c.token)
	}

	resp, err := util.DoWithRetry(c.http, req, c.attempts, c.backoff)
	if err != nil {
		return fmt.Errorf("GET %s: %w", target, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{URL: target, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", target, err)
	}

	return nil
}

// DecodeContent decodes the base64 payload of the contents API. GitHub
// wraps it at 60 columns, so line breaks are stripped first.
func DecodeContent(content string) (string, error) {
	clean := strings.NewReplacer("\n", "", "\r", "").Replace(content)

	raw, err := base64.StdEncoding.DecodeString(clean)
	if err != nil {
		return "", fmt.Errorf("decode README: %w", err)
	}

	return strings.ToLower(string(raw)), nil
}
