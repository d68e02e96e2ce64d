// Package transport delivers serialized documents to a bridges renderer.
//
// [Poster] is the narrow interface the rest of the module depends on.
// [Connector] implements it over HTTP with request IDs, bearer
// authentication and retries on transient failures:
//
//	c, err := transport.New(transport.Options{
//	    Server:     transport.ServerURL("live"),
//	    Assignment: 3,
//	    User:       "alice",
//	    APIKey:     os.Getenv("BRIDGES_API_KEY"),
//	})
//	url, err := c.Submit(ctx, payload)
package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/bridges/pkg/buildinfo"
	"github.com/matzehuels/bridges/pkg/errors"
	"github.com/matzehuels/bridges/pkg/observability"
)

// Server presets.
var servers = map[string]string{
	"live":  "https://bridges-cs.herokuapp.com",
	"clone": "https://bridges-clone.herokuapp.com",
	"local": "http://localhost:3000",
}

// ServerURL resolves a preset name ("live", "clone", "local") to its URL.
// Any other value is returned unchanged so full URLs pass through.
func ServerURL(nameOrURL string) string {
	if u, ok := servers[strings.ToLower(nameOrURL)]; ok {
		return u
	}
	return nameOrURL
}

// Defaults.
const (
	DefaultTimeout  = 30 * time.Second
	DefaultAttempts = 3
	DefaultDelay    = time.Second

	// RequestIDHeader carries a fresh UUID on every attempt.
	RequestIDHeader = "X-Request-ID"
)

// Poster sends a body to a path on the renderer and reports the HTTP
// status code.
type Poster interface {
	Post(ctx context.Context, path string, body []byte) (int, error)
}

// Options configures a Connector.
type Options struct {
	Server     string        `validate:"required,url"`
	Assignment int           `validate:"gte=0"`
	User       string        `validate:"omitempty,max=64"`
	APIKey     string        `validate:"-"`
	Timeout    time.Duration `validate:"gte=0"`
	Attempts   int           `validate:"gte=0"`
	Delay      time.Duration `validate:"gte=0"`

	// HTTPClient overrides the default client built from Timeout.
	HTTPClient *http.Client `validate:"-"`
	Logger     *log.Logger  `validate:"-"`
}

// Connector posts documents to a renderer over HTTP. Each successful
// Submit advances the sub-assignment counter, so consecutive documents
// land in consecutive slots of the same assignment.
type Connector struct {
	server     string
	assignment int
	part       int
	user       string
	apiKey     string
	attempts   int
	delay      time.Duration
	http       *http.Client
	logger     *log.Logger
}

// New validates opts and returns a Connector.
func New(opts Options) (*Connector, error) {
	opts.Server = ServerURL(opts.Server)
	if err := errors.CheckStruct(opts); err != nil {
		return nil, err
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Attempts == 0 {
		opts.Attempts = DefaultAttempts
	}
	if opts.Delay == 0 {
		opts.Delay = DefaultDelay
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Connector{
		server:     strings.TrimRight(opts.Server, "/"),
		assignment: opts.Assignment,
		user:       opts.User,
		apiKey:     opts.APIKey,
		attempts:   opts.Attempts,
		delay:      opts.Delay,
		http:       opts.HTTPClient,
		logger:     opts.Logger,
	}, nil
}

// Server returns the base URL.
func (c *Connector) Server() string { return c.server }

// AssignmentID returns the current assignment slot, e.g. "3.00".
func (c *Connector) AssignmentID() string {
	return fmt.Sprintf("%d.%02d", c.assignment, c.part)
}

// AssignmentPath returns the path documents are posted to.
func (c *Connector) AssignmentPath() string {
	return "/assignments/" + c.AssignmentID()
}

// VisualizationURL returns the page showing the user's assignment.
func (c *Connector) VisualizationURL() string {
	u := fmt.Sprintf("%s/assignments/%d", c.server, c.assignment)
	if c.user != "" {
		u += "/" + url.PathEscape(c.user)
	}
	return u
}

// Submit posts body to the current assignment slot and returns the
// visualization URL. The slot advances only on success.
func (c *Connector) Submit(ctx context.Context, body []byte) (string, error) {
	if _, err := c.Post(ctx, c.AssignmentPath(), body); err != nil {
		return "", err
	}
	c.part++
	return c.VisualizationURL(), nil
}

// Post sends body to path with retries. Only 2xx responses succeed.
// 401 and 403 map to UNAUTHORIZED, every other failure to NETWORK; the
// underlying *errors.StatusError is kept as the cause.
func (c *Connector) Post(ctx context.Context, path string, body []byte) (int, error) {
	var (
		status  int
		attempt int
	)
	hooks := observability.Transport()
	err := retry(ctx, c.attempts, c.delay, func() error {
		attempt++
		hooks.OnAttempt(ctx, path, attempt)
		start := time.Now()

		var err error
		status, err = c.post(ctx, path, body)
		if status != 0 {
			hooks.OnResponse(ctx, path, status, time.Since(start))
		}
		if err != nil {
			hooks.OnError(ctx, path, err)
		}
		return err
	})
	if err == nil {
		return status, nil
	}
	if ctx.Err() != nil {
		return status, errors.Wrap(errors.ErrCodeTimeout, err, "post %s", path)
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return status, errors.Wrap(errors.ErrCodeUnauthorized, err, "post %s: check the api key", path)
	}
	return status, errors.Wrap(errors.ErrCodeNetwork, err, "post %s", path)
}

func (c *Connector) post(ctx context.Context, path string, body []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.server+path, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	id := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, id)
	req.Header.Set("User-Agent", buildinfo.UserAgent())
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	c.logger.Debug("posting document", "path", path, "bytes", len(body), "request_id", id)
	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return 0, err
		}
		return 0, &retryableError{err: err}
	}
	defer resp.Body.Close()

	return resp.StatusCode, checkStatus(resp)
}

func checkStatus(resp *http.Response) error {
	code := resp.StatusCode
	if code >= 200 && code < 300 {
		return nil
	}
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	err := &errors.StatusError{StatusCode: code, Body: strings.TrimSpace(string(msg))}
	if code >= 500 {
		return &retryableError{err: err}
	}
	return err
}
