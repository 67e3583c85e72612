// Package contact validates and submits the portfolio contact form.
package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iburimskiy/portfolio-rain/internal/notify"
)

// User-facing messages.
const (
	MsgSent          = "Message sent successfully! I will get back to you soon."
	MsgFailed        = "Something went wrong. Please try again later."
	MsgNetwork       = "Network error. Please check your connection and try again."
	MsgSending       = "Sending..."
	MsgMissingFields = "Please fill in all fields"
	MsgInvalidEmail  = "Please enter a valid email address"

	requestIDHeader = "X-Request-ID"
)

var (
	ErrMissingFields = errors.New("contact: missing required field")
	ErrInvalidEmail  = errors.New("contact: invalid email address")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form is the contact form's fields.
type Form struct {
	Name    string
	Email   string
	Message string
}

// Validate checks that every field is filled and the email looks like one.
func (f Form) Validate() error {
	if f.Name == "" || f.Email == "" || f.Message == "" {
		return ErrMissingFields
	}
	if !emailPattern.MatchString(f.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// Message returns the text shown to the visitor for err.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingFields):
		return MsgMissingFields
	case errors.Is(err, ErrInvalidEmail):
		return MsgInvalidEmail
	default:
		return MsgFailed
	}
}

// IsValidEmail reports whether s matches the contact form's email pattern.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Result is the notification to show after a submission attempt.
type Result = notify.Notification

// Client posts forms to a form-handling endpoint.
type Client struct {
	endpoint string
	method   string
	http     *http.Client
	log      *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the transport.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithMethod overrides the HTTP method. Empty means POST.
func WithMethod(m string) Option {
	return func(c *Client) {
		if m != "" {
			c.method = strings.ToUpper(m)
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient returns a client that submits to endpoint.
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		method:   http.MethodPost,
		http:     &http.Client{Timeout: 15 * time.Second},
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit validates f and, if valid, sends it. It never returns an error:
// every outcome is expressed as the notification to show.
func (c *Client) Submit(ctx context.Context, f Form) Result {
	if err := f.Validate(); err != nil {
		return Result{Text: Message(err), Kind: notify.Error}
	}

	id := uuid.NewString()
	log := c.log.With(zap.String("request_id", id), zap.String("endpoint", c.endpoint))

	req, err := c.newRequest(ctx, f)
	if err != nil {
		log.Error("building contact request failed", zap.Error(err))
		return Result{Text: MsgNetwork, Kind: notify.Error}
	}
	req.Header.Set(requestIDHeader, id)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("contact submission failed", zap.Error(err))
		return Result{Text: MsgNetwork, Kind: notify.Error}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		log.Info("contact message sent", zap.Int("status", resp.StatusCode))
		return Result{Text: MsgSent, Kind: notify.Success}
	}

	msg := errorMessage(resp.Body)
	log.Warn("contact endpoint rejected message", zap.Int("status", resp.StatusCode), zap.String("reason", msg))
	return Result{Text: msg, Kind: notify.Error}
}

func (c *Client) newRequest(ctx context.Context, f Form) (*http.Request, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for _, field := range [][2]string{
		{"name", f.Name},
		{"email", f.Email},
		{"message", f.Message},
	} {
		if err := mw.WriteField(field[0], field[1]); err != nil {
			return nil, fmt.Errorf("writing field %s: %w", field[0], err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("closing form body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, c.method, c.endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	return req, nil
}

type errorBody struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// errorMessage extracts endpoint-provided error messages, falling back to a
// generic one when the body is not the expected JSON.
func errorMessage(r io.Reader) string {
	var eb errorBody
	if err := json.NewDecoder(io.LimitReader(r, 64<<10)).Decode(&eb); err != nil || len(eb.Errors) == 0 {
		return MsgFailed
	}
	msgs := make([]string, 0, len(eb.Errors))
	for _, e := range eb.Errors {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, ", ")
}

// SubmitAsync runs Submit on its own goroutine. The returned channel is
// buffered and receives exactly one result.
func (c *Client) SubmitAsync(ctx context.Context, f Form) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		ch <- c.Submit(ctx, f)
	}()
	return ch
}
