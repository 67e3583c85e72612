package contact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"github.com/iburimskiy/portfolio-rain/internal/notify"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var validForm = Form{Name: "Ada", Email: "ada@example.com", Message: "Hello there"}

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	opts = append([]Option{WithHTTPClient(&http.Client{
		Timeout:   5 * time.Second,
		Transport: &http.Transport{DisableKeepAlives: true},
	})}, opts...)
	return NewClient(srv.URL, opts...)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		form Form
		want error
	}{
		{name: "valid", form: validForm},
		{name: "missing name", form: Form{Email: "a@b.co", Message: "hi"}, want: ErrMissingFields},
		{name: "missing email", form: Form{Name: "A", Message: "hi"}, want: ErrMissingFields},
		{name: "missing message", form: Form{Name: "A", Email: "a@b.co"}, want: ErrMissingFields},
		{name: "no at", form: Form{Name: "A", Email: "ab.co", Message: "hi"}, want: ErrInvalidEmail},
		{name: "no dot", form: Form{Name: "A", Email: "a@bco", Message: "hi"}, want: ErrInvalidEmail},
		{name: "space", form: Form{Name: "A", Email: "a b@c.co", Message: "hi"}, want: ErrInvalidEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("first.last@sub.example.org"))
	assert.False(t, IsValidEmail("@example.com"))
	assert.False(t, IsValidEmail("user@"))
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "missing fields", err: ErrMissingFields, want: MsgMissingFields},
		{name: "invalid email", err: ErrInvalidEmail, want: MsgInvalidEmail},
		{name: "wrapped", err: fmt.Errorf("form: %w", ErrInvalidEmail), want: MsgInvalidEmail},
		{name: "other", err: errors.New("boom"), want: MsgFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.err))
		})
	}
}

func TestSentinelErrorsAreLowercase(t *testing.T) {
	for _, err := range []error{ErrMissingFields, ErrInvalidEmail} {
		first := err.Error()[0]
		assert.False(t, first >= 'A' && first <= 'Z', err.Error())
		assert.NotContains(t, err.Error(), "Please")
	}
}

func TestSubmitInvalidFormSkipsNetwork(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { called = true })

	res := c.Submit(context.Background(), Form{Name: "A"})

	assert.False(t, called)
	assert.Equal(t, notify.Error, res.Kind)
	assert.Equal(t, MsgMissingFields, res.Text)
}

func TestSubmitSuccess(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Ada", r.FormValue("name"))
		assert.Equal(t, "ada@example.com", r.FormValue("email"))
		assert.Equal(t, "Hello there", r.FormValue("message"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"ok":true}`)
	})

	res := c.Submit(context.Background(), validForm)

	assert.Equal(t, notify.Success, res.Kind)
	assert.Equal(t, MsgSent, res.Text)
}

func TestSubmitCustomMethod(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
	}, WithMethod("put"))

	res := c.Submit(context.Background(), validForm)

	assert.Equal(t, notify.Success, res.Kind)
}

func TestSubmitEndpointErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "joined messages",
			body: `{"errors":[{"message":"email is invalid"},{"message":"message too short"}]}`,
			want: "email is invalid, message too short",
		},
		{name: "empty errors", body: `{"errors":[]}`, want: MsgFailed},
		{name: "not json", body: `<html>oops</html>`, want: MsgFailed},
		{name: "empty body", body: ``, want: MsgFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				_, _ = io.WriteString(w, tt.body)
			})

			res := c.Submit(context.Background(), validForm)

			assert.Equal(t, notify.Error, res.Kind)
			assert.Equal(t, tt.want, res.Text)
		})
	}
}

func TestSubmitNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, WithHTTPClient(&http.Client{Transport: &http.Transport{DisableKeepAlives: true}}))
	res := c.Submit(context.Background(), validForm)

	assert.Equal(t, notify.Error, res.Kind)
	assert.Equal(t, MsgNetwork, res.Text)
}

func TestSubmitCancelledContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := c.Submit(ctx, validForm)

	assert.Equal(t, MsgNetwork, res.Text)
}

func TestSubmitAsync(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	select {
	case res := <-c.SubmitAsync(context.Background(), validForm):
		assert.Equal(t, notify.Success, res.Kind)
	case <-time.After(5 * time.Second):
		t.Fatal("no result")
	}
}
