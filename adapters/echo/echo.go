// Package hxattrsecho provides Echo framework integration for hxattrs.
//
// A Binder seals attribute bags into hx-vals and rebuilds them when the
// htmx request comes back:
//
//	b, err := hxattrsecho.NewBinder(hxattrsecho.WithKey(key))
//	req, err := b.Request(http.MethodPost, "/rows", props.SpreadAttrs())
//
//	e.POST("/rows", handler, b.Middleware())
//
//	func handler(c echo.Context) error {
//	    attrs := hxattrsecho.AttrsFrom(c)
//	    return hxattrsecho.Render(c, http.StatusOK, Row(attrs))
//	}
package hxattrsecho

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/pthm/hxattrs"
)

// DefaultField is the request parameter a sealed bag travels in.
const DefaultField = "attrs"

// contextKey is the echo.Context key Middleware stores the bag under.
const contextKey = "hxattrs.attrs"

// Option configures NewBinder.
type Option func(*options)

type options struct {
	key       []byte
	field     string
	sensitive bool
}

// WithKey sets the sealing key.
// The key should be at least 32 bytes of cryptographically random data.
// If not provided, a random key is generated (suitable for development only).
func WithKey(key []byte) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithField sets the request parameter holding the sealed bag.
// Defaults to DefaultField.
func WithField(field string) Option {
	return func(o *options) {
		o.field = field
	}
}

// WithSensitive encrypts sealed bags instead of signing them.
func WithSensitive() Option {
	return func(o *options) {
		o.sensitive = true
	}
}

// Binder seals bags into htmx requests and unseals them from the incoming
// request parameters.
type Binder struct {
	enc       *hxattrs.Encoder
	field     string
	sensitive bool
}

// NewBinder creates a Binder from opts.
func NewBinder(opts ...Option) (*Binder, error) {
	o := &options{field: DefaultField}
	for _, opt := range opts {
		opt(o)
	}

	key := o.key
	if key == nil {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("hxattrsecho: failed to generate random key: %w", err)
		}
	}

	enc, err := hxattrs.NewEncoder(key)
	if err != nil {
		return nil, fmt.Errorf("hxattrsecho: %w", err)
	}
	return &Binder{enc: enc, field: o.field, sensitive: o.sensitive}, nil
}

// Field returns the request parameter the binder reads.
func (b *Binder) Field() string {
	return b.field
}

// Request starts an htmx request for url that carries a sealed in hx-vals.
func (b *Binder) Request(method, url string, a hxattrs.Attrs) (hxattrs.Request, error) {
	return hxattrs.NewRequest(method, url).SealedVals(b.enc, b.field, a, b.sensitive)
}

// Bind unseals the bag carried by the request. A request without the
// parameter yields the empty bag. Tampered or malformed tokens are
// reported as 400 Bad Request.
func (b *Binder) Bind(c echo.Context) (hxattrs.Attrs, error) {
	token := c.FormValue(b.field)
	if token == "" {
		return hxattrs.Attrs{}, nil
	}

	a, err := hxattrs.Unseal(b.enc, token, b.sensitive)
	if err != nil {
		if errors.Is(err, hxattrs.ErrInvalidFormat) ||
			errors.Is(err, hxattrs.ErrSignatureInvalid) ||
			errors.Is(err, hxattrs.ErrDecryptFailed) {
			return hxattrs.Attrs{}, echo.NewHTTPError(http.StatusBadRequest, "invalid "+b.field).SetInternal(err)
		}
		return hxattrs.Attrs{}, err
	}
	return a, nil
}

// Middleware binds the request's bag before the handler runs. Handlers
// read it with AttrsFrom.
func (b *Binder) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			a, err := b.Bind(c)
			if err != nil {
				return err
			}
			c.Set(contextKey, a)
			return next(c)
		}
	}
}

// AttrsFrom returns the bag bound by Middleware, or the empty bag.
func AttrsFrom(c echo.Context) hxattrs.Attrs {
	a, _ := c.Get(contextKey).(hxattrs.Attrs)
	return a
}

// RequireHTMX rejects state-changing requests that were not sent by htmx.
// Browsers do not attach the HX-Request header to cross-site form posts,
// so this stops simple CSRF. GET, HEAD and OPTIONS pass through.
func RequireHTMX() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch c.Request().Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(c)
			}
			if !hxattrs.IsHTMX(c.Request()) {
				return echo.NewHTTPError(http.StatusForbidden, "htmx request required")
			}
			return next(c)
		}
	}
}

// Render writes a templ component to the Echo response with the given
// status.
//
//	func handler(c echo.Context) error {
//	    return hxattrsecho.Render(c, http.StatusOK, myTemplate())
//	}
func Render(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Request().Context(), c.Response())
}
