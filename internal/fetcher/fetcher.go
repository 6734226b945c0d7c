package fetcher

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"syscall"

	"profileimage/internal/config"
	"profileimage/internal/validation"
)

var (
	ErrFetchFailed        = errors.New("failed to retrieve image")
	ErrUnexpectedStatus   = errors.New("url returned a non-OK status code")
	ErrEmptyBody          = errors.New("url returned an empty body")
	ErrTooManyRedirects   = errors.New("too many redirects")
	ErrRedirectNotAllowed = errors.New("redirect target not allowed")
	ErrInvalidTarget      = errors.New("fetch target is not a parsed url")
)

type RedirectValidator interface {
	ValidateURL(u *url.URL) error
}

type AddressValidator interface {
	ValidateAddress(address string) error
}

type Response struct {
	// Body streams the payload. It fails with *http.MaxBytesError once more
	// than the configured byte cap has been read.
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
	StatusCode    int
}

type Fetcher struct {
	client    *http.Client
	maxBytes  int64
	userAgent string
}

// New builds a fetcher whose client re-validates every redirect hop and, unless
// private addresses are allowed, refuses to dial internal addresses after DNS
// resolution.
func New(cfg *config.FetchConfig, redirects RedirectValidator, addresses AddressValidator) *Fetcher {
	dialer := &net.Dialer{Timeout: cfg.DialTimeout}
	if !cfg.AllowPrivateIPs && addresses != nil {
		dialer.Control = func(_, address string, _ syscall.RawConn) error {
			return addresses.ValidateAddress(address)
		}
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = nil
	transport.DialContext = dialer.DialContext

	client := &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) > cfg.MaxRedirects {
				return ErrTooManyRedirects
			}
			if err := redirects.ValidateURL(req.URL); err != nil {
				return fmt.Errorf("%w: %w", ErrRedirectNotAllowed, err)
			}
			return nil
		},
	}

	return &Fetcher{
		client:    client,
		maxBytes:  cfg.MaxBytes,
		userAgent: cfg.UserAgent,
	}
}

// Fetch issues a single GET for target. Callers must only pass targets that
// received an allowed verdict.
func (f *Fetcher) Fetch(ctx context.Context, target validation.ParsedURL) (*Response, error) {
	u := target.URL()
	if u == nil {
		return nil, fetchError(ErrInvalidTarget)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fetchError(err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "image/*")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fetchError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fetchError(fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode))
	}

	var body io.ReadCloser = resp.Body
	if f.maxBytes > 0 {
		body = http.MaxBytesReader(nil, resp.Body, f.maxBytes)
	}

	// Peek rather than buffer: an empty body is detected without reading the
	// payload into memory.
	buffered := bufio.NewReader(body)
	if _, err := buffered.Peek(1); err != nil {
		body.Close()
		if errors.Is(err, io.EOF) {
			return nil, fetchError(ErrEmptyBody)
		}
		return nil, fetchError(err)
	}

	return &Response{
		Body:          &readCloser{Reader: buffered, Closer: body},
		ContentType:   resp.Header.Get("Content-Type"),
		ContentLength: resp.ContentLength,
		StatusCode:    resp.StatusCode,
	}, nil
}

type readCloser struct {
	io.Reader
	io.Closer
}

func fetchError(reason error) error {
	return fmt.Errorf("%w: %w", ErrFetchFailed, reason)
}
