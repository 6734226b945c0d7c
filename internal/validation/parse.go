package validation

import (
	"net/url"
	"strconv"
	"strings"
)

// ParsedURL is the immutable result of parsing a candidate image URL. The
// fetcher issues its request from the same parsed value the validator saw.
type ParsedURL struct {
	Raw      string
	Scheme   string
	Hostname string
	Port     string
	Path     string

	u *url.URL
}

// URL returns a copy of the underlying URL.
func (p ParsedURL) URL() *url.URL {
	if p.u == nil {
		return nil
	}
	u := *p.u
	return &u
}

func (p ParsedURL) String() string {
	if p.u == nil {
		return p.Raw
	}
	return p.u.String()
}

type Parser struct {
	maxLength int
}

func NewParser(maxLength int) *Parser {
	return &Parser{maxLength: maxLength}
}

func (p *Parser) Parse(rawURL string) (ParsedURL, error) {
	if strings.TrimSpace(rawURL) == "" {
		return ParsedURL{}, parseError(ErrEmptyURL)
	}

	if p.maxLength > 0 && len(rawURL) > p.maxLength {
		return ParsedURL{}, parseError(ErrURLTooLong)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return ParsedURL{}, parseError(ErrInvalidURLFormat)
	}

	parsed, err := FromURL(u)
	if err != nil {
		return ParsedURL{}, err
	}
	parsed.Raw = rawURL
	return parsed, nil
}

// FromURL builds a ParsedURL from an already parsed URL, applying the same
// authority checks as Parse. Hostnames are lowercased; nothing else is rewritten.
func FromURL(u *url.URL) (ParsedURL, error) {
	if u == nil {
		return ParsedURL{}, parseError(ErrInvalidURLFormat)
	}

	// url.Parse lowercases the scheme already.
	if u.Scheme == "" {
		return ParsedURL{}, parseError(ErrMissingScheme)
	}

	if u.Opaque != "" || u.Host == "" {
		return ParsedURL{}, parseError(ErrMissingHost)
	}

	if u.User != nil {
		return ParsedURL{}, parseError(ErrCredentialsNotAllowed)
	}

	hostname := strings.ToLower(u.Hostname())
	if hostname == "" {
		return ParsedURL{}, parseError(ErrMissingHost)
	}

	port := u.Port()
	if port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n < 1 || n > 65535 {
			return ParsedURL{}, parseError(ErrInvalidPort)
		}
	}

	clone := *u
	return ParsedURL{
		Raw:      u.String(),
		Scheme:   u.Scheme,
		Hostname: hostname,
		Port:     port,
		Path:     u.Path,
		u:        &clone,
	}, nil
}
