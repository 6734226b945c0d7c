package validation

import "net/url"

var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
}

type Verdict struct {
	Allowed bool
	Reason  error
}

// Err returns nil for an allowed verdict, otherwise an error matching both
// ErrHostRejected and the specific reason.
func (v Verdict) Err() error {
	if v.Allowed {
		return nil
	}
	return rejection(v.Reason)
}

func allow() Verdict {
	return Verdict{Allowed: true}
}

func reject(reason error) Verdict {
	return Verdict{Reason: reason}
}

// HostValidator is the only place that decides whether a host may be fetched.
type HostValidator struct {
	allowlist Allowlist
}

func NewHostValidator(allowlist Allowlist) *HostValidator {
	return &HostValidator{allowlist: allowlist}
}

func (v *HostValidator) Validate(p ParsedURL) Verdict {
	defaultPort, ok := defaultPorts[p.Scheme]
	if !ok {
		return reject(ErrUnsafeProtocol)
	}

	if !v.allowlist.Contains(p.Hostname) {
		return reject(ErrHostNotAllowed)
	}

	if p.Port != "" && p.Port != defaultPort {
		return reject(ErrPortNotAllowed)
	}

	return allow()
}

// ValidateURL runs the parser checks and the verdict on an already parsed URL,
// e.g. a redirect target.
func (v *HostValidator) ValidateURL(u *url.URL) error {
	p, err := FromURL(u)
	if err != nil {
		return rejection(err)
	}
	return v.Validate(p).Err()
}
