package validation

import (
	"slices"
	"strings"
)

// Allowlist is the fixed set of hosts images may be fetched from. It is built
// once at startup and never mutated. Entries match exactly: no wildcards, no
// suffix or subdomain matching.
type Allowlist struct {
	hosts map[string]struct{}
}

func NewAllowlist(hosts ...string) Allowlist {
	set := make(map[string]struct{}, len(hosts))
	for _, h := range hosts {
		h = strings.ToLower(strings.TrimSpace(h))
		if h == "" {
			continue
		}
		set[h] = struct{}{}
	}
	return Allowlist{hosts: set}
}

func (a Allowlist) Contains(hostname string) bool {
	_, ok := a.hosts[hostname]
	return ok
}

func (a Allowlist) Hosts() []string {
	hosts := make([]string, 0, len(a.hosts))
	for h := range a.hosts {
		hosts = append(hosts, h)
	}
	slices.Sort(hosts)
	return hosts
}

func (a Allowlist) Len() int {
	return len(a.hosts)
}
