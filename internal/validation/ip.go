package validation

import (
	"net"
	"net/netip"
	"strings"
)

// reservedPrefixes are ranges netip has no predicate for.
var reservedPrefixes = []netip.Prefix{
	netip.MustParsePrefix("100.64.0.0/10"),   // carrier-grade NAT
	netip.MustParsePrefix("192.0.0.0/24"),    // IETF protocol assignments
	netip.MustParsePrefix("192.0.2.0/24"),    // TEST-NET-1
	netip.MustParsePrefix("198.18.0.0/15"),   // benchmarking
	netip.MustParsePrefix("198.51.100.0/24"), // TEST-NET-2
	netip.MustParsePrefix("203.0.113.0/24"),  // TEST-NET-3
	netip.MustParsePrefix("240.0.0.0/4"),     // reserved
	netip.MustParsePrefix("64:ff9b::/96"),    // NAT64
}

// IPValidator guards the dial step: an allowlisted hostname may still resolve
// to an internal address.
type IPValidator struct{}

func NewIPValidator() *IPValidator {
	return &IPValidator{}
}

// ValidateAddress checks a dial address of the form "ip:port" or a bare IP.
// Hostnames that are not IP literals are not resolved here.
func (v *IPValidator) ValidateAddress(address string) error {
	host := address
	if h, _, err := net.SplitHostPort(address); err == nil {
		host = h
	}
	host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")

	addr, err := netip.ParseAddr(host)
	if err != nil {
		return nil
	}

	return v.ValidateAddr(addr)
}

func (v *IPValidator) ValidateAddr(addr netip.Addr) error {
	addr = addr.Unmap().WithZone("")

	if addr.IsPrivate() ||
		addr.IsLoopback() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsLinkLocalMulticast() ||
		addr.IsInterfaceLocalMulticast() ||
		addr.IsMulticast() ||
		addr.IsUnspecified() {
		return ErrPrivateIPNotAllowed
	}

	for _, prefix := range reservedPrefixes {
		if prefix.Contains(addr) {
			return ErrPrivateIPNotAllowed
		}
	}

	return nil
}
