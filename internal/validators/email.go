package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checks that the address's domain can actually
// receive mail: an MX record, or failing that a resolvable host.
// Registration uses it to turn away throwaway domains before an
// account row is created.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	// Some small institutional domains receive mail on the A record.
	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
