// Package utils holds small shared helpers.
package utils

import (
	"net"
)

// IsAllowedIP reports whether ip falls inside any of the allowed CIDR
// networks. Invalid CIDRs in the list are skipped.
func IsAllowedIP(ip string, allowedCIDRs []string) bool {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}

	for _, cidr := range allowedCIDRs {
		_, netblock, err := net.ParseCIDR(cidr)
		if err != nil {
			continue
		}
		if netblock.Contains(parsed) {
			return true
		}
	}
	return false
}
