// Package network resolves the requesting client's address. The quote
// pipeline keys rate limiting on this value and stores it alongside each
// accepted request, so proxy headers are consulted before RemoteAddr.
package network

import (
	"net"
	"net/http"
	"strings"
)

// GetClientIP returns the address a request originated from. Behind a
// reverse proxy the X-Forwarded-For chain carries the real client as its
// first entry; X-Real-IP is the single-value variant some proxies set
// instead. Without either header the transport peer address is used,
// with the port stripped.
func GetClientIP(r *http.Request) string {
	if chain := r.Header.Get("X-Forwarded-For"); chain != "" {
		first, _, _ := strings.Cut(chain, ",")
		return strings.TrimSpace(first)
	}

	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return strings.TrimSpace(ip)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
