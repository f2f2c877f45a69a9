// Package network provides the pre-configured HTTP clients shared across a single run.
package network

import (
	"net/http"
	"time"
)

// Client is the singleton HTTP client shared across the application.
// Per-request deadlines are applied through contexts; the client-level
// timeout is only a safety net.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
}

// NoRedirect is the client used for b23.tv short-link resolution.
// It surfaces the 301/302 response itself instead of following it, so the
// Location header can be inspected.
var NoRedirect = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
	CheckRedirect: func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	},
}

// newTransport initializes a tuned http.Transport with conservative pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}
