// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Bilicard is the canonical application identifier used for filesystem paths and CLI branding.
	Bilicard = "bilicard"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is the browser-like HTTP User-Agent string sent with every outbound request.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// Referer is attached to Bilibili API calls; the endpoints reject referer-less requests intermittently.
	Referer = "https://www.bilibili.com/"
)

// Build metadata, overridable at link time via -ldflags.
var (
	Revision = "unknown"
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
)
