//go:build !windows

package clipboard

// No HTML write backend exists for this platform yet; Write reports an
// unsupported-platform error when the rendered payload is non-empty.
