package constant

// Bilibili endpoint roots. The API base is overridable in tests through the
// bili.Client options rather than through configuration; these are the
// production values.
const (
	// APIBase is the root of the Bilibili web API.
	APIBase = "https://api.bilibili.com"

	// ShortBase is the root of the b23.tv short-link redirector.
	ShortBase = "https://b23.tv"

	// VideoBase prefixed with a BV id yields the canonical video page URL.
	VideoBase = "https://www.bilibili.com/video/"
)
