// Package segment defines the ordered content units handed from the metadata
// pipeline to the clipboard writer.
package segment

// Kind discriminates the segment payload.
type Kind int

const (
	// Text payloads hold literal, already-formatted card text.
	Text Kind = iota
	// Image payloads hold the source URL of a cover image.
	Image
)

// Segment is a tagged value produced by the formatter. Segments are consumed
// strictly in the order they were produced.
type Segment struct {
	Kind  Kind
	Value string
}

// NewText wraps formatted card text in a segment.
func NewText(s string) Segment {
	return Segment{Kind: Text, Value: s}
}

// NewImage wraps a cover image URL in a segment.
func NewImage(url string) Segment {
	return Segment{Kind: Image, Value: url}
}
