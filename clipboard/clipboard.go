// Package clipboard assembles the CF_HTML payload from card segments and
// installs it through a platform clipboard backend.
//
// Reading is cross-platform; writing requires a registered Backend. Only a
// Windows implementation exists today, but the registration seam keeps call
// sites backend-agnostic.
package clipboard

import (
	"fmt"
	"runtime"
	"strings"

	atotto "github.com/atotto/clipboard"
	"github.com/bilicard-cli/bilicard/cover"
	"github.com/bilicard-cli/bilicard/key"
	"github.com/bilicard-cli/bilicard/log"
	"github.com/bilicard-cli/bilicard/segment"
	"github.com/spf13/viper"
)

// Backend installs a fully rendered CF_HTML payload as the clipboard content.
type Backend interface {
	Name() string
	WriteHTML(payload []byte) error
}

var backend Backend

// Register installs the platform backend. Called from a platform-specific
// init; the last registration wins.
func Register(b Backend) {
	backend = b
}

// Supported reports whether a write backend is available on this platform.
func Supported() bool {
	return backend != nil
}

// Load returns the current plain-text clipboard content.
func Load() (string, error) {
	return atotto.ReadAll()
}

// loadImage is swapped out in tests to avoid real downloads.
var loadImage = cover.Load

// Markup renders segments into an HTML fragment. Text segments become
// paragraphs with newlines as <br>; image segments are inlined as data URIs
// and silently dropped when the cover cannot be loaded.
func Markup(segments []segment.Segment) string {
	includeImages := viper.GetBool(key.ClipboardIncludeImage)

	var parts []string
	for _, seg := range segments {
		switch seg.Kind {
		case segment.Text:
			text := strings.ReplaceAll(strings.TrimSpace(seg.Value), "\n", "<br>")
			parts = append(parts, "<p>"+text+"</p>")
		case segment.Image:
			if !includeImages {
				continue
			}
			src := loadImage(seg.Value)
			if src == "" {
				log.Warnf("skipping image segment, cover not loadable from: %s", seg.Value)
				continue
			}
			parts = append(parts, `<img src="`+src+`" />`)
		}
	}
	return strings.Join(parts, "")
}

// Write renders the segments and installs them as a single HTML-format
// clipboard entry. An empty rendering skips the write without error.
func Write(segments []segment.Segment) error {
	markup := Markup(segments)
	if markup == "" {
		log.Info("no content to copy to clipboard")
		return nil
	}

	if backend == nil {
		return fmt.Errorf("clipboard HTML write is not supported on %s", runtime.GOOS)
	}

	if err := backend.WriteHTML(EncodeCFHTML(markup)); err != nil {
		return fmt.Errorf("write clipboard (%s): %w", backend.Name(), err)
	}
	log.Info("content copied to clipboard as HTML")
	return nil
}
