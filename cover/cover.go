// Package cover downloads a video cover image and re-encodes it as an inline
// PNG data URI bounded by a soft byte budget.
package cover

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"
	"time"

	_ "image/gif"
	_ "image/jpeg"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/bilicard-cli/bilicard/constant"
	"github.com/bilicard-cli/bilicard/key"
	"github.com/bilicard-cli/bilicard/log"
	"github.com/bilicard-cli/bilicard/network"
	"github.com/bilicard-cli/bilicard/util"
	"github.com/spf13/viper"
)

// Fallback values for unset configuration; they match the documented defaults.
const (
	defaultMaxBytes     = 5 * 1024 * 1024
	defaultShrinkFactor = 0.8
	defaultMinDimension = 100
)

// Load fetches, decodes and re-encodes the image at rawURL into a base64 PNG
// data URI. Every failure mode yields the empty string; a missing cover never
// fails the run.
func Load(rawURL string) string {
	raw, err := download(rawURL)
	if err != nil {
		log.Warnf("fetch cover from %s: %v", rawURL, err)
		return ""
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		log.Warnf("cannot identify image from %s: %v", rawURL, err)
		return ""
	}

	encoded := encodeUnderBudget(normalize(img), budget(), shrinkFactor(), minDimension())
	if len(encoded) > budget() {
		log.Warnf("cover from %s still %s after shrinking, proceeding", rawURL, util.Megabytes(len(encoded)))
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(encoded)
}

// download reads the full image body with the browser UA and the image timeout.
func download(rawURL string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), imageTimeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := network.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("image fetch returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// encodeUnderBudget PNG-encodes img, shrinking it by factor per iteration
// while it exceeds the byte budget and both dimensions would stay at or above
// minDim. The budget is best-effort: once the floor is reached the oversized
// encoding is returned as-is.
func encodeUnderBudget(img image.Image, maxBytes int, factor float64, minDim int) []byte {
	encoded := encodePNG(img)

	width := img.Bounds().Dx()
	height := img.Bounds().Dy()

	for len(encoded) > maxBytes &&
		float64(width)*factor >= float64(minDim) &&
		float64(height)*factor >= float64(minDim) {

		log.Infof("cover is %s, shrinking", util.Megabytes(len(encoded)))

		width = int(float64(width) * factor)
		height = int(float64(height) * factor)

		img = scale(img, width, height)
		encoded = encodePNG(img)

		log.Infof("resized to %dx%d, new PNG size %s", width, height, util.Megabytes(len(encoded)))
	}

	return encoded
}

func encodePNG(img image.Image) []byte {
	var buf bytes.Buffer
	// Encoding into a buffer cannot fail for the image types produced here.
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// normalize redraws paletted and exotic color models onto an NRGBA canvas so
// the resize and PNG encode always see a plain truecolor image.
func normalize(img image.Image) image.Image {
	switch img.(type) {
	case *image.RGBA, *image.NRGBA:
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return dst
}

// scale resamples img to w x h with Catmull-Rom interpolation.
func scale(img image.Image, w, h int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

func budget() int {
	if v := viper.GetInt(key.ImageMaxBytes); v > 0 {
		return v
	}
	return defaultMaxBytes
}

func shrinkFactor() float64 {
	if v := viper.GetFloat64(key.ImageShrinkFactor); v > 0 && v < 1 {
		return v
	}
	return defaultShrinkFactor
}

func minDimension() int {
	if v := viper.GetInt(key.ImageMinDimension); v > 0 {
		return v
	}
	return defaultMinDimension
}

func imageTimeout() time.Duration {
	secs := viper.GetInt(key.HTTPImageTimeout)
	if secs <= 0 {
		secs = 10
	}
	return time.Duration(secs) * time.Second
}
