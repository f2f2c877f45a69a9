package bili

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/bilicard-cli/bilicard/constant"
	"github.com/bilicard-cli/bilicard/key"
	"github.com/bilicard-cli/bilicard/log"
	"github.com/bilicard-cli/bilicard/util"
	"github.com/spf13/viper"
)

var (
	bvidPattern  = regexp.MustCompile(`(?P<bvid>BV[a-zA-Z0-9]+)`)
	tokenPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// ExtractBVID returns the first BV id occurring in s, or the empty string
// when s contains none.
func ExtractBVID(s string) string {
	return util.ReGroups(bvidPattern, s)["bvid"]
}

// looksLikeShort reports whether the input should be treated as a b23.tv
// redirect target: either it names the short domain outright, or it is a bare
// alphanumeric token under 15 characters that is neither a BV id nor a full
// video URL. The token heuristic is knowingly loose; it mirrors how people
// paste trailing path components of short links.
func looksLikeShort(input string) bool {
	if strings.Contains(input, "b23.tv/") {
		return true
	}
	return !strings.HasPrefix(input, "BV") &&
		!strings.Contains(input, "bilibili.com") &&
		len(input) < 15 &&
		tokenPattern.MatchString(input)
}

// shortCandidate normalizes the input into a resolvable short-link URL.
// Bare tokens are assumed to be b23.tv path components.
func (c *Client) shortCandidate(input string) string {
	target := input
	if !strings.Contains(target, "b23.tv/") {
		target = c.shortBase + "/" + target
	}
	if !strings.HasPrefix(target, "http") {
		target = "https://" + target
	}
	return target
}

// resolveRedirect issues a redirect-disabled GET against a short link and
// returns the Location target, trimmed of its query string and any trailing
// slash. Any status other than 301/302 is a resolution failure.
func (c *Client) resolveRedirect(target string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), apiTimeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := c.noRedirect.Do(req)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", target, err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusMovedPermanently && resp.StatusCode != http.StatusFound {
		return "", fmt.Errorf("short link %s did not redirect (status %d)", target, resp.StatusCode)
	}

	location := resp.Header.Get("Location")
	if location == "" {
		return "", fmt.Errorf("short link redirect for %s is missing a Location header", target)
	}

	if i := strings.Index(location, "?"); i != -1 {
		location = location[:i]
	}
	return strings.TrimSuffix(location, "/"), nil
}

// resolve turns arbitrary clipboard input into a URL that carries a BV id,
// consulting the redirector only when the input looks like a short link.
func (c *Client) resolve(input string) (string, error) {
	if !looksLikeShort(input) {
		return input, nil
	}

	candidate := c.shortCandidate(input)
	log.Infof("attempting to resolve short link: %s", candidate)

	resolved, err := c.resolveRedirect(candidate)
	if err == nil {
		log.Infof("resolved to: %s", resolved)
		return resolved, nil
	}

	log.Warnf("short link resolution failed: %v", err)
	if strings.Contains(candidate, "b23.tv/") || strings.HasPrefix(candidate, c.shortBase) {
		return "", fmt.Errorf("failed to resolve short link %s: %w", candidate, err)
	}
	// Not definitely a short link; let BV id extraction have a go at the raw input.
	return input, nil
}

func apiTimeout() time.Duration {
	secs := viper.GetInt(key.HTTPAPITimeout)
	if secs <= 0 {
		secs = 5
	}
	return time.Duration(secs) * time.Second
}
