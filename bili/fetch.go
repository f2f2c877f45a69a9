package bili

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/bilicard-cli/bilicard/constant"
	"github.com/bilicard-cli/bilicard/log"
	"github.com/bilicard-cli/bilicard/network"
	"github.com/bilicard-cli/bilicard/segment"
	"github.com/samber/mo"
	"github.com/tidwall/gjson"
)

// Client drives the whole resolve-fetch-format pipeline for one input.
type Client struct {
	http       *http.Client
	noRedirect *http.Client
	apiBase    string
	shortBase  string
}

// New returns a client wired against the production Bilibili endpoints.
func New() *Client {
	return &Client{
		http:       network.Client,
		noRedirect: network.NoRedirect,
		apiBase:    constant.APIBase,
		shortBase:  constant.ShortBase,
	}
}

// Parse resolves the input to a video, fetches its metadata and returns the
// ordered card segments. A nil error guarantees exactly three segments.
//
// Failure taxonomy: unresolvable short links, inputs with no extractable BV
// id, transport errors and malformed JSON are terminal. A non-zero status
// code from an individual endpoint only leaves its fields unknown.
func (c *Client) Parse(input string) ([]segment.Segment, error) {
	processed, err := c.resolve(input)
	if err != nil {
		return nil, err
	}

	bvid := ExtractBVID(processed)
	if bvid == "" {
		return nil, fmt.Errorf("could not extract BV id from %s (original input: %s)", processed, input)
	}
	log.Infof("extracted BV id: %s", bvid)

	rec := NewRecord(bvid)

	if err := c.fetchView(&rec); err != nil {
		return nil, err
	}
	if mid, ok := rec.UpMid.Get(); ok {
		if err := c.fetchFollowers(&rec, mid); err != nil {
			return nil, err
		}
	}
	if cid, ok := rec.Cid.Get(); ok {
		if err := c.fetchWatching(&rec, cid); err != nil {
			return nil, err
		}
	}

	return rec.Card(), nil
}

// getJSON performs one metadata GET with the browser UA and referer headers.
// Transport errors, non-2xx statuses and bodies that are not JSON are all
// terminal for the run.
func (c *Client) getJSON(url string) (gjson.Result, error) {
	ctx, cancel := context.WithTimeout(context.Background(), apiTimeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return gjson.Result{}, err
	}
	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Referer", constant.Referer)

	resp, err := c.http.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("network request failed during API call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return gjson.Result{}, fmt.Errorf("API call %s failed with status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("read API response: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("failed to decode JSON response from %s", url)
	}
	return gjson.ParseBytes(body), nil
}

// fetchView populates title, description, cover, uploader and the six video
// stats. A non-zero API code leaves everything unknown but is not terminal.
func (c *Client) fetchView(rec *Record) error {
	url := fmt.Sprintf("%s/x/web-interface/view?bvid=%s", c.apiBase, rec.BVID)
	log.Infof("fetching main info: %s", url)

	root, err := c.getJSON(url)
	if err != nil {
		return err
	}
	if root.Get("code").Int() != 0 {
		log.Warnf("view API error for %s: %s", rec.BVID, root.Get("message").String())
		return nil
	}

	data := root.Get("data")
	rec.Title = stringField(data.Get("title"))
	rec.Desc = stringField(data.Get("desc"))
	rec.Pic = stringField(data.Get("pic"))
	rec.UpName = stringField(data.Get("owner.name"))
	rec.UpMid = intField(data.Get("owner.mid"))
	rec.Cid = intField(data.Get("cid"))

	// A successful view response always accounts for the stats; absent
	// counters are genuine zeroes, not unknowns.
	stat := data.Get("stat")
	rec.Views = mo.Some(stat.Get("view").Int())
	rec.Danmaku = mo.Some(stat.Get("danmaku").Int())
	rec.Likes = mo.Some(stat.Get("like").Int())
	rec.Coins = mo.Some(stat.Get("coin").Int())
	rec.Favorites = mo.Some(stat.Get("favorite").Int())
	rec.Shares = mo.Some(stat.Get("share").Int())
	return nil
}

// fetchFollowers populates the uploader's follower count.
func (c *Client) fetchFollowers(rec *Record, mid int64) error {
	url := fmt.Sprintf("%s/x/relation/stat?vmid=%d", c.apiBase, mid)
	log.Infof("fetching fan count: %s", url)

	root, err := c.getJSON(url)
	if err != nil {
		return err
	}
	if root.Get("code").Int() != 0 {
		log.Warnf("relation API error for mid %d: %s", mid, root.Get("message").String())
		return nil
	}

	rec.Fans = mo.Some(root.Get("data.follower").Int())
	return nil
}

// fetchWatching populates the concurrent-viewer counts. Older API variants
// report the web-side count under "count" instead of "web_online".
func (c *Client) fetchWatching(rec *Record, cid int64) error {
	url := fmt.Sprintf("%s/x/player/online/total?bvid=%s&cid=%d", c.apiBase, rec.BVID, cid)
	log.Infof("fetching online count: %s", url)

	root, err := c.getJSON(url)
	if err != nil {
		return err
	}
	if root.Get("code").Int() != 0 || !root.Get("data").Exists() {
		log.Warnf("online API error for bvid %s: %s", rec.BVID, root.Get("message").String())
		return nil
	}

	data := root.Get("data")
	rec.WatchingTotal = mo.Some(data.Get("total").Int())
	if web := data.Get("web_online"); web.Exists() {
		rec.WatchingWeb = mo.Some(web.Int())
	} else if count := data.Get("count"); count.Exists() {
		rec.WatchingWeb = mo.Some(count.Int())
	}
	return nil
}

func stringField(r gjson.Result) mo.Option[string] {
	if !r.Exists() {
		return mo.None[string]()
	}
	return mo.Some(r.String())
}

func intField(r gjson.Result) mo.Option[int64] {
	if !r.Exists() {
		return mo.None[int64]()
	}
	return mo.Some(r.Int())
}
