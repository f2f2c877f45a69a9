// Package bili resolves Bilibili video links and assembles a displayable
// metadata record from the public web API.
package bili

import (
	"github.com/bilicard-cli/bilicard/constant"
	"github.com/samber/mo"
)

// Record is the flat result of one metadata run. Fields an endpoint never
// reported stay None and render as "N/A"; a zero that the endpoint did
// report is Some(0) and renders as "0".
type Record struct {
	BVID     string
	CleanURL string

	Title  mo.Option[string]
	Desc   mo.Option[string]
	Pic    mo.Option[string]
	UpName mo.Option[string]

	UpMid mo.Option[int64]
	Cid   mo.Option[int64]

	Views     mo.Option[int64]
	Danmaku   mo.Option[int64]
	Likes     mo.Option[int64]
	Coins     mo.Option[int64]
	Favorites mo.Option[int64]
	Shares    mo.Option[int64]

	Fans          mo.Option[int64]
	WatchingTotal mo.Option[int64]
	WatchingWeb   mo.Option[int64]
}

// NewRecord initializes a record for a BV id with its canonical page URL.
func NewRecord(bvid string) Record {
	return Record{
		BVID:     bvid,
		CleanURL: constant.VideoBase + bvid,
	}
}
