package bili

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bilicard-cli/bilicard/segment"
	"github.com/samber/mo"
)

// unavailable is the display placeholder for fields no endpoint reported.
const unavailable = "N/A"

// FormatCount abbreviates counts the way the Bilibili web UI does: values of
// ten thousand and above render as a one-decimal 万 figure.
func FormatCount(n int64) string {
	if n >= 10000 {
		return fmt.Sprintf("%.1f万", float64(n)/10000)
	}
	return strconv.FormatInt(n, 10)
}

func countOr(o mo.Option[int64]) string {
	if v, ok := o.Get(); ok {
		return FormatCount(v)
	}
	return unavailable
}

func textOr(o mo.Option[string]) string {
	if v, ok := o.Get(); ok {
		return v
	}
	return unavailable
}

// positive reports a known, non-zero count and yields its display form.
func positive(o mo.Option[int64]) (string, bool) {
	v, ok := o.Get()
	if !ok || v <= 0 {
		return "", false
	}
	return FormatCount(v), true
}

// Card renders the record into the fixed three-segment layout: title and
// uploader, cover image, then stats.
func (r Record) Card() []segment.Segment {
	var head strings.Builder
	head.WriteString("标题: " + textOr(r.Title))
	head.WriteString("\nUP主: " + textOr(r.UpName))
	if fans, ok := positive(r.Fans); ok {
		head.WriteString(" 粉丝: " + fans)
	}

	lines := []string{
		fmt.Sprintf("👀播放: %s 💬弹幕: %s", countOr(r.Views), countOr(r.Danmaku)),
		fmt.Sprintf("👍点赞: %s 💰投币: %s", countOr(r.Likes), countOr(r.Coins)),
		fmt.Sprintf("📁收藏: %s 🔗分享: %s", countOr(r.Favorites), countOr(r.Shares)),
		"📝简介: " + describe(r.Desc),
	}
	if total, ok := positive(r.WatchingTotal); ok {
		watching := fmt.Sprintf("🏄‍♂️ 总共 %s 人在观看", total)
		if web, ok := positive(r.WatchingWeb); ok {
			watching += fmt.Sprintf("，%s 人在网页端观看", web)
		}
		lines = append(lines, watching)
	}
	lines = append(lines, r.CleanURL)

	return []segment.Segment{
		segment.NewText(head.String()),
		segment.NewImage(textOr(r.Pic)),
		segment.NewText(strings.Join(lines, "\n")),
	}
}

// describe renders the description line: unknown stays "N/A", while a video
// that genuinely has no description shows the 无 literal.
func describe(o mo.Option[string]) string {
	desc, ok := o.Get()
	if !ok {
		return unavailable
	}
	if desc == "" {
		return "无"
	}
	return desc
}
