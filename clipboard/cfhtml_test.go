package clipboard

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

var headerPattern = regexp.MustCompile(
	`^Version:0\.9\r\nStartHTML:(\d{10})\r\nEndHTML:(\d{10})\r\nStartFragment:(\d{10})\r\nEndFragment:(\d{10})\r\n`)

func headerOffsets(payload []byte) (startHTML, endHTML, startFrag, endFrag int) {
	m := headerPattern.FindSubmatch(payload)
	So(m, ShouldNotBeNil)
	parse := func(b []byte) int {
		n, err := strconv.Atoi(string(b))
		So(err, ShouldBeNil)
		return n
	}
	return parse(m[1]), parse(m[2]), parse(m[3]), parse(m[4])
}

func TestEncodeCFHTML(t *testing.T) {
	Convey("EncodeCFHTML", t, func() {
		// Multibyte content so byte offsets and rune offsets diverge.
		fragment := "<p>标题: 测试<br>UP主: 某人</p>"
		payload := EncodeCFHTML(fragment)

		startHTML, endHTML, startFrag, endFrag := headerOffsets(payload)

		Convey("StartHTML/EndHTML bound the wrapped document exactly", func() {
			doc := string(payload[startHTML:endHTML])
			So(doc, ShouldStartWith, "<html><body>")
			So(doc, ShouldEndWith, "</body></html>")
			So(endHTML, ShouldEqual, len(payload))
		})

		Convey("StartFragment points at the opening sentinel's byte position", func() {
			So(string(payload[startFrag:startFrag+len(startFragment)]), ShouldEqual, startFragment)
		})

		Convey("EndFragment points just past the closing sentinel", func() {
			So(string(payload[endFrag-len(endFragment):endFrag]), ShouldEqual, endFragment)
		})

		Convey("The fragment markup sits between the sentinels", func() {
			inner := string(payload[startFrag+len(startFragment) : endFrag-len(endFragment)])
			So(inner, ShouldEqual, fragment)
		})

		Convey("Offsets are stable across fragment sizes", func() {
			small := EncodeCFHTML("<p>a</p>")
			big := EncodeCFHTML("<p>" + strings.Repeat("测试内容", 1000) + "</p>")

			sh1, _, _, _ := headerOffsets(small)
			sh2, _, _, _ := headerOffsets(big)
			// The header length is fixed by the zero-padded offset width.
			So(sh1, ShouldEqual, sh2)
		})
	})
}
