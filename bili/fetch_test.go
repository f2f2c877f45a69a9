package bili

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bilicard-cli/bilicard/network"
	"github.com/bilicard-cli/bilicard/segment"
	. "github.com/smartystreets/goconvey/convey"
)

const testBVID = "BV1QL411M7r3"

// apiServer fakes the three metadata endpoints with tweakable payloads.
func apiServer(view, relation, online string) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/x/web-interface/view", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, view)
	})
	mux.HandleFunc("/x/relation/stat", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, relation)
	})
	mux.HandleFunc("/x/player/online/total", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, online)
	})
	return httptest.NewServer(mux)
}

func testClient(srv *httptest.Server) *Client {
	return &Client{
		http:       network.Client,
		noRedirect: network.NoRedirect,
		apiBase:    srv.URL,
		shortBase:  srv.URL,
	}
}

const goodView = `{
	"code": 0,
	"data": {
		"title": "测试视频",
		"desc": "一段简介",
		"pic": "https://i0.hdslb.com/cover.jpg",
		"cid": 987654,
		"owner": {"mid": 42, "name": "某UP主"},
		"stat": {"view": 12345, "danmaku": 67, "like": 890, "coin": 12, "favorite": 34, "share": 56}
	}
}`

func TestParse(t *testing.T) {
	Convey("Client.Parse", t, func() {
		Convey("With all three endpoints healthy", func() {
			srv := apiServer(
				goodView,
				`{"code": 0, "data": {"follower": 25000}}`,
				`{"code": 0, "data": {"total": 321, "web_online": 100}}`,
			)
			defer srv.Close()

			segs, err := testClient(srv).Parse(testBVID)
			So(err, ShouldBeNil)
			So(segs, ShouldHaveLength, 3)
			So(segs[0].Kind, ShouldEqual, segment.Text)
			So(segs[1].Kind, ShouldEqual, segment.Image)
			So(segs[2].Kind, ShouldEqual, segment.Text)

			So(segs[0].Value, ShouldContainSubstring, "标题: 测试视频")
			So(segs[0].Value, ShouldContainSubstring, "UP主: 某UP主 粉丝: 2.5万")
			So(segs[1].Value, ShouldEqual, "https://i0.hdslb.com/cover.jpg")
			So(segs[2].Value, ShouldContainSubstring, "👀播放: 1.2万 💬弹幕: 67")
			So(segs[2].Value, ShouldContainSubstring, "总共 321 人在观看，100 人在网页端观看")
			So(segs[2].Value, ShouldContainSubstring, "https://www.bilibili.com/video/"+testBVID)
		})

		Convey("Zero followers suppress the fan clause", func() {
			srv := apiServer(
				goodView,
				`{"code": 0, "data": {"follower": 0}}`,
				`{"code": 0, "data": {"total": 0}}`,
			)
			defer srv.Close()

			segs, err := testClient(srv).Parse(testBVID)
			So(err, ShouldBeNil)
			So(segs[0].Value, ShouldNotContainSubstring, "粉丝")
			So(segs[2].Value, ShouldNotContainSubstring, "人在观看")
		})

		Convey("Older online API variants fall back to the count field", func() {
			srv := apiServer(
				goodView,
				`{"code": 0, "data": {"follower": 1}}`,
				`{"code": 0, "data": {"total": 50, "count": 7}}`,
			)
			defer srv.Close()

			segs, err := testClient(srv).Parse(testBVID)
			So(err, ShouldBeNil)
			So(segs[2].Value, ShouldContainSubstring, "总共 50 人在观看，7 人在网页端观看")
		})

		Convey("A non-zero view code degrades to sentinels without aborting", func() {
			srv := apiServer(
				`{"code": -404, "message": "啥都木有"}`,
				`{"code": 0}`,
				`{"code": 0}`,
			)
			defer srv.Close()

			segs, err := testClient(srv).Parse(testBVID)
			So(err, ShouldBeNil)
			So(segs, ShouldHaveLength, 3)
			So(segs[0].Value, ShouldContainSubstring, "标题: N/A")
			So(segs[1].Value, ShouldEqual, "N/A")
		})

		Convey("Malformed JSON is terminal", func() {
			srv := apiServer(`<html>not json</html>`, `{}`, `{}`)
			defer srv.Close()

			segs, err := testClient(srv).Parse(testBVID)
			So(segs, ShouldBeNil)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "JSON")
		})

		Convey("An input with no extractable id fails mentioning the input", func() {
			srv := apiServer(goodView, `{}`, `{}`)
			defer srv.Close()

			segs, err := testClient(srv).Parse("https://www.bilibili.com/festival/2024")
			So(segs, ShouldBeNil)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "https://www.bilibili.com/festival/2024")
		})

		Convey("A short token resolving to a video page round-trips", func() {
			api := apiServer(
				goodView,
				`{"code": 0, "data": {"follower": 1}}`,
				`{"code": 0, "data": {"total": 1, "web_online": 1}}`,
			)
			defer api.Close()

			redirect := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Location", "https://www.bilibili.com/video/"+testBVID+"?share_source=copy/")
				w.WriteHeader(http.StatusFound)
			}))
			defer redirect.Close()

			c := testClient(api)
			c.shortBase = redirect.URL

			segs, err := c.Parse("abc123")
			So(err, ShouldBeNil)
			So(segs, ShouldHaveLength, 3)
			So(segs[2].Value, ShouldContainSubstring, testBVID)
		})

		Convey("An unresolvable short token is terminal", func() {
			api := apiServer(goodView, `{}`, `{}`)
			defer api.Close()

			noRedirect := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			defer noRedirect.Close()

			c := testClient(api)
			c.shortBase = noRedirect.URL

			segs, err := c.Parse("abc123")
			So(segs, ShouldBeNil)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "failed to resolve short link")
		})
	})
}
