package bili

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bilicard-cli/bilicard/network"
	. "github.com/smartystreets/goconvey/convey"
)

func TestExtractBVID(t *testing.T) {
	Convey("ExtractBVID", t, func() {
		Convey("Finds the id inside a full URL", func() {
			So(ExtractBVID("https://www.bilibili.com/video/BV1QL411M7r3"), ShouldEqual, "BV1QL411M7r3")
			So(ExtractBVID("https://www.bilibili.com/video/BV1QL411M7r3?p=2"), ShouldEqual, "BV1QL411M7r3")
		})

		Convey("Accepts a bare id", func() {
			So(ExtractBVID("BV1QL411M7r3"), ShouldEqual, "BV1QL411M7r3")
		})

		Convey("Returns empty for inputs with no id", func() {
			So(ExtractBVID(""), ShouldBeEmpty)
			So(ExtractBVID("https://example.com/watch?v=abc"), ShouldBeEmpty)
			So(ExtractBVID("av170001"), ShouldBeEmpty)
		})
	})
}

func TestLooksLikeShort(t *testing.T) {
	Convey("looksLikeShort", t, func() {
		Convey("Short-domain links always qualify", func() {
			So(looksLikeShort("https://b23.tv/abc123"), ShouldBeTrue)
			So(looksLikeShort("b23.tv/abc123"), ShouldBeTrue)
		})

		Convey("Bare short tokens qualify", func() {
			So(looksLikeShort("abc123"), ShouldBeTrue)
		})

		Convey("BV ids and full URLs do not", func() {
			So(looksLikeShort("BV1QL411M7r3"), ShouldBeFalse)
			So(looksLikeShort("https://www.bilibili.com/video/BV1QL411M7r3"), ShouldBeFalse)
		})

		Convey("Long tokens and non-alphanumeric input do not", func() {
			So(looksLikeShort("abcdefghijklmnop"), ShouldBeFalse)
			So(looksLikeShort("abc 123"), ShouldBeFalse)
		})
	})
}

func TestResolveRedirect(t *testing.T) {
	Convey("resolveRedirect", t, func() {
		c := &Client{noRedirect: network.NoRedirect}

		Convey("A 302 Location is returned cleaned of query and trailing slash", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Location", "https://www.x.com/video/ABC123?x=1/")
				w.WriteHeader(http.StatusFound)
			}))
			defer srv.Close()

			resolved, err := c.resolveRedirect(srv.URL)
			So(err, ShouldBeNil)
			So(resolved, ShouldEqual, "https://www.x.com/video/ABC123")
		})

		Convey("A 301 works the same way", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Location", "https://www.x.com/video/ABC123")
				w.WriteHeader(http.StatusMovedPermanently)
			}))
			defer srv.Close()

			resolved, err := c.resolveRedirect(srv.URL)
			So(err, ShouldBeNil)
			So(resolved, ShouldEqual, "https://www.x.com/video/ABC123")
		})

		Convey("A 200 response is a resolution failure", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			defer srv.Close()

			_, err := c.resolveRedirect(srv.URL)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "did not redirect")
		})

		Convey("A redirect without a Location header is a resolution failure", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				// Bypass the Header map helpers so no Location sneaks in.
				w.WriteHeader(http.StatusFound)
			}))
			defer srv.Close()

			_, err := c.resolveRedirect(srv.URL)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "Location")
		})
	})
}
