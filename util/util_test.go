package util

import (
	"regexp"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestReGroups(t *testing.T) {
	Convey("ReGroups", t, func() {
		re := regexp.MustCompile(`(?P<first>\w+)\s(?P<last>\w+)`)
		groups := ReGroups(re, "John Doe")
		So(groups["first"], ShouldEqual, "John")
		So(groups["last"], ShouldEqual, "Doe")

		Convey("Should return empty map on no match", func() {
			So(ReGroups(re, "!!!"), ShouldBeEmpty)
		})
	})
}

func TestMegabytes(t *testing.T) {
	Convey("Megabytes", t, func() {
		So(Megabytes(5*1024*1024), ShouldEqual, "5.00 MB")
		So(Megabytes(1572864), ShouldEqual, "1.50 MB")
	})
}
