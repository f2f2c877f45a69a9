package icon

import (
	"testing"

	"github.com/bilicard-cli/bilicard/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given a registered icon", t, func() {
		target := Success

		Convey("It renders correctly for each variant", func() {
			for _, variant := range AvailableVariants() {
				Convey("variant="+variant, func() {
					viper.Set(key.IconsVariant, variant)
					So(Get(target), ShouldNotBeEmpty)
				})
			}
		})

		Convey("Unknown variants fall back to plain", func() {
			viper.Set(key.IconsVariant, "nonsense")
			So(Get(Fail), ShouldEqual, "[x]")
		})
	})
}
