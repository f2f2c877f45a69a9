package clipboard

import (
	"fmt"
	"strings"
)

// Fragment boundary sentinels. They are part of the payload bytes; the header
// offsets delimit the fragment region between them for host applications.
const (
	startFragment = "<!--StartFragment-->"
	endFragment   = "<!--EndFragment-->"
)

// EncodeCFHTML wraps an HTML fragment in the clipboard HTML interchange
// format: a Version:0.9 header carrying four 10-digit decimal byte offsets,
// followed by the wrapped document. Offsets are byte positions within the
// final UTF-8 payload, so the header is rendered twice — first with
// placeholder offsets to learn its own byte length, then with real values.
func EncodeCFHTML(fragment string) []byte {
	doc := "<html><body>" + startFragment + fragment + endFragment + "</body></html>"

	header := func(startHTML, endHTML, startFrag, endFrag int) string {
		return fmt.Sprintf(
			"Version:0.9\r\nStartHTML:%010d\r\nEndHTML:%010d\r\nStartFragment:%010d\r\nEndFragment:%010d\r\n",
			startHTML, endHTML, startFrag, endFrag,
		)
	}

	headerLen := len(header(0, 0, 0, 0))
	startHTML := headerLen
	endHTML := headerLen + len(doc)
	startFrag := headerLen + strings.Index(doc, startFragment)
	endFrag := headerLen + strings.Index(doc, endFragment) + len(endFragment)

	return []byte(header(startHTML, endHTML, startFrag, endFrag) + doc)
}
