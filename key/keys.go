// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// HTTP Behavior - these keys bound the outbound network calls of a single run.
const (
	HTTPAPITimeout   = "http.api_timeout"
	HTTPImageTimeout = "http.image_timeout"
)

// Cover Image Processing - these keys govern the PNG re-encode and shrink loop.
const (
	ImageMaxBytes     = "image.max_bytes"
	ImageShrinkFactor = "image.shrink_factor"
	ImageMinDimension = "image.min_dimension"
)

// Clipboard Output - these keys configure what ends up on the clipboard.
const (
	ClipboardIncludeImage = "clipboard.include_image"
)

// Command Line Interface - these keys define the CLI presentation behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
	CliPrintCard    = "cli.print_card"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging - these keys configure the persistent diagnostic log.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)
