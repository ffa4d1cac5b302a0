package parameter

// Page geometry in page units
const (
	// WindowWidth and WindowHeight size the reference viewport
	WindowWidth  = 780
	WindowHeight = 620

	// PageWidth is five half-windows wide
	PageWidth = 5 * WindowWidth / 2

	// ViewportHeight is the vertical travel that closes a layout section
	ViewportHeight = WindowHeight
)

// Word spacing
const (
	HSpace      = 40.0
	VSpace      = 75.0
	ParSpace    = 150.0
	Indent      = 60.0
	LinePadding = 6.0

	TitleRuleThickness = 2.0
	RuleThickness      = 1.0

	Bullet = "•"
)

// Font pixel sizes per size class
const (
	SmallFontSize  = 36.0
	MediumFontSize = 48.0
	LargeFontSize  = 92.0
)

// Monospace fallback metrics per size class, roughly 0.55em advance and 1.16em line height
const (
	SmallAdvance  = 20.0
	MediumAdvance = 27.0
	LargeAdvance  = 51.0

	SmallLineHeight  = 42.0
	MediumLineHeight = 56.0
	LargeLineHeight  = 106.0
)

// Platform friction
const (
	FrictionDefault  = 0.85
	FrictionSticky   = 0.0
	FrictionSlippery = 0.99
	FrictionLink     = 0.92
)

// Text colors as 0xRRGGBB
const (
	ColorText     = 0x000000
	ColorLink     = 0x0000FF
	ColorSubtitle = 0x808080
)

// TerminalHeadings stop layout when a heading's text matches
var TerminalHeadings = []string{"References"}

var StickyWords = []string{
	"sticky", "stuck", "glue", "glued", "tar", "tarred", "web", "net", "netted",
	"netting", "trap", "trapped", "trapping", "honey",
}

var SlipperyWords = []string{
	"ice", "icy", "slip", "slippery", "slipped", "oil", "oily", "oiled", "soap",
	"soaped", "soapy", "grease", "greased", "greasy", "olive", "greece", "greek",
}
