package parameter

// Terminal cell size in page units; a small-font advance fills one column
const (
	CellWidth  = 20.0
	CellHeight = 40.0
)

// Player glyphs
const (
	GlyphBody       = '█'
	GlyphBodyAir    = '▓'
	GlyphFaceRight  = '▶'
	GlyphFaceLeft   = '◀'
	GlyphTrail      = '·'
	GlyphRule       = '─'
	GlyphRuleThick  = '━'
	StatusSeparator = " │ "
)
