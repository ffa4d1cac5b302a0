package layout

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/wikijump/document"
	"github.com/lixenwraith/wikijump/parameter"
)

// Style is the resolved appearance of a placed word
type Style struct {
	Bold   bool
	Italic bool
	Size   document.Size
	Color  uint32 // 0xRRGGBB
}

// Measurer reports the rendered extent of a token
// Implementations must return positive width and height for non-empty text
type Measurer interface {
	Measure(text string, st Style) (w, h float64)
}

// MonoMeasurer gives every display cell the same advance per size class
// One rune of width 1 maps to one terminal cell at Small
type MonoMeasurer struct{}

func (MonoMeasurer) Measure(text string, st Style) (float64, float64) {
	cells := runewidth.StringWidth(text)
	if cells < 1 {
		cells = 1
	}
	adv, h := monoMetrics(st.Size)
	return float64(cells) * adv, h
}

func monoMetrics(s document.Size) (advance, height float64) {
	switch s {
	case document.Medium:
		return parameter.MediumAdvance, parameter.MediumLineHeight
	case document.Large:
		return parameter.LargeAdvance, parameter.LargeLineHeight
	default:
		return parameter.SmallAdvance, parameter.SmallLineHeight
	}
}
