package server

import (
	"fmt"

	"github.com/lixenwraith/wikijump/layout"
	"github.com/lixenwraith/wikijump/vmath"
)

type rectJSON struct {
	Left   float64 `json:"left"`
	Bottom float64 `json:"bottom"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
}

type wordJSON struct {
	Text     string   `json:"text"`
	Rect     rectJSON `json:"rect"`
	Size     string   `json:"size"`
	Bold     bool     `json:"bold,omitempty"`
	Italic   bool     `json:"italic,omitempty"`
	Color    string   `json:"color"`
	Friction float64  `json:"friction"`
	Link     string   `json:"link,omitempty"`
}

type lineJSON struct {
	Y         float64 `json:"y"`
	Left      float64 `json:"left"`
	Right     float64 `json:"right"`
	Thickness float64 `json:"thickness"`
}

type pageJSON struct {
	Title      string     `json:"title"`
	Source     string     `json:"source,omitempty"`
	Width      float64    `json:"width"`
	Bounds     rectJSON   `json:"bounds"`
	Boundaries []int      `json:"boundaries"`
	Words      []wordJSON `json:"words"`
	Lines      []lineJSON `json:"lines"`
}

type sectionJSON struct {
	Index  int      `json:"index"`
	Lo     int      `json:"lo"`
	Hi     int      `json:"hi"`
	Extent rectJSON `json:"extent"`
	// Preview is the first few words of the section
	Preview string `json:"preview"`
	Links   int    `json:"links"`
}

type sectionsJSON struct {
	Title    string        `json:"title"`
	Words    int           `json:"words"`
	Sections []sectionJSON `json:"sections"`
}

const previewWords = 8

func toRect(r vmath.Rect) rectJSON {
	return rectJSON{Left: r.Left, Bottom: r.Bottom, Right: r.Right, Top: r.Top}
}

func toPage(p *layout.Page) pageJSON {
	out := pageJSON{
		Title:      p.Title,
		Source:     p.Source,
		Width:      p.Width,
		Bounds:     toRect(p.Bounds()),
		Boundaries: p.Boundaries,
		Words:      make([]wordJSON, len(p.Words)),
		Lines:      make([]lineJSON, len(p.Lines)),
	}
	for i, w := range p.Words {
		out.Words[i] = wordJSON{
			Text:     w.Text,
			Rect:     toRect(w.Rect),
			Size:     w.Style.Size.String(),
			Bold:     w.Style.Bold,
			Italic:   w.Style.Italic,
			Color:    fmt.Sprintf("#%06x", w.Style.Color),
			Friction: w.Friction,
			Link:     w.Link,
		}
	}
	for i, l := range p.Lines {
		out.Lines[i] = lineJSON{Y: l.Y, Left: l.Left, Right: l.Right, Thickness: l.Thickness}
	}
	return out
}

func toSections(p *layout.Page) sectionsJSON {
	out := sectionsJSON{
		Title:    p.Title,
		Words:    len(p.Words),
		Sections: make([]sectionJSON, 0, p.SectionCount()),
	}
	for i := range p.SectionCount() {
		span := p.Section(i)
		sec := sectionJSON{
			Index:  i,
			Lo:     span.Lo,
			Hi:     span.Hi,
			Extent: toRect(p.SectionExtent(i)),
		}
		for j := span.Lo; j < span.Hi; j++ {
			if p.Words[j].IsLink() {
				sec.Links++
			}
			if j-span.Lo < previewWords {
				if sec.Preview != "" {
					sec.Preview += " "
				}
				sec.Preview += p.Words[j].Text
			}
		}
		out.Sections = append(out.Sections, sec)
	}
	return out
}
