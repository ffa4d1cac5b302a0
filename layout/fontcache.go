package layout

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/lixenwraith/wikijump/diag"
	"github.com/lixenwraith/wikijump/document"
	"github.com/lixenwraith/wikijump/parameter"
)

// maxCachedWidths bounds the width memo; the memo is dropped when full
const maxCachedWidths = 1 << 16

type variant struct {
	bold, italic bool
}

type faceKey struct {
	variant
	size document.Size
}

type widthKey struct {
	faceKey
	text string
}

// FontCache measures words with the Go font family
// Faces are created lazily per (bold, italic, size) and widths are memoized
// Safe for concurrent use
type FontCache struct {
	mu      sync.Mutex
	fonts   map[variant]*opentype.Font
	faces   map[faceKey]font.Face
	heights map[faceKey]float64
	widths  map[widthKey]float64
	closed  bool
}

func NewFontCache() *FontCache {
	return &FontCache{
		fonts:   make(map[variant]*opentype.Font),
		faces:   make(map[faceKey]font.Face),
		heights: make(map[faceKey]float64),
		widths:  make(map[widthKey]float64),
	}
}

// Measure returns the advance width and line height of text
// Falls back to monospace metrics when a face cannot be built
// Close ends the cache's lifetime; Measure after Close panics so one engine
// never mixes font and monospace geometry
func (c *FontCache) Measure(text string, st Style) (float64, float64) {
	key := faceKey{variant: variant{st.Bold, st.Italic}, size: st.Size}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		panic("layout: FontCache.Measure called after Close")
	}

	face, err := c.face(key)
	if err != nil {
		diag.Logger().Warn("font face unavailable, using monospace metrics", "error", err)
		return MonoMeasurer{}.Measure(text, st)
	}

	h := c.heights[key]
	wk := widthKey{key, text}
	if w, ok := c.widths[wk]; ok {
		return w, h
	}

	w := float64(font.MeasureString(face, text)) / 64
	if w <= 0 {
		// Whitespace-only or unmapped glyphs still occupy a platform
		w, _ = MonoMeasurer{}.Measure(text, st)
	}
	if len(c.widths) >= maxCachedWidths {
		clear(c.widths)
	}
	c.widths[wk] = w
	return w, h
}

// face must be called with mu held
func (c *FontCache) face(key faceKey) (font.Face, error) {
	if f, ok := c.faces[key]; ok {
		return f, nil
	}

	src, ok := c.fonts[key.variant]
	if !ok {
		parsed, err := opentype.Parse(ttfFor(key.variant))
		if err != nil {
			return nil, fmt.Errorf("parse font %+v: %w", key.variant, err)
		}
		c.fonts[key.variant] = parsed
		src = parsed
	}

	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    pixelSize(key.size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create face %+v: %w", key, err)
	}

	m := face.Metrics()
	h := float64(m.Ascent+m.Descent) / 64
	if h <= 0 {
		_, h = monoMetrics(key.size)
	}
	c.faces[key] = face
	c.heights[key] = h
	return face, nil
}

// Close releases all faces; calling it again is a no-op
func (c *FontCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	var firstErr error
	for k, f := range c.faces {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close face %+v: %w", k, err)
		}
	}
	clear(c.faces)
	clear(c.fonts)
	clear(c.heights)
	clear(c.widths)
	return firstErr
}

func ttfFor(v variant) []byte {
	switch {
	case v.bold && v.italic:
		return gobolditalic.TTF
	case v.bold:
		return gobold.TTF
	case v.italic:
		return goitalic.TTF
	}
	return goregular.TTF
}

func pixelSize(s document.Size) float64 {
	switch s {
	case document.Medium:
		return parameter.MediumFontSize
	case document.Large:
		return parameter.LargeFontSize
	}
	return parameter.SmallFontSize
}
