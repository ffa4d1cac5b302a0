package layout

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Surface classifies a token's platform material
type Surface uint8

const (
	SurfaceNormal Surface = iota
	SurfaceSticky
	SurfaceSlippery
)

func (s Surface) String() string {
	switch s {
	case SurfaceSticky:
		return "sticky"
	case SurfaceSlippery:
		return "slippery"
	}
	return "normal"
}

// Lexicon maps words to surfaces, ignoring case, surrounding punctuation and a plural s
type Lexicon struct {
	sticky   map[string]struct{}
	slippery map[string]struct{}
}

func NewLexicon(sticky, slippery []string) *Lexicon {
	l := &Lexicon{
		sticky:   make(map[string]struct{}, len(sticky)),
		slippery: make(map[string]struct{}, len(slippery)),
	}
	for _, w := range sticky {
		if n := normalize(w); n != "" {
			l.sticky[n] = struct{}{}
		}
	}
	for _, w := range slippery {
		if n := normalize(w); n != "" {
			l.slippery[n] = struct{}{}
		}
	}
	return l
}

// Classify reports the surface of token; sticky wins over slippery
func (l *Lexicon) Classify(token string) Surface {
	w := normalize(token)
	if w == "" {
		return SurfaceNormal
	}
	forms := [3]string{w, w + "s", ""}
	if trimmed, ok := strings.CutSuffix(w, "s"); ok {
		forms[2] = trimmed
	}
	if l.match(l.sticky, forms) {
		return SurfaceSticky
	}
	if l.match(l.slippery, forms) {
		return SurfaceSlippery
	}
	return SurfaceNormal
}

func (l *Lexicon) match(set map[string]struct{}, forms [3]string) bool {
	for _, f := range forms {
		if f == "" {
			continue
		}
		if _, ok := set[f]; ok {
			return true
		}
	}
	return false
}

// normalize lowercases and strips leading and trailing non-alphanumerics
// A Caser carries state, so one is built per call to keep Lexicon shareable
func normalize(token string) string {
	trimmed := strings.TrimFunc(token, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if trimmed == "" {
		return ""
	}
	return cases.Lower(language.Und).String(trimmed)
}
