package physics

import "github.com/lixenwraith/wikijump/layout"

// Handle refers to a platform of one Stage generation; Gen 0 is no contact
type Handle struct {
	Gen   uint64
	Index int
}

var NoContact Handle

func (h Handle) Valid() bool { return h.Gen != 0 }

// Stage is the physics view of one page; a new page gets a new generation
// so handles into the previous page resolve to nothing
type Stage struct {
	Gen   uint64
	Words []layout.Word
}

func NewStage(gen uint64, page *layout.Page) *Stage {
	return &Stage{Gen: gen, Words: page.Words}
}

// Handle returns a handle to word i
func (s *Stage) Handle(i int) Handle {
	return Handle{Gen: s.Gen, Index: i}
}

// Platform resolves h against this stage
func (s *Stage) Platform(h Handle) (*layout.Word, bool) {
	if s == nil || !h.Valid() || h.Gen != s.Gen || h.Index < 0 || h.Index >= len(s.Words) {
		return nil, false
	}
	return &s.Words[h.Index], true
}
