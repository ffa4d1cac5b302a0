package engine

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/lixenwraith/wikijump/diag"
	"github.com/lixenwraith/wikijump/document"
	"github.com/lixenwraith/wikijump/engine/fsm"
	"github.com/lixenwraith/wikijump/input"
	"github.com/lixenwraith/wikijump/layout"
	"github.com/lixenwraith/wikijump/physics"
	"github.com/lixenwraith/wikijump/vmath"
)

// Resolver turns a page identifier into a document
type Resolver interface {
	Resolve(ctx context.Context, id string) (*document.Document, error)
}

// Session states
const (
	StateActive fsm.StateID = iota + fsm.StateRoot + 1
	StateLoading
	StatePlaying
	StateTransitioning
	StateTerminated
)

const (
	evReady fsm.EventID = iota + 1
	evFollow
	evRestart
	evQuit
)

// landCueSpeed is the fall speed below which landings stay silent
const landCueSpeed = 1.5

// Cue is a notable moment of the last tick, for audio and effects
type Cue uint8

const (
	CueJump Cue = iota
	CueLand
	CueBump
	CueTravel
	CueFailed
	CueRespawn
)

// Session owns the active page, its physics stage, the player and the camera
// Driven by one Tick per frame on a single goroutine
type Session struct {
	cfg      Config
	resolver Resolver
	layout   *layout.Engine
	machine  *fsm.Machine[*Session]
	rng      *rand.Rand

	page    *layout.Page
	stage   *physics.Stage
	gen     uint64
	floor   float64
	visible layout.Span

	player *Player
	camera *Camera

	target  string
	history []string
	hops    int
	walled  bool
	cues    []Cue
}

// NewSession builds a session in the Loading state; the first Tick fetches the start page
func NewSession(cfg Config, res Resolver, eng *layout.Engine) *Session {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	s := &Session{
		cfg:      cfg,
		resolver: res,
		layout:   eng,
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		player:   NewPlayer(cfg),
		camera:   NewCamera(cfg.CameraSlack),
	}
	s.machine = newMachine()
	if err := s.machine.Start(s, StateLoading); err != nil {
		panic(err)
	}
	return s
}

func newMachine() *fsm.Machine[*Session] {
	m := fsm.NewMachine[*Session]()
	m.AddState(fsm.StateRoot, "Root", fsm.StateNone)

	// Leaving Active ends play, so movement intent is dropped
	m.AddState(StateActive, "Active", fsm.StateRoot).
		Exit(func(s *Session) {
			s.player.Body.ClearIntent(physics.DirLeft)
			s.player.Body.ClearIntent(physics.DirRight)
		}).
		On(evQuit, StateTerminated, nil)

	m.AddState(StateLoading, "Loading", StateActive).
		Enter(func(s *Session) { s.target = s.cfg.Start }).
		On(evReady, StatePlaying, nil)

	m.AddState(StatePlaying, "Playing", StateActive).
		Enter(func(s *Session) { s.target = "" }).
		On(evFollow, StateTransitioning, (*Session).onLink).
		On(evRestart, StateLoading, nil)

	m.AddState(StateTransitioning, "Transitioning", StateActive).
		Enter(func(s *Session) { s.target = s.contactLink() }).
		On(evReady, StatePlaying, nil)

	m.AddState(StateTerminated, "Terminated", fsm.StateRoot)

	if err := m.CompilePaths(); err != nil {
		panic(err)
	}
	return m
}

// Tick applies events and advances one frame
// Pending loads run first, so a frontend can draw a loading frame between ticks
func (s *Session) Tick(ctx context.Context, events []input.Event) {
	s.cues = s.cues[:0]

	started := s.machine.Current()
	switch started {
	case StateLoading:
		s.load(ctx)
	case StateTransitioning:
		s.travel(ctx)
	}

	for _, ev := range events {
		s.apply(ev)
	}

	if started == StatePlaying && s.machine.Current() == StatePlaying {
		s.step()
	}
}

func (s *Session) apply(ev input.Event) {
	if !s.machine.In(StateActive) {
		return
	}
	b := s.player.Body
	playing := s.machine.Current() == StatePlaying

	switch ev {
	case input.MoveLeftStart:
		b.SetIntent(physics.DirLeft)
	case input.MoveLeftStop:
		b.ClearIntent(physics.DirLeft)
	case input.MoveRightStart:
		b.SetIntent(physics.DirRight)
	case input.MoveRightStop:
		b.ClearIntent(physics.DirRight)
	case input.JumpStart:
		if playing && b.Jump(s.stage) {
			s.cue(CueJump)
		}
	case input.JumpStop:
		if playing {
			b.JumpRelease()
		}
	case input.Interact:
		s.machine.Fire(s, evFollow)
	case input.Restart:
		s.machine.Fire(s, evRestart)
	case input.Quit:
		s.machine.Fire(s, evQuit)
	}
}

func (s *Session) step() {
	b := s.player.Body

	b.Update(s.stage)
	fall := b.State.Vel.Y
	res := physics.Resolve(b, s.stage, s.visible)

	if res.Landed && -fall > landCueSpeed {
		s.cue(CueLand)
	}
	if res.Bumped || (res.Walled && !s.walled) {
		s.cue(CueBump)
	}
	s.walled = res.Walled

	s.camera.Follow(b.Bounds().Center())
	s.refreshVisible()

	if b.State.Pos.Y < s.floor-s.cfg.FallLimit*s.layout.Config().ViewportHeight {
		diag.Logger().Debug("body fell out of page, respawning", "page", s.page.Title, "y", b.State.Pos.Y)
		s.respawn()
		s.cue(CueRespawn)
		return
	}
	s.player.Trail.Push(b.State.Pos)
}

func (s *Session) load(ctx context.Context) {
	doc := s.fetch(ctx, s.target)
	s.swap(doc)
	s.respawn()
	s.history = append(s.history[:0], doc.Title)
	s.hops = 0
	diag.Logger().Info("page loaded", "title", doc.Title, "words", len(s.page.Words))
	s.machine.Fire(s, evReady)
}

func (s *Session) travel(ctx context.Context) {
	doc := s.fetch(ctx, s.target)
	s.swap(doc)
	s.placeOnRandomWord()
	s.history = append(s.history, doc.Title)
	s.hops++
	s.cue(CueTravel)
	diag.Logger().Info("followed link", "target", s.target, "title", doc.Title, "hops", s.hops)
	s.machine.Fire(s, evReady)
}

func (s *Session) fetch(ctx context.Context, id string) *document.Document {
	doc, err := s.resolver.Resolve(ctx, id)
	if err == nil && doc != nil {
		return doc
	}
	if err == nil {
		err = errors.New("resolver returned no document")
	}
	diag.Logger().Warn("page unavailable", "id", id, "error", err)
	s.cue(CueFailed)
	return document.Failure(id, err)
}

// swap installs a new page and stage generation and drops the now stale contact
func (s *Session) swap(doc *document.Document) {
	page := s.layout.Layout(doc)
	s.gen++
	s.page = page
	s.stage = physics.NewStage(s.gen, page)
	s.player.Body.State.Contact = physics.NoContact
	s.floor = page.Bounds().Bottom
	s.visible = layout.Span{}
	s.walled = false
}

func (s *Session) respawn() {
	s.player.Body.Place(s.cfg.StartPos, physics.NoContact)
	s.settle()
}

// placeOnRandomWord lands the body on the top surface of a uniformly chosen word
func (s *Session) placeOnRandomWord() {
	if len(s.page.Words) == 0 {
		s.respawn()
		return
	}
	i := s.rng.IntN(len(s.page.Words))
	r := s.page.Words[i].Rect
	s.player.Body.Place(vmath.Vec2{X: r.Left, Y: r.Top}, s.stage.Handle(i))
	s.settle()
}

// settle recenters the camera and trail on a teleported body
func (s *Session) settle() {
	s.player.Trail.Reset()
	s.camera.Reset(s.player.Body.Bounds().Center())
	s.refreshVisible()
}

func (s *Session) refreshVisible() {
	s.visible = s.page.Visible(s.camera.Offset.Y, s.cfg.CullRadius)
}

func (s *Session) onLink() bool {
	return s.contactLink() != ""
}

func (s *Session) contactLink() string {
	if w, ok := s.stage.Platform(s.player.Body.State.Contact); ok {
		return w.Link
	}
	return ""
}

func (s *Session) cue(c Cue) {
	s.cues = append(s.cues, c)
}

// Cues returns the cues raised by the last Tick; valid until the next Tick
func (s *Session) Cues() []Cue { return s.cues }

func (s *Session) State() fsm.StateID   { return s.machine.Current() }
func (s *Session) StateName() string    { return s.machine.Name() }
func (s *Session) Page() *layout.Page   { return s.page }
func (s *Session) Body() *physics.Body  { return s.player.Body }
func (s *Session) Player() *Player      { return s.player }
func (s *Session) Camera() *Camera      { return s.camera }
func (s *Session) Visible() layout.Span { return s.visible }
func (s *Session) Hops() int            { return s.hops }

// Target is the identifier being loaded, empty while playing
func (s *Session) Target() string { return s.target }

// History returns the titles visited since the last (re)start
func (s *Session) History() []string {
	return append([]string(nil), s.history...)
}

// Terminated reports whether the session has ended
func (s *Session) Terminated() bool {
	return s.machine.Current() == StateTerminated
}
