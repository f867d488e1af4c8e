package effect

import (
	"image/color"
	"testing"

	"github.com/iburimskiy/portfolio/internal/raster"
	"github.com/iburimskiy/portfolio/internal/starfield"
)

type fakeScheduler struct {
	next      FrameID
	pending   map[FrameID]func()
	cancelled int
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{pending: map[FrameID]func(){}}
}

func (f *fakeScheduler) RequestFrame(fn func()) FrameID {
	f.next++
	f.pending[f.next] = fn
	return f.next
}

func (f *fakeScheduler) CancelFrame(id FrameID) {
	if _, ok := f.pending[id]; ok {
		f.cancelled++
	}
	delete(f.pending, id)
}

// take removes every pending callback, as a host does right before running
// them on a refresh.
func (f *fakeScheduler) take() []func() {
	var fns []func()
	for id, fn := range f.pending {
		fns = append(fns, fn)
		delete(f.pending, id)
	}
	return fns
}

func (f *fakeScheduler) frame() {
	for _, fn := range f.take() {
		fn()
	}
}

type fakeViewport struct {
	w, h int
	subs map[int]func(w, h int)
	next int
}

func newFakeViewport(w, h int) *fakeViewport {
	return &fakeViewport{w: w, h: h, subs: map[int]func(int, int){}}
}

func (v *fakeViewport) Size() (int, int) { return v.w, v.h }

func (v *fakeViewport) OnResize(fn func(w, h int)) func() {
	v.next++
	id := v.next
	v.subs[id] = fn
	return func() { delete(v.subs, id) }
}

func (v *fakeViewport) resize(w, h int) {
	v.w, v.h = w, h
	for _, fn := range v.subs {
		fn(w, h)
	}
}

type countingSurface struct {
	w, h  int
	draws int
}

func (s *countingSurface) Size() (int, int)                                    { return s.w, s.h }
func (s *countingSurface) Resize(w, h int)                                     { s.w, s.h = w, h }
func (s *countingSurface) Fill(c color.Color)                                  { s.draws++ }
func (s *countingSurface) FillCircle(x, y, r float64, c color.Color)           { s.draws++ }
func (s *countingSurface) StrokeLine(x0, y0, x1, y1, w float64, c color.Color) { s.draws++ }

func TestStartWithoutSurfaceIsInert(t *testing.T) {
	sched := newFakeScheduler()
	vp := newFakeViewport(800, 600)

	h := Particles{}.Start(nil, sched, vp, Config{Count: 10})

	if h.Running() {
		t.Fatal("expected inert handle")
	}
	if len(sched.pending) != 0 {
		t.Fatalf("expected no frame requests, got %d", len(sched.pending))
	}
	if len(vp.subs) != 0 {
		t.Fatalf("expected no resize subscription, got %d", len(vp.subs))
	}
	h.Stop()
}

func TestStartWithUnattachedSurfaceIsInert(t *testing.T) {
	q := NewFrameQueue()
	win := NewWindow(80, 60)

	for _, bg := range []BackgroundEffect{Particles{}, Mesh{}} {
		h := bg.Start((*raster.Surface)(nil), q, win, Config{Count: 3})
		if h.Running() {
			t.Fatalf("%T: expected inert handle for a nil surface pointer", bg)
		}
		q.Dispatch()
		h.Stop()
	}
	if q.Pending() != 0 || win.Subscribers() != 0 {
		t.Fatalf("inert start left work behind: pending %d, subscribers %d", q.Pending(), win.Subscribers())
	}

	h := Particles{}.Start(raster.New(80, 60), q, win, Config{Count: 3})
	defer h.Stop()
	if !h.Running() {
		t.Fatal("expected a real surface to start")
	}
}

func TestStartSizesSurfaceAndSchedules(t *testing.T) {
	sched := newFakeScheduler()
	vp := newFakeViewport(800, 600)
	s := &countingSurface{}

	h := Particles{}.Start(s, sched, vp, Config{Count: 150, Seed: 1})
	defer h.Stop()

	if s.w != 800 || s.h != 600 {
		t.Fatalf("surface sized %dx%d, want 800x600", s.w, s.h)
	}
	if len(sched.pending) != 1 {
		t.Fatalf("expected one pending frame, got %d", len(sched.pending))
	}
	if s.draws != 0 {
		t.Fatalf("expected no drawing before the first frame, got %d", s.draws)
	}

	sched.frame()
	if s.draws == 0 {
		t.Fatal("expected drawing on first frame")
	}
	if len(sched.pending) != 1 {
		t.Fatalf("expected tick to reschedule itself, got %d pending", len(sched.pending))
	}
}

func TestTickFollowsVelocity(t *testing.T) {
	sched := newFakeScheduler()
	s := &countingSurface{}
	h := Particles{}.Start(s, sched, newFakeViewport(800, 600), Config{Count: 150, Seed: 4})
	defer h.Stop()

	st := h.anim.(*particleAnimation).state
	before := append(st.Particles[:0:0], st.Particles...)

	sched.frame()

	for i, p := range st.Particles {
		if before[i].X+before[i].VX >= 0 && before[i].X+before[i].VX < 800 && p.X != before[i].X+before[i].VX {
			t.Fatalf("particle %d x=%v, want %v", i, p.X, before[i].X+before[i].VX)
		}
	}
	for n := 0; n < 1000; n++ {
		sched.frame()
	}
	if len(st.Particles) != 150 {
		t.Fatalf("expected 150 particles, got %d", len(st.Particles))
	}
	if !st.InBounds() {
		t.Fatal("particle escaped 800x600 after 1000 frames")
	}
}

func TestStopPreventsFurtherDraws(t *testing.T) {
	sched := newFakeScheduler()
	vp := newFakeViewport(800, 600)
	s := &countingSurface{}
	h := Particles{}.Start(s, sched, vp, Config{Count: 20})

	sched.frame()
	sched.frame()
	drawn := s.draws

	h.Stop()

	if h.Running() {
		t.Fatal("expected handle stopped")
	}
	if len(sched.pending) != 0 {
		t.Fatalf("expected pending frame cancelled, got %d", len(sched.pending))
	}
	if len(vp.subs) != 0 {
		t.Fatal("expected resize subscription removed")
	}
	for n := 0; n < 5; n++ {
		sched.frame()
	}
	vp.resize(100, 100)
	if s.draws != drawn {
		t.Fatalf("expected no draws after stop, got %d more", s.draws-drawn)
	}
}

func TestStopRacingDispatchedFrame(t *testing.T) {
	sched := newFakeScheduler()
	s := &countingSurface{}
	h := Mesh{}.Start(s, sched, newFakeViewport(640, 480), Config{Count: 10})

	// The host has already pulled the callback off its queue when the view
	// is torn down; running it afterwards must be a no-op.
	dispatched := sched.take()
	h.Stop()
	for _, fn := range dispatched {
		fn()
	}

	if s.draws != 0 {
		t.Fatalf("expected no draws from a frame dispatched before stop, got %d", s.draws)
	}
	if len(sched.pending) != 0 {
		t.Fatalf("expected no rescheduling after stop, got %d", len(sched.pending))
	}
}

func TestStopIsIdempotent(t *testing.T) {
	sched := newFakeScheduler()
	h := Particles{}.Start(&countingSurface{}, sched, newFakeViewport(10, 10), Config{Count: 1})

	h.Stop()
	h.Stop()

	if sched.cancelled != 1 {
		t.Fatalf("expected one cancellation, got %d", sched.cancelled)
	}
	var nilHandle *Handle
	nilHandle.Stop()
}

func TestRepeatedMountDoesNotLeakListeners(t *testing.T) {
	sched := newFakeScheduler()
	vp := newFakeViewport(800, 600)
	for i := 0; i < 5; i++ {
		h := Particles{}.Start(&countingSurface{}, sched, vp, Config{Count: 5})
		sched.frame()
		h.Stop()
	}
	if len(vp.subs) != 0 {
		t.Fatalf("expected no leftover resize listeners, got %d", len(vp.subs))
	}
	if len(sched.pending) != 0 {
		t.Fatalf("expected no leftover frames, got %d", len(sched.pending))
	}
}

func TestResizeFollowsViewport(t *testing.T) {
	sched := newFakeScheduler()
	vp := newFakeViewport(800, 600)
	s := &countingSurface{}
	h := Particles{}.Start(s, sched, vp, Config{Count: 150, Seed: 8})
	defer h.Stop()

	vp.resize(300, 200)

	if s.w != 300 || s.h != 200 {
		t.Fatalf("surface %dx%d, want 300x200", s.w, s.h)
	}
	st := h.anim.(*particleAnimation).state
	if !st.InBounds() {
		t.Fatal("particles outside resized viewport")
	}
}

func TestMeshStaysInBoundsAndLinksNeighbours(t *testing.T) {
	a := newMeshAnimation(200, 100, 40, 50, 3, nil)
	for n := 0; n < 500; n++ {
		a.step()
	}
	for i, p := range a.nodes {
		if p.X < 0 || p.X >= 200 || p.Y < 0 || p.Y >= 100 {
			t.Fatalf("node %d at (%v,%v) outside 200x100", i, p.X, p.Y)
		}
	}

	a.nodes = a.nodes[:2]
	a.nodes[0].X, a.nodes[0].Y = 10, 10
	a.nodes[1].X, a.nodes[1].Y = 20, 10
	s := &countingSurface{}
	a.render(s)
	withLink := s.draws

	a.nodes[1].X = 190
	s = &countingSurface{}
	a.render(s)
	if s.draws != withLink-1 {
		t.Fatalf("expected exactly one link to disappear, draws %d -> %d", withLink, s.draws)
	}
}

func TestPaletteOverride(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	sched := newFakeScheduler()
	vp := newFakeViewport(300, 200)
	cfg := Config{Count: 50, Seed: 4, Palette: []color.NRGBA{red}}

	h := Particles{}.Start(&countingSurface{}, sched, vp, cfg)
	defer h.Stop()
	for i, p := range h.anim.(*particleAnimation).state.Particles {
		if p.Color != red {
			t.Fatalf("particle %d has color %+v, want the only palette entry", i, p.Color)
		}
	}

	m := Mesh{}.Start(&countingSurface{}, sched, vp, cfg)
	defer m.Stop()
	for i, p := range m.anim.(*meshAnimation).nodes {
		if p.Color != red {
			t.Fatalf("mesh node %d has color %+v, want the only palette entry", i, p.Color)
		}
	}
}

func TestMeshResizeRelocatesOutOfBoundsOnce(t *testing.T) {
	a := newMeshAnimation(800, 600, 80, 140, 9, nil)
	before := append([]starfield.Particle(nil), a.nodes...)

	a.resize(400, 300)

	moved := 0
	for i, p := range a.nodes {
		if p.X < 0 || p.X >= 400 || p.Y < 0 || p.Y >= 300 {
			t.Fatalf("node %d at (%v,%v) outside shrunk viewport", i, p.X, p.Y)
		}
		b := before[i]
		if p.VX != b.VX || p.VY != b.VY || p.Color != b.Color || p.Radius != b.Radius {
			t.Fatalf("node %d changed more than position", i)
		}
		inside := b.X < 400 && b.Y < 300
		if inside && (p.X != b.X || p.Y != b.Y) {
			t.Fatalf("node %d was inside but moved", i)
		}
		if !inside {
			moved++
		}
	}
	if moved == 0 {
		t.Fatal("expected some nodes to be relocated")
	}

	again := append([]starfield.Particle(nil), a.nodes...)
	a.resize(400, 300)
	for i := range a.nodes {
		if a.nodes[i] != again[i] {
			t.Fatalf("node %d moved on repeated resize", i)
		}
	}

	a.resize(0, 0)
	if a.width != 400 || a.height != 300 {
		t.Fatalf("empty resize changed viewport to %vx%v", a.width, a.height)
	}
}

func TestBounce(t *testing.T) {
	tests := []struct {
		v, vel, size   float64
		wantV, wantVel float64
	}{
		{v: 5, vel: 1, size: 10, wantV: 5, wantVel: 1},
		{v: -2, vel: -1, size: 10, wantV: 2, wantVel: 1},
		{v: 12, vel: 1, size: 10, wantV: 8, wantVel: -1},
		{v: 10, vel: 1, size: 10, wantV: 0, wantVel: -1},
	}
	for _, tt := range tests {
		v, vel := bounce(tt.v, tt.vel, tt.size)
		if v != tt.wantV || vel != tt.wantVel {
			t.Errorf("bounce(%v, %v, %v) = (%v, %v), want (%v, %v)", tt.v, tt.vel, tt.size, v, vel, tt.wantV, tt.wantVel)
		}
	}
}

func TestNew(t *testing.T) {
	if _, err := New("particles"); err != nil {
		t.Fatalf("particles: %v", err)
	}
	if _, err := New("mesh"); err != nil {
		t.Fatalf("mesh: %v", err)
	}
	if _, err := New("vanta"); err == nil {
		t.Fatal("expected error for unknown effect")
	}
}
