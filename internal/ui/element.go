package ui

type Kind int

const (
	KindText Kind = iota
	KindButton
	KindLink
	KindTag
	KindCard
	KindNavItem
	KindMonogram
	KindBars
)

type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionGoTo
	ActionOpen
	ActionSaveResume
)

// Action is what activating an element does.
type Action struct {
	Kind    ActionKind
	Section Section
	URL     string
}

func GoTo(s Section) Action      { return Action{Kind: ActionGoTo, Section: s} }
func Open(url string) Action     { return Action{Kind: ActionOpen, URL: url} }
func (a Action) Clickable() bool { return a.Kind != ActionNone }

// Element is one thing to draw. Text elements carry their wrapped lines;
// boxes carry a single label.
type Element struct {
	ID      string
	Kind    Kind
	Rect    Rect
	Style   Style
	Tone    Tone
	Lines   []string
	Action  Action
	Active  bool
	Variant int
}

// Page is a laid-out section. Height is the full content height, which can
// exceed the viewport and is scrolled by the host.
type Page struct {
	Elements []Element
	Height   float64
}

// HitTest returns the topmost clickable element under (x, y).
func HitTest(elems []Element, x, y float64) (Element, bool) {
	for i := len(elems) - 1; i >= 0; i-- {
		e := elems[i]
		if e.Action.Clickable() && e.Rect.Contains(x, y) {
			return e, true
		}
	}
	return Element{}, false
}
