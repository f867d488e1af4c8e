package ui

import (
	"fmt"
	"math"

	"github.com/iburimskiy/portfolio/internal/content"
)

const (
	navTop      = 20
	navPadX     = 24
	navPadY     = 12
	buttonPadX  = 24
	buttonPadY  = 12
	tagPadX     = 12
	tagPadY     = 6
	tagGap      = 8
	maxColumn   = 1000
	monogramBig = 240
	monogramSm  = 180
)

// metrics holds the values that change with the compact breakpoint.
type metrics struct {
	compact bool
	pad     float64
	gap     float64
	navGap  float64
	heading Style
	display Style
}

func metricsFor(width float64) metrics {
	if Compact(width) {
		return metrics{compact: true, pad: 20, gap: 30, navGap: 16, heading: HeadingCompact, display: DisplayCompact}
	}
	return metrics{pad: 40, gap: 60, navGap: 32, heading: Heading, display: Display}
}

// NavBar lays out the floating navigation bar centered at the top.
func NavBar(p content.Profile, active Section, width float64, m Measurer) []Element {
	mt := metricsFor(width)
	lh := m.LineHeight(Label)

	labels := make([]float64, len(Sections))
	total := m.Advance(p.Initials, Label)
	for i, s := range Sections {
		labels[i] = m.Advance(s.String(), Body)
		total += mt.navGap + labels[i]
	}
	barW := total + 2*navPadX
	barH := lh + 2*navPadY
	x := (width - barW) / 2

	elems := []Element{{
		ID:   "nav",
		Kind: KindCard,
		Rect: Rect{X: x, Y: navTop, W: barW, H: barH},
		Tone: ToneAccent,
	}, {
		ID:    "nav-initials",
		Kind:  KindText,
		Rect:  Rect{X: x + navPadX, Y: navTop + navPadY, W: m.Advance(p.Initials, Label), H: lh},
		Style: Label,
		Tone:  ToneAccent,
		Lines: []string{p.Initials},
	}}

	cx := x + navPadX + m.Advance(p.Initials, Label)
	for i, s := range Sections {
		cx += mt.navGap
		elems = append(elems, Element{
			ID:     "nav-" + s.String(),
			Kind:   KindNavItem,
			Rect:   Rect{X: cx, Y: navTop + navPadY, W: labels[i], H: lh},
			Style:  Body,
			Tone:   ToneMuted,
			Lines:  []string{s.String()},
			Action: GoTo(s),
			Active: s == active,
		})
		cx += labels[i]
	}
	return elems
}

// NavHeight is the space the navigation bar occupies from the top edge.
func NavHeight(m Measurer) float64 {
	return navTop + m.LineHeight(Label) + 2*navPadY
}

// Build lays out one section for a viewport of the given size.
func Build(p content.Profile, s Section, width, height float64, m Measurer) Page {
	b := &builder{m: m, mt: metricsFor(width)}
	colW := math.Min(width-2*b.mt.pad, maxColumn)
	b.x = (width - colW) / 2
	b.w = colW
	b.y = NavHeight(m) + b.mt.gap

	switch s {
	case About:
		b.about(p)
	case Projects:
		b.projects(p)
	case Contact:
		b.contact(p)
	default:
		b.home(p, height)
	}
	return Page{Elements: b.elems, Height: b.y + b.mt.pad}
}

type builder struct {
	m     Measurer
	mt    metrics
	x, w  float64
	y     float64
	elems []Element
}

func (b *builder) add(e Element) {
	b.elems = append(b.elems, e)
}

// text adds a wrapped paragraph at the cursor, centered if asked.
func (b *builder) text(id, s string, st Style, tone Tone, centered bool) {
	b.textIn(id, s, st, tone, b.x, b.w, centered)
	b.y += 8
}

func (b *builder) textIn(id, s string, st Style, tone Tone, x, w float64, centered bool) {
	lines := Wrap(s, w, st, b.m)
	h := float64(len(lines)) * b.m.LineHeight(st)
	lw := w
	if centered {
		lw = 0
		for _, l := range lines {
			lw = math.Max(lw, b.m.Advance(l, st))
		}
		x += (w - lw) / 2
	}
	b.add(Element{ID: id, Kind: KindText, Rect: Rect{X: x, Y: b.y, W: lw, H: h}, Style: st, Tone: tone, Lines: lines})
	b.y += h
}

func (b *builder) buttonSize(label string, st Style) (float64, float64) {
	return b.m.Advance(label, st) + 2*buttonPadX, b.m.LineHeight(st) + 2*buttonPadY
}

// row lays out boxes left to right starting at x, wrapping inside width.
// It returns the height used.
func (b *builder) row(items []Element, x, width float64, centered bool) float64 {
	var rows [][]Element
	var cur []Element
	used := 0.0
	for _, it := range items {
		if len(cur) > 0 && used+tagGap+it.Rect.W > width {
			rows = append(rows, cur)
			cur, used = nil, 0
		}
		if len(cur) > 0 {
			used += tagGap
		}
		cur = append(cur, it)
		used += it.Rect.W
	}
	if len(cur) > 0 {
		rows = append(rows, cur)
	}

	y := b.y
	for _, r := range rows {
		rowW, rowH := 0.0, 0.0
		for i, it := range r {
			if i > 0 {
				rowW += tagGap
			}
			rowW += it.Rect.W
			rowH = math.Max(rowH, it.Rect.H)
		}
		cx := x
		if centered {
			cx = x + (width-rowW)/2
		}
		for _, it := range r {
			it.Rect.X, it.Rect.Y = cx, y
			b.add(it)
			cx += it.Rect.W + tagGap
		}
		y += rowH + tagGap
	}
	return y - b.y
}

func (b *builder) tags(id string, labels []string, x, width float64) {
	items := make([]Element, len(labels))
	for i, l := range labels {
		items[i] = Element{
			ID:    id + "-" + l,
			Kind:  KindTag,
			Rect:  Rect{W: b.m.Advance(l, Small) + 2*tagPadX, H: b.m.LineHeight(Small) + 2*tagPadY},
			Style: Small,
			Tone:  ToneAccent,
			Lines: []string{l},
		}
	}
	b.y += b.row(items, x, width, false)
}

func (b *builder) button(id, label string, a Action, tone Tone) Element {
	w, h := b.buttonSize(label, Body)
	return Element{ID: id, Kind: KindButton, Rect: Rect{W: w, H: h}, Style: Body, Tone: tone, Lines: []string{label}, Action: a}
}

func (b *builder) home(p content.Profile, height float64) {
	size := float64(monogramBig)
	if b.mt.compact {
		size = monogramSm
	}

	// Measure first so the block can be centered vertically.
	start := b.y
	b.add(Element{ID: "monogram", Kind: KindMonogram, Rect: Rect{X: b.x + (b.w-size)/2, Y: b.y, W: size, H: size}, Style: b.mt.display, Tone: ToneAccent, Lines: []string{p.Initials}})
	b.y += size + 24
	b.text("greeting", p.Greeting, Body, ToneAccent, true)
	b.text("name", p.Name, b.mt.display, ToneHeading, true)
	b.text("tagline", p.Tagline, Lead, ToneMuted, true)
	b.y += 24

	b.y += b.row([]Element{
		b.button("cta-projects", "View My Work →", GoTo(Projects), ToneHeading),
		b.button("cta-resume", "Download Resume", Open(p.ResumeURL), ToneAccent),
	}, b.x, b.w, true)
	b.y += 24

	var socials []Element
	for _, l := range p.Socials {
		socials = append(socials, Element{
			ID:     "social-" + l.Label,
			Kind:   KindLink,
			Rect:   Rect{W: b.m.Advance(l.Label, Body), H: b.m.LineHeight(Body)},
			Style:  Body,
			Tone:   ToneMuted,
			Lines:  []string{l.Label},
			Action: Open(l.URL),
		})
	}
	// Links are spaced wider than tags.
	for i := range socials {
		socials[i].Rect.W += 16
	}
	b.y += b.row(socials, b.x, b.w, true)

	if free := height - b.y - b.mt.pad; free > 0 {
		shift := free / 2
		for i := range b.elems {
			if b.elems[i].Rect.Y >= start {
				b.elems[i].Rect = b.elems[i].Rect.Offset(shift)
			}
		}
		b.y += shift
	}
}

func (b *builder) about(p content.Profile) {
	b.text("about-title", "About Me", b.mt.heading, ToneHeading, false)
	b.y += 16
	for i, para := range p.About {
		b.text(idx("about-p", i), para, Body, ToneText, false)
		b.y += 12
	}
	b.y += 24
	b.text("skills-title", "Skills & Technologies", Title, ToneHeading, false)
	b.y += 8
	for i, g := range p.Skills {
		b.text(idx("skills-group", i), g.Title, Lead, ToneAccent, false)
		b.tags(idx("skill", i), g.Skills, b.x, b.w)
		b.y += 16
	}
}

func (b *builder) projects(p content.Profile) {
	b.text("projects-title", "My Projects", b.mt.heading, ToneHeading, false)
	b.text("projects-sub", "Showcasing my work | Work in progress don't have live links", Body, ToneMuted, false)
	b.y += 32

	for i, pr := range p.Projects {
		top := b.y
		textX, textW := b.x+24, b.w-48
		panelX, panelW := 0.0, 0.0
		if !b.mt.compact {
			// Two columns; the decoration alternates sides.
			textW = (b.w - 48 - b.mt.gap) / 2
			panelW = textW
			if i%2 == 0 {
				panelX = textX
				textX += textW + b.mt.gap
			} else {
				panelX = textX + textW + b.mt.gap
			}
		}

		cardIdx := len(b.elems)
		b.add(Element{ID: idx("project-card", i), Kind: KindCard, Tone: ToneMuted})
		b.y += 24
		b.textIn(idx("project-tag", i), pr.Tag, Small, ToneAccent, textX, textW, false)
		b.y += 8
		b.textIn(idx("project-title", i), pr.Title, Title, ToneHeading, textX, textW, false)
		b.y += 12
		b.textIn(idx("project-desc", i), pr.Description, Body, ToneText, textX, textW, false)
		b.y += 16
		b.tags(idx("project-tech", i), pr.Tech, textX, textW)
		b.y += 8

		live := b.button(idx("project-live", i), "View Live", Action{}, ToneMuted)
		if pr.LiveURL != "" {
			live.Action = Open(pr.LiveURL)
			live.Tone = ToneAccent
		}
		b.y += b.row([]Element{live, b.button(idx("project-repo", i), "GitHub", Open(pr.RepoURL), ToneAccent)}, textX, textW, false)
		b.y += 16

		if panelW > 0 {
			// Even cards get bars, odd cards get sparse lines.
			b.add(Element{
				ID:      idx("project-panel", i),
				Kind:    KindBars,
				Rect:    Rect{X: panelX, Y: top + 24, W: panelW, H: b.y - top - 48},
				Tone:    ToneAccent,
				Variant: i % 2,
			})
		}
		b.elems[cardIdx].Rect = Rect{X: b.x, Y: top, W: b.w, H: b.y - top}
		b.y += b.mt.gap
	}
}

func (b *builder) contact(p content.Profile) {
	b.text("contact-title", "Let's Connect", b.mt.heading, ToneHeading, true)
	b.text("contact-sub", "Feel Free To Reach Out!", Lead, ToneMuted, true)
	b.y += 40

	cardW, cardH := 180.0, 120.0
	var cards []Element
	for _, l := range p.Contact {
		cards = append(cards, Element{
			ID:     "contact-" + l.Label,
			Kind:   KindCard,
			Rect:   Rect{W: cardW, H: cardH},
			Style:  Body,
			Tone:   ToneAccent,
			Lines:  []string{l.Label},
			Action: Open(l.URL),
		})
	}
	b.y += b.row(cards, b.x, b.w, true)
	b.y += 32

	b.y += b.row([]Element{
		b.button("contact-resume", "Download My Resume", Open(p.ResumeURL), ToneHeading),
		b.button("contact-save", "Save Text Resume", Action{Kind: ActionSaveResume}, ToneAccent),
	}, b.x, b.w, true)
}

func idx(prefix string, i int) string {
	return fmt.Sprintf("%s-%d", prefix, i)
}
