// Package ui lays out the portfolio sections as a flat list of elements.
// It knows nothing about the renderer; text is measured through a Measurer
// so the same layout drives drawing and hit-testing.
package ui

import (
	"strings"

	"github.com/iburimskiy/portfolio/internal/config"
)

type Section int

const (
	Home Section = iota
	About
	Projects
	Contact
)

var Sections = []Section{Home, About, Projects, Contact}

func (s Section) String() string {
	switch s {
	case Home:
		return "Home"
	case About:
		return "About"
	case Projects:
		return "Projects"
	case Contact:
		return "Contact"
	}
	return "Home"
}

// Next cycles through the sections in navigation order.
func (s Section) Next() Section {
	return Sections[(int(s)+1)%len(Sections)]
}

// Style selects a font face.
type Style int

const (
	Small Style = iota
	Body
	Lead
	Label
	Title
	Heading
	HeadingCompact
	Display
	DisplayCompact
)

func (st Style) Size() float64 {
	switch st {
	case Small:
		return 12
	case Body:
		return 14
	case Lead, Label:
		return 18
	case Title:
		return 24
	case Heading:
		return 48
	case HeadingCompact:
		return 36
	case Display:
		return 64
	case DisplayCompact:
		return 48
	}
	return 14
}

func (st Style) Bold() bool {
	switch st {
	case Label, Title, Heading, HeadingCompact, Display, DisplayCompact:
		return true
	}
	return false
}

// Measurer measures rendered text.
type Measurer interface {
	Advance(s string, st Style) float64
	LineHeight(st Style) float64
}

// Tone is a palette role; the renderer maps it to a color.
type Tone int

const (
	ToneText Tone = iota
	ToneMuted
	ToneAccent
	ToneHeading
)

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Offset shifts r vertically.
func (r Rect) Offset(dy float64) Rect {
	r.Y += dy
	return r
}

// Compact reports whether a viewport this wide gets the narrow layout.
func Compact(width float64) bool {
	return width <= config.CompactBreakpoint
}

// Wrap breaks text into lines no wider than width. A single word wider than
// width gets a line of its own.
func Wrap(text string, width float64, st Style, m Measurer) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if m.Advance(candidate, st) <= width {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}
