package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/portfolio/internal/ui"
)

const lineSpacing = 1.4

// fonts implements ui.Measurer over the Go fonts.
type fonts struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	faces   map[ui.Style]*text.GoTextFace
}

func loadFonts() (*fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}
	return &fonts{regular: regular, bold: bold, faces: map[ui.Style]*text.GoTextFace{}}, nil
}

func (f *fonts) face(st ui.Style) *text.GoTextFace {
	if face, ok := f.faces[st]; ok {
		return face
	}
	src := f.regular
	if st.Bold() {
		src = f.bold
	}
	face := &text.GoTextFace{Source: src, Size: st.Size()}
	f.faces[st] = face
	return face
}

func (f *fonts) Advance(s string, st ui.Style) float64 {
	return text.Advance(s, f.face(st))
}

func (f *fonts) LineHeight(st ui.Style) float64 {
	return st.Size() * lineSpacing
}
