package ebitenhost

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// defaultLabelSize is the font size used for Node.Text when SetFont was not called.
const defaultLabelSize = 14

// labelFont draws Node.Text.
type labelFont struct {
	face *text.GoTextFace
	lh   float64 // cached line height
}

func loadLabelFont(ttfData []byte, size float64) (*labelFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("ebitenhost: failed to parse TTF data: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &labelFont{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

// SetFont replaces the font used for node text. The default is Go Regular
// at 14px.
func (h *Host) SetFont(ttfData []byte, size float64) error {
	f, err := loadLabelFont(ttfData, size)
	if err != nil {
		return err
	}
	h.font = f
	return nil
}

func (h *Host) labelFont() *labelFont {
	if h.font == nil {
		f, err := loadLabelFont(goregular.TTF, defaultLabelSize)
		if err != nil {
			// goregular.TTF is embedded and always parses.
			panic(err)
		}
		h.font = f
	}
	return h.font
}

// drawLabel draws s with its top-left corner at (x, y).
func (h *Host) drawLabel(dst *ebiten.Image, s string, x, y float64, c color.Color) {
	f := h.labelFont()
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = f.lh
	text.Draw(dst, s, f.face, op)
}
