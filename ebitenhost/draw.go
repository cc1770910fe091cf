package ebitenhost

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Draw paints the tree attached under the root onto screen. Nodes are
// positioned by their left/top properties relative to their parent; a node
// without width/height fills its parent.
func (h *Host) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	for _, c := range h.root.children {
		h.drawNode(screen, c, 0, 0, float64(b.Dx()), float64(b.Dy()))
	}
}

func (h *Host) drawNode(dst *ebiten.Image, n *Node, px, py, pw, ph float64) {
	x := px + pxValue(n.style["left"], 0)
	y := py + pxValue(n.style["top"], 0)
	w := pxValue(n.style["width"], pw)
	hgt := pxValue(n.style["height"], ph)
	if w <= 0 || hgt <= 0 {
		return
	}

	if c, ok := parseColor(n.style["background-color"]); ok {
		fillRect(dst, x, y, w, hgt, c)
	}
	if c, ok := parseColor(n.style["border-color"]); ok {
		bw := pxValue(n.style["border-width"], 1)
		fillRect(dst, x, y, w, bw, c)
		fillRect(dst, x, y+hgt-bw, w, bw, c)
		fillRect(dst, x, y, bw, hgt, c)
		fillRect(dst, x+w-bw, y, bw, hgt, c)
	}
	if n.Text != "" {
		c, ok := parseColor(n.style["color"])
		if !ok {
			c = namedColors["white"]
		}
		h.drawLabel(dst, n.Text, x+2, y+2, c)
	}
	for _, c := range n.children {
		h.drawNode(dst, c, x, y, w, hgt)
	}
}

// whitePixel is scaled and tinted to draw solid rectangles.
var whitePixel *ebiten.Image

func fillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(whitePixel, &op)
}

// pxValue parses values such as "12px" or "12". Anything else yields def.
func pxValue(v string, def float64) float64 {
	v = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "px"))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

var namedColors = map[string]color.RGBA{
	"black": {0, 0, 0, 255},
	"white": {255, 255, 255, 255},
	"red":   {255, 0, 0, 255},
	"green": {0, 128, 0, 255},
	"blue":  {0, 0, 255, 255},
	"gray":  {128, 128, 128, 255},
}

// parseColor understands #rgb, #rrggbb, #rrggbbaa and a few color names.
// "transparent" and unparsable values report false.
func parseColor(v string) (color.RGBA, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	if c, ok := namedColors[v]; ok {
		return c, true
	}
	if !strings.HasPrefix(v, "#") {
		return color.RGBA{}, false
	}
	hex := v[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, false
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, true
}
