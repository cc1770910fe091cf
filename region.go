package panes

import (
	"slices"
	"strings"
)

// baseClass is set on every region node so hosts can style all regions at once.
const baseClass = "panes"

// region is the session's record of one managed rectangle.
type region struct {
	node      NodeRef // owned by the host
	content   NodeRef // first child attached at creation, may be nil
	displayed bool

	// local is relative to the global offset. At creation the then-current
	// offset is folded into X and Y.
	local Rect
	// placed is the absolute rect most recently pushed to the host.
	placed Rect

	classes []string
}

// redraw recomputes the absolute rect and pushes it to the host. Hidden
// regions are redrawn too so that showing them later uses the current
// global transform.
func (p *region) redraw(host Host, t *transform) error {
	abs := t.apply(p.local)
	props := [4]Declaration{
		{"left", px(abs.X)},
		{"top", px(abs.Y)},
		{"width", px(abs.Width)},
		{"height", px(abs.Height)},
	}
	for _, d := range props {
		if err := host.SetStyleProperty(p.node, d.Property, d.Value); err != nil {
			return hostErr("set style "+d.Property, err)
		}
	}
	p.placed = abs
	return nil
}

func (p *region) className() string {
	return strings.Join(p.classes, " ")
}

// addClass reports whether the class list changed.
func (p *region) addClass(class string) bool {
	if class == "" || slices.Contains(p.classes, class) {
		return false
	}
	p.classes = append(p.classes, class)
	return true
}

// removeClass reports whether the class list changed.
func (p *region) removeClass(class string) bool {
	i := slices.Index(p.classes, class)
	if i < 0 {
		return false
	}
	p.classes = slices.Delete(p.classes, i, i+1)
	return true
}
