// Package swatch renders a palette as a PNG preview: one row per category,
// one labeled color cell per material name.
package swatch

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"maps"
	"slices"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/matcolor"
	"github.com/gogpu/matcolor/palette"
)

// Layout controls cell geometry in pixels.
type Layout struct {
	CellWidth    int
	SwatchHeight int
	Padding      int
}

// DefaultLayout fits 13 characters of label per cell.
var DefaultLayout = Layout{CellWidth: 104, SwatchHeight: 40, Padding: 6}

const (
	lineHeight  = 13 // basicfont.Face7x13
	glyphWidth  = 7
	headerWidth = 40
)

// cellHeight is swatch + two label lines (name, hex) + padding.
func (l Layout) cellHeight() int {
	return l.SwatchHeight + 2*lineHeight + 2*l.Padding
}

// Render draws every entry of the resolver's table. Colors are stored in
// linear light and re-encoded to sRGB for display.
func Render(res *palette.Resolver, l Layout) (*image.RGBA, error) {
	table := res.Table()
	cats := table.Categories()

	cols := 1
	for _, cat := range cats {
		cols = max(cols, len(table[cat]))
	}
	rows := max(len(cats), 1)
	w := headerWidth + cols*l.CellWidth
	h := rows * l.cellHeight()

	dc := gg.NewContext(w, h)
	defer dc.Close()
	dc.ClearWithColor(gg.White)

	type label struct {
		x, y int
		text string
	}
	var labels []label

	for row, cat := range cats {
		y := row * l.cellHeight()
		labels = append(labels, label{x: l.Padding, y: y + l.Padding + lineHeight, text: cat})
		for col, name := range slices.Sorted(maps.Keys(table[cat])) {
			x := headerWidth + col*l.CellWidth
			c := res.Resolve(name, cat)

			dc.SetColor(c.Color())
			dc.DrawRectangle(float64(x), float64(y+l.Padding),
				float64(l.CellWidth-l.Padding), float64(l.SwatchHeight))
			if err := dc.Fill(); err != nil {
				return nil, fmt.Errorf("swatch: fill %s/%s: %w", cat, name, err)
			}

			textY := y + l.Padding + l.SwatchHeight + lineHeight
			labels = append(labels,
				label{x: x, y: textY, text: fit(name, l.CellWidth-l.Padding)},
				label{x: x, y: textY + lineHeight, text: c.Hex()})
		}
	}

	src := dc.Image()
	img := image.NewRGBA(src.Bounds())
	xdraw.Draw(img, img.Bounds(), src, src.Bounds().Min, xdraw.Src)

	d := font.Drawer{Dst: img, Src: image.Black, Face: basicfont.Face7x13}
	for _, lb := range labels {
		d.Dot = fixed.P(lb.x, lb.y-2)
		d.DrawString(lb.text)
	}

	matcolor.Logger().Debug("swatch: rendered", "categories", len(cats), "width", w, "height", h)
	return img, nil
}

// WritePNG renders the palette with DefaultLayout and encodes it as PNG.
func WritePNG(w io.Writer, res *palette.Resolver) error {
	img, err := Render(res, DefaultLayout)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// fit truncates s to the number of glyphs that fit in width pixels.
func fit(s string, width int) string {
	n := width / glyphWidth
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n < 2 {
		return string(r[:max(n, 0)])
	}
	return string(r[:n-1]) + "~"
}
