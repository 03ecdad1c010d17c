package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"golife/model"
)

// Painter updates a single RGBA image from grid cell states, one pixel per
// cell, and draws it scaled onto the screen.
type Painter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewPainter allocates a painter for a columns x rows cell field.
func NewPainter(columns, rows int) *Painter {
	p := &Painter{w: columns, h: rows, buf: make([]byte, 4*columns*rows)}
	p.img = ebiten.NewImage(columns, rows)
	return p
}

// Blit uploads the grid into the painter image and draws it onto dst,
// scaled by scale pixels per cell and offset by margin on both axes.
func (p *Painter) Blit(dst *ebiten.Image, g *model.Grid, alive, dead color.Color, scale, margin int) {
	if g.Columns() != p.w || g.Rows() != p.h {
		return
	}
	p.fillRGBA(g, alive, dead)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(margin), float64(margin))
	dst.DrawImage(p.img, op)
}

// fillRGBA converts cell states into RGBA pixels in the painter buffer.
// The image is row-major, so the buffer index walks rows in the outer loop.
func (p *Painter) fillRGBA(g *model.Grid, alive, dead color.Color) {
	rOn, gOn, bOn, aOn := alive.RGBA()
	rOff, gOff, bOff, aOff := dead.RGBA()
	for row := 0; row < p.h; row++ {
		for col := 0; col < p.w; col++ {
			base := (row*p.w + col) * 4
			if g.Get(col, row) {
				p.buf[base+0] = uint8(rOn >> 8)
				p.buf[base+1] = uint8(gOn >> 8)
				p.buf[base+2] = uint8(bOn >> 8)
				p.buf[base+3] = uint8(aOn >> 8)
				continue
			}
			p.buf[base+0] = uint8(rOff >> 8)
			p.buf[base+1] = uint8(gOff >> 8)
			p.buf[base+2] = uint8(bOff >> 8)
			p.buf[base+3] = uint8(aOff >> 8)
		}
	}
}

// Size returns the dimensions of the underlying image in cells.
func (p *Painter) Size() (int, int) { return p.w, p.h }
