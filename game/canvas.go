package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/meghashyamc/projection2d/geometry"
)

// ebitenCanvas draws a scene onto an ebiten image
type ebitenCanvas struct {
	dst         *ebiten.Image
	face        text.Face
	stroke      color.Color
	strokeWidth float64
	fill        color.Color
	offset      geometry.Vector
	saved       []geometry.Vector
}

func newEbitenCanvas(dst *ebiten.Image, face text.Face) *ebitenCanvas {
	return &ebitenCanvas{
		dst:         dst,
		face:        face,
		stroke:      color.Black,
		strokeWidth: 1,
		fill:        color.Black,
	}
}

func (c *ebitenCanvas) Clear(clr color.Color) {
	c.dst.Fill(clr)
}

func (c *ebitenCanvas) SetStrokeColor(clr color.Color) {
	c.stroke = clr
}

func (c *ebitenCanvas) SetStrokeWidth(width float64) {
	c.strokeWidth = width
}

func (c *ebitenCanvas) DrawLine(x0, y0, x1, y1 float64) {
	from := c.offset.Add(geometry.Vector{X: x0, Y: y0})
	to := c.offset.Add(geometry.Vector{X: x1, Y: y1})
	vector.StrokeLine(c.dst, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), float32(c.strokeWidth), c.stroke, true)
}

func (c *ebitenCanvas) SetFillColor(clr color.Color) {
	c.fill = clr
}

func (c *ebitenCanvas) DrawText(s string, x, y float64) {
	at := c.offset.Add(geometry.Vector{X: x, Y: y})
	op := &text.DrawOptions{}
	op.GeoM.Translate(at.X, at.Y)
	op.ColorScale.ScaleWithColor(c.fill)
	text.Draw(c.dst, s, c.face, op)
}

func (c *ebitenCanvas) Save() {
	c.saved = append(c.saved, c.offset)
}

func (c *ebitenCanvas) Restore() {
	if len(c.saved) == 0 {
		return
	}
	c.offset = c.saved[len(c.saved)-1]
	c.saved = c.saved[:len(c.saved)-1]
}

func (c *ebitenCanvas) Translate(x, y float64) {
	c.offset = c.offset.Add(geometry.Vector{X: x, Y: y})
}
