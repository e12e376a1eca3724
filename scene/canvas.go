package scene

import "image/color"

// Canvas is the drawing surface a frame is rendered onto.
// Translate affects every later DrawLine and DrawText until the matching Restore.
type Canvas interface {
	Clear(clr color.Color)
	SetStrokeColor(clr color.Color)
	SetStrokeWidth(width float64)
	DrawLine(x0, y0, x1, y1 float64)
	SetFillColor(clr color.Color)
	DrawText(s string, x, y float64)
	Save()
	Restore()
	Translate(x, y float64)
}
