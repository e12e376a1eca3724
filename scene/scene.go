package scene

import (
	"fmt"
	"image/color"

	"github.com/meghashyamc/projection2d/geometry"
)

const (
	DefaultReferenceLength = 50.0
	DefaultStrokeWidth     = 3.0

	// the reference direction is derived from the surface size
	referenceWidthDivisor  = 1.1
	referenceHeightDivisor = 3.1
)

var (
	BackgroundColor = color.RGBA{255, 255, 255, 255}
	PointerColor    = color.RGBA{255, 0, 0, 255}
	ReferenceColor  = color.RGBA{0, 255, 0, 255}
	ProjectionColor = color.RGBA{0, 0, 255, 255}
	RejectionColor  = color.RGBA{120, 120, 120, 255}
	ReadoutColor    = color.RGBA{40, 40, 40, 255}
)

// Frame is everything a redraw depends on
type Frame struct {
	Width   float64
	Height  float64
	Pointer geometry.Vector // absolute surface coordinates
}

type Options struct {
	ReferenceLength float64
	StrokeWidth     float64
	ShowReadout     bool
}

func DefaultOptions() Options {
	return Options{
		ReferenceLength: DefaultReferenceLength,
		StrokeWidth:     DefaultStrokeWidth,
		ShowReadout:     true,
	}
}

// Layout holds the vectors of one frame. All vectors except Center are relative to Center.
type Layout struct {
	Center     geometry.Vector
	Pointer    geometry.Vector
	Reference  geometry.Vector
	Projection geometry.Vector
	Rejection  geometry.Vector
	Dot        float64
	Angle      float64
}

func Compute(frame Frame, opts Options) Layout {
	center := geometry.Vector{X: frame.Width / 2, Y: frame.Height / 2}
	pointer := frame.Pointer.Sub(center)

	reference := geometry.Vector{
		X: frame.Width / referenceWidthDivisor,
		Y: frame.Height / referenceHeightDivisor,
	}.Normalize().Scale(opts.ReferenceLength)

	return Layout{
		Center:     center,
		Pointer:    pointer,
		Reference:  reference,
		Projection: geometry.Projection(pointer, reference),
		Rejection:  geometry.Rejection(pointer, reference),
		Dot:        geometry.Dot(pointer, reference),
		Angle:      geometry.AngleBetween(pointer, reference),
	}
}

// Render clears the canvas and draws the frame. Degenerate input is not
// treated specially, NaN values flow through to the canvas.
func Render(c Canvas, frame Frame, opts Options) Layout {
	layout := Compute(frame, opts)

	c.Clear(BackgroundColor)

	drawSegment(c, layout.Center, layout.Pointer, PointerColor, opts.StrokeWidth)
	drawSegment(c, layout.Center, layout.Reference, ReferenceColor, opts.StrokeWidth)

	c.SetFillColor(PointerColor)
	tip := layout.Center.Add(layout.Pointer)
	c.DrawText(FormatAngle(layout.Angle), tip.X, tip.Y)

	drawSegment(c, layout.Center, layout.Projection, ProjectionColor, opts.StrokeWidth)
	drawSegment(c, layout.Center, layout.Rejection, RejectionColor, opts.StrokeWidth)

	if opts.ShowReadout {
		drawReadout(c, layout)
	}

	return layout
}

func FormatAngle(angle float64) string {
	return fmt.Sprintf("%.4f", angle)
}

func drawSegment(c Canvas, from, to geometry.Vector, clr color.Color, width float64) {
	c.Save()
	c.Translate(from.X, from.Y)
	c.SetStrokeColor(clr)
	c.SetStrokeWidth(width)
	c.DrawLine(0, 0, to.X, to.Y)
	c.Restore()
}

func readoutLines(layout Layout) []string {
	return []string{
		fmt.Sprintf("angle: %.4f rad", layout.Angle),
		fmt.Sprintf("dot: %.2f", layout.Dot),
		fmt.Sprintf("|proj|: %.2f", layout.Projection.Magnitude()),
		fmt.Sprintf("|rej|: %.2f", layout.Rejection.Magnitude()),
	}
}

func drawReadout(c Canvas, layout Layout) {
	c.SetFillColor(ReadoutColor)
	for i, line := range readoutLines(layout) {
		c.DrawText(line, 20, 30+float64(i)*30)
	}
}
