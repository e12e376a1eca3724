package input

import "github.com/meghashyamc/projection2d/geometry"

// PointerTracker turns sampled cursor positions into pointer-move events.
type PointerTracker struct {
	lastPos geometry.Vector
	sampled bool
}

func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

// Poll records the cursor position and reports whether it moved since the last poll.
// The first poll always counts as a move.
func (p *PointerTracker) Poll(x, y int) (geometry.Vector, bool) {
	currentPos := geometry.Vector{X: float64(x), Y: float64(y)}
	moved := !p.sampled || currentPos != p.lastPos

	p.lastPos = currentPos
	p.sampled = true

	return currentPos, moved
}

// Position returns the last sampled cursor position
func (p *PointerTracker) Position() geometry.Vector {
	return p.lastPos
}

// Reset forgets the last sample so the next poll is reported as a move
func (p *PointerTracker) Reset() {
	p.sampled = false
}
