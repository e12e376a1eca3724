package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceFromPointToLine(t *testing.T) {
	tests := []struct {
		name     string
		point    Vector
		start    Vector
		end      Vector
		expected float64
	}{
		{"above horizontal line", Vector{3, 4}, Vector{0, 0}, Vector{1, 0}, 4},
		{"on the line", Vector{5, 5}, Vector{0, 0}, Vector{2, 2}, 0},
		{"beyond segment end", Vector{10, -2}, Vector{0, 0}, Vector{1, 0}, 2},
		{"offset line", Vector{1, 3}, Vector{0, 1}, Vector{4, 1}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, DistanceFromPointToLine(tt.point, tt.start, tt.end), 1e-9)
		})
	}
}
