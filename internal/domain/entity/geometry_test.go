package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Edges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}

	assert.Equal(t, 40.0, r.Right())
	assert.Equal(t, 60.0, r.Bottom())
	assert.Equal(t, 1200.0, r.Area())

	cx, cy := r.Center()
	assert.Equal(t, 25.0, cx)
	assert.Equal(t, 40.0, cy)

	assert.Equal(t, Rect{X: 0.5, Y: 0.5, Width: 99, Height: 99}, Canvas.Inset(0.5))
}

func TestRect_Intersects(t *testing.T) {
	left := Rect{X: 0, Y: 0, Width: 50, Height: 100}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{name: "touching edge", other: Rect{X: 50, Y: 0, Width: 50, Height: 100}, want: false},
		{name: "overlap", other: Rect{X: 49, Y: 10, Width: 10, Height: 10}, want: true},
		{name: "disjoint", other: Rect{X: 60, Y: 0, Width: 10, Height: 10}, want: false},
		{name: "contained", other: Rect{X: 10, Y: 10, Width: 5, Height: 5}, want: true},
		{name: "overlap below eps", other: Rect{X: 49.9999999, Y: 0, Width: 10, Height: 10}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, left.Intersects(tt.other, 1e-6))
			assert.Equal(t, tt.want, tt.other.Intersects(left, 1e-6))
		})
	}
}
