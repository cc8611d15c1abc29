package core

import "testing"

func TestVelocityAdvance(t *testing.T) {
	tests := []struct {
		name     string
		v        Velocity
		p        Position
		dt       float64
		expected Position
	}{
		{
			name:     "simple integration",
			v:        Velocity{DX: 10, DY: -5},
			p:        Position{X: 0, Y: 0},
			dt:       1,
			expected: Position{X: 10, Y: -5},
		},
		{
			name:     "fractional dt",
			v:        Velocity{DX: 10, DY: 20},
			p:        Position{X: 1, Y: 2},
			dt:       0.5,
			expected: Position{X: 6, Y: 12},
		},
		{
			name:     "zero dt",
			v:        Velocity{DX: 10, DY: 20},
			p:        Position{X: 3, Y: 4},
			dt:       0,
			expected: Position{X: 3, Y: 4},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.Advance(tc.p, tc.dt); got != tc.expected {
				t.Errorf("Advance(%v, %g) = %v, expected %v", tc.p, tc.dt, got, tc.expected)
			}
		})
	}
}

func TestZeroVelocityIdempotent(t *testing.T) {
	var v Velocity
	p := Position{X: 12, Y: 34}

	for i := 0; i < 100; i++ {
		p = v.Advance(p, 1.0/60)
	}

	if p != (Position{X: 12, Y: 34}) {
		t.Errorf("position drifted to %v under zero velocity", p)
	}
}

func TestVelocityMutators(t *testing.T) {
	v := Velocity{DX: 3, DY: -4}

	v.ReverseY()
	if v != (Velocity{DX: 3, DY: 4}) {
		t.Errorf("after ReverseY: %v", v)
	}

	v.ReverseX()
	if v != (Velocity{DX: -3, DY: 4}) {
		t.Errorf("after ReverseX: %v", v)
	}

	v.Scale(2)
	if v != (Velocity{DX: -6, DY: 8}) {
		t.Errorf("after Scale(2): %v", v)
	}

	v.StopX()
	if v != (Velocity{DX: 0, DY: 8}) {
		t.Errorf("after StopX: %v", v)
	}

	v.Stop()
	if v != (Velocity{}) {
		t.Errorf("after Stop: %v", v)
	}
}

func TestVelocityDirectionalSetters(t *testing.T) {
	var v Velocity

	// Speed sign is normalized by the setters
	v.MoveUp(-5)
	if v.DY != -5 {
		t.Errorf("MoveUp(-5): DY = %g, expected -5", v.DY)
	}

	v.MoveDown(-5)
	if v.DY != 5 {
		t.Errorf("MoveDown(-5): DY = %g, expected 5", v.DY)
	}

	v.MoveLeft(3)
	if v.DX != -3 {
		t.Errorf("MoveLeft(3): DX = %g, expected -3", v.DX)
	}

	v.MoveRight(3)
	if v.DX != 3 {
		t.Errorf("MoveRight(3): DX = %g, expected 3", v.DX)
	}
}
