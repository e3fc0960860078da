package components

import (
	"math"
	"testing"
)

func TestCellAdd(t *testing.T) {
	c := Cell{X: 10, Y: 10}
	if got := c.Add(DirectionRight); got != (Cell{X: 11, Y: 10}) {
		t.Errorf("Add(right) = %+v", got)
	}
	if got := c.Add(DirectionUp); got != (Cell{X: 10, Y: 9}) {
		t.Errorf("Add(up) = %+v", got)
	}
	if got := c.Add(DirectionNone); got != c {
		t.Errorf("Add(none) = %+v", got)
	}
}

func TestVelocityIsOpposite(t *testing.T) {
	tests := []struct {
		a, b Velocity
		want bool
	}{
		{DirectionRight, DirectionLeft, true},
		{DirectionLeft, DirectionRight, true},
		{DirectionUp, DirectionDown, true},
		{DirectionRight, DirectionUp, false},
		{DirectionRight, DirectionRight, false},
		{DirectionNone, DirectionLeft, false},
		{DirectionLeft, DirectionNone, false},
		{DirectionNone, DirectionNone, false},
	}

	for _, tt := range tests {
		if got := tt.a.IsOpposite(tt.b); got != tt.want {
			t.Errorf("%+v.IsOpposite(%+v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestVelocityAngle(t *testing.T) {
	tests := []struct {
		v    Velocity
		want float64
	}{
		{DirectionRight, 0},
		{DirectionLeft, math.Pi},
		{DirectionUp, -math.Pi / 2},
		{DirectionDown, math.Pi / 2},
		{DirectionNone, 0},
	}

	for _, tt := range tests {
		if got := tt.v.Angle(); got != tt.want {
			t.Errorf("%+v.Angle() = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 30}

	if !r.Contains(10, 20) || !r.Contains(110, 50) || !r.Contains(60, 35) {
		t.Error("expected points on and inside the edges to be contained")
	}
	if r.Contains(9, 20) || r.Contains(111, 35) || r.Contains(60, 51) {
		t.Error("expected outside points to be rejected")
	}
}

func TestSpriteRoleResourceID(t *testing.T) {
	seen := make(map[string]bool)
	for _, role := range AllSpriteRoles {
		id := role.ResourceID()
		if id == "" {
			t.Errorf("role %d has no resource ID", role)
		}
		if seen[id] {
			t.Errorf("duplicate resource ID %s", id)
		}
		seen[id] = true
	}
}

func TestEffectTypeString(t *testing.T) {
	if EffectPersistHighScore.String() != "PersistHighScore" {
		t.Errorf("unexpected name %q", EffectPersistHighScore.String())
	}
	if EffectType(99).String() != "Unknown" {
		t.Errorf("unexpected name for unknown effect")
	}
}
