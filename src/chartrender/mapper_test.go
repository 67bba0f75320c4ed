package chartrender

import (
	"math"
	"testing"
)

func TestMapperX(t *testing.T) {
	m := Mapper{W: 1000, H: 600}
	cases := []struct {
		outdoor float64
		want    float64
	}{
		{20, 0},
		{-20, 1000},
		{0, 500},
		{10, 250},
	}
	for _, c := range cases {
		if got := m.X(c.outdoor); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("X(%v) = %v, want %v", c.outdoor, got, c.want)
		}
	}
}

func TestMapperY(t *testing.T) {
	m := Mapper{W: 1000, H: 600}
	cases := []struct {
		flow float64
		want float64
	}{
		{20, 600},
		{90, 0},
		{55, 300},
	}
	for _, c := range cases {
		if got := m.Y(c.flow); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("Y(%v) = %v, want %v", c.flow, got, c.want)
		}
	}
}

func TestMapperDegenerateViewport(t *testing.T) {
	m := Mapper{}
	if got := m.X(5); got != 0 {
		t.Fatalf("X with zero width = %v, want 0", got)
	}
	if got := m.Y(55); got != 0 {
		t.Fatalf("Y with zero height = %v, want 0", got)
	}
}
