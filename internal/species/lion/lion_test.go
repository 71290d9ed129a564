package lion

import (
	"testing"

	"github.com/vovakirdan/critters/internal/core"
	"github.com/vovakirdan/critters/internal/critter/crittertest"
)

func TestDecide(t *testing.T) {
	open := crittertest.Open(core.South)

	wallRight := open
	wallRight.RightN = core.NeighborWall

	tests := []struct {
		name string
		info crittertest.Perception
		want core.Action
	}{
		{"enemy ahead", open.WithFront(core.NeighborOther), core.ActionInfect},
		{"wall ahead", open.WithFront(core.NeighborWall), core.ActionLeft},
		{"wall on the right", wallRight, core.ActionLeft},
		{"friend ahead", open.WithFront(core.NeighborSame), core.ActionRight},
		{"open ground", open, core.ActionHop},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := New().Decide(tc.info); got != tc.want {
				t.Errorf("Decide() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestColorCycle(t *testing.T) {
	l := New()
	want := []core.Color{
		core.ColorRed, core.ColorRed, core.ColorRed,
		core.ColorGreen, core.ColorGreen, core.ColorGreen,
		core.ColorBlue, core.ColorBlue, core.ColorBlue,
		core.ColorRed,
	}
	for i, w := range want {
		if got := l.Color(); got != w {
			t.Errorf("after %d moves Color() = %v, expected %v", i, got, w)
		}
		l.Decide(crittertest.Open(core.North))
	}
}
