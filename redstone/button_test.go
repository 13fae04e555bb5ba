package redstone

import (
	"testing"

	"github.com/df-mc/redstone/cube"
	"github.com/df-mc/redstone/tick"
	"github.com/df-mc/redstone/world"
)

func TestPressButtonPowersAndSchedulesAutoUnpress(t *testing.T) {
	w := newTestSimulator()
	pos := cube.Pos{0, 0, 0}
	b := world.Button{Face: cube.FaceUp}
	w.SetBlock(pos, b)

	PressButton(b, w, pos, 1, tick.Normal)

	if !w.GetBlock(pos).(world.Button).Powered {
		t.Fatalf("expected PressButton to power the button")
	}
	if !w.PendingTickAt(pos) {
		t.Fatalf("expected PressButton to schedule its auto-unpress tick")
	}
}

func TestPressButtonIsNoOpWhenAlreadyPowered(t *testing.T) {
	w := newTestSimulator()
	pos := cube.Pos{0, 0, 0}
	b := world.Button{Face: cube.FaceUp, Powered: true}
	w.SetBlock(pos, b)

	PressButton(b, w, pos, 1, tick.Normal)

	if w.PendingTickAt(pos) {
		t.Fatalf("expected pressing an already-powered button not to reschedule")
	}
}

func TestTickButtonUnpresses(t *testing.T) {
	w := newTestSimulator()
	pos := cube.Pos{0, 0, 0}
	b := world.Button{Face: cube.FaceUp, Powered: true}
	w.SetBlock(pos, b)

	tickButton(b, w, pos)

	if w.GetBlock(pos).(world.Button).Powered {
		t.Fatalf("expected tickButton to unpress the button")
	}
}
