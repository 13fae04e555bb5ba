package redstone

import (
	"testing"

	"github.com/df-mc/redstone/cube"
	"github.com/df-mc/redstone/world"
)

func TestInstrumentForReadsBlockBelow(t *testing.T) {
	w := newTestSimulator()
	pos := cube.Pos{0, 1, 0}
	w.SetBlock(pos.Side(cube.FaceDown), world.Lamp{Lit: true})

	if got := instrumentFor(w, pos); got != "harp" {
		t.Fatalf("expected an unrecognised block below to default to harp, got %q", got)
	}
}

func TestUpdateNoteBlockPlaysActionWhenPoweredAndUnblocked(t *testing.T) {
	w := newTestSimulator()
	pos := cube.Pos{0, 1, 0}
	n := world.NoteBlock{}
	w.SetBlock(pos, n)
	w.SetBlock(pos.Side(cube.FaceNorth), world.Lever{Face: cube.FaceUp, Powered: true})

	updateNoteBlock(n, w, pos)

	events := w.DrainActions()
	if len(events) != 1 {
		t.Fatalf("expected exactly one block action, got %d", len(events))
	}
	if events[0].Action.Kind != world.ActionPlayNote {
		t.Fatalf("expected an ActionPlayNote event")
	}
	if !w.GetBlock(pos).(world.NoteBlock).Powered {
		t.Fatalf("expected the note block to latch powered")
	}
}

func TestUpdateNoteBlockSilentWhenBlockedAbove(t *testing.T) {
	w := newTestSimulator()
	pos := cube.Pos{0, 1, 0}
	n := world.NoteBlock{}
	w.SetBlock(pos, n)
	w.SetBlock(pos.Side(cube.FaceUp), world.Lamp{Lit: true})
	w.SetBlock(pos.Side(cube.FaceNorth), world.Lever{Face: cube.FaceUp, Powered: true})

	updateNoteBlock(n, w, pos)

	if len(w.DrainActions()) != 0 {
		t.Fatalf("expected no action when the space above is blocked")
	}
	if !w.GetBlock(pos).(world.NoteBlock).Powered {
		t.Fatalf("expected the note block to still latch powered even when silent")
	}
}
