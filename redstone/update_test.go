package redstone

import (
	"testing"

	"github.com/df-mc/redstone/cube"
	"github.com/df-mc/redstone/world"
)

func TestUpdateDispatchesWireToOnNeighborUpdated(t *testing.T) {
	w := newTestSimulator()
	pos := cube.Pos{0, 0, 0}
	w.SetBlock(pos, world.Wire{Power: 0})
	w.SetBlock(pos.Side(cube.FaceNorth), world.Lever{Face: cube.FaceUp, Powered: true})

	Update(w.GetBlock(pos), w, pos, nil)

	if got := w.GetBlock(pos).(world.Wire).Power; got != 15 {
		t.Fatalf("expected Update to dispatch to the wire rule and pick up power, got %d", got)
	}
}

func TestUpdateDispatchesPistonHeadBackToItsBase(t *testing.T) {
	w := newTestSimulator()
	basePos := cube.Pos{0, 0, 0}
	headPos := cube.Pos{0, 0, 1}
	w.SetBlock(basePos, world.Piston{Facing: cube.FacingSouth, Extended: true})
	w.SetBlock(headPos, world.PistonHead{Facing: cube.FacingSouth})

	Update(w.GetBlock(headPos), w, headPos, nil)

	if !w.PendingTickAt(basePos) {
		t.Fatalf("expected updating a piston head to re-evaluate its base piston")
	}
}

func TestTickDispatchesPistonToPistonTick(t *testing.T) {
	w := newTestSimulator()
	pos := cube.Pos{0, 0, 0}
	p := world.Piston{Facing: cube.FacingNorth}
	w.SetBlock(pos, p)
	w.SetBlock(pos.Side(cube.FaceSouth), world.Lever{Face: cube.FaceUp, Powered: true})

	Tick(p, w, pos)

	if _, ok := w.GetBlock(pos.Side(cube.FaceNorth)).(world.MovingPiston); !ok {
		t.Fatalf("expected Tick to dispatch to PistonTick and install a MovingPiston, got %T", w.GetBlock(pos.Side(cube.FaceNorth)))
	}
}

func TestUpdateSurroundingBlocksReachesDirectNeighbours(t *testing.T) {
	w := newTestSimulator()
	pos := cube.Pos{0, 0, 0}
	w.SetBlock(pos, world.Lever{Face: cube.FaceUp, Powered: true})
	wirePos := pos.Side(cube.FaceNorth)
	w.SetBlock(wirePos, world.Wire{Power: 0})

	UpdateSurroundingBlocks(w, pos)

	if got := w.GetBlock(wirePos).(world.Wire).Power; got != 15 {
		t.Fatalf("expected the neighbouring wire to pick up power, got %d", got)
	}
}
