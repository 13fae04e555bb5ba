package redstone

import (
	"testing"

	"github.com/df-mc/redstone/cube"
	"github.com/df-mc/redstone/world"
)

func TestTorchShouldBeOffWhenSupportIsPowered(t *testing.T) {
	w := newTestSimulator()
	pos := cube.Pos{0, 1, 0}
	w.SetBlock(pos.Side(cube.FaceDown), world.Lever{Face: cube.FaceUp, Powered: true})

	if !TorchShouldBeOff(w, pos) {
		t.Fatalf("expected a torch on a powered support to be off")
	}
}

func TestTickTorchFlipsLitWhenSupportStateDiverges(t *testing.T) {
	w := newTestSimulator()
	pos := cube.Pos{0, 1, 0}
	w.SetBlock(pos, world.Torch{Lit: true})
	w.SetBlock(pos.Side(cube.FaceDown), world.Lever{Face: cube.FaceUp, Powered: true})

	tickTorch(world.Torch{Lit: true}, w, pos)

	if w.GetBlock(pos).(world.Torch).Lit {
		t.Fatalf("expected the torch to go out once its support is powered")
	}
}

func TestTickTorchNoOpWhenAlreadyConsistent(t *testing.T) {
	w := newTestSimulator()
	pos := cube.Pos{0, 1, 0}
	w.SetBlock(pos, world.Torch{Lit: true})

	tickTorch(world.Torch{Lit: true}, w, pos)

	if !w.GetBlock(pos).(world.Torch).Lit {
		t.Fatalf("expected an unsupported-by-power torch to remain lit")
	}
}

func TestWallTorchShouldBeOffChecksAttachedFace(t *testing.T) {
	w := newTestSimulator()
	pos := cube.Pos{0, 0, 0}
	w.SetBlock(pos.Side(cube.FaceSouth), world.Lever{Face: cube.FaceNorth, Powered: true})

	if !WallTorchShouldBeOff(w, pos, cube.DirectionNorth) {
		t.Fatalf("expected a wall torch attached to a powered wall to be off")
	}
}
