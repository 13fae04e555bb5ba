package redstone

import (
	"github.com/df-mc/redstone/cube"
	"github.com/df-mc/redstone/tick"
	"github.com/df-mc/redstone/world"
)

// TorchShouldBeOff reports whether the block a standing torch rests on
// is powered (§4.7): a torch is an inverter of its support block's
// power.
func TorchShouldBeOff(w world.World, pos cube.Pos) bool {
	bp := pos.Side(cube.FaceDown)
	b := w.GetBlock(bp)
	return GetRedstonePower(b, w, bp, cube.FaceUp) > 0
}

// WallTorchShouldBeOff reports whether the block a wall torch is
// attached to (in direction d) is powered.
func WallTorchShouldBeOff(w world.World, pos cube.Pos, d cube.Direction) bool {
	wallFace := d.Opposite().Face()
	wp := pos.Side(wallFace)
	b := w.GetBlock(wp)
	return GetRedstonePower(b, w, wp, wallFace) > 0
}

func updateTorch(t world.Torch, w world.World, pos cube.Pos) {
	if t.Lit == TorchShouldBeOff(w, pos) && !w.PendingTickAt(pos) {
		w.ScheduleTick(pos, 1, tick.Normal)
	}
}

func updateWallTorch(t world.WallTorch, w world.World, pos cube.Pos) {
	if t.Lit == WallTorchShouldBeOff(w, pos, t.Facing) && !w.PendingTickAt(pos) {
		w.ScheduleTick(pos, 1, tick.Normal)
	}
}

func tickTorch(t world.Torch, w world.World, pos cube.Pos) {
	shouldBeOff := TorchShouldBeOff(w, pos)
	if t.Lit && shouldBeOff {
		w.SetBlock(pos, world.Torch{Lit: false})
		onTorchStateChange(w, pos)
	} else if !t.Lit && !shouldBeOff {
		w.SetBlock(pos, world.Torch{Lit: true})
		onTorchStateChange(w, pos)
	}
}

func tickWallTorch(t world.WallTorch, w world.World, pos cube.Pos) {
	shouldBeOff := WallTorchShouldBeOff(w, pos, t.Facing)
	if t.Lit && shouldBeOff {
		w.SetBlock(pos, world.WallTorch{Facing: t.Facing, Lit: false})
		onTorchStateChange(w, pos)
	} else if !t.Lit && !shouldBeOff {
		w.SetBlock(pos, world.WallTorch{Facing: t.Facing, Lit: true})
		onTorchStateChange(w, pos)
	}
}

// onTorchStateChange fans out using the piston-skipping variant (§4.7):
// a torch flip must not spuriously re-evaluate an adjacent piston, since
// a piston's own power sensing already reads through the torch directly.
func onTorchStateChange(w world.World, pos cube.Pos) {
	SkippingUpdateSurroundingBlocks(w, pos, true)
}
