package redstone

import (
	"github.com/df-mc/redstone/cube"
	"github.com/df-mc/redstone/tick"
	"github.com/df-mc/redstone/world"
)

// Update dispatches a neighbour-update event to the rule for block's
// concrete variant (§4 component design, mirroring the original source's
// `update` dispatch in mod.rs). dir is the face the update arrived from,
// when known; some rules (Observer) only react to updates from a
// specific direction.
func Update(block world.Block, w world.World, pos cube.Pos, dir *cube.Face) {
	switch b := block.(type) {
	case world.Wire:
		OnNeighborUpdated(b, w, pos)
	case world.Torch:
		updateTorch(b, w, pos)
	case world.WallTorch:
		updateWallTorch(b, w, pos)
	case world.Repeater:
		updateRepeater(b, w, pos)
	case world.Comparator:
		updateComparator(b, w, pos)
	case world.Lamp:
		updateLamp(b, w, pos)
	case world.IronTrapdoor:
		updateIronTrapdoor(b, w, pos)
	case world.Piston:
		UpdatePistonState(b, w, pos)
	case world.PistonHead:
		pp := pos.Side(b.Facing.Opposite().Face())
		if piston, ok := w.GetBlock(pp).(world.Piston); ok {
			UpdatePistonState(piston, w, pp)
		}
	case world.Observer:
		if dir != nil && b.Facing.Face() == *dir && !b.Powered && !w.PendingTickAt(pos) {
			w.ScheduleTick(pos, 1, tick.Normal)
		}
	case world.NoteBlock:
		updateNoteBlock(b, w, pos)
	}
}

// Tick dispatches a scheduled-tick event to the rule for block's concrete
// variant, mirroring mod.rs's `tick` dispatch.
func Tick(block world.Block, w world.World, pos cube.Pos) {
	switch b := block.(type) {
	case world.Repeater:
		tickRepeater(b, w, pos)
	case world.Comparator:
		tickComparator(b, w, pos)
	case world.Torch:
		tickTorch(b, w, pos)
	case world.WallTorch:
		tickWallTorch(b, w, pos)
	case world.Lamp:
		tickLamp(b, w, pos)
	case world.Button:
		tickButton(b, w, pos)
	case world.Observer:
		tickObserver(b, w, pos)
	case world.Piston:
		PistonTick(b, w, pos)
	case world.MovingPiston:
		MovingPistonTick(b, w, pos)
	}
}

// UpdateSurroundingBlocks fans an update out to the full neighbourhood of
// pos: the six direct neighbours, plus the diagonal block directly above
// and below each of those (§4, "the referent game's observed
// behaviour").
func UpdateSurroundingBlocks(w world.World, pos cube.Pos) {
	SkippingUpdateSurroundingBlocks(w, pos, false)
}

// SkippingUpdateSurroundingBlocks is UpdateSurroundingBlocks with an
// option to skip updating a diagonal Piston - used by torch state
// changes (§4.7) to avoid a torch flip spuriously re-triggering a piston
// that merely happens to sit diagonally adjacent.
func SkippingUpdateSurroundingBlocks(w world.World, pos cube.Pos, skipPistons bool) {
	for _, face := range cube.Faces() {
		np := pos.Side(face)
		Update(w.GetBlock(np), w, np, ptr(face.Opposite()))

		up := np.Side(cube.FaceUp)
		upBlock := w.GetBlock(up)
		if !skipPistons {
			Update(upBlock, w, up, ptr(cube.FaceDown))
		} else if _, isPiston := upBlock.(world.Piston); !isPiston {
			Update(upBlock, w, up, ptr(cube.FaceDown))
		}

		down := np.Side(cube.FaceDown)
		downBlock := w.GetBlock(down)
		if !skipPistons {
			Update(downBlock, w, down, ptr(cube.FaceUp))
		} else if _, isPiston := downBlock.(world.Piston); !isPiston {
			Update(downBlock, w, down, ptr(cube.FaceUp))
		}
	}
}

// UpdateWireNeighbors updates each of pos's six neighbours and then each
// of that neighbour's own six neighbours (§4.4) - wider than the 6-face
// neighbourhood, since a wire's power change can affect diodes and
// torches sitting diagonally across a solid block. This reaches the 12
// edge-diagonal blocks of the 3x3x3 cube around pos and the six blocks
// two steps away along each axis; the eight corner blocks of that cube
// are not updated.
func UpdateWireNeighbors(w world.World, pos cube.Pos) {
	for _, face := range cube.Faces() {
		np := pos.Side(face)
		Update(w.GetBlock(np), w, np, ptr(face.Opposite()))
		for _, face2 := range cube.Faces() {
			nnp := np.Side(face2)
			Update(w.GetBlock(nnp), w, nnp, ptr(face2.Opposite()))
		}
	}
}

// OnStateChange fans an update out from a piston/observer head position
// (§4.8, §4.9): the block directly in front of facing, then every one of
// that block's six neighbours.
func OnStateChange(facing cube.Facing, w world.World, pos cube.Pos) {
	frontPos := pos.Side(facing.Opposite().Face())
	frontBlock := w.GetBlock(frontPos)
	Update(frontBlock, w, frontPos, ptr(facing.Face()))
	for _, face := range cube.Faces() {
		np := frontPos.Side(face)
		Update(w.GetBlock(np), w, np, ptr(face.Opposite()))
	}
}
