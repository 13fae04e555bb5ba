package redstone

import (
	"github.com/df-mc/redstone/cube"
	"github.com/df-mc/redstone/tick"
	"github.com/df-mc/redstone/world"
)

// PressButton powers a button and schedules its auto-unpress tick. It is
// the entry point an interaction layer calls; the core itself never
// presses a button on its own.
func PressButton(b world.Button, w world.World, pos cube.Pos, delayTicks int, priority tick.Priority) {
	if b.Powered {
		return
	}
	b.Powered = true
	w.SetBlock(pos, b)
	UpdateSurroundingBlocks(w, pos)
	updateBehindButtonMount(b, w, pos)
	w.ScheduleTick(pos, delayTicks, priority)
}

func tickButton(b world.Button, w world.World, pos cube.Pos) {
	if !b.Powered {
		return
	}
	b.Powered = false
	w.SetBlock(pos, b)
	UpdateSurroundingBlocks(w, pos)
	updateBehindButtonMount(b, w, pos)
}

func updateBehindButtonMount(b world.Button, w world.World, pos cube.Pos) {
	mount := pos.Side(b.Face.Opposite())
	UpdateSurroundingBlocks(w, mount)
}
