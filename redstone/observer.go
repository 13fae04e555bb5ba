package redstone

import (
	"github.com/df-mc/redstone/cube"
	"github.com/df-mc/redstone/tick"
	"github.com/df-mc/redstone/world"
)

// tickObserver toggles an observer's powered state and re-arms itself
// for the matching off pulse (§4.9): becoming powered always schedules
// one more tick to turn back off, producing the one-tick pulse shape.
func tickObserver(o world.Observer, w world.World, pos cube.Pos) {
	next := !o.Powered
	w.SetBlock(pos, world.Observer{Facing: o.Facing, Powered: next})
	if next {
		w.ScheduleTick(pos, 1, tick.Normal)
	}
	OnStateChange(o.Facing, w, pos)
}
