package redstone

import (
	"github.com/df-mc/redstone/cube"
	"github.com/df-mc/redstone/tick"
	"github.com/df-mc/redstone/world"
)

// RedstoneLampShouldBeLit reports whether any of pos's six neighbours
// delivers power into pos - the same "any face powered" query Lamp,
// IronTrapdoor and NoteBlock all share (§4.7).
func RedstoneLampShouldBeLit(w world.World, pos cube.Pos) bool {
	for _, face := range cube.Faces() {
		np := pos.Side(face)
		nb := w.GetBlock(np)
		if GetRedstonePower(nb, w, np, face) > 0 {
			return true
		}
	}
	return false
}

func updateLamp(l world.Lamp, w world.World, pos cube.Pos) {
	shouldBeLit := RedstoneLampShouldBeLit(w, pos)
	if l.Lit && !shouldBeLit {
		w.ScheduleTick(pos, 2, tick.Normal)
	} else if !l.Lit && shouldBeLit {
		w.SetBlock(pos, world.Lamp{Lit: true})
	}
}

func tickLamp(l world.Lamp, w world.World, pos cube.Pos) {
	if l.Lit && !RedstoneLampShouldBeLit(w, pos) {
		w.SetBlock(pos, world.Lamp{Lit: false})
	}
}

func updateIronTrapdoor(t world.IronTrapdoor, w world.World, pos cube.Pos) {
	shouldBeOpen := RedstoneLampShouldBeLit(w, pos)
	if t.Open != shouldBeOpen {
		w.SetBlock(pos, world.IronTrapdoor{Open: shouldBeOpen})
	}
}
