package redstone

import (
	"github.com/df-mc/redstone/cube"
	"github.com/df-mc/redstone/world"
)

// instrumentFor resolves a note block's instrument from whatever block
// sits directly beneath it, the same "block below decides the sound"
// rule the reference game uses so e.g. a note block on sand sounds
// different from one on stone.
func instrumentFor(w world.World, pos cube.Pos) string {
	below := w.GetBlock(pos.Side(cube.FaceDown))
	name, _ := below.EncodeBlock()
	switch name {
	case "minecraft:noteblock":
		return "bass"
	case "minecraft:glass":
		return "hat"
	case "minecraft:clay":
		return "flute"
	case "minecraft:gold_block":
		return "bell"
	case "minecraft:wool":
		return "guitar"
	case "minecraft:bone_block":
		return "xylophone"
	default:
		return "harp"
	}
}

// isNoteBlockUnblocked reports whether the space directly above the note
// block is air - a note is only audible with a clear space to resonate
// into.
func isNoteBlockUnblocked(w world.World, pos cube.Pos) bool {
	_, ok := w.GetBlock(pos.Side(cube.FaceUp)).(world.Air)
	return ok
}

func updateNoteBlock(n world.NoteBlock, w world.World, pos cube.Pos) {
	shouldBePowered := RedstoneLampShouldBeLit(w, pos)
	// Re-read the live block: the value passed in may be stale relative
	// to a write this same fan-out already performed.
	live, ok := w.GetBlock(pos).(world.NoteBlock)
	if !ok {
		return
	}
	if live.Powered == shouldBePowered {
		return
	}
	instrument := live.Instrument
	if shouldBePowered {
		instrument = instrumentFor(w, pos)
		if isNoteBlockUnblocked(w, pos) {
			w.BlockAction(pos, world.Action{Kind: world.ActionPlayNote, Instrument: instrument, Note: live.Note})
		}
	}
	w.SetBlock(pos, world.NoteBlock{Instrument: instrument, Note: live.Note, Powered: shouldBePowered})
}
