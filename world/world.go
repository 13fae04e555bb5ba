package world

import (
	"github.com/df-mc/redstone/cube"
	"github.com/df-mc/redstone/tick"
)

// ActionKind distinguishes the shapes of side-channel event BlockAction
// can carry.
type ActionKind int

const (
	// ActionPistonExtend marks the start of an extend animation.
	ActionPistonExtend ActionKind = iota
	// ActionPistonRetract marks the start of a retract animation.
	ActionPistonRetract
	// ActionPlayNote marks a note block sounding (§4.7): Instrument and
	// Note carry the data a client needs to play the right sound.
	ActionPlayNote
)

// Action is a side-channel event emitted via BlockAction. It drives
// client-visible animation/sound and never mutates world state.
type Action struct {
	Kind       ActionKind
	Instrument string
	Note       uint8
}

// World is the narrow interface the redstone rule engine is written
// against (§4.2). It is implemented by Simulator, and by any other
// world-like owner (a compiled backend's own snapshot, a test double)
// that wants to drive the same rules.
type World interface {
	GetBlock(pos cube.Pos) Block
	// SetBlock replaces the block at pos and reports whether the write
	// actually changed anything, so callers can skip neighbour fanout on
	// a no-op write.
	SetBlock(pos cube.Pos, b Block) (changed bool)
	GetBlockEntity(pos cube.Pos) (BlockEntity, bool)
	SetBlockEntity(pos cube.Pos, be BlockEntity)
	DeleteBlockEntity(pos cube.Pos)
	ScheduleTick(pos cube.Pos, delayTicks int, priority tick.Priority)
	ScheduleHalfTick(pos cube.Pos, delayHalfTicks int, priority tick.Priority)
	PendingTickAt(pos cube.Pos) bool
	BlockAction(pos cube.Pos, action Action)
}
