package redstone

import (
	"log/slog"

	"github.com/df-mc/redstone/cube"
	"github.com/df-mc/redstone/tick"
	"github.com/df-mc/redstone/world"
)

// pistonLog receives warnings for the inconsistent-world-state cases
// §4.8/§7 call out (a MovingPiston block missing its entity, geometry
// that doesn't match an in-flight animation). It defaults to
// slog.Default(); callers running a Simulator should call SetLogger with
// the simulator's own logger so these warnings land in the same sink as
// everything else.
var pistonLog = slog.Default()

// SetLogger points the redstone package's inconsistent-state warnings
// (§7 kind 3) at log. Call this once per Simulator, or leave it at the
// default for single-simulator processes.
func SetLogger(log *slog.Logger) { pistonLog = log }

// ShouldPistonExtend implements the piston power-sensing rule (§4.8): the
// five non-facing adjacent sides, plus the six sides of the block
// directly above the piston (the BUD-immunity rule), can all extend it;
// the piston never powers itself off its own facing side.
func ShouldPistonExtend(p world.Piston, w world.World, pos cube.Pos) bool {
	for _, face := range cube.Faces() {
		if face == p.Facing.Face() {
			continue
		}
		np := pos.Side(face)
		nb := w.GetBlock(np)
		if GetRedstonePower(nb, w, np, face) > 0 {
			return true
		}
	}
	above := pos.Side(cube.FaceUp)
	for _, face := range cube.Faces() {
		np := above.Side(face)
		nb := w.GetBlock(np)
		if GetRedstonePower(nb, w, np, face) > 0 {
			return true
		}
	}
	return false
}

// UpdatePistonState implements §4.8's update_piston_state: on any
// neighbour update, a piston whose desired state disagrees with its
// current state schedules a zero-delay (NanoTick) re-evaluation, unless
// one is already pending.
func UpdatePistonState(p world.Piston, w world.World, pos cube.Pos) {
	if ShouldPistonExtend(p, w, pos) != p.Extended && !w.PendingTickAt(pos) {
		w.ScheduleHalfTick(pos, 0, tick.NanoTick)
	}
}

// PistonTick implements §4.8's piston_tick: re-evaluate ShouldExtend, and
// if still inconsistent with the base block's Extended flag, prime the
// corresponding animation.
func PistonTick(p world.Piston, w world.World, pos cube.Pos) {
	shouldExtend := ShouldPistonExtend(p, w, pos)
	if shouldExtend == p.Extended {
		return
	}
	if shouldExtend {
		ScheduleExtend(p, w, pos)
	} else {
		ScheduleRetract(p, w, pos)
	}
}

// ScheduleExtend primes an extend animation at piston P facing F (§4.8).
// It is an animation primer, not a final placement: the actual base
// piston/head swap happens when the animation completes in
// MovingPistonTick.
func ScheduleExtend(p world.Piston, w world.World, pos cube.Pos) {
	h := pos.Side(p.Facing.Face())
	b := PushColumn(w, pos, p.Facing)[0]

	switch b.(type) {
	case world.MovingPiston:
		// An animation is already in flight; refuse to re-enter.
		return
	case world.PistonHead:
		if !p.Extended {
			p.Extended = true
			w.SetBlock(pos, p)
		}
		return
	}

	extendable := !world.HasBlockEntity(b) || !world.IsCube(b)
	if !extendable {
		return
	}

	w.DeleteBlockEntity(h)
	w.SetBlock(h, world.MovingPiston{Facing: p.Facing, Sticky: p.Sticky})
	w.SetBlockEntity(h, world.MovingPistonEntity{
		Extending:   true,
		Facing:      int32(p.Facing),
		Progress:    0,
		Source:      true,
		PushedBlock: b,
	})
	w.ScheduleTick(h, 1, tick.Normal)
	w.ScheduleHalfTick(pos, 3, tick.Normal)
	w.BlockAction(pos, world.Action{Kind: world.ActionPistonExtend})
}

// ScheduleRetract primes a retract animation at piston P (§4.8).
func ScheduleRetract(p world.Piston, w world.World, pos cube.Pos) {
	h := pos.Side(p.Facing.Face())
	hb := w.GetBlock(h)

	_, isHead := hb.(world.PistonHead)
	_, isAir := hb.(world.Air)
	if !isHead && !isAir {
		return
	}
	if isAir && p.Extended {
		// Self-heal: the head vanished out from under an extended
		// piston; put it back rather than starting a spurious retract.
		w.SetBlock(h, world.PistonHead{Facing: p.Facing, Sticky: p.Sticky})
		return
	}

	l := h.Side(p.Facing.Face())
	pulled := world.Block(world.Air{})
	if p.Sticky {
		lb := w.GetBlock(l)
		if world.IsCube(lb) && !world.HasBlockEntity(lb) {
			pulled = lb
			w.SetBlock(l, world.Air{})
		}
	}

	w.SetBlock(h, world.MovingPiston{Facing: p.Facing, Sticky: p.Sticky})
	w.SetBlockEntity(h, world.MovingPistonEntity{
		Extending:   false,
		Facing:      int32(p.Facing),
		Progress:    0,
		Source:      false,
		PushedBlock: pulled,
	})
	w.ScheduleTick(h, 1, tick.Normal)
	w.ScheduleHalfTick(pos, 3, tick.Normal)
	w.BlockAction(pos, world.Action{Kind: world.ActionPistonRetract})
}

// MovingPistonTick implements §4.8's moving_piston_tick: the animation at
// H completes, the entity is consumed, and the base/head/pushed-block
// triple is resolved into its steady state.
func MovingPistonTick(m world.MovingPiston, w world.World, h cube.Pos) {
	be, ok := w.GetBlockEntity(h)
	if !ok {
		pistonLog.Warn("moving piston block without entity", "pos", h)
		return
	}
	entity, ok := be.(world.MovingPistonEntity)
	if !ok {
		pistonLog.Warn("moving piston block entity has wrong type", "pos", h)
		return
	}
	w.DeleteBlockEntity(h)

	facing := cube.Facing(entity.Facing)
	pistonPos := h.Side(facing.Opposite().Face())
	w.SetBlock(pistonPos, world.Piston{Facing: facing, Extended: entity.Extending, Sticky: m.Sticky})

	updatePushed := false
	if entity.Extending {
		w.SetBlock(h, world.PistonHead{Facing: facing, Sticky: m.Sticky, Short: false})
		if entity.PushedBlock != nil && world.IsCube(entity.PushedBlock) && !world.HasBlockEntity(entity.PushedBlock) {
			pushTo := h.Side(facing.Face())
			w.SetBlock(pushTo, entity.PushedBlock)
			updatePushed = true
		}
	} else {
		if m.Sticky && entity.PushedBlock != nil {
			w.SetBlock(h, entity.PushedBlock)
		} else {
			w.SetBlock(h, world.Air{})
		}
	}

	onPistonStateChange(w, pistonPos, facing, updatePushed, false)
}

// PushColumn is the extension point for multi-block piston pushes.
// Column pushes (chains of up to 12 blocks ahead of the piston) are out
// of scope for this core (§9); this returns only the single block
// directly in front of the piston, matching how the original source's
// own stub resolves a push before its column logic runs.
func PushColumn(w world.World, pos cube.Pos, facing cube.Facing) []world.Block {
	return []world.Block{w.GetBlock(pos.Side(facing.Face()))}
}

// onPistonStateChange reuses the shared on_state_change fanout (§4.8/§4.9,
// OnStateChange) for the head and its neighbours, then layers on the
// piston-specific fanout pieces: the push target's own neighbours once a
// block actually lands there, and - only when updateBase is set - the
// base's five non-facing neighbours. MovingPistonTick, the only caller,
// passes updateBase false, and neither UpdatePistonState nor
// ScheduleExtend/ScheduleRetract fans out the base's neighbours, so the
// base's neighbours are not updated at either end of an animation.
func onPistonStateChange(w world.World, pistonPos cube.Pos, facing cube.Facing, updatePushed, updateBase bool) {
	// OnStateChange fans out from pos.Side(facing.Opposite().Face()),
	// which is correct for an observer's back-facing output but would
	// land behind the piston instead of at its head; passing the
	// opposite facing here redirects the fanout to the working face.
	OnStateChange(facing.Opposite(), w, pistonPos)

	if updatePushed {
		headPos := pistonPos.Side(facing.Face())
		pushPos := headPos.Side(facing.Face())
		for _, face := range cube.Faces() {
			np := pushPos.Side(face)
			Update(w.GetBlock(np), w, np, ptr(face.Opposite()))
		}
	}
	if updateBase {
		for _, face := range cube.Faces() {
			if face == facing.Face() {
				continue
			}
			np := pistonPos.Side(face)
			Update(w.GetBlock(np), w, np, ptr(face.Opposite()))
		}
	}
}
