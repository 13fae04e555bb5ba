package world

import "github.com/df-mc/redstone/cube"

// Piston is the base block of the piston state machine (§4.8). While
// Extended is true, a PistonHead or MovingPiston occupies the block in
// front of it; a MovingPiston also occupies that block during an extend
// animation, before Extended is set.
type Piston struct {
	Facing   cube.Facing
	Extended bool
	Sticky   bool
}

// EncodeBlock implements Block.
func (p Piston) EncodeBlock() (string, map[string]any) {
	name := "minecraft:piston"
	if p.Sticky {
		name = "minecraft:sticky_piston"
	}
	return name, map[string]any{
		"facing_direction": facingName(p.Facing),
		"extended":         p.Extended,
	}
}

// PistonHead is the block left behind at the end of a piston's arm once
// an extend animation completes.
type PistonHead struct {
	Facing cube.Facing
	Sticky bool
	// Short marks a head placed without a full arm (unused by the
	// single-block-move core but kept for schematic round-tripping of
	// heads authored by the original game).
	Short bool
}

// EncodeBlock implements Block.
func (h PistonHead) EncodeBlock() (string, map[string]any) {
	name := "minecraft:piston_arm_collision"
	if h.Sticky {
		name = "minecraft:sticky_piston_arm_collision"
	}
	return name, map[string]any{
		"facing_direction": facingName(h.Facing),
	}
}

// MovingPiston is the transient block that occupies the head position
// while an extend/retract animation is in flight. Its BlockEntity (see
// blockentity.go) carries the animation's actual progress; the block
// itself just marks the position as "animation in progress, do not
// place anything else here".
type MovingPiston struct {
	Facing cube.Facing
	Sticky bool
}

// EncodeBlock implements Block.
func (m MovingPiston) EncodeBlock() (string, map[string]any) {
	return "minecraft:moving_block", map[string]any{
		"facing_direction": facingName(m.Facing),
	}
}
