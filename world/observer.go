package world

import "github.com/df-mc/redstone/cube"

// Observer fires a one-tick pulse whenever the block on its Facing side
// changes.
type Observer struct {
	Facing  cube.Facing
	Powered bool
}

// EncodeBlock implements Block.
func (o Observer) EncodeBlock() (string, map[string]any) {
	return "minecraft:observer", map[string]any{
		"facing_direction": facingName(o.Facing),
		"powered_bit":      o.Powered,
	}
}

func facingName(f cube.Facing) string {
	switch f {
	case cube.FacingUp:
		return "up"
	case cube.FacingDown:
		return "down"
	case cube.FacingNorth:
		return "north"
	case cube.FacingSouth:
		return "south"
	case cube.FacingEast:
		return "east"
	case cube.FacingWest:
		return "west"
	}
	return "north"
}
