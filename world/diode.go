package world

import "github.com/df-mc/redstone/cube"

// Repeater delays and locks a redstone signal along Facing.
type Repeater struct {
	Facing  cube.Direction
	Delay   uint8 // 1..4
	Locked  bool
	Powered bool
}

// EncodeBlock implements Block.
func (r Repeater) EncodeBlock() (string, map[string]any) {
	name := "minecraft:unpowered_repeater"
	if r.Powered {
		name = "minecraft:powered_repeater"
	}
	return name, map[string]any{
		"repeater_delay": int32(r.Delay - 1),
		"minecraft:cardinal_direction": directionName(r.Facing),
	}
}

// ComparatorMode is Compare or Subtract.
type ComparatorMode uint8

const (
	ModeCompare ComparatorMode = iota
	ModeSubtract
)

// Comparator reads two side inputs against a back input. Its computed
// output strength lives in the Comparator BlockEntity, not here.
type Comparator struct {
	Facing  cube.Direction
	Mode    ComparatorMode
	Powered bool
}

// EncodeBlock implements Block.
func (c Comparator) EncodeBlock() (string, map[string]any) {
	name := "minecraft:unpowered_comparator"
	if c.Powered {
		name = "minecraft:powered_comparator"
	}
	return name, map[string]any{
		"minecraft:cardinal_direction": directionName(c.Facing),
		"output_subtract":              c.Mode == ModeSubtract,
	}
}

func directionName(d cube.Direction) string {
	switch d {
	case cube.DirectionNorth:
		return "north"
	case cube.DirectionSouth:
		return "south"
	case cube.DirectionEast:
		return "east"
	case cube.DirectionWest:
		return "west"
	}
	return "north"
}

// IsDiode reports whether b is a Repeater or Comparator: the two block
// kinds that share the "sample back input, schedule a flip, lock against
// perpendicular neighbours" update shape.
func IsDiode(b Block) bool {
	switch b.(type) {
	case Repeater, Comparator:
		return true
	default:
		return false
	}
}

// DiodeFacing returns the facing direction of a diode block. It panics if
// b is not a diode.
func DiodeFacing(b Block) cube.Direction {
	switch v := b.(type) {
	case Repeater:
		return v.Facing
	case Comparator:
		return v.Facing
	}
	panic("world: DiodeFacing called on non-diode block")
}
