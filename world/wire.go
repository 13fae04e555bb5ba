package world

import "github.com/df-mc/redstone/cube"

// WireConnection is the state of one of a Wire's four horizontal sides.
type WireConnection uint8

const (
	// ConnectionNone means the wire does not connect on that side at all.
	ConnectionNone WireConnection = iota
	// ConnectionSide means the wire connects to something at the same
	// height on that side (another wire, a diode facing it, ...).
	ConnectionSide
	// ConnectionUp means the wire climbs a solid block's edge on that
	// side (a wire one block higher, attached to a solid cube).
	ConnectionUp
)

// Wire is redstone dust laid on the ground. Power is the signal strength
// it currently carries, 0-15.
type Wire struct {
	North, East, South, West WireConnection
	Power                    uint8
}

// EncodeBlock implements Block.
func (w Wire) EncodeBlock() (string, map[string]any) {
	return "minecraft:redstone_wire", map[string]any{
		"redstone_signal": int32(w.Power),
		"north": connectionName(w.North),
		"east":  connectionName(w.East),
		"south": connectionName(w.South),
		"west":  connectionName(w.West),
	}
}

func connectionName(c WireConnection) string {
	switch c {
	case ConnectionSide:
		return "side"
	case ConnectionUp:
		return "up"
	default:
		return "none"
	}
}

// Connection returns the wire's connection state for the given
// horizontal direction.
func (w Wire) Connection(d cube.Direction) WireConnection {
	switch d {
	case cube.DirectionNorth:
		return w.North
	case cube.DirectionSouth:
		return w.South
	case cube.DirectionEast:
		return w.East
	case cube.DirectionWest:
		return w.West
	}
	panic("world: invalid direction")
}

// WithConnection returns a copy of w with the given direction's
// connection state replaced.
func (w Wire) WithConnection(d cube.Direction, c WireConnection) Wire {
	switch d {
	case cube.DirectionNorth:
		w.North = c
	case cube.DirectionSouth:
		w.South = c
	case cube.DirectionEast:
		w.East = c
	case cube.DirectionWest:
		w.West = c
	default:
		panic("world: invalid direction")
	}
	return w
}
