package redstone

import (
	"github.com/df-mc/redstone/cube"
	"github.com/df-mc/redstone/world"
)

// RegulatedSides is the resolved connection state for each of a wire's
// four horizontal sides, computed fresh from the world rather than read
// back from the stored Wire value (§4.4).
type RegulatedSides struct {
	North, East, South, West world.WireConnection
}

// GetCurrentSide returns the regulated connection for one direction.
func GetCurrentSide(sides RegulatedSides, d cube.Direction) world.WireConnection {
	switch d {
	case cube.DirectionNorth:
		return sides.North
	case cube.DirectionSouth:
		return sides.South
	case cube.DirectionEast:
		return sides.East
	case cube.DirectionWest:
		return sides.West
	}
	return world.ConnectionNone
}

func withSide(sides RegulatedSides, d cube.Direction, c world.WireConnection) RegulatedSides {
	switch d {
	case cube.DirectionNorth:
		sides.North = c
	case cube.DirectionSouth:
		sides.South = c
	case cube.DirectionEast:
		sides.East = c
	case cube.DirectionWest:
		sides.West = c
	}
	return sides
}

// GetRegulatedSides resolves a wire's four horizontal connections
// against the live world (§4.4):
//  1. a solid-cube neighbour carrying a wire on top connects Up;
//  2. a wire, a diode facing this side, or anything else that "connects
//     to dust" on the neighbour connects Side;
//  3. otherwise the side is None;
//  4. a wire with exactly one resolved connection gets its opposite side
//     forced to Side (the one-link extension rule, so a single strand of
//     dust running toward a dead end still visually continues).
func GetRegulatedSides(w world.Wire, wd world.World, pos cube.Pos) RegulatedSides {
	var sides RegulatedSides
	for _, d := range cube.Directions() {
		sides = withSide(sides, d, regulatedSide(wd, pos, d))
	}

	connected := 0
	var only cube.Direction
	for _, d := range cube.Directions() {
		if GetCurrentSide(sides, d) != world.ConnectionNone {
			connected++
			only = d
		}
	}
	if connected == 1 {
		sides = withSide(sides, only.Opposite(), world.ConnectionSide)
	}
	return sides
}

func regulatedSide(w world.World, pos cube.Pos, d cube.Direction) world.WireConnection {
	side := pos.Side(d.Face())
	neighbour := w.GetBlock(side)
	if world.IsSolid(neighbour) {
		above := w.GetBlock(side.Side(cube.FaceUp))
		if _, ok := above.(world.Wire); ok {
			return world.ConnectionUp
		}
		return world.ConnectionNone
	}
	if connectsToDust(neighbour, d) {
		return world.ConnectionSide
	}
	// A wire one block below the neighbour position can still reach
	// across a one-block drop; this mirrors the reference game's
	// "connects downward" rule for dust running off a ledge.
	below := w.GetBlock(side.Side(cube.FaceDown))
	if _, ok := below.(world.Wire); ok {
		return world.ConnectionSide
	}
	return world.ConnectionNone
}

// connectsToDust reports whether a non-solid neighbour block electrically
// continues a wire reaching toward it from direction d.
func connectsToDust(b world.Block, d cube.Direction) bool {
	switch v := b.(type) {
	case world.Wire:
		return true
	case world.Repeater:
		return v.Facing == d || v.Facing == d.Opposite()
	case world.Comparator:
		return v.Facing == d || v.Facing == d.Opposite()
	case world.Lever, world.Button:
		return false
	}
	return false
}

// OnNeighborUpdated recomputes a wire's power from its surroundings and,
// if it changed, writes it back and fans out through UpdateWireNeighbors
// (neighbours and their neighbours, without the corners of the 3x3x3
// cube).
func OnNeighborUpdated(w world.Wire, wd world.World, pos cube.Pos) {
	target := computeWirePower(w, wd, pos)
	if target == w.Power {
		return
	}
	w.Power = target
	wd.SetBlock(pos, w)
	UpdateWireNeighbors(wd, pos)
}

func computeWirePower(_ world.Wire, wd world.World, pos cube.Pos) uint8 {
	var power uint8
	for _, face := range cube.Faces() {
		np := pos.Side(face)
		nb := wd.GetBlock(np)
		if p := GetRedstonePowerNoDust(nb, wd, np, face.Opposite()); p > power {
			power = p
		}
	}
	// GetRedstonePowerNoDust never reads power back from a neighbouring
	// Wire, so a chain of dust has to carry its own signal here: each
	// wire this one is electrically connected to (§4.4's regulated
	// sides) contributes its power minus one.
	for _, d := range cube.Directions() {
		if p, ok := connectedWirePower(wd, pos, d); ok {
			if dec := wireDecrement(p); dec > power {
				power = dec
			}
		}
	}
	if power > 15 {
		power = 15
	}
	return power
}

// connectedWirePower finds the Wire block, if any, electrically reached
// from pos in direction d: directly alongside, up over a solid
// neighbour, or down off a ledge - the same search regulatedSide does.
func connectedWirePower(wd world.World, pos cube.Pos, d cube.Direction) (uint8, bool) {
	side := pos.Side(d.Face())
	neighbour := wd.GetBlock(side)
	if wire, ok := neighbour.(world.Wire); ok {
		return wire.Power, true
	}
	if world.IsSolid(neighbour) {
		if wire, ok := wd.GetBlock(side.Side(cube.FaceUp)).(world.Wire); ok {
			return wire.Power, true
		}
		return 0, false
	}
	if wire, ok := wd.GetBlock(side.Side(cube.FaceDown)).(world.Wire); ok {
		return wire.Power, true
	}
	return 0, false
}

func wireDecrement(p uint8) uint8 {
	if p == 0 {
		return 0
	}
	return p - 1
}
