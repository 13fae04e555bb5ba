// Package redstone implements the power propagation, wire connectivity,
// per-block update/tick rules and piston state machine that drive a
// world.World forward. Every exported function takes the World
// interface, not a concrete Simulator, so a compiled backend can run the
// same rules against its own snapshot.
package redstone

import (
	"github.com/df-mc/redstone/cube"
	"github.com/df-mc/redstone/world"
)

// boolToSS converts a boolean power source into its signal strength:
// full strength (15) when true, none when false. Named after the
// original source's bool_to_ss, since every "powered" block variant
// funnels through this same 0-or-15 conversion.
func boolToSS(b bool) uint8 {
	if b {
		return 15
	}
	return 0
}

// GetWeakPower returns the signal strength (1-15) block emits toward the
// given face, without considering conductance through solid cubes
// (§4.3). dustPower controls whether Wire contributes its own power or
// is treated as absent (used by the "no dust" power query below).
func GetWeakPower(block world.Block, w world.World, pos cube.Pos, side cube.Face, dustPower bool) uint8 {
	switch b := block.(type) {
	case world.Torch:
		if b.Lit {
			return 15
		}
	case world.WallTorch:
		if b.Lit && b.Facing.Face() != side {
			return 15
		}
	case world.Lever:
		if b.Powered {
			return 15
		}
	case world.Button:
		if b.Powered {
			return 15
		}
	case world.PressurePlate:
		if b.Powered {
			return 15
		}
	case world.Repeater:
		if b.Facing.Face() == side && b.Powered {
			return 15
		}
	case world.Comparator:
		if b.Facing.Face() == side {
			if be, ok := w.GetBlockEntity(pos); ok {
				if ce, ok := be.(world.ComparatorEntity); ok {
					return ce.OutputStrength
				}
			}
			return 0
		}
	case world.Wire:
		if dustPower {
			return wireWeakPower(b, w, pos, side)
		}
	case world.Observer:
		if b.Facing.Face() == side && b.Powered {
			return 15
		}
	}
	return 0
}

func wireWeakPower(wire world.Wire, w world.World, pos cube.Pos, side cube.Face) uint8 {
	switch side {
	case cube.FaceUp:
		return wire.Power
	case cube.FaceDown:
		return 0
	default:
		direction := side.Direction()
		sides := GetRegulatedSides(wire, w, pos)
		if GetCurrentSide(sides, direction.Opposite()) == world.ConnectionNone {
			return 0
		}
		return wire.Power
	}
}

// GetStrongPower returns the signal strength block emits through side
// when side is the *opposite* of where the block is attached (§4.3): a
// torch beneath a solid block strongly powers that block upward through
// its bottom face, even though the torch's weak power reaches every
// face.
func GetStrongPower(block world.Block, w world.World, pos cube.Pos, side cube.Face, dustPower bool) uint8 {
	switch b := block.(type) {
	case world.Torch:
		if b.Lit && side == cube.FaceDown {
			return 15
		}
	case world.WallTorch:
		if b.Lit && side == cube.FaceDown {
			return 15
		}
	case world.Lever:
		return boolToSS(mountFacesSide(b.Face, side) && b.Powered)
	case world.Button:
		return boolToSS(mountFacesSide(b.Face, side) && b.Powered)
	case world.PressurePlate:
		if b.Powered && side == cube.FaceUp {
			return 15
		}
	case world.Wire, world.Repeater, world.Comparator:
		return GetWeakPower(block, w, pos, side, dustPower)
	case world.Observer:
		if b.Powered {
			return 15
		}
	}
	return 0
}

// mountFacesSide reports whether a lever/button mounted against Face
// mount strongly powers side. This mirrors the original source's
// per-orientation match on LeverFace/ButtonFace: a floor-mounted lever
// (mount=Up) only powers Up, a ceiling-mounted one (mount=Down) only
// Down, and a wall-mounted one only the single face it's attached to.
func mountFacesSide(mount, side cube.Face) bool {
	return mount == side
}

// GetMaxStrongPower returns the maximum strong power any of pos's six
// neighbours delivers toward pos. This is how a solid cube "conducts"
// power from whatever is touching one of its other faces.
func GetMaxStrongPower(w world.World, pos cube.Pos, dustPower bool) uint8 {
	var maxPower uint8
	for _, face := range cube.Faces() {
		np := pos.Side(face)
		nb := w.GetBlock(np)
		if p := GetStrongPower(nb, w, np, face, dustPower); p > maxPower {
			maxPower = p
		}
	}
	return maxPower
}

// GetRedstonePower is the power a block delivers when queried from the
// position on its facing side: for solid blocks, the max strong power
// conducted in from any of the six neighbours; for everything else, weak
// power straight from the block itself.
func GetRedstonePower(block world.Block, w world.World, pos cube.Pos, facing cube.Face) uint8 {
	if world.IsSolid(block) {
		return GetMaxStrongPower(w, pos, true)
	}
	return GetWeakPower(block, w, pos, facing, true)
}

// GetRedstonePowerNoDust is GetRedstonePower with Wire's own
// contribution suppressed - used by rules that must ignore dust they are
// about to recompute, to avoid reading their own stale value back.
func GetRedstonePowerNoDust(block world.Block, w world.World, pos cube.Pos, facing cube.Face) uint8 {
	if world.IsSolid(block) {
		return GetMaxStrongPower(w, pos, false)
	}
	return GetWeakPower(block, w, pos, facing, false)
}
