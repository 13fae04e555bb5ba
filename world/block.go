// Package world holds the closed set of block and block-entity variants the
// simulation core understands, the narrow World interface rule code is
// written against, and a concrete Simulator implementing that interface
// over an in-memory grid.
package world

import (
	"github.com/cespare/xxhash/v2"

	"github.com/df-mc/redstone/cube"
)

// Block is implemented by every block variant the core knows about. It is
// a closed set by convention, not by the type system: callers type-switch
// on concrete variants (Wire, Repeater, Comparator, ...) the same way the
// teacher's rule code switches on concrete block structs rather than
// probing an open interface.
//
// EncodeBlock returns the block's registry name and property map, the
// same external contract dragonfly's own world.Block carries, and the one
// world/registry uses to compute a state id.
type Block interface {
	EncodeBlock() (name string, properties map[string]any)
}

// Hash returns a structural hash of a block, for detecting that a block
// at a position has changed; the piston and diode rules do not call it.
// It mirrors the teacher's two-uint64 `(RedstoneDust) Hash()` convention:
// most variants hash their encoded name and properties with xxhash;
// variants that already carry a comparably cheap identity (Unknown, which
// is just a raw state id) hash that directly instead of round-tripping
// through EncodeBlock.
func Hash(b Block) (uint64, uint64) {
	if u, ok := b.(Unknown); ok {
		return xxhash.Sum64String("unknown"), uint64(u.StateID)
	}
	name, props := b.EncodeBlock()
	h := xxhash.New()
	_, _ = h.WriteString(name)
	sum1 := h.Sum64()
	h2 := xxhash.New()
	for _, k := range sortedKeys(props) {
		_, _ = h2.WriteString(k)
		_, _ = h2.WriteString(propString(props[k]))
	}
	return sum1, h2.Sum64()
}

func propString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		if x {
			return "1"
		}
		return "0"
	case int32:
		return string(rune(x))
	case int:
		return string(rune(x))
	default:
		return ""
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

// IsSolid reports whether a block occupies its full cube and blocks line
// of sight/power conduction the way a stone block does. Transparent and
// non-cube blocks (wire, torches, pistons' moving phase, diodes lying
// flat) are not solid.
func IsSolid(b Block) bool {
	switch b.(type) {
	case Air, Wire, Torch, WallTorch, Lever, Button, PressurePlate,
		Repeater, Comparator, Observer, Piston, PistonHead, MovingPiston,
		NoteBlock, Sign, IronTrapdoor:
		return false
	default:
		return true
	}
}

// IsCube reports whether a block's collision shape is a full cube. In
// this core every solid block is modelled as a full cube; the predicate
// is kept distinct from IsSolid because the piston pushability rule
// (§4.8) tests cube shape independently of solidity for the transparent
// set.
func IsCube(b Block) bool {
	return IsSolid(b)
}

// IsTransparent reports whether light and power pass through a block
// unimpeded from the perspective of weak-power queries.
func IsTransparent(b Block) bool {
	return !IsSolid(b)
}

// HasBlockEntity reports whether a block variant carries auxiliary state
// in the BlockEntity side table.
func HasBlockEntity(b Block) bool {
	switch b.(type) {
	case Comparator, Container, Sign, MovingPiston:
		return true
	default:
		return false
	}
}

// Side is a convenience wrapper around cube.Pos.Side kept here so rule
// code in the redstone package doesn't need to import cube directly just
// to walk neighbours of a Block query result.
func Side(pos cube.Pos, face cube.Face) cube.Pos {
	return pos.Side(face)
}
