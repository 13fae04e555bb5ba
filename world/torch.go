package world

import "github.com/df-mc/redstone/cube"

// Torch is a standing redstone torch, lit unless the block it rests on
// top of is powered.
type Torch struct {
	Lit bool
}

// EncodeBlock implements Block.
func (t Torch) EncodeBlock() (string, map[string]any) {
	if t.Lit {
		return "minecraft:redstone_torch", nil
	}
	return "minecraft:unlit_redstone_torch", nil
}

// WallTorch is a redstone torch mounted on the side of a block, lit
// unless the block it is attached to is powered.
type WallTorch struct {
	Facing cube.Direction
	Lit    bool
}

// EncodeBlock implements Block.
func (w WallTorch) EncodeBlock() (string, map[string]any) {
	name := "minecraft:redstone_wall_torch"
	if !w.Lit {
		name = "minecraft:unlit_redstone_wall_torch"
	}
	return name, map[string]any{"facing_direction": directionName(w.Facing)}
}
