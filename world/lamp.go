package world

// Lamp lights immediately when powered, but delays unlighting by 2 ticks
// (§4.7): the block itself only ever reflects the latched Lit state, the
// delay lives in the scheduler.
type Lamp struct {
	Lit bool
}

// EncodeBlock implements Block.
func (l Lamp) EncodeBlock() (string, map[string]any) {
	if l.Lit {
		return "minecraft:lit_redstone_lamp", nil
	}
	return "minecraft:redstone_lamp", nil
}

// IronTrapdoor switches immediately with power, in both directions.
type IronTrapdoor struct {
	Open bool
}

// EncodeBlock implements Block.
func (t IronTrapdoor) EncodeBlock() (string, map[string]any) {
	return "minecraft:iron_trapdoor", map[string]any{"open_bit": t.Open}
}
