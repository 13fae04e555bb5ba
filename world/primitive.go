package world

// Air is empty space. It is solid-less, carries no power, and never has a
// block entity.
type Air struct{}

// EncodeBlock implements Block.
func (Air) EncodeBlock() (string, map[string]any) { return "minecraft:air", nil }

// Unknown represents any of the hundreds of inert decorative variants
// (spec §3) this core doesn't model individually. It round-trips through
// the registry by raw state id only: FromID returns Unknown for any
// unregistered id and GetID returns StateID. It has no name, so it cannot
// be looked up by name, and a schematic palette name the registry does
// not know is rejected rather than loaded as Unknown.
type Unknown struct {
	StateID uint32
}

// EncodeBlock implements Block. Unknown has no name of its own, and the
// registry's GetName reports false for it.
func (Unknown) EncodeBlock() (string, map[string]any) { return "", nil }
