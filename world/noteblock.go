package world

// NoteBlock plays an instrument-dependent note when it becomes powered
// with clear air above it (§4.7). Instrument is re-resolved from the
// block below whenever the block is about to become powered, and kept
// unchanged when it turns off; Note is the pitch, 0-24.
type NoteBlock struct {
	Instrument string
	Note       uint8
	Powered    bool
}

// EncodeBlock implements Block.
func (n NoteBlock) EncodeBlock() (string, map[string]any) {
	return "minecraft:noteblock", map[string]any{
		"note":    int32(n.Note),
		"powered": n.Powered,
	}
}

// Sign is a standing or wall sign. Its text lives in the Sign
// BlockEntity; the block only records its placement geometry.
type Sign struct {
	Wall bool
}

// EncodeBlock implements Block.
func (s Sign) EncodeBlock() (string, map[string]any) {
	if s.Wall {
		return "minecraft:wall_sign", nil
	}
	return "minecraft:standing_sign", nil
}

// ContainerKind distinguishes the inventory shapes §4.6's comparator
// override formula needs to know the slot count of.
type ContainerKind uint8

const (
	ContainerFurnace ContainerKind = iota
	ContainerBarrel
	ContainerHopper
)

// Slots returns the inventory size for the container kind.
func (k ContainerKind) Slots() int {
	switch k {
	case ContainerFurnace:
		return 3
	case ContainerBarrel:
		return 27
	case ContainerHopper:
		return 5
	}
	return 0
}

// Container is a furnace, barrel or hopper: any block whose inventory
// fullness a Comparator placed against it can read via its
// comparator_override.
type Container struct {
	Kind ContainerKind
}

// EncodeBlock implements Block.
func (c Container) EncodeBlock() (string, map[string]any) {
	switch c.Kind {
	case ContainerFurnace:
		return "minecraft:furnace", nil
	case ContainerBarrel:
		return "minecraft:barrel", nil
	case ContainerHopper:
		return "minecraft:hopper", nil
	}
	return "minecraft:furnace", nil
}
