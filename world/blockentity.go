package world

// BlockEntity is implemented by every block-entity variant. Like Block it
// is a closed set; rule code type-switches on the concrete variants
// rather than probing the interface.
//
// EncodeNBT returns the plain compound-tag shape described in §6; the
// schematic package marshals that shape with gophertunnel's minecraft/nbt
// rather than this package depending on an NBT encoder directly.
type BlockEntity interface {
	EncodeNBT() map[string]any
}

// ComparatorEntity stores the precomputed output strength a Comparator
// block reads via GetWeakPower; it's never re-derived live.
type ComparatorEntity struct {
	OutputStrength uint8
}

// EncodeNBT implements BlockEntity, matching the key shape in §6:
// {id="minecraft:comparator", OutputSignal: i32}.
func (c ComparatorEntity) EncodeNBT() map[string]any {
	return map[string]any{
		"id":           "minecraft:comparator",
		"OutputSignal": int32(c.OutputStrength),
	}
}

// DecodeComparatorNBT reconstructs a ComparatorEntity from its encoded
// form.
func DecodeComparatorNBT(m map[string]any) ComparatorEntity {
	var out ComparatorEntity
	if v, ok := m["OutputSignal"].(int32); ok {
		out.OutputStrength = uint8(clampSignal(v))
	}
	return out
}

func clampSignal(v int32) int32 {
	if v < 0 {
		return 0
	}
	if v > 15 {
		return 15
	}
	return v
}

// InventoryEntry is one occupied slot of a Container's inventory.
type InventoryEntry struct {
	Slot  uint8
	Item  string
	Count uint8
}

// ContainerEntity carries a container's inventory and its precomputed
// comparator override (§4.6).
type ContainerEntity struct {
	Kind               ContainerKind
	Inventory          []InventoryEntry
	ComparatorOverride uint8
}

// EncodeNBT implements BlockEntity, matching §6's
// {id, Items: list<{Count, id, Slot}>} shape.
func (c ContainerEntity) EncodeNBT() map[string]any {
	items := make([]any, 0, len(c.Inventory))
	for _, e := range c.Inventory {
		items = append(items, map[string]any{
			"Count": int8(e.Count),
			"id":    e.Item,
			"Slot":  int8(e.Slot),
		})
	}
	return map[string]any{
		"id":    containerID(c.Kind),
		"Items": items,
	}
}

func containerID(k ContainerKind) string {
	switch k {
	case ContainerFurnace:
		return "minecraft:furnace"
	case ContainerBarrel:
		return "minecraft:barrel"
	case ContainerHopper:
		return "minecraft:hopper"
	}
	return "minecraft:furnace"
}

// DecodeContainerNBT reconstructs a ContainerEntity's inventory from its
// encoded form. The comparator override is not stored in NBT - it is
// recomputed by the redstone package whenever the inventory changes.
func DecodeContainerNBT(m map[string]any) ContainerEntity {
	var out ContainerEntity
	switch m["id"] {
	case "minecraft:barrel":
		out.Kind = ContainerBarrel
	case "minecraft:hopper":
		out.Kind = ContainerHopper
	default:
		out.Kind = ContainerFurnace
	}
	items, _ := m["Items"].([]any)
	for _, raw := range items {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		var ie InventoryEntry
		if id, ok := entry["id"].(string); ok {
			ie.Item = id
		}
		if c, ok := entry["Count"].(int8); ok {
			ie.Count = uint8(c)
		}
		if s, ok := entry["Slot"].(int8); ok {
			ie.Slot = uint8(s)
		}
		out.Inventory = append(out.Inventory, ie)
	}
	return out
}

// SignEntity carries a sign's text. Front/Back hold up to four message
// rows each; Back is unused (empty) for the legacy single-sided encoding.
type SignEntity struct {
	Front [4]string
	Back  [4]string
}

// EncodeNBT implements BlockEntity, using the new front_text/back_text
// encoding from §6 rather than the legacy Text1..Text4 keys (legacy is
// accepted on decode for compatibility with older schematics).
func (s SignEntity) EncodeNBT() map[string]any {
	return map[string]any{
		"id":         "minecraft:sign",
		"front_text": map[string]any{"messages": s.Front[:]},
		"back_text":  map[string]any{"messages": s.Back[:]},
	}
}

// DecodeSignNBT reconstructs a SignEntity, accepting either the new
// front_text/back_text encoding or the legacy Text1..Text4 keys.
func DecodeSignNBT(m map[string]any) SignEntity {
	var out SignEntity
	if ft, ok := m["front_text"].(map[string]any); ok {
		if msgs, ok := ft["messages"].([]any); ok {
			for i := 0; i < 4 && i < len(msgs); i++ {
				if s, ok := msgs[i].(string); ok {
					out.Front[i] = s
				}
			}
		} else if msgs, ok := ft["messages"].([]string); ok {
			copy(out.Front[:], msgs)
		}
	} else {
		for i := 0; i < 4; i++ {
			key := "Text" + string(rune('1'+i))
			if s, ok := m[key].(string); ok {
				out.Front[i] = s
			}
		}
	}
	if bt, ok := m["back_text"].(map[string]any); ok {
		if msgs, ok := bt["messages"].([]any); ok {
			for i := 0; i < 4 && i < len(msgs); i++ {
				if s, ok := msgs[i].(string); ok {
					out.Back[i] = s
				}
			}
		} else if msgs, ok := bt["messages"].([]string); ok {
			copy(out.Back[:], msgs)
		}
	}
	return out
}

// MovingPistonEntity is the transient animation state accompanying a
// MovingPiston block (§3, §4.8). It is consumed - both the block and this
// entity disappear - the half tick it schedules itself for fires.
type MovingPistonEntity struct {
	Extending bool
	Facing    nbtFacing
	// Progress linearly interpolates 0..1.0 across the animation.
	Progress float32
	// Source marks the piston base side of an extend (true) vs. the far
	// end (unused by the single-block-move core, kept for the NBT shape).
	Source bool
	// PushedBlock is the block being pushed or pulled, snapshotted at
	// animation start. It is kept as a live Block rather than a bare
	// state id so the piston rules never need a registry dependency;
	// the schematic package resolves it to/from blockState.Name at the
	// NBT boundary, where a registry is already in scope.
	PushedBlock Block
}

// nbtFacing is cube.Facing's id, kept as its own type here only so this
// file doesn't need to import cube just for one field; the redstone
// package converts at the boundary.
type nbtFacing = int32

// EncodeNBT implements BlockEntity, matching §6's moving_piston shape
// except for blockState.Name, which the schematic package fills in by
// looking PushedBlock up in its registry (this package has no registry
// dependency of its own).
func (m MovingPistonEntity) EncodeNBT() map[string]any {
	extending := int8(0)
	if m.Extending {
		extending = 1
	}
	source := int8(0)
	if m.Source {
		source = 1
	}
	return map[string]any{
		"id":        "minecraft:moving_piston",
		"extending": extending,
		"facing":    m.Facing,
		"progress":  m.Progress,
		"source":    source,
	}
}

// DecodeMovingPistonNBT reconstructs the scalar fields of a
// MovingPistonEntity from its encoded form. The caller is responsible
// for resolving blockState.Name to a PushedBlock via the registry.
func DecodeMovingPistonNBT(m map[string]any) MovingPistonEntity {
	var out MovingPistonEntity
	if v, ok := m["extending"].(int8); ok {
		out.Extending = v != 0
	}
	if v, ok := m["facing"].(int32); ok {
		out.Facing = v
	}
	if v, ok := m["progress"].(float32); ok {
		out.Progress = v
	}
	if v, ok := m["source"].(int8); ok {
		out.Source = v != 0
	}
	return out
}
