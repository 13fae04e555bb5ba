// Package schematic reads and writes the Sponge Schematic v2 format (§6):
// gzipped NBT holding a palette-indexed block grid and a list of
// block-entity compounds. This is the one package in the core that
// depends on world/registry, since resolving palette names to Block
// values and back needs a live registry.
package schematic

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/sandertv/gophertunnel/minecraft/nbt"

	"github.com/df-mc/redstone/cube"
	"github.com/df-mc/redstone/world"
	"github.com/df-mc/redstone/world/registry"
)

// LoadError is the single error variant §7 kind 2 mandates for
// input-data problems: malformed NBT, an out-of-range field, or a
// palette name the registry doesn't recognise. It carries enough
// context to point at what went wrong and where.
type LoadError struct {
	// Context names the stage that failed (e.g. "decode nbt", "palette
	// entry", "block data").
	Context string
	// Detail is a human-readable description of the specific problem.
	Detail string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("schematic: %s: %s: %v", e.Context, e.Detail, e.Err)
	}
	return fmt.Sprintf("schematic: %s: %s", e.Context, e.Detail)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Clipboard is an in-memory schematic: a dense block grid plus the
// block-entities sitting in it, both already resolved against a
// registry.
type Clipboard struct {
	Width, Height, Length int
	Offset                cube.Pos
	DataVersion           int32

	Blocks   map[cube.Pos]world.Block
	Entities map[cube.Pos]world.BlockEntity
}

// rawSchematic mirrors the on-disk NBT shape directly; field order here
// follows §6's field list.
type rawSchematic struct {
	Width, Height, Length int16
	Palette               map[string]int32
	BlockData             []byte           `nbt:"BlockData"`
	BlockEntities         []map[string]any `nbt:"BlockEntities"`
	Metadata              rawMeta          `nbt:"Metadata"`
	Version               int32            `nbt:"Version"`
	DataVersion           int32            `nbt:"DataVersion"`
}

type rawMeta struct {
	WEOffsetX int32 `nbt:"WEOffsetX"`
	WEOffsetY int32 `nbt:"WEOffsetY"`
	WEOffsetZ int32 `nbt:"WEOffsetZ"`
}

// Load decodes a gzipped Sponge Schematic v2 blob, resolving every
// palette entry and block entity against reg. Any malformed field or
// unrecognised palette name surfaces as a *LoadError; partial loads are
// never returned (§7 kind 2).
func Load(r io.Reader, reg registry.Registry) (*Clipboard, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, &LoadError{Context: "open", Detail: "not a valid gzip stream", Err: err}
	}
	defer gz.Close()

	var raw rawSchematic
	dec := nbt.NewDecoder(gz)
	if err := dec.Decode(&raw); err != nil {
		return nil, &LoadError{Context: "decode nbt", Detail: "malformed schematic NBT", Err: err}
	}
	if raw.Version != 2 {
		return nil, &LoadError{Context: "version", Detail: fmt.Sprintf("unsupported schematic version %d", raw.Version)}
	}

	width, height, length := int(raw.Width), int(raw.Height), int(raw.Length)
	if width <= 0 || height <= 0 || length <= 0 {
		return nil, &LoadError{Context: "dimensions", Detail: "width/height/length must be positive"}
	}

	paletteIdx := make(map[int32]world.Block, len(raw.Palette))
	for entry, id := range raw.Palette {
		b, err := parsePaletteName(entry, reg)
		if err != nil {
			return nil, &LoadError{Context: "palette entry", Detail: entry, Err: err}
		}
		paletteIdx[id] = b
	}

	indices, err := decodeBlockData(raw.BlockData, width*height*length)
	if err != nil {
		return nil, &LoadError{Context: "block data", Detail: "varint stream truncated or malformed", Err: err}
	}

	blocks := make(map[cube.Pos]world.Block, len(indices))
	for i, idx := range indices {
		b, ok := paletteIdx[idx]
		if !ok {
			return nil, &LoadError{Context: "block data", Detail: fmt.Sprintf("palette index %d has no palette entry", idx)}
		}
		if _, isAir := b.(world.Air); isAir {
			continue
		}
		x := i % width
		z := (i / width) % length
		y := i / (width * length)
		blocks[cube.Pos{x, y, z}] = b
	}

	entities := make(map[cube.Pos]world.BlockEntity, len(raw.BlockEntities))
	for _, re := range raw.BlockEntities {
		posField, err := intArrayField(re["Pos"])
		if err != nil || len(posField) != 3 {
			return nil, &LoadError{Context: "block entity", Detail: "Pos must have exactly 3 components"}
		}
		pos := cube.Pos{int(posField[0]), int(posField[1]), int(posField[2])}
		be, err := decodeBlockEntity(re, reg)
		if err != nil {
			return nil, &LoadError{Context: "block entity", Detail: fmt.Sprintf("at %v", pos), Err: err}
		}
		if be != nil {
			entities[pos] = be
		}
	}

	return &Clipboard{
		Width:       width,
		Height:      height,
		Length:      length,
		Offset:      cube.Pos{int(raw.Metadata.WEOffsetX), int(raw.Metadata.WEOffsetY), int(raw.Metadata.WEOffsetZ)},
		DataVersion: raw.DataVersion,
		Blocks:      blocks,
		Entities:    entities,
	}, nil
}

// Save encodes c as a gzipped Sponge Schematic v2 blob.
func Save(w io.Writer, c *Clipboard, reg registry.Registry) error {
	palette := make(map[string]int32)
	paletteByName := func(name string) int32 {
		if id, ok := palette[name]; ok {
			return id
		}
		id := int32(len(palette))
		palette[name] = id
		return id
	}
	airID := paletteByName(blockName(world.Air{}, reg))

	size := c.Width * c.Height * c.Length
	indices := make([]int32, size)
	for i := range indices {
		indices[i] = airID
	}
	for pos, b := range c.Blocks {
		if pos.X() < 0 || pos.X() >= c.Width || pos.Y() < 0 || pos.Y() >= c.Height || pos.Z() < 0 || pos.Z() >= c.Length {
			continue
		}
		i := pos.X() + pos.Z()*c.Width + pos.Y()*c.Width*c.Length
		indices[i] = paletteByName(blockName(b, reg))
	}

	blockData := encodeBlockData(indices)

	entities := make([]map[string]any, 0, len(c.Entities))
	for pos, be := range c.Entities {
		data := be.EncodeNBT()
		if mp, ok := be.(world.MovingPistonEntity); ok {
			data["blockState"] = map[string]any{"Name": blockName(mp.PushedBlock, reg)}
		}
		data["Pos"] = []int32{int32(pos.X()), int32(pos.Y()), int32(pos.Z())}
		entities = append(entities, data)
	}
	sort.Slice(entities, func(i, j int) bool {
		return posLess(entities[i]["Pos"].([]int32), entities[j]["Pos"].([]int32))
	})

	raw := rawSchematic{
		Width:         int16(c.Width),
		Height:        int16(c.Height),
		Length:        int16(c.Length),
		Palette:       palette,
		BlockData:     blockData,
		BlockEntities: entities,
		Metadata: rawMeta{
			WEOffsetX: int32(c.Offset.X()),
			WEOffsetY: int32(c.Offset.Y()),
			WEOffsetZ: int32(c.Offset.Z()),
		},
		Version:     2,
		DataVersion: c.DataVersion,
	}

	gz := gzip.NewWriter(w)
	enc := nbt.NewEncoder(gz)
	if err := enc.Encode(raw); err != nil {
		return fmt.Errorf("schematic: encode nbt: %w", err)
	}
	return gz.Close()
}

// intArrayField normalises the handful of shapes an NBT decoder might
// hand back for an IntArray tag (a []int32 directly, or a []any of
// individually-boxed int32s) into a plain []int32.
func intArrayField(v any) ([]int32, error) {
	switch arr := v.(type) {
	case []int32:
		return arr, nil
	case []any:
		out := make([]int32, len(arr))
		for i, e := range arr {
			n, ok := e.(int32)
			if !ok {
				return nil, fmt.Errorf("expected int32 element, got %T", e)
			}
			out[i] = n
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected an int array, got %T", v)
	}
}

func posLess(a, b []int32) bool {
	if a[1] != b[1] {
		return a[1] < b[1]
	}
	if a[2] != b[2] {
		return a[2] < b[2]
	}
	return a[0] < b[0]
}

// blockName resolves b to its registered (or structurally encoded)
// name, falling back to the bare EncodeBlock name if the registry
// doesn't know it - Save never fails just because a block wasn't
// interned ahead of time.
func blockName(b world.Block, reg registry.Registry) string {
	if name, ok := reg.GetName(b); ok {
		return name
	}
	name, _ := b.EncodeBlock()
	return name
}

// parsePaletteName resolves a schematic palette entry of the form
// `[minecraft:]name[\[p=v,p=v,...\]]` (§6) against reg, registering the
// name+properties combination if the registry doesn't already carry it.
func parsePaletteName(entry string, reg registry.Registry) (world.Block, error) {
	name := entry
	propText := ""
	if i := strings.IndexByte(entry, '['); i >= 0 {
		if !strings.HasSuffix(entry, "]") {
			return nil, fmt.Errorf("malformed property list in %q", entry)
		}
		name = entry[:i]
		propText = entry[i+1 : len(entry)-1]
	}

	if b, ok := reg.FromName(name); ok {
		if propText == "" {
			return b, nil
		}
		props, err := parseProperties(propText)
		if err != nil {
			return nil, err
		}
		return reg.SetProperties(b, props), nil
	}
	return nil, fmt.Errorf("unrecognised block name %q", name)
}

func parseProperties(text string) (map[string]any, error) {
	props := make(map[string]any)
	for _, pair := range strings.Split(text, ",") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("malformed property pair %q", pair)
		}
		k, v := kv[0], kv[1]
		switch v {
		case "true":
			props[k] = true
		case "false":
			props[k] = false
		default:
			if n, err := strconv.ParseInt(v, 10, 32); err == nil {
				props[k] = int32(n)
			} else {
				props[k] = v
			}
		}
	}
	return props, nil
}

// decodeBlockData reads a varint-encoded stream of count palette
// indices (§6).
func decodeBlockData(data []byte, count int) ([]int32, error) {
	out := make([]int32, 0, count)
	i := 0
	for len(out) < count {
		if i >= len(data) {
			return nil, fmt.Errorf("ran out of bytes decoding entry %d of %d", len(out), count)
		}
		var value, shift uint32
		for {
			if i >= len(data) {
				return nil, fmt.Errorf("truncated varint at entry %d", len(out))
			}
			b := data[i]
			i++
			value |= uint32(b&0x7f) << shift
			if b&0x80 == 0 {
				break
			}
			shift += 7
			if shift >= 35 {
				return nil, fmt.Errorf("varint too long at entry %d", len(out))
			}
		}
		out = append(out, int32(value))
	}
	return out, nil
}

func encodeBlockData(indices []int32) []byte {
	var buf bytes.Buffer
	for _, v := range indices {
		u := uint32(v)
		for {
			b := byte(u & 0x7f)
			u >>= 7
			if u != 0 {
				buf.WriteByte(b | 0x80)
			} else {
				buf.WriteByte(b)
				break
			}
		}
	}
	return buf.Bytes()
}

// decodeBlockEntity dispatches on the compound's "id" key to the right
// world.DecodeXNBT function (§6), then resolves the MovingPiston
// entity's blockState.Name boundary field - the one piece of NBT
// decoding this package does that world itself deliberately doesn't.
func decodeBlockEntity(m map[string]any, reg registry.Registry) (world.BlockEntity, error) {
	id, _ := m["id"].(string)
	switch id {
	case "minecraft:comparator":
		be := world.DecodeComparatorNBT(m)
		return be, nil
	case "minecraft:furnace", "minecraft:barrel", "minecraft:hopper":
		be := world.DecodeContainerNBT(m)
		return be, nil
	case "minecraft:sign":
		be := world.DecodeSignNBT(m)
		return be, nil
	case "minecraft:moving_piston":
		be := world.DecodeMovingPistonNBT(m)
		if bs, ok := m["blockState"].(map[string]any); ok {
			if name, ok := bs["Name"].(string); ok {
				if b, ok := reg.FromName(name); ok {
					be.PushedBlock = b
				} else {
					return be, fmt.Errorf("moving piston blockState.Name %q not found in registry", name)
				}
			}
		}
		return be, nil
	default:
		return nil, nil
	}
}
