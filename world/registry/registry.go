// Package registry implements the block/item registry collaborator §6
// describes: a narrow external interface mapping between Block values,
// their external state ids, and their canonical names.
package registry

import (
	"strings"

	"github.com/segmentio/fasthash/fnv1a"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/df-mc/redstone/world"
)

// Registry is the collaborator interface the simulation core depends on.
// State ids are the canonical external identifier (§6) and must be stable
// for the lifetime of a registry instance.
type Registry interface {
	FromID(id uint32) world.Block
	GetID(b world.Block) (uint32, bool)
	FromName(name string) (world.Block, bool)
	GetName(b world.Block) (string, bool)
	Properties(b world.Block) map[string]any
	SetProperties(b world.Block, props map[string]any) world.Block
}

// Memory is an in-memory Registry for the closed block set this core
// knows about (spec §3's variant list plus Unknown for everything else).
// It is built once at startup via Register and is read-only afterwards.
type Memory struct {
	byID   map[uint32]world.Block
	byName map[string]uint32
	// byNameHash indexes state keys by the fnv1a hash of their folded
	// base name, so FromName resolves in O(bucket size) instead of
	// scanning every registered state.
	byNameHash map[uint64][]string
	nextID     uint32
	folder     cases.Caser
}

// NewMemory returns an empty Memory registry. Air always registers as
// state id 0, matching the reference game's own convention and giving
// FromID(0) a defined meaning before any explicit Register call.
func NewMemory() *Memory {
	m := &Memory{
		byID:       make(map[uint32]world.Block),
		byName:     make(map[string]uint32),
		byNameHash: make(map[uint64][]string),
		folder:     cases.Lower(language.Und),
	}
	m.register(world.Air{})
	return m
}

// Register interns b under the next available state id and returns that
// id. Registering the same encoded (name, properties) pair twice returns
// the id already assigned.
func (m *Memory) Register(b world.Block) uint32 {
	return m.register(b)
}

func (m *Memory) register(b world.Block) uint32 {
	name, props := b.EncodeBlock()
	key := stateKey(name, props)
	if id, ok := m.byName[key]; ok {
		return id
	}
	id := m.nextID
	m.nextID++
	m.byID[id] = b
	m.byName[key] = id
	h := fnv1a.HashString64(m.folder.String(normalizeName(name)))
	m.byNameHash[h] = append(m.byNameHash[h], key)
	return id
}

func stateKey(name string, props map[string]any) string {
	var sb strings.Builder
	sb.WriteString(name)
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	for _, k := range keys {
		sb.WriteByte('|')
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(propertyText(props[k]))
	}
	return sb.String()
}

func propertyText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		if x {
			return "true"
		}
		return "false"
	case int32:
		return intToString(int64(x))
	default:
		return ""
	}
}

func intToString(n int64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// FromID implements Registry. Unregistered ids come back as Unknown
// rather than panicking: a schematic loaded against a registry that
// hasn't interned every palette name is a normal, recoverable situation
// (§7 kind 2 territory, handled by the schematic package), not this
// package's business to reject.
func (m *Memory) FromID(id uint32) world.Block {
	if b, ok := m.byID[id]; ok {
		return b
	}
	return world.Unknown{StateID: id}
}

// GetID implements Registry.
func (m *Memory) GetID(b world.Block) (uint32, bool) {
	if u, ok := b.(world.Unknown); ok {
		return u.StateID, true
	}
	name, props := b.EncodeBlock()
	id, ok := m.byName[stateKey(name, props)]
	return id, ok
}

// FromName implements Registry. Lookup is case-insensitive, following
// the original source's FromStr implementations (§12), and accepts the
// name with or without the "minecraft:" namespace prefix.
func (m *Memory) FromName(name string) (world.Block, bool) {
	folded := m.folder.String(normalizeName(name))
	h := fnv1a.HashString64(folded)
	for _, key := range m.byNameHash[h] {
		n := key
		if idx := strings.IndexByte(key, '|'); idx >= 0 {
			n = key[:idx]
		}
		if m.folder.String(normalizeName(n)) == folded {
			return m.byID[m.byName[key]], true
		}
	}
	return nil, false
}

func normalizeName(name string) string {
	if !strings.Contains(name, ":") {
		return "minecraft:" + name
	}
	return name
}

// GetName implements Registry.
func (m *Memory) GetName(b world.Block) (string, bool) {
	name, _ := b.EncodeBlock()
	if name == "" {
		return "", false
	}
	return name, true
}

// Properties implements Registry.
func (m *Memory) Properties(b world.Block) map[string]any {
	_, props := b.EncodeBlock()
	return props
}

// SetProperties implements Registry. Since Block variants are plain value
// types rather than a generic property bag, SetProperties merges b's own
// encoded properties with overrides and looks the resulting (name,
// properties) state up directly; blocks with no matching registered
// state fall back to the original.
func (m *Memory) SetProperties(b world.Block, overrides map[string]any) world.Block {
	name, props := b.EncodeBlock()
	merged := make(map[string]any, len(props)+len(overrides))
	for k, v := range props {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	if id, ok := m.byName[stateKey(name, merged)]; ok {
		return m.byID[id]
	}
	return b
}
