package registry

import (
	"testing"

	"github.com/df-mc/redstone/world"
)

func TestAirAlwaysRegistersAsStateZero(t *testing.T) {
	m := NewMemory()
	if got := m.FromID(0); got != world.Block(world.Air{}) {
		t.Fatalf("expected state id 0 to be Air, got %#v", got)
	}
}

func TestRegisterIsIdempotent(t *testing.T) {
	m := NewMemory()
	lever := world.Lever{Face: 2, Powered: true}
	first := m.Register(lever)
	second := m.Register(lever)
	if first != second {
		t.Fatalf("expected registering the same block twice to return the same id, got %d and %d", first, second)
	}
}

func TestGetIDRoundTripsThroughFromID(t *testing.T) {
	m := NewMemory()
	lamp := world.Lamp{Lit: true}
	id := m.Register(lamp)

	got := m.FromID(id)
	gotID, ok := m.GetID(got)
	if !ok {
		t.Fatalf("expected GetID to find the round-tripped block")
	}
	if gotID != id {
		t.Fatalf("expected id %d, got %d", id, gotID)
	}
}

func TestFromIDUnregisteredReturnsUnknown(t *testing.T) {
	m := NewMemory()
	got := m.FromID(999)
	u, ok := got.(world.Unknown)
	if !ok {
		t.Fatalf("expected Unknown for an unregistered id, got %T", got)
	}
	if u.StateID != 999 {
		t.Fatalf("expected StateID 999, got %d", u.StateID)
	}
}

func TestFromNameIsCaseInsensitiveAndAcceptsMissingNamespace(t *testing.T) {
	m := NewMemory()
	m.Register(world.Torch{Lit: true})

	if _, ok := m.FromName("minecraft:redstone_torch"); !ok {
		t.Fatalf("expected exact name to resolve")
	}
	if _, ok := m.FromName("REDSTONE_TORCH"); !ok {
		t.Fatalf("expected case-insensitive, namespace-less name to resolve")
	}
}

func TestGetIDDistinguishesStates(t *testing.T) {
	m := NewMemory()
	onID := m.Register(world.Torch{Lit: true})
	offID := m.Register(world.Torch{Lit: false})
	if onID == offID {
		t.Fatalf("expected distinct states for lit and unlit torches")
	}
}

func TestSetPropertiesResolvesToRegisteredState(t *testing.T) {
	m := NewMemory()
	m.Register(world.IronTrapdoor{Open: true})
	m.Register(world.IronTrapdoor{Open: false})

	open := world.IronTrapdoor{Open: true}
	closed := m.SetProperties(open, map[string]any{"open_bit": false})
	td, ok := closed.(world.IronTrapdoor)
	if !ok {
		t.Fatalf("expected an IronTrapdoor back, got %T", closed)
	}
	if td.Open {
		t.Fatalf("expected SetProperties to close the trapdoor")
	}
}

func TestSetPropertiesFallsBackWithNoMatchingState(t *testing.T) {
	m := NewMemory()
	lever := world.Lever{Face: 2, Powered: false}
	m.Register(lever)

	got := m.SetProperties(lever, map[string]any{"unknown_prop": "x"})
	if got != world.Block(lever) {
		t.Fatalf("expected fallback to the original block when no matching state exists")
	}
}
