package world

import "testing"

func TestHashDistinguishesDifferingProperties(t *testing.T) {
	a1, a2 := Hash(Torch{Lit: true})
	b1, b2 := Hash(Torch{Lit: false})
	if a1 == b1 && a2 == b2 {
		t.Fatalf("expected lit and unlit torches to hash differently")
	}
}

func TestHashStableAcrossEqualValues(t *testing.T) {
	x1, x2 := Hash(Lamp{Lit: true})
	y1, y2 := Hash(Lamp{Lit: true})
	if x1 != y1 || x2 != y2 {
		t.Fatalf("expected equal blocks to hash identically")
	}
}

func TestHashHandlesUnknownWithoutEncoding(t *testing.T) {
	h1, h2 := Hash(Unknown{StateID: 42})
	if h2 != 42 {
		t.Fatalf("expected Unknown's second hash component to be its raw state id, got %d", h2)
	}
	_ = h1
}

func TestIsSolidExcludesNonCubeVariants(t *testing.T) {
	nonSolid := []Block{Air{}, Wire{}, Torch{}, Lever{}, Piston{}, PistonHead{}, NoteBlock{}}
	for _, b := range nonSolid {
		if IsSolid(b) {
			t.Fatalf("expected %T to be non-solid", b)
		}
	}
	if !IsSolid(Lamp{}) {
		t.Fatalf("expected Lamp to be solid")
	}
}

func TestHasBlockEntityMatchesEntityCarryingVariants(t *testing.T) {
	if !HasBlockEntity(Comparator{}) {
		t.Fatalf("expected Comparator to carry a block entity")
	}
	if HasBlockEntity(Lamp{}) {
		t.Fatalf("expected Lamp not to carry a block entity")
	}
}
