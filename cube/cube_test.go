package cube

import "testing"

func TestFaceOppositeInvolution(t *testing.T) {
	for _, f := range Faces() {
		if f.Opposite().Opposite() != f {
			t.Fatalf("face %d: opposite is not involutive", f)
		}
	}
}

func TestPosSideOppositeReturnsOriginal(t *testing.T) {
	p := Pos{4, 64, -3}
	for _, f := range Faces() {
		if got := p.Side(f).Side(f.Opposite()); got != p {
			t.Fatalf("face %d: Side round trip = %v, want %v", f, got, p)
		}
	}
}

func TestFaceFacingDirectionRoundTrip(t *testing.T) {
	for _, d := range Directions() {
		f := d.Face()
		if !f.Horizontal() {
			t.Fatalf("direction %v: face %v is not horizontal", d, f)
		}
		if f.Direction() != d {
			t.Fatalf("direction %v: round trip through face = %v", d, f.Direction())
		}
		if f.Facing().Direction() != d {
			t.Fatalf("direction %v: round trip through facing = %v", d, f.Facing().Direction())
		}
	}
}

func TestFacingOppositeInvolution(t *testing.T) {
	facings := []Facing{FacingNorth, FacingEast, FacingSouth, FacingWest, FacingUp, FacingDown}
	for _, f := range facings {
		if f.Opposite().Opposite() != f {
			t.Fatalf("facing %v: opposite is not involutive", f)
		}
	}
}

func TestDirectionRotateFourTimesIdentity(t *testing.T) {
	d := DirectionNorth
	for i := 0; i < 4; i++ {
		d = d.Rotate()
	}
	if d != DirectionNorth {
		t.Fatalf("rotate x4 = %v, want north", d)
	}
}

func TestPosPackDistinctForDistinctPositions(t *testing.T) {
	seen := map[int64]Pos{}
	positions := []Pos{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {-1, 64, 5}, {5, -5, 5}}
	for _, p := range positions {
		key := p.Pack()
		if other, ok := seen[key]; ok {
			t.Fatalf("positions %v and %v collide on pack key %d", p, other, key)
		}
		seen[key] = p
	}
}
