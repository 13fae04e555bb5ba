package world

import "testing"

func TestComparatorEntityNBTRoundTrip(t *testing.T) {
	want := ComparatorEntity{OutputStrength: 12}
	got := DecodeComparatorNBT(want.EncodeNBT())
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestComparatorEntityDecodeClampsOutOfRangeSignal(t *testing.T) {
	got := DecodeComparatorNBT(map[string]any{"OutputSignal": int32(99)})
	if got.OutputStrength != 15 {
		t.Fatalf("expected an out-of-range signal to clamp to 15, got %d", got.OutputStrength)
	}
}

func TestContainerEntityNBTRoundTrip(t *testing.T) {
	want := ContainerEntity{
		Kind: ContainerHopper,
		Inventory: []InventoryEntry{
			{Slot: 0, Item: "minecraft:redstone", Count: 32},
		},
	}
	got := DecodeContainerNBT(want.EncodeNBT())
	if got.Kind != want.Kind {
		t.Fatalf("expected kind %v, got %v", want.Kind, got.Kind)
	}
	if len(got.Inventory) != 1 || got.Inventory[0] != want.Inventory[0] {
		t.Fatalf("expected inventory to round-trip, got %+v", got.Inventory)
	}
}

func TestSignEntityNBTRoundTrip(t *testing.T) {
	want := SignEntity{Front: [4]string{"hello", "", "", ""}}
	got := DecodeSignNBT(want.EncodeNBT())
	if got.Front != want.Front {
		t.Fatalf("expected front text to round-trip, got %+v", got.Front)
	}
}

func TestMovingPistonEntityScalarNBTRoundTrip(t *testing.T) {
	want := MovingPistonEntity{Extending: true, Facing: 2, Progress: 0.5, Source: true}
	got := DecodeMovingPistonNBT(want.EncodeNBT())
	if got.Extending != want.Extending || got.Facing != want.Facing || got.Progress != want.Progress || got.Source != want.Source {
		t.Fatalf("expected scalar fields to round-trip, got %+v", got)
	}
}
