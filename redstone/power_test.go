package redstone

import (
	"testing"

	"github.com/df-mc/redstone/cube"
	"github.com/df-mc/redstone/world"
)

func TestGetWeakPowerLeverIsOmnidirectional(t *testing.T) {
	lever := world.Lever{Face: cube.FaceEast, Powered: true}
	for _, face := range cube.Faces() {
		if got := GetWeakPower(lever, nil, cube.Pos{}, face, true); got != 15 {
			t.Fatalf("face %v: expected weak power 15, got %d", face, got)
		}
	}
	lever.Powered = false
	if got := GetWeakPower(lever, nil, cube.Pos{}, cube.FaceUp, true); got != 0 {
		t.Fatalf("expected unpowered lever to emit no weak power, got %d", got)
	}
}

func TestGetStrongPowerLeverOnlyThroughMountFace(t *testing.T) {
	lever := world.Lever{Face: cube.FaceUp, Powered: true}
	if got := GetStrongPower(lever, nil, cube.Pos{}, cube.FaceUp, true); got != 15 {
		t.Fatalf("expected strong power through the mount face, got %d", got)
	}
	if got := GetStrongPower(lever, nil, cube.Pos{}, cube.FaceNorth, true); got != 0 {
		t.Fatalf("expected no strong power through a non-mount face, got %d", got)
	}
}

func TestGetRedstonePowerConductsThroughSolidBlock(t *testing.T) {
	w := newTestSimulator()
	leverPos := cube.Pos{0, 0, 0}
	cubePos := cube.Pos{0, 1, 0}
	w.SetBlock(leverPos, world.Lever{Face: cube.FaceDown, Powered: true})
	w.SetBlock(cubePos, world.Lamp{Lit: true})

	got := GetRedstonePower(w.GetBlock(cubePos), w, cubePos, cube.FaceDown)
	if got != 15 {
		t.Fatalf("expected the solid lamp to conduct the lever's strong power, got %d", got)
	}
}

func TestWireWeakPowerRespectsSideConnectivity(t *testing.T) {
	w := newTestSimulator()
	pos := cube.Pos{0, 0, 0}
	wire := world.Wire{Power: 10}
	w.SetBlock(pos, wire)

	if got := GetWeakPower(wire, w, pos, cube.FaceUp, true); got != 10 {
		t.Fatalf("expected wire to report its own power upward, got %d", got)
	}
	if got := GetWeakPower(wire, w, pos, cube.FaceDown, true); got != 0 {
		t.Fatalf("expected wire to report no power downward, got %d", got)
	}
}
