package world

import "github.com/df-mc/redstone/cube"

// Lever is a persistent, player-toggled power source.
type Lever struct {
	Face    cube.Face
	Axis    cube.Axis
	Powered bool
}

// EncodeBlock implements Block.
func (l Lever) EncodeBlock() (string, map[string]any) {
	return "minecraft:lever", map[string]any{
		"lever_direction": leverDirection(l.Face, l.Axis),
		"open_bit":        l.Powered,
	}
}

func leverDirection(face cube.Face, axis cube.Axis) string {
	switch face {
	case cube.FaceUp:
		if axis == cube.AxisX {
			return "east_west"
		}
		return "north_south"
	case cube.FaceDown:
		if axis == cube.AxisX {
			return "down_east_west"
		}
		return "down_north_south"
	case cube.FaceNorth:
		return "north"
	case cube.FaceSouth:
		return "south"
	case cube.FaceEast:
		return "east"
	case cube.FaceWest:
		return "west"
	}
	return "north"
}

// Button is a momentary, player-triggered power source that schedules
// its own auto-unpress tick.
type Button struct {
	Face    cube.Face
	Powered bool
}

// EncodeBlock implements Block.
func (b Button) EncodeBlock() (string, map[string]any) {
	return "minecraft:stone_button", map[string]any{
		"facing_direction":   faceName(b.Face),
		"button_pressed_bit": b.Powered,
	}
}

// PressurePlate is a weight-triggered power source, powered from its Top
// face only at strong power.
type PressurePlate struct {
	Powered bool
}

// EncodeBlock implements Block.
func (p PressurePlate) EncodeBlock() (string, map[string]any) {
	strength := int32(0)
	if p.Powered {
		strength = 15
	}
	return "minecraft:stone_pressure_plate", map[string]any{"redstone_signal": strength}
}

func faceName(f cube.Face) string {
	switch f {
	case cube.FaceUp:
		return "up"
	case cube.FaceDown:
		return "down"
	case cube.FaceNorth:
		return "north"
	case cube.FaceSouth:
		return "south"
	case cube.FaceEast:
		return "east"
	case cube.FaceWest:
		return "west"
	}
	return "down"
}
