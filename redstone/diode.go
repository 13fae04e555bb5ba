package redstone

import (
	"github.com/df-mc/redstone/cube"
	"github.com/df-mc/redstone/tick"
	"github.com/df-mc/redstone/world"
)

// DiodeGetInputStrength samples the power a diode (repeater or
// comparator) reads from directly behind it. If the direct query comes
// back zero but the input block is itself Wire, the wire's own stored
// power is used instead - this lets a diode read a wire sitting right
// behind it even when the wire's weak-power-toward-the-diode rule would
// otherwise report 0 (§4.6).
func DiodeGetInputStrength(w world.World, pos cube.Pos, facing cube.Direction) uint8 {
	ip := pos.Side(facing.Face())
	ib := w.GetBlock(ip)
	power := GetRedstonePower(ib, w, ip, facing.Face())
	if power == 0 {
		if wire, ok := ib.(world.Wire); ok {
			power = wire.Power
		}
	}
	return power
}

// repeaterLocked reports whether any repeater perpendicular to r and
// facing into one of its sides is currently powered (§4.5's lock rule).
func repeaterLocked(w world.World, pos cube.Pos, facing cube.Direction) bool {
	for _, side := range []cube.Direction{facing.Rotate(), facing.RotateCCW()} {
		np := pos.Side(side.Face())
		if nr, ok := w.GetBlock(np).(world.Repeater); ok {
			if nr.Facing == side.Opposite() && nr.Powered {
				return true
			}
		}
	}
	return false
}

func updateRepeater(r world.Repeater, w world.World, pos cube.Pos) {
	locked := repeaterLocked(w, pos, r.Facing)
	if locked != r.Locked {
		r.Locked = locked
		w.SetBlock(pos, r)
		return
	}
	if locked {
		return
	}
	shouldBePowered := DiodeGetInputStrength(w, pos, r.Facing) > 0
	if shouldBePowered == r.Powered || w.PendingTickAt(pos) {
		return
	}
	priority := tick.High
	if !shouldBePowered {
		priority = tick.Higher
	}
	w.ScheduleTick(pos, int(r.Delay), priority)
}

func tickRepeater(r world.Repeater, w world.World, pos cube.Pos) {
	if r.Locked {
		return
	}
	shouldBePowered := DiodeGetInputStrength(w, pos, r.Facing) > 0
	if shouldBePowered == r.Powered {
		return
	}
	r.Powered = shouldBePowered
	w.SetBlock(pos, r)
	frontPos := pos.Side(r.Facing.Opposite().Face())
	frontBlock := w.GetBlock(frontPos)
	Update(frontBlock, w, frontPos, ptr(r.Facing.Face()))
	for _, face := range cube.Faces() {
		np := frontPos.Side(face)
		Update(w.GetBlock(np), w, np, ptr(face.Opposite()))
	}
}

// ComparatorOverride computes a container's precomputed comparator
// signal strength from inventory fullness (§4.6, resolved against the
// original source's load_container in §12): the "+1" floor term only
// applies when the container holds anything at all.
func ComparatorOverride(inventory []world.InventoryEntry, numSlots int, maxStackSize func(item string) int) uint8 {
	if numSlots == 0 {
		return 0
	}
	var fullness float64
	for _, e := range inventory {
		max := maxStackSize(e.Item)
		if max <= 0 {
			max = 64
		}
		fullness += float64(e.Count) / float64(max)
	}
	if fullness <= 0 {
		return 0
	}
	override := 1.0 + (fullness/float64(numSlots))*14.0
	v := int(override)
	if v > 15 {
		v = 15
	}
	if v < 0 {
		v = 0
	}
	return uint8(v)
}

func comparatorSideInput(w world.World, pos cube.Pos, facing cube.Direction) uint8 {
	left := facing.Rotate()
	right := facing.RotateCCW()
	lp := pos.Side(left.Face())
	rp := pos.Side(right.Face())
	lv := GetRedstonePower(w.GetBlock(lp), w, lp, left.Face())
	rv := GetRedstonePower(w.GetBlock(rp), w, rp, right.Face())
	if lv > rv {
		return lv
	}
	return rv
}

func comparatorBackInput(w world.World, pos cube.Pos, facing cube.Direction) uint8 {
	back := DiodeGetInputStrength(w, pos, facing)
	bp := pos.Side(facing.Face())
	if be, ok := w.GetBlockEntity(bp); ok {
		if ce, ok := be.(world.ContainerEntity); ok {
			if ce.ComparatorOverride > back {
				back = ce.ComparatorOverride
			}
		}
	}
	return back
}

func comparatorOutput(c world.Comparator, w world.World, pos cube.Pos) uint8 {
	back := comparatorBackInput(w, pos, c.Facing)
	side := comparatorSideInput(w, pos, c.Facing)
	switch c.Mode {
	case world.ModeSubtract:
		if back < side {
			return 0
		}
		return back - side
	default:
		if back >= side {
			return back
		}
		return 0
	}
}

func updateComparator(c world.Comparator, w world.World, pos cube.Pos) {
	output := comparatorOutput(c, w, pos)
	shouldBePowered := output > 0
	if shouldBePowered == c.Powered || w.PendingTickAt(pos) {
		return
	}
	usingContainer := false
	bp := pos.Side(c.Facing.Face())
	if _, ok := w.GetBlockEntity(bp); ok {
		if _, ok := w.GetBlock(bp).(world.Container); ok {
			usingContainer = true
		}
	}
	priority := tick.High
	if usingContainer {
		priority = tick.Normal
	}
	w.ScheduleTick(pos, 1, priority)
}

func tickComparator(c world.Comparator, w world.World, pos cube.Pos) {
	output := comparatorOutput(c, w, pos)
	shouldBePowered := output > 0
	if be, ok := w.GetBlockEntity(pos); ok {
		if ce, ok := be.(world.ComparatorEntity); ok && ce.OutputStrength != output {
			w.SetBlockEntity(pos, world.ComparatorEntity{OutputStrength: output})
		}
	} else {
		w.SetBlockEntity(pos, world.ComparatorEntity{OutputStrength: output})
	}
	if shouldBePowered == c.Powered {
		return
	}
	c.Powered = shouldBePowered
	w.SetBlock(pos, c)
	frontPos := pos.Side(c.Facing.Opposite().Face())
	frontBlock := w.GetBlock(frontPos)
	Update(frontBlock, w, frontPos, ptr(c.Facing.Face()))
	for _, face := range cube.Faces() {
		np := frontPos.Side(face)
		Update(w.GetBlock(np), w, np, ptr(face.Opposite()))
	}
}

func ptr[T any](v T) *T { return &v }
