// Package cube provides the spatial primitives the redstone simulation is
// built on: block positions, faces and facings.
package cube

import "github.com/go-gl/mathgl/mgl64"

// Pos represents the position of a block inside a world. When used as a
// map key, the array representation hashes and compares cheaply without a
// custom Hash/Equal pair.
type Pos [3]int

// X returns the X coordinate of the position.
func (p Pos) X() int { return p[0] }

// Y returns the Y coordinate of the position.
func (p Pos) Y() int { return p[1] }

// Z returns the Z coordinate of the position.
func (p Pos) Z() int { return p[2] }

// Side returns the position of the neighbouring block on the face passed.
func (p Pos) Side(face Face) Pos {
	switch face {
	case FaceDown:
		return Pos{p[0], p[1] - 1, p[2]}
	case FaceUp:
		return Pos{p[0], p[1] + 1, p[2]}
	case FaceNorth:
		return Pos{p[0], p[1], p[2] - 1}
	case FaceSouth:
		return Pos{p[0], p[1], p[2] + 1}
	case FaceWest:
		return Pos{p[0] - 1, p[1], p[2]}
	case FaceEast:
		return Pos{p[0] + 1, p[1], p[2]}
	}
	panic("cube: invalid face")
}

// Offset returns the position offset by the facing passed, n blocks in that
// direction.
func (p Pos) Offset(facing Facing, n int) Pos {
	switch facing {
	case FacingNorth:
		return Pos{p[0], p[1], p[2] - n}
	case FacingSouth:
		return Pos{p[0], p[1], p[2] + n}
	case FacingEast:
		return Pos{p[0] + n, p[1], p[2]}
	case FacingWest:
		return Pos{p[0] - n, p[1], p[2]}
	case FacingUp:
		return Pos{p[0], p[1] + n, p[2]}
	case FacingDown:
		return Pos{p[0], p[1] - n, p[2]}
	}
	panic("cube: invalid facing")
}

// Vec3 returns the position as a mgl64.Vec3, placed at the block's
// minimum corner.
func (p Pos) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{float64(p[0]), float64(p[1]), float64(p[2])}
}

// Vec3Centre returns the position as a mgl64.Vec3 offset to the centre of
// the block, for callers that need a world-space point rather than an
// integer cell.
func (p Pos) Vec3Centre() mgl64.Vec3 {
	return p.Vec3().Add(mgl64.Vec3{0.5, 0.5, 0.5})
}

// Add returns p shifted by delta component-wise.
func (p Pos) Add(delta Pos) Pos {
	return Pos{p[0] + delta[0], p[1] + delta[1], p[2] + delta[2]}
}

// Pack encodes the position into a single int64, used by the scheduler's
// pending-tick presence set and by deterministic ordering keys. The
// encoding is lossy outside of a ±2^20 cube around the origin, which
// comfortably covers any plot-sized world this core targets.
func (p Pos) Pack() int64 {
	const bits = 21
	const mask = (1 << bits) - 1
	x := int64(p[0]) & mask
	y := int64(p[1]) & mask
	z := int64(p[2]) & mask
	return x<<(2*bits) | y<<bits | z
}
