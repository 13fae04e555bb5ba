package world

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/df-mc/redstone/cube"
	"github.com/df-mc/redstone/tick"
)

// SimulatorConfig holds the tunable parameters for a Simulator. The zero
// value is usable; sensible defaults are applied by withDefaults.
type SimulatorConfig struct {
	// Log receives warnings for inconsistent world states encountered
	// during simulation (§7 kind 3). Defaults to slog.Default().
	Log *slog.Logger
	// PendingSetCapacity sizes the backing presence index for
	// PendingTickAt. Defaults to 1024.
	PendingSetCapacity int
}

func (c SimulatorConfig) withDefaults() SimulatorConfig {
	if c.Log == nil {
		c.Log = slog.Default()
	}
	if c.PendingSetCapacity <= 0 {
		c.PendingSetCapacity = 1024
	}
	return c
}

// Simulator is a single self-contained redstone world: a block grid, a
// block-entity side table, and a tick scheduler, all owned by one logical
// actor per §5's single-threaded model. Simulator is not safe for
// concurrent use; run independent plots as independent Simulators.
type Simulator struct {
	// ID distinguishes this simulator instance, mirroring the role
	// uuid.UUID plays for entities/players in the teacher.
	ID uuid.UUID

	log     *slog.Logger
	blocks  map[cube.Pos]Block
	ents    map[cube.Pos]BlockEntity
	sched   *tick.Scheduler[cube.Pos]
	pending *tick.PendingSet
	actions []actionEvent
}

type actionEvent struct {
	Pos    cube.Pos
	Action Action
}

// NewSimulator constructs an empty Simulator (every unset position reads
// as Air).
func NewSimulator(conf SimulatorConfig) *Simulator {
	conf = conf.withDefaults()
	return &Simulator{
		ID:      uuid.New(),
		log:     conf.Log,
		blocks:  make(map[cube.Pos]Block),
		ents:    make(map[cube.Pos]BlockEntity),
		sched:   tick.NewScheduler[cube.Pos](),
		pending: tick.NewPendingSet(conf.PendingSetCapacity),
	}
}

// GetBlock implements World.
func (s *Simulator) GetBlock(pos cube.Pos) Block {
	if b, ok := s.blocks[pos]; ok {
		return b
	}
	return Air{}
}

// SetBlock implements World.
func (s *Simulator) SetBlock(pos cube.Pos, b Block) bool {
	prev, had := s.blocks[pos]
	_, bAir := b.(Air)
	if had && sameBlock(prev, b) {
		return false
	}
	if bAir && !had {
		return false
	}
	if bAir {
		delete(s.blocks, pos)
	} else {
		s.blocks[pos] = b
	}
	if !HasBlockEntity(b) {
		delete(s.ents, pos)
	}
	return true
}

func sameBlock(a, b Block) bool {
	an, ap := a.EncodeBlock()
	bn, bp := b.EncodeBlock()
	if an != bn || len(ap) != len(bp) {
		return false
	}
	for k, v := range ap {
		if bp[k] != v {
			return false
		}
	}
	return true
}

// GetBlockEntity implements World.
func (s *Simulator) GetBlockEntity(pos cube.Pos) (BlockEntity, bool) {
	be, ok := s.ents[pos]
	return be, ok
}

// SetBlockEntity implements World.
func (s *Simulator) SetBlockEntity(pos cube.Pos, be BlockEntity) {
	s.ents[pos] = be
}

// DeleteBlockEntity implements World.
func (s *Simulator) DeleteBlockEntity(pos cube.Pos) {
	delete(s.ents, pos)
}

// ScheduleTick implements World.
func (s *Simulator) ScheduleTick(pos cube.Pos, delayTicks int, priority tick.Priority) {
	s.ScheduleHalfTick(pos, delayTicks*2, priority)
}

// ScheduleHalfTick implements World.
func (s *Simulator) ScheduleHalfTick(pos cube.Pos, delayHalfTicks int, priority tick.Priority) {
	s.sched.ScheduleHalfTick(pos, delayHalfTicks, priority)
	s.pending.Add(pos.Pack())
}

// PendingTickAt implements World.
func (s *Simulator) PendingTickAt(pos cube.Pos) bool {
	return s.pending.Contains(pos.Pack())
}

// BlockAction implements World.
func (s *Simulator) BlockAction(pos cube.Pos, action Action) {
	s.actions = append(s.actions, actionEvent{Pos: pos, Action: action})
}

// DrainActions returns and clears the block-action events emitted since
// the last call, for a caller (e.g. a network layer) that wants to relay
// them to clients.
func (s *Simulator) DrainActions() []actionEvent {
	out := s.actions
	s.actions = nil
	return out
}

// Log returns the logger this Simulator was configured with, for rule
// packages (redstone) that need to report kind-3 inconsistent-state
// warnings (§7) against the same sink.
func (s *Simulator) Log() *slog.Logger { return s.log }

// Step runs the scheduler forward one half tick: it pops and invokes fn
// for every entry due in the newly-current slot (including entries a
// rule invocation re-schedules with NanoTick priority into the very same
// slot, per §5's ordering rule), then advances the cursor.
func (s *Simulator) Step(fn func(pos cube.Pos)) {
	s.sched.QueuesThisTickMoveNext()
	for !s.sched.ThisTickEmpty() {
		pos, ok := s.sched.PopOneThisTick()
		if !ok {
			break
		}
		s.pending.Remove(pos.Pack())
		fn(pos)
	}
}
