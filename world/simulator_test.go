package world

import (
	"testing"

	"github.com/df-mc/redstone/cube"
	"github.com/df-mc/redstone/tick"
)

func TestSimulatorGetBlockDefaultsToAir(t *testing.T) {
	s := NewSimulator(SimulatorConfig{})
	if _, ok := s.GetBlock(cube.Pos{0, 0, 0}).(Air); !ok {
		t.Fatalf("expected an unset position to read as Air")
	}
}

func TestSimulatorSetBlockReportsChanged(t *testing.T) {
	s := NewSimulator(SimulatorConfig{})
	pos := cube.Pos{1, 2, 3}

	if changed := s.SetBlock(pos, Lamp{Lit: true}); !changed {
		t.Fatalf("expected the first write to report changed")
	}
	if changed := s.SetBlock(pos, Lamp{Lit: true}); changed {
		t.Fatalf("expected writing the same state twice to report unchanged")
	}
	if changed := s.SetBlock(pos, Lamp{Lit: false}); !changed {
		t.Fatalf("expected a differing state to report changed")
	}
}

func TestSimulatorSetBlockToAirClearsEntity(t *testing.T) {
	s := NewSimulator(SimulatorConfig{})
	pos := cube.Pos{0, 0, 0}
	s.SetBlock(pos, Comparator{})
	s.SetBlockEntity(pos, ComparatorEntity{OutputStrength: 5})

	s.SetBlock(pos, Air{})

	if _, ok := s.GetBlockEntity(pos); ok {
		t.Fatalf("expected clearing the block to air to also clear its entity")
	}
}

func TestSimulatorPendingTickAtTracksScheduledPositions(t *testing.T) {
	s := NewSimulator(SimulatorConfig{})
	pos := cube.Pos{5, 5, 5}

	if s.PendingTickAt(pos) {
		t.Fatalf("expected no pending tick before scheduling one")
	}
	s.ScheduleTick(pos, 2, tick.Normal)
	if !s.PendingTickAt(pos) {
		t.Fatalf("expected a pending tick after scheduling one")
	}
}

func TestSimulatorStepDrainsThisSlotBeforeAdvancing(t *testing.T) {
	s := NewSimulator(SimulatorConfig{})
	a := cube.Pos{0, 0, 0}
	b := cube.Pos{1, 0, 0}
	s.ScheduleHalfTick(a, 1, tick.Normal)
	s.ScheduleHalfTick(b, 1, tick.Normal)

	var fired []cube.Pos
	s.Step(func(pos cube.Pos) { fired = append(fired, pos) })

	if len(fired) != 2 {
		t.Fatalf("expected both same-slot entries to fire in one Step call, got %d", len(fired))
	}
	if s.PendingTickAt(a) || s.PendingTickAt(b) {
		t.Fatalf("expected both positions to be cleared from pending after firing")
	}
}

func TestSimulatorBlockActionDrainsOnce(t *testing.T) {
	s := NewSimulator(SimulatorConfig{})
	pos := cube.Pos{0, 0, 0}
	s.BlockAction(pos, Action{Kind: ActionPistonExtend})

	events := s.DrainActions()
	if len(events) != 1 {
		t.Fatalf("expected one recorded action, got %d", len(events))
	}
	if events[0].Action.Kind != ActionPistonExtend {
		t.Fatalf("expected the recorded action kind to round-trip")
	}
	if len(s.DrainActions()) != 0 {
		t.Fatalf("expected DrainActions to clear the log")
	}
}
