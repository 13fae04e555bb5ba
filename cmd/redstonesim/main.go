// Command redstonesim runs a small standalone redstone circuit through a
// handful of half ticks and reports the result, exercising the
// cube/world/redstone/registry/config packages together
// the way a host embedding this module would.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/df-mc/redstone/config"
	"github.com/df-mc/redstone/cube"
	"github.com/df-mc/redstone/redstone"
	"github.com/df-mc/redstone/world"
	"github.com/df-mc/redstone/world/registry"
)

func main() {
	confPath := "redstonesim.toml"
	if len(os.Args) > 1 {
		confPath = os.Args[1]
	}
	conf, err := config.Load(confPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "redstonesim:", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: conf.Level()}))
	redstone.SetLogger(log)

	reg := registry.NewMemory()
	reg.Register(world.Lever{})
	reg.Register(world.Lamp{})

	sim := world.NewSimulator(world.SimulatorConfig{
		Log:                log,
		PendingSetCapacity: conf.PendingSetCapacity,
	})

	sessionID := uuid.New()
	log.Info("starting session", "session_id", sessionID, "simulator_id", sim.ID)

	leverPos := cube.Pos{0, 0, 0}
	lampPos := cube.Pos{1, 0, 0}
	sim.SetBlock(leverPos, world.Lever{Face: cube.FaceEast, Powered: false})
	sim.SetBlock(lampPos, world.Lamp{Lit: false})

	log.Info("lamp before power", "lit", sim.GetBlock(lampPos).(world.Lamp).Lit)

	sim.SetBlock(leverPos, world.Lever{Face: cube.FaceEast, Powered: true})
	redstone.UpdateSurroundingBlocks(sim, leverPos)

	runHalfTicks(sim, 4)
	log.Info("lamp after power", "lit", sim.GetBlock(lampPos).(world.Lamp).Lit)

	sim.SetBlock(leverPos, world.Lever{Face: cube.FaceEast, Powered: false})
	redstone.UpdateSurroundingBlocks(sim, leverPos)

	runHalfTicks(sim, 8)
	log.Info("lamp after release", "lit", sim.GetBlock(lampPos).(world.Lamp).Lit)
}

func runHalfTicks(sim *world.Simulator, n int) {
	for i := 0; i < n; i++ {
		sim.Step(func(pos cube.Pos) {
			redstone.Tick(sim.GetBlock(pos), sim, pos)
		})
	}
}
