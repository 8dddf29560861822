package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/breakout-sim/internal/core"
	"github.com/vovakirdan/breakout-sim/internal/games/breakout"
	"github.com/vovakirdan/breakout-sim/internal/games/breakout/levels"
	"github.com/vovakirdan/breakout-sim/internal/platform/runner"
	"github.com/vovakirdan/breakout-sim/internal/registry"
)

var (
	flagLevelFile string
	flagTicks     uint64
	flagSeconds   float64
	flagAutopilot bool
	flagDeadZone  float32
	flagScript    string
	flagRealtime  bool
	flagKeepGoing bool
	flagResume    string
	flagDump      string
)

const defaultSeconds = 30

var runCmd = &cobra.Command{
	Use:   "run [level]",
	Short: "Simulate a level",
	Long: `Build a world from a level and tick it until the tick limit, until the
ball drops out of the field, or until every block is gone.

Input options:
  --autopilot          - Steer the paddle under the ball
  --script <keys>      - Replay held keys, e.g. "right:120,none:30,left:60"
  (neither)            - Leave the paddle where it is

Without --realtime the simulation runs as fast as possible. With --realtime it
is paced to the tick rate. --seconds defaults to 30 without --realtime and to 0
(run until interrupted) with it.

Examples:
  breakoutsim run reference --ticks 960
  breakoutsim run serve --seed 42 --autopilot
  breakoutsim run wall --autopilot --realtime --log-level debug
  breakoutsim run --level-file ./bricks.yaml --dump final.yaml
  breakoutsim run wall --resume final.yaml --seconds 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagLevelFile, "level-file", "", "Load the level from a YAML file instead of the built-ins")
	runCmd.Flags().Uint64Var(&flagTicks, "ticks", 0, "Stop after this many ticks (overrides --seconds)")
	runCmd.Flags().Float64Var(&flagSeconds, "seconds", defaultSeconds, "Stop after this much simulated time (default 0 with --realtime: run until interrupted)")
	runCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Steer the paddle under the ball")
	runCmd.Flags().Float32Var(&flagDeadZone, "dead-zone", 0.01, "Autopilot tolerance before it moves the paddle")
	runCmd.Flags().StringVar(&flagScript, "script", "", "Scripted input as key:ticks pairs")
	runCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace ticks to wall-clock time")
	runCmd.Flags().BoolVar(&flagKeepGoing, "keep-going", false, "Keep ticking after the ball is lost or the field is cleared")
	runCmd.Flags().StringVar(&flagResume, "resume", "", "Restore a snapshot YAML before running")
	runCmd.Flags().StringVar(&flagDump, "dump", "", "Write the final snapshot as YAML to this path (- for stdout)")
	runCmd.MarkFlagsMutuallyExclusive("autopilot", "script")
}

func runRun(cmd *cobra.Command, args []string) error {
	if flagRealtime && !cmd.Flags().Changed("seconds") {
		flagSeconds = 0
	}
	if (len(args) == 0) == (flagLevelFile == "") {
		return errors.New("give exactly one of a level ID or --level-file; run 'breakoutsim list' to see levels")
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logger = logger.With("run", runID[:8])

	level, err := resolveLevel(args, runtimeConfig(cfg))
	if err != nil {
		return err
	}

	w, err := level.Build(cfg.DT(), cfg.Tuning())
	if err != nil {
		return err
	}
	if flagResume != "" {
		if err := resume(w, flagResume); err != nil {
			return err
		}
		logger.Info("resumed", "file", flagResume, "tick", w.Ticks())
	}

	input, err := inputSource()
	if err != nil {
		return err
	}

	ticks := flagTicks
	if ticks == 0 && flagSeconds > 0 {
		ticks = w.Ticks() + uint64(flagSeconds*float64(cfg.Simulation.TickRate))
	}
	if sc, ok := input.(*runner.Script); ok && ticks > 0 {
		if n := uint64(sc.Len()); w.Ticks()+n > ticks {
			return fmt.Errorf("script holds keys for %d ticks but the run stops at tick %d", n, ticks)
		}
	}

	opts := runner.Options{
		Ticks:      ticks,
		Realtime:   flagRealtime,
		TickRate:   cfg.Simulation.TickRate,
		MaxCatchUp: time.Duration(cfg.Simulation.MaxCatchUp * float64(time.Second)),
		KeepGoing:  flagKeepGoing,
	}

	logger.Debug("config",
		"level", level.ID,
		"dt", cfg.DT(),
		"boost", cfg.Physics.Boost,
		"max_deflection", cfg.Physics.MaxDeflection,
		"paddle_speed", cfg.Physics.PaddleSpeed,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := runner.New(w, breakout.NewController(cfg.Physics.PaddleSpeed), input, opts, logger)
	sum, err := r.Run(ctx)
	if err != nil {
		return err
	}
	sum.RunID = runID
	sum.Level = level.ID

	styled := term.IsTerminal(int(os.Stdout.Fd()))
	fmt.Print(runner.RenderSummary(sum, styled))

	if flagDump != "" {
		if err := dump(r.World(), flagDump); err != nil {
			return err
		}
	}
	return nil
}

func resolveLevel(args []string, rc core.RuntimeConfig) (breakout.Level, error) {
	if flagLevelFile != "" {
		return levels.LoadFile(flagLevelFile)
	}
	if !registry.Exists(args[0]) {
		return breakout.Level{}, fmt.Errorf("unknown level %q; run 'breakoutsim list' to see levels", args[0])
	}
	return registry.Create(args[0], rc)
}

func inputSource() (runner.InputSource, error) {
	switch {
	case flagAutopilot:
		return runner.Autopilot(flagDeadZone), nil
	case flagScript != "":
		sc, err := runner.ParseScript(flagScript)
		if err != nil {
			return nil, err
		}
		return sc, nil
	default:
		return runner.Idle, nil
	}
}

func resume(w *breakout.World, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}
	var snap breakout.Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("parsing snapshot %s: %w", path, err)
	}
	if err := w.ApplySnapshot(snap); err != nil {
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	return nil
}

func dump(w *breakout.World, path string) error {
	snap := w.Snapshot()
	data, err := yaml.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
