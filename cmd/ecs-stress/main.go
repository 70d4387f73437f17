// Command ecs-stress runs a world populated from the generated component and
// system table under random structural churn and prints a markdown report.
package main

//go:generate go run ../ecs-gen -components 32 -systems 24 -out generated.go

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"

	"github.com/plus3/maskecs/ecs"
	"github.com/plus3/maskecs/internal/cliconf"
)

func main() {
	if err := cliconf.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	opts := options{}
	flag.DurationVar(&opts.duration, "duration", cliconf.Duration("STRESS_DURATION", 10*time.Second), "The total duration the test should run for.")
	flag.IntVar(&opts.entities, "entities", cliconf.Int("STRESS_ENTITIES", 10000), "The initial number of entities to create.")
	flag.IntVar(&opts.churn, "churn", cliconf.Int("STRESS_CHURN", 100), "Structural changes applied between ticks.")
	flag.StringVar(&opts.policy, "policy", cliconf.String("STRESS_INDEX_POLICY", ecs.IndexIncremental.String()), "Query index policy: incremental or invalidate-all.")
	flag.StringVar(&opts.profile, "profile", cliconf.String("STRESS_PROFILE", ""), "Write a cpu or mem profile to the working directory.")
	flag.Uint64Var(&opts.seed, "seed", uint64(cliconf.Int("STRESS_SEED", 1)), "Random seed for population and churn.")
	flag.BoolVar(&opts.gcPauseMetrics, "gc-pause-metrics", cliconf.Bool("STRESS_GC_PAUSE_METRICS", false), "Enable detailed GC pause metrics in the report.")
	logLevel := flag.String("log-level", cliconf.String("LOG_LEVEL", "info"), "Log level.")
	logFormat := flag.String("log-format", cliconf.String("LOG_FORMAT", "text"), "Log format: text or json.")
	flag.Parse()

	log, err := cliconf.NewLogger(os.Stderr, *logLevel, *logFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(log, opts, os.Stdout); err != nil {
		log.WithError(err).Error("Stress test failed")
		os.Exit(1)
	}
}

type options struct {
	duration       time.Duration
	entities       int
	churn          int
	policy         string
	profile        string
	seed           uint64
	gcPauseMetrics bool
}

// startProfile returns the function that stops and writes the profile.
func startProfile(mode string) (func(), error) {
	switch mode {
	case "":
		return func() {}, nil
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop, nil
	case "mem":
		return profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop, nil
	default:
		return nil, fmt.Errorf("unknown profile mode %q", mode)
	}
}

// run executes the stress test and writes the report to out. The profile,
// when enabled, is written before run returns, on success or failure.
func run(log *logrus.Logger, opts options, out io.Writer) error {
	indexPolicy, err := ecs.ParseIndexPolicy(opts.policy)
	if err != nil {
		return err
	}

	stopProfile, err := startProfile(opts.profile)
	if err != nil {
		return err
	}
	defer stopProfile()

	log.Info("Starting ECS stress test...")

	world := ecs.NewWorld(
		ecs.WithLogger(log.WithField("component", "ecs")),
		ecs.WithIndexPolicy(indexPolicy),
	)
	if err := RegisterAllGeneratedSystems(world); err != nil {
		return fmt.Errorf("register systems: %w", err)
	}

	st := newStress(world, opts.seed)
	log.WithField("entities", opts.entities).Info("Populating world...")
	for range opts.entities {
		st.spawn()
	}

	report := &Report{
		Duration:       opts.duration,
		Entities:       opts.entities,
		Components:     componentCount,
		Systems:        systemCount,
		Churn:          opts.churn,
		Policy:         indexPolicy,
		GCPauseMetrics: opts.gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.WithField("duration", opts.duration).Info("Running simulation...")
	ctx, cancel := context.WithTimeout(context.Background(), opts.duration)
	defer cancel()

	startTime := time.Now()
	lastFrameTime := startTime

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			st.churn(opts.churn)

			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			world.Tick(deltaTime.Seconds())
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.TotalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.World = world.CollectStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.WithFields(logrus.Fields{
		"updates":  report.TotalUpdates,
		"entities": report.World.EntityCount,
	}).Info("Simulation finished.")

	if err := report.Generate(out); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}
	return nil
}

// stress owns the live entity list so churn can pick victims uniformly.
type stress struct {
	world *ecs.World
	rng   *rand.Rand
	live  []*ecs.Entity
}

func newStress(world *ecs.World, seed uint64) *stress {
	return &stress{world: world, rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// spawn creates an entity with one to five distinct random components.
func (s *stress) spawn() *ecs.Entity {
	n := s.rng.IntN(5) + 1
	components := make([]*ecs.Component, 0, n)
	for _, k := range s.rng.Perm(componentCount)[:n] {
		components = append(components, componentKinds[k].New(Payload{}))
	}
	e := s.world.NewEntity(components...)
	s.live = append(s.live, e)
	return e
}

// churn applies n random structural changes: spawns, deletes, and component
// adds and removes, keeping the population roughly stable.
func (s *stress) churn(n int) {
	for range n {
		if len(s.live) == 0 {
			s.spawn()
			continue
		}

		i := s.rng.IntN(len(s.live))
		e := s.live[i]
		kind := componentKinds[s.rng.IntN(componentCount)]

		switch s.rng.IntN(4) {
		case 0:
			s.spawn()
		case 1:
			s.world.DeleteEntity(e)
			s.live[i] = s.live[len(s.live)-1]
			s.live[len(s.live)-1] = nil
			s.live = s.live[:len(s.live)-1]
		case 2:
			e.Add(kind.New(Payload{}))
		case 3:
			// An entity left with no components still counts as alive.
			e.Remove(kind.Type())
		}
	}
}
