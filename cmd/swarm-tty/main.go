// Command swarm-tty runs the swarm simulation in a terminal. Click and drag
// to drain agents under the mouse; q or Esc quits.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/plus3/maskecs/ecs"
	"github.com/plus3/maskecs/internal/cliconf"
	"github.com/plus3/maskecs/internal/swarm"
)

const frameInterval = 16 * time.Millisecond

func main() {
	if err := cliconf.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg := swarm.DefaultConfig()
	flag.IntVar(&cfg.StartingAgents, "agents", cliconf.Int("SWARM_AGENTS", cfg.StartingAgents), "number of starting agents")
	flag.IntVar(&cfg.RespawnBelow, "respawn-below", cliconf.Int("SWARM_RESPAWN_BELOW", cfg.RespawnBelow), "respawn agents when fewer are alive (0 disables)")
	flag.DurationVar(&cfg.TrailLife, "trail-life", cliconf.Duration("SWARM_TRAIL_LIFE", cfg.TrailLife), "how long a trail point stays visible")
	seed := flag.Int("seed", cliconf.Int("SWARM_SEED", int(cfg.Seed)), "random seed")
	logFile := flag.String("log-file", cliconf.String("SWARM_LOG_FILE", ""), "write logs to this file (the terminal is taken by the display)")
	logLevel := flag.String("log-level", cliconf.String("LOG_LEVEL", "info"), "log level")
	flag.Parse()
	cfg.Seed = uint64(*seed)

	log, closeLog, err := openLog(*logFile, *logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.WithError(err).Fatal("failed to create screen")
	}
	if err := screen.Init(); err != nil {
		log.WithError(err).Fatal("failed to initialize screen")
	}
	defer screen.Fini()
	screen.EnableMouse()

	world := ecs.NewWorld(ecs.WithLogger(log.WithField("component", "ecs")))
	sim, err := swarm.New(world, cfg, log.WithField("component", "swarm"))
	if err != nil {
		screen.Fini()
		log.WithError(err).Fatal("failed to start swarm")
	}

	run(screen, world, sim)
}

// openLog discards logs unless a file is given.
func openLog(path, level string) (*logrus.Logger, func(), error) {
	if path == "" {
		log, err := cliconf.NewLogger(io.Discard, level, "text")
		return log, func() {}, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	log, err := cliconf.NewLogger(f, level, "text")
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return log, func() { f.Close() }, nil
}

func run(screen tcell.Screen, world *ecs.World, sim *swarm.Sim) {
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	view := newViewport(screen, sim.Config())
	last := time.Now()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return
				}
			case *tcell.EventResize:
				view.resize(screen.Size())
				screen.Sync()
			case *tcell.EventMouse:
				col, row := ev.Position()
				x, y := view.toCanvas(col, row)
				sim.SetPointer(x, y, ev.Buttons()&tcell.Button1 != 0)
			}

		case now := <-ticker.C:
			world.Tick(now.Sub(last).Seconds())
			last = now

			screen.Clear()
			view.draw(screen, sim.Display())
			drawStatus(screen, fmt.Sprintf(" agents %d  trails %d  q quits ", sim.Agents(), sim.Trails()))
			screen.Show()
		}
	}
}

func drawStatus(screen tcell.Screen, text string) {
	style := tcell.StyleDefault.Reverse(true)
	for i, r := range text {
		screen.SetContent(i, 0, r, nil, style)
	}
}
