// Command swarm runs the swarm simulation in an ebiten window with the ECS
// debug panels drawn on top. Hold the left mouse button over agents to drain
// their health.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/maskecs/ecs"
	"github.com/plus3/maskecs/ecs/debugui"
	debugui_ebiten "github.com/plus3/maskecs/ecs/debugui/ebiten"
	"github.com/plus3/maskecs/internal/cliconf"
	"github.com/plus3/maskecs/internal/swarm"
)

var background = color.RGBA{200, 200, 200, 255}

func main() {
	if err := cliconf.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg := swarm.DefaultConfig()
	flag.Float64Var(&cfg.Width, "width", cliconf.Float("SWARM_WIDTH", cfg.Width), "canvas width in pixels")
	flag.Float64Var(&cfg.Height, "height", cliconf.Float("SWARM_HEIGHT", cfg.Height), "canvas height in pixels")
	flag.IntVar(&cfg.StartingAgents, "agents", cliconf.Int("SWARM_AGENTS", cfg.StartingAgents), "number of starting agents")
	flag.IntVar(&cfg.RespawnBelow, "respawn-below", cliconf.Int("SWARM_RESPAWN_BELOW", cfg.RespawnBelow), "respawn agents when fewer are alive (0 disables)")
	flag.DurationVar(&cfg.TrailLife, "trail-life", cliconf.Duration("SWARM_TRAIL_LIFE", cfg.TrailLife), "how long a trail point stays visible")
	seed := flag.Int("seed", cliconf.Int("SWARM_SEED", int(cfg.Seed)), "random seed")
	debug := flag.Bool("debug-ui", cliconf.Bool("SWARM_DEBUG_UI", true), "show the ECS debug panels")
	policy := flag.String("index-policy", cliconf.String("SWARM_INDEX_POLICY", ecs.IndexIncremental.String()), "query index policy: incremental or invalidate-all")
	logLevel := flag.String("log-level", cliconf.String("LOG_LEVEL", "info"), "log level")
	logFormat := flag.String("log-format", cliconf.String("LOG_FORMAT", "text"), "log format: text or json")
	flag.Parse()
	cfg.Seed = uint64(*seed)

	log, err := cliconf.NewLogger(os.Stderr, *logLevel, *logFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	indexPolicy, err := ecs.ParseIndexPolicy(*policy)
	if err != nil {
		log.WithError(err).Fatal("invalid flags")
	}

	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow("Swarm", int(cfg.Width), int(cfg.Height))
	imgui.CurrentIO().SetIniFilename("")

	world := ecs.NewWorld(
		ecs.WithLogger(log.WithField("component", "ecs")),
		ecs.WithIndexPolicy(indexPolicy),
	)

	sim, err := swarm.New(world, cfg, log.WithField("component", "swarm"))
	if err != nil {
		log.WithError(err).Fatal("failed to start swarm")
	}

	if err := debugui.RegisterImguiSystem(world); err != nil {
		log.WithError(err).Fatal("failed to register imgui system")
	}
	if *debug {
		if _, err := debugui.SpawnDebugUI(world); err != nil {
			log.WithError(err).Fatal("failed to spawn debug ui")
		}
	}

	r := &renderer{sim: sim}
	game := debugui_ebiten.NewGame(world, backend, r.draw)

	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowTitle("Swarm")
	if err := ebiten.RunGame(&inputGame{Game: game, sim: sim, world: world}); err != nil {
		log.WithError(err).Fatal("game loop stopped")
	}
}

// inputGame samples the mouse before each tick.
type inputGame struct {
	*debugui_ebiten.Game
	sim   *swarm.Sim
	world *ecs.World
}

func (g *inputGame) Update() error {
	x, y := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && !debugui.InputCaptured(g.world)
	g.sim.SetPointer(float64(x), float64(y), pressed)
	return g.Game.Update()
}

type renderer struct {
	sim *swarm.Sim
}

func (r *renderer) draw(screen *ebiten.Image) {
	screen.Fill(background)

	for _, s := range r.sim.Display() {
		x, y, radius := float32(s.X), float32(s.Y), float32(s.R)
		switch s.Kind {
		case swarm.ShapeDisc:
			vector.DrawFilledCircle(screen, x, y, radius, s.Color, true)
		case swarm.ShapeRing:
			vector.StrokeCircle(screen, x, y, radius, 1, s.Color, true)
		}
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%.0f FPS  agents %d  trails %d",
		ebiten.ActualFPS(), r.sim.Agents(), r.sim.Trails()))
}
