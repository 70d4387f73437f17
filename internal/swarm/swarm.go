// Package swarm is a small agent simulation built on the ecs package. Agents
// wander along noise curves inside a rectangle; holding the pointer over an
// agent drains its health and leaves a fading trail behind the pointer.
// Rendering goes through a display list so any driver can present it.
package swarm

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/plus3/maskecs/ecs"
)

// Sim owns the swarm systems registered on a world.
type Sim struct {
	World *ecs.World

	cfg   Config
	log   *logrus.Entry
	rng   *rand.Rand
	noise *Noise

	clock   *ecs.Singleton[Clock]
	pointer *ecs.Singleton[Pointer]
	display *ecs.Singleton[DisplayList]

	agents *ecs.Query
	trails *ecs.Query

	liveTrails int
	newTrails  int
}

// New registers the swarm systems on world and spawns the starting agents.
func New(world *ecs.World, cfg Config, log *logrus.Entry) (*Sim, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("swarm: invalid canvas %gx%g", cfg.Width, cfg.Height)
	}

	s := &Sim{
		World:   world,
		cfg:     cfg,
		log:     log,
		rng:     rand.New(rand.NewPCG(cfg.Seed, cfg.Seed+1)),
		noise:   NewNoise(cfg.Seed, 4),
		clock:   ecs.NewSingleton(world, ClockKind),
		pointer: ecs.NewSingleton(world, PointerKind),
		display: ecs.NewSingleton(world, DisplayListKind),
		agents:  world.QueryAll(PositionKind.Type(), RadiusKind.Type(), HealthKind.Type()),
		trails:  world.QueryAll(PositionKind.Type(), BornKind.Type()),
	}

	if err := s.registerSystems(); err != nil {
		return nil, err
	}

	for range cfg.StartingAgents {
		world.NewEntity(s.agentComponents()...)
	}

	log.WithFields(logrus.Fields{
		"agents": cfg.StartingAgents,
		"width":  cfg.Width,
		"height": cfg.Height,
		"seed":   cfg.Seed,
	}).Info("swarm started")

	return s, nil
}

// Config returns the tunables the simulation was built with.
func (s *Sim) Config() Config { return s.cfg }

// SetPointer records the pointer state for the next tick.
func (s *Sim) SetPointer(x, y float64, pressed bool) {
	*s.pointer.Get() = Pointer{X: x, Y: y, Pressed: pressed}
}

// Display returns the shapes emitted by the last tick. The slice is reused by
// the next tick.
func (s *Sim) Display() []Shape {
	return s.display.Get().Shapes
}

// Now returns the simulation time in milliseconds.
func (s *Sim) Now() float64 {
	return s.clock.Get().Now
}

// Agents returns the number of live agents.
func (s *Sim) Agents() int {
	return len(s.World.Find(s.agents))
}

// Trails returns the number of live trail points.
func (s *Sim) Trails() int {
	return len(s.World.Find(s.trails))
}

func (s *Sim) agentComponents() []*ecs.Component {
	jitter := func() float64 {
		return (s.rng.Float64()*2 - 1) * s.cfg.SpawnRadius
	}

	return []*ecs.Component{
		PositionKind.New(Position{X: s.cfg.SpawnX + jitter(), Y: s.cfg.SpawnY + jitter()}),
		SpeedKind.New(Speed{X: s.cfg.MaxSpeed / 2, Y: s.cfg.MaxSpeed / 2}),
		NoiseOffsetKind.New(NoiseOffset{X: s.rng.Float64() * 1000, Y: s.rng.Float64() * 1000}),
		RadiusKind.New(Radius{R: s.cfg.HitRadius}),
		HealthKind.New(Health{Value: s.cfg.AgentHealth}),
		LastHitKind.New(LastHit{}),
	}
}
