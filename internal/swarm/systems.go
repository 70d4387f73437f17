package swarm

import (
	"image/color"
	"math"

	"github.com/plus3/maskecs/ecs"
)

var (
	hitboxColor = color.RGBA{A: 20}
	agentColor  = color.RGBA{A: 100}
)

func (s *Sim) registerSystems() error {
	w := s.World
	systems := []struct {
		name   string
		stage  ecs.Stage
		query  *ecs.Query
		update ecs.UpdateFunc
	}{
		{"clock", ecs.StagePreUpdate, w.QueryAll(), s.advanceClock},
		{"input", ecs.StagePreUpdate, w.QueryAll(PositionKind.Type(), RadiusKind.Type(), HealthKind.Type(), LastHitKind.Type()), s.input},
		{"agent-movement", ecs.StageUpdate, w.QueryAll(PositionKind.Type(), SpeedKind.Type(), NoiseOffsetKind.Type()), s.moveAgents},
		{"respawn", ecs.StagePostUpdate, s.agents, s.respawn},
		{"render-trails", ecs.StageRender, s.trails, s.renderTrails},
		{"render-agents", ecs.StageRender, s.agents, s.renderAgents},
	}

	for _, sys := range systems {
		if err := w.RegisterSystem(sys.name, sys.stage, sys.query, sys.update); err != nil {
			return err
		}
	}
	return nil
}

func (s *Sim) advanceClock(frame *ecs.UpdateFrame, _ []*ecs.Entity) {
	clock := s.clock.Get()
	clock.Now += frame.DeltaTime * 1000
	clock.Frame = frame.Tick
	s.display.Get().Reset()
	s.newTrails = 0
}

// input drops a trail point under a pressed pointer and drains the health of
// every agent whose hit radius contains it.
func (s *Sim) input(frame *ecs.UpdateFrame, entities []*ecs.Entity) {
	pointer := s.pointer.Get()
	now := s.clock.Get().Now

	if pointer.Pressed && s.liveTrails < s.cfg.MaxTrailLength {
		frame.World.NewEntity(
			PositionKind.New(Position{X: pointer.X, Y: pointer.Y}),
			BornKind.New(Born{At: now}),
		)
		s.liveTrails++
		s.newTrails++
	}

	for _, e := range entities {
		pos := PositionKind.MustGet(e)
		hit := LastHitKind.MustGet(e)

		if !pointer.Pressed || math.Hypot(pointer.X-pos.X, pointer.Y-pos.Y) >= RadiusKind.MustGet(e).R {
			hit.Active = false
			continue
		}

		if hit.Active {
			HealthKind.MustGet(e).Value -= now - hit.At
		}
		hit.At = now
		hit.Active = true
	}
}

// moveAgents steers each agent along its noise curves and bounces it off the
// canvas edges.
func (s *Sim) moveAgents(frame *ecs.UpdateFrame, entities []*ecs.Entity) {
	size := s.cfg.AgentSize

	for _, e := range entities {
		pos := PositionKind.MustGet(e)
		speed := SpeedKind.MustGet(e)
		offset := NoiseOffsetKind.MustGet(e)

		speed.X = s.cfg.MaxSpeed * (s.noise.At(offset.X) - 0.5) * 2
		speed.Y = s.cfg.MaxSpeed * (s.noise.At(offset.Y) - 0.5) * 2

		pos.X += speed.X * frame.DeltaTime
		pos.Y += speed.Y * frame.DeltaTime

		switch {
		case pos.X+size > s.cfg.Width:
			pos.X = s.cfg.Width - size
			speed.X = -speed.X
		case pos.X-size < 1:
			pos.X = size
			speed.X = -speed.X
		}

		switch {
		case pos.Y+size > s.cfg.Height:
			pos.Y = s.cfg.Height - size
			speed.Y = -speed.Y
		case pos.Y-size < 1:
			pos.Y = size
			speed.Y = -speed.Y
		}

		offset.X += s.cfg.NoiseStep
		offset.Y += s.cfg.NoiseStep
	}
}

// respawn queues new agents when the living population drops below the
// configured floor. Spawns land after the tick, so they first move next frame.
func (s *Sim) respawn(frame *ecs.UpdateFrame, entities []*ecs.Entity) {
	if s.cfg.RespawnBelow <= 0 {
		return
	}

	alive := 0
	for _, e := range entities {
		if e.Alive() && HealthKind.MustGet(e).Value > 0 {
			alive++
		}
	}

	missing := s.cfg.RespawnBelow - alive
	for range missing {
		frame.Commands.Spawn(s.agentComponents()...)
	}
	if missing > 0 {
		s.log.WithField("count", missing).Debug("agents respawned")
	}
}

func (s *Sim) renderTrails(frame *ecs.UpdateFrame, entities []*ecs.Entity) {
	display := s.display.Get()
	now := s.clock.Get().Now
	life := float64(s.cfg.TrailLife.Milliseconds())
	survivors := 0

	for _, e := range entities {
		pos := PositionKind.MustGet(e)
		lived := now - BornKind.MustGet(e).At

		if lived > life {
			frame.World.DeleteEntity(e)
			continue
		}
		survivors++

		fade := 1 - lived/life
		alpha := uint8(255 * fade)
		size := 20 * fade
		white := color.RGBA{R: alpha, G: alpha, B: alpha, A: alpha}

		display.Disc(pos.X, pos.Y, size/2, white)
		display.Disc(pos.X, pos.Y, size, white)
	}

	// Points dropped earlier in this tick are not part of the snapshot.
	s.liveTrails = survivors + s.newTrails
}

func (s *Sim) renderAgents(frame *ecs.UpdateFrame, entities []*ecs.Entity) {
	display := s.display.Get()

	for _, e := range entities {
		if !e.Alive() {
			continue
		}

		pos := PositionKind.MustGet(e)
		if HealthKind.MustGet(e).Value <= 0 {
			frame.World.DeleteEntity(e)
			s.log.WithField("entity", e.ID().String()).Debug("agent died")
			continue
		}

		display.Ring(pos.X, pos.Y, RadiusKind.MustGet(e).R, hitboxColor)
		display.Disc(pos.X, pos.Y, s.cfg.AgentSize/2, agentColor)
	}
}
