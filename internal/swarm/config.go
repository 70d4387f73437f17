package swarm

import "time"

// Config holds the tunables of a swarm simulation. Distances are in pixels.
type Config struct {
	Width, Height float64

	// MaxSpeed is the top agent speed in pixels per second.
	MaxSpeed       float64
	StartingAgents int
	SpawnX, SpawnY float64
	SpawnRadius    float64
	AgentSize      float64
	HitRadius      float64

	// AgentHealth is how long, in milliseconds, an agent survives under a pressed pointer.
	AgentHealth float64

	// RespawnBelow tops the population back up when fewer agents are alive. Zero disables respawning.
	RespawnBelow int

	TrailLife      time.Duration
	MaxTrailLength int
	NoiseStep      float64
	Seed           uint64
}

// DefaultConfig returns the tunables of the original demo canvas.
func DefaultConfig() Config {
	return Config{
		Width:          800,
		Height:         600,
		MaxSpeed:       900,
		StartingAgents: 100,
		SpawnX:         500,
		SpawnY:         300,
		SpawnRadius:    30,
		AgentSize:      10,
		HitRadius:      50,
		AgentHealth:    1000,
		RespawnBelow:   20,
		TrailLife:      2 * time.Second,
		MaxTrailLength: 300,
		NoiseStep:      0.05,
		Seed:           1,
	}
}
