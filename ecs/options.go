package ecs

import (
	"github.com/sirupsen/logrus"
)

type config struct {
	logger  *logrus.Entry
	stages  []Stage
	policy  IndexPolicy
	recycle bool
}

func defaultConfig() config {
	return config{
		logger:  logrus.WithField("component", "ecs"),
		stages:  DefaultStages(),
		policy:  IndexIncremental,
		recycle: true,
	}
}

// Option configures a World.
type Option func(*config)

// WithLogger sets the logger used for world diagnostics.
func WithLogger(logger *logrus.Entry) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStages replaces the default stage order.
func WithStages(stages ...Stage) Option {
	return func(c *config) {
		if len(stages) > 0 {
			c.stages = stages
		}
	}
}

// WithIndexPolicy selects how cached query results are invalidated.
func WithIndexPolicy(policy IndexPolicy) Option {
	return func(c *config) {
		c.policy = policy
	}
}

// WithIDRecycling enables or disables reuse of deleted entity slots.
func WithIDRecycling(enabled bool) Option {
	return func(c *config) {
		c.recycle = enabled
	}
}
