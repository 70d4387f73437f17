// Package cliconf holds the configuration plumbing shared by the commands:
// an optional .env file, environment backed flag defaults and the logger.
package cliconf

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// LoadEnv loads variables from the given .env files, or from ./.env when
// none are given. A missing file is not an error; variables already present
// in the environment win.
func LoadEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading env: %w", err)
}

// String returns the environment value of key, or def when it is unset or empty.
func String(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// Int returns key parsed as an int, or def when it is unset or malformed.
func Int(key string, def int) int {
	if v, err := strconv.Atoi(String(key, "")); err == nil {
		return v
	}
	return def
}

// Float returns key parsed as a float64, or def when it is unset or malformed.
func Float(key string, def float64) float64 {
	if v, err := strconv.ParseFloat(String(key, ""), 64); err == nil {
		return v
	}
	return def
}

// Bool returns key parsed by strconv.ParseBool, or def when it is unset or malformed.
func Bool(key string, def bool) bool {
	if v, err := strconv.ParseBool(String(key, "")); err == nil {
		return v
	}
	return def
}

// Duration returns key parsed by time.ParseDuration, or def when it is unset or malformed.
func Duration(key string, def time.Duration) time.Duration {
	if v, err := time.ParseDuration(String(key, "")); err == nil {
		return v
	}
	return def
}

// NewLogger builds a logger writing to out. Format is "text" or "json".
func NewLogger(out io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	return log, nil
}
