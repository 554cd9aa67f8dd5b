package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/coursepilot/internal/app"
	"github.com/alexanderramin/coursepilot/internal/planner"
)

// Config holds runtime settings for the coursepilot CLI.
type Config struct {
	DBPath         string
	CreditsPerTerm int
	RecommendLimit int
	Strictness     planner.StrictnessPolicy
	LogCalls       bool
}

// DefaultConfig returns a Config with defaults. DBPath is left empty and
// resolved by Load.
func DefaultConfig() Config {
	return Config{
		CreditsPerTerm: app.DefaultCreditsPerTerm,
		RecommendLimit: app.DefaultRecommendLimit,
		Strictness:     planner.DefaultStrictness,
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset or invalid values.
func Load() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("COURSEPILOT_DB"); v != "" {
		cfg.DBPath = v
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".coursepilot", "coursepilot.db")
	}

	if v := os.Getenv("COURSEPILOT_CREDITS_PER_TERM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= app.MaxCreditsPerTerm {
			cfg.CreditsPerTerm = n
		}
	}
	if v := os.Getenv("COURSEPILOT_RECOMMEND_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= app.MaxRecommendLimit {
			cfg.RecommendLimit = n
		}
	}
	if v := os.Getenv("COURSEPILOT_STRICTNESS"); v != "" {
		if p, ok := planner.ParseStrictnessPolicy(v); ok {
			cfg.Strictness = p
		}
	}
	if v := os.Getenv("COURSEPILOT_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg, nil
}
