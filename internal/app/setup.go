package app

import (
	"go-arena-combat/internal/config"
	"go-arena-combat/internal/defs"
	"go-arena-combat/internal/scene"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Options are the command-line knobs shared by the binaries.
type Options struct {
	ConfigPath   string // empty means built-in tunables
	LayoutPath   string // empty means the embedded arena
	Seed         int64  // 0 keeps the configured seed
	Invulnerable bool
	LogLevel     string // overrides log.level when set
	Development  bool
}

// Setup loads tunables and the arena, builds the logger and starts a session.
func Setup(opts Options, graph scene.Graph) (*Simulation, *zap.Logger, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}
	if opts.Seed != 0 {
		cfg.Simulation.Seed = opts.Seed
	}
	if opts.Invulnerable {
		cfg.Simulation.Invulnerable = true
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}

	layout := defs.DefaultLayout()
	if opts.LayoutPath != "" {
		l, err := defs.LoadLayout(opts.LayoutPath)
		if err != nil {
			return nil, nil, err
		}
		layout = l
	}

	logger, err := NewLogger(cfg.Log.Level, cfg.Log.Development || opts.Development)
	if err != nil {
		return nil, nil, errors.Wrap(err, "logger")
	}
	logger.Info("arena loaded",
		zap.String("arena", layout.Name),
		zap.Int("obstacles", len(layout.Obstacles)),
		zap.Int("archetypes", len(layout.Enemies)),
		zap.Int64("seed", cfg.Simulation.Seed))
	return NewSimulation(cfg, layout, graph, logger), logger, nil
}
