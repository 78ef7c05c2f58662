package session

import (
	"go-arena-combat/internal/event"
	"go-arena-combat/internal/interfaces"
	"go-arena-combat/internal/utils"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// GameContext is the per-session state every tick call receives.
// It is owned by the simulation driver; nothing in the core keeps globals.
type GameContext struct {
	SessionID    ulid.ULID
	Now          float64 // seconds of simulated time since New/Reset
	Tick         uint64
	Invulnerable bool

	Score    interfaces.ScoreSink
	GameOver interfaces.GameOverSignal
	Rng      *utils.PRNGService
	Events   *event.Dispatcher
	Log      *zap.Logger

	startingBalance int
}

// Options configures New.
type Options struct {
	Seed            int64
	StartingBalance int
	Invulnerable    bool
	Events          *event.Dispatcher
	Log             *zap.Logger
}

// New creates a fresh session.
func New(opts Options) *GameContext {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Events == nil {
		opts.Events = event.NewDispatcher()
	}
	ctx := &GameContext{
		Invulnerable:    opts.Invulnerable,
		Rng:             utils.NewPRNGService(opts.Seed),
		Events:          opts.Events,
		Log:             opts.Log,
		startingBalance: opts.StartingBalance,
	}
	ctx.Reset()
	return ctx
}

// Reset starts a new session: new id, clock at zero, fresh wallet and game-over latch.
// The random stream continues; replays are not a goal.
func (c *GameContext) Reset() {
	c.SessionID = ulid.Make()
	c.Now = 0
	c.Tick = 0
	c.Score = NewWallet(c.startingBalance)
	c.GameOver = &Latch{}
	c.Log.Info("session started",
		zap.Stringer("session", c.SessionID),
		zap.Int64("seed", c.Rng.Seed()),
		zap.Int("balance", c.startingBalance))
}

// Advance moves the session clock forward by dt.
func (c *GameContext) Advance(dt float64) {
	c.Now += dt
	c.Tick++
}

// TriggerGameOver fires the game-over signal unless invulnerable or already fired.
func (c *GameContext) TriggerGameOver(reason string) bool {
	if c.Invulnerable {
		return false
	}
	if !c.GameOver.Trigger(reason) {
		return false
	}
	c.Log.Warn("game over",
		zap.Stringer("session", c.SessionID),
		zap.String("reason", reason),
		zap.Float64("at", c.Now),
		zap.Int("balance", c.Score.Balance()))
	c.Events.Dispatch(event.Event{Type: event.GameOver, Data: reason})
	return true
}

// Over reports whether the game-over signal has fired this session.
func (c *GameContext) Over() bool {
	return c.GameOver.Fired()
}
