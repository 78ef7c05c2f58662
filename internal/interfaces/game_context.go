// internal/interfaces/game_context.go
package interfaces

// ScoreSink is the economy the core credits and debits.
// AddScore rejects (returns false, balance unchanged) any delta that would make the balance negative.
type ScoreSink interface {
	AddScore(delta int) bool
	Balance() int
}

// GameOverSignal is a single-shot callback; Trigger reports whether this call fired it.
type GameOverSignal interface {
	Trigger(reason string) bool
	Fired() bool
	Reason() string
}
