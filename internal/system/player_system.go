// internal/system/player_system.go
package system

import (
	"go-arena-combat/internal/actor"
	"go-arena-combat/internal/event"

	"github.com/go-gl/mathgl/mgl64"
)

// feedSize is how many recent kills the feed keeps.
const feedSize = 5

// PlayerSystem отвечает за режим боя, движение игрока и ленту убийств.
type PlayerSystem struct {
	player  *actor.Player
	desired mgl64.Vec3

	kills map[event.Source]int
	feed  []event.KillData
}

func NewPlayerSystem(player *actor.Player, events *event.Dispatcher) *PlayerSystem {
	s := &PlayerSystem{
		player: player,
		kills:  make(map[event.Source]int),
	}
	events.Subscribe(event.EnemyKilled, s)
	return s
}

// SetVelocity stores the requested horizontal velocity, clamped to the player's speed.
func (s *PlayerSystem) SetVelocity(v mgl64.Vec3) {
	v[1] = 0
	if l := v.Len(); l > s.player.Speed && l > 0 {
		v = v.Mul(s.player.Speed / l)
	}
	s.desired = v
}

// Update polls the combat-mode machine, then drives the body. The mode decides whether
// the requested velocity applies.
func (s *PlayerSystem) Update(deltaTime float64) {
	s.player.Mode.Update(deltaTime)
	s.player.Drive(s.desired)
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyKilled {
		return
	}
	kill, ok := e.Data.(event.KillData)
	if !ok {
		return
	}
	s.kills[kill.Source]++
	s.feed = append(s.feed, kill)
	if len(s.feed) > feedSize {
		s.feed = s.feed[len(s.feed)-feedSize:]
	}
}

// Kills returns kills credited to src.
func (s *PlayerSystem) Kills(src event.Source) int { return s.kills[src] }

// Feed returns the most recent kills, oldest first.
func (s *PlayerSystem) Feed() []event.KillData { return s.feed }

// Reset clears the tallies and the stored velocity and takes over a new player.
func (s *PlayerSystem) Reset(player *actor.Player) {
	s.player = player
	s.desired = mgl64.Vec3{}
	s.kills = make(map[event.Source]int)
	s.feed = nil
}
