package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchRoutesByType(t *testing.T) {
	d := NewDispatcher()
	placed := &recorder{}
	all := &recorder{}
	d.Subscribe(TurretPlaced, placed)
	d.SubscribeAll(all)

	d.Dispatch(Event{Type: TurretPlaced, Data: TurretData{TurretID: 1}})
	d.Dispatch(Event{Type: GameOver})

	assert.Len(t, placed.got, 1)
	assert.Len(t, all.got, 2)
	assert.Equal(t, 1, placed.got[0].Data.(TurretData).TurretID)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(EnemyKilled, r)
	d.Unsubscribe(EnemyKilled, r)
	d.Dispatch(Event{Type: EnemyKilled})
	assert.Empty(t, r.got)
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.Subscribe(GameOver, ListenerFunc(func(Event) { calls++ }))
	d.Dispatch(Event{Type: GameOver})
	assert.Equal(t, 1, calls)
}

func TestUnsubscribeFuncListenerIsIgnored(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	f := ListenerFunc(func(Event) { calls++ })
	r := &recorder{}
	d.Subscribe(GameOver, f)
	d.Subscribe(GameOver, r)

	assert.NotPanics(t, func() { d.Unsubscribe(GameOver, f) })
	assert.NotPanics(t, func() { d.Unsubscribe(GameOver, r) })
	d.Dispatch(Event{Type: GameOver})
	assert.Equal(t, 1, calls)
	assert.Empty(t, r.got)
}

func TestUnsubscribeAll(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.SubscribeAll(ListenerFunc(func(Event) { calls++ }))
	r := &recorder{}
	other := &recorder{}
	d.SubscribeAll(r)
	d.SubscribeAll(other)

	assert.NotPanics(t, func() { d.UnsubscribeAll(ListenerFunc(func(Event) {})) })
	d.UnsubscribeAll(r)
	d.Dispatch(Event{Type: SpawnerPlaced})
	assert.Empty(t, r.got)
	assert.Len(t, other.got, 1)
	assert.Equal(t, 1, calls)
}

func TestNilDispatcherIsNoop(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() { d.Dispatch(Event{Type: GameOver}) })
}
