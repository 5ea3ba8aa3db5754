package events_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/card-forge/internal/events"
)

// recordingListener appends its id to a shared log so tests can check
// delivery order
type recordingListener struct {
	id       string
	priority int
	log      *[]string
	fail     error
}

func (l *recordingListener) HandleEvent(_ context.Context, _ *events.GameEvent) error {
	*l.log = append(*l.log, l.id)
	return l.fail
}

func (l *recordingListener) Priority() int { return l.priority }
func (l *recordingListener) ID() string    { return l.id }

func TestBus_EmitDeliversInPriorityOrder(t *testing.T) {
	bus := events.NewBus()
	var calls []string

	bus.Subscribe(events.TriggerCardPlayed, &recordingListener{id: "late", priority: 200, log: &calls})
	bus.Subscribe(events.TriggerCardPlayed, &recordingListener{id: "early", priority: 10, log: &calls})
	bus.Subscribe(events.TriggerCardPlayed, &recordingListener{id: "middle", priority: 100, log: &calls})

	err := bus.Emit(context.Background(), &events.GameEvent{
		Type:       events.TriggerCardPlayed,
		InstanceID: "inst-1",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"early", "middle", "late"}, calls)
}

func TestBus_EmitOnlyReachesMatchingTrigger(t *testing.T) {
	bus := events.NewBus()
	var calls []string

	bus.Subscribe(events.TriggerCardPlayed, &recordingListener{id: "played", priority: 1, log: &calls})
	bus.Subscribe(events.TriggerTurnEnded, &recordingListener{id: "turn", priority: 1, log: &calls})

	err := bus.Emit(context.Background(), &events.GameEvent{Type: events.TriggerTurnEnded})
	require.NoError(t, err)

	assert.Equal(t, []string{"turn"}, calls)
}

func TestBus_UnsubscribeStopsDelivery(t *testing.T) {
	bus := events.NewBus()
	var calls []string

	bus.Subscribe(events.TriggerDamageDealt, &recordingListener{id: "a", priority: 1, log: &calls})
	bus.Subscribe(events.TriggerDamageDealt, &recordingListener{id: "b", priority: 2, log: &calls})
	bus.Unsubscribe(events.TriggerDamageDealt, "a")

	err := bus.Emit(context.Background(), &events.GameEvent{Type: events.TriggerDamageDealt, Amount: 7})
	require.NoError(t, err)

	assert.Equal(t, []string{"b"}, calls)
}

func TestBus_EmitSurfacesListenerError(t *testing.T) {
	bus := events.NewBus()
	var calls []string

	bus.Subscribe(events.TriggerFightEnded, &recordingListener{
		id:       "broken",
		priority: 1,
		log:      &calls,
		fail:     assert.AnError,
	})
	bus.Subscribe(events.TriggerFightEnded, &recordingListener{id: "after", priority: 2, log: &calls})

	err := bus.Emit(context.Background(), &events.GameEvent{Type: events.TriggerFightEnded, Won: true})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	// delivery stops at the failing listener
	assert.Equal(t, []string{"broken"}, calls)
}

func TestBus_ClearDropsAllListeners(t *testing.T) {
	bus := events.NewBus()
	var calls []string

	bus.Subscribe(events.TriggerCardPlayed, &recordingListener{id: "a", priority: 1, log: &calls})
	bus.Clear()

	err := bus.Emit(context.Background(), &events.GameEvent{Type: events.TriggerCardPlayed})
	require.NoError(t, err)

	assert.Empty(t, calls)
}
