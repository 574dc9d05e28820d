package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootline-ai/rootline/pkg/events"
)

func TestCreateRejectsDuplicateIDs(t *testing.T) {
	m := NewManager()

	_, err := m.Create("run-1", "q", "", ModeInvestigation)
	require.NoError(t, err)

	_, err = m.Create("run-1", "q", "", ModeInvestigation)
	require.Error(t, err)
}

func TestSubscribeReplaysBufferedEvents(t *testing.T) {
	m := NewManager()
	run, err := m.Create("run-1", "q", "", ModeInvestigation)
	require.NoError(t, err)

	run.Publish(events.Event{Type: events.TypeInit})
	run.Publish(events.Event{Type: events.TypeToolStart})

	replay, ch, unsubscribe := run.Subscribe()
	defer unsubscribe()

	require.Len(t, replay, 2)
	assert.Equal(t, events.TypeInit, replay[0].Type)

	run.Publish(events.Event{Type: events.TypeToolEnd})
	got := <-ch
	assert.Equal(t, events.TypeToolEnd, got.Type)
}

func TestDoneClosesSubscribers(t *testing.T) {
	m := NewManager()
	run, err := m.Create("run-1", "q", "", ModeInvestigation)
	require.NoError(t, err)

	_, ch, unsubscribe := run.Subscribe()
	defer unsubscribe()

	run.Publish(events.Event{Type: events.TypeDone})

	ev, ok := <-ch
	require.True(t, ok)
	assert.Equal(t, events.TypeDone, ev.Type)

	_, ok = <-ch
	assert.False(t, ok, "channel closes after done")

	// Subscribing after done yields the replay and a closed channel.
	replay, ch2, _ := run.Subscribe()
	assert.Len(t, replay, 1)
	_, ok = <-ch2
	assert.False(t, ok)
}

func TestCancelFlipsStatusAndFiresContext(t *testing.T) {
	m := NewManager()
	run, err := m.Create("run-1", "q", "", ModeInvestigation)
	require.NoError(t, err)

	// No cancel hook installed yet.
	assert.False(t, m.Cancel("run-1"))

	ctx, cancel := context.WithCancel(context.Background())
	run.SetCancelFunc(cancel)
	run.SetStatus(StatusRunning)

	assert.True(t, m.Cancel("run-1"))
	assert.Equal(t, StatusCancelled, run.Snapshot().Status)
	assert.Error(t, ctx.Err())

	// Terminal runs cannot be cancelled twice.
	assert.False(t, m.Cancel("run-1"))
	assert.False(t, m.Cancel("unknown"))
}

func TestListNewestFirst(t *testing.T) {
	m := NewManager()
	for _, id := range []string{"a", "b", "c"} {
		_, err := m.Create(id, "q", "", ModeAssistant)
		require.NoError(t, err)
	}

	views := m.List()
	require.Len(t, views, 3)
	assert.False(t, views[0].CreatedAt.Before(views[2].CreatedAt))
}
