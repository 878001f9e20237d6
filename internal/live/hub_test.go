package live

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketboard/pkg/models"
)

func TestSubscribeReceivesBroadcast(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe()
	defer cancel()

	ev := Event{
		Type:      EventCreated,
		ID:        "x1",
		Exhibitor: &models.Exhibitor{ID: "x1", Name: "Farm A", Category: models.CategoryFarmer},
		At:        time.Now().UTC(),
	}
	hub.Broadcast(ev)

	select {
	case got := <-ch:
		assert.Equal(t, EventCreated, got.Type)
		assert.Equal(t, "x1", got.ID)
		require.NotNil(t, got.Exhibitor)
		assert.Equal(t, "Farm A", got.Exhibitor.Name)
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}

func TestCancelUnsubscribesAndClosesChannel(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe()

	require.Equal(t, 1, hub.Stats().Subscribers)
	cancel()
	assert.Equal(t, 0, hub.Stats().Subscribers)

	_, open := <-ch
	assert.False(t, open)

	// cancel is idempotent
	cancel()

	// broadcasting after teardown must not panic or block
	hub.Broadcast(Event{Type: EventDeleted, ID: "x1"})
}

func TestSlowSubscriberDoesNotBlockBroadcast(t *testing.T) {
	hub := NewHub()
	_, cancel := hub.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		// more events than the channel buffers; nobody is reading
		for i := 0; i < 100; i++ {
			hub.Broadcast(Event{Type: EventUpdated, ID: "x1"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast blocked on slow subscriber")
	}
}
