package websocket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_ImplementsEventPublisher(t *testing.T) {
	var publisher EventPublisher = NewHub()
	assert.NotNil(t, publisher)
}

func TestHub_PublishBroadcasts(t *testing.T) {
	hub := NewHub()
	client := newMockClient("client-1")
	hub.Register(client)

	hub.Publish(StateImported(map[string]int{"costs": 3}))

	require.Eventually(t, func() bool {
		return len(client.GetMessages()) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestNoOpPublisher_DoesNothing(t *testing.T) {
	publisher := &NoOpPublisher{}

	// Must not panic
	publisher.Publish(CostCreated(nil))
}
