package websocket

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient is a test double for Client that captures sent messages
type mockClient struct {
	id       string
	messages [][]byte
	mu       sync.Mutex
	closed   bool
}

func newMockClient(id string) *mockClient {
	return &mockClient{
		id:       id,
		messages: make([][]byte, 0),
	}
}

func (m *mockClient) ID() string {
	return m.id
}

func (m *mockClient) Send(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClientClosed
	}
	m.messages = append(m.messages, data)
	return nil
}

func (m *mockClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockClient) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func (m *mockClient) GetMessages() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make([][]byte, len(m.messages))
	copy(copied, m.messages)
	return copied
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub()

	client1 := newMockClient("client-1")
	client2 := newMockClient("client-2")

	hub.Register(client1)
	hub.Register(client2)
	assert.Equal(t, 2, hub.ClientCount())

	hub.Unregister(client1)
	assert.Equal(t, 1, hub.ClientCount())

	hub.Unregister(client2)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_Broadcast_FanOut(t *testing.T) {
	hub := NewHub()

	clients := make([]*mockClient, 5)
	for i := range clients {
		clients[i] = newMockClient(fmt.Sprintf("client-%d", i))
		hub.Register(clients[i])
	}

	hub.Broadcast(BudgetAlert(map[string]interface{}{"budgetId": "2", "status": "over"}))

	// Give goroutines time to process
	time.Sleep(10 * time.Millisecond)

	for i, c := range clients {
		msgs := c.GetMessages()
		require.Len(t, msgs, 1, "client %d should receive message", i)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(msgs[0], &decoded))
		assert.Equal(t, "budget.alert", decoded["type"])
	}
}

func TestHub_Broadcast_SkipsUnregistered(t *testing.T) {
	hub := NewHub()
	stays := newMockClient("stays")
	leaves := newMockClient("leaves")
	hub.Register(stays)
	hub.Register(leaves)
	hub.Unregister(leaves)

	hub.Broadcast(EntityChanged(EventTypeCreated, EntityTypeTransaction, map[string]interface{}{"id": "1"}))
	time.Sleep(10 * time.Millisecond)

	assert.Len(t, stays.GetMessages(), 1)
	assert.Len(t, leaves.GetMessages(), 0)
}

func TestHub_ConcurrentAccess(t *testing.T) {
	hub := NewHub()

	var wg sync.WaitGroup
	clientCount := 50

	clients := make([]*mockClient, clientCount)
	for i := 0; i < clientCount; i++ {
		clients[i] = newMockClient(fmt.Sprintf("client-%d", i))
	}

	for i := 0; i < clientCount; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			hub.Register(clients[idx])
		}(i)
	}
	wg.Wait()
	assert.Equal(t, clientCount, hub.ClientCount())

	for i := 0; i < clientCount; i++ {
		wg.Add(2)
		go func(idx int) {
			defer wg.Done()
			hub.Broadcast(EntityChanged(EventTypeUpdated, EntityTypeBudget, map[string]interface{}{"id": idx}))
		}(i)
		go func(idx int) {
			defer wg.Done()
			hub.Unregister(clients[idx])
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_UnregisterNonexistent(t *testing.T) {
	hub := NewHub()

	require.NotPanics(t, func() {
		hub.Unregister(newMockClient("client-1"))
	})
}

func TestHub_BroadcastWithNoClients(t *testing.T) {
	hub := NewHub()

	require.NotPanics(t, func() {
		hub.Broadcast(BudgetRecovered(map[string]interface{}{"budgetId": "1"}))
	})
}

func TestHub_CloseAll(t *testing.T) {
	hub := NewHub()
	a := newMockClient("a")
	b := newMockClient("b")
	hub.Register(a)
	hub.Register(b)

	hub.CloseAll()

	assert.Equal(t, 0, hub.ClientCount())
	assert.True(t, a.IsClosed())
	assert.True(t, b.IsClosed())
}
