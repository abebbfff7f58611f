package connectionhub

import (
	"fmt"
	"sync"
	"testing"

	"github.com/gofiber/contrib/websocket"
	"github.com/stretchr/testify/require"

	dbmodels "jobportal-backend/models/db"
)

type fakePushStore struct {
	mu   sync.Mutex
	rows map[string]dbmodels.PushData
}

func (f *fakePushStore) Create(rec dbmodels.PushData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[rec.ID] = rec
	return nil
}

func (f *fakePushStore) List(userID string) ([]dbmodels.PushData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := []dbmodels.PushData{}
	for _, rec := range f.rows {
		if rec.UserID == userID {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f *fakePushStore) Delete(ids []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range ids {
		delete(f.rows, id)
	}
	return nil
}

func newTestHub() *impl {
	return &impl{
		clients: map[string]clientSession{},
		store:   &fakePushStore{rows: map[string]dbmodels.PushData{}},
	}
}

func TestHubRegistration(t *testing.T) {
	t.Run(`a deleted client is no longer connected`, func(t *testing.T) {
		hub := newTestHub()
		hub.AddClient("user-1", &websocket.Conn{})
		hub.mu.RLock()
		_, registered := hub.clients["user-1"]
		hub.mu.RUnlock()
		require.True(t, registered)

		hub.DeleteClient("user-1")
		require.False(t, hub.IsConnected("user-1"))
	})

	t.Run(`an unknown user is not connected`, func(t *testing.T) {
		hub := newTestHub()
		require.False(t, hub.IsConnected("nobody"))
	})

	t.Run(`deleting an unknown user is a no-op`, func(t *testing.T) {
		hub := newTestHub()
		hub.DeleteClient("nobody")
	})
}

func TestHubConcurrentAccess(t *testing.T) {
	hub := newTestHub()
	var wg sync.WaitGroup
	for n := 0; n < 16; n++ {
		userID := fmt.Sprintf("user-%d", n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.AddClient(userID, &websocket.Conn{})
			hub.IsConnected(userID)
			hub.AddClient(userID, &websocket.Conn{})
			hub.DeleteClient(userID)
		}()
	}
	wg.Wait()
	for n := 0; n < 16; n++ {
		require.False(t, hub.IsConnected(fmt.Sprintf("user-%d", n)))
	}
}
