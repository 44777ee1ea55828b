package session

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/civicpulse/internal/models"
)

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}

func TestSessionCloneAndReplace(t *testing.T) {
	s := New("abc")
	s.Append(models.RoleUser, "hello")

	c := s.Clone()
	c.Append(models.RoleAssistant, "hi")
	assert.Len(t, s.History, 1)
	assert.Len(t, c.History, 2)

	history := []models.ChatMessage{{Role: models.RoleUser, Content: "from caller"}}
	s.Replace(history)
	history[0].Content = "mutated"
	assert.Equal(t, "from caller", s.History[0].Content)
}

func exerciseStore(t *testing.T, store Store) {
	ctx := context.Background()
	id := NewID()

	s, err := store.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, s.ID)
	assert.Empty(t, s.History)

	s.Append(models.RoleUser, "I need a bus pass")
	s.Append(models.RoleAssistant, "I can help with transit.")
	require.NoError(t, store.Save(ctx, s))

	loaded, err := store.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, s.History, loaded.History)

	require.NoError(t, store.Delete(ctx, id))
	gone, err := store.Load(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, gone.History)

	assert.Error(t, store.Save(ctx, New("")))
	assert.Error(t, store.Save(ctx, nil))
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStoreIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	s := New("one")
	s.Append(models.RoleUser, "first")
	require.NoError(t, store.Save(ctx, s))

	s.History[0].Content = "changed after save"
	loaded, err := store.Load(ctx, "one")
	require.NoError(t, err)
	assert.Equal(t, "first", loaded.History[0].Content)

	loaded.Append(models.RoleAssistant, "not saved")
	again, err := store.Load(ctx, "one")
	require.NoError(t, err)
	assert.Len(t, again.History, 1)
}

func TestMemoryStoreConcurrent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := store.Load(ctx, NewID())
			assert.NoError(t, err)
			s.Append(models.RoleUser, "hello")
			assert.NoError(t, store.Save(ctx, s))
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, store.Len())
}

func TestValkeyStore(t *testing.T) {
	addr := os.Getenv("VALKEY_INIT_ADDRESS")
	if addr == "" {
		t.Skip("VALKEY_INIT_ADDRESS not set")
	}

	store, err := NewValkeyStore(context.Background(), ValkeyConfig{
		Address:  addr,
		Password: os.Getenv("VALKEY_PASSWORD"),
		TTL:      time.Minute,
	})
	require.NoError(t, err)
	defer store.Close()

	exerciseStore(t, store)
}

func TestValkeyStoreShortTTLKeepsSession(t *testing.T) {
	addr := os.Getenv("VALKEY_INIT_ADDRESS")
	if addr == "" {
		t.Skip("VALKEY_INIT_ADDRESS not set")
	}

	ctx := context.Background()
	store, err := NewValkeyStore(ctx, ValkeyConfig{
		Address:  addr,
		Password: os.Getenv("VALKEY_PASSWORD"),
		TTL:      1500 * time.Millisecond,
	})
	require.NoError(t, err)
	defer store.Close()

	s := New(NewID())
	s.Append(models.RoleUser, "when is trash pickup?")
	require.NoError(t, store.Save(ctx, s))

	pttl, err := store.client.Do(ctx, store.client.B().Pttl().Key(sessionKey(s.ID)).Build()).AsInt64()
	require.NoError(t, err)
	assert.Greater(t, pttl, int64(1000))
	assert.LessOrEqual(t, pttl, int64(1500))

	loaded, err := store.Load(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.History, loaded.History)
}
