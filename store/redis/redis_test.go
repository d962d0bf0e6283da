package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"github.com/most4f4/LangGraph-from-Scratch/chat"
	"github.com/most4f4/LangGraph-from-Scratch/store"
)

func newTestStore(t *testing.T) (*RedisTranscriptStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	s := NewRedisTranscriptStore(RedisOptions{Addr: mr.Addr()})
	t.Cleanup(func() { s.Close() })
	return s, mr
}

func TestRedisTranscriptStore_RoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	tr := &store.Transcript{
		SessionID: "session-1",
		Messages: []llms.MessageContent{
			chat.Human("hello"),
			chat.AI("hi there"),
		},
	}
	require.NoError(t, s.Save(ctx, tr))
	assert.NotEmpty(t, tr.ID)

	loaded, err := s.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, "session-1", loaded.SessionID)
	require.Len(t, loaded.Messages, 2)
	assert.Equal(t, "hello", chat.Text(loaded.Messages[0]))
	assert.Equal(t, "hi there", chat.Text(loaded.Messages[1]))
}

func TestRedisTranscriptStore_KeyPrefix(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &store.Transcript{
		SessionID: "s1",
		Messages:  []llms.MessageContent{chat.Human("hi"), chat.AI("hello")},
	}))
	assert.True(t, mr.Exists("agents:transcript:s1"))
}

func TestRedisTranscriptStore_TTL(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	s := NewRedisTranscriptStore(RedisOptions{Addr: mr.Addr(), TTL: time.Minute})
	t.Cleanup(func() { s.Close() })

	ctx := context.Background()
	require.NoError(t, s.Save(ctx, &store.Transcript{
		SessionID: "s1",
		Messages:  []llms.MessageContent{chat.Human("hi"), chat.AI("hello")},
	}))

	mr.FastForward(2 * time.Minute)
	_, err = s.Load(ctx, "s1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRedisTranscriptStore_NotFound(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRedisTranscriptStore_Delete(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &store.Transcript{
		SessionID: "s",
		Messages:  []llms.MessageContent{chat.Human("hi"), chat.AI("hello")},
	}))
	require.NoError(t, s.Delete(ctx, "s"))

	_, err := s.Load(ctx, "s")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
