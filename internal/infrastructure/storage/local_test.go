package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/voice-transcriber/internal/domain/entities"
)

func TestLocalStore_SaveAndOpen(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	handle, err := store.Save(ctx, "standup.MP3", strings.NewReader("fake audio"), 10, "audio/mpeg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(handle, "audio/"))
	assert.True(t, strings.HasSuffix(handle, ".mp3"))

	r, err := store.Open(ctx, handle)
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "fake audio", string(data))
}

func TestLocalStore_OpenRejectsForeignHandles(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	for _, handle := range []string{"", "../etc/passwd", "audio/../../secret", "audio/not-a-uuid.mp3"} {
		_, err := store.Open(context.Background(), handle)
		assert.ErrorIs(t, err, entities.ErrInvalidInput, handle)
	}
}

func TestValidHandle(t *testing.T) {
	assert.True(t, ValidHandle(NewHandle("clip.wav")))
	assert.True(t, ValidHandle(NewHandle("no-extension")))
	assert.False(t, ValidHandle("audio/"))
	assert.False(t, ValidHandle("video/"+NewHandle("x.mp4")))
}
