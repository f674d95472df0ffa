package cache

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/voice-transcriber/internal/domain/entities"
)

func testTranscript(text string) *entities.Transcript {
	return entities.NewTranscript([]entities.Segment{
		{Start: 0, End: 2, Speaker: "A", Text: text},
	}, "en")
}

func begin(s *ContextStore, generation int64) {
	s.Begin(entities.NewPipelineRun(generation, entities.NewURLReference("https://example.com/a.mp3"), "kw"))
}

func TestNewContextStore(t *testing.T) {
	s := NewContextStore()
	snap := s.Snapshot()

	assert.Equal(t, int64(0), snap.Generation)
	assert.Equal(t, entities.RunStatusIdle, snap.Status)
	assert.False(t, snap.HasTranscript())
}

func TestReplace_ClearsArtifacts(t *testing.T) {
	s := NewContextStore()
	begin(s, 1)

	s.Replace(1, testTranscript("first"))
	require.True(t, s.Attach(1, entities.NewArtifact(entities.ArtifactSummary, 1, "sum")))

	s.Replace(1, testTranscript("second"))
	snap := s.Snapshot()
	assert.Nil(t, snap.Summary)
	assert.Equal(t, entities.RunStatusAnalyzing, snap.Status)
	assert.Equal(t, "second", snap.Transcript.Text())
	assert.Equal(t, "kw", snap.Keywords)
}

func TestAttach_ReadyWhenBothSettled(t *testing.T) {
	s := NewContextStore()
	begin(s, 1)
	s.Replace(1, testTranscript("hello"))

	require.True(t, s.Attach(1, entities.NewArtifact(entities.ArtifactSummary, 1, "sum")))
	assert.Equal(t, entities.RunStatusAnalyzing, s.Snapshot().Status)

	failed := entities.NewFailedArtifact(entities.ArtifactActionItems, 1, errors.New("boom"))
	require.True(t, s.Attach(1, failed))

	snap := s.Snapshot()
	assert.Equal(t, entities.RunStatusReady, snap.Status)
	assert.Equal(t, "sum", snap.Summary.Text)
	assert.True(t, snap.ActionItems.Failed())
	assert.Empty(t, snap.ActionItems.Text)
}

func TestAttach_StaleGenerationDiscarded(t *testing.T) {
	s := NewContextStore()
	begin(s, 1)
	s.Replace(1, testTranscript("old"))
	begin(s, 2)

	assert.False(t, s.Attach(1, entities.NewArtifact(entities.ArtifactSummary, 1, "stale")))

	snap := s.Snapshot()
	assert.Equal(t, int64(2), snap.Generation)
	assert.Nil(t, snap.Summary)
	assert.False(t, snap.HasTranscript())
}

func TestAttach_LastWriteWins(t *testing.T) {
	s := NewContextStore()
	begin(s, 1)
	s.Replace(1, testTranscript("hello"))

	require.True(t, s.Attach(1, entities.NewArtifact(entities.ArtifactSummary, 1, "first")))
	require.True(t, s.Attach(1, entities.NewArtifact(entities.ArtifactSummary, 1, "second")))

	assert.Equal(t, "second", s.Snapshot().Summary.Text)
}

func TestFail(t *testing.T) {
	s := NewContextStore()
	begin(s, 1)
	s.Replace(1, testTranscript("hello"))

	assert.False(t, s.Fail(7, "other"))
	require.True(t, s.Fail(1, "transcription failed: boom"))

	snap := s.Snapshot()
	assert.Equal(t, entities.RunStatusFailed, snap.Status)
	assert.False(t, snap.HasTranscript())
	assert.Equal(t, "transcription failed: boom", snap.Error)
}

func TestSnapshot_IsolatedFromStore(t *testing.T) {
	s := NewContextStore()
	begin(s, 1)
	s.Replace(1, testTranscript("hello"))
	require.True(t, s.Attach(1, entities.NewArtifact(entities.ArtifactSummary, 1, "sum")))

	snap := s.Snapshot()
	snap.Summary.Text = "changed"

	assert.Equal(t, "sum", s.Snapshot().Summary.Text)
}

func TestAttach_RejectsUnknownKind(t *testing.T) {
	s := NewContextStore()
	begin(s, 1)
	s.Replace(1, testTranscript("hello"))

	assert.False(t, s.Attach(1, entities.NewArtifact(entities.ArtifactKind("haiku"), 1, "poem")))

	snap := s.Snapshot()
	assert.Nil(t, snap.Summary)
	assert.Nil(t, snap.ActionItems)
	assert.Equal(t, entities.RunStatusAnalyzing, snap.Status)
}
