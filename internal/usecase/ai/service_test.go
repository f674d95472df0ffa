package ai

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/voice-transcriber/internal/domain/entities"
	"github.com/johnquangdev/voice-transcriber/internal/domain/repositories"
	"github.com/johnquangdev/voice-transcriber/internal/infrastructure/cache"
)

type fakeTranscriber struct {
	mu     sync.Mutex
	calls  int
	byURL  map[string]*entities.Transcript
	gates  map[string]chan struct{}
	errFor map[string]error
}

func newFakeTranscriber() *fakeTranscriber {
	return &fakeTranscriber{
		byURL:  make(map[string]*entities.Transcript),
		gates:  make(map[string]chan struct{}),
		errFor: make(map[string]error),
	}
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audio entities.AudioReference) (*entities.Transcript, error) {
	f.mu.Lock()
	f.calls++
	gate := f.gates[audio.URL]
	t := f.byURL[audio.URL]
	err := f.errFor[audio.URL]
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

type fakeAnalyzer struct {
	mu      sync.Mutex
	prompts []string
	// respond picks the reply for a prompt
	respond func(prompt string) (string, error)
	gate    chan struct{}
}

func (f *fakeAnalyzer) Complete(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	gate := f.gate
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.respond(prompt)
}

func (f *fakeAnalyzer) Prompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []entities.PipelineEvent
}

func (p *recordingPublisher) Publish(_ context.Context, ev entities.PipelineEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) Types() []entities.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]entities.EventType, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Type)
	}
	return out
}

func isSummaryPrompt(prompt string) bool {
	return strings.Contains(prompt, "Summarize the following transcript")
}

func byKind(prompt string) (string, error) {
	if isSummaryPrompt(prompt) {
		return "SUMMARY", nil
	}
	return "ACTIONS", nil
}

func meetingTranscript(text string) *entities.Transcript {
	return entities.NewTranscript([]entities.Segment{
		{Start: 0, End: 4, Speaker: "A", Text: text},
	}, "en")
}

func newTestOrchestrator(tr *fakeTranscriber, an *fakeAnalyzer, pub *recordingPublisher) (*Orchestrator, *cache.ContextStore) {
	store := cache.NewContextStore()
	var events repositories.EventPublisher
	if pub != nil {
		events = pub
	}
	o := NewOrchestrator(context.Background(), store, tr, an, events, NewActivity(), Options{}, nil)
	return o, store
}

func TestSubmit_ProducesTranscriptAndArtifacts(t *testing.T) {
	tr := newFakeTranscriber()
	tr.byURL["https://example.com/m.mp3"] = meetingTranscript("We agreed to ship on Friday.")
	an := &fakeAnalyzer{respond: byKind}
	pub := &recordingPublisher{}
	o, _ := newTestOrchestrator(tr, an, pub)

	run, err := o.Submit(context.Background(), entities.NewURLReference("https://example.com/m.mp3"), "  release  ")
	require.NoError(t, err)
	assert.Equal(t, int64(1), run.Generation)
	assert.Equal(t, entities.RunStatusTranscribing, run.Status)
	assert.Equal(t, "release", run.Keywords)

	o.Wait()

	snap := o.Snapshot()
	assert.Equal(t, entities.RunStatusReady, snap.Status)
	assert.Equal(t, "We agreed to ship on Friday.", snap.Transcript.Text())
	require.NotNil(t, snap.Summary)
	require.NotNil(t, snap.ActionItems)
	assert.Equal(t, "SUMMARY", snap.Summary.Text)
	assert.Equal(t, "ACTIONS", snap.ActionItems.Text)
	assert.False(t, o.Processing())

	prompts := an.Prompts()
	require.Len(t, prompts, 2)
	for _, p := range prompts {
		assert.Contains(t, p, "Context/Keywords: release")
		assert.Contains(t, p, "[00:00] Speaker A: We agreed to ship on Friday.")
	}

	types := pub.Types()
	assert.Equal(t, entities.EventRunSubmitted, types[0])
	assert.Equal(t, entities.EventRunTranscribed, types[1])
	assert.Equal(t, entities.EventRunReady, types[len(types)-1])
}

func TestSubmit_OneArtifactFails(t *testing.T) {
	tr := newFakeTranscriber()
	tr.byURL["https://example.com/m.mp3"] = meetingTranscript("hello")
	an := &fakeAnalyzer{respond: func(prompt string) (string, error) {
		if isSummaryPrompt(prompt) {
			return "", errors.New("model overloaded")
		}
		return "```markdown\n- [ ] Send notes\n```", nil
	}}
	o, _ := newTestOrchestrator(tr, an, nil)

	_, err := o.Submit(context.Background(), entities.NewURLReference("https://example.com/m.mp3"), "")
	require.NoError(t, err)
	o.Wait()

	snap := o.Snapshot()
	assert.Equal(t, entities.RunStatusReady, snap.Status)
	assert.True(t, snap.Summary.Failed())
	assert.Empty(t, snap.Summary.Text)
	assert.Contains(t, snap.Summary.Err, "model overloaded")
	assert.False(t, snap.ActionItems.Failed())
	assert.Equal(t, "- [ ] Send notes", snap.ActionItems.Text)

	for _, p := range an.Prompts() {
		assert.Contains(t, p, "Context/Keywords: "+NoKeywords)
	}
}

func TestSubmit_InvalidReference(t *testing.T) {
	tr := newFakeTranscriber()
	an := &fakeAnalyzer{respond: byKind}
	o, _ := newTestOrchestrator(tr, an, nil)

	_, err := o.Submit(context.Background(), entities.AudioReference{}, "")
	assert.ErrorIs(t, err, entities.ErrInvalidInput)

	_, err = o.Submit(context.Background(), entities.NewURLReference("ftp://example.com/a.mp3"), "")
	assert.ErrorIs(t, err, entities.ErrInvalidInput)

	assert.Equal(t, int64(0), o.Generation())
	assert.Equal(t, entities.RunStatusIdle, o.Snapshot().Status)
	assert.Equal(t, 0, tr.calls)
}

func TestSubmit_TranscriptionFailureClearsContext(t *testing.T) {
	tr := newFakeTranscriber()
	tr.byURL["https://example.com/ok.mp3"] = meetingTranscript("first")
	tr.errFor["https://example.com/bad.mp3"] = errors.New("audio file is corrupt")
	an := &fakeAnalyzer{respond: byKind}
	pub := &recordingPublisher{}
	o, _ := newTestOrchestrator(tr, an, pub)

	_, err := o.Submit(context.Background(), entities.NewURLReference("https://example.com/ok.mp3"), "")
	require.NoError(t, err)
	o.Wait()
	require.True(t, o.Snapshot().HasTranscript())

	_, err = o.Submit(context.Background(), entities.NewURLReference("https://example.com/bad.mp3"), "")
	require.NoError(t, err)
	o.Wait()

	snap := o.Snapshot()
	assert.Equal(t, int64(2), snap.Generation)
	assert.Equal(t, entities.RunStatusFailed, snap.Status)
	assert.False(t, snap.HasTranscript())
	assert.Nil(t, snap.Summary)
	assert.Contains(t, snap.Error, "audio file is corrupt")
	assert.Contains(t, pub.Types(), entities.EventRunFailed)
	assert.Len(t, an.Prompts(), 2)
}

func TestSubmit_EmptyTranscriptFails(t *testing.T) {
	tr := newFakeTranscriber()
	tr.byURL["https://example.com/silence.mp3"] = entities.NewTranscript(nil, "en")
	an := &fakeAnalyzer{respond: byKind}
	o, _ := newTestOrchestrator(tr, an, nil)

	_, err := o.Submit(context.Background(), entities.NewURLReference("https://example.com/silence.mp3"), "")
	require.NoError(t, err)
	o.Wait()

	snap := o.Snapshot()
	assert.Equal(t, entities.RunStatusFailed, snap.Status)
	assert.Contains(t, snap.Error, entities.ErrEmptyTranscript.Error())
	assert.Empty(t, an.Prompts())
}

func TestSubmit_SupersededAnalysisDiscarded(t *testing.T) {
	tr := newFakeTranscriber()
	tr.byURL["https://example.com/one.mp3"] = meetingTranscript("first meeting")
	tr.byURL["https://example.com/two.mp3"] = meetingTranscript("second meeting")

	gate := make(chan struct{})
	an := &fakeAnalyzer{
		gate: gate,
		respond: func(prompt string) (string, error) {
			if strings.Contains(prompt, "first meeting") {
				return "OLD", nil
			}
			return byKind(prompt)
		},
	}
	o, _ := newTestOrchestrator(tr, an, nil)

	_, err := o.Submit(context.Background(), entities.NewURLReference("https://example.com/one.mp3"), "")
	require.NoError(t, err)

	// both analysis calls of the first run are blocked
	require.Eventually(t, func() bool { return len(an.Prompts()) == 2 }, 2*time.Second, 10*time.Millisecond)
	assert.True(t, o.Processing())

	_, err = o.Submit(context.Background(), entities.NewURLReference("https://example.com/two.mp3"), "")
	require.NoError(t, err)
	require.Eventually(t, func() bool { return len(an.Prompts()) == 4 }, 2*time.Second, 10*time.Millisecond)

	close(gate)
	o.Wait()

	snap := o.Snapshot()
	assert.Equal(t, int64(2), snap.Generation)
	assert.Equal(t, entities.RunStatusReady, snap.Status)
	assert.Equal(t, "second meeting", snap.Transcript.Text())
	assert.Equal(t, "SUMMARY", snap.Summary.Text)
	assert.Equal(t, "ACTIONS", snap.ActionItems.Text)
	assert.Equal(t, int64(2), snap.Summary.Generation)
}

func TestSubmit_StaleTranscriptionDiscarded(t *testing.T) {
	tr := newFakeTranscriber()
	tr.byURL["https://example.com/slow.mp3"] = meetingTranscript("slow")
	tr.byURL["https://example.com/fast.mp3"] = meetingTranscript("fast")
	slow := make(chan struct{})
	tr.gates["https://example.com/slow.mp3"] = slow

	an := &fakeAnalyzer{respond: byKind}
	o, _ := newTestOrchestrator(tr, an, nil)

	_, err := o.Submit(context.Background(), entities.NewURLReference("https://example.com/slow.mp3"), "")
	require.NoError(t, err)
	_, err = o.Submit(context.Background(), entities.NewURLReference("https://example.com/fast.mp3"), "")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return o.Snapshot().Status == entities.RunStatusReady
	}, 2*time.Second, 10*time.Millisecond)

	close(slow)
	o.Wait()

	snap := o.Snapshot()
	assert.Equal(t, int64(2), snap.Generation)
	assert.Equal(t, "fast", snap.Transcript.Text())
	for _, p := range an.Prompts() {
		assert.NotContains(t, p, "Speaker A: slow")
	}
}

func TestSubmit_StatusProgression(t *testing.T) {
	tr := newFakeTranscriber()
	tr.byURL["https://example.com/standup.mp3"] = entities.NewTranscript([]entities.Segment{
		{Start: 0, End: 3, Speaker: "A", Text: "Morning all."},
		{Start: 3, End: 7, Speaker: "B", Text: "The API is done."},
		{Start: 7, End: 10, Speaker: "A", Text: "Great, ship it."},
	}, "en")
	transcribing := make(chan struct{})
	tr.gates["https://example.com/standup.mp3"] = transcribing

	analyzing := make(chan struct{})
	an := &fakeAnalyzer{respond: byKind, gate: analyzing}
	o, _ := newTestOrchestrator(tr, an, nil)

	_, err := o.Submit(context.Background(), entities.NewURLReference("https://example.com/standup.mp3"), "api")
	require.NoError(t, err)

	snap := o.Snapshot()
	assert.Equal(t, entities.RunStatusTranscribing, snap.Status)
	assert.False(t, snap.HasTranscript())
	require.Eventually(t, o.Processing, 2*time.Second, 10*time.Millisecond)

	close(transcribing)
	require.Eventually(t, func() bool { return len(an.Prompts()) == 2 }, 2*time.Second, 10*time.Millisecond)

	snap = o.Snapshot()
	assert.Equal(t, entities.RunStatusAnalyzing, snap.Status)
	require.True(t, snap.HasTranscript())
	assert.Equal(t, 3, snap.Transcript.Len())
	assert.Nil(t, snap.Summary)
	assert.Nil(t, snap.ActionItems)
	assert.True(t, o.Processing())

	close(analyzing)
	o.Wait()

	snap = o.Snapshot()
	assert.Equal(t, entities.RunStatusReady, snap.Status)
	assert.Equal(t, "SUMMARY", snap.Summary.Text)
	assert.Equal(t, "ACTIONS", snap.ActionItems.Text)
	assert.False(t, o.Processing())
}
