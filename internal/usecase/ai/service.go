package ai

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/johnquangdev/voice-transcriber/internal/domain/entities"
	"github.com/johnquangdev/voice-transcriber/internal/domain/repositories"
	"github.com/johnquangdev/voice-transcriber/internal/infrastructure/cache"
	"github.com/johnquangdev/voice-transcriber/pkg/runcontext"
)

const eventPublishTimeout = 2 * time.Second

// Service defines the pipeline orchestration methods
type Service interface {
	Submit(ctx context.Context, audio entities.AudioReference, keywords string) (entities.PipelineRun, error)
	Snapshot() entities.Snapshot
	Processing() bool
}

// Options bounds the external calls made for a run. Zero means no timeout.
type Options struct {
	TranscriptionTimeout time.Duration
	AnalysisTimeout      time.Duration
}

// Orchestrator drives a submission through transcription and the two
// parallel analysis calls. Every submission gets the next generation number;
// results that arrive for an older generation are discarded.
type Orchestrator struct {
	store       *cache.ContextStore
	transcriber repositories.TranscriptionClient
	analyzer    repositories.AnalysisClient
	events      repositories.EventPublisher
	activity    *Activity
	parser      *Parser
	opts        Options
	logger      *zap.Logger

	// baseCtx outlives the submitting request; runs are cancelled with it.
	baseCtx context.Context

	mu         sync.Mutex
	generation int64
	wg         sync.WaitGroup
}

// NewOrchestrator constructs a new orchestrator. events may be nil.
func NewOrchestrator(
	baseCtx context.Context,
	store *cache.ContextStore,
	transcriber repositories.TranscriptionClient,
	analyzer repositories.AnalysisClient,
	events repositories.EventPublisher,
	activity *Activity,
	opts Options,
	logger *zap.Logger,
) *Orchestrator {
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	if activity == nil {
		activity = NewActivity()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Orchestrator{
		store:       store,
		transcriber: transcriber,
		analyzer:    analyzer,
		events:      events,
		activity:    activity,
		parser:      NewParser(),
		opts:        opts,
		logger:      logger,
		baseCtx:     baseCtx,
	}
}

// Submit starts a new run for audio and returns immediately. Any run still
// in progress is superseded. An invalid reference is rejected without
// advancing the generation.
func (o *Orchestrator) Submit(ctx context.Context, audio entities.AudioReference, keywords string) (entities.PipelineRun, error) {
	if err := audio.Validate(); err != nil {
		o.logger.Warn("⚠️ Rejected submission", zap.Error(err))
		return entities.PipelineRun{}, err
	}

	o.mu.Lock()
	o.generation++
	run := entities.NewPipelineRun(o.generation, audio, strings.TrimSpace(keywords))
	o.store.Begin(run)
	o.wg.Add(1)
	o.mu.Unlock()

	o.logger.Info("🎙️ Run submitted",
		zap.Int64("generation", run.Generation),
		zap.String("audio", run.Audio.String()),
		zap.String("keywords", run.Keywords),
	)
	o.publish(entities.PipelineEvent{
		Type:       entities.EventRunSubmitted,
		Generation: run.Generation,
		Status:     run.Status,
	})

	go o.execute(run)
	return run, nil
}

// Snapshot returns the current transcript context.
func (o *Orchestrator) Snapshot() entities.Snapshot {
	return o.store.Snapshot()
}

// Processing reports whether any external call is in flight.
func (o *Orchestrator) Processing() bool {
	return o.activity.Processing()
}

// Generation returns the latest generation handed out.
func (o *Orchestrator) Generation() int64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.generation
}

// Wait blocks until every submitted run has finished its work.
func (o *Orchestrator) Wait() {
	o.wg.Wait()
}

func (o *Orchestrator) execute(run entities.PipelineRun) {
	defer o.wg.Done()

	transcript, err := o.transcribe(run)
	if err != nil {
		o.failRun(run, err)
		return
	}

	if !o.storeTranscript(run, transcript) {
		o.logger.Info("⏭️ Discarding transcript of superseded run",
			zap.Int64("generation", run.Generation),
		)
		return
	}

	o.analyze(run, transcript)
}

func (o *Orchestrator) transcribe(run entities.PipelineRun) (*entities.Transcript, error) {
	ctx, cancel := runcontext.RunBegin(o.baseCtx, run.Generation, "transcription", o.opts.TranscriptionTimeout)
	defer cancel()

	done := o.activity.Begin()
	defer done()

	var transcript *entities.Transcript
	err := runcontext.RunStage(ctx, func(ctx context.Context) error {
		t, err := o.transcriber.Transcribe(ctx, run.Audio)
		if err != nil {
			return err
		}
		if t.IsEmpty() {
			return entities.ErrEmptyTranscript
		}
		transcript = t
		return nil
	})
	if err != nil {
		return nil, entities.NewTranscriptionError(err)
	}

	o.logger.Info("✅ Transcription completed",
		append(runcontext.Fields(ctx),
			zap.Int("segments", transcript.Len()),
			zap.Strings("speakers", transcript.Speakers()),
		)...,
	)
	return transcript, nil
}

// storeTranscript replaces the stored transcript if run is still current.
// The check and the write happen under the same lock Submit takes.
func (o *Orchestrator) storeTranscript(run entities.PipelineRun, transcript *entities.Transcript) bool {
	o.mu.Lock()
	if run.Generation != o.generation {
		o.mu.Unlock()
		return false
	}
	o.store.Replace(run.Generation, transcript)
	o.mu.Unlock()

	o.publish(entities.PipelineEvent{
		Type:       entities.EventRunTranscribed,
		Generation: run.Generation,
		Status:     entities.RunStatusAnalyzing,
	})
	return true
}

func (o *Orchestrator) failRun(run entities.PipelineRun, err error) {
	o.mu.Lock()
	current := run.Generation == o.generation
	if current {
		o.store.Fail(run.Generation, err.Error())
	}
	o.mu.Unlock()

	if !current {
		o.logger.Info("⏭️ Ignoring failure of superseded run",
			zap.Int64("generation", run.Generation),
			zap.Error(err),
		)
		return
	}

	o.logger.Error("❌ Transcription failed",
		zap.Int64("generation", run.Generation),
		zap.String("audio", run.Audio.String()),
		zap.Error(err),
	)
	o.publish(entities.PipelineEvent{
		Type:       entities.EventRunFailed,
		Generation: run.Generation,
		Status:     entities.RunStatusFailed,
		Message:    err.Error(),
	})
}

// analyze requests the summary and action items concurrently. Each artifact
// is attached as soon as it settles; one failing never cancels the other.
func (o *Orchestrator) analyze(run entities.PipelineRun, transcript *entities.Transcript) {
	var g errgroup.Group
	for _, kind := range entities.ArtifactKinds {
		kind := kind
		g.Go(func() error {
			o.produceArtifact(run, transcript, kind)
			return nil
		})
	}
	_ = g.Wait()

	snap := o.store.Snapshot()
	if snap.Generation != run.Generation || snap.Status != entities.RunStatusReady {
		return
	}

	o.logger.Info("🎉 Run ready",
		zap.Int64("generation", run.Generation),
		zap.Bool("summary_failed", snap.Summary.Failed()),
		zap.Bool("action_items_failed", snap.ActionItems.Failed()),
	)
	o.publish(entities.PipelineEvent{
		Type:       entities.EventRunReady,
		Generation: run.Generation,
		Status:     entities.RunStatusReady,
	})
}

func (o *Orchestrator) produceArtifact(run entities.PipelineRun, transcript *entities.Transcript, kind entities.ArtifactKind) {
	ctx, cancel := runcontext.RunBegin(o.baseCtx, run.Generation, string(kind), o.opts.AnalysisTimeout)
	defer cancel()

	artifact := o.requestArtifact(ctx, run, transcript, kind)

	if !o.store.Attach(run.Generation, artifact) {
		o.logger.Info("⏭️ Discarding artifact of superseded run",
			zap.Int64("generation", run.Generation),
			zap.String("artifact", string(kind)),
		)
		return
	}

	fields := append(runcontext.Fields(ctx), zap.Bool("failed", artifact.Failed()))
	if kind == entities.ArtifactActionItems && !artifact.Failed() {
		fields = append(fields, zap.Int("items", o.parser.CountActionItems(artifact.Text)))
	}
	o.logger.Info("📎 Artifact attached", fields...)

	o.publish(entities.PipelineEvent{
		Type:       entities.EventArtifactAttached,
		Generation: run.Generation,
		Artifact:   kind,
		Message:    artifact.Err,
	})
}

func (o *Orchestrator) requestArtifact(ctx context.Context, run entities.PipelineRun, transcript *entities.Transcript, kind entities.ArtifactKind) entities.Artifact {
	prompt, err := BuildAnalysisPrompt(kind, transcript, run.Keywords)
	if err == nil {
		var text string
		done := o.activity.Begin()
		err = runcontext.RunStage(ctx, func(ctx context.Context) error {
			var completeErr error
			text, completeErr = o.analyzer.Complete(ctx, prompt)
			return completeErr
		})
		done()

		if err == nil {
			text, err = o.parser.CleanArtifact(text)
		}
		if err == nil {
			return entities.NewArtifact(kind, run.Generation, text)
		}
	}

	aerr := entities.NewAnalysisError(string(kind), err)
	o.logger.Warn("⚠️ Analysis failed",
		append(runcontext.Fields(ctx), zap.Error(aerr))...,
	)
	return entities.NewFailedArtifact(kind, run.Generation, aerr)
}

func (o *Orchestrator) publish(event entities.PipelineEvent) {
	if o.events == nil {
		return
	}

	ctx, cancel := context.WithTimeout(o.baseCtx, eventPublishTimeout)
	defer cancel()

	if err := o.events.Publish(ctx, event); err != nil {
		o.logger.Warn("⚠️ Failed to publish pipeline event",
			zap.String("type", string(event.Type)),
			zap.Int64("generation", event.Generation),
			zap.Error(err),
		)
	}
}
