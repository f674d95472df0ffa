package template

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/voice-transcriber/internal/domain/entities"
	"github.com/johnquangdev/voice-transcriber/internal/domain/repositories"
	"github.com/johnquangdev/voice-transcriber/internal/usecase/ai"
	"github.com/johnquangdev/voice-transcriber/pkg/runcontext"
)

const (
	// EmptyOutputMessage replaces a blank model answer.
	EmptyOutputMessage = "Sorry, couldn't convert the transcript."

	// ErrorOutputMessage replaces the document when the model call fails.
	ErrorOutputMessage = "Error converting transcript to template format."
)

// Converter renders the current transcript into a catalog template.
type Converter struct {
	catalog  repositories.TemplateCatalog
	analyzer repositories.AnalysisClient
	tracker  repositories.ActivityTracker
	timeout  time.Duration
	logger   *zap.Logger
}

// NewConverter constructs a converter. tracker may be nil.
func NewConverter(catalog repositories.TemplateCatalog, analyzer repositories.AnalysisClient, tracker repositories.ActivityTracker, timeout time.Duration, logger *zap.Logger) *Converter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{
		catalog:  catalog,
		analyzer: analyzer,
		tracker:  tracker,
		timeout:  timeout,
		logger:   logger,
	}
}

// Templates lists the catalog.
func (c *Converter) Templates() []entities.Template {
	return c.catalog.List()
}

// Convert asks the model to fill templateID from snapshot's transcript.
// Blank keywords fall back to the run's keywords. The model's answer is
// returned unchanged. It fails with ErrNoContext when there is no transcript
// and *UnknownTemplateError for an id missing from the catalog; in both cases
// no model call is made. When the call fails the conversion carries
// ErrorOutputMessage and an *AnalysisError is returned alongside it.
func (c *Converter) Convert(ctx context.Context, templateID string, snapshot entities.Snapshot, keywords string) (entities.Conversion, error) {
	if !snapshot.HasTranscript() {
		return entities.Conversion{}, entities.ErrNoContext
	}

	tpl, ok := c.catalog.Get(templateID)
	if !ok {
		return entities.Conversion{}, &entities.UnknownTemplateError{ID: templateID}
	}

	if strings.TrimSpace(keywords) == "" {
		keywords = snapshot.Keywords
	}

	conv := entities.Conversion{
		TemplateID:   tpl.ID,
		TemplateName: tpl.Name,
	}

	text, err := c.complete(ctx, snapshot.Generation, tpl, snapshot.Transcript, keywords)
	if errors.Is(err, entities.ErrEmptyCompletion) {
		text, err = "", nil
	}
	if err != nil {
		aerr := entities.NewAnalysisError("template", err)
		c.logger.Warn("⚠️ Template conversion failed",
			zap.String("template_id", tpl.ID),
			zap.Int64("generation", snapshot.Generation),
			zap.Error(aerr),
		)
		conv.Document = ErrorOutputMessage
		conv.Failed = true
		return conv, aerr
	}

	if strings.TrimSpace(text) == "" {
		c.logger.Warn("⚠️ Template conversion returned no text",
			zap.String("template_id", tpl.ID),
			zap.Int64("generation", snapshot.Generation),
		)
		conv.Document = EmptyOutputMessage
		conv.Failed = true
		return conv, nil
	}

	c.logger.Info("📄 Transcript converted",
		zap.String("template_id", tpl.ID),
		zap.Int64("generation", snapshot.Generation),
		zap.Int("chars", len(text)),
	)
	conv.Document = text
	return conv, nil
}

func (c *Converter) complete(ctx context.Context, generation int64, tpl entities.Template, transcript *entities.Transcript, keywords string) (string, error) {
	prompt, err := ai.BuildTemplatePrompt(tpl, transcript, keywords)
	if err != nil {
		return "", err
	}

	ctx, cancel := runcontext.RunBegin(ctx, generation, "template", c.timeout)
	defer cancel()

	if c.tracker != nil {
		done := c.tracker.Begin()
		defer done()
	}

	var text string
	err = runcontext.RunStage(ctx, func(ctx context.Context) error {
		var err error
		text, err = c.analyzer.Complete(ctx, prompt)
		return err
	})
	return text, err
}
