package template

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/voice-transcriber/internal/domain/entities"
	"github.com/johnquangdev/voice-transcriber/internal/usecase/ai"
)

type mapCatalog map[string]entities.Template

func (m mapCatalog) Get(id string) (entities.Template, bool) {
	tpl, ok := m[id]
	return tpl, ok
}

func (m mapCatalog) List() []entities.Template {
	out := make([]entities.Template, 0, len(m))
	for _, tpl := range m {
		out = append(out, tpl)
	}
	return out
}

type stubAnalyzer struct {
	calls   int
	prompts []string
	reply   string
	err     error
}

func (s *stubAnalyzer) Complete(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	return s.reply, s.err
}

var testCatalog = mapCatalog{
	"meeting-minutes": {
		ID:   "meeting-minutes",
		Name: "Meeting Minutes",
		Body: "# Meeting Minutes: [Project Name]\n## Action Items\n- [Action Item]",
	},
}

func snapshotWithTranscript() entities.Snapshot {
	return entities.Snapshot{
		Generation: 2,
		Status:     entities.RunStatusReady,
		Keywords:   "apollo",
		Transcript: entities.NewTranscript([]entities.Segment{
			{Start: 61, End: 64, Speaker: "A", Text: "Apollo launches next week."},
		}, "en"),
	}
}

func TestConvert_ReturnsModelTextVerbatim(t *testing.T) {
	doc := "```markdown\n# Meeting Minutes: Apollo\n```\n"
	an := &stubAnalyzer{reply: doc}
	c := NewConverter(testCatalog, an, ai.NewActivity(), 0, nil)

	conv, err := c.Convert(context.Background(), "meeting-minutes", snapshotWithTranscript(), "")
	require.NoError(t, err)
	assert.Equal(t, doc, conv.Document)
	assert.Equal(t, "meeting-minutes", conv.TemplateID)
	assert.Equal(t, "Meeting Minutes", conv.TemplateName)
	assert.False(t, conv.Failed)

	require.Len(t, an.prompts, 1)
	assert.Contains(t, an.prompts[0], "Context/Keywords: apollo")
	assert.Contains(t, an.prompts[0], "# Meeting Minutes: [Project Name]")
	assert.Contains(t, an.prompts[0], "[01:01] Speaker A: Apollo launches next week.")
}

func TestConvert_ExplicitKeywords(t *testing.T) {
	an := &stubAnalyzer{reply: "doc"}
	c := NewConverter(testCatalog, an, nil, 0, nil)

	_, err := c.Convert(context.Background(), "meeting-minutes", snapshotWithTranscript(), "launch review")
	require.NoError(t, err)
	assert.Contains(t, an.prompts[0], "Context/Keywords: launch review")
}

func TestConvert_UnknownTemplate(t *testing.T) {
	an := &stubAnalyzer{reply: "doc"}
	c := NewConverter(testCatalog, an, nil, 0, nil)

	_, err := c.Convert(context.Background(), "haiku", snapshotWithTranscript(), "")
	var ute *entities.UnknownTemplateError
	require.True(t, errors.As(err, &ute))
	assert.Equal(t, "haiku", ute.ID)
	assert.Equal(t, 0, an.calls)
}

func TestConvert_NoContext(t *testing.T) {
	an := &stubAnalyzer{reply: "doc"}
	c := NewConverter(testCatalog, an, nil, 0, nil)

	_, err := c.Convert(context.Background(), "meeting-minutes", entities.Snapshot{}, "")
	assert.ErrorIs(t, err, entities.ErrNoContext)

	_, err = c.Convert(context.Background(), "haiku", entities.Snapshot{}, "")
	assert.ErrorIs(t, err, entities.ErrNoContext)
	assert.Equal(t, 0, an.calls)
}

func TestConvert_Fallbacks(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		err     error
		wantDoc string
		wantErr bool
	}{
		{name: "blank answer", reply: "  \n", wantDoc: EmptyOutputMessage},
		{name: "empty completion", err: fmt.Errorf("no choices: %w", entities.ErrEmptyCompletion), wantDoc: EmptyOutputMessage},
		{name: "model error", err: errors.New("status 503"), wantDoc: ErrorOutputMessage, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConverter(testCatalog, &stubAnalyzer{reply: tt.reply, err: tt.err}, nil, 0, nil)

			conv, err := c.Convert(context.Background(), "meeting-minutes", snapshotWithTranscript(), "")
			assert.Equal(t, tt.wantDoc, conv.Document)
			assert.True(t, conv.Failed)
			if tt.wantErr {
				var ae *entities.AnalysisError
				require.True(t, errors.As(err, &ae))
				assert.Equal(t, "template", ae.Kind)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

type panickingAnalyzer struct{}

func (panickingAnalyzer) Complete(context.Context, string) (string, error) {
	panic("decoder blew up")
}

func TestConvert_PanicIsReportedAsFailure(t *testing.T) {
	activity := ai.NewActivity()
	c := NewConverter(testCatalog, panickingAnalyzer{}, activity, 0, nil)

	conv, err := c.Convert(context.Background(), "meeting-minutes", snapshotWithTranscript(), "")
	var ae *entities.AnalysisError
	require.True(t, errors.As(err, &ae))
	assert.Contains(t, err.Error(), "decoder blew up")
	assert.Equal(t, ErrorOutputMessage, conv.Document)
	assert.True(t, conv.Failed)
	assert.False(t, activity.Processing())
}
