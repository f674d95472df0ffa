package presenter

import (
	"github.com/johnquangdev/voice-transcriber/internal/adapter/dto/run"
	"github.com/johnquangdev/voice-transcriber/internal/domain/entities"
)

// ToSubmitRunResponse converts an accepted PipelineRun
func ToSubmitRunResponse(r entities.PipelineRun) *run.SubmitRunResponse {
	return &run.SubmitRunResponse{
		Generation:  r.Generation,
		Status:      string(r.Status),
		SubmittedAt: r.SubmittedAt,
	}
}

// ToRunResponse converts a store snapshot. Chat and conversion are offered
// once a transcript exists, whether or not the artifacts have settled.
func ToRunResponse(s entities.Snapshot, processing bool) *run.RunResponse {
	resp := &run.RunResponse{
		Generation:  s.Generation,
		Status:      string(s.Status),
		Processing:  processing,
		Keywords:    s.Keywords,
		Transcript:  ToTranscriptResponse(s.Transcript),
		Summary:     ToArtifactResponse(s.Summary),
		ActionItems: ToArtifactResponse(s.ActionItems),
		Error:       s.Error,
		Done:        s.Status.IsTerminal(),
		CanChat:     s.HasTranscript(),
		CanConvert:  s.HasTranscript(),
	}
	if s.Audio.IsFile() || s.Audio.IsURL() {
		resp.Audio = s.Audio.String()
	}
	return resp
}

// ToTranscriptResponse converts a Transcript
func ToTranscriptResponse(t *entities.Transcript) *run.TranscriptResponse {
	if t.IsEmpty() {
		return nil
	}

	segments := t.Segments()
	out := make([]run.SegmentResponse, 0, len(segments))
	for _, seg := range segments {
		out = append(out, run.SegmentResponse{
			Start:      seg.Start,
			End:        seg.End,
			Speaker:    seg.Speaker,
			Text:       seg.Text,
			Confidence: seg.Confidence,
		})
	}

	return &run.TranscriptResponse{
		Language: t.Language(),
		Speakers: t.Speakers(),
		Segments: out,
		Text:     t.Render(),
	}
}

// ToArtifactResponse converts an Artifact
func ToArtifactResponse(a *entities.Artifact) *run.ArtifactResponse {
	if a == nil {
		return nil
	}
	return &run.ArtifactResponse{
		Kind:        string(a.Kind),
		Text:        a.Text,
		Failed:      a.Failed(),
		Error:       a.Err,
		CompletedAt: a.CompletedAt,
	}
}

// ToEventsResponse converts buffered pipeline events
func ToEventsResponse(events []entities.PipelineEvent, lastSeq int64) *run.EventsResponse {
	out := make([]run.EventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, run.EventResponse{
			Seq:        ev.Seq,
			Timestamp:  ev.Timestamp,
			Type:       string(ev.Type),
			Generation: ev.Generation,
			Status:     string(ev.Status),
			Artifact:   string(ev.Artifact),
			Message:    ev.Message,
		})
	}
	return &run.EventsResponse{Events: out, LastSeq: lastSeq}
}
