package entities

import "time"

// RunStatus represents where the current pipeline run is
type RunStatus string

const (
	RunStatusIdle         RunStatus = "idle"         // Nothing submitted yet
	RunStatusTranscribing RunStatus = "transcribing" // Waiting on the speech-to-text service
	RunStatusAnalyzing    RunStatus = "analyzing"    // Transcript stored, summary and action items in flight
	RunStatusReady        RunStatus = "ready"        // Both artifacts settled
	RunStatusFailed       RunStatus = "failed"       // Transcription failed
)

// IsTerminal reports whether no further transition happens without a new submission.
func (s RunStatus) IsTerminal() bool {
	return s == RunStatusReady || s == RunStatusFailed
}

// IsActive reports whether external work is still expected for the run.
func (s RunStatus) IsActive() bool {
	return s == RunStatusTranscribing || s == RunStatusAnalyzing
}

// PipelineRun describes one submission. Generation increases by one on every
// accepted submission and fences all writes made on its behalf.
type PipelineRun struct {
	Generation  int64          `json:"generation"`
	Status      RunStatus      `json:"status"`
	Audio       AudioReference `json:"audio"`
	Keywords    string         `json:"keywords,omitempty"`
	SubmittedAt time.Time      `json:"submitted_at"`
}

// NewPipelineRun creates a run that starts transcribing.
func NewPipelineRun(generation int64, audio AudioReference, keywords string) PipelineRun {
	return PipelineRun{
		Generation:  generation,
		Status:      RunStatusTranscribing,
		Audio:       audio,
		Keywords:    keywords,
		SubmittedAt: time.Now(),
	}
}
