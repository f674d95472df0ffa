package run

import "time"

// SubmitRunResponse acknowledges an accepted submission
type SubmitRunResponse struct {
	Generation  int64     `json:"generation" example:"3"`
	Status      string    `json:"status" example:"transcribing"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// SegmentResponse is one transcript segment
type SegmentResponse struct {
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Speaker    string  `json:"speaker"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence,omitempty"`
}

// TranscriptResponse is the stored transcript and its rendered text
type TranscriptResponse struct {
	Language string            `json:"language,omitempty"`
	Speakers []string          `json:"speakers"`
	Segments []SegmentResponse `json:"segments"`
	Text     string            `json:"text"`
}

// ArtifactResponse is a settled summary or action item list
type ArtifactResponse struct {
	Kind        string    `json:"kind" example:"summary"`
	Text        string    `json:"text"`
	Failed      bool      `json:"failed"`
	Error       string    `json:"error,omitempty"`
	CompletedAt time.Time `json:"completed_at"`
}

// RunResponse is the current transcript context
type RunResponse struct {
	Generation  int64               `json:"generation" example:"3"`
	Status      string              `json:"status" example:"ready"`
	Processing  bool                `json:"processing"`
	Audio       string              `json:"audio,omitempty"`
	Keywords    string              `json:"keywords,omitempty"`
	Transcript  *TranscriptResponse `json:"transcript,omitempty"`
	Summary     *ArtifactResponse   `json:"summary,omitempty"`
	ActionItems *ArtifactResponse   `json:"action_items,omitempty"`
	Error       string              `json:"error,omitempty"`
	Done        bool                `json:"done"`
	CanChat     bool                `json:"can_chat"`
	CanConvert  bool                `json:"can_convert"`
}

// EventResponse is one pipeline event
type EventResponse struct {
	Seq        int64     `json:"seq"`
	Timestamp  time.Time `json:"timestamp"`
	Type       string    `json:"type" example:"artifact.attached"`
	Generation int64     `json:"generation"`
	Status     string    `json:"status,omitempty"`
	Artifact   string    `json:"artifact,omitempty"`
	Message    string    `json:"message,omitempty"`
}

// EventsResponse lists events after a cursor
type EventsResponse struct {
	Events  []EventResponse `json:"events"`
	LastSeq int64           `json:"last_seq"`
}
