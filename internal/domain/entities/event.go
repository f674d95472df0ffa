package entities

import "time"

// EventType classifies pipeline events
type EventType string

const (
	EventRunSubmitted     EventType = "run.submitted"
	EventRunTranscribed   EventType = "run.transcribed"
	EventRunFailed        EventType = "run.failed"
	EventArtifactAttached EventType = "artifact.attached"
	EventRunReady         EventType = "run.ready"
)

// PipelineEvent records a state change of the current run. Seq and Timestamp
// are assigned by the bus when the event is published.
type PipelineEvent struct {
	Seq        int64        `json:"seq"`
	Timestamp  time.Time    `json:"timestamp"`
	Type       EventType    `json:"type"`
	Generation int64        `json:"generation"`
	Status     RunStatus    `json:"status,omitempty"`
	Artifact   ArtifactKind `json:"artifact,omitempty"`
	Message    string       `json:"message,omitempty"`
}
