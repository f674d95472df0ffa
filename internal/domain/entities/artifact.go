package entities

import "time"

// ArtifactKind identifies a derived text produced from the transcript.
type ArtifactKind string

const (
	ArtifactSummary     ArtifactKind = "summary"
	ArtifactActionItems ArtifactKind = "action_items"
)

// ArtifactKinds lists the artifacts every run produces, in display order.
var ArtifactKinds = []ArtifactKind{ArtifactSummary, ArtifactActionItems}

func (k ArtifactKind) IsValid() bool {
	return k == ArtifactSummary || k == ArtifactActionItems
}

// Artifact is the outcome of one analysis call. A failed artifact carries
// the error marker in Err and an empty Text.
type Artifact struct {
	Kind        ArtifactKind `json:"kind"`
	Generation  int64        `json:"generation"`
	Text        string       `json:"text"`
	Err         string       `json:"error,omitempty"`
	CompletedAt time.Time    `json:"completed_at"`
}

func NewArtifact(kind ArtifactKind, generation int64, text string) Artifact {
	return Artifact{
		Kind:        kind,
		Generation:  generation,
		Text:        text,
		CompletedAt: time.Now(),
	}
}

func NewFailedArtifact(kind ArtifactKind, generation int64, err error) Artifact {
	msg := "analysis failed"
	if err != nil {
		msg = err.Error()
	}
	return Artifact{
		Kind:        kind,
		Generation:  generation,
		Err:         msg,
		CompletedAt: time.Now(),
	}
}

func (a Artifact) Failed() bool { return a.Err != "" }
