package entities

// Snapshot is a point-in-time copy of the transcript context slot. Transcript
// is shared, never copied, since transcripts are immutable.
type Snapshot struct {
	Generation  int64          `json:"generation"`
	Status      RunStatus      `json:"status"`
	Audio       AudioReference `json:"audio"`
	Keywords    string         `json:"keywords,omitempty"`
	Transcript  *Transcript    `json:"transcript,omitempty"`
	Summary     *Artifact      `json:"summary,omitempty"`
	ActionItems *Artifact      `json:"action_items,omitempty"`
	Error       string         `json:"error,omitempty"`
}

// HasTranscript reports whether chat and template conversion can run.
func (s Snapshot) HasTranscript() bool {
	return !s.Transcript.IsEmpty()
}

// Artifact returns the stored artifact of kind, or nil if it has not settled.
func (s Snapshot) Artifact(kind ArtifactKind) *Artifact {
	switch kind {
	case ArtifactSummary:
		return s.Summary
	case ArtifactActionItems:
		return s.ActionItems
	}
	return nil
}

// Settled reports whether both artifacts are present, failed or not.
func (s Snapshot) Settled() bool {
	return s.Summary != nil && s.ActionItems != nil
}
