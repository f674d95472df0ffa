package entities

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Segment represents a contiguous speech segment. Start and End are seconds
// from the beginning of the audio.
type Segment struct {
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Text       string  `json:"text"`
	Speaker    string  `json:"speaker"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Transcript is an immutable ordered list of segments. Once built it is only
// ever read, so readers share the same value without copying.
type Transcript struct {
	segments  []Segment
	language  string
	createdAt time.Time
}

// NewTranscript copies segments into a new transcript.
func NewTranscript(segments []Segment, language string) *Transcript {
	cp := make([]Segment, len(segments))
	copy(cp, segments)
	return &Transcript{
		segments:  cp,
		language:  language,
		createdAt: time.Now(),
	}
}

func (t *Transcript) Len() int {
	if t == nil {
		return 0
	}
	return len(t.segments)
}

func (t *Transcript) IsEmpty() bool { return t.Len() == 0 }

// Segment returns the i-th segment, or the zero Segment when i is out of range.
func (t *Transcript) Segment(i int) Segment {
	if i < 0 || i >= t.Len() {
		return Segment{}
	}
	return t.segments[i]
}

// Segments returns a copy of the segment list.
func (t *Transcript) Segments() []Segment {
	if t == nil {
		return nil
	}
	cp := make([]Segment, len(t.segments))
	copy(cp, t.segments)
	return cp
}

func (t *Transcript) Language() string {
	if t == nil {
		return ""
	}
	return t.language
}

func (t *Transcript) CreatedAt() time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.createdAt
}

// Text joins the segment texts with spaces.
func (t *Transcript) Text() string {
	if t == nil {
		return ""
	}
	parts := make([]string, 0, len(t.segments))
	for _, s := range t.segments {
		if s.Text != "" {
			parts = append(parts, s.Text)
		}
	}
	return strings.Join(parts, " ")
}

// Speakers lists distinct speaker labels in order of first appearance.
func (t *Transcript) Speakers() []string {
	if t == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, s := range t.segments {
		if s.Speaker == "" || seen[s.Speaker] {
			continue
		}
		seen[s.Speaker] = true
		out = append(out, s.Speaker)
	}
	return out
}

// Render formats the transcript one segment per line as
// "[MM:SS] Speaker X: text", the layout every prompt embeds.
func (t *Transcript) Render() string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	for i, s := range t.segments {
		if i > 0 {
			b.WriteByte('\n')
		}
		speaker := s.Speaker
		if speaker == "" {
			speaker = "Unknown"
		}
		fmt.Fprintf(&b, "[%s] Speaker %s: %s", formatTimestamp(s.Start), speaker, s.Text)
	}
	return b.String()
}

func formatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

type transcriptJSON struct {
	Language  string    `json:"language,omitempty"`
	Segments  []Segment `json:"segments"`
	CreatedAt time.Time `json:"created_at"`
}

func (t *Transcript) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("null"), nil
	}
	segs := t.segments
	if segs == nil {
		segs = []Segment{}
	}
	return json.Marshal(transcriptJSON{
		Language:  t.language,
		Segments:  segs,
		CreatedAt: t.createdAt,
	})
}
