package run

// SubmitRunRequest starts a new pipeline run. Exactly one of AudioURL and
// FileHandle must be set.
type SubmitRunRequest struct {
	AudioURL   string `json:"audio_url" validate:"required_without=FileHandle,excluded_with=FileHandle" example:"https://cdn.example.com/standup.mp3"`
	FileHandle string `json:"file_handle" example:"audio/3f1c2d9e-8f0a-4b43-9a5e-0c7d1b2a4e6f.mp3"`
	Keywords   string `json:"keywords" validate:"max=2000" example:"sprint planning, budget"`
}

// EventsQuery selects events newer than Since
type EventsQuery struct {
	Since int64 `query:"since" validate:"gte=0"`
}
