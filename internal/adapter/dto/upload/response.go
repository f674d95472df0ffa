package upload

// UploadResponse returns the handle to pass as file_handle
type UploadResponse struct {
	Handle      string `json:"handle" example:"audio/3f1c2d9e-8f0a-4b43-9a5e-0c7d1b2a4e6f.mp3"`
	Filename    string `json:"filename" example:"standup.mp3"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type,omitempty" example:"audio/mpeg"`
}
