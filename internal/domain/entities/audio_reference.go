package entities

import (
	"net/url"
	"strings"
)

// AudioReference points at the audio to transcribe. Exactly one of FileHandle
// or URL is set; the setters keep the two mutually exclusive.
type AudioReference struct {
	FileHandle string `json:"file_handle,omitempty"`
	URL        string `json:"url,omitempty"`
}

// NewFileReference references audio previously stored under handle.
func NewFileReference(handle string) AudioReference {
	return AudioReference{FileHandle: strings.TrimSpace(handle)}
}

// NewURLReference references audio reachable at a remote URL.
func NewURLReference(rawURL string) AudioReference {
	return AudioReference{URL: strings.TrimSpace(rawURL)}
}

// SetFile selects a stored file and clears any URL.
func (r *AudioReference) SetFile(handle string) {
	r.FileHandle = strings.TrimSpace(handle)
	r.URL = ""
}

// SetURL selects a remote URL and clears any stored file.
func (r *AudioReference) SetURL(rawURL string) {
	r.URL = strings.TrimSpace(rawURL)
	r.FileHandle = ""
}

func (r AudioReference) IsFile() bool { return r.FileHandle != "" }

func (r AudioReference) IsURL() bool { return r.URL != "" }

// Validate reports ErrInvalidInput when the reference is empty, carries both
// variants, or holds a URL that is not absolute http(s).
func (r AudioReference) Validate() error {
	hasFile := strings.TrimSpace(r.FileHandle) != ""
	hasURL := strings.TrimSpace(r.URL) != ""

	switch {
	case !hasFile && !hasURL:
		return InvalidInput("audio reference is empty")
	case hasFile && hasURL:
		return InvalidInput("audio reference must be either a file or a url, not both")
	case hasURL:
		u, err := url.Parse(strings.TrimSpace(r.URL))
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return InvalidInput("audio url must be an absolute http(s) url")
		}
	}
	return nil
}

func (r AudioReference) String() string {
	if r.IsFile() {
		return "file:" + r.FileHandle
	}
	return r.URL
}
