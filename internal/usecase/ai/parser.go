package ai

import (
	"strings"
	"unicode"

	"github.com/johnquangdev/voice-transcriber/internal/domain/entities"
)

// Parser normalizes model output before it is stored as an artifact
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// CleanArtifact unwraps a markdown code fence the model may have put around
// its answer and trims surrounding whitespace. Blank output is an
// ErrEmptyCompletion.
func (p *Parser) CleanArtifact(text string) (string, error) {
	text = stripCodeFence(text)
	if text == "" {
		return "", entities.ErrEmptyCompletion
	}
	return text, nil
}

// CountActionItems counts list entries in an action items artifact.
func (p *Parser) CountActionItems(text string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
			n++
		}
	}
	return n
}

// stripCodeFence extracts content from a fenced block, dropping the
// info string (```markdown, ```json, ...) when there is one.
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	content = strings.TrimPrefix(content, "```")
	if nl := strings.IndexByte(content, '\n'); nl != -1 {
		if isFenceTag(strings.TrimSpace(content[:nl])) {
			content = content[nl+1:]
		}
	}
	if idx := strings.LastIndex(content, "```"); idx != -1 {
		content = content[:idx]
	}

	return strings.TrimSpace(content)
}

// isFenceTag reports whether s is empty or a single bare word such as
// "markdown", "json" or "c++".
func isFenceTag(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !strings.ContainsRune("+-_.", r) {
			return false
		}
	}
	return true
}
