package ai

import (
	"fmt"
	"strings"

	"github.com/johnquangdev/voice-transcriber/internal/domain/entities"
	"github.com/johnquangdev/voice-transcriber/internal/prompts"
)

const (
	promptFile = "analysis.json"

	// NoKeywords stands in for an empty keyword string in every prompt.
	NoKeywords = "None provided"
)

var analysisPromptKeys = map[entities.ArtifactKind]string{
	entities.ArtifactSummary:     "summary",
	entities.ArtifactActionItems: "action-items",
}

// KeywordsOrDefault returns keywords, or NoKeywords when blank.
func KeywordsOrDefault(keywords string) string {
	if k := strings.TrimSpace(keywords); k != "" {
		return k
	}
	return NoKeywords
}

// BuildAnalysisPrompt builds the request for one artifact of a run.
func BuildAnalysisPrompt(kind entities.ArtifactKind, transcript *entities.Transcript, keywords string) (string, error) {
	key, ok := analysisPromptKeys[kind]
	if !ok {
		return "", fmt.Errorf("no prompt for artifact %q", kind)
	}
	tmpl, err := prompts.Get(promptFile, key)
	if err != nil {
		return "", err
	}
	return prompts.Format(tmpl, map[string]string{
		"Keywords":   KeywordsOrDefault(keywords),
		"Transcript": transcript.Render(),
	}), nil
}

// BuildChatPrompt builds the request for a chat question.
func BuildChatPrompt(transcript *entities.Transcript, keywords, question string) (string, error) {
	tmpl, err := prompts.Get(promptFile, "chat")
	if err != nil {
		return "", err
	}
	return prompts.Format(tmpl, map[string]string{
		"Keywords":   KeywordsOrDefault(keywords),
		"Transcript": transcript.Render(),
		"Question":   question,
	}), nil
}

// BuildTemplatePrompt builds the request that converts the transcript into tpl.
func BuildTemplatePrompt(tpl entities.Template, transcript *entities.Transcript, keywords string) (string, error) {
	tmpl, err := prompts.Get(promptFile, "template-conversion")
	if err != nil {
		return "", err
	}
	return prompts.Format(tmpl, map[string]string{
		"Keywords":   KeywordsOrDefault(keywords),
		"Template":   tpl.Body,
		"Transcript": transcript.Render(),
	}), nil
}
