package entities

// Template is a named markdown document skeleton with [placeholders] the
// model fills from the transcript.
type Template struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Body        string `json:"body" yaml:"body"`
}

// Conversion is the result of rendering a transcript into a template.
type Conversion struct {
	TemplateID   string `json:"template_id"`
	TemplateName string `json:"template_name"`
	Document     string `json:"document"`
	Failed       bool   `json:"failed"`
}
