package template

// TemplateResponse describes a catalog template
type TemplateResponse struct {
	ID          string `json:"id" example:"meeting-minutes"`
	Name        string `json:"name" example:"Meeting Minutes"`
	Description string `json:"description"`
	Body        string `json:"body,omitempty"`
}

// ConversionResponse is the converted document
type ConversionResponse struct {
	TemplateID   string `json:"template_id" example:"meeting-minutes"`
	TemplateName string `json:"template_name" example:"Meeting Minutes"`
	Document     string `json:"document"`
	Failed       bool   `json:"failed"`
}
