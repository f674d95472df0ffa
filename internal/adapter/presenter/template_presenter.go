package presenter

import (
	"github.com/johnquangdev/voice-transcriber/internal/adapter/dto/template"
	"github.com/johnquangdev/voice-transcriber/internal/domain/entities"
)

// ToTemplateResponses converts the catalog listing. Bodies are included so
// clients can preview a template.
func ToTemplateResponses(templates []entities.Template) []template.TemplateResponse {
	out := make([]template.TemplateResponse, 0, len(templates))
	for _, tpl := range templates {
		out = append(out, template.TemplateResponse{
			ID:          tpl.ID,
			Name:        tpl.Name,
			Description: tpl.Description,
			Body:        tpl.Body,
		})
	}
	return out
}

func ToConversionResponse(c entities.Conversion) *template.ConversionResponse {
	return &template.ConversionResponse{
		TemplateID:   c.TemplateID,
		TemplateName: c.TemplateName,
		Document:     c.Document,
		Failed:       c.Failed,
	}
}
