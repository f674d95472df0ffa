package repositories

import "github.com/johnquangdev/voice-transcriber/internal/domain/entities"

// TemplateCatalog is a read-only lookup of document templates.
type TemplateCatalog interface {
	Get(id string) (entities.Template, bool)
	List() []entities.Template
}
