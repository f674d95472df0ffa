package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/johnquangdev/voice-transcriber/internal/domain/entities"
)

//go:embed templates.yaml
var builtinTemplates []byte

type catalogFile struct {
	Templates []entities.Template `yaml:"templates"`
}

// Catalog is an in-memory template catalog. It implements
// repositories.TemplateCatalog and can be swapped atomically on reload.
type Catalog struct {
	mu        sync.RWMutex
	templates []entities.Template
	byID      map[string]entities.Template
}

// NewBuiltin loads the catalog compiled into the binary.
func NewBuiltin() (*Catalog, error) {
	templates, err := Parse(builtinTemplates)
	if err != nil {
		return nil, fmt.Errorf("builtin catalog: %w", err)
	}
	c := &Catalog{}
	c.set(templates)
	return c, nil
}

// NewFromFile loads the catalog from a YAML file.
func NewFromFile(path string) (*Catalog, error) {
	c := &Catalog{}
	if err := c.ReloadFile(path); err != nil {
		return nil, err
	}
	return c, nil
}

// Parse decodes and validates a catalog document. Ids must be unique and
// every template needs a name and a body.
func Parse(data []byte) ([]entities.Template, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(file.Templates) == 0 {
		return nil, fmt.Errorf("catalog has no templates")
	}

	seen := make(map[string]bool, len(file.Templates))
	out := make([]entities.Template, 0, len(file.Templates))
	for i, tpl := range file.Templates {
		tpl.ID = strings.TrimSpace(tpl.ID)
		switch {
		case tpl.ID == "":
			return nil, fmt.Errorf("template #%d has no id", i+1)
		case seen[tpl.ID]:
			return nil, fmt.Errorf("duplicate template id %q", tpl.ID)
		case strings.TrimSpace(tpl.Name) == "":
			return nil, fmt.Errorf("template %q has no name", tpl.ID)
		case strings.TrimSpace(tpl.Body) == "":
			return nil, fmt.Errorf("template %q has no body", tpl.ID)
		}
		seen[tpl.ID] = true
		tpl.Body = strings.TrimRight(tpl.Body, "\n")
		out = append(out, tpl)
	}
	return out, nil
}

// ReloadFile replaces the catalog with the file's contents. On error the
// current templates are kept.
func (c *Catalog) ReloadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	templates, err := Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	c.set(templates)
	return nil
}

func (c *Catalog) set(templates []entities.Template) {
	byID := make(map[string]entities.Template, len(templates))
	for _, tpl := range templates {
		byID[tpl.ID] = tpl
	}

	c.mu.Lock()
	c.templates = templates
	c.byID = byID
	c.mu.Unlock()
}

// Get returns the template with id.
func (c *Catalog) Get(id string) (entities.Template, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tpl, ok := c.byID[strings.TrimSpace(id)]
	return tpl, ok
}

// List returns the templates in catalog order.
func (c *Catalog) List() []entities.Template {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]entities.Template, len(c.templates))
	copy(out, c.templates)
	return out
}
