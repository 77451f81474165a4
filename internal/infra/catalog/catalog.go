package catalog

import (
	"fmt"

	"go.uber.org/zap"

	"huggiesd/internal/domain"
)

// MarkupLoader resolves widget markup at catalog build time.
type MarkupLoader interface {
	LoadMarkup(name string) (string, error)
}

// Catalog is the immutable widget catalog. Both lookup indices are built from
// one backing list at startup; lookups never touch the filesystem.
type Catalog struct {
	widgets []domain.Widget
	byID    map[string]int
	byURI   map[string]int
}

// TemplateURI returns the resource URI a widget identifier maps to.
func TemplateURI(identifier string) string {
	return fmt.Sprintf("ui://widget/%s.html", identifier)
}

// Build constructs the catalog from the builtin widget set, preloading markup
// through loader. Any missing asset or identifier/URI collision fails the
// build; the process must not start with a partial catalog.
func Build(loader MarkupLoader, logger *zap.Logger) (*Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	return build(builtinWidgets(), loader, logger.Named("catalog"))
}

func build(defs []widgetDefinition, loader MarkupLoader, logger *zap.Logger) (*Catalog, error) {
	widgets := make([]domain.Widget, 0, len(defs))
	byID := make(map[string]int, len(defs))
	byURI := make(map[string]int, len(defs))

	for i, def := range defs {
		if def.Identifier == "" {
			return nil, fmt.Errorf("widget %d: identifier is required", i)
		}
		html, err := loader.LoadMarkup(def.Identifier)
		if err != nil {
			return nil, fmt.Errorf("widget %q: %w", def.Identifier, err)
		}

		widget := domain.Widget{
			Identifier:   def.Identifier,
			Title:        def.Title,
			TemplateURI:  TemplateURI(def.Identifier),
			Invoking:     def.Invoking,
			Invoked:      def.Invoked,
			HTML:         html,
			ResponseText: def.ResponseText,
		}

		if _, exists := byID[widget.Identifier]; exists {
			return nil, fmt.Errorf("widget %q: duplicate identifier", widget.Identifier)
		}
		if _, exists := byURI[widget.TemplateURI]; exists {
			return nil, fmt.Errorf("widget %q: duplicate template uri %s", widget.Identifier, widget.TemplateURI)
		}

		byID[widget.Identifier] = len(widgets)
		byURI[widget.TemplateURI] = len(widgets)
		widgets = append(widgets, widget)
	}

	logger.Info("widget catalog built", zap.Int("widgets", len(widgets)))
	return &Catalog{
		widgets: widgets,
		byID:    byID,
		byURI:   byURI,
	}, nil
}

// All returns the widgets in declaration order. Callers must not mutate the
// slice.
func (c *Catalog) All() []domain.Widget {
	return c.widgets
}

// Get returns the widget with the given identifier.
func (c *Catalog) Get(identifier string) (domain.Widget, bool) {
	i, ok := c.byID[identifier]
	if !ok {
		return domain.Widget{}, false
	}
	return c.widgets[i], true
}

// ResolveByURI returns the widget whose template URI matches uri.
func (c *Catalog) ResolveByURI(uri string) (domain.Widget, bool) {
	i, ok := c.byURI[uri]
	if !ok {
		return domain.Widget{}, false
	}
	return c.widgets[i], true
}
