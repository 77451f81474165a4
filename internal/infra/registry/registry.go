package registry

import (
	"fmt"

	"go.uber.org/zap"

	"huggiesd/internal/domain"
)

// Entry is one registered tool: its declared spec, its resolved widget
// binding, its handler, and the input schema materialized at registration.
type Entry struct {
	Spec        domain.ToolSpec
	Widget      domain.Widget
	Handler     domain.ToolHandler
	InputSchema map[string]any
}

// WidgetResolver resolves a widget identifier to its descriptor.
type WidgetResolver interface {
	Get(identifier string) (domain.Widget, bool)
}

// Registry holds the fixed tool set. It is populated during startup and
// read-only afterwards, so lookups need no locking.
type Registry struct {
	widgets WidgetResolver
	logger  *zap.Logger
	entries map[string]*Entry
	order   []string
}

// New builds an empty registry resolving widget bindings through widgets.
func New(widgets WidgetResolver, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		widgets: widgets,
		logger:  logger.Named("tool_registry"),
		entries: make(map[string]*Entry),
	}
}

// Register adds a tool. The input schema is built here, once, from the
// declared parameters; every tool must bind to a widget the catalog knows.
func (r *Registry) Register(spec domain.ToolSpec, handler domain.ToolHandler) error {
	if spec.Name == "" {
		return fmt.Errorf("register tool: name is required")
	}
	if handler == nil {
		return fmt.Errorf("register tool %q: handler is required", spec.Name)
	}
	if _, exists := r.entries[spec.Name]; exists {
		return fmt.Errorf("register tool %q: %w", spec.Name, domain.ErrDuplicateTool)
	}
	widget, ok := r.widgets.Get(spec.WidgetID)
	if !ok {
		return fmt.Errorf("register tool %q: widget %q: %w", spec.Name, spec.WidgetID, domain.ErrWidgetNotFound)
	}
	if err := validateParams(spec.Params); err != nil {
		return fmt.Errorf("register tool %q: %w", spec.Name, err)
	}

	r.entries[spec.Name] = &Entry{
		Spec:        spec,
		Widget:      widget,
		Handler:     handler,
		InputSchema: buildInputSchema(spec.Params),
	}
	r.order = append(r.order, spec.Name)
	r.logger.Debug("tool registered", zap.String("tool", spec.Name), zap.String("widget", widget.Identifier))
	return nil
}

// Get returns the entry registered under name.
func (r *Registry) Get(name string) (*Entry, bool) {
	entry, ok := r.entries[name]
	return entry, ok
}

// DescribeAll returns every entry in registration order.
func (r *Registry) DescribeAll() []*Entry {
	out := make([]*Entry, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entries[name])
	}
	return out
}

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}
