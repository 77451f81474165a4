package dispatcher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"huggiesd/internal/domain"
	"huggiesd/internal/infra/catalog"
	"huggiesd/internal/infra/registry"
	"huggiesd/internal/infra/telemetry"
)

// Dispatcher is the request-facing facade over the registry and catalog. It
// is stateless per request: every dependency is injected at construction and
// read-only afterwards, so one Dispatcher serves concurrent sessions.
type Dispatcher struct {
	registry *registry.Registry
	catalog  *catalog.Catalog
	metrics  domain.Metrics
	logger   *zap.Logger
}

// New builds a dispatcher. metrics may be nil.
func New(reg *registry.Registry, cat *catalog.Catalog, metrics domain.Metrics, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		registry: reg,
		catalog:  cat,
		metrics:  metrics,
		logger:   logger.Named("dispatcher"),
	}
}

// ListTools projects every registered tool into its protocol description,
// in registration order.
func (d *Dispatcher) ListTools() []*mcp.Tool {
	entries := d.registry.DescribeAll()
	tools := make([]*mcp.Tool, 0, len(entries))
	for _, entry := range entries {
		tools = append(tools, &mcp.Tool{
			Name:        entry.Spec.Name,
			Title:       entry.Spec.Title,
			Description: entry.Spec.Description,
			InputSchema: entry.InputSchema,
			Meta:        widgetMeta(entry.Widget),
			Annotations: &mcp.ToolAnnotations{
				ReadOnlyHint:    true,
				DestructiveHint: boolPtr(false),
				OpenWorldHint:   boolPtr(false),
			},
		})
	}
	return tools
}

// ListResources returns one resource per widget in catalog order.
func (d *Dispatcher) ListResources() []*mcp.Resource {
	widgets := d.catalog.All()
	resources := make([]*mcp.Resource, 0, len(widgets))
	for _, w := range widgets {
		resources = append(resources, &mcp.Resource{
			Name:        w.Title,
			Title:       w.Title,
			URI:         w.TemplateURI,
			Description: w.Description(),
			MIMEType:    domain.MIMEType,
			Meta:        widgetMeta(w),
		})
	}
	return resources
}

// ListResourceTemplates mirrors ListResources with the URI advertised as a
// template.
func (d *Dispatcher) ListResourceTemplates() []*mcp.ResourceTemplate {
	widgets := d.catalog.All()
	templates := make([]*mcp.ResourceTemplate, 0, len(widgets))
	for _, w := range widgets {
		templates = append(templates, &mcp.ResourceTemplate{
			Name:        w.Title,
			Title:       w.Title,
			URITemplate: w.TemplateURI,
			Description: w.Description(),
			MIMEType:    domain.MIMEType,
			Meta:        widgetMeta(w),
		})
	}
	return templates
}

// ReadResource serves widget markup by template URI. A miss is reported
// in-band: the read succeeds with empty contents and an error entry in the
// result metadata.
func (d *Dispatcher) ReadResource(uri string) *mcp.ReadResourceResult {
	w, ok := d.catalog.ResolveByURI(uri)
	if d.metrics != nil {
		d.metrics.ObserveResourceRead(ok)
	}
	if !ok {
		d.logger.Warn("resource not found", zap.String("uri", uri))
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{},
			Meta:     mcp.Meta{"error": fmt.Sprintf("Unknown resource: %s", uri)},
		}
	}

	// Widget metadata rides on the content item, where clients look for it.
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      w.TemplateURI,
				MIMEType: domain.MIMEType,
				Text:     w.HTML,
				Meta:     widgetMeta(w),
			},
		},
	}
}

// CallTool resolves name, validates declared required arguments, runs the
// handler, and wraps the outcome in the response envelope. Every failure is
// terminal here: callers always get a well-formed result, never an error.
func (d *Dispatcher) CallTool(ctx context.Context, name string, args json.RawMessage) *mcp.CallToolResult {
	ctx, requestID := telemetry.EnsureRequestID(ctx)
	logger := d.logger.With(zap.String(telemetry.FieldRequestID, requestID), zap.String("tool", name))

	entry, ok := d.registry.Get(name)
	if !ok {
		logger.Warn("unknown tool requested")
		d.observe("unknown", domain.ToolCallError, 0)
		return errorEnvelope(fmt.Sprintf("Unknown tool: %s", name))
	}

	if missing := missingRequired(entry.Spec.Params, args); missing != "" {
		logger.Warn("missing required argument", zap.String("argument", missing))
		d.observe(name, domain.ToolCallError, 0)
		return envelope(entry.Widget, domain.ErrorResult(fmt.Sprintf("Missing required argument: %s", missing)))
	}

	start := time.Now()
	result, err := d.invoke(ctx, entry.Handler, args)
	elapsed := time.Since(start)

	if err != nil {
		logger.Error("tool execution failed", zap.Error(err), zap.Duration("duration", elapsed))
		d.observe(name, domain.ToolCallError, elapsed)
		return envelope(entry.Widget, domain.ErrorResult(fmt.Sprintf("Tool execution error: %s", err)))
	}

	status := domain.ToolCallSuccess
	if result.IsError {
		status = domain.ToolCallError
	}
	d.observe(name, status, elapsed)
	logger.Debug("tool call completed", zap.String("status", string(status)), zap.Duration("duration", elapsed))
	return envelope(entry.Widget, result)
}

// invoke runs the handler with panic containment. A panicking handler must
// degrade to an error envelope, not take down the transport.
func (d *Dispatcher) invoke(ctx context.Context, handler domain.ToolHandler, args json.RawMessage) (result domain.ToolResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return handler(ctx, args)
}

func (d *Dispatcher) observe(tool string, status domain.ToolCallStatus, duration time.Duration) {
	if d.metrics != nil {
		d.metrics.ObserveToolCall(tool, status, duration)
	}
}

// missingRequired reports the first declared required parameter absent from
// the raw argument object, or "" when all are present. Null counts as absent.
func missingRequired(params []domain.ParamSpec, args json.RawMessage) string {
	var required []string
	for _, p := range params {
		if p.Required {
			required = append(required, p.Name)
		}
	}
	if len(required) == 0 {
		return ""
	}

	provided := map[string]json.RawMessage{}
	if len(args) > 0 {
		if err := json.Unmarshal(args, &provided); err != nil {
			// A malformed payload is left for the handler to report.
			return ""
		}
	}

	for _, name := range required {
		value, ok := provided[name]
		if !ok || string(value) == "null" {
			return name
		}
	}
	return ""
}

func boolPtr(v bool) *bool {
	return &v
}
