package domain

import (
	"context"
	"encoding/json"
)

// ParamType is the JSON-schema type advertised for a tool parameter.
type ParamType string

const (
	ParamString  ParamType = "string"
	ParamNumber  ParamType = "number"
	ParamBoolean ParamType = "boolean"
)

// ParamSpec declares one named tool parameter. Schemas are declared per tool
// rather than inferred from handler signatures, so the advertised schema is
// independent of how a handler decodes its arguments.
type ParamSpec struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
}

// ToolSpec describes a registrable tool: its protocol name, the widget it is
// bound to, and its declared parameters.
type ToolSpec struct {
	Name        string
	Title       string
	Description string
	WidgetID    string
	Params      []ParamSpec
}

// ToolResult is the plain domain result a handler returns. Handlers never
// attach widget metadata; the dispatcher does that from the tool's binding.
type ToolResult struct {
	Text       string
	Structured map[string]any
	IsError    bool
}

// ErrorResult builds an error-flagged result carrying text in both the
// summary and the structured payload.
func ErrorResult(text string) ToolResult {
	return ToolResult{
		Text: text,
		Structured: map[string]any{
			"text":  text,
			"error": text,
		},
		IsError: true,
	}
}

// ToolHandler executes a tool call. Arguments arrive as the raw JSON object
// from the request; required-parameter presence is checked by the dispatcher
// before the handler runs.
type ToolHandler func(ctx context.Context, args json.RawMessage) (ToolResult, error)
