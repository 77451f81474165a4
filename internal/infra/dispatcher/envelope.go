package dispatcher

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"huggiesd/internal/domain"
)

// widgetMeta is the full binding metadata advertised on tool and resource
// descriptions. Key names are part of the client contract.
func widgetMeta(w domain.Widget) mcp.Meta {
	return mcp.Meta{
		domain.MetaOutputTemplate:   w.TemplateURI,
		domain.MetaInvoking:         w.Invoking,
		domain.MetaInvoked:          w.Invoked,
		domain.MetaWidgetAccessible: true,
		domain.MetaCanProduceWidget: true,
	}
}

// invocationMeta is the subset attached to call results: just the two
// invocation-phase labels.
func invocationMeta(w domain.Widget) mcp.Meta {
	return mcp.Meta{
		domain.MetaInvoking: w.Invoking,
		domain.MetaInvoked:  w.Invoked,
	}
}

// envelope converts a domain result into the protocol result, attaching the
// invocation labels of the tool's bound widget. Handlers never set metadata
// themselves; this is the single place it is applied.
func envelope(w domain.Widget, result domain.ToolResult) *mcp.CallToolResult {
	structured := result.Structured
	if structured == nil {
		structured = map[string]any{}
	}
	if _, ok := structured["text"]; !ok {
		structured["text"] = result.Text
	}

	return &mcp.CallToolResult{
		Content:           []mcp.Content{&mcp.TextContent{Text: result.Text}},
		StructuredContent: structured,
		IsError:           result.IsError,
		Meta:              invocationMeta(w),
	}
}

// errorEnvelope is the dispatch-level failure shape used when no widget
// binding applies, such as an unknown tool name.
func errorEnvelope(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}
