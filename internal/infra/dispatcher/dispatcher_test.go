package dispatcher

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"huggiesd/internal/domain"
	"huggiesd/internal/infra/catalog"
	"huggiesd/internal/infra/registry"
)

type stubLoader struct{}

func (stubLoader) LoadMarkup(name string) (string, error) {
	return "<div>" + name + "</div>", nil
}

type recordingMetrics struct {
	toolCalls []struct {
		tool   string
		status domain.ToolCallStatus
	}
	resourceReads []bool
}

func (m *recordingMetrics) ObserveToolCall(tool string, status domain.ToolCallStatus, _ time.Duration) {
	m.toolCalls = append(m.toolCalls, struct {
		tool   string
		status domain.ToolCallStatus
	}{tool, status})
}

func (m *recordingMetrics) ObserveResourceRead(found bool) {
	m.resourceReads = append(m.resourceReads, found)
}

func testDispatcher(t *testing.T) (*Dispatcher, *recordingMetrics) {
	t.Helper()

	cat, err := catalog.Build(stubLoader{}, nil)
	require.NoError(t, err)

	reg := registry.New(cat, nil)
	require.NoError(t, reg.Register(domain.ToolSpec{
		Name:     "echo",
		Title:    "Echo",
		WidgetID: "huggies-cards",
		Params: []domain.ParamSpec{
			{Name: "message", Type: domain.ParamString, Required: true},
		},
	}, func(ctx context.Context, args json.RawMessage) (domain.ToolResult, error) {
		var in struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(args, &in); err != nil {
			return domain.ToolResult{}, err
		}
		return domain.ToolResult{
			Text:       in.Message,
			Structured: map[string]any{"message": in.Message},
		}, nil
	}))
	require.NoError(t, reg.Register(domain.ToolSpec{
		Name:     "explode",
		Title:    "Explode",
		WidgetID: "huggies-map",
	}, func(ctx context.Context, args json.RawMessage) (domain.ToolResult, error) {
		panic("boom")
	}))

	metrics := &recordingMetrics{}
	return New(reg, cat, metrics, nil), metrics
}

func TestListTools_CarriesSchemaMetaAndAnnotations(t *testing.T) {
	d, _ := testDispatcher(t)

	tools := d.ListTools()
	require.Len(t, tools, 2)
	require.Equal(t, "echo", tools[0].Name)
	require.Equal(t, "explode", tools[1].Name)

	echo := tools[0]
	schema := echo.InputSchema.(map[string]any)
	require.Equal(t, "object", schema["type"])
	require.Equal(t, []string{"message"}, schema["required"])
	require.Equal(t, false, schema["additionalProperties"])

	require.Equal(t, "ui://widget/huggies-cards.html", echo.Meta[domain.MetaOutputTemplate])
	require.Equal(t, true, echo.Meta[domain.MetaWidgetAccessible])
	require.Equal(t, true, echo.Meta[domain.MetaCanProduceWidget])
	require.NotEmpty(t, echo.Meta[domain.MetaInvoking])
	require.NotEmpty(t, echo.Meta[domain.MetaInvoked])

	require.NotNil(t, echo.Annotations)
	require.True(t, echo.Annotations.ReadOnlyHint)
	require.False(t, *echo.Annotations.DestructiveHint)
	require.False(t, *echo.Annotations.OpenWorldHint)
}

func TestListResources_OnePerWidget(t *testing.T) {
	d, _ := testDispatcher(t)

	resources := d.ListResources()
	require.Len(t, resources, 6)
	for _, res := range resources {
		require.Equal(t, domain.MIMEType, res.MIMEType)
		require.Contains(t, res.URI, "ui://widget/")
		require.Equal(t, res.URI, res.Meta[domain.MetaOutputTemplate])
		require.Equal(t, res.Title+" widget markup", res.Description)
	}

	templates := d.ListResourceTemplates()
	require.Len(t, templates, len(resources))
	for i, tpl := range templates {
		require.Equal(t, resources[i].URI, tpl.URITemplate)
		require.Equal(t, domain.MIMEType, tpl.MIMEType)
	}
}

func TestReadResource_HitCarriesMarkupAndMeta(t *testing.T) {
	d, metrics := testDispatcher(t)

	res := d.ReadResource("ui://widget/huggies-cards.html")
	require.Len(t, res.Contents, 1)
	require.Equal(t, "ui://widget/huggies-cards.html", res.Contents[0].URI)
	require.Equal(t, domain.MIMEType, res.Contents[0].MIMEType)
	require.Equal(t, "<div>huggies-cards</div>", res.Contents[0].Text)

	meta := res.Contents[0].Meta
	require.Len(t, meta, 5)
	require.Equal(t, "ui://widget/huggies-cards.html", meta[domain.MetaOutputTemplate])
	require.Equal(t, true, meta[domain.MetaWidgetAccessible])
	require.Equal(t, true, meta[domain.MetaCanProduceWidget])
	require.Empty(t, res.Meta)
	require.Equal(t, []bool{true}, metrics.resourceReads)
}

func TestReadResource_MissIsInBandError(t *testing.T) {
	d, metrics := testDispatcher(t)

	res := d.ReadResource("ui://widget/nope.html")
	require.Empty(t, res.Contents)
	require.NotNil(t, res.Contents)
	require.Equal(t, "Unknown resource: ui://widget/nope.html", res.Meta["error"])
	require.Equal(t, []bool{false}, metrics.resourceReads)
}

func TestCallTool_SuccessEnvelope(t *testing.T) {
	d, metrics := testDispatcher(t)

	res := d.CallTool(context.Background(), "echo", json.RawMessage(`{"message":"hi"}`))
	require.False(t, res.IsError)

	structured := res.StructuredContent.(map[string]any)
	require.Equal(t, "hi", structured["message"])
	// The dispatcher guarantees a text key even when the handler omits it.
	require.Equal(t, "hi", structured["text"])

	require.Len(t, res.Meta, 2)
	require.Equal(t, "Searching FAQs", res.Meta[domain.MetaInvoking])
	require.Equal(t, "Found FAQ results", res.Meta[domain.MetaInvoked])

	require.Len(t, metrics.toolCalls, 1)
	require.Equal(t, "echo", metrics.toolCalls[0].tool)
	require.Equal(t, domain.ToolCallSuccess, metrics.toolCalls[0].status)
}

func TestCallTool_UnknownToolIsErrorEnvelope(t *testing.T) {
	d, metrics := testDispatcher(t)

	res := d.CallTool(context.Background(), "missing", nil)
	require.True(t, res.IsError)
	requireText(t, res.Content, "Unknown tool: missing")
	require.Equal(t, "unknown", metrics.toolCalls[0].tool)
	require.Equal(t, domain.ToolCallError, metrics.toolCalls[0].status)
}

func TestCallTool_MissingRequiredArgument(t *testing.T) {
	d, _ := testDispatcher(t)

	for _, args := range []json.RawMessage{nil, []byte(`{}`), []byte(`{"message":null}`)} {
		res := d.CallTool(context.Background(), "echo", args)
		require.True(t, res.IsError)
		requireText(t, res.Content, "Missing required argument: message")
		// Argument errors still carry the bound widget's invocation labels.
		require.Equal(t, "Searching FAQs", res.Meta[domain.MetaInvoking])
	}
}

func TestCallTool_PanicBecomesErrorEnvelope(t *testing.T) {
	d, metrics := testDispatcher(t)

	res := d.CallTool(context.Background(), "explode", nil)
	require.True(t, res.IsError)
	requireText(t, res.Content, "Tool execution error: boom")
	require.Equal(t, domain.ToolCallError, metrics.toolCalls[0].status)
}

func TestCallTool_RepeatCallsAreIndependent(t *testing.T) {
	d, _ := testDispatcher(t)

	first := d.CallTool(context.Background(), "echo", json.RawMessage(`{"message":"again"}`))
	second := d.CallTool(context.Background(), "echo", json.RawMessage(`{"message":"again"}`))
	require.Equal(t, first.StructuredContent, second.StructuredContent)
	require.Equal(t, first.Meta, second.Meta)
}

func requireText(t *testing.T, content []mcp.Content, want string) {
	t.Helper()
	require.Len(t, content, 1)
	text, ok := content[0].(*mcp.TextContent)
	require.True(t, ok)
	require.Equal(t, want, text.Text)
}
