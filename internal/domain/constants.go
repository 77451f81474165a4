package domain

// MIMEType is the fixed content type advertised for widget markup resources.
const MIMEType = "text/html+skybridge"

// Metadata keys attached to tools, resources and call results. Clients match
// these verbatim, so they must not change.
const (
	MetaOutputTemplate   = "openai/outputTemplate"
	MetaInvoking         = "openai/toolInvocation/invoking"
	MetaInvoked          = "openai/toolInvocation/invoked"
	MetaWidgetAccessible = "openai/widgetAccessible"
	MetaCanProduceWidget = "openai/resultCanProduceWidget"
)

const (
	// DefaultSearchTopN bounds ranked FAQ results and the storage-order fallback.
	DefaultSearchTopN = 3

	// DefaultServerName is the advertised MCP server name.
	DefaultServerName = "huggies"

	// DefaultTransport is the serve transport when the config omits one.
	DefaultTransport = TransportHTTP
	// DefaultListenAddress is the streamable HTTP bind address.
	DefaultListenAddress = "0.0.0.0:8000"
	// DefaultObservabilityListenAddress serves /metrics and /healthz.
	DefaultObservabilityListenAddress = "0.0.0.0:9090"
	// DefaultKnowledgePath is the knowledge source location.
	DefaultKnowledgePath = "mock_knowledge.json"
	// DefaultAssetsDir holds the prebuilt widget markup bundles.
	DefaultAssetsDir = "assets"
)
