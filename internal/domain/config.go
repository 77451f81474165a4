package domain

// Transport kinds the gateway can serve on.
const (
	TransportHTTP  = "http"
	TransportStdio = "stdio"
)

// Config is the normalized server configuration.
type Config struct {
	ServerName    string
	Transport     string
	ListenAddress string
	KnowledgePath string
	AssetsDir     string
	CORS          CORSConfig
	Observability ObservabilityConfig
}

type CORSConfig struct {
	AllowedOrigins []string
}

type ObservabilityConfig struct {
	ListenAddress string
	EnableMetrics bool
	EnableHealthz bool
}
