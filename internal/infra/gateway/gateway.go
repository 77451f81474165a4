package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"huggiesd/internal/buildinfo"
	"huggiesd/internal/domain"
	"huggiesd/internal/infra/dispatcher"
)

// Gateway binds the dispatcher onto an MCP server. The tool and resource set
// is fixed at construction; nothing is added or removed while serving.
type Gateway struct {
	dispatcher     *dispatcher.Dispatcher
	logger         *zap.Logger
	server         *mcp.Server
	allowedOrigins []string
}

// New builds the gateway and registers every dispatcher-described tool,
// resource, and resource template on the underlying server.
func New(d *dispatcher.Dispatcher, serverName string, allowedOrigins []string, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	if serverName == "" {
		serverName = domain.DefaultServerName
	}
	g := &Gateway{
		dispatcher:     d,
		logger:         logger.Named("gateway"),
		allowedOrigins: allowedOrigins,
	}

	g.server = mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: buildinfo.Version,
	}, &mcp.ServerOptions{
		HasTools:     true,
		HasResources: true,
	})
	g.server.AddReceivingMiddleware(g.dispatchMiddleware())

	tools := d.ListTools()
	for _, tool := range tools {
		g.server.AddTool(tool, g.toolHandler(tool.Name))
	}
	resources := d.ListResources()
	for _, resource := range resources {
		g.server.AddResource(resource, g.resourceHandler(resource.URI))
	}
	for _, template := range d.ListResourceTemplates() {
		g.server.AddResourceTemplate(template, g.resourceHandler(""))
	}

	g.logger.Info("gateway assembled",
		zap.Int("tools", len(tools)),
		zap.Int("resources", len(resources)),
	)
	return g
}

// dispatchMiddleware routes every tools/call and resources/read through the
// dispatcher before the SDK resolves the name. Unregistered tool names and
// unknown URIs must come back as in-band results, not protocol errors, and
// the SDK's own routing would reject them first.
func (g *Gateway) dispatchMiddleware() mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			switch method {
			case "tools/call":
				if r, ok := req.(*mcp.CallToolRequest); ok && r.Params != nil {
					return g.dispatcher.CallTool(ctx, r.Params.Name, r.Params.Arguments), nil
				}
			case "resources/read":
				if r, ok := req.(*mcp.ReadResourceRequest); ok && r.Params != nil {
					return g.dispatcher.ReadResource(r.Params.URI), nil
				}
			}
			return next(ctx, method, req)
		}
	}
}

func (g *Gateway) toolHandler(name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := json.RawMessage(req.Params.Arguments)
		return g.dispatcher.CallTool(ctx, name, args), nil
	}
}

func (g *Gateway) resourceHandler(uri string) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		targetURI := uri
		if req != nil && req.Params != nil && req.Params.URI != "" {
			targetURI = req.Params.URI
		}
		return g.dispatcher.ReadResource(targetURI), nil
	}
}

// Run serves over stdio until ctx is cancelled.
func (g *Gateway) Run(ctx context.Context) error {
	g.logger.Info("gateway starting (stdio transport)")
	return g.server.Run(ctx, &mcp.StdioTransport{})
}

// Connect attaches the server to t. Used by in-process clients and tests.
func (g *Gateway) Connect(ctx context.Context, t mcp.Transport) (*mcp.ServerSession, error) {
	return g.server.Connect(ctx, t, nil)
}

// Handler returns the streamable HTTP handler, CORS-wrapped. The server is
// shared: one process instance serves every HTTP session.
func (g *Gateway) Handler() http.Handler {
	streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return g.server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})
	return corsMiddleware(g.allowedOrigins, streamable)
}

// RunHTTP serves the streamable HTTP transport on addr until ctx is
// cancelled, then shuts down gracefully.
func (g *Gateway) RunHTTP(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:    addr,
		Handler: g.Handler(),
	}

	errChan := make(chan error, 1)
	go func() {
		g.logger.Info("gateway starting (streamable http transport)", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("gateway http server failed to start: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			g.logger.Error("gateway http server shutdown error", zap.Error(err))
			return err
		}
		g.logger.Info("gateway http server stopped")
		return nil
	}
}
