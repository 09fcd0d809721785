package mcp

import (
	"context"
	"io"

	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/clawdsbet-mcp/internal/logging"
	"github.com/roivaz/clawdsbet-mcp/internal/mcp/tools"
)

const (
	ServerName = "clawdsbet"
	Version    = "1.0.0"
)

type Server struct {
	MCP        *server.MCPServer
	Stdio      *server.StdioServer
	Dispatcher *tools.Dispatcher
	log        logging.Logger
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		ServerName,
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	// Calls naming an unregistered tool are rejected by mcp-go with a
	// JSON-RPC error before any handler runs; only Dispatcher.Call callers
	// see the "Unknown tool" envelope.
	for _, def := range cfg.Dispatcher.Definitions() {
		mcpServer.AddTool(def.Tool, cfg.Dispatcher.Handler(def.Tool.Name))
	}

	stdio := server.NewStdioServer(mcpServer)
	stdio.SetErrorLogger(cfg.Logger.WithName("stdio").StdLog())

	return &Server{
		MCP:        mcpServer,
		Stdio:      stdio,
		Dispatcher: cfg.Dispatcher,
		log:        cfg.Logger,
	}
}

// Serve speaks MCP over the given streams until in is exhausted or ctx is
// cancelled.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	s.log.Info("ClawdsBet MCP server running on stdio", "tools", len(s.Dispatcher.Definitions()))
	return s.Stdio.Listen(ctx, in, out)
}
