package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/clawdsbet-mcp/internal/clawdsbet"
	"github.com/roivaz/clawdsbet-mcp/internal/logging"
)

// Dispatcher routes tool calls by name to their definitions. Every outcome,
// including panics, is turned into a tool result envelope.
type Dispatcher struct {
	api   API
	defs  []Definition
	index map[string]Definition
	log   logging.Logger
}

func NewDispatcher(api API, log logging.Logger) *Dispatcher {
	defs := Registry()
	index := make(map[string]Definition, len(defs))
	for _, d := range defs {
		index[d.Tool.Name] = d
	}
	return &Dispatcher{
		api:   api,
		defs:  defs,
		index: index,
		log:   log.WithName("dispatch"),
	}
}

// Definitions returns the registered tools in advertised order.
func (d *Dispatcher) Definitions() []Definition {
	return append([]Definition(nil), d.defs...)
}

// Call runs the named tool. It never returns nil.
func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]any) (result *mcp.CallToolResult) {
	start := time.Now()
	log := d.log.WithValues("tool", name)

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("internal error: %v", r)
			log.Error(err, "tool panicked")
			result = errorResult(err)
		}
	}()

	def, ok := d.index[name]
	if !ok {
		err := fmt.Errorf("Unknown tool: %s", name)
		log.Error(err, "tool call rejected")
		return errorResult(err)
	}

	if def.RequiresAPIKey && !d.api.HasAPIKey() {
		log.Error(clawdsbet.ErrMissingAPIKey, "tool call rejected")
		return errorResult(clawdsbet.ErrMissingAPIKey)
	}

	out, err := def.run(ctx, d.api, args)
	if err != nil {
		log.Error(err, "tool call failed", "duration", time.Since(start))
		return errorResult(err)
	}
	log.Debug("tool call completed", "duration", time.Since(start))
	return successResult(out)
}

// Handler adapts Call to the mcp-go handler signature.
func (d *Dispatcher) Handler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return d.Call(ctx, name, req.GetArguments()), nil
	}
}
