package mcp

import (
	"github.com/roivaz/clawdsbet-mcp/internal/clawdsbet"
	"github.com/roivaz/clawdsbet-mcp/internal/config"
	"github.com/roivaz/clawdsbet-mcp/internal/logging"
	"github.com/roivaz/clawdsbet-mcp/internal/mcp/tools"
	"github.com/roivaz/clawdsbet-mcp/internal/tracing"
)

type Config struct {
	Dispatcher *tools.Dispatcher
	Logger     logging.Logger
}

// DefaultConfig resolves the upstream client and logger from viper once.
func DefaultConfig() Config {
	baseLogger := logging.New(logging.NewLogger(config.LogLevel()))
	client := NewClient(baseLogger)

	return Config{
		Dispatcher: tools.NewDispatcher(client, baseLogger),
		Logger:     baseLogger.WithName("mcp"),
	}
}

// NewClient builds the ClawdsBet client from the resolved configuration.
func NewClient(log logging.Logger) *clawdsbet.Client {
	return clawdsbet.NewClient(
		config.APIURL(),
		config.APIKey(),
		clawdsbet.WithLogger(log),
		clawdsbet.WithTracer(tracing.Tracer()),
	)
}
