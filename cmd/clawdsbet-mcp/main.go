package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/roivaz/clawdsbet-mcp/internal/config"
	"github.com/roivaz/clawdsbet-mcp/internal/mcp"
	"github.com/roivaz/clawdsbet-mcp/internal/tracing"
)

func main() {
	root := &cobra.Command{
		Use:          "clawdsbet-mcp",
		Short:        "ClawdsBet MCP server (stdio)",
		SilenceUsage: true,
		RunE:         run,
	}

	root.PersistentFlags().String("api-url", "", "ClawdsBet API base URL (overrides CLAWDSBET_API_URL)")
	root.PersistentFlags().String("api-key", "", "ClawdsBet API key (overrides CLAWDSBET_API_KEY)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	config.Init(root)

	root.AddCommand(newToolsCmd(), newCallCmd(), newHealthCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	shutdown, err := tracing.Setup(ctx, config.OTelEnabled(), mcp.ServerName, mcp.Version)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdown(flushCtx)
	}()

	srv := mcp.New(mcp.DefaultConfig())
	if err := srv.Serve(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
