package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/roivaz/clawdsbet-mcp/internal/config"
	"github.com/roivaz/clawdsbet-mcp/internal/logging"
	"github.com/roivaz/clawdsbet-mcp/internal/mcp"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "health",
		Short:        "Check that the ClawdsBet service reports itself healthy",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := mcp.NewClient(logging.New(logging.NewLogger(config.LogLevel())))
			body, err := client.Health(cmd.Context(), config.HealthURL())
			if err != nil {
				return err
			}

			status := gjson.GetBytes(body, "status").String()
			fmt.Fprintln(cmd.OutOrStdout(), status)
			if status != "healthy" {
				return fmt.Errorf("service reports %q", status)
			}
			return nil
		},
	}
}
