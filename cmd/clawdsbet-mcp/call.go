package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roivaz/clawdsbet-mcp/internal/mcp"
	"github.com/roivaz/clawdsbet-mcp/internal/mcp/tools"
)

func newCallCmd() *cobra.Command {
	var rawArgs string

	cmd := &cobra.Command{
		Use:          "call <tool>",
		Short:        "Invoke one tool without an MCP client and print its result",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arguments := map[string]any{}
			if rawArgs != "" {
				if err := json.Unmarshal([]byte(rawArgs), &arguments); err != nil {
					return fmt.Errorf("--args must be a JSON object: %w", err)
				}
			}

			cfg := mcp.DefaultConfig()
			res := cfg.Dispatcher.Call(cmd.Context(), args[0], arguments)
			fmt.Fprintln(cmd.OutOrStdout(), tools.ResultText(res))
			if res.IsError {
				return fmt.Errorf("tool %s failed", args[0])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rawArgs, "args", "", `Tool arguments as a JSON object, e.g. '{"limit":5}'`)
	return cmd
}
