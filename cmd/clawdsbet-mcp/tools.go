package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/roivaz/clawdsbet-mcp/internal/mcp"
)

func newToolsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:          "tools",
		Short:        "Print the tools advertised to MCP clients",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := mcp.DefaultConfig()
			var defs []any
			for _, def := range cfg.Dispatcher.Definitions() {
				defs = append(defs, def.Tool)
			}
			data, err := json.MarshalIndent(map[string]any{"tools": defs}, "", "  ")
			if err != nil {
				return err
			}

			switch output {
			case "json":
			case "yaml":
				if data, err = yaml.JSONToYAML(data); err != nil {
					return fmt.Errorf("render yaml: %w", err)
				}
			default:
				return fmt.Errorf("unsupported output %q (want yaml or json)", output)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "Output format: yaml or json")
	return cmd
}
