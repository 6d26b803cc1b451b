package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mikills/tinkerings/chart-mcp/charts"
	"github.com/mikills/tinkerings/chart-mcp/dispatch"
)

func newRenderCommand(a *app) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "render <name> <input.json>",
		Short: "Validate a chart input file and render it to PNG",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, inPath := args[0], args[1]

			data, err := os.ReadFile(inPath)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			var raw map[string]any
			if err := json.Unmarshal(data, &raw); err != nil {
				return fmt.Errorf("parse %s: %w", inPath, err)
			}

			if outPath == "" {
				outPath = name + ".png"
			}

			env := a.dispatcher(charts.Default(), nil).Dispatch(cmd.Context(), name, raw)
			switch e := env.(type) {
			case *dispatch.ImageResult:
				if err := os.WriteFile(outPath, e.Bytes, 0o644); err != nil {
					return fmt.Errorf("write image: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", outPath, len(e.Bytes))
				return nil
			case *dispatch.ErrorResult:
				return errors.New(e.Message)
			default:
				return fmt.Errorf("unexpected dispatch result %T", env)
			}
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default <name>.png)")
	return cmd
}
