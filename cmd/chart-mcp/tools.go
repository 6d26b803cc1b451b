package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mikills/tinkerings/chart-mcp/charts"
)

func newToolsCommand(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tools [name]",
		Short: "List chart tools, or print one tool's input schema",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := charts.Default()
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				for d := range reg.All() {
					summary, _, _ := strings.Cut(d.Description, "\n")
					fmt.Fprintf(tw, "%s\t%s\n", d.Name, summary)
				}
				return tw.Flush()
			}

			d, err := reg.Get(args[0])
			if err != nil {
				return err
			}
			schema, err := d.InputSchema()
			if err != nil {
				return err
			}
			var pretty bytes.Buffer
			if err := json.Indent(&pretty, schema, "", "  "); err != nil {
				return fmt.Errorf("format schema: %w", err)
			}
			fmt.Fprintln(out, pretty.String())
			return nil
		},
	}
}
