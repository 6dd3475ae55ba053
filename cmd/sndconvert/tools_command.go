package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sndconvert/internal/batchrun"
	"sndconvert/internal/codec"
	"sndconvert/internal/deps"
)

func newToolsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Show which external audio tools are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			toolDir, platform, err := batchrun.ToolDir(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if platform != "" {
				fmt.Fprintf(out, "Platform: %s\n", platform)
			}
			fmt.Fprintf(out, "Tool directory: %s\n", toolDir)

			var rows [][]string
			missing := 0
			for _, c := range codec.All {
				for _, status := range deps.CheckBinaries(codec.Requirements(c, toolDir, codec.CapDecode|codec.CapEncode)) {
					rows = append(rows, []string{status.Description, status.Name, status.Package, availability(status)})
					if !status.Available && !status.Optional {
						missing++
					}
				}
			}
			fmt.Fprintln(out, renderTable([]string{"Role", "Tool", "Package", "Status"}, rows, nil))
			if missing > 0 {
				fmt.Fprintf(out, "%d required tool(s) missing\n", missing)
			}
			return nil
		},
	}
}

func availability(status deps.Status) string {
	switch {
	case status.Available:
		return "ok"
	case status.Optional:
		return "missing (optional)"
	default:
		return "missing"
	}
}
