package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"sndconvert/internal/batchrun"
	"sndconvert/internal/logging"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "sndconvert <directory>",
		Short: "Convert the audio files of a directory to one codec",
		Long: "Convert the audio files of a directory to one codec.\n\n" +
			"A directory named like a subcommand is converted when it exists; " +
			"\"sndconvert -- <directory>\" always treats the argument as a directory.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) || (cmd.Parent() == nil && len(args) == 0) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: sndconvert <directory>")
				return nil
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, closeLog, err := logging.NewFromConfig(cfg, out)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer closeLog()

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			report, err := batchrun.Run(runCtx, cfg, args[0], logger)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, renderSummary(report))
			fmt.Fprintf(out, "Total time: %.2f seconds\n", report.Summary.Elapsed.Seconds())
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newToolsCommand(ctx))

	return rootCmd
}
