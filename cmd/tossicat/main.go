package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/tossicat/internal/cli"
	"codeberg.org/snonux/tossicat/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := newRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCommand(flags *cli.Flags) *cobra.Command {
	rootCmd := cli.CreateRootCommand(flags)
	rootCmd.SilenceUsage = true

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}
	return rootCmd
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	cli.ApplyConfig(flags)
	if err := flags.Validate(); err != nil {
		return err
	}

	logger := cli.NewLogger(os.Stderr, flags.LogLevel, flags.Verbose)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	proc := processor.NewProcessor(flags, logger)

	// Listing commands do not produce results
	switch {
	case flags.ListParticles:
		proc.ListParticles()
		return nil
	case flags.History:
		return proc.PrintHistory(ctx)
	case flags.Number != "":
		return proc.ReadNumber(flags.Number)
	}

	var source string
	switch {
	case flags.BatchFile != "":
		source = flags.BatchFile
		if _, err := proc.ProcessBatch(ctx); err != nil {
			return err
		}
	case flags.Sentence != "":
		source = "sentence"
		if _, err := proc.ProcessSentence(flags.Sentence); err != nil {
			return err
		}
	case len(args) == 2:
		source = "command line"
		if _, err := proc.ProcessSingle(args[0], args[1]); err != nil {
			return err
		}
	case len(args) == 1:
		return fmt.Errorf("missing particle for %q", args[0])
	default:
		return cmd.Help()
	}

	// Export results if requested
	if flags.ExportPath != "" {
		path, err := proc.Export(ctx, source)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to export results: %v\n", err)
		} else {
			fmt.Printf("Results exported to: %s\n", path)
		}
	}

	return nil
}
