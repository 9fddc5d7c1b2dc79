package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"lsbkit/internal/logging"
)

type rootOpts struct {
	cpuProfile    string
	memProfileDir string
	logLevel      string
}

func NewRootCommand() *cobra.Command {
	opts := rootOpts{}

	rootCmd := &cobra.Command{
		Use:           "lsbkit",
		Short:         "Least significant bit steganography and classical ciphers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetLevel(logging.ParseLevel(opts.logLevel))
			if opts.cpuProfile != "" {
				if err := StartCPUProfiler(opts.cpuProfile); err != nil {
					return err
				}
			}
			if opts.memProfileDir != "" {
				StartMemoryProfiler(opts.memProfileDir)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return stopProfilers()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cpuProfile, "cpu-profile", "", "Dump CPU profile into the supplied file")
	rootCmd.PersistentFlags().StringVar(&opts.memProfileDir, "mem-profile-dir", "", "Dump memory profiles into the supplied directory")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level. Options are debug, info, warn, error")

	rootCmd.AddCommand(ImageCommands(), CipherCommands(), ServeAppCommand())
	return rootCmd
}

func stopProfilers() error {
	return errors.Join(StopCPUProfiler(), StopMemoryProfiler())
}

// Execute runs the command line, cancelling the command context on SIGINT or SIGTERM
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := NewRootCommand().ExecuteContext(ctx)
	if err != nil {
		// PersistentPostRunE is skipped when the command fails
		return errors.Join(err, stopProfilers())
	}
	return nil
}
