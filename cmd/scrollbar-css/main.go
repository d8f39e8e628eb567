package main

import (
	"context"
	"os"
	"os/signal"

	"bennypowers.dev/scrollbar/internal/log"
	"bennypowers.dev/scrollbar/internal/version"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var verbose bool
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "scrollbar-css",
		Short: "Generate scrollbar utility CSS",
		Long: `scrollbar-css resolves scrollbar utility classes such as scrollbar-w-4,
scrollbar-rounded or scrollbar-thumb:scrollbar-hidden into CSS, from the
command line or from classes found in HTML, JS and TS sources.`,
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			if verbose {
				level = log.LevelDebug
			}
			log.SetOutput(cmd.ErrOrStderr())
			log.SetLevel(level)
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr (same as --log-level debug)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "minimum log level: debug, info, warn or error")

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		log.Error("%v", err)
		stop()
		os.Exit(1)
	}
}
