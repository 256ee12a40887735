package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"remotework/internal/infrastructure/logging"
)

type rootOptions struct {
	logLevel string
	devLog   bool
	log      *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "remotework",
		Short:         "See which team members are working right now",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := logging.NewLogger(opts.logLevel, opts.devLog)
			if err != nil {
				return err
			}
			opts.log = log
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if opts.log != nil {
				_ = opts.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level for CLI commands (serve uses LOGGING_LEVEL)")
	root.PersistentFlags().BoolVar(&opts.devLog, "log-dev", false, "human readable logs")

	root.AddCommand(
		newServeCmd(),
		newOnlineCmd(opts),
		newConvertCmd(),
		newScheduleCmd(opts),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
