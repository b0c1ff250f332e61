package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/inovacc/frontdesk/internal/application"
)

var (
	serverFlag  string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "A clinic front desk console",
	Long: `Frontdesk is a terminal console for a clinic front desk.
It tracks patients in the queue, doctors and their availability, and the
appointments linking the two, against the clinic service of record.

Log in once with 'frontdesk login', then open the interactive console
with 'frontdesk console' or drive individual operations with the
patient, doctor and appointment subcommands.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verboseFlag {
			level = slog.LevelDebug
		}

		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "Clinic service base URL (overrides config and FRONTDESK_SERVER)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
}
