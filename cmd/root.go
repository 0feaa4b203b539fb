package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/simssa-lab/refmatch/internal/gencmd"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "refmatch",
		Short: "Reconcile citation exports with a structured bibliography",
		Long: `Refmatch pairs each reference in an HTML citation export with the
bibliography entry it describes, then generates markdown content records from
the matched pairs.

The two sources disagree on field formatting and encoding, so matching runs a
deterministic cascade: exact year, closest first author, closest title, and a
venue tie-break against the rendered citation text.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose logging")

	// Add subcommands
	cmd.AddCommand(gencmd.NewMatchCmd())
	cmd.AddCommand(gencmd.NewGenerateCmd())

	return cmd
}
