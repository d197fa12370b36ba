package main

import (
	"context"

	"github.com/riskibarqy/ballpark/internal/config"
	"github.com/riskibarqy/ballpark/internal/platform/logging"
	"github.com/spf13/cobra"
)

type exercise struct {
	name  string
	short string
	run   func(context.Context, config.Config, *logging.Logger) error
}

var exercises = []exercise{
	{name: "baseball", short: "Create teams, players, games and records, then compute stats", run: runBaseball},
	{name: "ledger", short: "Deposit, withdraw and transfer between two accounts", run: runLedger},
	{name: "library", short: "Lend, return and download physical and electronic books", run: runLibrary},
	{name: "directory", short: "Add, remove and list users", run: runDirectory},
}

// newRootCmd runs every exercise when called without a subcommand.
func newRootCmd(cfg config.Config, logger *logging.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "ballpark-demo",
		Short:        "Run the in-memory ballpark exercises and log their results",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, ex := range exercises {
				if err := runExercise(cmd.Context(), ex, cfg, logger); err != nil {
					return err
				}
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().DurationVar(&cfg.LedgerTransferDelay, "transfer-delay", cfg.LedgerTransferDelay, "Delay before a scheduled transfer (env: LEDGER_TRANSFER_DELAY)")
	rootCmd.PersistentFlags().IntVar(&cfg.UserMinPasswordLength, "min-password-length", cfg.UserMinPasswordLength, "Minimum password length (env: USER_MIN_PASSWORD_LENGTH)")

	for _, ex := range exercises {
		rootCmd.AddCommand(&cobra.Command{
			Use:   ex.name,
			Short: ex.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runExercise(cmd.Context(), ex, cfg, logger)
			},
		})
	}

	return rootCmd
}

func runExercise(ctx context.Context, ex exercise, cfg config.Config, logger *logging.Logger) error {
	scoped := logger.With("demo", ex.name)
	if err := ex.run(ctx, cfg, scoped); err != nil {
		scoped.ErrorContext(ctx, "demo failed", "error", err)
		return err
	}
	scoped.DebugContext(ctx, "demo finished")
	return nil
}
