package main

import (
	"encoding/json"
	"fmt"

	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/infrastructure/database"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/infrastructure/provider/midtrans"
	"github.com/spf13/cobra"
)

func migrateCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the payment tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, log, err := env.open()
			if err != nil {
				return err
			}
			defer application.Close()

			if err := database.Migrate(application.DB, log); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
			return nil
		},
	}
}

func notificationsCmd(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Inspect and replay logged gateway notifications",
	}
	cmd.AddCommand(replayCmd(env))
	return cmd
}

func replayCmd(env *environment) *cobra.Command {
	var (
		limit       int
		maxAttempts int
	)

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Reconcile failed notifications whose retry time has come",
		Long: `Replay loads failed notifications that are due for retry and runs
them through the reconciler again. Each attempt updates the stored
notification: handled, ignored, or failed with a later retry time.

Examples:
  paymentctl notifications replay
  paymentctl notifications replay --limit 50 --max-attempts 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, _, err := env.open()
			if err != nil {
				return err
			}
			defer application.Close()

			if !cmd.Flags().Changed("limit") {
				limit = application.Config.Reconcile.ReplayBatch
			}
			if !cmd.Flags().Changed("max-attempts") {
				maxAttempts = application.Config.Reconcile.MaxAttempts
			}

			result, err := application.Replayer.ReplayFailed(cmd.Context(), limit, maxAttempts)
			if err != nil {
				return err
			}
			return writeJSON(cmd, result)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum notifications to replay (defaults to reconcile.replay_batch)")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 0, "skip notifications retried this many times (defaults to reconcile.max_attempts)")

	return cmd
}

func signatureCmd() *cobra.Command {
	var serverKey string

	cmd := &cobra.Command{
		Use:   "signature [order-id] [status-code] [gross-amount]",
		Short: "Print the signature_key Midtrans sends for a notification",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if serverKey == "" {
				return fmt.Errorf("--server-key is required")
			}
			fmt.Fprintln(cmd.OutOrStdout(), midtrans.Signature(args[0], args[1], args[2], serverKey))
			return nil
		},
	}

	cmd.Flags().StringVar(&serverKey, "server-key", "", "Midtrans server key")

	return cmd
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
