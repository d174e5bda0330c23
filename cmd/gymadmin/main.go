package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gym_admin/internal/infra/config"
	"gym_admin/internal/infra/console"
	"gym_admin/internal/infra/logger"
	"gym_admin/internal/infra/secrets"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var (
		cfg        *config.AppConfig
		secretsDir string
	)

	root := &cobra.Command{
		Use:           "gymadmin",
		Short:         "Administer gym members and publish weekly trainings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Could not load configuration: %v\n", err)
				return err
			}
			if cmd.Flags().Changed("secrets-dir") {
				loaded.SecretsDir = secretsDir
			}
			logger.Init(loaded)
			logger.Log.WithFields(logrus.Fields{
				"environment": loaded.Environment,
				"secrets_dir": loaded.SecretsDir,
			}).Debug("Configuration loaded")

			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Initializing...")
			menu, cleanup, err := bootstrap(cmd.Context(), cfg)
			if err != nil {
				logger.Log.WithError(err).Error("Bootstrap failed")
				fmt.Fprintf(os.Stderr, "Could not start: %v\n", err)
				return err
			}
			defer cleanup()
			fmt.Println("Initialized.")

			if err := menu.Run(cmd.Context()); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return err
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&secretsDir, "secrets-dir", "", "directory holding the secrets written by setup (overrides SECRETS_DIR)")

	root.AddCommand(&cobra.Command{
		Use:   "setup",
		Short: "Store the credential path, access token and backend URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			setup := console.NewSetup(
				console.NewSurveyPrompter(),
				secrets.NewFileStore(cfg.SecretsDir),
				os.Stdout,
				logger.Component("setup"),
			)
			if err := setup.Run(); err != nil {
				fmt.Fprintf(os.Stderr, "An unexpected error occurred: %v\n", err)
				return err
			}
			return nil
		},
	})

	return root
}
