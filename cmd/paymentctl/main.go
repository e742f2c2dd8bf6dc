package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/app"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/internal/config"
	"github.com/Deofajar10/Sportfy-Backend-Coba-Coba/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "paymentctl",
		Short:         "Operational tasks for the Sportfy payment service",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (defaults to CONFIG_PATH or ./configs/payment.yaml)")

	env := &environment{configPath: &configPath}

	rootCmd.AddCommand(migrateCmd(env))
	rootCmd.AddCommand(notificationsCmd(env))
	rootCmd.AddCommand(signatureCmd())

	return rootCmd
}

// environment lazily loads config and opens the application for commands
// that need the database.
type environment struct {
	configPath *string
}

func (e *environment) open() (*app.App, *zap.Logger, error) {
	var (
		cfg *config.Config
		err error
	)
	if *e.configPath != "" {
		cfg, err = config.LoadConfigFrom(*e.configPath)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:  cfg.Log.Level,
		Format: "console",
		Output: "stderr",
	})
	if err != nil {
		log.Printf("Failed to initialize logger, using default: %v", err)
		zapLogger = logger.DefaultZapLogger()
	}

	application, err := app.New(cfg, zapLogger)
	if err != nil {
		return nil, nil, err
	}
	return application, zapLogger, nil
}
