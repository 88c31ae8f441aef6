// Package cmd implements the gnsync command-line interface.
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/bootstrap"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/config"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/failure"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/logger"
)

// Viper keys of the global flags.
const (
	keyConfig  = "config"
	keyDebug   = "debug"
	keyPackage = "package"
)

var rootCmd = &cobra.Command{
	Use:   "gnsync",
	Short: "Synchronize a GeoNature field device",
	Long: `gnsync keeps a local store of GeoNature reference data, taxa and field
inputs in sync with a GeoNature server, resolving its sync settings from the
server's package manifest.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	cobra.OnInitialize(initViper)

	rootCmd.PersistentFlags().String(keyConfig, "", "config file (default is $GNSYNC_CONFIG or ./config.yml)")
	rootCmd.PersistentFlags().Bool(keyDebug, false, "enable debug logging")
	rootCmd.PersistentFlags().String(keyPackage, "", "package whose settings drive the sync")

	for _, key := range []string{keyConfig, keyDebug, keyPackage} {
		_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key))
	}

	rootCmd.AddCommand(
		newRunCommand(),
		newSyncCommand(),
		newStatusCommand(),
		newSettingsCommand(),
		newPackagesCommand(),
		newAuthCommand(),
		newInputsCommand(),
		newVersionCommand(),
	)
}

// initViper lets GNSYNC_DEBUG and GNSYNC_PACKAGE stand in for the flags.
func initViper() {
	viper.SetEnvPrefix("GNSYNC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// loadConfig loads the configuration file and applies the global flags.
func loadConfig() (*config.Config, error) {
	cfg, err := bootstrap.LoadConfig(viper.GetString(keyConfig))
	if err != nil {
		return nil, err
	}

	if viper.GetBool(keyDebug) {
		cfg.Service.Debug = true
		cfg.Logging.Level = "debug"
	}
	if pkg := viper.GetString(keyPackage); pkg != "" {
		cfg.Service.PackageName = pkg
	}

	return cfg, nil
}

// withApp wires the application for the duration of fn.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, app *bootstrap.App) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := bootstrap.CreateLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := logger.WithContext(cmd.Context(), log)
	app, err := bootstrap.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			log.Error("Failed to close application", logger.Error(closeErr))
		}
	}()

	return fn(ctx, app)
}

// failed turns a use case failure into a command error.
func failed(op string, f failure.Failure) error {
	if feature, ok := f.(failure.Feature); ok {
		return fmt.Errorf("%s: %s: %w", op, feature.Feature(), f)
	}
	return fmt.Errorf("%s: %s: %w", op, f.Kind(), f)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", cfg.Service.Name, cfg.Service.Version)
			return nil
		},
	}
}
