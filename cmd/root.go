package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/otusbank/cmd/account"
	"github.com/hance08/otusbank/internal/app"
	"github.com/hance08/otusbank/internal/config"
	"github.com/hance08/otusbank/internal/errhandler"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type rootFlags struct {
	ConfigFile string
	InMemory   bool
}

type rootRunner struct {
	flags       *rootFlags
	v           *viper.Viper
	migrations  fs.FS
	application *app.App
	cleanup     func()
}

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	rootCmd, runner := newRootCmd(migrations)
	err := rootCmd.Execute()
	// PersistentPostRun is skipped when a command fails.
	runner.close(rootCmd, nil)
	if err != nil {
		os.Exit(errhandler.HandleError(err))
	}
}

// newRootCmd builds the otusbank command tree. Configuration and storage are
// opened once flags are parsed and closed when the command finishes.
func newRootCmd(migrations fs.FS) (*cobra.Command, *rootRunner) {
	r := &rootRunner{
		flags:      &rootFlags{},
		v:          viper.New(),
		migrations: migrations,
	}

	rootCmd := &cobra.Command{
		Use:   "otusbank",
		Short: "otusbank moves money between bank accounts",
		Long: `otusbank keeps account balances, charges accounts and transfers money
between accounts and between agreements, optionally with a commission.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: r.open,
		PersistentPostRun: r.close,
	}

	rootCmd.PersistentFlags().StringVarP(&r.flags.ConfigFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().BoolVar(&r.flags.InMemory, "memory", false, "use a throwaway in-memory database")

	provider := app.Provider(func() *app.App { return r.application })

	rootCmd.AddCommand(account.NewAccountCmd(provider))
	rootCmd.AddCommand(NewChargeCmd(provider))
	rootCmd.AddCommand(NewTransferCmd(provider))
	rootCmd.AddCommand(NewPayCmd(provider))
	rootCmd.AddCommand(NewInfoCmd(provider))

	return rootCmd, r
}

func (r *rootRunner) open(cmd *cobra.Command, args []string) error {
	cfg, err := r.initConfig()
	if err != nil {
		return err
	}

	application, cleanup, err := app.NewApp(cfg, r.migrations, r.flags.InMemory)
	if err != nil {
		return err
	}

	r.application = application
	r.cleanup = cleanup
	return nil
}

func (r *rootRunner) close(cmd *cobra.Command, args []string) {
	if r.cleanup != nil {
		r.cleanup()
		r.cleanup = nil
	}
}

func (r *rootRunner) initConfig() (*config.Config, error) {
	v := r.v
	setDefaults(v)

	if r.flags.ConfigFile != "" {
		v.SetConfigFile(r.flags.ConfigFile)
	} else {
		appDir, err := app.AppDataDir()
		if err != nil {
			return nil, fmt.Errorf("error getting app dir: %w", err)
		}

		v.AddConfigPath(appDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		if err := createDefaultConfig(v, appDir); err != nil {
			return nil, fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	v.SetEnvPrefix("OTUSBANK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv() // allow using environment variables to override

	if err := v.ReadInConfig(); err != nil {

		if r.flags.ConfigFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("config file error: %w", err)
		}
	}

	cfg := config.NewDefault()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = v.ConfigFileUsed()

	return cfg, nil
}

// setDefaults registers every key so environment overrides reach Unmarshal
// even when the config file leaves them out.
func setDefaults(v *viper.Viper) {
	d := config.NewDefault()
	v.SetDefault("database.path", d.Database.Path)
	v.SetDefault("transfers.strict", d.Transfers.Strict)
	v.SetDefault("payments.commission", d.Payments.Commission)
	v.SetDefault("payments.source_type", d.Payments.SourceType)
	v.SetDefault("payments.destination_type", d.Payments.DestinationType)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

func createDefaultConfig(v *viper.Viper, appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := v.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
