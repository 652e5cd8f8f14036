package cmd

import (
	"os"

	"github.com/hance08/otusbank/internal/app"
	"github.com/hance08/otusbank/internal/store"
	"github.com/hance08/otusbank/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	provider app.Provider
}

func NewInfoCmd(provider app.Provider) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database path, and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				provider: provider,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	application := r.provider()
	cfg := application.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	dbPath, err := app.DatabasePath(cfg)
	if err != nil {
		dbPath = "Unknown"
	}

	dbExists := false
	if _, err := os.Stat(dbPath); err == nil {
		dbExists = true
	}

	_, inMemory := application.Store.(*store.MemoryStore)

	items := views.SystemInfoItem{
		ConfigPath:      configPath,
		DBPath:          dbPath,
		DBExists:        dbExists,
		InMemory:        inMemory,
		StrictTransfers: cfg.Transfers.Strict,
		Commission:      cfg.Payments.Commission,
		LogLevel:        cfg.Log.Level,
		AppDataDir:      getAppDataDirOrUnknown(),
	}

	return views.RenderSystemInfo(items)
}

func getAppDataDirOrUnknown() string {
	dir, err := app.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
