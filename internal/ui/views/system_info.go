package views

import (
	"fmt"

	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath      string
	DBPath          string
	DBExists        bool // true = Found, false = Not Found
	InMemory        bool
	StrictTransfers bool
	Commission      string
	LogLevel        string
	AppDataDir      string
}

func RenderSystemInfo(data SystemInfoItem) error {
	dbStatus := pterm.Green("Found")
	switch {
	case data.InMemory:
		dbStatus = pterm.Yellow("In memory (nothing is persisted)")
	case !data.DBExists:
		dbStatus = pterm.Red("Not Found (Will be created)")
	}

	transferMode := "lenient"
	if data.StrictTransfers {
		transferMode = "strict"
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Database Path", data.DBPath},
		{"Database Status", dbStatus},
		{"Transfer Mode", transferMode},
		{"Default Commission", fmt.Sprintf("%s%%", data.Commission)},
		{"Log Level", data.LogLevel},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
