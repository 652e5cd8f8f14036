package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

var logLevels = map[string]pterm.LogLevel{
	"trace":    pterm.LogLevelTrace,
	"debug":    pterm.LogLevelDebug,
	"info":     pterm.LogLevelInfo,
	"warn":     pterm.LogLevelWarn,
	"error":    pterm.LogLevelError,
	"disabled": pterm.LogLevelDisabled,
}

// NewLogger builds the pterm logger described by the log section. A nil
// writer means stderr.
func (c LogConfig) NewLogger(w io.Writer) (*pterm.Logger, error) {
	level, ok := logLevels[strings.ToLower(strings.TrimSpace(c.Level))]
	if !ok {
		return nil, fmt.Errorf("invalid log level '%s'", c.Level)
	}

	if w == nil {
		w = os.Stderr
	}

	logger := pterm.DefaultLogger.WithLevel(level).WithWriter(w)

	switch strings.ToLower(c.Format) {
	case "", "text":
	case "json":
		logger = logger.WithFormatter(pterm.LogFormatterJSON)
	default:
		return nil, fmt.Errorf("invalid log format '%s' (must be text or json)", c.Format)
	}

	return logger, nil
}
