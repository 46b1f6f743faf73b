package config

import (
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/rshade/countrylist/internal/logging"
)

// Logger is the global zerolog logger used before a command sets up its own.
//
//nolint:gochecknoglobals // Logger is intentionally global for application-wide structured logging
var Logger zerolog.Logger

//nolint:gochecknoglobals // Guards the global logger state
var logMu sync.RWMutex

// InitLogger sets the package-level Logger to a console logger on stderr at
// the given level. Unparseable levels fall back to info.
func InitLogger(level string) {
	logMu.Lock()
	defer logMu.Unlock()

	Logger = logging.NewLogger(logging.Config{
		Level:  level,
		Format: logging.FormatConsole,
		Output: logging.OutputStderr,
		Caller: true,
	}, os.Stderr)
}

// SetLogLevel changes the level of the global Logger.
// If the provided level cannot be parsed, the logger level is set to zerolog.InfoLevel.
func SetLogLevel(level string) {
	logMu.Lock()
	defer logMu.Unlock()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	Logger = Logger.Level(lvl)
}

// GetLogger returns the global logger instance.
func GetLogger() zerolog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return Logger
}

//nolint:gochecknoinits // package-level logger must exist before any configuration is loaded
func init() {
	InitLogger(DefaultLogLevel)
}

// ToLoggingConfig converts the configuration section to a logging.Config.
// A non-empty File selects file output, otherwise logs go to stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// GetLoggingConfig returns a copy of the global Logging section. Flag
// overrides such as --debug are applied by the caller.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
