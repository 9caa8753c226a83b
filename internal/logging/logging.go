package logging

import (
	"os"

	log "github.com/sirupsen/logrus"
)

const (
	// AppName is the name used in log output and on the command line.
	AppName = "jx-app-cobertura"
)

var (
	appLogger *log.Logger
)

func init() {
	appLogger = log.New()
	appLogger.SetOutput(os.Stdout)
	appLogger.SetLevel(log.InfoLevel)
	appLogger.Formatter = &log.TextFormatter{FullTimestamp: true}
}

// AppLogger returns the application logger. Packages derive a component scoped entry from it
// via WithFields.
func AppLogger() *log.Logger {
	return appLogger
}

// SetLevel sets the level of the application logger. An unparseable level leaves the logger at
// info level.
func SetLevel(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		appLogger.Warnf("invalid log level '%s', falling back to 'info'", level)
		lvl = log.InfoLevel
	}
	appLogger.SetLevel(lvl)
}
