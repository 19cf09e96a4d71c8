package logger

import (
	"errors"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const serviceName = "portal-api"

var (
	globalLogger zerolog.Logger
	once         sync.Once
)

// GetLogger returns the shared process logger. Before Configure runs it
// emits console output at info level so startup logging stays readable
// while the environment is still being parsed.
func GetLogger() zerolog.Logger {
	once.Do(func() {
		globalLogger = consoleLogger().Level(zerolog.InfoLevel)
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	})
	return globalLogger
}

// Configure rebuilds the shared logger from the LOG_LEVEL and LOG_FORMAT
// settings and replaces what GetLogger handed out during startup.
func Configure(level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Logger{}, err
	}

	var log zerolog.Logger
	switch strings.ToLower(format) {
	case "json":
		log = zerolog.New(os.Stdout).With().Timestamp().Str("service", serviceName).Logger()
	case "console":
		log = consoleLogger()
	default:
		return zerolog.Logger{}, errors.New("unsupported log format: " + format)
	}

	zerolog.SetGlobalLevel(lvl)
	globalLogger = log.Level(lvl)
	return globalLogger, nil
}

func consoleLogger() zerolog.Logger {
	writer := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(writer).With().Timestamp().Str("service", serviceName).Logger()
}
