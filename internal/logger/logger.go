package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSize = 10
	maxBack = 5
	maxAge  = 30
	dirMode = 0o755
)

// New builds the run logger: coloured console output plus a plain
// "time level message" file rotated by lumberjack. Close the returned
// io.Closer on shutdown.
func New(filePath, level string) (zerolog.Logger, io.Closer, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	if err := os.MkdirAll(filepath.Dir(filePath), dirMode); err != nil {
		return zerolog.Nop(), nil, err
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}

	fileRotator := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize, // megabytes before rotation
		MaxBackups: maxBack,
		MaxAge:     maxAge, // days
		Compress:   true,
	}
	fileWriter := zerolog.ConsoleWriter{
		Out:        fileRotator,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(consoleWriter, fileWriter)).With().
		Timestamp().
		Str("service", "weather-cleaning").
		Logger().
		Level(lvl)

	logger.Debug().Str("logsFilePath", filePath).Msg("logger initialized with file rotation")
	return logger, fileRotator, nil
}
