package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/NeuralTrust/TaskAPI/pkg/config"
	"github.com/sirupsen/logrus"
)

const fileBufferSize = 32 * 1024

// NewLogger builds the process logger. With cfg.File set, entries go to the
// file through an AsyncFileWriter and are mirrored to stdout; the returned
// cleanup flushes the file and must be called on shutdown.
func NewLogger(cfg config.LogConfig) (*logrus.Logger, func(), error) {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})
	logger.SetLevel(parseLevel(cfg.Level))
	logger.SetOutput(os.Stdout)

	if cfg.File == "" {
		return logger, func() {}, nil
	}

	asyncWriter, err := NewAsyncFileWriter(cfg.File, fileBufferSize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize async log writer: %w", err)
	}
	logger.SetOutput(asyncWriter)
	logger.AddHook(NewConsoleHook(os.Stdout))

	return logger, func() { _ = asyncWriter.Close() }, nil
}

func parseLevel(level string) logrus.Level {
	switch level {
	case "debug":
		return logrus.DebugLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
