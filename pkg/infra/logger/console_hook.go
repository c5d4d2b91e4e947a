package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// ConsoleHook mirrors every entry to out, formatted with the logger's formatter.
type ConsoleHook struct {
	out io.Writer
}

func NewConsoleHook(out io.Writer) *ConsoleHook {
	return &ConsoleHook{out: out}
}

func (h *ConsoleHook) Fire(entry *logrus.Entry) error {
	line, err := entry.Logger.Formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.out.Write(line)
	return err
}

func (h *ConsoleHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
