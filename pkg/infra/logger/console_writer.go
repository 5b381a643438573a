package logger

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// ConsoleHook mirrors every log entry to stderr, on top of whatever output
// the logger itself writes to.
type ConsoleHook struct{}

func NewConsoleHook() *ConsoleHook {
	return &ConsoleHook{}
}

func (h *ConsoleHook) Fire(entry *logrus.Entry) error {
	line, err := entry.Logger.Formatter.Format(entry)
	if err != nil {
		return err
	}
	fmt.Fprint(os.Stderr, string(line))
	return nil
}

func (h *ConsoleHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
