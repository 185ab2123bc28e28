package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// levels ordered from quietest to loudest; the default verbosity of zero
// lands on WarnLevel, one -q step per index down, one -v step per index up.
var levels = []logrus.Level{
	logrus.PanicLevel,
	logrus.ErrorLevel,
	logrus.WarnLevel,
	logrus.InfoLevel,
	logrus.DebugLevel,
	logrus.TraceLevel,
}

const defaultIndex = 2 // WarnLevel

// New builds the diagnostic logger for one query. verbosity is the net
// -v minus -q count; the mapping saturates at both ends. Output goes to
// stderr only, stdout is reserved for results.
func New(verbosity int) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(Level(verbosity))
	return log
}

// Level maps a verbosity count to a logrus level.
func Level(verbosity int) logrus.Level {
	idx := defaultIndex + verbosity
	if idx < 0 {
		idx = 0
	}
	if idx >= len(levels) {
		idx = len(levels) - 1
	}
	return levels[idx]
}
