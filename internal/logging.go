package internal

import (
	"github.com/sirupsen/logrus"
)

// hostLogger is the diagnostic logger for the pipeline itself — the
// token count after lexing and the statement count after parsing —
// separate from Say output, which goes to the evaluator's configured
// writer instead.
var hostLogger = newHostLogger()

func newHostLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	l.SetLevel(logrus.WarnLevel)
	return l
}

// SetVerbose raises the host logger to Debug, used by the CLI's
// -verbose flag to trace the lex and parse stages of Run.
func SetVerbose(verbose bool) {
	if verbose {
		hostLogger.SetLevel(logrus.DebugLevel)
	} else {
		hostLogger.SetLevel(logrus.WarnLevel)
	}
}
