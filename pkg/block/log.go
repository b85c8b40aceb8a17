package block

import (
	"os"

	"github.com/sirupsen/logrus"
)

// log is the package logger. Lifecycle steps log at Debug level so a
// failing tree build can be traced without instrumenting callers.
var log = &logrus.Logger{
	Out:       os.Stderr,
	Formatter: &logrus.TextFormatter{},
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.InfoLevel,
}

// SetLogger replaces the package logger.
func SetLogger(l *logrus.Logger) {
	log = l
}
