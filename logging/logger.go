package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

func BoostrapLogger() {
	Log = &logrus.Logger{
		Out:   nil,
		Hooks: make(logrus.LevelHooks),
		Formatter: &logrus.TextFormatter{
			DisableColors:    false,
			DisableQuote:     false,
			DisableTimestamp: false,
			FullTimestamp:    true,
		},
		ReportCaller: false,
		Level:        logrus.DebugLevel,
		ExitFunc:     os.Exit,
	}

	Log.SetReportCaller(true)
	Log.Out = os.Stdout
}

// SetLevel applies a textual level such as "info" or "warn". Unknown values keep the current level.
func SetLevel(level string) {
	if level == "" {
		return
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		Log.Warnf("unknown log level %q, keeping %s", level, Log.GetLevel())
		return
	}
	Log.SetLevel(parsed)
}
