package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger

func BootstrapLogger() {
	Log = &logrus.Logger{
		Formatter: &logrus.TextFormatter{
			FullTimestamp: true,
		},
		Level: logrus.InfoLevel,
	}

	if os.Getenv("JANAWAAZ_DEBUG") != "" {
		Log.Level = logrus.DebugLevel
	}
	Log.Out = os.Stdout
}
