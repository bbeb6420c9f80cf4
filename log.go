package st7789

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger receives the driver's debug output. Set DISPLAY_DEBUG in the environment to see it
// with the default logger.
var Logger logrus.FieldLogger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	if os.Getenv("DISPLAY_DEBUG") != "" {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}
