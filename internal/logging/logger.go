package logging

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Logger = logrus.New()

var once sync.Once

// Init configures the shared logger: JSON entries to stdout and a
// size-rotated file. Safe to call more than once; only the first call
// takes effect.
func Init(service, filename string) {
	once.Do(func() {
		rotated := &lumberjack.Logger{
			Filename:   filename,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}

		Logger.SetOutput(io.MultiWriter(os.Stdout, rotated))
		Logger.SetFormatter(&logrus.JSONFormatter{})
		Logger.SetLevel(logrus.InfoLevel)

		Logger.WithField("service", service).WithField("file", filename).Info("logger initialized")
	})
}
