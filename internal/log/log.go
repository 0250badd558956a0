package logger

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const LogFileName = "gpc.log"

var Log = logrus.New()

// InitLogger routes all logging to the log file, leaving stdout to the status output.
func InitLogger(verbose bool, logFileName string) {

	file, err := os.OpenFile(GetLogFilePath(logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		logrus.Fatalf("Failed to open log file: %v", err)
	}

	Log.SetOutput(file)

	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		Log.SetLevel(logrus.DebugLevel)
		Log.Debugln("Verbose (debug) logging enabled")
	} else {
		Log.SetLevel(logrus.InfoLevel)
	}
}

func GetLogFilePath(logFileName string) string {
	if logFileName == "" {
		logFileName = LogFileName
	}
	path, err := filepath.Abs(logFileName)
	if err != nil {
		return logFileName
	}
	return path
}
