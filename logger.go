package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logFile *os.File

// SetupLogger 日志输出到文件，文件无法打开时输出到标准错误
func SetupLogger(logPath string, level logrus.Level) {
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		logrus.SetOutput(os.Stderr)
		logrus.Warnf("open log file %s fail, err = %v", logPath, err)
		return
	}
	logFile = file
	logrus.SetOutput(logFile)
}

func CloseLogger() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}
