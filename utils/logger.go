package utils

import (
	"context"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm/logger"
)

var Logger = logrus.New()

func init() {
	// JSON output with normalized field names so log collectors can ingest it
	Logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	Logger.SetLevel(logrus.InfoLevel)

	if _, err := os.Stat("logs"); os.IsNotExist(err) {
		if err := os.Mkdir("logs", 0755); err != nil {
			log.Printf("Could not create the logs directory: %v", err)
		}
	}

	file, err := os.OpenFile("logs/app.json", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open the log file: %v", err)
		Logger.SetOutput(os.Stdout)
	} else {
		Logger.SetOutput(io.MultiWriter(os.Stdout, file))
	}
}

// LogWriter returns a writer that routes gin's access logs through the app logger.
func LogWriter() io.Writer {
	return &ginLogWriter{}
}

type ginLogWriter struct{}

func (w *ginLogWriter) Write(p []byte) (n int, err error) {
	Logger.WithFields(logrus.Fields{
		"source": "gin",
	}).Info(string(p))
	return len(p), nil
}

// GetGormLogger returns a GORM logger that shares the global format
func GetGormLogger() logger.Interface {
	return &gormLogger{
		LogLevel: logger.Warn,
	}
}

type gormLogger struct {
	LogLevel logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.LogLevel = level
	return &newLogger
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	Logger.WithFields(logrus.Fields{
		"source": "gorm",
		"data":   data,
	}).Info(msg)
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	Logger.WithFields(logrus.Fields{
		"source": "gorm",
		"data":   data,
	}).Warn(msg)
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	Logger.WithFields(logrus.Fields{
		"source": "gorm",
		"data":   data,
	}).Error(msg)
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	fields := logrus.Fields{
		"source":  "gorm",
		"elapsed": elapsed.String(),
		"sql":     sql,
		"rows":    rows,
	}

	if err != nil {
		fields["error"] = err.Error()
		Logger.WithFields(fields).Error("SQL query error")
	} else {
		Logger.WithFields(fields).Debug("SQL query executed")
	}
}

func LogSuccess(message string) {
	Logger.WithFields(logrus.Fields{
		"function": getCaller(),
		"status":   "success",
		"source":   "app",
	}).Info(message)
}

func LogInfo(message string) {
	Logger.WithFields(logrus.Fields{
		"function": getCaller(),
		"source":   "app",
	}).Info(message)
}

func LogError(err error, message string) {
	entry := Logger.WithFields(logrus.Fields{
		"function": getCaller(),
		"status":   "error",
		"source":   "app",
	})
	if err != nil {
		entry = entry.WithField("error", err.Error())
	}
	entry.Error(message)
}

func getCaller() string {
	pc, _, _, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	return fn.Name()
}
