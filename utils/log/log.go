package log

import (
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func init() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	zap.ReplaceGlobals(logger)
}

func Debug(format string, args ...interface{}) {
	if enabled(DEBUG) {
		zap.S().Debugf(format, args...)
	}
}

func Info(format string, args ...interface{}) {
	if enabled(INFO) {
		zap.S().Infof(format, args...)
	}
}

func Warn(format string, args ...interface{}) {
	if enabled(WARNING) {
		zap.S().Warnf(format, args...)
	}
}

func Error(format string, args ...interface{}) {
	if enabled(ERROR) {
		zap.S().Errorf(format, args...)
	}
}

func Fatal(format string, args ...interface{}) {
	zap.S().Fatalf(format, args...)
}

// SetLogger replaces the logger all levels write to. The previous logger
// is flushed.
func SetLogger(logger *zap.Logger) {
	_ = zap.L().Sync()
	zap.ReplaceGlobals(logger)
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = zap.L().Sync()
}

func SetLevel(level Level) {
	atomic.StoreInt32(&logLevel, int32(level))
}

func GetLevel() Level {
	return Level(atomic.LoadInt32(&logLevel))
}

func enabled(level Level) bool {
	return GetLevel() <= level
}

type Level int

const (
	DEBUG Level = iota
	INFO
	WARNING
	ERROR
	FATAL
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "debug"
	case INFO:
		return "info"
	case WARNING:
		return "warning"
	case ERROR:
		return "error"
	case FATAL:
		return "fatal"
	default:
		return "unknown"
	}
}

// ParseLevel maps a configuration string to a Level. The empty string is
// INFO.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DEBUG, nil
	case "", "info":
		return INFO, nil
	case "warn", "warning":
		return WARNING, nil
	case "error":
		return ERROR, nil
	case "fatal":
		return FATAL, nil
	default:
		return INFO, errors.Errorf("unknown log level %q", s)
	}
}

var logLevel int32
