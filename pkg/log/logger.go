package log

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/t-tomalak/logrus-easy-formatter"
)

var logger *customLogger

// nolint:gochecknoinits
func init() {
	logger = newLogger()
}

type customLogger struct {
	*logrus.Logger
}

// SetLevel
// Set log level:
// DebugLevel = 0
// InfoLevel = 1
// WarnLevel = 2
// ErrorLevel = 3
func SetLevel(lvl int) {
	switch lvl {
	case 0:
		Info("log level set to DEBUG.")
		logger.SetLevel(logrus.DebugLevel)
	case 1:
		Info("log level set to INFO.")
		logger.SetLevel(logrus.InfoLevel)
	case 2:
		Info("log level set to WARN.")
		logger.SetLevel(logrus.WarnLevel)
	case 3:
		Info("log level set to ERROR.")
		logger.SetLevel(logrus.ErrorLevel)
	default:
		Info("log level set to INFO.")
		logger.SetLevel(logrus.InfoLevel)
	}
}

// SetOutput redirects all log output, tests use it to capture lines.
func SetOutput(out io.Writer) {
	logger.SetOutput(out)
}

func newLogger() *customLogger {
	logger := &logrus.Logger{
		Out:   os.Stderr,
		Level: logrus.InfoLevel,
		Hooks: make(logrus.LevelHooks),
		Formatter: &scopedFormatter{easy.Formatter{
			TimestampFormat: "01-02 15:04:05.000",
			LogFormat:       "[%lvl%]   [%time%]   -   %msg%\r\n",
		}},
	}
	return &customLogger{logger}
}

// ScopeField 记录日志所属认证器的字段名
const ScopeField = "authenticator"

// scopedFormatter 把 ScopeField 渲染为消息前缀 "[scope] "，其余字段不输出
type scopedFormatter struct {
	easy.Formatter
}

func (f *scopedFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	scope, ok := entry.Data[ScopeField]
	if !ok {
		return f.Formatter.Format(entry)
	}
	scoped := *entry
	scoped.Message = fmt.Sprintf("[%v] %s", scope, entry.Message)
	return f.Formatter.Format(&scoped)
}

// Entry is a logger scoped to one authenticator.
type Entry struct {
	*logrus.Entry
}

// Scoped returns an Entry carrying scope in the ScopeField field.
func Scoped(scope string) *Entry {
	return &Entry{logger.WithField(ScopeField, scope)}
}

// Debug
func Debug(content interface{}) {
	logger.Debug(content)
}

// Debugf
func Debugf(format string, args ...interface{}) {
	content := fmt.Sprintf(format, args...)
	logger.Debug(content)
}

// Info
func Info(content interface{}) {
	logger.Info(content)
}

// Infof
func Infof(format string, args ...interface{}) {
	content := fmt.Sprintf(format, args...)
	logger.Info(content)
}

// Warn
func Warn(content interface{}) {
	logger.Warn(content)
}

// Warnf
func Warnf(format string, args ...interface{}) {
	content := fmt.Sprintf(format, args...)
	logger.Warn(content)
}

// Error
func Error(content interface{}) {
	logger.Error(content)
}

// Errorf
func Errorf(format string, args ...interface{}) {
	content := fmt.Sprintf(format, args...)
	logger.Error(content)
}

// Fatal
func Fatal(content interface{}) {
	logger.Fatal(content)
}

// Fatalf
func Fatalf(format string, args ...interface{}) {
	content := fmt.Sprintf(format, args...)
	logger.Fatal(content)
}
