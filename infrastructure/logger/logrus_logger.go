package logger

import (
	"io"
	"net/url"
	"os"
	"strings"

	"seyren-stride/domain/interfaces"
	"github.com/sirupsen/logrus"
)

// FormatJSON selects the JSON formatter; anything else uses text.
const FormatJSON = "json"

const redacted = "[REDACTED]"

// sensitiveKeys are field names whose values never reach the output
var sensitiveKeys = map[string]struct{}{
	"access_token":  {},
	"accesstoken":   {},
	"auth_token":    {},
	"token":         {},
	"client_secret": {},
	"clientsecret":  {},
	"authorization": {},
}

// logrusLogger implements the Logger interface using logrus
type logrusLogger struct {
	logger *logrus.Entry
}

// NewLogrusLogger creates a new logrus-based logger writing to stdout
func NewLogrusLogger(level, format string) interfaces.Logger {
	return newLogrusLogger(os.Stdout, level, format)
}

func newLogrusLogger(out io.Writer, level, format string) interfaces.Logger {
	log := logrus.New()

	log.SetOutput(out)

	if strings.EqualFold(format, FormatJSON) {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			DisableColors:   false,
		})
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	log.SetLevel(logLevel)

	log.AddHook(redactHook{})

	return &logrusLogger{
		logger: logrus.NewEntry(log),
	}
}

// Debug logs a debug message
func (l *logrusLogger) Debug(msg string, fields ...interface{}) {
	l.logger.WithFields(l.parseFields(fields...)).Debug(msg)
}

// Info logs an info message
func (l *logrusLogger) Info(msg string, fields ...interface{}) {
	l.logger.WithFields(l.parseFields(fields...)).Info(msg)
}

// Warn logs a warning message
func (l *logrusLogger) Warn(msg string, fields ...interface{}) {
	l.logger.WithFields(l.parseFields(fields...)).Warn(msg)
}

// Error logs an error message
func (l *logrusLogger) Error(msg string, fields ...interface{}) {
	l.logger.WithFields(l.parseFields(fields...)).Error(msg)
}

// Fatal logs a fatal message and exits
func (l *logrusLogger) Fatal(msg string, fields ...interface{}) {
	l.logger.WithFields(l.parseFields(fields...)).Fatal(msg)
}

// WithFields returns a logger with additional fields
func (l *logrusLogger) WithFields(fields map[string]interface{}) interfaces.Logger {
	return &logrusLogger{
		logger: l.logger.WithFields(fields),
	}
}

// WithError returns a logger with an error field
func (l *logrusLogger) WithError(err error) interfaces.Logger {
	return &logrusLogger{
		logger: l.logger.WithError(err),
	}
}

// parseFields converts variadic fields to logrus.Fields
func (l *logrusLogger) parseFields(fields ...interface{}) logrus.Fields {
	result := make(logrus.Fields)

	// Process pairs of key-value
	for i := 0; i < len(fields)-1; i += 2 {
		if key, ok := fields[i].(string); ok {
			result[key] = fields[i+1]
		}
	}

	return result
}

// redactHook scrubs credentials from entry fields before they are formatted.
type redactHook struct{}

// Levels implements logrus.Hook
func (redactHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook
func (redactHook) Fire(entry *logrus.Entry) error {
	for key, value := range entry.Data {
		if _, ok := sensitiveKeys[strings.ToLower(key)]; ok {
			entry.Data[key] = redacted
			continue
		}
		if s, ok := value.(string); ok {
			entry.Data[key] = RedactURL(s)
		}
	}
	return nil
}

// RedactURL masks the auth_token query parameter of a URL-looking string.
func RedactURL(raw string) string {
	if !strings.Contains(raw, "auth_token=") {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if !q.Has("auth_token") {
		return raw
	}
	q.Set("auth_token", redacted)
	u.RawQuery = q.Encode()
	return u.String()
}
