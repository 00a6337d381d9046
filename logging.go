package serd

import "github.com/sirupsen/logrus"

// LogLevel is the five-level severity a Logger record carries, mirroring
// the DEBUG/INFO/NOTICE/WARN/ERROR taxonomy used by the model, node pool,
// canonicaliser and writer diagnostics.
type LogLevel uint8

const (
	LogDebug LogLevel = iota
	LogInfo
	LogNotice
	LogWarn
	LogError
)

func (l LogLevel) String() string {
	switch l {
	case LogDebug:
		return "debug"
	case LogInfo:
		return "info"
	case LogNotice:
		return "notice"
	case LogWarn:
		return "warn"
	case LogError:
		return "error"
	default:
		return "unknown"
	}
}

// Fields carries the keyed context a log record attaches alongside its
// message, e.g. file/line/col/check identifiers during error recovery.
type Fields map[string]interface{}

// Logger is the sink diagnostics are reported through (Model on a
// duplicate Add, Nodes when the allocator denies growth, CanonSink on a
// literal it leaves as is, Writer truncating a cyclic list). The Reader
// accepts a Logger but does not log, and it has no syntax-error recovery
// mode: a syntax error ends the read. Passing a nil Logger to any constructor
// is equivalent to passing NopLogger{}; no subsystem reads a package-level
// global.
type Logger interface {
	Log(level LogLevel, msg string, fields Fields)
}

// NopLogger discards every record; it is the default when a constructor
// receives a nil Logger.
type NopLogger struct{}

func (NopLogger) Log(LogLevel, string, Fields) {}

// logrusLogger adapts Logger onto a *logrus.Logger. NOTICE has no logrus
// equivalent, so it is folded onto logrus's Info level with an added
// notice=true field.
type logrusLogger struct {
	l *logrus.Logger
}

// NewLogrusLogger wraps l as a Logger. A nil l uses logrus.StandardLogger().
func NewLogrusLogger(l *logrus.Logger) Logger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return logrusLogger{l: l}
}

func (g logrusLogger) Log(level LogLevel, msg string, fields Fields) {
	entry := g.l.WithFields(logrus.Fields(fields))
	switch level {
	case LogDebug:
		entry.Debug(msg)
	case LogInfo:
		entry.Info(msg)
	case LogNotice:
		entry.WithField("notice", true).Info(msg)
	case LogWarn:
		entry.Warn(msg)
	case LogError:
		entry.Error(msg)
	default:
		entry.Info(msg)
	}
}

func logCaret(fields Fields, c *Caret) Fields {
	if c == nil {
		return fields
	}
	if fields == nil {
		fields = Fields{}
	}
	fields["file"] = c.Document.Value()
	fields["line"] = c.Line
	fields["col"] = c.Col
	return fields
}

func orNop(l Logger) Logger {
	if l == nil {
		return NopLogger{}
	}
	return l
}
