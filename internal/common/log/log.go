package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var defaultLogger = New(os.Stdout, LevelInfo)

type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

func (level Level) String() string {
	switch level {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	default:
		return "unknown"
	}
}

// zapLevel maps a level onto zap's scale, trace sits one below debug
func (level Level) zapLevel() zapcore.Level {
	return zapcore.Level(int(LevelInfo) - int(level))
}

func fromZapLevel(level zapcore.Level) Level {
	return Level(int(LevelInfo) - int(level))
}

// ParseLevel parses a log level string into a Level.
// Valid log levels are: error, warn, info, debug, trace.
func ParseLevel(level string) (Level, error) {
	switch level {
	case "error":
		return LevelError, nil
	case "warn":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	default:
		return LevelError, fmt.Errorf("unknown log level: %s", level)
	}
}

// Logger writes one JSON object per line through zap
type Logger struct {
	level zap.AtomicLevel
	out   *switchWriter
	zap   *zap.Logger
}

func New(out io.Writer, level Level) *Logger {
	return newLogger(out, level, zapcore.DefaultClock)
}

func newLogger(out io.Writer, level Level, clock zapcore.Clock) *Logger {
	atom := zap.NewAtomicLevelAt(level.zapLevel())
	w := &switchWriter{out: out}

	encoder := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:     "ts",
		LevelKey:    "level",
		MessageKey:  "msg",
		LineEnding:  zapcore.DefaultLineEnding,
		EncodeTime:  encodeTime,
		EncodeLevel: encodeLevel,
	})

	return &Logger{
		level: atom,
		out:   w,
		zap:   zap.New(zapcore.NewCore(encoder, w, atom), zap.WithClock(clock)),
	}
}

func encodeTime(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format(time.RFC3339))
}

func encodeLevel(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(fromZapLevel(level).String())
}

// switchWriter lets the output be replaced after loggers have been derived
type switchWriter struct {
	mu  sync.Mutex
	out io.Writer
}

func (w *switchWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.out.Write(p)
}

func (w *switchWriter) Sync() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if s, ok := w.out.(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}

func (l *Logger) SetLevel(level Level) {
	l.level.SetLevel(level.zapLevel())
}

func (l *Logger) SetOutput(out io.Writer) {
	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	l.out.out = out
}

// With returns a logger that adds the key/value pair to every entry
func (l *Logger) With(key string, value interface{}) *Logger {
	return &Logger{
		level: l.level,
		out:   l.out,
		zap:   l.zap.With(zap.Any(key, value)),
	}
}

func (l *Logger) logf(level Level, format string, args ...interface{}) {
	lvl := level.zapLevel()
	if !l.level.Enabled(lvl) {
		return
	}
	if ce := l.zap.Check(lvl, fmt.Sprintf(format, args...)); ce != nil {
		ce.Write()
	}
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(LevelError, format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.logf(LevelWarn, format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(LevelInfo, format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(LevelDebug, format, args...)
}

func (l *Logger) Trace(format string, args ...interface{}) {
	l.logf(LevelTrace, format, args...)
}

// Sync flushes buffered entries
func (l *Logger) Sync() error {
	return l.zap.Sync()
}

// Default returns the package level logger
func Default() *Logger {
	return defaultLogger
}

func SetLevel(level Level) {
	defaultLogger.SetLevel(level)
	defaultLogger.Info("Log level set to %s", level)
}

func SetOutput(out io.Writer) {
	defaultLogger.SetOutput(out)
}

func Sync() error {
	return defaultLogger.Sync()
}

func Info(format string, args ...interface{}) {
	defaultLogger.Info(format, args...)
}

func Error(format string, args ...interface{}) {
	defaultLogger.Error(format, args...)
}

func Warn(format string, args ...interface{}) {
	defaultLogger.Warn(format, args...)
}

func Debug(format string, args ...interface{}) {
	defaultLogger.Debug(format, args...)
}

func Trace(format string, args ...interface{}) {
	defaultLogger.Trace(format, args...)
}
