package logger

import (
	"bytes"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/logrusorgru/aurora"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ZapLogger struct {
	log    *zap.Logger
	logBuf *lockedBuffer
}

// New returns a debug-level logger that keeps its colored console output in
// memory; see HTML.
func New() *ZapLogger {
	logBuf := &lockedBuffer{}
	return &ZapLogger{
		log:    newZap(zapcore.AddSync(logBuf), zap.DebugLevel),
		logBuf: logBuf,
	}
}

// NewWriter returns a logger writing colored console lines to w.
func NewWriter(w zapcore.WriteSyncer, level zapcore.Level) *ZapLogger {
	return &ZapLogger{log: newZap(w, level)}
}

// NewNop returns a logger that drops everything.
func NewNop() *ZapLogger {
	return &ZapLogger{log: zap.NewNop()}
}

func newZap(w zapcore.WriteSyncer, level zapcore.Level) *zap.Logger {
	config := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    colorLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	encoder := zapcore.NewConsoleEncoder(config)
	core := zapcore.NewCore(encoder, w, level)

	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))
}

// lockedBuffer lets HTML read the buffer while zap is writing to it.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *lockedBuffer) Reset() {
	b.mu.Lock()
	b.buf.Reset()
	b.mu.Unlock()
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("[2006-01-02 | 15:04:05]"))
}

func colorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var colored aurora.Value
	switch level {
	case zapcore.DebugLevel:
		colored = aurora.Cyan(level.String())
	case zapcore.InfoLevel:
		colored = aurora.Green(level.String())
	case zapcore.WarnLevel:
		colored = aurora.Yellow(level.String())
	case zapcore.ErrorLevel, zapcore.FatalLevel:
		colored = aurora.Red(level.String())
	default:
		colored = aurora.Magenta(level.String())
	}
	enc.AppendString(colored.String())
}

var ansiPattern = regexp.MustCompile(`\033\[(\d+)m`)

// Converts ANSI color codes to HTML span with inline styles
func ansiToHTML(input string) string {
	var result strings.Builder
	var lastIndex int
	open := false

	result.WriteString("<pre>")

	for _, match := range ansiPattern.FindAllStringSubmatchIndex(input, -1) {
		start, end := match[0], match[1]

		if start > lastIndex {
			result.WriteString(input[lastIndex:start])
		}

		code := input[match[2]:match[3]]
		if color, ok := colorMap[code]; ok {
			if open {
				result.WriteString("</span>")
			}
			result.WriteString(`<span style="color: ` + color + `;">`)
			open = true
		} else if code == "0" && open {
			result.WriteString("</span>")
			open = false
		}

		lastIndex = end
	}

	if lastIndex < len(input) {
		result.WriteString(input[lastIndex:])
	}
	if open {
		result.WriteString("</span>")
	}

	result.WriteString("</pre>")

	return result.String()
}

// Color mapping for ANSI codes
var colorMap = map[string]string{
	"31": "red",
	"32": "green",
	"33": "yellow",
	"34": "blue",
	"36": "cyan",
}

// HTML returns everything logged so far as a <pre> block. Loggers that do not
// buffer return an empty block.
func (z *ZapLogger) HTML() string {
	if z.logBuf == nil {
		return ansiToHTML("")
	}
	return ansiToHTML(z.logBuf.String())
}

func (z *ZapLogger) ClearLogs() {
	if z.logBuf == nil {
		return
	}
	z.logBuf.Reset()
}

// Enabled reports whether messages at level would be written.
func (z *ZapLogger) Enabled(level zapcore.Level) bool {
	return z.log.Core().Enabled(level)
}

func (z *ZapLogger) Named(name string) *ZapLogger {
	return &ZapLogger{log: z.log.Named(name), logBuf: z.logBuf}
}

func (z *ZapLogger) Info(wrappedMsg string, fields ...zap.Field) {
	z.log.Info(wrappedMsg, fields...)
}

func (z *ZapLogger) Debug(wrappedMsg string, fields ...zap.Field) {
	z.log.Debug(wrappedMsg, fields...)
}

func (z *ZapLogger) Warn(wrappedMsg string, fields ...zap.Field) {
	z.log.Warn(wrappedMsg, fields...)
}

func (z *ZapLogger) Error(wrappedMsg string, fields ...zap.Field) {
	z.log.Error(wrappedMsg, fields...)
}

func (z *ZapLogger) Fatal(wrappedMsg string, fields ...zap.Field) {
	z.log.Fatal(wrappedMsg, fields...)
}

func (z *ZapLogger) Sync() error {
	return z.log.Sync()
}
