package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/rental-upsell/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{name: "debug", input: "debug", want: slog.LevelDebug},
		{name: "info", input: "info", want: slog.LevelInfo},
		{name: "warn", input: "warn", want: slog.LevelWarn},
		{name: "warning alias", input: "warning", want: slog.LevelWarn},
		{name: "error", input: "error", want: slog.LevelError},
		{name: "case insensitive", input: " DEBUG ", want: slog.LevelDebug},
		{name: "empty defaults to info", input: "", want: slog.LevelInfo},
		{name: "unknown defaults to info", input: "trace", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, logger.ParseLevel(tt.input))
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	l := logger.New("info", "text")
	require.NotNil(t, l)
}

func TestNewWithWriter_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
		want   []string
	}{
		{name: "text", format: "text", want: []string{"level=INFO", "msg=hello"}},
		{name: "json", format: "json", want: []string{`"level":"INFO"`, `"msg":"hello"`}},
		{name: "json any case", format: "JSON", want: []string{`"msg":"hello"`}},
		{name: "unknown falls back to text", format: "xml", want: []string{"level=INFO"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger.NewWithWriter(&buf, "info", tt.format).Info("hello")
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		level      string
		logFunc    func(*slog.Logger)
		wantOutput bool
	}{
		{
			name:       "debug message visible at debug level",
			level:      "debug",
			logFunc:    func(l *slog.Logger) { l.Debug("msg") },
			wantOutput: true,
		},
		{
			name:       "debug message hidden at info level",
			level:      "info",
			logFunc:    func(l *slog.Logger) { l.Debug("msg") },
			wantOutput: false,
		},
		{
			name:       "info message hidden at warn level",
			level:      "warn",
			logFunc:    func(l *slog.Logger) { l.Info("msg") },
			wantOutput: false,
		},
		{
			name:       "error message visible at warn level",
			level:      "warn",
			logFunc:    func(l *slog.Logger) { l.Error("msg") },
			wantOutput: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.logFunc(logger.NewWithWriter(&buf, tt.level, "text"))

			if tt.wantOutput {
				assert.NotEmpty(t, buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestNewWithWriter_DebugAddsSource(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger.NewWithWriter(&buf, "debug", "text").Debug("where")
	assert.Contains(t, buf.String(), "source=")

	buf.Reset()
	logger.NewWithWriter(&buf, "info", "text").Info("where")
	assert.NotContains(t, buf.String(), "source=")
}

func TestNewWithWriter_BaseAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf, "info", "json", slog.String("service", "upsell-engine"))
	logger.Component(l, "datasource").Info("ready")

	assert.Contains(t, buf.String(), `"service":"upsell-engine"`)
	assert.Contains(t, buf.String(), `"component":"datasource"`)
}
