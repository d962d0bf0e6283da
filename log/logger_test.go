package log

import (
	"bytes"
	"testing"

	"github.com/kataras/golog"
	"github.com/stretchr/testify/assert"
)

func TestNewGologLogger(t *testing.T) {
	glogger := golog.New()
	logger := NewGologLogger(glogger)

	assert.NotNil(t, logger)
	assert.Equal(t, LogLevelInfo, logger.GetLevel())
}

func TestNew(t *testing.T) {
	logger := New("chatbot")
	assert.NotNil(t, logger)
	assert.Equal(t, LogLevelInfo, logger.GetLevel())

	// New brackets the bare name itself; callers pass "chatbot", not
	// "[chatbot] ".
	var buf bytes.Buffer
	logger.logger.SetOutput(&buf)
	logger.Info("ready")
	assert.Contains(t, buf.String(), "[chatbot] ")
	assert.NotContains(t, buf.String(), "[[")
}

func TestGologLogger_LevelControl(t *testing.T) {
	logger := New("test")

	logger.SetLevel(LogLevelDebug)
	assert.Equal(t, LogLevelDebug, logger.GetLevel())

	logger.SetLevel(LogLevelError)
	assert.Equal(t, LogLevelError, logger.GetLevel())

	logger.SetLevel(LogLevelNone)
	assert.Equal(t, LogLevelNone, logger.GetLevel())
}

func TestGologLogger_Logging(t *testing.T) {
	logger := New("test")
	logger.SetLevel(LogLevelDebug)

	// These should not panic
	logger.Debug("Debug message")
	logger.Info("Info message")
	logger.Warn("Warning message")
	logger.Error("Error message")

	logger.Debug("Debug: %s", "formatted")
	logger.Info("Info: %d", 42)
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", LogLevelDebug.String())
	assert.Equal(t, "INFO", LogLevelInfo.String())
	assert.Equal(t, "WARN", LogLevelWarn.String())
	assert.Equal(t, "ERROR", LogLevelError.String())
	assert.Equal(t, "NONE", LogLevelNone.String())
}
