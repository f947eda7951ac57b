package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	logger.Debug("hidden debug message")
	logger.Info("visible info message")

	out := buf.String()
	if strings.Contains(out, "hidden debug message") {
		t.Error("debug message logged at info level")
	}
	if !strings.Contains(out, "visible info message") {
		t.Error("info message missing from output")
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	c.SetLogLevel(LogDebug)

	c.Logger.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Error("debug message missing after SetLogLevel(LogDebug)")
	}
}
