package logging_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/provload/pkg/core"
	"github.com/aretw0/provload/pkg/logging"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	log := logging.Writer(&buf)

	log(core.LevelInfo, "loading provider library 'none'")
	log(core.LevelFatal, "out of memory")

	assert.Equal(t, "[INFO] loading provider library 'none'\n[FATAL] out of memory\n", buf.String())
}

func TestFromSlog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	log := logging.FromSlog(logger)

	log(core.LevelWarn, "unload(): null handle")
	log(core.LevelDebug, "details")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "level=WARN")
	assert.Contains(t, lines[0], `msg="unload(): null handle"`)
	assert.Contains(t, lines[1], "level=DEBUG")
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, logging.LevelFatal, logging.SlogLevel(core.LevelFatal))
	assert.Greater(t, logging.LevelFatal, slog.LevelError)
	assert.Equal(t, slog.LevelError, logging.SlogLevel(core.LevelError))
	assert.Equal(t, slog.LevelInfo, logging.SlogLevel(core.LevelInfo))
	assert.Equal(t, slog.LevelDebug, logging.SlogLevel(core.LevelDebug))
}

func TestFilter(t *testing.T) {
	var buf bytes.Buffer
	log := logging.Filter(logging.Writer(&buf), core.LevelWarn)

	log(core.LevelError, "kept")
	log(core.LevelInfo, "dropped")
	log(core.LevelWarn, "kept too")

	assert.Equal(t, "[ERROR] kept\n[WARN] kept too\n", buf.String())
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { logging.Discard()(core.LevelFatal, "ignored") })
}
