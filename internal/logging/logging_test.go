package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanyang/gaas-console/internal/logging"
)

func TestParseLevel(t *testing.T) {
	lvl, err := logging.ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	lvl, err = logging.ParseLevel(" WARN ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	_, err = logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := logging.New(&buf, logging.FormatJSON, slog.LevelWarn, "")
	defer closer.Close()

	logger.Info("hidden")
	logger.Warn("shown", "graph_id", "g1")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "g1", rec["graph_id"])
}

func TestNew_TextWithFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "gaas.log")
	logger, closer := logging.New(&buf, logging.FormatText, slog.LevelInfo, path)

	logger.Info("created graph", "graph_id", "g1")
	require.NoError(t, closer.Close())

	assert.Contains(t, buf.String(), "graph_id=g1")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "created graph")
}
