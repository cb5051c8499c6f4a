package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolbench/toolbench/internal/config"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, closeFn, err := New(config.Log{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)
	defer closeFn()

	l.Debug().Msg("hidden")
	l.Info().Str("mode", "lines").Msg("diff computed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "info", rec["level"])
	assert.Equal(t, "lines", rec["mode"])
	assert.Equal(t, "diff computed", rec["message"])
	assert.Contains(t, rec, "time")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	l, _, err := New(config.Log{Level: "debug", Format: "console"}, &buf)
	require.NoError(t, err)

	l.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNew_FileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toolbench.log")
	var buf bytes.Buffer

	for _, msg := range []string{"first", "second"} {
		l, closeFn, err := New(config.Log{Level: "info", Format: "json", File: path}, &buf)
		require.NoError(t, err)
		l.Info().Msg(msg)
		require.NoError(t, closeFn())
	}

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(b), "\n"))
	assert.Contains(t, string(b), `"message":"first"`)
	assert.Contains(t, string(b), `"message":"second"`)
	assert.Empty(t, buf.String(), "file output replaces the writer")
}

func TestNew_Errors(t *testing.T) {
	_, _, err := New(config.Log{Level: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)

	_, _, err = New(config.Log{Level: "info", Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)

	// A directory can't be opened for appending.
	_, _, err = New(config.Log{Level: "info", File: t.TempDir()}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestSetup(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	var buf bytes.Buffer
	_, err := Setup(config.Log{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)

	log.Info().Msg("dropped")
	log.Warn().Msg("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("WARNING")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)
}
