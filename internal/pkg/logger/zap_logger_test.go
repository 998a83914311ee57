package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) *ZapLogger {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.log")
	l := NewZapLogger(path, true)
	l.Info("test", "first entry", map[string]interface{}{"n": 1})
	l.Info("test", "second entry", map[string]interface{}{"n": 2})
	l.Warn("test", "third entry", nil)
	// Sync can fail on stdout; file writes are unbuffered already
	_ = l.Sync()
	return l
}

func TestGetLogsNewestFirst(t *testing.T) {
	l := newTestLogger(t)

	entries, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "third entry", entries[0].Message)
	assert.Equal(t, "first entry", entries[2].Message)

	warns, err := l.GetLogs("WARN", 10, 0)
	require.NoError(t, err)
	require.Len(t, warns, 1)
	assert.Equal(t, "third entry", warns[0].Message)
}

// Pagination values arrive unvalidated from query params; out-of-range
// inputs must not panic.
func TestGetLogsClampsPagination(t *testing.T) {
	l := newTestLogger(t)

	entries, err := l.GetLogs("", 10, -1)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	entries, err = l.GetLogs("", -5, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = l.GetLogs("", 0, -7)
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = l.GetLogs("", 10, 100)
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = l.GetLogs("", 2, 2)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "first entry", entries[0].Message)
}

func TestGetLogsMissingFile(t *testing.T) {
	l := &ZapLogger{filePath: filepath.Join(t.TempDir(), "nope.log")}

	entries, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
