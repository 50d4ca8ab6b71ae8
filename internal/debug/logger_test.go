package debug

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Enabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	l := NewLogger(true, path)
	l.Printf("entered %s", "Library")
	l.Println("finished")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "=== DEBUG MODE ENABLED ===")
	assert.Contains(t, string(data), "entered Library")
	assert.Contains(t, string(data), "finished")
}

func TestLogger_Disabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	l := NewLogger(false, path)
	assert.False(t, l.IsEnabled())
	l.Printf("ignored")
	require.NoError(t, l.Close())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestLogger_Nil(t *testing.T) {
	var l *Logger
	assert.False(t, l.IsEnabled())
	l.Printf("no panic")
	assert.NoError(t, l.Close())
}

func TestEnabledFromEnv(t *testing.T) {
	t.Setenv("DEBUG", "true")
	assert.True(t, EnabledFromEnv())
	t.Setenv("DEBUG", "1")
	assert.True(t, EnabledFromEnv())
	t.Setenv("DEBUG", "")
	assert.False(t, EnabledFromEnv())
}
