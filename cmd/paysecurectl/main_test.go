package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestKeysInit_GeneratesOnceAndReuses(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PSG_INTEGRITY_KEY_DIR", dir)

	first, err := execute(t, "keys", "init")
	require.NoError(t, err)
	assert.Contains(t, first, "generated a new key pair")
	assert.Contains(t, first, "BEGIN PUBLIC KEY")

	_, err = os.Stat(filepath.Join(dir, "private.pem"))
	require.NoError(t, err)

	second, err := execute(t, "keys", "init")
	require.NoError(t, err)
	assert.NotContains(t, second, "generated a new key pair")
	assert.Contains(t, first, second)
}

func TestDatabaseCommands_RequirePostgres(t *testing.T) {
	t.Setenv("PSG_STORAGE_DRIVER", "memory")

	for _, args := range [][]string{{"seed"}, {"audit", "verify"}, {"migrate", "up"}} {
		_, err := execute(t, args...)
		require.Error(t, err, args)
		assert.Contains(t, err.Error(), "needs postgres")
	}
}
