package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Commands(t *testing.T) {
	root := newRootCmd()

	names := []string{}
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "ping")
	assert.NotNil(t, root.PersistentFlags().Lookup("config-dir"))
}

func TestPing_SQLite(t *testing.T) {
	dir := t.TempDir()
	env := "DB_DRIVER=sqlite\nDB_DATABASE=" + filepath.Join(dir, "games.db") + "\nLOG_LEVEL=error\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))

	root := newRootCmd()
	root.SetArgs([]string{"ping", "--config-dir", dir})
	root.SetOut(&bytes.Buffer{})
	assert.NoError(t, root.Execute())
}

func TestPing_BadConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DB_DRIVER=oracle\n"), 0o600))

	root := newRootCmd()
	root.SetArgs([]string{"ping", "--config-dir", dir})
	root.SetErr(&bytes.Buffer{})
	assert.Error(t, root.Execute())
}
