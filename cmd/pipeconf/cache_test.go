package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framewright/pipeconf/internal/testutil"
)

func TestCacheAppsWritesDatabase(t *testing.T) {
	defer testutil.VerifyNoLeaks(t)

	dbPath := filepath.Join(t.TempDir(), "locations.db")

	rootCmd := createNewRootCommand()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{
		"cache-apps",
		"--env", shippedEnv("asset_step.yml"),
		"--db", dbPath,
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Cached")
	assert.Contains(t, buf.String(), dbPath)
	assert.FileExists(t, dbPath)
}
