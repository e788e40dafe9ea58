package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveHookUsesSelfOverride(t *testing.T) {
	t.Parallel()

	selfDir := t.TempDir()
	hookFile := filepath.Join(selfDir, "tk-multi-workfiles2", "scene_operation_tk-clarisse.py")
	require.NoError(t, os.MkdirAll(filepath.Dir(hookFile), 0o750))
	require.NoError(t, os.WriteFile(hookFile, []byte("pass"), 0o600))

	rootCmd := createNewRootCommand()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{
		"resolve-hook",
		"settings.tk-multi-workfiles2.clarisse.project", "hook_scene_operation",
		"--env", shippedEnv("project.yml"),
		"--self-dir", selfDir,
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, hookFile, strings.TrimSpace(buf.String()))
}

func TestResolveHookReportsAllCandidates(t *testing.T) {
	t.Parallel()

	rootCmd := createNewRootCommand()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{
		"resolve-hook",
		"settings.tk-multi-workfiles2.clarisse.project", "hook_scene_operation",
		"--env", shippedEnv("project.yml"),
		"--self-dir", t.TempDir(),
	})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no hook candidate exists")
	assert.Contains(t, err.Error(), "scene_operation_tk-clarisse.py")
}
