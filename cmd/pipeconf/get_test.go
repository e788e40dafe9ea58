package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetResolvedRecord(t *testing.T) {
	t.Parallel()

	rootCmd := createNewRootCommand()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{
		"get", "engines.tk-clarisse.project",
		"--env", shippedEnv("project.yml"),
	})

	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	// The engine record's location reference resolves to the git
	// descriptor declared in the location catalogue.
	assert.Contains(t, out, "type: git")
	assert.Contains(t, out, "version: v1.2.0")
	assert.NotContains(t, out, "@engines")
}

func TestGetRequiresPath(t *testing.T) {
	t.Parallel()

	rootCmd := createNewRootCommand()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"get", "--env", shippedEnv("project.yml")})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "setting path is required")
}

func TestGetUnknownPath(t *testing.T) {
	t.Parallel()

	rootCmd := createNewRootCommand()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"get", "settings.nope", "--env", shippedEnv("project.yml")})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings.nope")
}

func TestPathsListsNamespace(t *testing.T) {
	t.Parallel()

	rootCmd := createNewRootCommand()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"paths", "--env", shippedEnv("project.yml")})

	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "engines.tk-clarisse.project")
	assert.Contains(t, out, "apps.tk-multi-workfiles2.location")
	assert.Contains(t, out, "app_locations.yml")
}
