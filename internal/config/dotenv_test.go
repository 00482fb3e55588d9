package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotenv_MissingFileIsNotAnError(t *testing.T) {
	err := loadDotenv(filepath.Join(t.TempDir(), "no-such.env"))

	assert.NoError(t, err)
}

func TestLoadDotenv_LoadsVariables(t *testing.T) {
	// Arrange
	clearEnvVars(t)
	path := filepath.Join(t.TempDir(), "deploy.env")
	require.NoError(t, os.WriteFile(path, []byte("DB_NAME=from-file\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("DB_NAME") })

	// Act
	err := loadDotenv(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "from-file", os.Getenv("DB_NAME"))
}

func TestLoadDotenv_DoesNotOverrideEnvironment(t *testing.T) {
	// Arrange
	clearEnvVars(t)
	require.NoError(t, os.Setenv("DB_NAME", "from-env"))
	t.Cleanup(func() { _ = os.Unsetenv("DB_NAME") })

	path := filepath.Join(t.TempDir(), "deploy.env")
	require.NoError(t, os.WriteFile(path, []byte("DB_NAME=from-file\n"), 0o600))

	// Act
	err := loadDotenv(path)

	// Assert: the real environment keeps priority
	require.NoError(t, err)
	assert.Equal(t, "from-env", os.Getenv("DB_NAME"))
}

func TestLoadDotenv_UnreadablePath(t *testing.T) {
	// a directory is not a loadable env file
	err := loadDotenv(t.TempDir())

	assert.Error(t, err)
}

func TestEnvFilePath(t *testing.T) {
	clearEnvVars(t)
	assert.Equal(t, defaultEnvFile, envFilePath())

	require.NoError(t, os.Setenv("ENV_FILE", "/etc/deploy/app.env"))
	t.Cleanup(func() { _ = os.Unsetenv("ENV_FILE") })
	assert.Equal(t, "/etc/deploy/app.env", envFilePath())
}
