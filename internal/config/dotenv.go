package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// defaultEnvFile is the .env file loaded before the environment is read.
// Overridable via the ENV_FILE environment variable.
const defaultEnvFile = ".env"

// envFilePath returns the .env file path for the current process.
func envFilePath() string {
	if path, ok := os.LookupEnv("ENV_FILE"); ok {
		return path
	}

	return defaultEnvFile
}

// loadDotenv loads variables from the given file into the process
// environment. Variables already present in the environment are never
// overridden (godotenv semantics), so the real environment keeps priority
// over the file. A missing file is not an error: .env is a local
// development convenience, production deployments pass real environment
// variables.
func loadDotenv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading env file %s: %w", path, err)
	}

	return nil
}
