package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DefaultEnvFiles are looked up in the working directory when no explicit
// environment file is requested.
var DefaultEnvFiles = []string{".env", ".env.local"}

// LoadEnvFiles populates process environment from KEY=VALUE files so FRAGD_*
// variables can be used by configuration template. Missing files are
// ignored, variables already present in the environment are never
// overwritten. Returns names of files actually loaded.
func LoadEnvFiles(files ...string) ([]string, error) {
	if len(files) == 0 {
		files = DefaultEnvFiles
	}
	var loaded []string
	for _, name := range files {
		if _, err := os.Stat(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return loaded, fmt.Errorf("unable to access environment file '%s': %w", name, err)
		}
		if err := godotenv.Load(name); err != nil {
			return loaded, fmt.Errorf("unable to load environment file '%s': %w", name, err)
		}
		loaded = append(loaded, name)
	}
	return loaded, nil
}
