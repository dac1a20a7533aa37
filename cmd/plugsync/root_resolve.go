package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/plugkit/plugsync/internal/config"
	"github.com/plugkit/plugsync/internal/messages"
)

var getwd = os.Getwd

// resolveProjectRoot returns the current working directory after checking it
// contains a project manifest, or fails with guidance if one is missing.
func resolveProjectRoot() (string, error) {
	cwd, err := getwd()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(filepath.Join(cwd, config.ManifestFileName)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf(messages.RootMissingManifest)
		}
		return "", err
	}
	return cwd, nil
}
