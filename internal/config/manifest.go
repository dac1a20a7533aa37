// Package config loads the project manifest and per-package metadata and
// resolves the declared dependency set. Nothing here mutates the filesystem.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/plugkit/plugsync/internal/messages"
)

// Manifest mirrors the package.json fields plugsync reads. Unknown fields are
// ignored; absent fields decode to their zero values.
type Manifest struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Dependencies map[string]string `json:"dependencies"`
	Keywords     []string          `json:"keywords"`
	Plugsync     *PlugsyncSection  `json:"plugsync"`
}

// PlugsyncSection is the optional plugsync-specific block in a source
// package's manifest.
type PlugsyncSection struct {
	// Assets names the subdirectory whose contents are installed into the
	// destination entry root. Defaults to DefaultAssetDir when empty.
	Assets string `json:"assets"`
}

// Dependency is one declared dependency resolved against the project root.
// Name may be scoped ("@org/foo"); SourceDir is the already-materialized
// source directory under node_modules.
type Dependency struct {
	Name      string
	SourceDir string
}

// PackageMeta is the typed view of a source package's own manifest.
type PackageMeta struct {
	Version string
	// Plugin reports whether the marker keyword is present. Packages without
	// it are ordinary dependencies and are skipped by the installer.
	Plugin bool
	// AssetDir is the designated asset subdirectory, never empty.
	AssetDir string
}

// LoadManifest reads and parses the project manifest at root.
func LoadManifest(root string) (*Manifest, error) {
	path := filepath.Join(root, ManifestFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigReadManifestFmt, path, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidManifestFmt, path, err)
	}
	return &m, nil
}

// DeclaredDependencies resolves the manifest's dependency names against root.
// Names are returned in lexicographic order so runs are deterministic.
func (m *Manifest) DeclaredDependencies(root string) []Dependency {
	names := make([]string, 0, len(m.Dependencies))
	for name := range m.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)

	deps := make([]Dependency, 0, len(names))
	for _, name := range names {
		deps = append(deps, Dependency{
			Name:      name,
			SourceDir: filepath.Join(root, SourcesDirName, filepath.FromSlash(name)),
		})
	}
	return deps
}

// DeclaredSet returns the dependency names as a lookup set.
func (m *Manifest) DeclaredSet() map[string]struct{} {
	set := make(map[string]struct{}, len(m.Dependencies))
	for name := range m.Dependencies {
		set[name] = struct{}{}
	}
	return set
}

// LoadPackageMeta reads a source package's own manifest from dir and derives
// the typed metadata the installer needs.
func LoadPackageMeta(dir string) (*PackageMeta, error) {
	path := filepath.Join(dir, ManifestFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigReadPackageMetaFmt, path, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidPackageMetaFmt, path, err)
	}

	meta := &PackageMeta{
		Version:  m.Version,
		Plugin:   hasKeyword(m.Keywords, PluginKeyword),
		AssetDir: DefaultAssetDir,
	}
	if m.Plugsync != nil && m.Plugsync.Assets != "" {
		meta.AssetDir = filepath.FromSlash(m.Plugsync.Assets)
	}
	return meta, nil
}

func hasKeyword(keywords []string, want string) bool {
	for _, kw := range keywords {
		if kw == want {
			return true
		}
	}
	return false
}
