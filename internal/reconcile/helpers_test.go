package reconcile

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/plugkit/plugsync/internal/config"
	"github.com/plugkit/plugsync/internal/testutil"
)

// sourcePkg describes a materialized source package under node_modules.
type sourcePkg struct {
	name     string
	version  string
	plugin   bool
	assetDir string            // empty means the default
	assets   map[string]string // relative path under the asset dir -> content
	extras   map[string]string // top-level file name -> content
}

// writeSource materializes p under root/node_modules.
func writeSource(t *testing.T, root string, p sourcePkg) {
	t.Helper()
	dir := filepath.Join(root, config.SourcesDirName, filepath.FromSlash(p.name))

	manifest := map[string]any{"name": p.name, "version": p.version}
	if p.plugin {
		manifest["keywords"] = []string{"tool", config.PluginKeyword}
	}
	if p.assetDir != "" {
		manifest["plugsync"] = map[string]string{"assets": p.assetDir}
	}
	testutil.WriteJSON(t, filepath.Join(dir, config.ManifestFileName), manifest)

	assetDir := p.assetDir
	if assetDir == "" {
		assetDir = config.DefaultAssetDir
	}
	if err := os.MkdirAll(filepath.Join(dir, assetDir), 0o755); err != nil {
		t.Fatalf("mkdir asset dir: %v", err)
	}
	for rel, content := range p.assets {
		testutil.WriteFile(t, filepath.Join(dir, assetDir, filepath.FromSlash(rel)), content)
	}
	for rel, content := range p.extras {
		testutil.WriteFile(t, filepath.Join(dir, rel), content)
	}
}

// writeInstalled seeds an installed entry with the given manifest version.
func writeInstalled(t *testing.T, root, name, version string) {
	t.Helper()
	dir := filepath.Join(root, config.PluginsDirName, filepath.FromSlash(name))
	testutil.WriteJSON(t, filepath.Join(dir, config.ManifestFileName), map[string]any{
		"name":    name,
		"version": version,
	})
}

// manifestFor builds a project manifest declaring the given dependency names.
func manifestFor(names ...string) *config.Manifest {
	deps := make(map[string]string, len(names))
	for _, name := range names {
		deps[name] = "^1.0.0"
	}
	return &config.Manifest{Name: "app", Version: "1.0.0", Dependencies: deps}
}

// runReconcile runs a full reconcile against root and fails the test on error.
func runReconcile(t *testing.T, root string, m *config.Manifest) *Result {
	t.Helper()
	res, err := RunWithManifest(RealSystem{}, root, m, io.Discard)
	if err != nil {
		t.Fatalf("RunWithManifest error: %v", err)
	}
	return res
}

// pluginsPath joins a slash-separated relative name under root/plugins.
func pluginsPath(t *testing.T, root, rel string) string {
	t.Helper()
	return filepath.Join(root, config.PluginsDirName, filepath.FromSlash(rel))
}

// snapshotPlugins returns a sorted listing of every path (with file contents)
// under the plugins directory, for idempotence comparisons.
func snapshotPlugins(t *testing.T, root string) []string {
	t.Helper()
	dest := filepath.Join(root, config.PluginsDirName)
	var listing []string
	err := filepath.WalkDir(dest, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dest, path)
		if err != nil {
			return err
		}
		if d.IsDir() {
			listing = append(listing, rel+string(os.PathSeparator))
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		listing = append(listing, rel+":"+string(data))
		return nil
	})
	if err != nil {
		t.Fatalf("snapshot plugins: %v", err)
	}
	sort.Strings(listing)
	return listing
}

// recordingSystem wraps RealSystem and records every delete call.
type recordingSystem struct {
	RealSystem
	removes    []string
	removeAlls []string
}

func (s *recordingSystem) Remove(name string) error {
	s.removes = append(s.removes, name)
	return s.RealSystem.Remove(name)
}

func (s *recordingSystem) RemoveAll(path string) error {
	s.removeAlls = append(s.removeAlls, path)
	return s.RealSystem.RemoveAll(path)
}
