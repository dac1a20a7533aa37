package reconcile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/plugkit/plugsync/internal/config"
	"github.com/plugkit/plugsync/internal/messages"
)

// installDeclared is phase 1: for each declared dependency carrying the
// plugin keyword, compare installed vs source version and perform a full
// replace when stale or absent.
func (r *reconciler) installDeclared() error {
	r.phase(messages.ReconcileInstallHeader)
	for _, dep := range r.deps {
		if err := r.installOne(dep); err != nil {
			return err
		}
	}
	return nil
}

func (r *reconciler) installOne(dep config.Dependency) error {
	meta, err := config.LoadPackageMeta(dep.SourceDir)
	if err != nil {
		return err
	}
	if !meta.Plugin {
		_, _ = fmt.Fprintf(r.out, messages.ReconcileSkipNotPluginFmt, dep.Name)
		return nil
	}

	destDir := filepath.Join(r.destDir, filepath.FromSlash(dep.Name))
	if err := r.guard.Validate(destDir); err != nil {
		return err
	}

	// Version comparison is plain string equality: "1.0" and "1.0.0" differ.
	installed, ok, err := r.installedVersion(destDir)
	if err != nil {
		return err
	}
	if ok && installed == meta.Version {
		_, _ = fmt.Fprintf(r.out, messages.ReconcileUpToDateFmt, dep.Name, installed)
		return nil
	}

	if err := r.replaceEntry(dep, meta, destDir); err != nil {
		return err
	}
	r.installed++
	_, _ = fmt.Fprintf(r.out, messages.ReconcileInstalledFmt, dep.Name, meta.Version)
	return nil
}

// installedVersion probes the destination entry's manifest. ok is false when
// no entry is installed or its manifest cannot be parsed; both mean the entry
// is due for a full replace.
func (r *reconciler) installedVersion(destDir string) (version string, ok bool, err error) {
	path := filepath.Join(destDir, config.ManifestFileName)
	data, err := r.sys.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf(messages.ReconcileInstalledProbeFmt, path, err)
	}
	var m config.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return "", false, nil
	}
	return m.Version, true, nil
}

// replaceEntry empties the destination entry directory, copies the source's
// asset subdirectory contents into it, then copies each extra top-level file
// that exists at the source. This is a full replace, not a merge: stale files
// from a previous version do not survive.
func (r *reconciler) replaceEntry(dep config.Dependency, meta *config.PackageMeta, destDir string) error {
	if err := r.sys.RemoveAll(destDir); err != nil {
		return fmt.Errorf(messages.ReconcileClearEntryFmt, destDir, err)
	}
	if err := r.sys.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf(messages.ReconcileCreateEntryFmt, destDir, err)
	}

	assets := filepath.Join(dep.SourceDir, meta.AssetDir)
	if err := r.sys.CopyDir(assets, destDir); err != nil {
		return fmt.Errorf(messages.ReconcileCopyAssetsFmt, assets, destDir, err)
	}

	for _, name := range config.ExtraFiles {
		if err := r.copyExtraFile(dep.SourceDir, destDir, name); err != nil {
			return err
		}
	}
	return nil
}

// copyExtraFile copies the named top-level file from srcDir into destDir.
// A file missing at the source is not an error.
func (r *reconciler) copyExtraFile(srcDir, destDir, name string) error {
	src := filepath.Join(srcDir, name)
	if _, err := r.sys.Stat(src); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf(messages.ReconcileStatFmt, src, err)
	}
	if err := r.sys.CopyFile(src, filepath.Join(destDir, name)); err != nil {
		return fmt.Errorf(messages.ReconcileCopyExtraFileFmt, name, srcDir, err)
	}
	return nil
}
