package reconcile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/plugkit/plugsync/internal/config"
	"github.com/plugkit/plugsync/internal/messages"
)

// removeRedundant is phase 2: delete every installed entry whose name is not
// in the declared dependency set, along with its sidecar metadata file.
// Deletions are unconditional once an entry is deemed redundant.
func (r *reconciler) removeRedundant() error {
	r.phase(messages.ReconcileRemoveHeader)
	entries, err := r.installedEntries()
	if err != nil {
		return err
	}
	for _, name := range entries {
		if _, ok := r.declared[name]; ok {
			continue
		}
		if err := r.removeEntry(name); err != nil {
			return err
		}
	}
	return nil
}

// installedEntries enumerates effective entry names under the destination
// root: each top-level directory is one entry, except scope directories,
// which contribute one entry per child directory named "@scope/child".
// Non-directory entries are excluded.
func (r *reconciler) installedEntries() ([]string, error) {
	entries, err := r.sys.ReadDir(r.destDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf(messages.ReconcileListEntriesFmt, r.destDir, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, config.ScopePrefix) {
			names = append(names, name)
			continue
		}
		scopeDir := filepath.Join(r.destDir, name)
		children, err := r.sys.ReadDir(scopeDir)
		if err != nil {
			return nil, fmt.Errorf(messages.ReconcileListEntriesFmt, scopeDir, err)
		}
		for _, child := range children {
			if !child.IsDir() {
				continue
			}
			names = append(names, name+"/"+child.Name())
		}
	}
	return names, nil
}

func (r *reconciler) removeEntry(name string) error {
	path := filepath.Join(r.destDir, filepath.FromSlash(name))
	if err := r.guard.Validate(path); err != nil {
		return err
	}
	if _, err := r.sys.Stat(path); err == nil {
		if err := r.sys.RemoveAll(path); err != nil {
			return fmt.Errorf(messages.ReconcileRemoveEntryFmt, path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf(messages.ReconcileStatFmt, path, err)
	}
	if err := r.removeSidecar(path); err != nil {
		return err
	}
	r.removed++
	_, _ = fmt.Fprintf(r.out, messages.ReconcileRemovedFmt, name)
	return nil
}

// removeSidecar deletes the sidecar metadata file alongside entryPath when it
// exists. The sidecar is a single file, so this is a plain remove.
func (r *reconciler) removeSidecar(entryPath string) error {
	sidecar := entryPath + config.SidecarSuffix
	if err := r.guard.Validate(sidecar); err != nil {
		return err
	}
	if _, err := r.sys.Stat(sidecar); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf(messages.ReconcileStatFmt, sidecar, err)
	}
	if err := r.sys.Remove(sidecar); err != nil {
		return fmt.Errorf(messages.ReconcileRemoveSidecarFmt, sidecar, err)
	}
	return nil
}
