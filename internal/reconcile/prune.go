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

// pruneEmptyScopes is phase 3: remove scope directories left empty after
// phase 2 removed their last child package, plus their sidecar metadata.
func (r *reconciler) pruneEmptyScopes() error {
	r.phase(messages.ReconcilePruneHeader)
	entries, err := r.sys.ReadDir(r.destDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf(messages.ReconcileListEntriesFmt, r.destDir, err)
	}
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), config.ScopePrefix) {
			continue
		}
		if err := r.pruneScope(entry.Name()); err != nil {
			return err
		}
	}
	return nil
}

func (r *reconciler) pruneScope(name string) error {
	path := filepath.Join(r.destDir, name)
	if err := r.guard.Validate(path); err != nil {
		return err
	}
	empty, err := r.scopeEmpty(path)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}
	if err := r.sys.RemoveAll(path); err != nil {
		return fmt.Errorf(messages.ReconcileRemoveEntryFmt, path, err)
	}
	if err := r.removeSidecar(path); err != nil {
		return err
	}
	r.pruned++
	_, _ = fmt.Fprintf(r.out, messages.ReconcilePrunedFmt, name)
	return nil
}

// scopeEmpty reports whether the scope directory holds nothing but leftover
// sidecar metadata files. Sidecars of already-removed children do not keep a
// scope alive; the RemoveAll in pruneScope cleans them up with the directory.
func (r *reconciler) scopeEmpty(path string) (bool, error) {
	entries, err := r.sys.ReadDir(path)
	if err != nil {
		return false, fmt.Errorf(messages.ReconcileListEntriesFmt, path, err)
	}
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), config.SidecarSuffix) {
			return false, nil
		}
	}
	return true, nil
}
