// Package reconcile brings the plugins directory into alignment with the
// declared dependency set: install or update declared plugin packages, remove
// entries that are no longer declared, then prune empty scope directories.
// Phases run strictly in that order; each reads the filesystem state the
// previous phase left behind.
package reconcile

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/plugkit/plugsync/internal/config"
	"github.com/plugkit/plugsync/internal/messages"
)

// Result holds the outcome of a reconcile run.
type Result struct {
	Installed int
	Removed   int
	Pruned    int
}

// Run loads the project manifest from root and reconciles the plugins
// directory against it, writing progress to out.
func Run(root string, out io.Writer) (*Result, error) {
	manifest, err := config.LoadManifest(root)
	if err != nil {
		return nil, err
	}
	return RunWithManifest(RealSystem{}, root, manifest, out)
}

// RunWithManifest reconciles using an already loaded manifest. sys provides
// OS operations for all filesystem access; out receives progress output.
func RunWithManifest(sys System, root string, manifest *config.Manifest, out io.Writer) (*Result, error) {
	if sys == nil {
		return nil, fmt.Errorf(messages.ReconcileSystemRequired)
	}
	if manifest == nil {
		return nil, fmt.Errorf(messages.ReconcileManifestRequired)
	}
	if out == nil {
		out = io.Discard
	}

	r := &reconciler{
		root:     root,
		destDir:  filepath.Join(root, config.PluginsDirName),
		sys:      sys,
		guard:    NewGuard(),
		deps:     manifest.DeclaredDependencies(root),
		declared: manifest.DeclaredSet(),
		out:      out,
	}

	steps := []func() error{
		r.installDeclared,
		r.removeRedundant,
		r.pruneEmptyScopes,
	}
	if err := runSteps(steps); err != nil {
		return nil, err
	}

	_, _ = fmt.Fprintf(out, messages.ReconcileSummaryFmt, r.installed, r.removed, r.pruned)
	return &Result{Installed: r.installed, Removed: r.removed, Pruned: r.pruned}, nil
}

type reconciler struct {
	root     string
	destDir  string
	sys      System
	guard    Guard
	deps     []config.Dependency
	declared map[string]struct{}
	out      io.Writer

	installed int
	removed   int
	pruned    int
}

var phaseColor = color.New(color.FgCyan)

// phase prints a colored phase header.
func (r *reconciler) phase(header string) {
	// Progress-output write errors are intentionally discarded; failing to
	// display progress must not abort the run.
	_, _ = phaseColor.Fprintln(r.out, header)
}

func runSteps(steps []func() error) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
