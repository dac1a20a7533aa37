package reconcile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/plugkit/plugsync/internal/config"
	"github.com/plugkit/plugsync/internal/messages"
)

// UnsafePathError reports a computed destination path that does not reside
// under the sanctioned plugin directory. It is fatal: the run aborts before
// the path is used for any deletion or emptiness check.
type UnsafePathError struct {
	Path string
	Root string
}

func (e *UnsafePathError) Error() string {
	return fmt.Sprintf(messages.ReconcileUnsafePathFmt, e.Path, e.Root)
}

// Guard is the single safety net for destructive operations. Every computed
// destination path must pass Validate immediately before it is deleted,
// compared, or tested for emptiness.
type Guard struct {
	segment string
}

// NewGuard returns a Guard anchored on the destination root's relative
// directory name.
func NewGuard() Guard {
	return Guard{segment: config.PluginsDirName}
}

// Validate returns an *UnsafePathError when the canonicalized absolute form
// of path does not contain the destination root segment. A misconfigured or
// corrupted manifest can otherwise steer a delete outside the plugin tree;
// this check is what makes that impossible.
func (g Guard) Validate(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf(messages.ReconcileResolvePathFmt, path, err)
	}
	needle := string(os.PathSeparator) + g.segment
	if !strings.Contains(abs, needle) {
		return &UnsafePathError{Path: abs, Root: g.segment}
	}
	return nil
}
