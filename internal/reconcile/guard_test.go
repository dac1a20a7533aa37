package reconcile

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestGuardValidateUnderPlugins(t *testing.T) {
	t.Parallel()
	guard := NewGuard()
	path := filepath.Join(t.TempDir(), "plugins", "@org", "widget")
	if err := guard.Validate(path); err != nil {
		t.Fatalf("Validate error: %v", err)
	}
}

func TestGuardValidateOutsidePlugins(t *testing.T) {
	t.Parallel()
	guard := NewGuard()
	path := filepath.Join(t.TempDir(), "somewhere", "else")
	err := guard.Validate(path)
	if err == nil {
		t.Fatalf("expected error")
	}
	var unsafe *UnsafePathError
	if !errors.As(err, &unsafe) {
		t.Fatalf("expected UnsafePathError, got %T: %v", err, err)
	}
	if !strings.Contains(unsafe.Error(), unsafe.Path) {
		t.Fatalf("error should name the offending path: %v", unsafe)
	}
}

func TestGuardValidateEscapingPath(t *testing.T) {
	t.Parallel()
	guard := NewGuard()
	// A traversal that cleans to a path above the plugin tree must fail even
	// though the lexical form mentions plugins.
	path := filepath.Join(t.TempDir(), "plugins", "..", "evil")
	err := guard.Validate(path)
	var unsafe *UnsafePathError
	if !errors.As(err, &unsafe) {
		t.Fatalf("expected UnsafePathError, got %v", err)
	}
}
