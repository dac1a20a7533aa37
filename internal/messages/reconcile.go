package messages

// Reconcile messages: progress output and error format strings for the
// install, remove, and prune phases.
const (
	// ReconcileSystemRequired indicates a nil System was passed to the reconciler.
	ReconcileSystemRequired = "reconcile system is required"
	// ReconcileManifestRequired indicates a nil manifest was passed to the reconciler.
	ReconcileManifestRequired = "reconcile manifest is required"

	// ReconcileUnsafePathFmt formats safety-guard violations.
	ReconcileUnsafePathFmt = "refusing to touch %s: not under plugin directory %q"
	// ReconcileResolvePathFmt formats path canonicalization failures.
	ReconcileResolvePathFmt = "failed to resolve path %s: %w"

	ReconcileInstallHeader = "Installing declared plugins"
	ReconcileRemoveHeader  = "Removing redundant plugins"
	ReconcilePruneHeader   = "Pruning empty scope directories"

	ReconcileSkipNotPluginFmt = "  skipped %s (not a plugin package)\n"
	ReconcileUpToDateFmt      = "  %s@%s is up to date\n"
	ReconcileInstalledFmt     = "  installed %s@%s\n"
	ReconcileRemovedFmt       = "  removed %s\n"
	ReconcilePrunedFmt        = "  pruned %s\n"
	ReconcileSummaryFmt       = "Done: %d installed, %d removed, %d pruned\n"

	ReconcileClearEntryFmt     = "failed to clear %s: %w"
	ReconcileCreateEntryFmt    = "failed to create %s: %w"
	ReconcileCopyAssetsFmt     = "failed to copy assets from %s to %s: %w"
	ReconcileCopyExtraFileFmt  = "failed to copy %s from %s: %w"
	ReconcileStatFmt           = "failed to stat %s: %w"
	ReconcileListEntriesFmt    = "failed to list %s: %w"
	ReconcileRemoveEntryFmt    = "failed to remove %s: %w"
	ReconcileRemoveSidecarFmt  = "failed to remove sidecar %s: %w"
	ReconcileInstalledProbeFmt = "failed to read installed metadata %s: %w"
)
