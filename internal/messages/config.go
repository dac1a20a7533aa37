package messages

// Configuration and manifest messages.
const (
	// ConfigReadManifestFmt formats manifest read failures.
	ConfigReadManifestFmt = "failed to read manifest %s: %w"
	// ConfigInvalidManifestFmt formats manifest parse failures.
	ConfigInvalidManifestFmt = "invalid manifest %s: %w"
	// ConfigReadPackageMetaFmt formats per-package metadata read failures.
	ConfigReadPackageMetaFmt = "failed to read package metadata %s: %w"
	// ConfigInvalidPackageMetaFmt formats per-package metadata parse failures.
	ConfigInvalidPackageMetaFmt = "invalid package metadata %s: %w"
)
