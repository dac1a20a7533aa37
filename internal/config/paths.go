package config

// Filesystem layout convention shared by every phase.
const (
	// ManifestFileName is the project and per-package manifest file name.
	ManifestFileName = "package.json"
	// SourcesDirName is the directory beneath the project root where declared
	// dependency sources are already materialized.
	SourcesDirName = "node_modules"
	// PluginsDirName is the destination root beneath the project root. Every
	// mutation plugsync performs happens under this directory.
	PluginsDirName = "plugins"
	// ScopePrefix marks a grouping directory for scoped package names.
	ScopePrefix = "@"
	// SidecarSuffix is appended to an entry path to form its sidecar metadata
	// file name (for example plugins/@org/foo.meta).
	SidecarSuffix = ".meta"
	// PluginKeyword is the marker keyword that opts a source package into
	// plugin installation.
	PluginKeyword = "plugsync-plugin"
	// DefaultAssetDir is the asset subdirectory copied into the destination
	// entry when the source package does not designate one.
	DefaultAssetDir = "dist"
)

// ExtraFiles are the top-level files copied from the source package root into
// the destination entry root when each individually exists.
var ExtraFiles = []string{ManifestFileName, "README.md", "LICENSE"}
