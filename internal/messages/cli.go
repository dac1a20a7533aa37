package messages

// CLI messages for the root command.
const (
	// RootUse is the CLI command name.
	RootUse = "plugsync"
	// RootShort is the short description for the root command.
	RootShort = "Reconcile declared plugin packages into the plugins directory"
	// RootLong describes what a run does.
	RootLong = "plugsync reads package.json in the current directory and brings the plugins\n" +
		"directory into alignment with the declared dependency set: installing or\n" +
		"updating plugin packages from node_modules, removing packages that are no\n" +
		"longer declared, and pruning empty scope directories left behind."
	// RootMissingManifest indicates plugsync was run outside a project root.
	RootMissingManifest = "no package.json found in the current directory; run plugsync from the project root"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	// VersionBuildFmt formats the build date for version display.
	VersionBuildFmt = "built %s"
	// VersionFullFmt combines version and build metadata.
	VersionFullFmt = "%s (%s)"
	// VersionTemplate is the cobra version output template.
	VersionTemplate = "{{.Version}}\n"
)
