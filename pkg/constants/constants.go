// Package constants provides shared constants used throughout the docsync codebase.
// This includes file permissions, the fixed repository layout, and defaults
// that should be consistent across the application.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Repository layout constants. All paths are relative to the repository root.
const (
	// PackageDir is the directory holding the individual packages
	PackageDir = "packages"

	// BuilderPackage is the primary package whose README leads the combined document
	BuilderPackage = "span_builder"

	// TestPackage is the companion test package
	TestPackage = "span_builder_test"

	// ReadmeFile is the README file name used at the root and in each package
	ReadmeFile = "README.md"

	// ChangelogFile is the CHANGELOG file name used at the root and in each package
	ChangelogFile = "CHANGELOG.md"
)

// Template defaults
const (
	// DefaultTemplate is the template preset used when none is configured
	DefaultTemplate = "read-more"

	// DefaultTitle is the title line of the titled presets
	DefaultTitle = "Span Builder For Flutter"

	// AutoTitle asks the generator to derive the title from the first package name
	AutoTitle = "auto"
)

// Config file defaults
const (
	// ConfigName is the base name of the optional config file (without extension)
	ConfigName = ".docsync"

	// ConfigType is the format of the optional config file
	ConfigType = "yaml"
)
