package docs

import (
	"path/filepath"

	"github.com/agentstation/docsync/pkg/constants"
	"github.com/agentstation/docsync/pkg/errors"
)

// Layout lists the files the generator reads and writes.
// Paths are relative to the repository root until resolved.
type Layout struct {
	// Sources are the package READMEs, combined in this order
	Sources []string `yaml:"sources"`

	// Readme is the combined output document
	Readme string `yaml:"readme"`

	// Changelog is the shared changelog copied into every package
	Changelog string `yaml:"changelog"`

	// ChangelogTargets receive a verbatim copy of Changelog
	ChangelogTargets []string `yaml:"changelog_targets"`
}

// DefaultLayout returns the fixed span_builder monorepo layout.
func DefaultLayout() Layout {
	builder := filepath.Join(constants.PackageDir, constants.BuilderPackage)
	tests := filepath.Join(constants.PackageDir, constants.TestPackage)

	return Layout{
		Sources: []string{
			filepath.Join(builder, constants.ReadmeFile),
			filepath.Join(tests, constants.ReadmeFile),
		},
		Readme:    constants.ReadmeFile,
		Changelog: constants.ChangelogFile,
		ChangelogTargets: []string{
			filepath.Join(builder, constants.ChangelogFile),
			filepath.Join(tests, constants.ChangelogFile),
		},
	}
}

// Resolve returns a copy of the layout with every relative path joined onto root.
func (l Layout) Resolve(root string) Layout {
	join := func(p string) string {
		if root == "" || p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(root, p)
	}

	resolved := Layout{
		Sources:          make([]string, len(l.Sources)),
		Readme:           join(l.Readme),
		Changelog:        join(l.Changelog),
		ChangelogTargets: make([]string, len(l.ChangelogTargets)),
	}
	for i, p := range l.Sources {
		resolved.Sources[i] = join(p)
	}
	for i, p := range l.ChangelogTargets {
		resolved.ChangelogTargets[i] = join(p)
	}
	return resolved
}

// Validate checks that the layout names every file the generator needs.
func (l Layout) Validate() error {
	if len(l.Sources) == 0 {
		return errors.NewValidationError("sources", l.Sources, "at least one source document is required")
	}
	for _, p := range l.Sources {
		if p == "" {
			return errors.NewValidationError("sources", l.Sources, "source path cannot be empty")
		}
	}
	if l.Readme == "" {
		return errors.NewValidationError("readme", l.Readme, "output path cannot be empty")
	}
	if l.Changelog == "" {
		return errors.NewValidationError("changelog", l.Changelog, "changelog path cannot be empty")
	}
	for _, p := range l.ChangelogTargets {
		if p == "" {
			return errors.NewValidationError("changelog_targets", l.ChangelogTargets, "target path cannot be empty")
		}
	}
	return nil
}
