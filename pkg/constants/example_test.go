package constants_test

import (
	"fmt"
	"path/filepath"

	"github.com/agentstation/docsync/pkg/constants"
)

// Example demonstrates building the package paths from the layout constants
func Example() {
	for _, pkg := range []string{constants.BuilderPackage, constants.TestPackage} {
		fmt.Println(filepath.ToSlash(filepath.Join(constants.PackageDir, pkg, constants.ReadmeFile)))
	}
	// Output:
	// packages/span_builder/README.md
	// packages/span_builder_test/README.md
}

// Example_permissions shows the modes used for written files
func Example_permissions() {
	fmt.Printf("dir %o, file %o\n", constants.DirPermissions, constants.FilePermissions)
	// Output: dir 755, file 644
}

// Example_config shows the searched config file name
func Example_config() {
	fmt.Println(constants.ConfigName + "." + constants.ConfigType)
	// Output: .docsync.yaml
}
