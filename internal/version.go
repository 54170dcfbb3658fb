package internal

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/baalimago/docr/internal/models"
	"github.com/baalimago/docr/internal/utils"
)

// Set with -ldflags by the release build. 'go install' builds leave them empty
// and the module version is read from the build info instead.
var (
	BuildVersion  = ""
	BuildChecksum = ""
)

// printVersion of docr followed by the go version and modules it was built with
func printVersion() (models.Querier, error) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, errors.New("failed to read build info, was docr built with module support?")
	}
	version := BuildVersion
	if version == "" {
		version = bi.Main.Version
	}
	fmt.Printf("version: %v\n", version)
	if BuildChecksum != "" {
		fmt.Printf("checksum: %v\n", BuildChecksum)
	}
	fmt.Printf("go: %v\n", bi.GoVersion)
	for _, dep := range bi.Deps {
		v := dep.Version
		if dep.Replace != nil {
			v = fmt.Sprintf("%v => %v %v", v, dep.Replace.Path, dep.Replace.Version)
		}
		fmt.Printf("%v %v\n", dep.Path, v)
	}
	return nil, utils.ErrUserInitiatedExit
}
