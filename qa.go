// Package qa exposes the release identity of the project.
package qa

import "github.com/supporttools/qa/pkg/version"

// Version is the release of this module.
const Version = version.Version

// GetVersion returns Version
func GetVersion() string {
	return Version
}
