// Package version holds the release identity of qa.
package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Version is the current release. Bump it here only.
const Version = "0.1.0"

// Build metadata, set at link time:
//
//	go build -ldflags "-X github.com/supporttools/qa/pkg/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// ErrInvalidVersion is returned by Parse for anything that is not MAJOR.MINOR.PATCH
var ErrInvalidVersion = errors.New("invalid version")

// VersionInfo is the release plus build metadata
type VersionInfo struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"gitCommit" yaml:"gitCommit"`
	BuildTime string `json:"buildTime" yaml:"buildTime"`
}

// String renders one "Key: value" line per field
func (v VersionInfo) String() string {
	return fmt.Sprintf("Version: %s\nGitCommit: %s\nBuildTime: %s",
		v.Version, v.GitCommit, v.BuildTime)
}

// Get returns the version together with the build metadata
func Get() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}
}

// Semver is a parsed MAJOR.MINOR.PATCH triple
type Semver struct {
	Major int
	Minor int
	Patch int
}

func (s Semver) String() string {
	return fmt.Sprintf("%d.%d.%d", s.Major, s.Minor, s.Patch)
}

// Parse parses a strict MAJOR.MINOR.PATCH string. A leading "v", surrounding
// whitespace and leading zeros are rejected.
func Parse(s string) (Semver, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Semver{}, errors.Wrapf(ErrInvalidVersion, "%q: expected 3 components, got %d", s, len(parts))
	}

	var nums [3]int
	for i, p := range parts {
		n, err := parseComponent(p)
		if err != nil {
			return Semver{}, errors.Wrapf(err, "%q: component %d", s, i)
		}
		nums[i] = n
	}

	return Semver{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

func parseComponent(p string) (int, error) {
	if p == "" {
		return 0, errors.Wrap(ErrInvalidVersion, "empty component")
	}
	for _, r := range p {
		if r < '0' || r > '9' {
			return 0, errors.Wrapf(ErrInvalidVersion, "non-digit in %q", p)
		}
	}
	if len(p) > 1 && p[0] == '0' {
		return 0, errors.Wrapf(ErrInvalidVersion, "leading zero in %q", p)
	}
	n, err := strconv.Atoi(p)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidVersion, "%q: %v", p, err)
	}
	return n, nil
}

// Current returns Version parsed. It panics if the constant is malformed.
func Current() Semver {
	s, err := Parse(Version)
	if err != nil {
		panic(err)
	}
	return s
}
