// Package version reports the build stamped into the binary.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Set at build time with
// -ldflags "-X github.com/distantorigin/edge-profile/internal/version.Tag=v1.2.3 -X ...Commit=abc1234 -X ...Date=2026-10-19"
var (
	Tag    = "dev"
	Commit = ""
	Date   = ""
)

// Dev is the release reported by untagged builds
const Dev = "dev"

// Info describes one build
type Info struct {
	Release string
	Commit  string
	Date    string
}

// Release turns a git tag such as v1.2.3 or v1.2.3-rc.1 into the release
// it names, without the leading v.
func Release(tag string) (string, error) {
	v, err := semver.StrictNewVersion(strings.TrimPrefix(tag, "v"))
	if err != nil {
		return "", fmt.Errorf("invalid release tag %q: %w", tag, err)
	}
	return v.String(), nil
}

// String renders "1.2.3 (abc1234, built 2026-10-19)", leaving out what the
// build did not stamp.
func (i Info) String() string {
	var meta []string
	if i.Commit != "" {
		meta = append(meta, i.Commit)
	}
	if i.Date != "" {
		meta = append(meta, "built "+i.Date)
	}
	if len(meta) == 0 {
		return i.Release
	}
	return fmt.Sprintf("%s (%s)", i.Release, strings.Join(meta, ", "))
}

// Current returns the stamped build. A tag that does not name a release
// reports as Dev.
func Current() Info {
	release, err := Release(Tag)
	if err != nil {
		release = Dev
	}
	return Info{Release: release, Commit: Commit, Date: Date}
}
