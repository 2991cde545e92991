//go:build !windows

package elevation

import "os"

// IsElevated reports whether the process runs as root
func (Checker) IsElevated() (bool, error) {
	return os.Geteuid() == 0, nil
}
