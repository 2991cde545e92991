//go:build !windows

package shortcut

import "errors"

// Unsupported fails every write; .lnk shortcuts only exist on Windows
type Unsupported struct{}

// NewWriter returns the shortcut writer for this platform
func NewWriter() Writer {
	return Unsupported{}
}

func (Unsupported) Write(s Shortcut) error {
	return errors.New("shortcuts are not supported on this platform")
}
