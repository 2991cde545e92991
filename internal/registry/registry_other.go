//go:build !windows

package registry

import "errors"

// Unsupported fails every write; the registry only exists on Windows
type Unsupported struct{}

// NewWriter returns the registry writer for this platform
func NewWriter() Writer {
	return Unsupported{}
}

func (Unsupported) SetString(keyPath, name, value string) error {
	return errors.New("registry is not supported on this platform")
}
