//go:build windows

package registry

import (
	"fmt"

	winreg "golang.org/x/sys/windows/registry"
)

// CurrentUser writes under HKEY_CURRENT_USER
type CurrentUser struct{}

// NewWriter returns the registry writer for this platform
func NewWriter() Writer {
	return CurrentUser{}
}

// SetString opens an existing key and sets a REG_SZ value on it
func (CurrentUser) SetString(keyPath, name, value string) error {
	k, err := winreg.OpenKey(winreg.CURRENT_USER, keyPath, winreg.SET_VALUE)
	if err != nil {
		if err == winreg.ErrNotExist {
			return ErrKeyNotFound
		}
		return fmt.Errorf("failed to open registry key: %w", err)
	}
	defer k.Close()

	if err := k.SetStringValue(name, value); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
