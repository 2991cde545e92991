//go:build windows

package shortcut

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// WScript creates shortcuts through the WScript.Shell COM object
type WScript struct{}

// NewWriter returns the shortcut writer for this platform
func NewWriter() Writer {
	return WScript{}
}

func (WScript) Write(s Shortcut) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("failed to create shortcut folder: %w", err)
	}

	if err := ole.CoInitialize(0); err != nil {
		return fmt.Errorf("failed to initialize COM: %w", err)
	}
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("WScript.Shell")
	if err != nil {
		return fmt.Errorf("failed to create WScript.Shell: %w", err)
	}
	defer unknown.Release()

	shell, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return fmt.Errorf("failed to query shell interface: %w", err)
	}
	defer shell.Release()

	link, err := oleutil.CallMethod(shell, "CreateShortcut", s.Path)
	if err != nil {
		return fmt.Errorf("failed to create shortcut: %w", err)
	}
	// Don't call link.Clear() - it causes crashes

	linkDisp := link.ToIDispatch()
	defer linkDisp.Release()

	props := []struct {
		name  string
		value interface{}
	}{
		{"TargetPath", s.Target},
		{"Arguments", s.Arguments},
		{"WorkingDirectory", s.WorkingDirectory},
		{"IconLocation", s.IconLocation},
		{"Description", s.Description},
		{"WindowStyle", 1},
	}
	for _, p := range props {
		if _, err := oleutil.PutProperty(linkDisp, p.name, p.value); err != nil {
			return fmt.Errorf("failed to set shortcut %s: %w", p.name, err)
		}
	}

	if _, err := oleutil.CallMethod(linkDisp, "Save"); err != nil {
		return fmt.Errorf("failed to save shortcut: %w", err)
	}

	return nil
}
