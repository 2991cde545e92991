//go:build windows

package console

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var procSetConsoleTitleW = windows.NewLazySystemDLL("kernel32.dll").NewProc("SetConsoleTitleW")

// SetTitle sets the console window title
func SetTitle(title string) error {
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return err
	}

	r1, _, err := procSetConsoleTitleW.Call(uintptr(unsafe.Pointer(titlePtr)))
	if r1 == 0 {
		return fmt.Errorf("SetConsoleTitle failed: %w", err)
	}
	return nil
}
