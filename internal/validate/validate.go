package validate

import (
	"github.com/distantorigin/edge-profile/internal/failure"
)

// PrivilegeChecker reports whether the current process runs elevated
type PrivilegeChecker interface {
	IsElevated() (bool, error)
}

// Name checks that a profile name is non-empty and only uses [A-Za-z0-9].
// Positions in the error count characters from 1.
func Name(name string) error {
	if name == "" {
		return failure.New(failure.Validation, "validate name", "profile name is empty")
	}
	pos := 0
	for _, r := range name {
		pos++
		if !isAlnum(r) {
			return failure.New(failure.Validation, "validate name",
				"profile name %q has invalid character %q at position %d (only A-Z, a-z and 0-9 are allowed)", name, r, pos)
		}
	}
	return nil
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// Privileges requires an elevated process when a shortcut is requested,
// since the Start Menu folder it writes to is machine-wide.
func Privileges(checker PrivilegeChecker, wantShortcut bool) error {
	if !wantShortcut {
		return nil
	}
	elevated, err := checker.IsElevated()
	if err != nil {
		return failure.Wrap(failure.Permission, "check privileges", err)
	}
	if !elevated {
		return failure.New(failure.Permission, "check privileges",
			"creating a Start Menu shortcut requires running as administrator")
	}
	return nil
}
