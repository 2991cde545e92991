package registry

import (
	"errors"

	"github.com/distantorigin/edge-profile/internal/failure"
)

const (
	// ProfilesKey is the HKCU key under which the browser keeps one subkey per profile
	ProfilesKey = `Software\Microsoft\Edge\Profiles`

	// DisplayNameValue holds the name shown for the profile in shell integration
	DisplayNameValue = "ShortcutName"
)

// ErrKeyNotFound is returned by a Writer when the key does not exist
var ErrKeyNotFound = errors.New("registry key not found")

// Writer sets string values on existing per-user registry keys
type Writer interface {
	SetString(keyPath, name, value string) error
}

// KeyPath returns the per-profile key for a directory token
func KeyPath(token string) string {
	return ProfilesKey + `\` + token
}

// Patch sets the display name on the profile key the browser created
// during bootstrap. The key is never created here.
func Patch(w Writer, token, name string) error {
	keyPath := KeyPath(token)
	if err := w.SetString(keyPath, DisplayNameValue, name); err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return failure.New(failure.Patch, "set registry display name",
				`HKCU\%s does not exist; the browser did not register the profile`, keyPath)
		}
		return failure.Wrap(failure.Patch, `set HKCU\`+keyPath+`\`+DisplayNameValue, err)
	}
	return nil
}
