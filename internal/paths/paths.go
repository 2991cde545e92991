package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const (
	// ProfilePrefix is prepended to the user-supplied name to form the directory token
	ProfilePrefix = "Profile-"

	LocalStateFile  = "Local State"
	PreferencesFile = "Preferences"
	BackupSuffix    = ".Backup"
	IconFile        = "Edge Profile.ico"
)

// Layout describes where the browser keeps its files on this machine
type Layout struct {
	BrowserPath  string
	UserDataDir  string
	StartMenuDir string
}

// Token maps a profile name to the directory token the browser uses for it
func Token(name string) string {
	return ProfilePrefix + name
}

// ProfileDir returns the directory of the profile with the given token
func (l Layout) ProfileDir(token string) string {
	return filepath.Join(l.UserDataDir, token)
}

// LocalState returns the path of the global state document shared by all profiles
func (l Layout) LocalState() string {
	return filepath.Join(l.UserDataDir, LocalStateFile)
}

// Preferences returns the path of the per-profile preferences document
func (l Layout) Preferences(token string) string {
	return filepath.Join(l.ProfileDir(token), PreferencesFile)
}

// Icon returns where the custom profile icon is written
func (l Layout) Icon(token string) string {
	return filepath.Join(l.ProfileDir(token), IconFile)
}

// Shortcut returns the Start Menu shortcut path for a profile name
func (l Layout) Shortcut(name string) string {
	return filepath.Join(l.StartMenuDir, "Edge "+name+".lnk")
}

// BrowserDir returns the folder holding the browser executable
func (l Layout) BrowserDir() string {
	return filepath.Dir(l.BrowserPath)
}

// Backup returns the sibling path a document is copied to before it is patched
func Backup(path string) string {
	return path + BackupSuffix
}

// CleanLower returns a cleaned, lowercase path for case-insensitive comparison
func CleanLower(p string) string {
	return strings.ToLower(filepath.Clean(p))
}

// FindActual finds the actual case of a file on case-insensitive filesystems.
// The second return value reports whether anything matched.
func FindActual(fs afero.Fs, targetPath string) (string, bool, error) {
	if _, err := fs.Stat(targetPath); err == nil {
		return targetPath, true, nil
	} else if !os.IsNotExist(err) {
		return targetPath, false, err
	}

	dir := filepath.Dir(targetPath)
	filename := filepath.Base(targetPath)

	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return targetPath, false, nil
		}
		return targetPath, false, err
	}

	for _, entry := range entries {
		if strings.EqualFold(entry.Name(), filename) {
			return filepath.Join(dir, entry.Name()), true, nil
		}
	}

	return targetPath, false, nil
}
