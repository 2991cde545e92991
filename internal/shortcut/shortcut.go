package shortcut

import (
	"fmt"

	"github.com/distantorigin/edge-profile/internal/failure"
)

// Shortcut describes a .lnk file
type Shortcut struct {
	Path             string
	Target           string
	Arguments        string
	WorkingDirectory string
	IconLocation     string
	Description      string
}

// Writer persists shortcuts to disk
type Writer interface {
	Write(s Shortcut) error
}

// ProfileArguments returns the command line that opens the browser on a profile
func ProfileArguments(token string) string {
	return fmt.Sprintf(`--profile-directory="%s"`, token)
}

// IconLocation formats an icon reference at the given index
func IconLocation(path string, index int) string {
	return fmt.Sprintf("%s,%d", path, index)
}

// Create writes s through w
func Create(w Writer, s Shortcut) error {
	if s.Path == "" || s.Target == "" {
		return failure.New(failure.Shortcut, "create shortcut", "shortcut path and target are required")
	}
	if err := w.Write(s); err != nil {
		return failure.Wrap(failure.Shortcut, "create shortcut "+s.Path, err)
	}
	return nil
}
