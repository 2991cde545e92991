package failure

import (
	"errors"
	"fmt"
)

// Kind classifies a terminal failure of a profile run
type Kind int

const (
	Validation Kind = iota + 1
	Permission
	Launch
	Shutdown
	Backup
	Patch
	Download
	Image
	Shortcut
)

var kindNames = map[Kind]string{
	Validation: "ValidationError",
	Permission: "PermissionError",
	Launch:     "LaunchError",
	Shutdown:   "ShutdownError",
	Backup:     "BackupError",
	Patch:      "PatchError",
	Download:   "DownloadError",
	Image:      "ImageError",
	Shortcut:   "ShortcutError",
}

// String returns the name of the kind, e.g. "PatchError"
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error lets a Kind be used as an errors.Is target
func (k Kind) Error() string {
	return k.String()
}

// Error is a classified failure raised at a component boundary
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op
	}
	if e.Op == "" {
		return e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the Kind of this error
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// Wrap classifies err. A nil err yields nil, and an err that already
// carries a Kind keeps it.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	var existing *Error
	if errors.As(err, &existing) {
		return err
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// New creates a classified failure from a formatted message
func New(kind Kind, op, format string, args ...interface{}) error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the Kind carried by err, or 0 if it has none
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
