//go:build !windows

package console

// SetTitle is a no-op outside Windows
func SetTitle(title string) error {
	return nil
}
