package process

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// PollInterval is how often the task list is checked while waiting
const PollInterval = 100 * time.Millisecond

// Start launches exe with args and does not wait for it. The browser hands
// off to child processes, so the handle is released right away and the
// process is later addressed by image name.
func Start(exe string, args ...string) error {
	info, err := os.Stat(exe)
	if err != nil {
		return fmt.Errorf("executable not found: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("executable path is a directory: %s", exe)
	}

	cmd := exec.Command(exe, args...)
	cmd.Dir = filepath.Dir(exe)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", filepath.Base(exe), err)
	}

	return cmd.Process.Release()
}

// Kill forcibly terminates every process with the given image name, including child processes
func Kill(imageName string) error {
	output, err := exec.Command("taskkill", "/IM", imageName, "/T", "/F").CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to kill %s: %w: %s", imageName, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// IsRunning checks whether a process with the given image name is running
func IsRunning(imageName string) (bool, error) {
	cmd := exec.Command("tasklist", "/FI", fmt.Sprintf("IMAGENAME eq %s", imageName), "/FO", "CSV", "/NH")
	output, err := cmd.Output()
	if err != nil {
		return false, fmt.Errorf("failed to list processes: %w", err)
	}
	return listed(string(output), imageName), nil
}

// listed reports whether tasklist output mentions imageName
func listed(output, imageName string) bool {
	return strings.Contains(strings.ToLower(output), strings.ToLower(imageName))
}

// WaitForTermination polls until the specified process is no longer running.
// Returns true if process terminated, false if the context ended first.
func WaitForTermination(ctx context.Context, processName string) bool {
	ticker := time.NewTicker(PollInterval)
	defer ticker.Stop()

	for {
		running, err := IsRunning(processName)
		if err != nil {
			// If tasklist fails, assume process is not running
			return true
		}
		if !running {
			return true
		}

		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
		}
	}
}

// Controller drives the browser process through this package's functions
type Controller struct{}

func (Controller) Start(exe string, args []string) error {
	return Start(exe, args...)
}

func (Controller) Kill(imageName string) error {
	return Kill(imageName)
}

func (Controller) WaitExit(ctx context.Context, imageName string) error {
	if !WaitForTermination(ctx, imageName) {
		return fmt.Errorf("%s still running: %w", imageName, ctx.Err())
	}
	return nil
}
