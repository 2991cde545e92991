package process

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func requireWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS != "windows" {
		t.Skip("tasklist and taskkill are only available on Windows")
	}
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
}

// TestStart_MissingExecutable tests that a missing binary is reported before exec
func TestStart_MissingExecutable(t *testing.T) {
	err := Start(filepath.Join(t.TempDir(), "msedge.exe"), "--no-first-run")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

// TestStart_Directory tests that a directory is rejected as executable
func TestStart_Directory(t *testing.T) {
	err := Start(t.TempDir())
	assert.Error(t, err)
}

// TestListed tests tasklist output matching
func TestListed(t *testing.T) {
	tests := []struct {
		name   string
		output string
		image  string
		want   bool
	}{
		{
			name:   "csv row",
			output: `"msedge.exe","1234","Console","1","120,000 K"`,
			image:  "msedge.exe",
			want:   true,
		},
		{
			name:   "different case",
			output: `"MSEDGE.EXE","1234","Console","1","120,000 K"`,
			image:  "msedge.exe",
			want:   true,
		},
		{
			name:   "no tasks message",
			output: "INFO: No tasks are running which match the specified criteria.",
			image:  "msedge.exe",
			want:   false,
		},
		{
			name:   "empty output",
			output: "",
			image:  "msedge.exe",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, listed(tt.output, tt.image))
		})
	}
}

// TestWaitForTermination_AlreadyTerminated tests waiting for non-running process
func TestWaitForTermination_AlreadyTerminated(t *testing.T) {
	requireWindows(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	result := WaitForTermination(ctx, "nonexistent-process-12345.exe")
	elapsed := time.Since(start)

	assert.True(t, result, "WaitForTermination() should return true for non-running process")
	assert.Less(t, elapsed, time.Second, "should return quickly for non-running process")
}

// TestWaitForTermination_Timeout tests timeout behavior with a process that is running
func TestWaitForTermination_Timeout(t *testing.T) {
	requireWindows(t)

	// The test binary itself is running for the whole test
	self, err := os.Executable()
	if err != nil {
		t.Fatalf("failed to locate test binary: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	start := time.Now()
	result := WaitForTermination(ctx, filepath.Base(self))
	elapsed := time.Since(start)

	assert.False(t, result)
	assert.GreaterOrEqual(t, elapsed, 250*time.Millisecond)
}

// TestKill_UnknownImage tests that taskkill failures are reported
func TestKill_UnknownImage(t *testing.T) {
	requireWindows(t)

	assert.Error(t, Kill("nonexistent-process-12345.exe"))
}

// TestCommandAvailability tests that required system commands exist
func TestCommandAvailability(t *testing.T) {
	requireWindows(t)

	for _, cmdName := range []string{"tasklist", "taskkill"} {
		t.Run(cmdName, func(t *testing.T) {
			_, err := exec.LookPath(cmdName)
			assert.NoError(t, err, "required command %s not found in PATH", cmdName)
		})
	}
}
