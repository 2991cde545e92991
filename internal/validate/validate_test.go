package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/distantorigin/edge-profile/internal/failure"
)

type staticChecker struct {
	elevated bool
	err      error
	calls    int
}

func (c *staticChecker) IsElevated() (bool, error) {
	c.calls++
	return c.elevated, c.err
}

func TestName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "Work", false},
		{"digits", "Team42", false},
		{"single char", "a", false},
		{"empty", "", true},
		{"space", "My Work", true},
		{"dash", "Work-2", true},
		{"underscore", "Work_2", true},
		{"path separator", `..\Default`, true},
		{"quote", `Work"`, true},
		{"non-ascii letter", "Café", true},
		{"fullwidth digit", "Work１", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Name(tt.input)
			if tt.wantErr {
				assert.True(t, errors.Is(err, failure.Validation), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPrivileges(t *testing.T) {
	tests := []struct {
		name         string
		checker      *staticChecker
		wantShortcut bool
		wantErr      bool
		wantCalls    int
	}{
		{"no shortcut skips check", &staticChecker{elevated: false}, false, false, 0},
		{"shortcut elevated", &staticChecker{elevated: true}, true, false, 1},
		{"shortcut not elevated", &staticChecker{elevated: false}, true, true, 1},
		{"checker fails", &staticChecker{err: errors.New("token")}, true, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Privileges(tt.checker, tt.wantShortcut)
			if tt.wantErr {
				assert.True(t, errors.Is(err, failure.Permission), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalls, tt.checker.calls)
		})
	}
}

func TestName_ReportsCharacterPosition(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"My Work", `' ' at position 3`},
		{"Wörk", `'ö' at position 2`},
		{"Ärger!", `'Ä' at position 1`},
		{"Café2!", `'é' at position 4`},
		{"日本x-", `'日' at position 1`},
		{"Work１", `'１' at position 5`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := Name(tt.input)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
