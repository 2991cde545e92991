package registry

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/distantorigin/edge-profile/internal/failure"
)

type memWriter struct {
	keys map[string]map[string]string
	err  error
}

func (m *memWriter) SetString(keyPath, name, value string) error {
	if m.err != nil {
		return m.err
	}
	values, ok := m.keys[keyPath]
	if !ok {
		return ErrKeyNotFound
	}
	values[name] = value
	return nil
}

func TestKeyPath(t *testing.T) {
	assert.Equal(t, `Software\Microsoft\Edge\Profiles\Profile-Work`, KeyPath("Profile-Work"))
}

func TestPatch(t *testing.T) {
	w := &memWriter{keys: map[string]map[string]string{
		KeyPath("Profile-Work"): {"Path": `C:\Users\me\AppData\Local\Microsoft\Edge\User Data\Profile-Work`},
	}}

	require.NoError(t, Patch(w, "Profile-Work", "Work"))

	assert.Equal(t, "Work", w.keys[KeyPath("Profile-Work")][DisplayNameValue])
	assert.Len(t, w.keys[KeyPath("Profile-Work")], 2)
}

func TestPatch_MissingKey(t *testing.T) {
	w := &memWriter{keys: map[string]map[string]string{}}

	err := Patch(w, "Profile-Work", "Work")
	require.Error(t, err)
	assert.True(t, errors.Is(err, failure.Patch))
	assert.Contains(t, err.Error(), `HKCU\Software\Microsoft\Edge\Profiles\Profile-Work`)
	assert.Empty(t, w.keys)
}

func TestPatch_WriteFailure(t *testing.T) {
	w := &memWriter{err: fmt.Errorf("failed to write %s: %w", DisplayNameValue, errors.New("access denied"))}

	err := Patch(w, "Profile-Work", "Work")
	require.Error(t, err)
	assert.Equal(t, failure.Patch, failure.KindOf(err))
	assert.Contains(t, err.Error(), "access denied")
}
