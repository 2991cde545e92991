package shortcut

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/distantorigin/edge-profile/internal/failure"
)

type recordingWriter struct {
	written []Shortcut
	err     error
}

func (r *recordingWriter) Write(s Shortcut) error {
	if r.err != nil {
		return r.err
	}
	r.written = append(r.written, s)
	return nil
}

func TestProfileArguments(t *testing.T) {
	assert.Equal(t, `--profile-directory="Profile-Work"`, ProfileArguments("Profile-Work"))
}

func TestIconLocation(t *testing.T) {
	assert.Equal(t, `C:\p\Edge Profile.ico,0`, IconLocation(`C:\p\Edge Profile.ico`, 0))
}

func TestCreate(t *testing.T) {
	w := &recordingWriter{}
	s := Shortcut{
		Path:      `C:\ProgramData\Microsoft\Windows\Start Menu\Programs\Edge Work.lnk`,
		Target:    `C:\Program Files (x86)\Microsoft\Edge\Application\msedge.exe`,
		Arguments: ProfileArguments("Profile-Work"),
	}

	require.NoError(t, Create(w, s))
	require.Len(t, w.written, 1)
	assert.Equal(t, s, w.written[0])
}

func TestCreate_WriterFailure(t *testing.T) {
	w := &recordingWriter{err: errors.New("access denied")}

	err := Create(w, Shortcut{Path: "a.lnk", Target: "b.exe"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, failure.Shortcut))
	assert.Contains(t, err.Error(), "access denied")
}

func TestCreate_Incomplete(t *testing.T) {
	w := &recordingWriter{}

	err := Create(w, Shortcut{Path: "a.lnk"})
	assert.Equal(t, failure.Shortcut, failure.KindOf(err))
	assert.Empty(t, w.written)
}
