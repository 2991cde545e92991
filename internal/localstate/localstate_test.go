package localstate

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/distantorigin/edge-profile/internal/failure"
	"github.com/distantorigin/edge-profile/internal/testutil"
)

var statePath = filepath.Join("User Data", "Local State")

func TestApply_SetsOnlyTheName(t *testing.T) {
	doc, err := Parse([]byte(testutil.LocalState("Default", "Profile-Work")))
	require.NoError(t, err)

	require.NoError(t, Apply(doc, "Profile-Work", "Work"))

	assert.Equal(t, "Work", doc.Search("profile", "info_cache", "Profile-Work", "name").Data())
	assert.Equal(t, "Profile 1", doc.Search("profile", "info_cache", "Default", "name").Data())
	assert.Equal(t, true, doc.Search("profile", "info_cache", "Profile-Work", "is_using_default_name").Data())
}

func TestApply_MissingRecord(t *testing.T) {
	doc, err := Parse([]byte(testutil.LocalState("Default")))
	require.NoError(t, err)

	err = Apply(doc, "Profile-Work", "Work")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Profile-Work")
}

func TestApply_RecordNotAnObject(t *testing.T) {
	doc, err := Parse([]byte(`{"profile":{"info_cache":{"Profile-Work":null}}}`))
	require.NoError(t, err)

	assert.Error(t, Apply(doc, "Profile-Work", "Work"))
}

func TestParse_RejectsNonObject(t *testing.T) {
	_, err := Parse([]byte(`[1,2,3]`))
	assert.Error(t, err)

	_, err = Parse([]byte(`{"profile":`))
	assert.Error(t, err)
}

func TestParse_KeepsLargeIntegers(t *testing.T) {
	doc, err := Parse([]byte(testutil.LocalState("Profile-Work")))
	require.NoError(t, err)
	require.NoError(t, Apply(doc, "Profile-Work", "Work"))

	assert.Contains(t, doc.String(), `"session_id":13375930211234567890`)
}

func TestReady(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.False(t, Ready(fs, statePath, "Profile-Work"), "missing file")

	testutil.WriteFile(t, fs, statePath, `{"profile":`)
	assert.False(t, Ready(fs, statePath, "Profile-Work"), "truncated file")

	testutil.WriteFile(t, fs, statePath, testutil.LocalState("Default"))
	assert.False(t, Ready(fs, statePath, "Profile-Work"), "no record yet")

	testutil.WriteFile(t, fs, statePath, testutil.LocalState("Default", "Profile-Work"))
	assert.True(t, Ready(fs, statePath, "Profile-Work"))
}

func TestPatch(t *testing.T) {
	fs := afero.NewMemMapFs()
	original := testutil.LocalState("Default", "Profile-Work")
	testutil.WriteFile(t, fs, statePath, original)

	require.NoError(t, Patch(fs, statePath, "Profile-Work", "Work"))

	testutil.AssertFileContent(t, fs, statePath+".Backup", original)

	doc, err := Load(fs, statePath)
	require.NoError(t, err)
	assert.Equal(t, "Work", doc.Search("profile", "info_cache", "Profile-Work", "name").Data())
}

func TestPatch_MissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	err := Patch(fs, statePath, "Profile-Work", "Work")
	require.Error(t, err)
	assert.True(t, errors.Is(err, failure.Backup))
	assert.Contains(t, err.Error(), "does not exist")
}

func TestPatch_MissingRecordLeavesFileUntouched(t *testing.T) {
	fs := afero.NewMemMapFs()
	original := testutil.LocalState("Default")
	testutil.WriteFile(t, fs, statePath, original)

	err := Patch(fs, statePath, "Profile-Work", "Work")
	require.Error(t, err)
	assert.True(t, errors.Is(err, failure.Patch))
	assert.True(t, strings.Contains(err.Error(), "rename profile"))

	testutil.AssertFileContent(t, fs, statePath, original)
	testutil.AssertFileContent(t, fs, statePath+".Backup", original)
}

func TestPatch_InvalidJSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WriteFile(t, fs, statePath, "not json")

	err := Patch(fs, statePath, "Profile-Work", "Work")
	require.Error(t, err)
	assert.Equal(t, failure.Patch, failure.KindOf(err))
}

func TestPatch_KeepsNumbersAndMarkupVerbatim(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WriteFile(t, fs, statePath, `{"profile":{"info_cache":{"Profile-Work":{"name":"Profile 1","ratio":1.0}}},"counter":9007199254740993,"url":"https://example.com/?a=1&b=<2>"}`)

	require.NoError(t, Patch(fs, statePath, "Profile-Work", "Work"))

	written := string(testutil.ReadFile(t, fs, statePath))
	assert.Contains(t, written, `"counter":9007199254740993`)
	assert.Contains(t, written, `"ratio":1.0`)
	assert.Contains(t, written, `"url":"https://example.com/?a=1&b=<2>"`)
	assert.Contains(t, written, `"name":"Work"`)
}

func TestParse_RejectsTrailingData(t *testing.T) {
	_, err := Parse([]byte(`{"profile":{}} {}`))
	assert.Error(t, err)
}
