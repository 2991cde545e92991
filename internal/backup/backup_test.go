package backup

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/distantorigin/edge-profile/internal/testutil"
)

func TestCopy_ByteIdentical(t *testing.T) {
	fs := afero.NewMemMapFs()
	src := filepath.Join("User Data", "Local State")
	content := testutil.LocalState("Profile-Work") + "\n\x00trailing"
	testutil.WriteFile(t, fs, src, content)

	dst, err := Copy(fs, src)
	require.NoError(t, err)

	assert.Equal(t, src+".Backup", dst)
	testutil.AssertFileContent(t, fs, dst, content)
	testutil.AssertFileContent(t, fs, src, content)
}

func TestCopy_OverwritesPreviousBackup(t *testing.T) {
	fs := afero.NewMemMapFs()
	src := filepath.Join("User Data", "Local State")
	testutil.WriteFile(t, fs, src, "new")
	testutil.WriteFile(t, fs, src+".Backup", "old and longer")

	_, err := Copy(fs, src)
	require.NoError(t, err)

	testutil.AssertFileContent(t, fs, src+".Backup", "new")
}

func TestCopy_MissingSource(t *testing.T) {
	fs := afero.NewMemMapFs()
	src := filepath.Join("User Data", "Local State")

	_, err := Copy(fs, src)
	require.Error(t, err)
	assert.True(t, IsMissing(err))
	testutil.AssertFileNotExists(t, fs, src+".Backup")
}

func TestCopy_Directory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("Preferences", 0755))

	_, err := Copy(fs, "Preferences")
	require.Error(t, err)
	assert.False(t, IsMissing(err))
}
