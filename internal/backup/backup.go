package backup

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/distantorigin/edge-profile/internal/paths"
)

// Copy writes a byte-identical copy of src next to it and returns the
// backup path. An existing backup is overwritten.
func Copy(fs afero.Fs, src string) (string, error) {
	info, err := fs.Stat(src)
	if err != nil {
		return "", errors.Wrapf(err, "cannot stat %s", src)
	}
	if info.IsDir() {
		return "", errors.Errorf("%s is a directory", src)
	}

	data, err := afero.ReadFile(fs, src)
	if err != nil {
		return "", errors.Wrapf(err, "cannot read %s", src)
	}

	dst := paths.Backup(src)
	if err := afero.WriteFile(fs, dst, data, info.Mode().Perm()|0600); err != nil {
		return "", errors.Wrapf(err, "cannot write %s", dst)
	}

	return dst, nil
}

// IsMissing reports whether a Copy failure came from an absent source
func IsMissing(err error) bool {
	return os.IsNotExist(errors.Cause(err))
}
