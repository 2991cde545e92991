// Package localstate edits the browser's global state document ("Local State"),
// which keeps one metadata record per profile under profile.info_cache.
package localstate

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/Jeffail/gabs/v2"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/distantorigin/edge-profile/internal/backup"
	"github.com/distantorigin/edge-profile/internal/failure"
)

var infoCache = []string{"profile", "info_cache"}

func entryPath(token string, field ...string) []string {
	return append(append(append([]string{}, infoCache...), token), field...)
}

// Parse decodes a global state document. Numbers are kept verbatim.
func Parse(data []byte) (*gabs.Container, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	doc, err := gabs.ParseJSONDecoder(dec)
	if err != nil {
		return nil, errors.Wrap(err, "invalid JSON")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("invalid JSON: trailing data after the document")
	}
	if _, ok := doc.Data().(map[string]interface{}); !ok {
		return nil, errors.New("document is not a JSON object")
	}
	return doc, nil
}

// HasProfile reports whether doc carries a record for token
func HasProfile(doc *gabs.Container, token string) bool {
	entry := doc.Search(entryPath(token)...)
	if entry == nil {
		return false
	}
	_, ok := entry.Data().(map[string]interface{})
	return ok
}

// Apply sets the display name of the record keyed by token
func Apply(doc *gabs.Container, token, name string) error {
	if !HasProfile(doc, token) {
		return errors.Errorf("profile.info_cache has no record for %s", token)
	}
	if _, err := doc.Set(name, entryPath(token, "name")...); err != nil {
		return errors.Wrapf(err, "cannot set profile.info_cache.%s.name", token)
	}
	return nil
}

// Load reads and parses the document at path
func Load(fs afero.Fs, path string) (*gabs.Container, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read %s", path)
	}
	return Parse(data)
}

// Ready reports whether the document at path exists and already holds a
// record for token. Read or parse errors count as not ready.
func Ready(fs afero.Fs, path, token string) bool {
	doc, err := Load(fs, path)
	if err != nil {
		return false
	}
	return HasProfile(doc, token)
}

// Patch backs up the document at path, renames the profile record for
// token to name and writes the document back over the original.
func Patch(fs afero.Fs, path, token, name string) error {
	if _, err := backup.Copy(fs, path); err != nil {
		if backup.IsMissing(err) {
			return failure.New(failure.Backup, "backup global state", "%s does not exist; the browser did not finish creating the profile", path)
		}
		return failure.Wrap(failure.Backup, "backup global state", err)
	}

	info, err := fs.Stat(path)
	if err != nil {
		return failure.Wrap(failure.Patch, "stat global state", err)
	}

	doc, err := Load(fs, path)
	if err != nil {
		return failure.Wrap(failure.Patch, "parse global state", err)
	}

	if err := Apply(doc, token, name); err != nil {
		return failure.Wrap(failure.Patch, "rename profile", err)
	}

	if err := afero.WriteFile(fs, path, doc.EncodeJSON(), info.Mode().Perm()); err != nil {
		return failure.Wrap(failure.Patch, "write global state", err)
	}

	return nil
}
