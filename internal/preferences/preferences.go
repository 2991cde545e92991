// Package preferences edits a profile's Preferences document: it hides a
// fixed set of toolbar features, switches off two onboarding features and
// replaces the new tab page settings.
package preferences

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/Jeffail/gabs/v2"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/distantorigin/edge-profile/internal/backup"
	"github.com/distantorigin/edge-profile/internal/failure"
)

// Upsert is one field mutation: inserted when absent, overwritten when present
type Upsert struct {
	Path  []string
	Value func() interface{}
}

// Field returns the dotted name of the mutated field
func (u Upsert) Field() string {
	return strings.Join(u.Path, ".")
}

func constant(v interface{}) func() interface{} {
	return func() interface{} { return v }
}

// DisabledFlags are the browser.* toolbar flags forced to false
var DisabledFlags = [][]string{
	{"browser", "show_hub_apps_tower"},
	{"browser", "show_toolbar_collections_button"},
	{"browser", "show_edge_split_window_toolbar_button"},
}

// DisabledFeatures are the feature objects whose enabled member is forced to false
var DisabledFeatures = []string{
	"local_browser_data_share",
	"guided_switch",
}

// NewTabPage returns the literal that replaces the ntp object
func NewTabPage() map[string]interface{} {
	return map[string]interface{}{
		"background_image_type":           "off",
		"hide_default_top_sites":          true,
		"layout_mode":                     3,
		"news_feed_display":               "off",
		"next_site_suggestions_available": false,
		"num_personal_suggestions":        0,
		"quick_links_options":             0,
		"select_basic_layout":             true,
		"show_greeting":                   false,
		"show_image_of_day":               false,
		"show_settings":                   false,
	}
}

// Upserts returns the mutations in the order they are applied
func Upserts() []Upsert {
	var list []Upsert
	for _, flag := range DisabledFlags {
		list = append(list, Upsert{Path: flag, Value: constant(false)})
	}
	for _, feature := range DisabledFeatures {
		list = append(list, Upsert{Path: []string{feature, "enabled"}, Value: constant(false)})
	}
	list = append(list, Upsert{
		Path:  []string{"ntp"},
		Value: func() interface{} { return NewTabPage() },
	})
	return list
}

// Apply runs every upsert against doc. The first failing field aborts the
// rest; fields applied before it stay applied.
func Apply(doc *gabs.Container) error {
	for _, u := range Upserts() {
		if _, err := doc.Set(u.Value(), u.Path...); err != nil {
			return failure.Wrap(failure.Patch, "upsert "+u.Field(), err)
		}
	}
	return nil
}

// Parse decodes a preferences document
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

// Patch backs up the preferences document at path, applies the upserts
// and writes the whole document back over the original.
func Patch(fs afero.Fs, path string) error {
	if _, err := backup.Copy(fs, path); err != nil {
		if backup.IsMissing(err) {
			return failure.New(failure.Backup, "backup preferences", "%s does not exist; the browser did not finish creating the profile", path)
		}
		return failure.Wrap(failure.Backup, "backup preferences", err)
	}

	info, err := fs.Stat(path)
	if err != nil {
		return failure.Wrap(failure.Patch, "stat preferences", err)
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return failure.Wrap(failure.Patch, "read preferences", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return failure.Wrap(failure.Patch, "parse preferences", err)
	}

	if err := Apply(doc); err != nil {
		return err
	}

	if err := afero.WriteFile(fs, path, doc.EncodeJSON(), info.Mode().Perm()); err != nil {
		return failure.Wrap(failure.Patch, "write preferences", err)
	}

	return nil
}
