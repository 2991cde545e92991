// Package profile runs the whole profile creation: validation, bootstrap,
// the three patches and the optional icon and shortcut, strictly in that
// order. The first failing step ends the run; nothing is rolled back.
package profile

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/distantorigin/edge-profile/internal/bootstrap"
	"github.com/distantorigin/edge-profile/internal/icon"
	"github.com/distantorigin/edge-profile/internal/localstate"
	"github.com/distantorigin/edge-profile/internal/paths"
	"github.com/distantorigin/edge-profile/internal/preferences"
	"github.com/distantorigin/edge-profile/internal/registry"
	"github.com/distantorigin/edge-profile/internal/shortcut"
	"github.com/distantorigin/edge-profile/internal/validate"
)

// Options are the inputs of one run
type Options struct {
	Name     string
	IconURL  string
	Shortcut bool
}

// Result lists what a run created. IconPath and ShortcutPath stay empty
// when the artifact was not requested.
type Result struct {
	Name         string
	Token        string
	ProfileDir   string
	IconPath     string
	ShortcutPath string
}

// Creator wires the platform capabilities into a profile run
type Creator struct {
	Fs           afero.Fs
	Layout       paths.Layout
	Privileges   validate.PrivilegeChecker
	Bootstrapper *bootstrap.Bootstrapper
	Registry     registry.Writer
	Downloader   icon.Downloader
	Shortcuts    shortcut.Writer
	Log          logrus.FieldLogger
}

// Plan returns the artifacts a run with opts would produce
func (c *Creator) Plan(opts Options) Result {
	token := paths.Token(opts.Name)
	r := Result{
		Name:       opts.Name,
		Token:      token,
		ProfileDir: c.Layout.ProfileDir(token),
	}
	if opts.IconURL != "" {
		r.IconPath = c.Layout.Icon(token)
	}
	if opts.Shortcut {
		r.ShortcutPath = c.Layout.Shortcut(opts.Name)
	}
	return r
}

// Run creates the profile described by opts
func (c *Creator) Run(ctx context.Context, opts Options) (Result, error) {
	if err := validate.Name(opts.Name); err != nil {
		return Result{}, err
	}
	if err := validate.Privileges(c.Privileges, opts.Shortcut); err != nil {
		return Result{}, err
	}

	plan := c.Plan(opts)
	log := c.Log.WithField("profile", plan.Token)
	log.WithFields(logrus.Fields{
		"dir":      plan.ProfileDir,
		"icon":     plan.IconPath,
		"shortcut": plan.ShortcutPath,
	}).Debug("Planned profile")

	if err := c.Bootstrapper.Bootstrap(ctx, plan.Token); err != nil {
		return Result{}, err
	}

	log.WithField("path", c.Layout.LocalState()).Info("Renaming profile in Local State")
	if err := localstate.Patch(c.Fs, c.Layout.LocalState(), plan.Token, opts.Name); err != nil {
		return Result{}, err
	}

	log.WithField("key", registry.KeyPath(plan.Token)).Info("Setting shortcut name in the registry")
	if err := registry.Patch(c.Registry, plan.Token, opts.Name); err != nil {
		return Result{}, err
	}

	log.WithField("path", c.Layout.Preferences(plan.Token)).Info("Patching preferences")
	if err := preferences.Patch(c.Fs, c.Layout.Preferences(plan.Token)); err != nil {
		return Result{}, err
	}

	if opts.IconURL != "" {
		log.WithField("url", opts.IconURL).Info("Building profile icon")
		if err := icon.Build(ctx, c.Fs, c.Downloader, log, opts.IconURL, plan.IconPath); err != nil {
			return Result{}, err
		}
	}

	if opts.Shortcut {
		log.WithField("path", plan.ShortcutPath).Info("Creating Start Menu shortcut")
		if err := shortcut.Create(c.Shortcuts, c.shortcutFor(plan)); err != nil {
			return Result{}, err
		}
	}

	return plan, nil
}

// shortcutFor points at the custom icon when one was built, else at the
// browser's own icon
func (c *Creator) shortcutFor(plan Result) shortcut.Shortcut {
	iconPath := plan.IconPath
	if iconPath == "" {
		iconPath = c.Layout.BrowserPath
	}
	return shortcut.Shortcut{
		Path:             plan.ShortcutPath,
		Target:           c.Layout.BrowserPath,
		Arguments:        shortcut.ProfileArguments(plan.Token),
		WorkingDirectory: c.Layout.BrowserDir(),
		IconLocation:     shortcut.IconLocation(iconPath, 0),
		Description:      "Microsoft Edge - " + plan.Name,
	}
}
