// Package bootstrap has the browser create a new profile on disk: it starts
// the browser on a not-yet-existing profile directory, waits for the profile
// files to appear and then stops the browser so they can be edited.
package bootstrap

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/distantorigin/edge-profile/internal/failure"
	"github.com/distantorigin/edge-profile/internal/localstate"
	"github.com/distantorigin/edge-profile/internal/paths"
)

var errNotReady = errors.New("profile files not written yet")

// Launcher controls the browser process
type Launcher interface {
	Start(exe string, args []string) error
	Kill(imageName string) error
	WaitExit(ctx context.Context, imageName string) error
}

// Options tune the bootstrap timing
type Options struct {
	ProcessImage    string
	ReadyTimeout    time.Duration
	PollInterval    time.Duration
	ShutdownTimeout time.Duration

	// FixedWait sleeps for ReadyTimeout instead of polling for the profile files
	FixedWait bool
}

// Bootstrapper materializes a profile directory through the browser itself
type Bootstrapper struct {
	Fs       afero.Fs
	Layout   paths.Layout
	Launcher Launcher
	Options  Options
	Log      logrus.FieldLogger
}

// Args returns the browser command line for a first start on token
func Args(token string) []string {
	return []string{
		"--profile-directory=" + token,
		"--no-first-run",
		"--no-default-browser-check",
	}
}

// CheckAvailable fails if a directory for token already exists, in any letter case
func (b *Bootstrapper) CheckAvailable(token string) error {
	actual, found, err := paths.FindActual(b.Fs, b.Layout.ProfileDir(token))
	if err != nil {
		return failure.Wrap(failure.Validation, "check profile directory", err)
	}
	if found {
		return failure.New(failure.Validation, "check profile directory", "profile directory %s already exists", actual)
	}
	return nil
}

// Ready reports whether the browser has written both profile documents for token
func (b *Bootstrapper) Ready(token string) bool {
	if _, err := b.Fs.Stat(b.Layout.Preferences(token)); err != nil {
		return false
	}
	return localstate.Ready(b.Fs, b.Layout.LocalState(), token)
}

// Bootstrap starts the browser on token, waits for the profile and stops the browser
func (b *Bootstrapper) Bootstrap(ctx context.Context, token string) error {
	if err := b.CheckAvailable(token); err != nil {
		return err
	}

	log := b.Log.WithField("profile", token)
	log.WithField("path", b.Layout.BrowserPath).Info("Starting browser to create the profile")
	if err := b.Launcher.Start(b.Layout.BrowserPath, Args(token)); err != nil {
		return failure.Wrap(failure.Launch, "launch browser", err)
	}

	waitErr := b.waitReady(ctx, log, token)

	log.WithField("image", b.Options.ProcessImage).Info("Closing browser")
	if err := b.stop(ctx); err != nil {
		return err
	}

	if waitErr != nil {
		return failure.Wrap(failure.Launch, "wait for profile", waitErr)
	}
	return nil
}

// waitReady only fails when ctx itself ends. Running out of time is only
// logged; missing files surface later as patch failures.
func (b *Bootstrapper) waitReady(ctx context.Context, log logrus.FieldLogger, token string) error {
	if b.Options.FixedWait {
		log.Debugf("Waiting %s for the browser to write the profile", b.Options.ReadyTimeout)
		return sleep(ctx, b.Options.ReadyTimeout)
	}

	waitCtx, cancel := context.WithTimeout(ctx, b.Options.ReadyTimeout)
	defer cancel()

	policy := backoff.WithContext(backoff.NewConstantBackOff(b.Options.PollInterval), waitCtx)
	err := backoff.RetryNotify(func() error {
		if b.Ready(token) {
			return nil
		}
		return errNotReady
	}, policy, func(err error, next time.Duration) {
		log.Debugf("Profile not ready, checking again in %s", next)
	})
	if err == nil {
		log.Debug("Profile files written")
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	log.Warnf("Profile files did not appear within %s, continuing anyway", b.Options.ReadyTimeout)
	return nil
}

func (b *Bootstrapper) stop(ctx context.Context) error {
	if err := b.Launcher.Kill(b.Options.ProcessImage); err != nil {
		return failure.Wrap(failure.Shutdown, "terminate browser", err)
	}

	// Exit is awaited even if ctx is already cancelled, so the files are released
	exitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.Options.ShutdownTimeout)
	defer cancel()

	if err := b.Launcher.WaitExit(exitCtx, b.Options.ProcessImage); err != nil {
		return failure.Wrap(failure.Shutdown, "wait for browser exit", err)
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
