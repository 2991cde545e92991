package cli

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/distantorigin/edge-profile/internal/bootstrap"
	"github.com/distantorigin/edge-profile/internal/download"
	"github.com/distantorigin/edge-profile/internal/elevation"
	"github.com/distantorigin/edge-profile/internal/icon"
	"github.com/distantorigin/edge-profile/internal/process"
	"github.com/distantorigin/edge-profile/internal/registry"
	"github.com/distantorigin/edge-profile/internal/shortcut"
	"github.com/distantorigin/edge-profile/internal/validate"
)

// SoundPlayer plays the end-of-run cues
type SoundPlayer interface {
	Success()
	Failure()
}

// Deps are the host facilities a run works against
type Deps struct {
	Fs         afero.Fs
	Launcher   bootstrap.Launcher
	Registry   registry.Writer
	Shortcuts  shortcut.Writer
	Privileges validate.PrivilegeChecker
	Downloader icon.Downloader

	// Sounds builds the cue player once the configuration is known; nil plays nothing
	Sounds func(muted bool, log logrus.FieldLogger) SoundPlayer

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// DefaultDeps returns the facilities of the machine the tool runs on
func DefaultDeps() Deps {
	return Deps{
		Fs:         afero.NewOsFs(),
		Launcher:   process.Controller{},
		Registry:   registry.NewWriter(),
		Shortcuts:  shortcut.NewWriter(),
		Privileges: elevation.Checker{},
		Downloader: download.NewClient(),
		In:         os.Stdin,
		Out:        color.Output,
		Err:        os.Stderr,
	}
}

type silent struct{}

func (silent) Success() {}
func (silent) Failure() {}
