package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/distantorigin/edge-profile/internal/bootstrap"
	"github.com/distantorigin/edge-profile/internal/config"
	"github.com/distantorigin/edge-profile/internal/console"
	"github.com/distantorigin/edge-profile/internal/profile"
)

type createOptions struct {
	IconURL  string
	Shortcut bool
}

func addCreateFlags(cmd *cobra.Command, opts *createOptions) {
	flags := cmd.Flags()
	flags.StringVar(&opts.IconURL, "icon-url", "", "download this image and use it as the profile icon")
	flags.BoolVar(&opts.Shortcut, "shortcut", false, "create a Start Menu shortcut (requires administrator)")
	flags.String("browser", "", "path to msedge.exe (default is the stock install location)")
	flags.String("user-data-dir", "", "Edge user data directory (default is %LOCALAPPDATA%\\Microsoft\\Edge\\User Data)")
	flags.Duration("ready-timeout", 0, "how long to wait for Edge to write the new profile (default 15s)")
	flags.Bool("fixed-wait", false, "always wait the full ready timeout instead of polling for the profile files")
}

func (a *app) createCommand() *cobra.Command {
	var opts createOptions
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new Edge profile",
		Example: `  edge-profile create Work
  edge-profile create Art --icon-url https://example.com/palette.png
  edge-profile create Biz --shortcut`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.create(cmd, args[0], opts)
		},
	}
	addCreateFlags(cmd, &opts)
	return cmd
}

func (a *app) create(cmd *cobra.Command, name string, opts createOptions) error {
	a.bind(cmd.Flags(), map[string]string{
		config.KeyBrowser:      "browser",
		config.KeyUserDataDir:  "user-data-dir",
		config.KeyReadyTimeout: "ready-timeout",
		config.KeyFixedWait:    "fixed-wait",
	})

	cfg, log, err := a.loadConfig()
	if err != nil {
		return err
	}

	res, err := a.creator(cfg, log).Run(cmd.Context(), profile.Options{
		Name:     name,
		IconURL:  opts.IconURL,
		Shortcut: opts.Shortcut,
	})
	if err != nil {
		return err
	}

	printer := console.Printer{Out: a.deps.Out, NoColor: cfg.NoColor}
	printer.Success("Profile %s created in %s", res.Name, res.ProfileDir)
	if res.IconPath != "" {
		fmt.Fprintf(a.deps.Out, "  icon:     %s\n", res.IconPath)
	}
	if res.ShortcutPath != "" {
		fmt.Fprintf(a.deps.Out, "  shortcut: %s\n", res.ShortcutPath)
	}

	a.sounds(cfg, log).Success()
	return nil
}

func (a *app) creator(cfg config.Config, log logrus.FieldLogger) *profile.Creator {
	layout := cfg.Layout()
	return &profile.Creator{
		Fs:         a.deps.Fs,
		Layout:     layout,
		Privileges: a.deps.Privileges,
		Bootstrapper: &bootstrap.Bootstrapper{
			Fs:       a.deps.Fs,
			Layout:   layout,
			Launcher: a.deps.Launcher,
			Options: bootstrap.Options{
				ProcessImage:    cfg.ProcessImage,
				ReadyTimeout:    cfg.ReadyTimeout,
				PollInterval:    cfg.PollInterval,
				ShutdownTimeout: cfg.ShutdownTimeout,
				FixedWait:       cfg.FixedWait,
			},
			Log: log,
		},
		Registry:   a.deps.Registry,
		Downloader: a.deps.Downloader,
		Shortcuts:  a.deps.Shortcuts,
		Log:        log,
	}
}
