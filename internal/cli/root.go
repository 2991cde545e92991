// Package cli implements the edge-profile command line.
package cli

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/distantorigin/edge-profile/internal/config"
	"github.com/distantorigin/edge-profile/internal/console"
	"github.com/distantorigin/edge-profile/internal/failure"
	"github.com/distantorigin/edge-profile/internal/prompt"
	"github.com/distantorigin/edge-profile/internal/version"
)

const exitPrompt = "Press Enter to exit..."

type app struct {
	deps    Deps
	v       *viper.Viper
	cfgFile string
}

// Execute runs the command line given by args. Every error is reported to
// the user before it is returned.
func Execute(ctx context.Context, deps Deps, args []string) error {
	a := &app{deps: deps, v: config.New()}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(deps.Out)
	root.SetErr(deps.Err)

	err := root.ExecuteContext(ctx)
	if err != nil {
		a.report(err)
	}
	return err
}

func (a *app) rootCommand() *cobra.Command {
	var opts createOptions

	root := &cobra.Command{
		Use:   "edge-profile [name]",
		Short: "Create a pre-configured Microsoft Edge profile",
		Long: `Creates a new Microsoft Edge profile named after [name], hides the hub,
collections and split window toolbar buttons, switches off data sharing and
guided switch prompts and replaces the new tab page with a basic layout.

Running "edge-profile Work" is the same as "edge-profile create Work".
Without a name, the name is asked for interactively.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.ReadFile(a.v, a.cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return a.create(cmd, args[0], opts)
			}
			if a.deps.In == nil || a.v.GetBool(config.KeyNonInteractive) {
				return cmd.Help()
			}
			name, err := prompt.Reader{In: a.deps.In, Out: a.deps.Out}.Ask("Profile name: ")
			if err != nil {
				return err
			}
			return a.create(cmd, name, opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is edge-profile.yaml in the user config directory)")
	pf.BoolP("quiet", "q", false, "only print warnings and errors")
	pf.BoolP("verbose", "v", false, "enable debug logging")
	pf.Bool("no-color", false, "disable colored output")
	pf.Bool("non-interactive", false, "do not wait for Enter after a failure")
	pf.Bool("no-sound", false, "disable audio cues")
	a.bind(pf, map[string]string{
		config.KeyQuiet:          "quiet",
		config.KeyVerbose:        "verbose",
		config.KeyNoColor:        "no-color",
		config.KeyNonInteractive: "non-interactive",
		config.KeyNoSound:        "no-sound",
	})

	addCreateFlags(root, &opts)
	root.AddCommand(a.createCommand(), a.versionCommand())
	return root
}

// bind maps config keys to flags. Flag names use dashes, keys underscores.
func (a *app) bind(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func (a *app) loadConfig() (config.Config, *logrus.Logger, error) {
	cfg, err := config.Load(a.v)
	if err != nil {
		return config.Config{}, nil, err
	}
	log := console.NewLogger(a.deps.Err, console.Options{
		Quiet:   cfg.Quiet,
		Verbose: cfg.Verbose,
		NoColor: cfg.NoColor,
	})
	return cfg, log, nil
}

func (a *app) sounds(cfg config.Config, log logrus.FieldLogger) SoundPlayer {
	if a.deps.Sounds == nil {
		return silent{}
	}
	return a.deps.Sounds(cfg.NoSound || cfg.Quiet, log)
}

// report prints err with its kind, plays the failure cue and holds the
// window open unless running non-interactively
func (a *app) report(err error) {
	noColor := a.v.GetBool(config.KeyNoColor)
	printer := console.Printer{Out: a.deps.Out, NoColor: noColor}

	kind := "Error"
	if k := failure.KindOf(err); k != 0 {
		kind = k.String()
	}
	printer.Failure("%s: %v", kind, err)

	log := console.NewLogger(a.deps.Err, console.Options{NoColor: noColor})
	muted := a.v.GetBool(config.KeyNoSound) || a.v.GetBool(config.KeyQuiet)
	if a.deps.Sounds != nil {
		a.deps.Sounds(muted, log).Failure()
	}

	console.WaitForKey(a.deps.In, a.deps.Out, exitPrompt, a.v.GetBool(config.KeyNonInteractive))
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "edge-profile %s\n", version.Current())
			return err
		},
	}
}
