package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/distantorigin/edge-profile/internal/audio"
	"github.com/distantorigin/edge-profile/internal/cli"
	"github.com/distantorigin/edge-profile/internal/console"
)

func main() {
	// Global panic handler to keep stack traces away from users
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nOops, something broke: %v\n", r)
			fmt.Fprintln(os.Stderr, "Let the developers know what happened.")
			os.Exit(1)
		}
	}()

	_ = console.SetTitle("Edge Profile Creator")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	deps := cli.DefaultDeps()
	deps.Sounds = func(muted bool, log logrus.FieldLogger) cli.SoundPlayer {
		return &audio.Player{Muted: muted, Log: log}
	}

	if err := cli.Execute(ctx, deps, os.Args[1:]); err != nil {
		stop()
		os.Exit(1)
	}
}
