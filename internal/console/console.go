// Package console holds the terminal side of the tool: the logger, the
// success and failure banners and the pause before the window closes.
package console

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// Options select how much is printed and whether colors are used
type Options struct {
	Quiet   bool
	Verbose bool
	NoColor bool
}

// NewLogger returns a text logger writing to w. Verbose wins over quiet.
func NewLogger(w io.Writer, opts Options) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    opts.NoColor,
	})

	switch {
	case opts.Verbose:
		log.SetLevel(logrus.DebugLevel)
	case opts.Quiet:
		log.SetLevel(logrus.WarnLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}

// Printer writes the final banner of a run
type Printer struct {
	Out     io.Writer
	NoColor bool
}

// Success prints a green confirmation line
func (p Printer) Success(format string, args ...interface{}) {
	p.paint(color.FgGreen).Fprintf(p.Out, format+"\n", args...)
}

// Failure prints a red error line
func (p Printer) Failure(format string, args ...interface{}) {
	p.paint(color.FgRed).Fprintf(p.Out, format+"\n", args...)
}

func (p Printer) paint(fg color.Attribute) *color.Color {
	c := color.New(fg, color.Bold)
	if p.NoColor {
		c.DisableColor()
	}
	return c
}

// WaitForKey prompts the user to press Enter. Does nothing in non-interactive mode.
func WaitForKey(in io.Reader, out io.Writer, prompt string, nonInteractive bool) {
	if nonInteractive || in == nil {
		return
	}
	fmt.Fprint(out, prompt)
	_, _ = bufio.NewReader(in).ReadBytes('\n')
}
