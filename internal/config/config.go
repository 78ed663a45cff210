/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

// Package config handles the command line options of the interpreter and
// the logger they select.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrogolib/log"
)

// Options for running a ROM.
type Options struct {
	// Input is the ROM file to run. Empty opens a file dialog.
	Input string

	Debug bool
	Quiet bool

	// Mute disables the beep.
	Mute bool

	// Scale is the window size multiplier of the 64x32 display.
	Scale int

	// Seed for the random number generator, 0 uses the current time.
	Seed int64
}

// UsageError is returned for bad command line usage.
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage text and the flag defaults to w.
func (e *UsageError) ShowUsage(w io.Writer) {
	fmt.Fprintf(w, "usage: chip8 [options] [rom file]\n\n")
	e.flags.SetOutput(w)
	e.flags.PrintDefaults()
	fmt.Fprintln(w)
}

// ParseFlags parses the program arguments, without the program name.
func ParseFlags(args []string) (Options, error) {
	flags := flag.NewFlagSet("chip8", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var opts Options
	flags.BoolVar(&opts.Debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.Quiet, "quiet", false, "only log errors")
	flags.BoolVar(&opts.Mute, "mute", false, "disable the sound timer beep")
	flags.IntVar(&opts.Scale, "scale", 10, "window pixels per display pixel")
	flags.Int64Var(&opts.Seed, "seed", 0, "random number seed, 0 seeds from the clock")

	if err := flags.Parse(args); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

	if opts.Scale < 1 || opts.Scale > 32 {
		return opts, &UsageError{flags: flags, msg: fmt.Sprintf("invalid scale %d, must be between 1 and 32", opts.Scale)}
	}

	switch rest := flags.Args(); len(rest) {
	case 0:
	case 1:
		opts.Input = rest[0]
	default:
		return opts, &UsageError{flags: flags, msg: "only one rom file can be run"}
	}

	return opts, nil
}

// ParseArgs parses the arguments of the running process.
func ParseArgs() (Options, error) {
	return ParseFlags(os.Args[1:])
}

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
