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

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
	"github.com/sgavil/chip8interpreter/chip8"
	"github.com/sgavil/chip8interpreter/internal/config"
	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	// VM is the CHIP-8 virtual machine. Only the main loop touches it.
	VM *chip8.CHIP_8

	// Window and Renderer the display is drawn to.
	Window   *sdl.Window
	Renderer *sdl.Renderer

	// Logger shared by the frontend and the virtual machine.
	Logger *log.Logger

	// Options from the command line.
	Options config.Options

	// File is the ROM currently loaded.
	File string

	// Paused stops stepping and ticking, the display is still refreshed.
	Paused bool
)

func init() {
	runtime.LockOSThread()
}

func main() {
	opts, err := config.ParseArgs()
	if err != nil {
		var usageErr *config.UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprintln(os.Stderr, usageErr.Error())
			usageErr.ShowUsage(os.Stderr)
		}
		os.Exit(1)
	}

	Options = opts
	Logger = config.CreateLogger(opts.Debug, opts.Quiet)

	if err := run(app.Context()); err != nil {
		Logger.Error("Emulation stopped", log.String("rom", File), log.Err(err))
		dialog.Message("%s", err).Title("CHIP-8").Error()
		os.Exit(1)
	}
}

// run loads the ROM, opens the window and drives the virtual machine until
// the window is closed, the context is cancelled or the machine faults.
func run(ctx context.Context) error {
	VM = chip8.New(Logger)
	if Options.Seed != 0 {
		VM.Seed(Options.Seed)
	}

	File = Options.Input
	if File == "" {
		file, err := ChooseROM()
		if err != nil {
			return err
		}
		File = file
	}

	if err := LoadROM(File); err != nil {
		return err
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return fmt.Errorf("initializing sdl: %w", err)
	}
	defer sdl.Quit()

	scale := int32(Options.Scale)

	var err error
	if Window, Renderer, err = sdl.CreateWindowAndRenderer(chip8.Width*scale, chip8.Height*scale, uint32(sdl.WINDOW_SHOWN)); err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer Window.Destroy()
	defer Renderer.Destroy()

	SetTitle()

	if err := InitScreen(); err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	defer DestroyScreen()

	if !Options.Mute {
		if err := InitAudio(); err != nil {
			// the machine runs fine without sound
			Logger.Warn("Audio unavailable", log.Err(err))
		}
		defer CloseAudio()
	}

	// timers and refresh run at 60 Hz, instructions in fixed batches per tick
	video := time.NewTicker(time.Second / chip8.TimerRate)
	defer video.Stop()

	// loop until window closed or user quit
	for ProcessEvents() {
		select {
		case <-ctx.Done():
			Logger.Info("Operation cancelled")
			return nil
		case <-video.C:
			if err := Frame(); err != nil {
				return fmt.Errorf("%s: %w", filepath.Base(File), err)
			}
		}
	}

	return nil
}

// Frame runs one 60 Hz tick: a batch of instructions, the timers, then
// the display if it changed.
func Frame() error {
	if !Paused {
		for i := 0; i < chip8.CyclesPerTick; i++ {
			if err := VM.Step(); err != nil {
				return err
			}
		}

		if VM.Tick() {
			Beep()
		}
	}

	if VM.Draw {
		if err := RefreshScreen(); err != nil {
			return err
		}
		VM.ClearDraw()
	}

	return Refresh()
}

// Refresh presents the screen texture stretched over the whole window.
func Refresh() error {
	Renderer.SetDrawColor(0, 0, 0, 255)
	Renderer.Clear()

	if err := CopyScreen(); err != nil {
		return err
	}

	Renderer.Present()
	return nil
}

// SetTitle shows the loaded ROM and the run state in the window title.
func SetTitle() {
	title := "CHIP-8 - " + filepath.Base(File)
	if Paused {
		title += " (paused)"
	}

	Window.SetTitle(title)
}
