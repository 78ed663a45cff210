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
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	// KeyMap maps a modern keyboard to the CHIP-8 keys.
	//
	//	1 2 3 C      1 2 3 4
	//	4 5 6 D  <-  Q W E R
	//	7 8 9 E      A S D F
	//	A 0 B F      Z X C V
	KeyMap = map[sdl.Scancode]uint{
		sdl.SCANCODE_X: 0x0,
		sdl.SCANCODE_1: 0x1,
		sdl.SCANCODE_2: 0x2,
		sdl.SCANCODE_3: 0x3,
		sdl.SCANCODE_Q: 0x4,
		sdl.SCANCODE_W: 0x5,
		sdl.SCANCODE_E: 0x6,
		sdl.SCANCODE_A: 0x7,
		sdl.SCANCODE_S: 0x8,
		sdl.SCANCODE_D: 0x9,
		sdl.SCANCODE_Z: 0xA,
		sdl.SCANCODE_C: 0xB,
		sdl.SCANCODE_4: 0xC,
		sdl.SCANCODE_R: 0xD,
		sdl.SCANCODE_F: 0xE,
		sdl.SCANCODE_V: 0xF,
	}
)

// ProcessEvents from SDL and map keys to the CHIP-8 VM. Returns false once
// the user wants to quit.
func ProcessEvents() bool {
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch ev := e.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyboardEvent:
			if key, ok := KeyMap[ev.Keysym.Scancode]; ok {
				if ev.Type == sdl.KEYDOWN {
					VM.PressKey(key)
				} else {
					VM.ReleaseKey(key)
				}
				continue
			}

			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				continue
			}

			switch ev.Keysym.Scancode {
			case sdl.SCANCODE_ESCAPE:
				return false
			case sdl.SCANCODE_BACKSPACE:
				Logger.Info("Rebooting", log.String("rom", File))
				Reload(File)

				// holding control during reset will reboot paused
				Paused = ev.Keysym.Mod&sdl.KMOD_CTRL != 0
				SetTitle()
			case sdl.SCANCODE_F3:
				if file, err := ChooseROM(); err == nil {
					Reload(file)
				}
			case sdl.SCANCODE_F5, sdl.SCANCODE_SPACE:
				Paused = !Paused
				SetTitle()
			case sdl.SCANCODE_F6:
				if VM.Waiting() {
					Logger.Info("Releasing key wait")
					VM.ReleaseWait()
				}
			}
		}
	}

	return true
}

// Reload a ROM, keeping the current one running if it fails to load.
func Reload(file string) {
	if err := LoadROM(file); err != nil {
		Logger.Error("Loading ROM failed", log.String("rom", file), log.Err(err))
		return
	}

	File = file
	SetTitle()
}
