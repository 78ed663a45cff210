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
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/log"
	"github.com/sqweek/dialog"
)

// ChooseROM asks the user for a ROM file.
func ChooseROM() (string, error) {
	file, err := dialog.File().
		Title("Load CHIP-8 ROM").
		Filter("CHIP-8 ROM", "ch8", "c8").
		Filter("All files", "*").
		Load()
	if err != nil {
		return "", fmt.Errorf("choosing rom: %w", err)
	}

	return file, nil
}

// LoadROM reads a ROM file and loads it into a freshly reset VM.
func LoadROM(file string) error {
	program, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading rom: %w", err)
	}

	if err := VM.Load(program); err != nil {
		return fmt.Errorf("loading %s: %w", file, err)
	}

	Logger.Info("ROM loaded", log.String("rom", file), log.Int("size", len(program)))

	return nil
}
