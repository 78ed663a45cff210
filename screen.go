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
	"github.com/sgavil/chip8interpreter/chip8"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	// Screen is the render target holding the CHIP-8 display at 1:1.
	Screen *sdl.Texture
)

// InitScreen creates the render target for the CHIP-8 video memory.
func InitScreen() error {
	var err error

	Screen, err = Renderer.CreateTexture(sdl.PIXELFORMAT_RGB888, sdl.TEXTUREACCESS_TARGET, chip8.Width, chip8.Height)
	return err
}

// DestroyScreen releases the render target.
func DestroyScreen() {
	if Screen != nil {
		Screen.Destroy()
	}
}

// RefreshScreen with the CHIP-8 video memory.
func RefreshScreen() error {
	if err := Renderer.SetRenderTarget(Screen); err != nil {
		return err
	}

	// the background color for the screen
	Renderer.SetDrawColor(143, 145, 133, 255)
	Renderer.Clear()

	// set the pixel color
	Renderer.SetDrawColor(17, 29, 43, 255)

	for y := 0; y < chip8.Height; y++ {
		for x := 0; x < chip8.Width; x++ {
			if VM.Pixel(x, y) {
				Renderer.DrawPoint(int32(x), int32(y))
			}
		}
	}

	// restore the render target
	return Renderer.SetRenderTarget(nil)
}

// CopyScreen to the window, stretched to fit.
func CopyScreen() error {
	w, h := Window.GetSize()

	return Renderer.Copy(Screen, nil, &sdl.Rect{W: w, H: h})
}
