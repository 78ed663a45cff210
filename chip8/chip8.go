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

package chip8

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/retroenv/retrogolib/log"
)

const (
	/// MemorySize is the size of the addressable memory (4 KB).
	///
	MemorySize = 0x1000

	/// ProgramStart is where every ROM is loaded and execution begins.
	///
	ProgramStart = 0x200

	/// MaxRomSize is the largest program that fits in memory.
	///
	MaxRomSize = MemorySize - ProgramStart

	/// FontSize is the number of bytes in the built-in font set.
	///
	FontSize = 80

	/// GlyphSize is the number of bytes (rows) per font glyph.
	///
	GlyphSize = 5

	/// Width and Height of the display in pixels.
	///
	Width  = 64
	Height = 32

	/// VideoSize is the number of pixels in the framebuffer.
	///
	VideoSize = Width * Height

	/// StackDepth is how many return addresses can be pushed.
	///
	StackDepth = 16

	/// TimerRate is the frequency (Hz) Tick should be called at.
	///
	TimerRate = 60

	/// CyclesPerTick is how many instructions the host executes between
	/// two timer ticks (600 instructions per second).
	///
	CyclesPerTick = 10
)

/// CHIP_8 virtual machine. All state is owned by the single caller that
/// drives Step and Tick; none of it is safe for concurrent use.
///
type CHIP_8 struct {
	/// Memory addressable by CHIP-8. The first 512 bytes are reserved,
	/// with the font set stored at 0x000-0x04F.
	///
	Memory [MemorySize]byte

	/// Video memory, one byte per pixel (0 or 1), row-major. Pixel <x,y>
	/// is Video[x+y*Width].
	///
	Video [VideoSize]byte

	/// PC is the program counter. All programs begin at 0x200.
	///
	PC uint16

	/// Stack of return addresses and the stack pointer (0-16) indexing
	/// the next free slot.
	///
	Stack [StackDepth]uint16
	SP    uint

	/// I is the address register. Only the low 12 bits are used when it
	/// addresses memory.
	///
	I uint16

	/// V are the 16 virtual registers. VF doubles as the flag register.
	///
	V [16]byte

	/// The delay and sound timer registers, counting down at 60 Hz.
	///
	DT byte
	ST byte

	/// Keys hold the current state for the 16-key pad keys.
	///
	Keys [16]bool

	/// Draw is set whenever video memory changes. The renderer clears it
	/// once the frame has been presented.
	///
	Draw bool

	// waiting is set while FX0A polls for a key, release aborts it.
	waiting bool
	release bool

	// unknown counts skipped opcodes since the last reset.
	unknown int

	rng    *rand.Rand
	logger *log.Logger
}

/// New creates a reset CHIP-8 virtual machine with no program loaded.
///
func New(logger *log.Logger) *CHIP_8 {
	vm := &CHIP_8{
		rng:    rand.New(rand.NewSource(time.Now().UTC().UnixNano())),
		logger: logger,
	}

	vm.Reset()

	return vm
}

/// Seed the random number generator used by RND.
///
func (vm *CHIP_8) Seed(seed int64) {
	vm.rng.Seed(seed)
}

/// Reset the CHIP-8 virtual machine. Memory is cleared and the font set
/// restored, so a program must be loaded again afterwards.
///
func (vm *CHIP_8) Reset() {
	vm.Memory = [MemorySize]byte{}
	copy(vm.Memory[:], FontSet[:])

	// reset video memory, force the first frame to be drawn
	vm.Video = [VideoSize]byte{}
	vm.Draw = true

	// reset keys
	vm.Keys = [16]bool{}

	// reset program counter and stack
	vm.PC = ProgramStart
	vm.Stack = [StackDepth]uint16{}
	vm.SP = 0

	// reset address and virtual registers
	vm.I = 0
	vm.V = [16]byte{}

	// reset timer registers
	vm.DT = 0
	vm.ST = 0

	vm.waiting = false
	vm.release = false
	vm.unknown = 0
}

/// Load resets the virtual machine and copies a ROM into program memory.
/// The machine is left untouched if the program is too large.
///
func (vm *CHIP_8) Load(program []byte) error {
	if len(program) > MaxRomSize {
		return fmt.Errorf("%w: %d bytes, at most %d fit", ErrRomTooLarge, len(program), MaxRomSize)
	}

	vm.Reset()
	copy(vm.Memory[ProgramStart:], program)

	vm.logger.Debug("ROM loaded", log.Int("size", len(program)))

	return nil
}

/// PressKey emulates a CHIP-8 key being pressed.
///
func (vm *CHIP_8) PressKey(key uint) {
	if key < 16 {
		vm.Keys[key] = true
	}
}

/// ReleaseKey emulates a CHIP-8 key being released.
///
func (vm *CHIP_8) ReleaseKey(key uint) {
	if key < 16 {
		vm.Keys[key] = false
	}
}

/// Waiting returns true while an FX0A instruction is polling for a key.
///
func (vm *CHIP_8) Waiting() bool {
	return vm.waiting
}

/// ReleaseWait aborts an instruction waiting for a key (FX0A). The next
/// step completes it without writing the destination register. It does
/// nothing if no wait is pending.
///
func (vm *CHIP_8) ReleaseWait() {
	if vm.waiting {
		vm.release = true
	}
}

/// Pixel returns true if the pixel at x, y is set. Coordinates wrap.
///
func (vm *CHIP_8) Pixel(x, y int) bool {
	x &= Width - 1
	y &= Height - 1

	return vm.Video[x+y*Width] != 0
}

/// ClearDraw acknowledges that the current frame has been presented.
///
func (vm *CHIP_8) ClearDraw() {
	vm.Draw = false
}

/// UnknownOpcodes returns how many unrecognized instructions were skipped
/// since the last reset.
///
func (vm *CHIP_8) UnknownOpcodes() int {
	return vm.unknown
}
