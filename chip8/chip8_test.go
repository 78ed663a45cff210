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
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// newTestVM returns a machine with the given instructions loaded at 0x200.
func newTestVM(t *testing.T, program ...uint16) *CHIP_8 {
	t.Helper()

	vm := New(log.NewTestLogger(t))
	vm.Seed(1)

	rom := make([]byte, 0, len(program)*2)
	for _, inst := range program {
		rom = append(rom, byte(inst>>8), byte(inst))
	}

	assert.NoError(t, vm.Load(rom))
	return vm
}

// stepN executes n instructions, none of which may fault.
func stepN(t *testing.T, vm *CHIP_8, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		assert.NoError(t, vm.Step())
	}
}

func TestReset(t *testing.T) {
	vm := newTestVM(t, 0x6A42, 0xA123, 0x2300)
	stepN(t, vm, 3)

	vm.Memory[0x300] = 0xFF
	vm.Video[100] = 1
	vm.DT = 5
	vm.ST = 7
	vm.PressKey(3)
	vm.ClearDraw()

	vm.Reset()

	assert.Equal(t, uint16(ProgramStart), vm.PC)
	assert.Equal(t, uint(0), vm.SP)
	assert.Equal(t, uint16(0), vm.I)
	assert.Equal(t, [16]byte{}, vm.V)
	assert.Equal(t, [StackDepth]uint16{}, vm.Stack)
	assert.Equal(t, byte(0), vm.DT)
	assert.Equal(t, byte(0), vm.ST)
	assert.Equal(t, [16]bool{}, vm.Keys)
	assert.Equal(t, [VideoSize]byte{}, vm.Video)
	assert.True(t, vm.Draw)

	assert.Equal(t, FontSet[:], vm.Memory[:FontSize])
	for addr := FontSize; addr < MemorySize; addr++ {
		if vm.Memory[addr] != 0 {
			t.Fatalf("memory at #%04X not cleared: #%02X", addr, vm.Memory[addr])
		}
	}
}

func TestLoad(t *testing.T) {
	vm := New(log.NewTestLogger(t))

	rom := make([]byte, MaxRomSize)
	for i := range rom {
		rom[i] = byte(i)
	}

	assert.NoError(t, vm.Load(rom))
	assert.Equal(t, rom, vm.Memory[ProgramStart:])
	assert.Equal(t, uint16(ProgramStart), vm.PC)
}

func TestLoadTooLarge(t *testing.T) {
	vm := newTestVM(t, 0x6A42)
	stepN(t, vm, 1)

	before := vm.Memory

	err := vm.Load(make([]byte, MaxRomSize+1))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrRomTooLarge))

	// the previous program is still intact
	assert.Equal(t, before, vm.Memory)
	assert.Equal(t, byte(0x42), vm.V[0xA])
	assert.Equal(t, uint16(ProgramStart+2), vm.PC)
}

func TestLoadResets(t *testing.T) {
	vm := newTestVM(t, 0x6A42, 0x00E0)
	stepN(t, vm, 2)
	vm.ClearDraw()

	assert.NoError(t, vm.Load([]byte{0x12, 0x00}))

	assert.Equal(t, byte(0), vm.V[0xA])
	assert.Equal(t, uint16(ProgramStart), vm.PC)
	assert.Equal(t, byte(0x12), vm.Memory[ProgramStart])
	assert.Equal(t, byte(0), vm.Memory[ProgramStart+2])
	assert.True(t, vm.Draw)
}

func TestKeys(t *testing.T) {
	vm := New(log.NewTestLogger(t))

	vm.PressKey(0xF)
	vm.PressKey(16)
	assert.True(t, vm.Keys[0xF])
	assert.Equal(t, [16]bool{0xF: true}, vm.Keys)

	vm.ReleaseKey(0xF)
	vm.ReleaseKey(99)
	assert.False(t, vm.Keys[0xF])
}

func TestPixel(t *testing.T) {
	vm := New(log.NewTestLogger(t))
	vm.Video[63+31*Width] = 1

	assert.True(t, vm.Pixel(63, 31))
	assert.True(t, vm.Pixel(-1, -1))
	assert.True(t, vm.Pixel(127, 63))
	assert.False(t, vm.Pixel(0, 0))
}

func TestFaultError(t *testing.T) {
	f := &Fault{PC: 0x2FE, Opcode: 0x00EE, Err: ErrStackUnderflow}

	var target *Fault
	assert.True(t, errors.As(error(f), &target))
	assert.True(t, errors.Is(f, ErrStackUnderflow))
	assert.Equal(t, "stack underflow at #02FE (opcode #00EE)", f.Error())
}
