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
	"github.com/retroenv/retrogolib/log"
)

/// Step the CHIP-8 virtual machine a single instruction. Fatal conditions
/// are returned as a *Fault and leave the program counter on the faulting
/// instruction. Unknown opcodes are logged and skipped.
///
func (vm *CHIP_8) Step() error {
	pc := vm.PC

	// both bytes of the instruction must be addressable
	if uint(pc)+1 >= MemorySize {
		return &Fault{PC: pc, Err: ErrMemoryOutOfRange}
	}

	inst := uint16(vm.Memory[pc])<<8 | uint16(vm.Memory[pc+1])

	if err := vm.execute(inst); err != nil {
		return &Fault{PC: pc, Opcode: inst, Err: err}
	}

	return nil
}

/// execute decodes a single instruction and applies its effects.
///
func (vm *CHIP_8) execute(inst uint16) error {
	// 12-bit address operand
	a := inst & 0xFFF

	// byte and nibble operands
	b := byte(inst & 0xFF)
	n := uint(inst & 0xF)

	// x and y register operands
	x := uint(inst >> 8 & 0xF)
	y := uint(inst >> 4 & 0xF)

	switch inst & 0xF000 {
	case 0x0000:
		switch inst {
		case 0x00E0:
			vm.cls()
		case 0x00EE:
			return vm.ret()
		default:
			vm.unknownOpcode(inst)
		}
	case 0x1000:
		vm.jump(a)
	case 0x2000:
		return vm.call(a)
	case 0x3000:
		vm.skip(vm.V[x] == b)
	case 0x4000:
		vm.skip(vm.V[x] != b)
	case 0x5000:
		if n != 0 {
			vm.unknownOpcode(inst)
			return nil
		}
		vm.skip(vm.V[x] == vm.V[y])
	case 0x6000:
		vm.loadX(x, b)
	case 0x7000:
		vm.addX(x, b)
	case 0x8000:
		switch n {
		case 0x0:
			vm.loadXY(x, y)
		case 0x1:
			vm.or(x, y)
		case 0x2:
			vm.and(x, y)
		case 0x3:
			vm.xor(x, y)
		case 0x4:
			vm.addXY(x, y)
		case 0x5:
			vm.subXY(x, y)
		case 0x6:
			vm.shr(x)
		case 0x7:
			vm.subYX(x, y)
		case 0xE:
			vm.shl(x)
		default:
			vm.unknownOpcode(inst)
		}
	case 0x9000:
		if n != 0 {
			vm.unknownOpcode(inst)
			return nil
		}
		vm.skip(vm.V[x] != vm.V[y])
	case 0xA000:
		vm.loadI(a)
	case 0xB000:
		vm.jumpV0(a)
	case 0xC000:
		vm.rnd(x, b)
	case 0xD000:
		return vm.drw(x, y, n)
	case 0xE000:
		switch b {
		case 0x9E:
			vm.skip(vm.Keys[vm.V[x]&0xF])
		case 0xA1:
			vm.skip(!vm.Keys[vm.V[x]&0xF])
		default:
			vm.unknownOpcode(inst)
		}
	case 0xF000:
		switch b {
		case 0x07:
			vm.loadX(x, vm.DT)
		case 0x0A:
			vm.loadXK(x)
		case 0x15:
			vm.loadDTX(x)
		case 0x18:
			vm.loadSTX(x)
		case 0x1E:
			vm.addIX(x)
		case 0x29:
			vm.loadF(x)
		case 0x33:
			return vm.loadB(x)
		case 0x55:
			return vm.saveRegs(x)
		case 0x65:
			return vm.loadRegs(x)
		default:
			vm.unknownOpcode(inst)
		}
	}

	return nil
}

/// advance to the next instruction.
///
func (vm *CHIP_8) next() {
	vm.PC += 2
}

/// skip the next instruction if cond is true, otherwise advance.
///
func (vm *CHIP_8) skip(cond bool) {
	if cond {
		vm.PC += 4
	} else {
		vm.PC += 2
	}
}

/// address returns the memory address n bytes past I. The whole range
/// I..I+n must be addressable.
///
func (vm *CHIP_8) address(n uint) (uint, error) {
	base := uint(vm.I & 0xFFF)

	if base+n > MemorySize {
		return 0, ErrMemoryOutOfRange
	}

	return base, nil
}

/// unknownOpcode is logged and skipped rather than halting the machine,
/// since data is sometimes executed as code.
///
func (vm *CHIP_8) unknownOpcode(inst uint16) {
	vm.unknown++

	vm.logger.Warn("Skipping unknown opcode",
		log.Hex("pc", vm.PC),
		log.Hex("opcode", inst),
		log.Err(ErrUnknownOpcode))

	vm.next()
}

/// Clear the video display memory.
///
func (vm *CHIP_8) cls() {
	vm.Video = [VideoSize]byte{}
	vm.Draw = true
	vm.next()
}

/// call a subroutine at address.
///
func (vm *CHIP_8) call(address uint16) error {
	if vm.SP >= StackDepth {
		return ErrStackOverflow
	}

	// push the address of the call itself, ret skips over it
	vm.Stack[vm.SP] = vm.PC
	vm.SP++

	vm.PC = address

	return nil
}

/// return from subroutine.
///
func (vm *CHIP_8) ret() error {
	if vm.SP == 0 {
		return ErrStackUnderflow
	}

	vm.SP--
	vm.PC = vm.Stack[vm.SP] + 2

	return nil
}

/// jump to address.
///
func (vm *CHIP_8) jump(address uint16) {
	vm.PC = address
}

/// jump to address + v0.
///
func (vm *CHIP_8) jumpV0(address uint16) {
	vm.PC = address + uint16(vm.V[0])
}

/// load n into vx.
///
func (vm *CHIP_8) loadX(x uint, b byte) {
	vm.V[x] = b
	vm.next()
}

/// load y into vx.
///
func (vm *CHIP_8) loadXY(x, y uint) {
	vm.V[x] = vm.V[y]
	vm.next()
}

/// load vx into delay timer.
///
func (vm *CHIP_8) loadDTX(x uint) {
	vm.DT = vm.V[x]
	vm.next()
}

/// load vx into sound timer.
///
func (vm *CHIP_8) loadSTX(x uint) {
	vm.ST = vm.V[x]
	vm.next()
}

/// load vx with the lowest key held down. With no key down the program
/// counter stays put so the instruction is polled again next step.
///
func (vm *CHIP_8) loadXK(x uint) {
	for key, down := range vm.Keys {
		if down {
			vm.V[x] = byte(key)
			vm.waiting = false
			vm.release = false
			vm.next()
			return
		}
	}

	if vm.release {
		vm.logger.Info("Key wait released", log.Hex("pc", vm.PC))

		vm.waiting = false
		vm.release = false
		vm.next()
		return
	}

	vm.waiting = true
}

/// load address register.
///
func (vm *CHIP_8) loadI(address uint16) {
	vm.I = address
	vm.next()
}

/// add vx to the address register. The sum wraps at 16 bits and VF is
/// not affected.
///
func (vm *CHIP_8) addIX(x uint) {
	vm.I = uint16((uint32(vm.I) + uint32(vm.V[x])) & 0xFFFF)
	vm.next()
}

/// load font sprite for vx into I.
///
func (vm *CHIP_8) loadF(x uint) {
	vm.I = uint16(vm.V[x]) * GlyphSize
	vm.next()
}

/// store the BCD of vx at I, I+1 and I+2.
///
func (vm *CHIP_8) loadB(x uint) error {
	base, err := vm.address(3)
	if err != nil {
		return err
	}

	v := vm.V[x]

	vm.Memory[base+0] = v / 100
	vm.Memory[base+1] = v / 10 % 10
	vm.Memory[base+2] = v % 10

	vm.next()

	return nil
}

/// save registers v0..vx to I.
///
func (vm *CHIP_8) saveRegs(x uint) error {
	base, err := vm.address(x + 1)
	if err != nil {
		return err
	}

	copy(vm.Memory[base:base+x+1], vm.V[:x+1])
	vm.next()

	return nil
}

/// load registers v0..vx from I.
///
func (vm *CHIP_8) loadRegs(x uint) error {
	base, err := vm.address(x + 1)
	if err != nil {
		return err
	}

	copy(vm.V[:x+1], vm.Memory[base:base+x+1])
	vm.next()

	return nil
}

/// or vx with vy into vx.
///
func (vm *CHIP_8) or(x, y uint) {
	vm.V[x] |= vm.V[y]
	vm.next()
}

/// and vx with vy into vx.
///
func (vm *CHIP_8) and(x, y uint) {
	vm.V[x] &= vm.V[y]
	vm.next()
}

/// xor vx with vy into vx.
///
func (vm *CHIP_8) xor(x, y uint) {
	vm.V[x] ^= vm.V[y]
	vm.next()
}

/// shl vx 1 bit, set carry to MSB of vx before shift.
///
func (vm *CHIP_8) shl(x uint) {
	c := vm.V[x] >> 7

	vm.V[x] <<= 1
	vm.V[0xF] = c
	vm.next()
}

/// shr vx 1 bit, set carry to LSB of vx before shift.
///
func (vm *CHIP_8) shr(x uint) {
	c := vm.V[x] & 1

	vm.V[x] >>= 1
	vm.V[0xF] = c
	vm.next()
}

/// add n to vx, carry is unaffected.
///
func (vm *CHIP_8) addX(x uint, b byte) {
	vm.V[x] += b
	vm.next()
}

/// add vy to vx and set carry.
///
func (vm *CHIP_8) addXY(x, y uint) {
	sum := uint(vm.V[x]) + uint(vm.V[y])

	vm.V[x] = byte(sum)
	vm.V[0xF] = byte(sum >> 8)
	vm.next()
}

/// subtract vy from vx, set carry if no borrow.
///
func (vm *CHIP_8) subXY(x, y uint) {
	c := byte(1)

	if vm.V[y] > vm.V[x] {
		c = 0
	}

	vm.V[x] -= vm.V[y]
	vm.V[0xF] = c
	vm.next()
}

/// subtract vx from vy and store in vx, set carry if no borrow.
///
func (vm *CHIP_8) subYX(x, y uint) {
	c := byte(1)

	if vm.V[x] > vm.V[y] {
		c = 0
	}

	vm.V[x] = vm.V[y] - vm.V[x]
	vm.V[0xF] = c
	vm.next()
}

/// load a random number & n into vx.
///
func (vm *CHIP_8) rnd(x uint, b byte) {
	vm.V[x] = byte(vm.rng.Intn(256)) & b
	vm.next()
}

/// draw a sprite at I to video memory at vx, vy. Each pixel wraps around
/// the screen edges on its own. VF is set if any pixel was turned off.
///
func (vm *CHIP_8) drw(x, y, n uint) error {
	base, err := vm.address(n)
	if err != nil {
		return err
	}

	x0 := uint(vm.V[x]) % Width
	y0 := uint(vm.V[y]) % Height

	c := byte(0)

	for row := uint(0); row < n; row++ {
		s := vm.Memory[base+row]

		// scan line offset of this row
		line := (y0 + row) % Height * Width

		for col := uint(0); col < 8; col++ {
			if s&(0x80>>col) == 0 {
				continue
			}

			p := line + (x0+col)%Width

			// collision when a set pixel is about to be cleared
			c |= vm.Video[p]

			vm.Video[p] ^= 1
		}
	}

	vm.V[0xF] = c
	vm.Draw = true
	vm.next()

	return nil
}
