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
	"fmt"
)

var (
	/// ErrRomTooLarge is returned by Load when a program does not fit
	/// between 0x200 and the end of memory.
	///
	ErrRomTooLarge = errors.New("rom too large")

	/// ErrStackOverflow is raised by a CALL with all 16 levels in use.
	///
	ErrStackOverflow = errors.New("stack overflow")

	/// ErrStackUnderflow is raised by a RET with an empty stack.
	///
	ErrStackUnderflow = errors.New("stack underflow")

	/// ErrMemoryOutOfRange is raised when an instruction computes an
	/// address past 0xFFF.
	///
	ErrMemoryOutOfRange = errors.New("memory address out of range")

	/// ErrUnknownOpcode is never returned by Step. It is the error logged
	/// when an unrecognized instruction is skipped.
	///
	ErrUnknownOpcode = errors.New("unknown opcode")
)

/// Fault is a fatal condition raised while executing an instruction.
/// The machine should not be stepped again until it is reset.
///
type Fault struct {
	/// PC is the address the faulting instruction was fetched from.
	///
	PC uint16

	/// Opcode is the instruction that faulted. It is zero when the fetch
	/// itself was out of range.
	///
	Opcode uint16

	/// Err is one of the sentinel errors above.
	///
	Err error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%v at #%04X (opcode #%04X)", f.Err, f.PC, f.Opcode)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
