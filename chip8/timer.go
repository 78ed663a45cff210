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

/// Tick counts the delay and sound timers down by one. It must be called
/// at TimerRate, independently of how fast instructions are stepped.
/// Returns true when the sound timer has just run out, which is the
/// signal to sound the tone.
///
func (vm *CHIP_8) Tick() bool {
	if vm.DT > 0 {
		vm.DT--
	}

	if vm.ST > 0 {
		vm.ST--

		return vm.ST == 0
	}

	return false
}
