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
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestTickDelay(t *testing.T) {
	vm := New(log.NewTestLogger(t))
	vm.DT = 2

	assert.False(t, vm.Tick())
	assert.Equal(t, byte(1), vm.DT)
	assert.False(t, vm.Tick())
	assert.Equal(t, byte(0), vm.DT)
	assert.False(t, vm.Tick())
	assert.Equal(t, byte(0), vm.DT)
}

func TestTickTone(t *testing.T) {
	vm := New(log.NewTestLogger(t))
	vm.ST = 1

	assert.True(t, vm.Tick())
	assert.Equal(t, byte(0), vm.ST)

	// no further events once silent
	assert.False(t, vm.Tick())
	assert.Equal(t, byte(0), vm.ST)
}

func TestTickToneOnce(t *testing.T) {
	vm := New(log.NewTestLogger(t))
	vm.ST = 30

	tones := 0
	for i := 0; i < 60; i++ {
		if vm.Tick() {
			tones++
		}
	}

	assert.Equal(t, 1, tones)
}

func TestTimersFromProgram(t *testing.T) {
	// V0 = 3; DT = V0; ST = V0; V1 = DT
	vm := newTestVM(t, 0x6003, 0xF015, 0xF018, 0xF107)
	stepN(t, vm, 3)

	assert.Equal(t, byte(3), vm.DT)
	assert.Equal(t, byte(3), vm.ST)

	vm.Tick()
	stepN(t, vm, 1)
	assert.Equal(t, byte(2), vm.V[1])
}
