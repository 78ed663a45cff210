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
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeyMapCoversKeypad(t *testing.T) {
	seen := map[uint]bool{}
	for _, key := range KeyMap {
		assert.True(t, key < 16)
		assert.False(t, seen[key])
		seen[key] = true
	}

	assert.Equal(t, 16, len(seen))
}

func TestTone(t *testing.T) {
	assert.Equal(t, 0, len(Tone))

	// only filled by InitAudio, the beep is a no-op without a device
	Beep()
	assert.Equal(t, 0, len(Tone))
}
