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

package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlagsDefaults(t *testing.T) {
	opts, err := ParseFlags(nil)
	assert.NoError(t, err)

	assert.Equal(t, "", opts.Input)
	assert.Equal(t, 10, opts.Scale)
	assert.Equal(t, int64(0), opts.Seed)
	assert.False(t, opts.Debug)
	assert.False(t, opts.Quiet)
	assert.False(t, opts.Mute)
}

func TestParseFlags(t *testing.T) {
	opts, err := ParseFlags([]string{"-debug", "-mute", "-scale", "4", "-seed", "99", "games/PONG"})
	assert.NoError(t, err)

	assert.Equal(t, "games/PONG", opts.Input)
	assert.Equal(t, 4, opts.Scale)
	assert.Equal(t, int64(99), opts.Seed)
	assert.True(t, opts.Debug)
	assert.True(t, opts.Mute)
}

func TestParseFlagsUsage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-fast"}},
		{"scale too small", []string{"-scale", "0"}},
		{"scale too large", []string{"-scale", "33"}},
		{"two roms", []string{"a.ch8", "b.ch8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags(tt.args)
			assert.Error(t, err)

			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr))

			var buf bytes.Buffer
			usageErr.ShowUsage(&buf)
			assert.True(t, strings.Contains(buf.String(), "-scale"))
		})
	}
}

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
	assert.NotNil(t, CreateLogger(false, false))
}
