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
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	// sample rate, pitch and length (in samples) of the beep
	sampleRate = 22050
	toneFreq   = 440
	toneLength = sampleRate / 8
)

var (
	// Audio is the device the beep is queued on, 0 when there is no sound.
	Audio sdl.AudioDeviceID

	// Tone is a square wave played whenever the sound timer runs out.
	Tone []byte
)

// InitAudio opens an audio device for the CHIP-8 virtual machine.
func InitAudio() error {
	spec := &sdl.AudioSpec{
		Freq:     sampleRate,
		Format:   sdl.AUDIO_S8,
		Channels: 1,
		Samples:  512,
	}

	dev, err := sdl.OpenAudioDevice("", false, spec, nil, 0)
	if err != nil {
		return err
	}

	// signed 8-bit square wave
	Tone = make([]byte, toneLength)
	for i := range Tone {
		if i*toneFreq*2/sampleRate%2 == 0 {
			Tone[i] = 0x20
		} else {
			Tone[i] = 0xE0
		}
	}

	Audio = dev

	// start playing, the device stays silent until something is queued
	sdl.PauseAudioDevice(Audio, false)

	return nil
}

// Beep queues the tone, unless the previous one is still playing.
func Beep() {
	if Audio == 0 || sdl.GetQueuedAudioSize(Audio) > 0 {
		return
	}

	if err := sdl.QueueAudio(Audio, Tone); err != nil {
		Logger.Warn("Queueing beep failed", log.Err(err))
	}
}

// CloseAudio closes the audio device, if one was opened.
func CloseAudio() {
	if Audio != 0 {
		sdl.CloseAudioDevice(Audio)
		Audio = 0
	}
}
