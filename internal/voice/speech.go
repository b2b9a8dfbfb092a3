// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package voice

import (
	"encoding/base64"
	"errors"
	"os"
)

// ErrNoAudioData is returned when a synthesis response carries no audio.
var ErrNoAudioData = errors.New("no audio data in response")

// WriteSpeechFile decodes base64 MP3 audio from a synthesis response into
// a temporary file and returns its path for local playback.
func WriteSpeechFile(audioData string) (string, error) {
	if audioData == "" {
		return "", ErrNoAudioData
	}
	data, err := base64.StdEncoding.DecodeString(audioData)
	if err != nil {
		return "", err
	}

	f, err := os.CreateTemp("", "pelorus-speech-*.mp3")
	if err != nil {
		return "", err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
