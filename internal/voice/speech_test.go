// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package voice

import (
	"encoding/base64"
	"errors"
	"os"
	"testing"
)

func TestWriteSpeechFile_DecodesToPlayableFile(t *testing.T) {
	audio := []byte("ID3 fake mp3 payload")
	path, err := WriteSpeechFile(base64.StdEncoding.EncodeToString(audio))
	if err != nil {
		t.Fatalf("WriteSpeechFile: %v", err)
	}
	t.Cleanup(func() { os.Remove(path) })

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read speech file: %v", err)
	}
	if string(got) != string(audio) {
		t.Error("decoded audio does not match the synthesis payload")
	}

	// The player must hand the local file straight to the binary instead
	// of resolving it against the backend.
	p := NewExecPlayer("mpv", "http://localhost:8000")
	if resolved := p.resolve(path); resolved != path {
		t.Errorf("resolve(%q) = %q, want the local path untouched", path, resolved)
	}
}

func TestWriteSpeechFile_EmptyData(t *testing.T) {
	if _, err := WriteSpeechFile(""); !errors.Is(err, ErrNoAudioData) {
		t.Fatalf("expected ErrNoAudioData, got %v", err)
	}
}

func TestWriteSpeechFile_InvalidBase64(t *testing.T) {
	if _, err := WriteSpeechFile("not-base64!!!"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestResolve_RelativeRefJoinsBaseURL(t *testing.T) {
	p := NewExecPlayer("mpv", "http://localhost:8000/")
	if got := p.resolve("/audio/reply.mp3"); got != "http://localhost:8000/audio/reply.mp3" {
		t.Errorf("resolve = %q", got)
	}
	if got := p.resolve("https://cdn.example.com/reply.mp3"); got != "https://cdn.example.com/reply.mp3" {
		t.Errorf("resolve = %q, want full URL untouched", got)
	}
}
