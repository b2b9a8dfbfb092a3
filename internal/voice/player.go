// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package voice

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
)

// playerBinaries are tried in order when detecting an audio player.
var playerBinaries = []string{"mpv", "ffplay", "afplay", "mpg123"}

// DetectPlayer returns an ExecPlayer for the first audio player binary
// found on PATH, or nil when none is available.
func DetectPlayer(baseURL string) *ExecPlayer {
	for _, bin := range playerBinaries {
		if path, err := exec.LookPath(bin); err == nil {
			return NewExecPlayer(path, baseURL)
		}
	}
	return nil
}

// ExecPlayer plays audio replies by launching an external player process.
// Relative audio references are resolved against the backend base URL.
type ExecPlayer struct {
	binary  string
	baseURL string

	mu   sync.Mutex
	cmd  *exec.Cmd
	done chan struct{}
}

// NewExecPlayer creates a player around the given binary.
func NewExecPlayer(binary, baseURL string) *ExecPlayer {
	return &ExecPlayer{binary: binary, baseURL: strings.TrimSuffix(baseURL, "/")}
}

// resolve turns an audio reference into something the player binary can
// open: full URLs and local files pass through, anything else is treated
// as a backend-relative path.
func (p *ExecPlayer) resolve(ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if filepath.IsAbs(ref) {
		if _, err := os.Stat(ref); err == nil {
			return ref
		}
	}
	return p.baseURL + "/" + strings.TrimPrefix(ref, "/")
}

// Play starts playback of the referenced audio, stopping any playback
// already in progress.
func (p *ExecPlayer) Play(ref string) error {
	p.Stop()

	args := []string{p.resolve(ref)}
	if strings.HasSuffix(p.binary, "ffplay") {
		args = append([]string{"-nodisp", "-autoexit", "-loglevel", "quiet"}, args...)
	}
	cmd := exec.Command(p.binary, args...)
	if err := cmd.Start(); err != nil {
		return err
	}

	done := make(chan struct{})
	go func() {
		_ = cmd.Wait()
		close(done)
	}()

	p.mu.Lock()
	p.cmd = cmd
	p.done = done
	p.mu.Unlock()
	return nil
}

// Stop interrupts playback immediately. Safe when nothing is playing.
func (p *ExecPlayer) Stop() {
	p.mu.Lock()
	cmd := p.cmd
	p.cmd = nil
	p.mu.Unlock()

	if cmd != nil && cmd.Process != nil {
		_ = cmd.Process.Kill()
	}
}

// Done returns a channel closed when the current playback ends, nil when
// nothing has been played yet.
func (p *ExecPlayer) Done() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done
}
