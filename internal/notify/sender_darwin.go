//go:build darwin

package notify

import (
	"context"
	"fmt"
	"io"
	"strconv"
)

// darwinSender implements Sender for macOS using osascript and afplay
type darwinSender struct {
	visualAvailable bool
	soundAvailable  bool
	stderr          io.Writer
}

// newDarwinSender creates a new macOS notification sender
func newDarwinSender(stderr io.Writer) Sender {
	return &darwinSender{
		visualAvailable: toolAvailable("osascript"),
		soundAvailable:  toolAvailable("afplay"),
		stderr:          stderr,
	}
}

// newLinuxSender returns a no-op sender on darwin
func newLinuxSender(_ io.Writer) Sender {
	return &noopSender{}
}

// newWindowsSender returns a no-op sender on darwin
func newWindowsSender(_ io.Writer) Sender {
	return &noopSender{}
}

// SendVisual sends a visual notification using osascript. macOS ignores
// urgency and timeout.
func (s *darwinSender) SendVisual(ctx context.Context, n Notification) error {
	if !s.visualAvailable {
		return ErrVisualUnavailable
	}

	script := fmt.Sprintf(`display notification %q with title %q`, n.Body, n.Summary)
	return runTool(ctx, s.stderr, "osascript", "-e", script)
}

// SendSound plays a sound using afplay
func (s *darwinSender) SendSound(ctx context.Context, soundFile string, volume float64) error {
	if !s.soundAvailable {
		return ErrSoundUnavailable
	}

	level := strconv.FormatFloat(clampVolume(volume), 'f', 2, 64)
	return runTool(ctx, s.stderr, "afplay", "-v", level, soundFile)
}

// VisualAvailable returns true if osascript is available
func (s *darwinSender) VisualAvailable() bool {
	return s.visualAvailable
}

// SoundAvailable returns true if afplay is available
func (s *darwinSender) SoundAvailable() bool {
	return s.soundAvailable
}
