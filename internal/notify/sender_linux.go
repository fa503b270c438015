//go:build linux

package notify

import (
	"context"
	"io"
	"os"
	"strconv"
)

// paplayMaxVolume is paplay's 100% volume (PA_VOLUME_NORM).
const paplayMaxVolume = 65536

// linuxSender implements Sender for Linux using notify-send and paplay
type linuxSender struct {
	visualAvailable bool
	soundAvailable  bool
	stderr          io.Writer
}

// newLinuxSender creates a new Linux notification sender
func newLinuxSender(stderr io.Writer) Sender {
	return &linuxSender{
		visualAvailable: toolAvailable("notify-send") && hasDisplay(),
		soundAvailable:  toolAvailable("paplay"),
		stderr:          stderr,
	}
}

// newDarwinSender returns a no-op sender on linux
func newDarwinSender(_ io.Writer) Sender {
	return &noopSender{}
}

// newWindowsSender returns a no-op sender on linux
func newWindowsSender(_ io.Writer) Sender {
	return &noopSender{}
}

// hasDisplay checks if a display environment is available
func hasDisplay() bool {
	// Check for X11 display
	if os.Getenv("DISPLAY") != "" {
		return true
	}
	// Check for Wayland display
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		return true
	}
	return false
}

// SendVisual sends a visual notification using notify-send
func (s *linuxSender) SendVisual(ctx context.Context, n Notification) error {
	if !s.visualAvailable {
		return ErrVisualUnavailable
	}

	args := []string{"-u", string(n.Urgency)}
	if n.AppName != "" {
		args = append(args, "-a", n.AppName)
	}
	if n.Timeout > 0 {
		args = append(args, "-t", strconv.FormatInt(n.Timeout.Milliseconds(), 10))
	}
	args = append(args, "--", n.Summary, n.Body)

	return runTool(ctx, s.stderr, "notify-send", args...)
}

// SendSound plays a sound using paplay
func (s *linuxSender) SendSound(ctx context.Context, soundFile string, volume float64) error {
	if !s.soundAvailable {
		return ErrSoundUnavailable
	}

	level := int(clampVolume(volume) * paplayMaxVolume)
	return runTool(ctx, s.stderr, "paplay", "--volume="+strconv.Itoa(level), soundFile)
}

// VisualAvailable returns true if notify-send is available and display is present
func (s *linuxSender) VisualAvailable() bool {
	return s.visualAvailable
}

// SoundAvailable returns true if paplay is available
func (s *linuxSender) SoundAvailable() bool {
	return s.soundAvailable
}
