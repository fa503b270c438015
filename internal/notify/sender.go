package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrVisualUnavailable is returned by the desktop handler when the platform
// has no usable notification tool.
var ErrVisualUnavailable = errors.New("desktop notifications are not available on this system")

// ErrSoundUnavailable is returned by the sound handler when the platform has
// no usable audio player.
var ErrSoundUnavailable = errors.New("audio playback is not available on this system")

// Sender defines the interface for platform-specific notification senders
type Sender interface {
	// SendVisual shows a notification through the OS notification system.
	SendVisual(ctx context.Context, n Notification) error

	// SendSound plays soundFile at volume (0.0 to 1.0) and returns when
	// playback ends or ctx is done.
	SendSound(ctx context.Context, soundFile string, volume float64) error

	// VisualAvailable returns true if visual notifications are supported
	VisualAvailable() bool

	// SoundAvailable returns true if sound notifications are supported
	SoundAvailable() bool
}

// NewSender creates a platform-specific notification sender based on the current OS.
// Player diagnostics are written to stderr; nil discards them.
func NewSender(stderr io.Writer) Sender {
	if stderr == nil {
		stderr = io.Discard
	}
	switch runtime.GOOS {
	case "darwin":
		return newDarwinSender(stderr)
	case "linux":
		return newLinuxSender(stderr)
	case "windows":
		return newWindowsSender(stderr)
	default:
		return &noopSender{}
	}
}

// Platform returns the current operating system name
func Platform() string {
	return runtime.GOOS
}

// toolAvailable checks if a command-line tool is available in PATH
func toolAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// runTool runs name with args, sending its stderr to w. The error includes
// the tool name.
func runTool(ctx context.Context, w io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = w
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// noopSender is a sender that does nothing (for unsupported platforms)
type noopSender struct{}

func (s *noopSender) SendVisual(_ context.Context, _ Notification) error {
	return ErrVisualUnavailable
}

func (s *noopSender) SendSound(_ context.Context, _ string, _ float64) error {
	return ErrSoundUnavailable
}

func (s *noopSender) VisualAvailable() bool {
	return false
}

func (s *noopSender) SoundAvailable() bool {
	return false
}

// supportedAudioExtensions contains file extensions supported for custom sounds
var supportedAudioExtensions = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".aiff": true,
	".aif":  true,
	".ogg":  true,
	".oga":  true,
	".flac": true,
	".m4a":  true,
}

// ValidateSoundFile checks that soundFile exists, is a regular file and has a
// supported audio format.
func ValidateSoundFile(soundFile string) error {
	if soundFile == "" {
		return errors.New("no sound file configured")
	}

	info, err := os.Stat(soundFile)
	if err != nil {
		return fmt.Errorf("failed to open audio file '%s': %w", soundFile, err)
	}

	if info.IsDir() {
		return fmt.Errorf("sound path is a directory, not a file: %s", soundFile)
	}

	ext := strings.ToLower(filepath.Ext(soundFile))
	if !supportedAudioExtensions[ext] {
		return fmt.Errorf("unsupported audio format '%s' for file: %s", ext, soundFile)
	}

	return nil
}

// clampVolume limits v to [0, 1].
func clampVolume(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
