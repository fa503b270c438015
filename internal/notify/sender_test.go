// Package notify_test tests platform sender selection and sound file validation.
// Related: internal/notify/sender.go
// Tags: notify, sender, platform, sound, validation
package notify

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatform(t *testing.T) {
	t.Parallel()
	assert.NotEmpty(t, Platform())
}

func TestNewSender(t *testing.T) {
	t.Parallel()

	// NOTE: We do NOT call SendVisual/SendSound to avoid triggering real OS notifications
	sender := NewSender(nil)
	require.NotNil(t, sender)
	_ = sender.VisualAvailable()
	_ = sender.SoundAvailable()
}

func TestNoopSender(t *testing.T) {
	t.Parallel()

	sender := &noopSender{}
	assert.False(t, sender.VisualAvailable())
	assert.False(t, sender.SoundAvailable())
	assert.ErrorIs(t, sender.SendVisual(context.Background(), NewNotification("s", "b")), ErrVisualUnavailable)
	assert.ErrorIs(t, sender.SendSound(context.Background(), "x.wav", 1), ErrSoundUnavailable)
}

func TestValidateSoundFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	validFile := filepath.Join(tmpDir, "test.wav")
	require.NoError(t, os.WriteFile(validFile, []byte("test"), 0644))

	testDir := filepath.Join(tmpDir, "testdir.wav")
	require.NoError(t, os.Mkdir(testDir, 0755))

	unsupportedFile := filepath.Join(tmpDir, "test.txt")
	require.NoError(t, os.WriteFile(unsupportedFile, []byte("test"), 0644))

	tests := map[string]struct {
		soundFile string
		wantErr   string
	}{
		"empty string":          {soundFile: "", wantErr: "no sound file configured"},
		"valid wav file":        {soundFile: validFile},
		"non-existent file":     {soundFile: "/path/to/nonexistent/file.wav", wantErr: "failed to open audio file"},
		"directory":             {soundFile: testDir, wantErr: "is a directory"},
		"unsupported extension": {soundFile: unsupportedFile, wantErr: "unsupported audio format '.txt'"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := ValidateSoundFile(tt.soundFile)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateSoundFile_SupportedExtensions(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()

	tests := map[string]struct {
		extension string
		valid     bool
	}{
		".wav":       {extension: ".wav", valid: true},
		".mp3":       {extension: ".mp3", valid: true},
		".aiff":      {extension: ".aiff", valid: true},
		".ogg":       {extension: ".ogg", valid: true},
		".oga":       {extension: ".oga", valid: true},
		".flac":      {extension: ".flac", valid: true},
		".m4a":       {extension: ".m4a", valid: true},
		".txt":       {extension: ".txt", valid: false},
		".exe":       {extension: ".exe", valid: false},
		".WAV upper": {extension: ".WAV", valid: true},  // case insensitive
		".Aiff":      {extension: ".Aiff", valid: true}, // mixed case
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testFile := filepath.Join(tmpDir, "test"+tt.extension)
			require.NoError(t, os.WriteFile(testFile, []byte("test"), 0644))

			err := ValidateSoundFile(testFile)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestClampVolume(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, clampVolume(-1))
	assert.Equal(t, 0.25, clampVolume(0.25))
	assert.Equal(t, 1.0, clampVolume(3))
}

func TestToolAvailable(t *testing.T) {
	t.Parallel()

	assert.False(t, toolAvailable("nonexistent_tool_12345"))
	assert.False(t, toolAvailable(""))
}
