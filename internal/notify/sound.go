package notify

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/boopifier/boopifier/internal/config"
	"github.com/boopifier/boopifier/internal/debuglog"
	"github.com/boopifier/boopifier/internal/event"
)

// maxPlayback caps how long a sound may hold up the hook.
const maxPlayback = 5 * time.Second

// SoundHandler plays an audio file.
//
// Config keys: file, or files (array) with random (bool) to pick one at
// random instead of the first; volume (0.0 to 1.0, default 1.0). Paths may
// start with ~. Playback is stopped after 5 seconds, which is not an error.
type SoundHandler struct {
	sender Sender
	limit  time.Duration
	logf   func(format string, args ...any)

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSoundHandler creates a SoundHandler. A nil rng uses the global source.
func NewSoundHandler(sender Sender, rng *rand.Rand, logger *debuglog.Logger) *SoundHandler {
	return &SoundHandler{
		sender: sender,
		limit:  maxPlayback,
		rng:    rng,
		logf:   logger.WithPrefix("sound"),
	}
}

func (h *SoundHandler) Type() string {
	return "sound"
}

func (h *SoundHandler) Handle(ctx context.Context, _ event.Event, cfg Config) error {
	file, err := h.selectFile(cfg)
	if err != nil {
		return err
	}
	file = config.ExpandHomePath(file)

	if err := ValidateSoundFile(file); err != nil {
		return err
	}

	playCtx, cancel := context.WithTimeout(ctx, h.limit)
	defer cancel()

	err = h.sender.SendSound(playCtx, file, clampVolume(cfg.Float("volume", 1.0)))
	if err != nil && errors.Is(playCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		h.logf("playback of %s stopped after %s", file, h.limit)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to play %s: %w", file, err)
	}
	return nil
}

// selectFile picks the sound file: "file" wins over "files".
func (h *SoundHandler) selectFile(cfg Config) (string, error) {
	if file, ok := cfg.Lookup("file"); ok {
		return file, nil
	}

	if _, present := cfg["files"]; !present {
		return "", errors.New("sound handler requires either 'file' or 'files' configuration")
	}

	files, ok := cfg.Strings("files")
	if !ok {
		return "", errors.New("sound handler 'files' must be an array of strings")
	}
	if len(files) == 0 {
		return "", errors.New("sound handler 'files' array is empty")
	}

	if !cfg.Bool("random", false) {
		return files[0], nil
	}
	return files[h.intN(len(files))], nil
}

func (h *SoundHandler) intN(n int) int {
	if h.rng == nil {
		return rand.IntN(n)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rng.IntN(n)
}
