// Package notify_test provides mock implementations for notification sender testing.
// Related: internal/notify/sender.go
// Tags: notify, mocks, testing

package notify

import (
	"context"
	"errors"
	"sync"
)

// MockSender is a mock implementation of Sender for testing.
// It records all method calls and allows configuring return values and errors.
type MockSender struct {
	mu sync.Mutex

	// Configuration
	VisualError     error
	SoundError      error
	visualAvailable bool
	soundAvailable  bool
	SoundFunc       func(ctx context.Context, file string) error

	// Call tracking
	VisualCalls []Notification
	SoundCalls  []SoundCall
}

// SoundCall records one SendSound invocation.
type SoundCall struct {
	File   string
	Volume float64
}

// NewMockSender creates a new mock sender with default behavior (all available, no errors)
func NewMockSender() *MockSender {
	return &MockSender{
		visualAvailable: true,
		soundAvailable:  true,
	}
}

// WithVisualError configures the mock to return an error on SendVisual
func (m *MockSender) WithVisualError(err error) *MockSender {
	m.VisualError = err
	return m
}

// WithSoundError configures the mock to return an error on SendSound
func (m *MockSender) WithSoundError(err error) *MockSender {
	m.SoundError = err
	return m
}

// WithSoundFunc configures a custom sound function, e.g. one that blocks on ctx
func (m *MockSender) WithSoundFunc(fn func(ctx context.Context, file string) error) *MockSender {
	m.SoundFunc = fn
	return m
}

// SendVisual records the call and returns configured error
func (m *MockSender) SendVisual(_ context.Context, n Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.VisualCalls = append(m.VisualCalls, n)
	return m.VisualError
}

// SendSound records the call and returns configured error
func (m *MockSender) SendSound(ctx context.Context, soundFile string, volume float64) error {
	m.mu.Lock()
	m.SoundCalls = append(m.SoundCalls, SoundCall{File: soundFile, Volume: volume})
	fn := m.SoundFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, soundFile)
	}
	return m.SoundError
}

// VisualAvailable returns whether visual notifications are available
func (m *MockSender) VisualAvailable() bool {
	return m.visualAvailable
}

// SoundAvailable returns whether sound notifications are available
func (m *MockSender) SoundAvailable() bool {
	return m.soundAvailable
}

// LastNotification returns the most recent visual notification.
func (m *MockSender) LastNotification() (Notification, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.VisualCalls) == 0 {
		return Notification{}, false
	}
	return m.VisualCalls[len(m.VisualCalls)-1], true
}

// LastSound returns the most recent sound call.
func (m *MockSender) LastSound() (SoundCall, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.SoundCalls) == 0 {
		return SoundCall{}, false
	}
	return m.SoundCalls[len(m.SoundCalls)-1], true
}

// Common test errors
var (
	ErrMockVisual = errors.New("mock visual notification error")
	ErrMockSound  = errors.New("mock sound notification error")
)
