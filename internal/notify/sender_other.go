//go:build !linux && !darwin && !windows

package notify

import "io"

func newDarwinSender(_ io.Writer) Sender {
	return &noopSender{}
}

func newLinuxSender(_ io.Writer) Sender {
	return &noopSender{}
}

func newWindowsSender(_ io.Writer) Sender {
	return &noopSender{}
}
