//go:build windows

package notify

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// windowsSender implements Sender for Windows using PowerShell
type windowsSender struct {
	visualAvailable bool
	soundAvailable  bool
	stderr          io.Writer
}

// newWindowsSender creates a new Windows notification sender
func newWindowsSender(stderr io.Writer) Sender {
	available := toolAvailable("powershell")
	return &windowsSender{
		visualAvailable: available,
		soundAvailable:  available,
		stderr:          stderr,
	}
}

// newDarwinSender returns a no-op sender on windows
func newDarwinSender(_ io.Writer) Sender {
	return &noopSender{}
}

// newLinuxSender returns a no-op sender on windows
func newLinuxSender(_ io.Writer) Sender {
	return &noopSender{}
}

// SendVisual sends a toast notification using PowerShell
func (s *windowsSender) SendVisual(ctx context.Context, n Notification) error {
	if !s.visualAvailable {
		return ErrVisualUnavailable
	}

	script := fmt.Sprintf(`
[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] | Out-Null
[Windows.Data.Xml.Dom.XmlDocument, Windows.Data.Xml.Dom.XmlDocument, ContentType = WindowsRuntime] | Out-Null
$template = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::ToastText02)
$textNodes = $template.GetElementsByTagName('text')
$textNodes.Item(0).AppendChild($template.CreateTextNode('%s')) | Out-Null
$textNodes.Item(1).AppendChild($template.CreateTextNode('%s')) | Out-Null
$toast = [Windows.UI.Notifications.ToastNotification]::new($template)
[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier('%s').Show($toast)
`, escapeForPowerShell(n.Summary), escapeForPowerShell(n.Body), escapeForPowerShell(n.AppName))

	return runTool(ctx, s.stderr, "powershell", "-ExecutionPolicy", "Bypass", "-NoProfile", "-Command", script)
}

// SendSound plays a sound using PowerShell. SoundPlayer has no volume
// control, so volume is ignored.
func (s *windowsSender) SendSound(ctx context.Context, soundFile string, _ float64) error {
	if !s.soundAvailable {
		return ErrSoundUnavailable
	}

	script := fmt.Sprintf(`
$player = New-Object System.Media.SoundPlayer
$player.SoundLocation = '%s'
$player.PlaySync()
`, escapeForPowerShell(soundFile))

	return runTool(ctx, s.stderr, "powershell", "-ExecutionPolicy", "Bypass", "-NoProfile", "-Command", script)
}

// VisualAvailable returns true if PowerShell is available
func (s *windowsSender) VisualAvailable() bool {
	return s.visualAvailable
}

// SoundAvailable returns true if PowerShell is available
func (s *windowsSender) SoundAvailable() bool {
	return s.soundAvailable
}

// escapeForPowerShell escapes special characters for single-quoted PowerShell strings
func escapeForPowerShell(s string) string {
	var b strings.Builder
	for _, c := range s {
		switch c {
		case '\'':
			b.WriteString("''")
		case '`', '$':
			b.WriteRune('`')
			b.WriteRune(c)
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}
