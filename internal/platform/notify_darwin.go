//go:build darwin

package platform

import (
	"fmt"
	"os/exec"
)

// Notify displays a desktop notification through macOS Notification Center.
// The osascript notification command has no icon parameter, so opts.IconPath
// is ignored here.
func Notify(title, body string, opts Options) error {
	if title == "" {
		title = appName
	}
	script := fmt.Sprintf("display notification %q with title %q", body, title)
	return exec.Command("osascript", "-e", script).Run()
}
