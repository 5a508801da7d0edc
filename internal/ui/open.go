package ui

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Opener opens a result URL in the user's browser
type Opener func(url string) error

// DefaultOpener shells out to the platform's URL handler
func DefaultOpener(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	// Detach; the browser outlives us
	go cmd.Wait()
	return nil
}
