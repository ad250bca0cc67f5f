// Package explorer reveals files in the platform's file manager.
package explorer

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Reveal opens the OS file manager on the directory containing path,
// selecting the file where the platform supports it. The command is
// started and not waited on.
func Reveal(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %q: %w", path, err)
	}

	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		explorer, err := exec.LookPath("explorer")
		if err != nil {
			return err
		}

		cmd = exec.Command(explorer, "/select,", abs)
	case "darwin":
		open, err := exec.LookPath("open")
		if err != nil {
			return err
		}

		cmd = exec.Command(open, "-R", abs)
	default:
		opener, err := exec.LookPath("xdg-open")
		if err != nil {
			return err
		}

		// xdg-open has no select option; open the containing directory.
		cmd = exec.Command(opener, filepath.Dir(abs))
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening file manager: %w", err)
	}

	return nil
}
