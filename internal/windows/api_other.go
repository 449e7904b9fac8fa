//go:build !windows

package windows

import "os/exec"

// ActiveWindowTitle has no portable equivalent outside Windows.
func ActiveWindowTitle() (string, bool) {
	return "", false
}

// shellOpen starts path as a program without waiting for it. Only the
// "open" verb is available.
func shellOpen(verb, path string) error {
	if verb != "" && verb != VerbOpen {
		return ErrUnsupportedPlatform
	}

	cmd := exec.Command(path)
	if err := cmd.Start(); err != nil {
		return err
	}

	// Reap the child in the background
	go func() { _ = cmd.Wait() }()
	return nil
}
