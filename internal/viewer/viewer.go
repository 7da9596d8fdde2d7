package viewer

import (
	"fmt"
	"os/exec"
)

// Service launches an external table viewer on a written CSV file
type Service struct {
	Command string
}

// NewService creates a viewer Service running the given command
func NewService(command string) *Service {
	return &Service{Command: command}
}

// Open starts the viewer on csvPath and detaches from it, so the
// caller returns immediately and the viewer outlives the process. The
// returned error only reports launch failures (typically the viewer
// not being installed); callers treat it as a warning, the CSV is
// already on disk at this point.
func (s *Service) Open(csvPath string) error {
	cmd := exec.Command(s.Command, csvPath)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch %s: %w", s.Command, err)
	}

	// Detach: never wait on the child.
	return cmd.Process.Release()
}
