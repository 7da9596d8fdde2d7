package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrCancelled is returned when the user declines to overwrite
var ErrCancelled = errors.New("cancelled by user")

// Prompter handles the overwrite-confirmation dialog for output files.
// It reads from an injected reader so the flow is testable.
type Prompter struct {
	in      *bufio.Reader
	out     io.Writer
	enumDir string
}

// NewPrompter creates a new Prompter. Alternative filenames entered by
// the user are saved under enumDir.
func NewPrompter(in io.Reader, out io.Writer, enumDir string) *Prompter {
	return &Prompter{
		in:      bufio.NewReader(in),
		out:     out,
		enumDir: enumDir,
	}
}

// ResolveOutputPath returns the path the CSV should be written to. A
// path that does not exist yet is returned as-is. On collision the user
// chooses y (overwrite), n (cancel) or o (pick another filename under
// the enum directory); a chosen name that also collides goes through
// the same dialog again.
func (p *Prompter) ResolveOutputPath(path string) (string, error) {
	for {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}

		choice, err := p.promptChoice(path)
		if err != nil {
			return "", err
		}

		switch choice {
		case "y":
			return path, nil
		case "n":
			return "", ErrCancelled
		case "o":
			if err := os.MkdirAll(p.enumDir, 0755); err != nil {
				return "", fmt.Errorf("failed to create directory %s: %w", p.enumDir, err)
			}
			alt, err := p.promptAltFilename()
			if err != nil {
				return "", err
			}
			path = alt
		}
	}
}

func (p *Prompter) promptChoice(path string) (string, error) {
	for {
		fmt.Fprintf(p.out, "Output file exists: %s\nOverwrite? (y/n/o): ", path)
		line, err := p.readLine()
		if err != nil {
			return "", err
		}

		choice := strings.ToLower(strings.TrimSpace(line))
		if choice == "y" || choice == "n" || choice == "o" {
			return choice, nil
		}
		fmt.Fprintln(p.out, "Invalid choice. Enter 'y' (overwrite), 'n' (cancel), or 'o' (other name).")
	}
}

func (p *Prompter) promptAltFilename() (string, error) {
	for {
		fmt.Fprintf(p.out, "Enter alternative filename (will be saved under %s): ", p.enumDir)
		line, err := p.readLine()
		if err != nil {
			return "", err
		}

		name := strings.TrimSpace(line)
		if name == "" {
			fmt.Fprintln(p.out, "Filename cannot be empty.")
			continue
		}
		// Simple filename only, no directories or traversal.
		if filepath.IsAbs(name) || name != filepath.Base(name) || strings.Contains(name, "..") {
			fmt.Fprintln(p.out, "Invalid filename. Provide a simple filename only (no directories).")
			continue
		}

		if !strings.HasSuffix(strings.ToLower(name), ".csv") {
			name += ".csv"
		}
		return filepath.Join(p.enumDir, name), nil
	}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return line, nil
}
