package extract

import (
	"bufio"
	"io"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"nmap2csv/models"
)

// portLineRegex matches one port row of plain-text nmap output, e.g.
// "80/tcp   open  http    Apache httpd 2.4.41". The protocol token is
// matched case-insensitively; the trailing version group is optional
// and greedy up to the last non-space character.
var portLineRegex = regexp.MustCompile(`(?i)^(\d+)/\s*(tcp|udp)\s+(\S+)\s+(\S+)(?:\s+(.*\S))?\s*$`)

// Service extracts port findings from plain-text nmap output.
// It holds no state and performs no I/O; safe for concurrent use.
type Service struct{}

// NewService creates a new extract Service
func NewService() *Service {
	return &Service{}
}

// ParseLines scans the given lines in order and returns one PortFinding
// per matching port row. Blank lines, indented lines (script output),
// and anything that is not a port row are skipped silently. When
// onlyOpen is true, findings whose state does not begin with "open"
// (case-insensitive) are dropped, so "open|filtered" survives but
// "closed" and "filtered" do not.
func (s *Service) ParseLines(lines []string, onlyOpen bool) []models.PortFinding {
	findings := []models.PortFinding{}

	for _, line := range lines {
		if line == "" {
			continue
		}
		if r, _ := utf8.DecodeRuneInString(line); unicode.IsSpace(r) {
			continue
		}

		m := portLineRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		state := m[3]
		if onlyOpen && !strings.HasPrefix(strings.ToLower(state), "open") {
			continue
		}

		findings = append(findings, models.PortFinding{
			Port:     m[1],
			Protocol: strings.ToLower(m[2]),
			State:    state,
			Service:  m[4],
			Version:  m[5],
			Enum:     "N",
		})
	}

	return findings
}

// ReadLines reads r line by line with best-effort decoding: byte
// sequences that are not valid UTF-8 are replaced with U+FFFD instead
// of failing the read.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.ToValidUTF8(scanner.Text(), "�"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
