package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"nmap2csv/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6C5CE7")).Underline(true)

	openStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00B894"))
	otherStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FD79A8"))
)

// PrintFindings renders the extracted findings as an aligned table,
// open-prefixed states in green, everything else in pink.
func PrintFindings(out io.Writer, findings []models.PortFinding) {
	if len(findings) == 0 {
		fmt.Fprintln(out, "(no port rows found)")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, headerStyle.Render("PORT\tPROTO\tSTATE\tSERVICE\tVERSION"))

	for _, f := range findings {
		state := otherStyle.Render(f.State)
		if strings.HasPrefix(strings.ToLower(f.State), "open") {
			state = openStyle.Render(f.State)
		}

		version := f.Version
		if version == "" {
			version = "-"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", f.Port, f.Protocol, state, f.Service, version)
	}
	w.Flush()
}
