package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	newStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	fileStyle = lipgloss.NewStyle().Faint(true)
)

// ErrorLine prints err the way every failing command reports it.
func ErrorLine(w io.Writer, err error) {
	fmt.Fprintln(w, errStyle.Render("error:")+" "+err.Error())
}

// ExportLine reports one document written by export.
func ExportLine(w io.Writer, source, dbPath string) {
	fmt.Fprintln(w, newStyle.Render("exported")+"  "+source+" "+fileStyle.Render("-> "+dbPath))
}

func SummaryLine(w io.Writer, features, scenarios, steps int) {
	fmt.Fprintf(w, "%d features, %d scenarios, %d steps\n", features, scenarios, steps)
}
