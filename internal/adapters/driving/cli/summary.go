package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/staffscout/internal/core/domain"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")).Width(24)
	valueStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
	boxStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1)
)

// renderSummary formats a run report for the terminal.
func renderSummary(report *domain.RunReport) string {
	rows := []string{
		titleStyle.Render("Run " + report.RunID),
		"",
		summaryRow("Organizations found", valueStyle.Render(fmt.Sprint(report.OrganizationsFound))),
		summaryRow("Organizations attempted", valueStyle.Render(fmt.Sprint(report.OrganizationsAttempted))),
		summaryRow("Processed", successStyle.Render(fmt.Sprint(report.OrganizationsProcessed))),
		summaryRow("Skipped", warningStyle.Render(fmt.Sprint(report.OrganizationsSkipped))),
		summaryRow("Failed", errorStyle.Render(fmt.Sprint(report.OrganizationsFailed))),
		summaryRow("Contacts collected", valueStyle.Render(fmt.Sprint(report.ContactsCollected()))),
	}
	if report.OutputLocation != "" {
		rows = append(rows, summaryRow("Output", report.OutputLocation))
	}
	return boxStyle.Render(strings.Join(rows, "\n"))
}

func summaryRow(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}
