package app

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/aussiebroadwan/clientdesk/internal/desk/domain"
	"github.com/aussiebroadwan/clientdesk/pkg/clientsdk"
)

var (
	borderColor = lipgloss.Color("240")
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1)
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
)

var listHeaders = []string{"Shared Key", "Name", "Email", "Phone", "Start Date", "End Date"}

// renderClients draws the list view table.
func renderClients(clients []clientsdk.Client) string {
	if len(clients) == 0 {
		return faintStyle.Render("No clients to display.")
	}

	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		rows = append(rows, []string{c.SharedKey, c.Name, c.Email, c.Phone, c.StartDate, c.EndDate})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(borderColor)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(listHeaders...).
		Rows(rows...).
		String()
}

// renderDraft draws the creation form with required fields marked.
func renderDraft(c clientsdk.Client) string {
	values := map[domain.Field]string{
		domain.FieldSharedKey: c.SharedKey,
		domain.FieldName:      c.Name,
		domain.FieldEmail:     c.Email,
		domain.FieldPhone:     c.Phone,
		domain.FieldStartDate: c.StartDate,
		domain.FieldEndDate:   c.EndDate,
	}

	rows := make([][]string, 0, len(domain.Fields))
	for _, f := range domain.Fields {
		label := string(f)
		if slices.Contains(domain.RequiredFields, f) {
			label += " *"
		}
		rows = append(rows, []string{label, values[f]})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(borderColor)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("Field", "Value").
		Rows(rows...).
		String()
}
