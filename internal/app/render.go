package app

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/Kxvin1/life-dashboard/internal/core/domain"
)

// RenderSummary writes the dashboard summary as an aligned table.
func RenderSummary(out io.Writer, entries []domain.SummaryEntry) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SECTION\tCOUNT\tTOTAL")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%d\t%s\n", e.Label, e.Count, formatCents(e.Total))
	}
	return w.Flush()
}

// RenderTasks writes the task list as an aligned table.
func RenderTasks(out io.Writer, tasks []domain.Task) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDONE\tTITLE\tDUE")
	for _, t := range tasks {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, checkbox(t.Done), t.Title, formatDue(t.DueDate))
	}
	return w.Flush()
}

// RenderCategories writes the category list as an aligned table.
func RenderCategories(out io.Writer, categories []domain.Category) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tNAME\tMONTHLY")
	for _, c := range categories {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Kind, c.Name, formatCents(c.MonthlyTotal))
	}
	return w.Flush()
}

// formatCents renders a cent amount as a dollar string, e.g. -1250 -> "-$12.50".
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func formatDue(due *time.Time) string {
	if due == nil {
		return "-"
	}
	return due.Format("2006-01-02")
}
