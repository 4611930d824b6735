// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/tailorcv/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJob outputs a summary of the ingested job description
func (p *Printer) PrintJob(job *types.Job) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Raw text:     %d chars\n", len(job.RawText)))
	sb.WriteString(fmt.Sprintf("Cleaned text: %d chars\n", len(job.CleanedText)))
	sb.WriteString(fmt.Sprintf("Keywords:     %d\n", len(job.Keywords)))

	if len(job.Keywords) > 0 {
		sb.WriteString("\n")
		count := min(len(job.Keywords), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.Keywords[i]))
		}
		if len(job.Keywords) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.Keywords)-maxItemsToShow))
		}
	}

	p.printBox("INGESTED JOB", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPlan outputs a summary of a selection plan
func (p *Printer) PrintPlan(plan *types.SelectionPlan) {
	if plan == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Experience: %s\n", formatIDList(plan.SelectedExperienceIDs)))
	sb.WriteString(fmt.Sprintf("Projects:   %s\n", formatIDList(plan.SelectedProjectIDs)))
	sb.WriteString(fmt.Sprintf("Education:  %s\n", formatIDList(plan.SelectedEducationIDs)))
	sb.WriteString(fmt.Sprintf("Skills:     %s\n", formatIDList(plan.SelectedSkillLabels)))

	if len(plan.BulletOverrides) > 0 {
		sb.WriteString(fmt.Sprintf("\nBullet overrides: %d entries\n", len(plan.BulletOverrides)))
	}
	if len(plan.SectionOrder) > 0 {
		sb.WriteString(fmt.Sprintf("Section order: %s\n", strings.Join(plan.SectionOrder, " > ")))
	}

	p.printBox("SELECTION PLAN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintViolations outputs validation violations
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations == nil || violations.Empty() {
		return
	}

	var sb strings.Builder
	messages := violations.Messages()
	sb.WriteString(fmt.Sprintf("%d violations:\n\n", len(messages)))
	for _, msg := range messages {
		sb.WriteString(fmt.Sprintf("  • %s\n", msg))
	}

	p.printBox("SELECTION VIOLATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDocument outputs a summary of the assembled document
func (p *Printer) PrintDocument(doc *types.Document) {
	if doc == nil || doc.CV == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", doc.CV.Name))
	sb.WriteString(fmt.Sprintf("Sections: %d\n", len(doc.CV.Sections)))
	sb.WriteString("\n")

	for _, section := range doc.CV.Sections {
		sb.WriteString(fmt.Sprintf("  %-12s %d entries\n", section.Title, len(section.Entries)))
	}

	if theme, ok := doc.Design["theme"].(string); ok {
		sb.WriteString(fmt.Sprintf("\nTheme: %s\n", theme))
	}

	p.printBox("ASSEMBLED DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

func formatIDList(ids []string) string {
	if len(ids) == 0 {
		return "(none)"
	}
	joined := strings.Join(ids, ", ")
	if len(joined) > 40 {
		joined = joined[:37] + "..."
	}
	return joined
}
