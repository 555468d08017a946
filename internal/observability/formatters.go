// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/talent-intel/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 64
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for CLI runs
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRequirementProfile outputs a human-readable summary of the structured job.
func (p *Printer) PrintRequirementProfile(job *types.RequirementProfile) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:     %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("Seniority: %s\n", job.Seniority))

	if len(job.RequiredSkills) > 0 {
		sb.WriteString("\nRequired skills:\n")
		count := min(len(job.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.RequiredSkills[i]))
		}
		if remaining := len(job.RequiredSkills) - count; remaining > 0 {
			sb.WriteString(fmt.Sprintf("  … and %d more\n", remaining))
		}
	}

	if len(job.NiceToHaveSkills) > 0 {
		sb.WriteString(fmt.Sprintf("\nNice to have: %s\n", strings.Join(job.NiceToHaveSkills, ", ")))
	}

	p.printBox("Job Requirements", strings.TrimRight(sb.String(), "\n"))
}

// PrintRankedCandidates outputs the ranked shortlist with every score
// component broken out.
func (p *Printer) PrintRankedCandidates(candidates []types.ScoredCandidate) {
	for i, c := range candidates {
		var sb strings.Builder

		name := c.Profile.Name
		if name == "" {
			name = "(name not found)"
		}
		sb.WriteString(fmt.Sprintf("Candidate: %s\n", name))
		sb.WriteString(fmt.Sprintf("Score:     %.1f / 100\n", c.OverallScore))
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Experience similarity: %3.0f%%\n", c.Signals.ExperienceSimilarity*100))
		sb.WriteString(fmt.Sprintf("Skill match:           %3.0f%%\n", c.Signals.SkillOverlap*100))
		sb.WriteString(fmt.Sprintf("Trajectory alignment:  %3.0f%%\n", c.Signals.TrajectoryAlignment*100))
		sb.WriteString(fmt.Sprintf("Resume validity:       %3d%% (AI likelihood %d%%)\n",
			c.ValidityPercent, c.AuthenticityPercent))

		if len(c.Authenticity.Flags) > 0 {
			sb.WriteString(fmt.Sprintf("Flags: %s\n", strings.Join(c.Authenticity.Flags, ", ")))
		}
		if c.Degraded {
			sb.WriteString(fmt.Sprintf("DEGRADED: %s\n", c.DegradedReason))
		}

		p.printBox(fmt.Sprintf("#%d — %s", i+1, c.FileName), strings.TrimRight(sb.String(), "\n"))
	}
}
