// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/iis-mfg/precision-site/internal/composer"
	"github.com/iis-mfg/precision-site/internal/seed"
	"github.com/iis-mfg/precision-site/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
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

// PrintComposition outputs a human-readable summary of one composed page.
func (p *Printer) PrintComposition(page *types.Page, result composer.Result) {
	if page == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Slug:     %s\n", page.Slug))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", page.Title))
	sb.WriteString(fmt.Sprintf("Sections: %d authored, %d rendered\n", len(page.Sections), len(result.Sections)))

	if len(result.Sections) > 0 {
		sb.WriteString("\nRendered:\n")
		for _, section := range result.Sections {
			sb.WriteString(fmt.Sprintf("  [%d] %s (%d bytes)\n", section.Index, section.Variant, len(section.HTML)))
		}
	}

	if len(result.Diagnostics) > 0 {
		sb.WriteString("\nSkipped:\n")
		for _, diag := range result.Diagnostics {
			sb.WriteString(fmt.Sprintf("  [%d] %s: %s\n", diag.Index, diag.Variant, diag.Reason))
		}
	}

	p.printBox("Page Composition", sb.String())
}

// PrintImportSummary outputs the outcome of a content import run.
func (p *Printer) PrintImportSummary(results []seed.FileResult, dryRun bool) {
	var sb strings.Builder
	imported := 0
	failed := 0

	for _, r := range results {
		name := r.File
		if idx := strings.LastIndexByte(name, '/'); idx >= 0 {
			name = name[idx+1:]
		}
		switch {
		case r.Err != nil:
			failed++
			sb.WriteString(fmt.Sprintf("  ✗ %s: %v\n", name, r.Err))
		case r.Kind == "navigation":
			imported++
			sb.WriteString(fmt.Sprintf("  ✓ %s (navigation)\n", name))
		default:
			imported++
			sb.WriteString(fmt.Sprintf("  ✓ %s → %s (%d sections)\n", name, r.Slug, r.Sections))
		}
	}

	title := fmt.Sprintf("Content Import: %d ok, %d failed", imported, failed)
	if dryRun {
		title += " (dry run)"
	}
	p.printBox(title, strings.TrimRight(sb.String(), "\n"))
}
