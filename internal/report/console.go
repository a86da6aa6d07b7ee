package report

import (
	"fmt"
	"strings"
	"time"

	"StockRadar/internal/model"
)

// FormatSummary renders the analysis outcomes as a console report, one block
// per symbol in input order, followed by a section for skipped symbols.
func FormatSummary(outcomes []model.Outcome) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 Stock Analysis Summary | %s\n", time.Now().Format("2006-01-02 15:04")))
	b.WriteString(strings.Repeat("=", 60) + "\n")

	ok := 0
	for _, o := range outcomes {
		if !o.OK() {
			continue
		}
		ok++
		r := o.Result
		b.WriteString(fmt.Sprintf("\n%s | %s\n", r.Symbol, r.Name))
		b.WriteString(fmt.Sprintf("  Current Price: %.2f\n", r.CurrentPrice))
		b.WriteString(formatWindow("52W", r.Week52))
		b.WriteString(formatWindow(" 3M", r.Month3))
		b.WriteString(formatWindow(" 1M", r.Month1))
		b.WriteString(fmt.Sprintf("  Current vs All: %.1f%%\n", r.AvgPositionPct))
		b.WriteString(fmt.Sprintf("  Source: %s\n", r.Source))
	}

	skipped := make([]string, 0)
	for _, o := range outcomes {
		if !o.OK() {
			skipped = append(skipped, fmt.Sprintf("  ⚠ %s: %v", o.Symbol, o.Err))
		}
	}
	if len(skipped) > 0 {
		b.WriteString("\nSkipped symbols:\n")
		b.WriteString(strings.Join(skipped, "\n") + "\n")
	}

	b.WriteString("\n" + strings.Repeat("=", 60) + "\n")
	b.WriteString(fmt.Sprintf("Analyzed %d of %d symbols\n", ok, len(outcomes)))
	return b.String()
}

func formatWindow(label string, s model.RangeStats) string {
	return fmt.Sprintf("  %s Range: %.2f - %.2f | Position: %.1f%%\n", label, s.Low, s.High, s.PositionPct)
}
