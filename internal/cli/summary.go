package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/mydehq/gamedesc/internal/review"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, footer []string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(toRow(headers, columns))
	for _, row := range rows {
		tw.AppendRow(toRow(row, columns))
	}
	if len(footer) > 0 {
		tw.AppendFooter(toRow(footer, columns))
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
			AlignFooter: align,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func toRow(cells []string, columns int) table.Row {
	r := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		if i < len(cells) {
			r[i] = cells[i]
		} else {
			r[i] = ""
		}
	}
	return r
}

// renderSummary formats the per-platform review results with a totals footer.
func renderSummary(sum review.Summary) string {
	headers := []string{"Platform", "Found", "Bypassed", "Unhidden", "Skipped", "State"}
	aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignLeft}

	rows := make([][]string, 0, len(sum.Results))
	for _, r := range sum.Results {
		rows = append(rows, []string{
			r.Platform.Label,
			strconv.Itoa(r.Found),
			strconv.Itoa(r.Bypassed),
			strconv.Itoa(r.Unhidden),
			strconv.Itoa(r.Skipped),
			r.State(),
		})
	}

	t := sum.Totals()
	state := "done"
	if sum.Cancelled {
		state = "cancelled"
	}
	footer := []string{
		"Total",
		strconv.Itoa(t.Found),
		strconv.Itoa(t.Bypassed),
		strconv.Itoa(t.Unhidden),
		strconv.Itoa(t.Skipped),
		state,
	}

	out := renderTable(headers, rows, footer, aligns)
	if reasons := formatReasons(t.BypassReasons); reasons != "" {
		out += "\nBypassed: " + reasons
	}
	return out
}

func formatReasons(reasons map[string]int) string {
	keys := make([]string, 0, len(reasons))
	for k, n := range reasons {
		if n > 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, reasons[k])
	}
	return strings.Join(parts, ", ")
}
