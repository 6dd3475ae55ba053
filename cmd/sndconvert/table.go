package main

import (
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"sndconvert/internal/batchrun"
	"sndconvert/internal/encoding"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func newTableWriter(headers []string, aligns []columnAlignment) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	columnConfigs := make([]table.ColumnConfig, 0, len(headers))
	for i := range headers {
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
	return tw
}

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	if len(headers) == 0 {
		return ""
	}
	tw := newTableWriter(headers, aligns)
	for _, row := range rows {
		r := make(table.Row, len(headers))
		for i := range headers {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}
	return tw.Render()
}

// renderSummary tabulates the outcome counts of a run, followed by the files
// that failed.
func renderSummary(report batchrun.Report) string {
	summary := report.Summary
	tw := newTableWriter([]string{"Outcome", "Files"}, []columnAlignment{alignLeft, alignRight})
	for _, outcome := range encoding.Outcomes {
		tw.AppendRow(table.Row{outcomeLabel(outcome), strconv.Itoa(summary.Count(outcome))})
	}
	tw.AppendFooter(table.Row{"Total", strconv.Itoa(summary.Total())})

	var b strings.Builder
	b.WriteString(tw.Render())
	if len(summary.Failures) > 0 {
		rows := make([][]string, 0, len(summary.Failures))
		for _, failure := range summary.Failures {
			reason := failure.Reason
			if failure.Err != nil {
				reason = failure.Err.Error()
			}
			rows = append(rows, []string{failure.Path, reason})
		}
		b.WriteString("\n")
		b.WriteString(renderTable([]string{"Failed file", "Error"}, rows, nil))
	}
	return b.String()
}

func outcomeLabel(outcome encoding.Outcome) string {
	return strings.ReplaceAll(string(outcome), "_", " ")
}
