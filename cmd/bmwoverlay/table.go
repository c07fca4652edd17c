package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// tableColumn configures one column of a rendered table. A zero WidthMax
// leaves the column unbounded.
type tableColumn struct {
	Title    string
	Align    text.Align
	WidthMax int
}

// tableLayout pairs the columns with row separation. Captions span several
// lines, so their rows are separated to keep each cue readable.
type tableLayout struct {
	Columns      []tableColumn
	SeparateRows bool
}

var (
	captionLayout = tableLayout{
		Columns: []tableColumn{
			{Title: "#", Align: text.AlignRight},
			{Title: "Start"},
			{Title: "End"},
			{Title: "Caption"},
		},
		SeparateRows: true,
	}
	historyLayout = tableLayout{
		Columns: []tableColumn{
			{Title: "Started"},
			{Title: "Outcome"},
			{Title: "Entries", Align: text.AlignRight},
			{Title: "Took", Align: text.AlignRight},
			{Title: "Folder"},
			{Title: "Detail", WidthMax: 60},
		},
	}
	settingsLayout = tableLayout{
		Columns: []tableColumn{
			{Title: "Setting"},
			{Title: "Value"},
		},
	}
)

func renderTable(layout tableLayout, rows [][]string) string {
	if len(layout.Columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Options.SeparateRows = layout.SeparateRows

	header := make(table.Row, len(layout.Columns))
	configs := make([]table.ColumnConfig, 0, len(layout.Columns))
	for i, column := range layout.Columns {
		header[i] = column.Title
		cfg := table.ColumnConfig{
			Number:      i + 1,
			Align:       column.Align,
			AlignHeader: text.AlignLeft,
		}
		if column.WidthMax > 0 {
			cfg.WidthMax = column.WidthMax
			cfg.WidthMaxEnforcer = text.WrapSoft
		}
		configs = append(configs, cfg)
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		r := make(table.Row, len(layout.Columns))
		for i := range r {
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
