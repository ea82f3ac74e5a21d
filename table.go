// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rstdoc

package rstdoc

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// defaultTableClass is emitted when TableOptions.Class is empty.
	defaultTableClass = "longtable"
	// ClassNone disables the :class: option of a rendered table.
	ClassNone = "-"
	// tableIndent is the directive body indent for grid table lines.
	tableIndent = "    "
)

// Table accumulates rows for an RST grid table. The column count is fixed at
// construction; cell text may span multiple lines.
type Table struct {
	cols []string
	rows [][]string
}

// TableOptions configures table directive rendering.
type TableOptions struct {
	// Title is optional caption text for the table directive.
	Title string
	// Class is the table CSS/latex class; empty selects longtable and
	// ClassNone suppresses the option.
	Class string
	// Label is an optional cross-reference label emitted before the table.
	Label string
	// LatexColumns is an optional tabularcolumns spec, for example
	// "|p{4cm}|p{1cm}|p{10cm}|".
	LatexColumns string
	// Widths is an optional relative column width list.
	Widths []int
	// RenderEmpty renders header-only tables instead of skipping them.
	RenderEmpty bool
}

// NewTable returns a table with the given column labels.
func NewTable(cols ...string) *Table {
	return &Table{cols: cols}
}

// NewTableSize returns a table with the given number of unlabeled columns.
func NewTableSize(cols int) *Table {
	return &Table{cols: make([]string, cols)}
}

// NumRows returns the number of data rows in the table.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// NumCols returns the number of columns in the table.
func (t *Table) NumCols() int {
	return len(t.cols)
}

// AddRow appends one row. Missing values are filled with empty cells and
// extra values are dropped to keep the column count invariant.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.cols))
	for i := range row {
		if i < len(values) {
			row[i] = values[i]
		}
	}

	t.rows = append(t.rows, row)
}

// SetCell replaces the text of one existing cell.
func (t *Table) SetCell(row, col int, text string) error {
	if col < 0 || col >= len(t.cols) {
		return fmt.Errorf("%w: col=%d max=%d", ErrTableIndex, col, len(t.cols)-1)
	}

	if row < 0 || row >= len(t.rows) {
		return fmt.Errorf("%w: row=%d max=%d", ErrTableIndex, row, len(t.rows)-1)
	}

	t.rows[row][col] = text
	return nil
}

// SetColumn replaces one column label.
func (t *Table) SetColumn(col int, title string) error {
	if col < 0 || col >= len(t.cols) {
		return fmt.Errorf("%w: col=%d max=%d", ErrTableIndex, col, len(t.cols)-1)
	}

	t.cols[col] = title
	return nil
}

// Render appends the table directive and grid markup to the document.
// Tables without data rows are skipped unless RenderEmpty is set.
func (t *Table) Render(doc *Document, opt TableOptions) {
	if len(t.rows) == 0 && !opt.RenderEmpty {
		return
	}

	widths := t.columnWidths()

	doc.AddNewline()
	if opt.LatexColumns != "" {
		doc.AddText(".. tabularcolumns:: " + opt.LatexColumns + Newline)
	}

	if opt.Label != "" {
		doc.AddLabel(opt.Label)
	}

	doc.AddText(".. table::")
	if opt.Title != "" {
		doc.AddText(" " + opt.Title)
	}

	doc.AddNewline()
	if len(opt.Widths) > 0 {
		parts := make([]string, 0, len(opt.Widths))
		for _, w := range opt.Widths {
			parts = append(parts, strconv.Itoa(w))
		}

		doc.AddText(tableIndent + ":widths: " + strings.Join(parts, " ") + Newline)
	}

	class := opt.Class
	if class == "" {
		class = defaultTableClass
	}

	if class != ClassNone {
		doc.AddText(tableIndent + ":class: " + class + Newline)
	}

	doc.AddNewline()

	doc.AddText(rowDivider(widths, '-'))
	doc.AddText(renderRow(widths, t.cols))
	doc.AddText(rowDivider(widths, '='))

	for _, row := range t.rows {
		doc.AddText(renderRow(widths, row))
		doc.AddText(rowDivider(widths, '-'))
	}

	doc.AddNewline()
	doc.AddNewline()
}

// columnWidths computes per-column width as the longest cell line over the
// header and all rows, plus two padding columns.
func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.cols))
	measure := func(row []string) {
		for i, cell := range row {
			if w := cellWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	measure(t.cols)
	for _, row := range t.rows {
		measure(row)
	}

	for i := range widths {
		widths[i] += 2
	}

	return widths
}

// cellWidth returns the width of the longest line in a cell.
func cellWidth(cell string) int {
	width := 0
	for _, line := range strings.Split(cell, Newline) {
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
	}

	return width
}

// rowDivider renders one horizontal divider line for the given widths.
func rowDivider(widths []int, style byte) string {
	var out strings.Builder
	out.WriteString(tableIndent)
	for _, w := range widths {
		out.WriteByte('+')
		out.WriteString(strings.Repeat(string(style), w+2))
	}

	out.WriteString("+" + Newline)
	return out.String()
}

// renderRow renders one table row. Multi-line cells expand the row to the
// line count of the tallest cell; shorter cells are padded with empty lines.
func renderRow(widths []int, row []string) string {
	lines := make([][]string, len(row))
	height := 0
	for i, cell := range row {
		lines[i] = strings.Split(cell, Newline)
		if len(lines[i]) > height {
			height = len(lines[i])
		}
	}

	var out strings.Builder
	for l := 0; l < height; l++ {
		out.WriteString(tableIndent + "|")
		for i := range row {
			cell := ""
			if l < len(lines[i]) {
				cell = lines[i][l]
			}

			out.WriteString(padCell(cell, widths[i]) + "|")
		}

		out.WriteString(Newline)
	}

	return out.String()
}

// padCell pads cell text with spaces to the target column width.
func padCell(cell string, width int) string {
	pad := width - utf8.RuneCountInString(cell) + 1
	if pad < 1 {
		pad = 1
	}

	return " " + cell + strings.Repeat(" ", pad)
}
