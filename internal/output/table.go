package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table lays out rows in columns sized by terminal display width,
// so Cyrillic names and wide glyphs stay aligned.
type Table struct {
	headers   []string
	rows      [][]string
	widths    []int
	separator string
}

// NewTable creates a table with the given column headers
func NewTable(headers ...string) *Table {
	t := &Table{
		headers:   headers,
		widths:    make([]int, len(headers)),
		separator: "  ",
	}
	for i, h := range headers {
		t.widths[i] = runewidth.StringWidth(h)
	}
	return t
}

// AddRow appends a row. Missing cells are rendered empty and extra cells are dropped.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	for i, c := range row {
		if w := runewidth.StringWidth(c); w > t.widths[i] {
			t.widths[i] = w
		}
	}
	t.rows = append(t.rows, row)
}

// Render writes the header, a rule and every row
func (t *Table) Render(w io.Writer) error {
	if err := t.writeLine(w, t.headers); err != nil {
		return err
	}

	rule := make([]string, len(t.widths))
	for i, width := range t.widths {
		rule[i] = strings.Repeat("-", width)
	}
	if err := t.writeLine(w, rule); err != nil {
		return err
	}

	for _, row := range t.rows {
		if err := t.writeLine(w, row); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) writeLine(w io.Writer, cells []string) error {
	padded := make([]string, len(cells))
	for i, c := range cells {
		if i == len(cells)-1 {
			padded[i] = c
			continue
		}
		padded[i] = runewidth.FillRight(c, t.widths[i])
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(padded, t.separator), " "))
	return err
}
