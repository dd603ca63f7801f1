package output

import (
	"strings"

	"github.com/Jordan474/spack/pkg/utils"
)

// Column represents a single table column with its header and current width.
//
// Fields:
//   - Header: The display text for this column's header
//   - Width: The current display width for this column in characters
//   - hidden: Whether this column is excluded from output
type Column struct {
	Header string
	Width  int
	hidden bool
}

// Table is a column-aligned text table with dynamic widths. Width
// calculations are Unicode-aware so specs with wide characters still
// line up.
//
// Fields:
//   - columns: List of columns with headers, widths, and visibility
//   - separator: String between columns (default two spaces)
type Table struct {
	columns   []Column
	separator string
}

// NewTable creates a new table formatter and returns a pointer to it.
func NewTable() *Table {
	return &Table{
		columns:   make([]Column, 0),
		separator: "  ",
	}
}

// WithSeparator sets a custom column separator and returns the table.
//
// Parameters:
//   - sep: The string to use between columns
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) WithSeparator(sep string) *Table {
	t.separator = sep
	return t
}

// AddColumn adds a column with the given header and returns the table.
//
// The initial width is the display width of the header.
//
// Parameters:
//   - header: The text to display in the column header
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) AddColumn(header string) *Table {
	t.columns = append(t.columns, Column{
		Header: header,
		Width:  utils.DisplayWidth(header),
	})
	return t
}

// AddConditionalColumn adds a column with configurable visibility and
// returns the table.
//
// This is used for columns that only appear when the data calls for
// them, such as a COMPILER column hidden when no spec constrains one.
//
// Parameters:
//   - header: The text to display in the column header
//   - visible: Whether the column should be visible
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) AddConditionalColumn(header string, visible bool) *Table {
	t.columns = append(t.columns, Column{
		Header: header,
		Width:  utils.DisplayWidth(header),
		hidden: !visible,
	})
	return t
}

// UpdateWidths grows column widths to fit a row of values and returns
// the table.
//
// Parameters:
//   - values: One string per column, in column order
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) UpdateWidths(values ...string) *Table {
	for i, val := range values {
		if i < len(t.columns) {
			width := utils.DisplayWidth(val)
			if width > t.columns[i].Width {
				t.columns[i].Width = width
			}
		}
	}
	return t
}

// HeaderRow returns the formatted header row string. Hidden columns
// are excluded.
func (t *Table) HeaderRow() string {
	var parts []string
	for _, col := range t.columns {
		if !col.hidden {
			parts = append(parts, utils.ToWidth(col.Header, col.Width))
		}
	}
	return strings.Join(parts, t.separator)
}

// SeparatorRow returns a row of dashes matching the visible column
// widths, used as a divider between the header and the data rows.
func (t *Table) SeparatorRow() string {
	var parts []string
	for _, col := range t.columns {
		if !col.hidden {
			parts = append(parts, strings.Repeat("-", col.Width))
		}
	}
	return strings.Join(parts, t.separator)
}

// FormatRow formats a data row with proper padding for each column.
//
// Values map to columns by position, including hidden ones, so callers
// always pass the full row. Missing values render as empty cells.
//
// Parameters:
//   - values: One string per column, in column order
//
// Returns:
//   - string: Formatted row with values separated by the separator
func (t *Table) FormatRow(values ...string) string {
	var parts []string
	for i, col := range t.columns {
		if !col.hidden {
			val := ""
			if i < len(values) {
				val = values[i]
			}
			parts = append(parts, utils.ToWidth(val, col.Width))
		}
	}
	return strings.Join(parts, t.separator)
}

// ColumnCount returns the total number of columns including hidden ones.
func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// VisibleColumnCount returns the number of visible columns.
func (t *Table) VisibleColumnCount() int {
	count := 0
	for _, col := range t.columns {
		if !col.hidden {
			count++
		}
	}
	return count
}
