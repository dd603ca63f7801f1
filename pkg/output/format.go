// Package output renders command results for terminals and machine
// consumers. The default is a column-aligned table; CSV, JSON, XML, and
// YAML are available for scripting.
package output

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format represents the output format type.
type Format string

const (
	// FormatTable is the default terminal table output.
	FormatTable Format = "table"
	// FormatCSV outputs data as comma-separated values.
	FormatCSV Format = "csv"
	// FormatJSON outputs data as JSON.
	FormatJSON Format = "json"
	// FormatXML outputs data as XML.
	FormatXML Format = "xml"
	// FormatYAML outputs data as YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format string into a Format type.
//
// The parsing is case-insensitive. Valid values are "csv", "json",
// "xml", and "yaml". Any unrecognized format returns FormatTable as
// the default.
//
// Parameters:
//   - s: Format string to parse (e.g., "csv", "JSON", "YaML")
//
// Returns:
//   - Format: The parsed format, or FormatTable if unrecognized
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "csv":
		return FormatCSV
	case "json":
		return FormatJSON
	case "xml":
		return FormatXML
	case "yaml":
		return FormatYAML
	default:
		return FormatTable
	}
}

// IsStructuredFormat returns true if the format requires structured
// output rather than the interactive table.
//
// Parameters:
//   - f: The format to check
//
// Returns:
//   - bool: true for CSV, JSON, XML, and YAML; false for table
func IsStructuredFormat(f Format) bool {
	return f == FormatCSV || f == FormatJSON || f == FormatXML || f == FormatYAML
}

// Formatter handles writing data in a specific format.
//
// Fields:
//   - format: The output format
//   - writer: Destination for formatted output
type Formatter struct {
	format Format
	writer io.Writer
}

// NewFormatter creates a new formatter for the given format and writer.
//
// Parameters:
//   - format: The desired output format
//   - writer: Destination for formatted output
//
// Returns:
//   - *Formatter: A new formatter instance ready to write data
func NewFormatter(format Format, writer io.Writer) *Formatter {
	return &Formatter{
		format: format,
		writer: writer,
	}
}

// Format returns the current format.
func (f *Formatter) Format() Format {
	return f.format
}

// WriteCSV writes data as CSV to the output writer.
//
// Note: csv.Writer buffers all writes and only reports errors via
// Error() after Flush().
//
// Parameters:
//   - headers: Column headers for the CSV
//   - rows: Data rows, each with the same number of columns as headers
//
// Returns:
//   - error: When write or flush fails, returns the underlying error
func (f *Formatter) WriteCSV(headers []string, rows [][]string) error {
	w := csv.NewWriter(f.writer)

	_ = w.Write(headers)
	for _, row := range rows {
		_ = w.Write(row)
	}

	w.Flush()
	return w.Error()
}

// WriteJSON writes data as compact JSON to the output writer.
//
// The output is a single line for easy parsing by tools.
//
// Parameters:
//   - data: Data structure to encode as JSON
//
// Returns:
//   - error: When encoding fails, returns the underlying error
func (f *Formatter) WriteJSON(data any) error {
	encoder := json.NewEncoder(f.writer)
	return encoder.Encode(data)
}

// WriteXML writes data as XML to the output writer.
//
// It performs the following operations:
//   - Step 1: Writes the XML header
//   - Step 2: Encodes the data with 2-space indentation
//   - Step 3: Adds a trailing newline
//
// Parameters:
//   - data: Data structure to encode as XML (must have xml tags)
//
// Returns:
//   - error: When encoding fails, returns the underlying error
func (f *Formatter) WriteXML(data any) error {
	_, _ = fmt.Fprint(f.writer, xml.Header)
	encoder := xml.NewEncoder(f.writer)
	encoder.Indent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(f.writer)
	return nil
}

// ValidateStructuredOutputFlags checks flag compatibility for
// structured output.
//
// Verbose debug output interleaves with the document stream, so it is
// rejected whenever a structured format is selected.
//
// Parameters:
//   - format: The requested output format
//   - verbose: Whether verbose output is enabled
//
// Returns:
//   - error: When verbose is combined with a structured format
func ValidateStructuredOutputFlags(format Format, verbose bool) error {
	if IsStructuredFormat(format) && verbose {
		return fmt.Errorf("--verbose is not supported with %s output", format)
	}
	return nil
}

// WriteYAML writes data as YAML to the output writer.
//
// The document is indented with 2 spaces to match the manifest style.
//
// Parameters:
//   - data: Data structure to encode as YAML
//
// Returns:
//   - error: When encoding or closing the encoder fails
func (f *Formatter) WriteYAML(data any) error {
	encoder := yaml.NewEncoder(f.writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		_ = encoder.Close()
		return err
	}
	return encoder.Close()
}
