package output

import (
	"fmt"
	"io"
	"strconv"
)

// WriteExpandResult writes expand results in the specified format.
//
// Parameters:
//   - w: Destination writer for the output
//   - format: Output format (FormatJSON, FormatXML, FormatYAML, or FormatCSV)
//   - result: Expand result data to write
//
// Returns:
//   - error: When the format is unsupported or the write fails
func WriteExpandResult(w io.Writer, format Format, result *ExpandResult) error {
	formatter := NewFormatter(format, w)

	switch format {
	case FormatJSON:
		return formatter.WriteJSON(expandResultDocument(result))
	case FormatXML:
		return formatter.WriteXML(result)
	case FormatYAML:
		return formatter.WriteYAML(result)
	case FormatCSV:
		return writeExpandCSV(formatter, result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// writeExpandCSV writes expand results in CSV format using the formatter.
func writeExpandCSV(f *Formatter, result *ExpandResult) error {
	headers := []string{"PACKAGE", "VERSIONS", "VARIANTS", "COMPILER", "HASH", "DEPENDENCIES", "SPEC"}
	rows := make([][]string, 0, len(result.Specs))
	for _, entry := range result.Specs {
		rows = append(rows, []string{
			entry.Package,
			entry.Versions,
			entry.Variants,
			entry.Compiler,
			entry.Hash,
			entry.Dependencies,
			entry.Spec,
		})
	}
	return f.WriteCSV(headers, rows)
}

// WriteConstraintsResult writes constraint groups in the specified format.
//
// Parameters:
//   - w: Destination writer for the output
//   - format: Output format (FormatJSON, FormatXML, FormatYAML, or FormatCSV)
//   - result: Constraints result data to write
//
// Returns:
//   - error: When the format is unsupported or the write fails
func WriteConstraintsResult(w io.Writer, format Format, result *ConstraintsResult) error {
	formatter := NewFormatter(format, w)

	switch format {
	case FormatJSON:
		return formatter.WriteJSON(result)
	case FormatXML:
		return formatter.WriteXML(result)
	case FormatYAML:
		return formatter.WriteYAML(result)
	case FormatCSV:
		return writeConstraintsCSV(formatter, result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// writeConstraintsCSV writes constraint groups in CSV format, one row
// per constraint with its group number and position.
func writeConstraintsCSV(f *Formatter, result *ConstraintsResult) error {
	headers := []string{"GROUP", "POSITION", "CONSTRAINT"}
	var rows [][]string
	for group, entry := range result.Groups {
		for position, constraint := range entry.Constraints {
			rows = append(rows, []string{
				strconv.Itoa(group + 1),
				strconv.Itoa(position + 1),
				constraint,
			})
		}
	}
	return f.WriteCSV(headers, rows)
}

// WriteValidateResult writes validation results in the specified format.
//
// Parameters:
//   - w: Destination writer for the output
//   - format: Output format (FormatJSON, FormatXML, FormatYAML, or FormatCSV)
//   - result: Validate result data to write
//
// Returns:
//   - error: When the format is unsupported or the write fails
func WriteValidateResult(w io.Writer, format Format, result *ValidateResult) error {
	formatter := NewFormatter(format, w)

	switch format {
	case FormatJSON:
		return formatter.WriteJSON(result)
	case FormatXML:
		return formatter.WriteXML(result)
	case FormatYAML:
		return formatter.WriteYAML(result)
	case FormatCSV:
		return writeValidateCSV(formatter, result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// writeValidateCSV writes validation results in CSV format using the formatter.
func writeValidateCSV(f *Formatter, result *ValidateResult) error {
	headers := []string{"LIST", "SPECS", "STATUS", "ERROR"}
	rows := make([][]string, 0, len(result.Lists))
	for _, entry := range result.Lists {
		rows = append(rows, []string{
			entry.Name,
			strconv.Itoa(entry.Specs),
			entry.Status,
			entry.Error,
		})
	}
	return f.WriteCSV(headers, rows)
}

// WriteScanResult writes scan results in the specified format.
//
// Parameters:
//   - w: Destination writer for the output
//   - format: Output format (FormatJSON, FormatXML, FormatYAML, or FormatCSV)
//   - result: Scan result data to write
//
// Returns:
//   - error: When the format is unsupported or the write fails
func WriteScanResult(w io.Writer, format Format, result *ScanResult) error {
	formatter := NewFormatter(format, w)

	switch format {
	case FormatJSON:
		return formatter.WriteJSON(result)
	case FormatXML:
		return formatter.WriteXML(result)
	case FormatYAML:
		return formatter.WriteYAML(result)
	case FormatCSV:
		return writeScanCSV(formatter, result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// writeScanCSV writes scan results in CSV format using the formatter.
func writeScanCSV(f *Formatter, result *ScanResult) error {
	headers := []string{"FILE", "DEFINITIONS", "SPECS", "STATUS", "ERROR"}
	rows := make([][]string, 0, len(result.Manifests))
	for _, entry := range result.Manifests {
		rows = append(rows, []string{
			entry.File,
			strconv.Itoa(entry.Definitions),
			strconv.Itoa(entry.Specs),
			entry.Status,
			entry.Error,
		})
	}
	return f.WriteCSV(headers, rows)
}
