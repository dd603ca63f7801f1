package output

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestParseFormat tests the behavior of ParseFormat.
//
// It verifies:
//   - Parses valid format strings case-insensitively
//   - Returns FormatTable for unrecognized formats
func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{"csv", FormatCSV},
		{"CSV", FormatCSV},
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"xml", FormatXML},
		{"yaml", FormatYAML},
		{"YaML", FormatYAML},
		{"table", FormatTable},
		{"", FormatTable},
		{"unknown", FormatTable},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ParseFormat(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestIsStructuredFormat tests the behavior of IsStructuredFormat.
//
// It verifies:
//   - Returns true for CSV, JSON, XML, and YAML formats
//   - Returns false for table format
func TestIsStructuredFormat(t *testing.T) {
	assert.True(t, IsStructuredFormat(FormatCSV))
	assert.True(t, IsStructuredFormat(FormatJSON))
	assert.True(t, IsStructuredFormat(FormatXML))
	assert.True(t, IsStructuredFormat(FormatYAML))
	assert.False(t, IsStructuredFormat(FormatTable))
}

// TestFormatter_WriteCSV tests the behavior of WriteCSV.
//
// It verifies:
//   - Writes the header row followed by all data rows
func TestFormatter_WriteCSV(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatCSV, &buf)

	err := f.WriteCSV([]string{"PACKAGE", "SPEC"}, [][]string{
		{"zlib", "zlib@1.2"},
		{"hdf5", "hdf5+mpi"},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "PACKAGE,SPEC", lines[0])
	assert.Equal(t, "zlib,zlib@1.2", lines[1])
	assert.Equal(t, "hdf5,hdf5+mpi", lines[2])
}

// TestFormatter_WriteJSON tests the behavior of WriteJSON.
//
// It verifies:
//   - Encodes data as a single JSON document ending in a newline
func TestFormatter_WriteJSON(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatJSON, &buf)

	err := f.WriteJSON(map[string]any{"list": "specs", "total": 2})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "specs", decoded["list"])
	assert.Equal(t, float64(2), decoded["total"])
}

// TestFormatter_WriteXML tests the behavior of WriteXML.
//
// It verifies:
//   - Output starts with the XML header
//   - Elements are indented and followed by a trailing newline
func TestFormatter_WriteXML(t *testing.T) {
	type payload struct {
		XMLName xml.Name `xml:"payload"`
		Name    string   `xml:"name"`
	}

	var buf bytes.Buffer
	f := NewFormatter(FormatXML, &buf)

	err := f.WriteXML(payload{Name: "zlib"})
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, xml.Header))
	assert.Contains(t, out, "<name>zlib</name>")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

// TestFormatter_WriteYAML tests the behavior of WriteYAML.
//
// It verifies:
//   - Encodes data as a YAML document that round-trips
//   - Nested structures use 2-space indentation
func TestFormatter_WriteYAML(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatYAML, &buf)

	err := f.WriteYAML(map[string][]string{"specs": {"zlib@1.2"}})
	require.NoError(t, err)

	var decoded map[string][]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, []string{"zlib@1.2"}, decoded["specs"])
	assert.Contains(t, buf.String(), "specs:")
	assert.Contains(t, buf.String(), "- zlib@1.2")
}

// TestFormatter_Format tests the behavior of Format.
//
// It verifies:
//   - Returns the format the formatter was created with
func TestFormatter_Format(t *testing.T) {
	f := NewFormatter(FormatYAML, &bytes.Buffer{})
	assert.Equal(t, FormatYAML, f.Format())
}

// TestValidateStructuredOutputFlags tests the behavior of ValidateStructuredOutputFlags.
//
// It verifies:
//   - Returns nil for non-structured formats regardless of the verbose flag
//   - Returns an error when verbose is combined with a structured format
//   - The error message names the conflicting flag
func TestValidateStructuredOutputFlags(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		verbose bool
		wantErr bool
	}{
		{"table without verbose", FormatTable, false, false},
		{"table with verbose", FormatTable, true, false},
		{"json without verbose", FormatJSON, false, false},
		{"json with verbose", FormatJSON, true, true},
		{"csv with verbose", FormatCSV, true, true},
		{"xml with verbose", FormatXML, true, true},
		{"yaml with verbose", FormatYAML, true, true},
		{"yaml without verbose", FormatYAML, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStructuredOutputFlags(tt.format, tt.verbose)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "--verbose is not supported")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
