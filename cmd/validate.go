package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Jordan474/spack/pkg/constants"
	"github.com/Jordan474/spack/pkg/display"
	"github.com/Jordan474/spack/pkg/errors"
	"github.com/Jordan474/spack/pkg/manifest"
	"github.com/Jordan474/spack/pkg/output"
	"github.com/Jordan474/spack/pkg/speclist"
	"github.com/Jordan474/spack/pkg/warnings"
)

var (
	validateManifestFlag string
	validateDirFlag      string
	validateOutputFlag   string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a manifest by expanding every spec list",
	Long:  `Expand each definition and the root specs list, reporting the first error of each.`,
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateManifestFlag, "manifest", "m", "", "Manifest file path (default: spack.yaml in the directory)")
	validateCmd.Flags().StringVarP(&validateDirFlag, "directory", "d", ".", "Directory containing the manifest")
	validateCmd.Flags().StringVarP(&validateOutputFlag, "output", "o", "", "Output format: json, csv, xml, yaml (default: table)")
}

// runValidate executes the validate command.
//
// Expands every definition list and the root specs list of one
// manifest. Lists are checked in document order with the root list
// last, matching the order they are built in.
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Command line arguments (unused)
//
// Returns:
//   - error: ExitError with ExitConfigError when the manifest cannot be
//     loaded or any list fails to expand
func runValidate(cmd *cobra.Command, args []string) error {
	// Validate flag compatibility before proceeding
	outputFormat := output.ParseFormat(validateOutputFlag)
	if err := output.ValidateStructuredOutputFlags(outputFormat, verboseFlag); err != nil {
		return err
	}

	collector := &warnings.Collector{}
	restoreWarnings := collector.Install()
	defer restoreWarnings()

	m, err := loadManifestFunc(validateManifestFlag, validateDirFlag)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, err)
	}

	entries := validateLists(m)

	valid, invalid := 0, 0
	for _, entry := range entries {
		if display.IsFailureStatus(entry.Status) {
			invalid++
		} else {
			valid++
		}
	}

	if output.IsStructuredFormat(outputFormat) {
		if err := printValidateStructured(m, entries, valid, invalid, collector.Lines(), outputFormat); err != nil {
			return err
		}
	} else {
		printValidateTable(entries, valid, invalid)
		display.PrintWarnings(os.Stdout, collector.Lines())
	}

	if invalid > 0 {
		return errors.NewExitErrorf(errors.ExitConfigError, "%d of %d spec lists failed to expand", invalid, len(entries))
	}
	return nil
}

// validateLists expands every list of the manifest and records the
// outcome per list.
//
// Parameters:
//   - m: The loaded manifest
//
// Returns:
//   - []output.ValidateEntry: Definition outcomes in document order,
//     then the root specs list
func validateLists(m *manifest.Manifest) []output.ValidateEntry {
	names := m.DefinitionNames()
	entries := make([]output.ValidateEntry, 0, len(names)+1)
	for _, name := range names {
		list, _ := m.Definition(name)
		entries = append(entries, validateList(list))
	}
	entries = append(entries, validateList(m.Specs))
	return entries
}

// validateList expands one list and converts the outcome to an entry.
func validateList(list *speclist.SpecList) output.ValidateEntry {
	specs, err := list.Specs()
	if err != nil {
		return output.ValidateEntry{
			Name:   list.Name(),
			Status: constants.StatusInvalid,
			Error:  err.Error(),
		}
	}
	return output.ValidateEntry{
		Name:   list.Name(),
		Specs:  len(specs),
		Status: constants.StatusValid,
	}
}

// printValidateStructured outputs validation results in a structured format.
//
// Parameters:
//   - m: The loaded manifest
//   - entries: Per-list validation outcomes
//   - valid: Number of lists that expanded cleanly
//   - invalid: Number of lists that failed
//   - warnings: Warning messages to include in output
//   - format: Output format to use
//
// Returns:
//   - error: Returns error on output failure
func printValidateStructured(m *manifest.Manifest, entries []output.ValidateEntry, valid, invalid int, warnings []string, format output.Format) error {
	result := &output.ValidateResult{
		Summary: output.ValidateSummary{
			Manifest:     m.Path,
			TotalLists:   len(entries),
			ValidLists:   valid,
			InvalidLists: invalid,
		},
		Lists:    entries,
		Warnings: warnings,
	}

	return output.WriteValidateResult(os.Stdout, format, result)
}

// printValidateTable outputs validation results in table format to stdout.
//
// Parameters:
//   - entries: Per-list validation outcomes
//   - valid: Number of lists that expanded cleanly
//   - invalid: Number of lists that failed
func printValidateTable(entries []output.ValidateEntry, valid, invalid int) {
	table := buildValidateTable(entries)

	fmt.Println(table.HeaderRow())
	fmt.Println(table.SeparatorRow())

	for _, entry := range entries {
		fmt.Println(table.FormatRow(validateRowValues(entry)...))
	}
	fmt.Println()
	display.PrintSummary(os.Stdout, display.Summary{
		Total:   len(entries),
		Valid:   valid,
		Invalid: invalid,
	})
}

// buildValidateTable creates a table formatter with calculated column widths.
//
// The ERROR column only appears when at least one list failed.
//
// Parameters:
//   - entries: Entries to calculate widths and column visibility from
//
// Returns:
//   - *output.Table: Configured table formatter ready for output
func buildValidateTable(entries []output.ValidateEntry) *output.Table {
	var hasErrors bool
	for _, entry := range entries {
		hasErrors = hasErrors || entry.Error != ""
	}

	table := output.NewTable().
		AddColumn("LIST").
		AddColumn("SPECS").
		AddColumn("STATUS").
		AddConditionalColumn("ERROR", hasErrors)

	for _, entry := range entries {
		table.UpdateWidths(validateRowValues(entry)...)
	}

	return table
}

// validateRowValues returns the table cell values for one entry, in
// column order including hidden columns.
func validateRowValues(entry output.ValidateEntry) []string {
	specs := strconv.Itoa(entry.Specs)
	if display.IsFailureStatus(entry.Status) {
		specs = constants.PlaceholderNone
	}
	return []string{
		entry.Name,
		specs,
		display.FormatStatus(entry.Status),
		display.SafeCellValue(entry.Error),
	}
}
