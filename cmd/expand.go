package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jordan474/spack/pkg/display"
	"github.com/Jordan474/spack/pkg/errors"
	"github.com/Jordan474/spack/pkg/manifest"
	"github.com/Jordan474/spack/pkg/output"
	"github.com/Jordan474/spack/pkg/spec"
	"github.com/Jordan474/spack/pkg/speclist"
	"github.com/Jordan474/spack/pkg/warnings"
)

var (
	expandManifestFlag string
	expandDirFlag      string
	expandListFlag     string
	expandOutputFlag   string
)

var expandCmd = &cobra.Command{
	Use:   "expand",
	Short: "Expand a manifest spec list into concrete specs",
	Long:  `Resolve references, matrices, and exclusions into the final ordered spec list.`,
	RunE:  runExpand,
}

func init() {
	expandCmd.Flags().StringVarP(&expandManifestFlag, "manifest", "m", "", "Manifest file path (default: spack.yaml in the directory)")
	expandCmd.Flags().StringVarP(&expandDirFlag, "directory", "d", ".", "Directory containing the manifest")
	expandCmd.Flags().StringVarP(&expandListFlag, "list", "l", "", "Spec list to expand (default: the root specs list)")
	expandCmd.Flags().StringVarP(&expandOutputFlag, "output", "o", "", "Output format: json, csv, xml, yaml (default: table)")
}

// runExpand executes the expand command to display concrete specs.
//
// Expands the selected spec list, decomposes each spec into its
// components, and prints the result as a table or structured output.
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Command line arguments (unused)
//
// Returns:
//   - error: Returns error on manifest load or expansion failure
func runExpand(cmd *cobra.Command, args []string) error {
	// Validate flag compatibility before proceeding
	outputFormat := output.ParseFormat(expandOutputFlag)
	if err := output.ValidateStructuredOutputFlags(outputFormat, verboseFlag); err != nil {
		return err
	}

	collector := &warnings.Collector{}
	restoreWarnings := collector.Install()
	defer restoreWarnings()

	m, list, err := loadList(expandManifestFlag, expandDirFlag, expandListFlag)
	if err != nil {
		return err
	}

	specs, err := list.Specs()
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, err)
	}

	entries := buildExpandEntries(specs)

	if output.IsStructuredFormat(outputFormat) {
		return printExpandStructured(m, list, entries, collector.Lines(), outputFormat)
	}

	if len(entries) == 0 {
		display.PrintNoSpecsMessage(os.Stdout, list.Name())
		display.PrintWarnings(os.Stdout, collector.Lines())
		return nil
	}

	printExpandTable(entries)
	display.PrintWarnings(os.Stdout, collector.Lines())
	return nil
}

// buildExpandEntries decomposes expanded specs into output entries.
//
// Specs parsed from a manifest are constraint records, so each entry
// carries the per-component display fields alongside the canonical
// string. Specs of other implementations keep only the canonical
// string.
//
// Parameters:
//   - specs: Expanded specs in list order
//
// Returns:
//   - []output.ExpandEntry: One entry per spec
func buildExpandEntries(specs []speclist.Spec) []output.ExpandEntry {
	entries := make([]output.ExpandEntry, 0, len(specs))
	for _, s := range specs {
		entry := output.ExpandEntry{Spec: s.String()}
		if rec, ok := s.(*spec.Spec); ok {
			entry.Package = rec.Name
			entry.Versions = rec.VersionsString()
			entry.Variants = rec.VariantsString()
			entry.Compiler = rec.CompilerString()
			entry.Hash = rec.Hash
			entry.Dependencies = rec.DependenciesString()
		}
		entries = append(entries, entry)
	}
	return entries
}

// printExpandStructured outputs expand results in a structured format.
//
// Parameters:
//   - m: The loaded manifest
//   - list: The expanded spec list
//   - entries: Decomposed spec entries
//   - warnings: Warning messages to include in output
//   - format: Output format to use
//
// Returns:
//   - error: Returns error on output failure
func printExpandStructured(m *manifest.Manifest, list *speclist.SpecList, entries []output.ExpandEntry, warnings []string, format output.Format) error {
	result := &output.ExpandResult{
		Summary: output.ExpandSummary{
			Manifest:   m.Path,
			List:       list.Name(),
			TotalSpecs: len(entries),
		},
		Specs:    entries,
		Warnings: warnings,
	}

	return output.WriteExpandResult(os.Stdout, format, result)
}

// printExpandTable outputs expand results in table format to stdout.
//
// Parameters:
//   - entries: Decomposed spec entries to display
func printExpandTable(entries []output.ExpandEntry) {
	table := buildExpandTable(entries)

	fmt.Println(table.HeaderRow())
	fmt.Println(table.SeparatorRow())

	for _, entry := range entries {
		fmt.Println(table.FormatRow(expandRowValues(entry)...))
	}
	fmt.Printf("\nTotal specs: %d\n", len(entries))
}

// buildExpandTable creates a table formatter with calculated column widths.
//
// The component columns only appear when at least one spec constrains
// that component, keeping simple lists narrow.
//
// Parameters:
//   - entries: Entries to calculate widths and column visibility from
//
// Returns:
//   - *output.Table: Configured table formatter ready for output
func buildExpandTable(entries []output.ExpandEntry) *output.Table {
	var hasVariants, hasCompiler, hasHash, hasDeps bool
	for _, entry := range entries {
		hasVariants = hasVariants || entry.Variants != ""
		hasCompiler = hasCompiler || entry.Compiler != ""
		hasHash = hasHash || entry.Hash != ""
		hasDeps = hasDeps || entry.Dependencies != ""
	}

	table := output.NewTable().
		AddColumn("PACKAGE").
		AddColumn("VERSIONS").
		AddConditionalColumn("VARIANTS", hasVariants).
		AddConditionalColumn("COMPILER", hasCompiler).
		AddConditionalColumn("HASH", hasHash).
		AddConditionalColumn("DEPENDENCIES", hasDeps).
		AddColumn("SPEC")

	for _, entry := range entries {
		table.UpdateWidths(expandRowValues(entry)...)
	}

	return table
}

// expandRowValues returns the table cell values for one entry, in
// column order including hidden columns.
func expandRowValues(entry output.ExpandEntry) []string {
	return []string{
		display.SafeCellValue(entry.Package),
		display.SafeVersionsValue(entry.Versions),
		display.SafeCellValue(entry.Variants),
		display.SafeCellValue(entry.Compiler),
		display.SafeCellValue(entry.Hash),
		display.SafeCellValue(entry.Dependencies),
		entry.Spec,
	}
}
