package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jordan474/spack/pkg/display"
	"github.com/Jordan474/spack/pkg/errors"
	"github.com/Jordan474/spack/pkg/manifest"
	"github.com/Jordan474/spack/pkg/output"
	"github.com/Jordan474/spack/pkg/speclist"
	"github.com/Jordan474/spack/pkg/warnings"
)

var (
	constraintsManifestFlag string
	constraintsDirFlag      string
	constraintsListFlag     string
	constraintsOutputFlag   string
)

var constraintsCmd = &cobra.Command{
	Use:   "constraints",
	Short: "Show the ordered constraint groups of a spec list",
	Long:  `List the constraint groups behind a spec list, one group per expanded spec.`,
	RunE:  runConstraints,
}

func init() {
	constraintsCmd.Flags().StringVarP(&constraintsManifestFlag, "manifest", "m", "", "Manifest file path (default: spack.yaml in the directory)")
	constraintsCmd.Flags().StringVarP(&constraintsDirFlag, "directory", "d", ".", "Directory containing the manifest")
	constraintsCmd.Flags().StringVarP(&constraintsListFlag, "list", "l", "", "Spec list to inspect (default: the root specs list)")
	constraintsCmd.Flags().StringVarP(&constraintsOutputFlag, "output", "o", "", "Output format: json, csv, xml, yaml (default: table)")
}

// runConstraints executes the constraints command.
//
// Expands the selected spec list down to its ordered constraint groups
// and prints them without merging each group into a single spec.
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Command line arguments (unused)
//
// Returns:
//   - error: Returns error on manifest load or expansion failure
func runConstraints(cmd *cobra.Command, args []string) error {
	// Validate flag compatibility before proceeding
	outputFormat := output.ParseFormat(constraintsOutputFlag)
	if err := output.ValidateStructuredOutputFlags(outputFormat, verboseFlag); err != nil {
		return err
	}

	collector := &warnings.Collector{}
	restoreWarnings := collector.Install()
	defer restoreWarnings()

	m, list, err := loadList(constraintsManifestFlag, constraintsDirFlag, constraintsListFlag)
	if err != nil {
		return err
	}

	groups, err := constraintGroups(list)
	if err != nil {
		return errors.NewExitError(errors.ExitConfigError, err)
	}

	if output.IsStructuredFormat(outputFormat) {
		return printConstraintsStructured(m, list, groups, collector.Lines(), outputFormat)
	}

	if len(groups) == 0 {
		display.PrintNoSpecsMessage(os.Stdout, list.Name())
		display.PrintWarnings(os.Stdout, collector.Lines())
		return nil
	}

	display.PrintConstraintGroups(os.Stdout, groups)
	fmt.Printf("\nTotal groups: %d\n", len(groups))
	display.PrintWarnings(os.Stdout, collector.Lines())
	return nil
}

// constraintGroups renders the constraint groups of a list to strings.
//
// Parameters:
//   - list: The spec list to expand
//
// Returns:
//   - [][]string: One group of constraint strings per future spec
//   - error: Expansion error from the list
func constraintGroups(list *speclist.SpecList) ([][]string, error) {
	constraints, err := list.Constraints()
	if err != nil {
		return nil, err
	}

	groups := make([][]string, 0, len(constraints))
	for _, group := range constraints {
		rendered := make([]string, 0, len(group))
		for _, constraint := range group {
			rendered = append(rendered, constraint.String())
		}
		groups = append(groups, rendered)
	}
	return groups, nil
}

// printConstraintsStructured outputs constraint groups in a structured format.
//
// Parameters:
//   - m: The loaded manifest
//   - list: The expanded spec list
//   - groups: Rendered constraint groups
//   - warnings: Warning messages to include in output
//   - format: Output format to use
//
// Returns:
//   - error: Returns error on output failure
func printConstraintsStructured(m *manifest.Manifest, list *speclist.SpecList, groups [][]string, warnings []string, format output.Format) error {
	rendered := make([]output.ConstraintGroup, 0, len(groups))
	for _, group := range groups {
		rendered = append(rendered, output.ConstraintGroup{Constraints: group})
	}

	result := &output.ConstraintsResult{
		Summary: output.ConstraintsSummary{
			Manifest:    m.Path,
			List:        list.Name(),
			TotalGroups: len(rendered),
		},
		Groups:   rendered,
		Warnings: warnings,
	}

	return output.WriteConstraintsResult(os.Stdout, format, result)
}
