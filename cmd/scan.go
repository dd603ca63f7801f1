package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/Jordan474/spack/pkg/constants"
	"github.com/Jordan474/spack/pkg/display"
	"github.com/Jordan474/spack/pkg/errors"
	"github.com/Jordan474/spack/pkg/output"
	"github.com/Jordan474/spack/pkg/utils"
	"github.com/Jordan474/spack/pkg/verbose"
	"github.com/Jordan474/spack/pkg/warnings"
)

// defaultManifestPattern matches manifest files at any depth.
const defaultManifestPattern = "**/spack.yaml"

var (
	scanDirFlag    string
	scanOutputFlag string
	scanFileFlag   string
)

// discoverManifestsFunc allows tests to substitute manifest discovery.
var discoverManifestsFunc = discoverManifests

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Discover and check environment manifests",
	Long:  `Scan a directory tree for manifest files and expand each one to check it.`,
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanDirFlag, "directory", "d", ".", "Directory to scan")
	scanCmd.Flags().StringVarP(&scanOutputFlag, "output", "o", "", "Output format: json, csv, xml, yaml (default: table)")
	scanCmd.Flags().StringVarP(&scanFileFlag, "file", "f", "", "Manifest path patterns (comma-separated, supports globs)")
}

// runScan executes the scan command to discover and check manifests.
//
// Walks the directory tree for files matching the manifest patterns,
// loads and expands each one, and reports per-file outcomes.
//
// Exit behavior mirrors batch processing: all manifests valid exits 0,
// a mix of valid and invalid exits 1, all invalid exits 2.
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Command line arguments (unused)
//
// Returns:
//   - error: Returns error on walk failure or when manifests fail to check
func runScan(cmd *cobra.Command, args []string) error {
	// Validate flag compatibility before proceeding
	outputFormat := output.ParseFormat(scanOutputFlag)
	if err := output.ValidateStructuredOutputFlags(outputFormat, verboseFlag); err != nil {
		return err
	}

	collector := &warnings.Collector{}
	restoreWarnings := collector.Install()
	defer restoreWarnings()

	patterns, err := scanPatterns()
	if err != nil {
		return err
	}

	files, err := discoverManifestsFunc(scanDirFlag, patterns)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", scanDirFlag, err)
	}

	if len(files) == 0 {
		if output.IsStructuredFormat(outputFormat) {
			// Output empty result in structured format
			result := &output.ScanResult{
				Summary:   output.ScanSummary{Directory: scanDirFlag},
				Manifests: []output.ScanEntry{},
			}
			return output.WriteScanResult(os.Stdout, outputFormat, result)
		}
		fmt.Printf("No manifest files found in %s\n", scanDirFlag)
		return nil
	}

	entries := checkManifests(scanDirFlag, files, !output.IsStructuredFormat(outputFormat))

	valid, invalid := 0, 0
	var failures []error
	for _, entry := range entries {
		if display.IsFailureStatus(entry.Status) {
			invalid++
			failures = append(failures, fmt.Errorf("%s: %s", entry.File, entry.Error))
		} else {
			valid++
		}
	}

	if output.IsStructuredFormat(outputFormat) {
		if err := printScanStructured(entries, valid, invalid, collector.Lines(), outputFormat); err != nil {
			return err
		}
	} else {
		printScanTable(entries, valid, invalid)
		display.PrintWarnings(os.Stdout, collector.Lines())
	}

	switch {
	case invalid == 0:
		return nil
	case valid == 0:
		return errors.NewExitErrorf(errors.ExitFailure, "all %d manifests failed to check", invalid)
	default:
		return errors.NewPartialSuccessError(valid, invalid, failures)
	}
}

// scanPatterns resolves the manifest path patterns to match.
//
// Returns the patterns from the --file flag, or the default pattern
// when the flag is empty. Every pattern is validated before the walk
// starts so a bad flag fails fast.
//
// Returns:
//   - []string: Patterns for matching relative manifest paths
//   - error: ExitError with ExitConfigError for an invalid pattern
func scanPatterns() ([]string, error) {
	patterns := utils.Dedupe(utils.TrimAndSplit(scanFileFlag, ","))
	if len(patterns) == 0 {
		patterns = []string{defaultManifestPattern}
	}

	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.NewExitErrorf(errors.ExitConfigError, "invalid file pattern %q", pattern)
		}
	}
	return patterns, nil
}

// discoverManifests walks the directory tree and collects files whose
// path relative to dir matches any pattern.
//
// Parameters:
//   - dir: Root directory of the walk
//   - patterns: Validated glob patterns matched against slash-separated
//     relative paths
//
// Returns:
//   - []string: Matching file paths in walk order
//   - error: Walk error, if any
func discoverManifests(dir string, patterns []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		normalized := filepath.ToSlash(rel)

		for _, pattern := range patterns {
			matched, err := doublestar.Match(pattern, normalized)
			if err != nil {
				return err
			}
			if matched {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	return files, err
}

// checkManifests loads and expands each discovered manifest.
//
// A progress indicator runs on stderr during the checks when the final
// output is a table. Entries are sorted by file path for deterministic
// output.
//
// Parameters:
//   - baseDir: Base directory for relative path display
//   - files: Discovered manifest file paths
//   - showProgress: Whether to render the progress indicator
//
// Returns:
//   - []output.ScanEntry: One entry per manifest, sorted by file path
func checkManifests(baseDir string, files []string, showProgress bool) []output.ScanEntry {
	progress := display.NewStderrProgress(len(files), "Checking manifests")
	progress.SetEnabled(showProgress)

	entries := make([]output.ScanEntry, 0, len(files))
	for _, file := range files {
		entries = append(entries, checkManifest(baseDir, file))
		progress.Increment()
	}
	progress.Clear()

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].File < entries[j].File
	})
	return entries
}

// checkManifest loads one manifest and expands its root spec list.
//
// Verbose output is suppressed during the check since scan only needs
// the outcome, not per-manifest expansion traces.
//
// Parameters:
//   - baseDir: Base directory for relative path display
//   - file: Manifest file path
//
// Returns:
//   - output.ScanEntry: The check outcome for this file
func checkManifest(baseDir, file string) output.ScanEntry {
	relPath, err := filepath.Rel(baseDir, file)
	if err != nil || relPath == "" {
		relPath = filepath.Base(file)
	}

	verbose.Suppress()
	m, err := loadManifestFunc(file, "")
	verbose.Unsuppress()
	if err != nil {
		return output.ScanEntry{
			File:   relPath,
			Status: constants.StatusError,
			Error:  err.Error(),
		}
	}

	verbose.Suppress()
	specs, err := m.Specs.Specs()
	verbose.Unsuppress()
	if err != nil {
		return output.ScanEntry{
			File:        relPath,
			Definitions: len(m.DefinitionNames()),
			Status:      constants.StatusInvalid,
			Error:       err.Error(),
		}
	}

	return output.ScanEntry{
		File:        relPath,
		Definitions: len(m.DefinitionNames()),
		Specs:       len(specs),
		Status:      constants.StatusValid,
	}
}

// printScanStructured outputs scan results in a structured format.
//
// Parameters:
//   - entries: Per-manifest check outcomes
//   - valid: Number of manifests that checked out
//   - invalid: Number of manifests that failed
//   - warnings: Warning messages to include in output
//   - format: Output format to use
//
// Returns:
//   - error: Returns error on output failure
func printScanStructured(entries []output.ScanEntry, valid, invalid int, warnings []string, format output.Format) error {
	result := &output.ScanResult{
		Summary: output.ScanSummary{
			Directory:        scanDirFlag,
			TotalManifests:   len(entries),
			ValidManifests:   valid,
			InvalidManifests: invalid,
		},
		Manifests: entries,
		Warnings:  warnings,
	}

	return output.WriteScanResult(os.Stdout, format, result)
}

// printScanTable outputs scan results in table format to stdout.
//
// Parameters:
//   - entries: Per-manifest check outcomes
//   - valid: Number of manifests that checked out
//   - invalid: Number of manifests that failed
func printScanTable(entries []output.ScanEntry, valid, invalid int) {
	fmt.Printf("Scanned manifests in %s\n\n", scanDirFlag)

	table := buildScanTable(entries)
	fmt.Println(table.HeaderRow())
	fmt.Println(table.SeparatorRow())

	for _, entry := range entries {
		fmt.Println(table.FormatRow(scanRowValues(entry)...))
	}
	fmt.Printf("\nTotal manifests: %d\n", len(entries))
	fmt.Printf("Valid manifests: %d\n", valid)
	fmt.Printf("Invalid manifests: %d\n", invalid)
}

// buildScanTable creates a table formatter with calculated column widths.
//
// The ERROR column only appears when at least one manifest failed.
//
// Parameters:
//   - entries: Entries to calculate widths and column visibility from
//
// Returns:
//   - *output.Table: Configured table formatter ready for output
func buildScanTable(entries []output.ScanEntry) *output.Table {
	var hasErrors bool
	for _, entry := range entries {
		hasErrors = hasErrors || entry.Error != ""
	}

	table := output.NewTable().
		AddColumn("FILE").
		AddColumn("DEFINITIONS").
		AddColumn("SPECS").
		AddColumn("STATUS").
		AddConditionalColumn("ERROR", hasErrors)

	for _, entry := range entries {
		table.UpdateWidths(scanRowValues(entry)...)
	}

	return table
}

// scanRowValues returns the table cell values for one entry, in column
// order including hidden columns.
func scanRowValues(entry output.ScanEntry) []string {
	definitions := strconv.Itoa(entry.Definitions)
	specs := strconv.Itoa(entry.Specs)
	if display.IsFailureStatus(entry.Status) {
		specs = constants.PlaceholderNone
		if entry.Status == constants.StatusError {
			definitions = constants.PlaceholderNone
		}
	}
	return []string{
		entry.File,
		definitions,
		specs,
		display.FormatStatus(entry.Status),
		display.SafeCellValue(entry.Error),
	}
}
