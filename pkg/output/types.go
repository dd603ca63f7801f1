package output

import "encoding/xml"

// ExpandResult represents the output data for the expand command.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Summary: Aggregate statistics about the expansion
//   - Specs: The fully constrained specs in list order
//   - Warnings: Warnings collected during expansion (omitted if empty)
type ExpandResult struct {
	XMLName  xml.Name      `json:"-" yaml:"-" xml:"expandResult"`
	Summary  ExpandSummary `json:"summary" yaml:"summary" xml:"summary"`
	Specs    []ExpandEntry `json:"specs" yaml:"specs" xml:"specs>spec"`
	Warnings []string      `json:"warnings,omitempty" yaml:"warnings,omitempty" xml:"warnings>warning,omitempty"`
}

// ExpandSummary holds summary statistics for expand results.
//
// Fields:
//   - Manifest: Path of the manifest that was expanded
//   - List: Name of the spec list that was expanded
//   - TotalSpecs: Number of specs after expansion
type ExpandSummary struct {
	Manifest   string `json:"manifest" yaml:"manifest" xml:"manifest"`
	List       string `json:"list" yaml:"list" xml:"list"`
	TotalSpecs int    `json:"total_specs" yaml:"total_specs" xml:"totalSpecs"`
}

// ExpandEntry represents a single expanded spec.
//
// Fields:
//   - Package: Root package name, empty for anonymous constraints
//   - Versions: Version range of the root package (omitted if empty)
//   - Variants: Variant settings of the root package (omitted if empty)
//   - Compiler: Compiler constraint (omitted if empty)
//   - Hash: Hash prefix reference (omitted if empty)
//   - Dependencies: Space-separated dependency constraints (omitted if empty)
//   - Spec: Full canonical spec string
type ExpandEntry struct {
	Package      string `json:"package" yaml:"package" xml:"package"`
	Versions     string `json:"versions,omitempty" yaml:"versions,omitempty" xml:"versions,omitempty"`
	Variants     string `json:"variants,omitempty" yaml:"variants,omitempty" xml:"variants,omitempty"`
	Compiler     string `json:"compiler,omitempty" yaml:"compiler,omitempty" xml:"compiler,omitempty"`
	Hash         string `json:"hash,omitempty" yaml:"hash,omitempty" xml:"hash,omitempty"`
	Dependencies string `json:"dependencies,omitempty" yaml:"dependencies,omitempty" xml:"dependencies,omitempty"`
	Spec         string `json:"spec" yaml:"spec" xml:"spec"`
}

// ConstraintsResult represents the output data for the constraints command.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Summary: Aggregate statistics about the constraint groups
//   - Groups: Ordered constraint groups, one per future spec
//   - Warnings: Warnings collected during expansion (omitted if empty)
type ConstraintsResult struct {
	XMLName  xml.Name           `json:"-" yaml:"-" xml:"constraintsResult"`
	Summary  ConstraintsSummary `json:"summary" yaml:"summary" xml:"summary"`
	Groups   []ConstraintGroup  `json:"groups" yaml:"groups" xml:"groups>group"`
	Warnings []string           `json:"warnings,omitempty" yaml:"warnings,omitempty" xml:"warnings>warning,omitempty"`
}

// ConstraintsSummary holds summary statistics for constraints results.
//
// Fields:
//   - Manifest: Path of the manifest that was expanded
//   - List: Name of the spec list that was expanded
//   - TotalGroups: Number of constraint groups
type ConstraintsSummary struct {
	Manifest    string `json:"manifest" yaml:"manifest" xml:"manifest"`
	List        string `json:"list" yaml:"list" xml:"list"`
	TotalGroups int    `json:"total_groups" yaml:"total_groups" xml:"totalGroups"`
}

// ConstraintGroup represents one ordered group of constraints.
//
// Fields:
//   - Constraints: The constraints in application order
type ConstraintGroup struct {
	Constraints []string `json:"constraints" yaml:"constraints" xml:"constraints>constraint"`
}

// ValidateResult represents the output data for the validate command.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Summary: Aggregate statistics about the validation
//   - Lists: Per-list validation outcomes
//   - Warnings: Warnings collected during validation (omitted if empty)
type ValidateResult struct {
	XMLName  xml.Name        `json:"-" yaml:"-" xml:"validateResult"`
	Summary  ValidateSummary `json:"summary" yaml:"summary" xml:"summary"`
	Lists    []ValidateEntry `json:"lists" yaml:"lists" xml:"lists>list"`
	Warnings []string        `json:"warnings,omitempty" yaml:"warnings,omitempty" xml:"warnings>warning,omitempty"`
}

// ValidateSummary holds summary statistics for validate results.
//
// Fields:
//   - Manifest: Path of the manifest that was validated
//   - TotalLists: Number of lists checked, including the root specs list
//   - ValidLists: Number of lists that expanded without errors
//   - InvalidLists: Number of lists that failed to expand
type ValidateSummary struct {
	Manifest     string `json:"manifest" yaml:"manifest" xml:"manifest"`
	TotalLists   int    `json:"total_lists" yaml:"total_lists" xml:"totalLists"`
	ValidLists   int    `json:"valid_lists" yaml:"valid_lists" xml:"validLists"`
	InvalidLists int    `json:"invalid_lists" yaml:"invalid_lists" xml:"invalidLists"`
}

// ValidateEntry represents the validation outcome of one spec list.
//
// Fields:
//   - Name: The spec list name
//   - Specs: Number of specs the list expands to
//   - Status: Validation status ("valid" or "invalid")
//   - Error: Expansion error message (omitted if empty)
type ValidateEntry struct {
	Name   string `json:"name" yaml:"name" xml:"name"`
	Specs  int    `json:"specs" yaml:"specs" xml:"specs"`
	Status string `json:"status" yaml:"status" xml:"status"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty" xml:"error,omitempty"`
}

// ScanResult represents the output data for the scan command.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Summary: Aggregate statistics about the scan
//   - Manifests: Discovered manifest files in path order
//   - Warnings: Warnings collected during the scan (omitted if empty)
type ScanResult struct {
	XMLName   xml.Name    `json:"-" yaml:"-" xml:"scanResult"`
	Summary   ScanSummary `json:"summary" yaml:"summary" xml:"summary"`
	Manifests []ScanEntry `json:"manifests" yaml:"manifests" xml:"manifests>manifest"`
	Warnings  []string    `json:"warnings,omitempty" yaml:"warnings,omitempty" xml:"warnings>warning,omitempty"`
}

// ScanSummary holds summary statistics for scan results.
//
// Fields:
//   - Directory: The directory that was scanned
//   - TotalManifests: Number of manifest files discovered
//   - ValidManifests: Number of manifests that loaded and expanded
//   - InvalidManifests: Number of manifests that failed
type ScanSummary struct {
	Directory        string `json:"directory" yaml:"directory" xml:"directory"`
	TotalManifests   int    `json:"total_manifests" yaml:"total_manifests" xml:"totalManifests"`
	ValidManifests   int    `json:"valid_manifests" yaml:"valid_manifests" xml:"validManifests"`
	InvalidManifests int    `json:"invalid_manifests" yaml:"invalid_manifests" xml:"invalidManifests"`
}

// ScanEntry represents a single discovered manifest file.
//
// Fields:
//   - File: Path to the manifest file relative to the scanned directory
//   - Definitions: Number of definition lists in the manifest
//   - Specs: Number of specs the root list expands to
//   - Status: Manifest status ("valid" or "invalid")
//   - Error: Load or expansion error message (omitted if empty)
type ScanEntry struct {
	File        string `json:"file" yaml:"file" xml:"file"`
	Definitions int    `json:"definitions" yaml:"definitions" xml:"definitions"`
	Specs       int    `json:"specs" yaml:"specs" xml:"specs"`
	Status      string `json:"status" yaml:"status" xml:"status"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty" xml:"error,omitempty"`
}
