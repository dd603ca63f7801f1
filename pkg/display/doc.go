// Package display provides unified display and formatting for CLI output.
//
// Value Formatting:
//
// Use formatting functions for consistent value display:
//
//	versions := display.SafeVersionsValue(entry.Versions)  // Returns "*" if unconstrained
//	compiler := display.SafeCellValue(entry.Compiler)      // Returns "-" if empty
//
// Status Formatting:
//
// Use status functions for consistent status display with icons:
//
//	status := display.FormatStatus("valid")  // Returns "✓ valid"
//
// Messages:
//
// Use message functions for consistent user feedback:
//
//	display.PrintWarnings(os.Stderr, warnings)
//	display.PrintNoSpecsMessage(os.Stdout, "packages")
//
// For table output, use the pkg/output package directly.
package display
