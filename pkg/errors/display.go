package errors

import (
	"fmt"
	"io"
	"strings"
)

// PrintErrors prints a list of errors to the writer, one per line.
//
// This is the single implementation for error display across all commands.
// Partial success errors are expanded so each underlying failure is visible.
//
// Parameters:
//   - w: Writer to output to (typically os.Stderr)
//   - errs: Slice of errors to display
//   - verbose: If true, expands partial success errors into their parts
//
// Output format:
//
//	Error: <error message>
func PrintErrors(w io.Writer, errs []error, verbose bool) {
	if len(errs) == 0 {
		return
	}

	for _, err := range errs {
		printSingleError(w, err, verbose)
	}
}

// printSingleError prints a single error with appropriate formatting.
//
// Parameters:
//   - w: Writer to output to
//   - err: The error to print
//   - verbose: If true, includes detailed information
func printSingleError(w io.Writer, err error, verbose bool) {
	if err == nil {
		return
	}

	if pse, ok := IsPartialSuccess(err); ok {
		_, _ = fmt.Fprintf(w, "Partial Success: %s\n", pse.Error())
		if verbose && len(pse.Errors) > 0 {
			_, _ = fmt.Fprintf(w, "  Failed operations:\n")
			for _, e := range pse.Errors {
				_, _ = fmt.Fprintf(w, "    - %s\n", e.Error())
			}
		}
		return
	}

	_, _ = fmt.Fprintf(w, "Error: %s\n", err.Error())
}

// ValidationResult holds the outcome of validating one or more manifests.
//
// Fields:
//   - Errors: Slice of validation errors
//   - Warnings: Slice of warning messages
type ValidationResult struct {
	// Errors contains all validation errors encountered.
	Errors []error

	// Warnings contains non-fatal warning messages.
	Warnings []string
}

// HasErrors returns true if there are any validation errors.
//
// Returns:
//   - bool: true if the result contains one or more validation errors
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any warnings.
//
// Returns:
//   - bool: true if the result contains one or more warning messages
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AddError adds a validation error to the result.
//
// Parameters:
//   - err: The validation error to add to the errors list
func (r *ValidationResult) AddError(err error) {
	r.Errors = append(r.Errors, err)
}

// AddErrorf adds a formatted validation error to the result.
//
// Parameters:
//   - format: Printf-style format string
//   - args: Format arguments
func (r *ValidationResult) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Errorf(format, args...))
}

// AddWarning adds a warning message to the result.
//
// Parameters:
//   - msg: The warning message to add to the warnings list
func (r *ValidationResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// ErrorMessage returns a formatted error message for all validation errors.
//
// Returns:
//   - string: Formatted error messages, or empty string if no errors
func (r *ValidationResult) ErrorMessage() string {
	if len(r.Errors) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Validation failed:\n")
	for _, err := range r.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// PrintTo writes validation results to the given writer.
//
// Warnings are printed before errors so fatal output appears last.
//
// Parameters:
//   - w: Writer to output to
func (r *ValidationResult) PrintTo(w io.Writer) {
	for _, warning := range r.Warnings {
		_, _ = fmt.Fprintf(w, "Warning: %s\n", warning)
	}

	if len(r.Errors) > 0 {
		_, _ = fmt.Fprint(w, r.ErrorMessage())
	}
}

// NewValidationResult creates a new empty ValidationResult.
//
// Initializes the Errors and Warnings slices to empty (non-nil) slices.
//
// Returns:
//   - *ValidationResult: New validation result with empty error and warning slices
//
// Example:
//
//	result := errors.NewValidationResult()
//	result.AddError(loadErr)
//	if result.HasErrors() {
//	    return result
//	}
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}
}
