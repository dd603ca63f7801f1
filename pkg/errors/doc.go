// Package errors provides unified error types and display for spack.
//
// This package consolidates command-level error handling into a single location:
//   - ExitError: Command exit with specific exit code
//   - PartialSuccessError: Some operations succeeded, some failed
//   - ValidationResult: Aggregated manifest validation errors and warnings
//
// Error Display:
//
// The package provides consistent error formatting:
//
//	errors.PrintErrors(os.Stderr, errs, verbose)
//
// Error Checking:
//
// Use the Is* functions to check error types:
//
//	if exitErr, ok := errors.IsExitError(err); ok {
//	    os.Exit(exitErr.Code)
//	}
//
// Exit Codes:
//
// Standard exit codes are defined for scripting integration:
//   - ExitSuccess (0): All operations completed successfully
//   - ExitPartialFailure (1): Some operations failed
//   - ExitFailure (2): All operations failed or critical error
//   - ExitConfigError (3): Manifest or flag error
package errors
