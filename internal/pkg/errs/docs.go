// Package errs provides standardized error types for the ordering application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package has two layers:
//   - Typed causes describing what is wrong with a value or lookup:
//     ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError, ObjectNotFoundError.
//   - Classifications describing how a caller should treat the failure:
//     ValidationError (bad request) and NotFoundError (missing resource).
//     Both carry the user-facing message and wrap a typed cause.
//
// Each typed cause follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
//
// Because classifications unwrap to their cause, errors.Is works across both layers:
//
//	err := errs.NewValidationError(errs.NewValueIsRequiredError("name"), "Dish must include a name")
//	errors.Is(err, errs.ErrValueIsRequired) // true
//	errs.IsValidation(err)                  // true
package errs
