// Package errs provides standardized error types for the shop application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error taxonomy of the order use-case layer:
//   - ObjectNotFoundError: the requested entity does not exist
//   - PermissionDeniedError: the caller does not own the entity (ownership violation)
//   - InvalidStateError: the operation is illegal in the entity's current status
//   - ValueIsInvalidError / ValueIsRequiredError: construction and input validation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// Use cases never catch repository errors; whatever surfaces here propagates
// untouched to the HTTP adapter, which maps the sentinels to status codes.
package errs
