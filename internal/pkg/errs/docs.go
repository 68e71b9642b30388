// Package errs provides standardized error types for the back-of-house API.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the two failure classes the API
// reports:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     malformed, missing, or illegal input (rendered as HTTP 400)
//   - ObjectNotFoundError: no entity with the given identifier (HTTP 404)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify failures by sentinel
//
// The HTTP adapter relies on this classification to map domain failures
// onto response status codes without inspecting message text.
package errs
