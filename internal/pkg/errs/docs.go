// Package errs provides standardized error types for the wholesale application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: a referenced entity does not exist
//   - ValueIsInvalidError / ValueIsRequiredError: validation failures
//   - InvalidTransitionError: an order status change not allowed by the state machine
//   - InsufficientStockError: a reservation would drive available stock negative
//   - ConstraintViolationError: an operation blocked by a business constraint
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrInsufficientStock)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies by kind
//
// The external layer relies on these kinds to map failures to responses;
// nothing in the application distinguishes errors by message text.
package errs
