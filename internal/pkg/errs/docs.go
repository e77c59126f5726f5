// Package errs provides standardized error types for the custody tracker.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping used throughout the application.
//
// Two groups of errors live here. Generic validation errors cover input
// checking and lookups:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value fails validation
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//   - ObjectNotFoundError: an object cannot be found by its identifier
//
// Domain errors form the custody taxonomy, one per guard failure kind:
//   - UnauthorizedError: the caller is not the role the operation requires
//   - InvalidPhaseError: the contract phase or shipment transit state does
//     not permit the operation
//   - ItemAlreadyAssignedError: an item referenced for a new shipment
//     already belongs to one
//   - DestinationMismatchError: a reported arrival location does not equal
//     the shipment's declared destination
//
// Each error type follows the same pattern: a sentinel error variable
// (e.g. ErrUnauthorized) for errors.Is classification, a struct type carrying
// the details, constructor functions with and without a cause, an Error()
// method for formatting, and an Unwrap() method returning the sentinel.
//
// Every error aborts the attempted operation entirely; no shared state is
// modified when one is returned.
package errs
