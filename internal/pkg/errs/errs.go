package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic classification via errors.Is.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")

	ErrUnauthorized        = errors.New("caller is not authorized")
	ErrInvalidPhase        = errors.New("phase is invalid")
	ErrItemAlreadyAssigned = errors.New("item is already assigned")
	ErrDestinationMismatch = errors.New("destination mismatch")
)

// sanitize strips line breaks from values before they are embedded in error
// messages, keeping log lines single-line.
func sanitize(value any) string {
	s := fmt.Sprintf("%s", value)
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// ObjectNotFoundError is returned when a lookup by identifier finds nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError is returned when a supplied value fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError is returned when a numeric value falls outside its
// allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, sanitizeIfString(e.Value), e.ParamName, e.Min, e.Max, e.Cause)
	}
	return fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitizeIfString(e.Value), e.ParamName, e.Min, e.Max)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

func sanitizeIfString(value any) any {
	if s, ok := value.(string); ok {
		return sanitize(s)
	}
	return value
}

// ValueIsRequiredError is returned when a mandatory value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// UnauthorizedError is returned when the caller's credential does not match
// the identity required for the attempted operation.
type UnauthorizedError struct {
	Role   string
	Caller string
	Cause  error
}

// NewUnauthorizedError creates an UnauthorizedError naming the required role
// and the offending caller.
func NewUnauthorizedError(role, caller string) *UnauthorizedError {
	return &UnauthorizedError{Role: role, Caller: caller}
}

// NewUnauthorizedErrorWithCause creates an UnauthorizedError wrapping an underlying cause.
func NewUnauthorizedErrorWithCause(role, caller string, cause error) *UnauthorizedError {
	return &UnauthorizedError{Role: role, Caller: caller, Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is not the %s (cause: %s)",
			ErrUnauthorized, sanitize(e.Caller), e.Role, e.Cause)
	}
	return fmt.Sprintf("%s: %s is not the %s", ErrUnauthorized, sanitize(e.Caller), e.Role)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// InvalidPhaseError is returned when the overall contract phase or a
// shipment's transit state does not permit the attempted operation.
type InvalidPhaseError struct {
	Current  string
	Required string
	Cause    error
}

// NewInvalidPhaseError creates an InvalidPhaseError naming the current and required states.
func NewInvalidPhaseError(current, required string) *InvalidPhaseError {
	return &InvalidPhaseError{Current: current, Required: required}
}

// NewInvalidPhaseErrorWithCause creates an InvalidPhaseError wrapping an underlying cause.
func NewInvalidPhaseErrorWithCause(current, required string, cause error) *InvalidPhaseError {
	return &InvalidPhaseError{Current: current, Required: required, Cause: cause}
}

func (e *InvalidPhaseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: current is %s, required is %s (cause: %s)",
			ErrInvalidPhase, e.Current, e.Required, e.Cause)
	}
	return fmt.Sprintf("%s: current is %s, required is %s", ErrInvalidPhase, e.Current, e.Required)
}

func (e *InvalidPhaseError) Unwrap() error {
	return ErrInvalidPhase
}

// ItemAlreadyAssignedError is returned when an item referenced for a new
// shipment already belongs to one.
type ItemAlreadyAssignedError struct {
	ItemIndex  int
	ShipmentID int
	Cause      error
}

// NewItemAlreadyAssignedError creates an ItemAlreadyAssignedError naming the
// item and the shipment it already belongs to.
func NewItemAlreadyAssignedError(itemIndex, shipmentID int) *ItemAlreadyAssignedError {
	return &ItemAlreadyAssignedError{ItemIndex: itemIndex, ShipmentID: shipmentID}
}

// NewItemAlreadyAssignedErrorWithCause creates an ItemAlreadyAssignedError wrapping an underlying cause.
func NewItemAlreadyAssignedErrorWithCause(itemIndex, shipmentID int, cause error) *ItemAlreadyAssignedError {
	return &ItemAlreadyAssignedError{ItemIndex: itemIndex, ShipmentID: shipmentID, Cause: cause}
}

func (e *ItemAlreadyAssignedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: item %d belongs to shipment %d (cause: %s)",
			ErrItemAlreadyAssigned, e.ItemIndex, e.ShipmentID, e.Cause)
	}
	return fmt.Sprintf("%s: item %d belongs to shipment %d", ErrItemAlreadyAssigned, e.ItemIndex, e.ShipmentID)
}

func (e *ItemAlreadyAssignedError) Unwrap() error {
	return ErrItemAlreadyAssigned
}

// DestinationMismatchError is returned when a reported arrival location does
// not equal the shipment's declared destination.
type DestinationMismatchError struct {
	Reported string
	Declared string
	Cause    error
}

// NewDestinationMismatchError creates a DestinationMismatchError naming both locations.
func NewDestinationMismatchError(reported, declared string) *DestinationMismatchError {
	return &DestinationMismatchError{Reported: reported, Declared: declared}
}

// NewDestinationMismatchErrorWithCause creates a DestinationMismatchError wrapping an underlying cause.
func NewDestinationMismatchErrorWithCause(reported, declared string, cause error) *DestinationMismatchError {
	return &DestinationMismatchError{Reported: reported, Declared: declared, Cause: cause}
}

func (e *DestinationMismatchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: reported is %s, declared is %s (cause: %s)",
			ErrDestinationMismatch, sanitize(e.Reported), sanitize(e.Declared), e.Cause)
	}
	return fmt.Sprintf("%s: reported is %s, declared is %s",
		ErrDestinationMismatch, sanitize(e.Reported), sanitize(e.Declared))
}

func (e *DestinationMismatchError) Unwrap() error {
	return ErrDestinationMismatch
}
