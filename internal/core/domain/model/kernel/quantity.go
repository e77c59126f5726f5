package kernel

import (
	"fmt"
	"strconv"

	"custody/internal/pkg/errs"
)

// Quantity is a non-negative amount. Item volumes and prices are quantities;
// zero is a legal value.
type Quantity struct {
	value int
}

// NewQuantity creates a Quantity, rejecting negative values.
func NewQuantity(value int) (Quantity, error) {
	if value < 0 {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", value))
	}
	return Quantity{value: value}, nil
}

// Value returns the underlying amount.
func (q Quantity) Value() int {
	return q.value
}

// String returns the decimal form of the amount. Implements fmt.Stringer.
func (q Quantity) String() string {
	return strconv.Itoa(q.value)
}
