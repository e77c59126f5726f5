package shipment

import "custody/internal/pkg/errs"

// Status represents the transit state of a shipment. It implements a linear
// state machine with no skipping and no regression at the guarded
// transitions.
//
// State transitions:
//
//	Prepare ──> Signed ──> HandedOver
//	               │
//	               ├──(code 3)──> Departed
//	               └──(code 4)──> Arrived
//	       any non-final ──> Delivered (receive)
//
// Location updates are only accepted while the shipment is Signed; this
// leaves the HandedOver state with no outgoing location update, which is the
// behavior the system ships with (pinned by tests).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Prepare is the initial status of a freshly created shipment.
	Prepare

	// Signed indicates the assigned courier has signed for the shipment.
	Signed

	// HandedOver indicates the goods were handed to the courier.
	HandedOver

	// Departed indicates the shipment left its origin; the actual departure
	// time is recorded on entry.
	Departed

	// Arrived indicates the shipment reached its declared destination; the
	// actual arrival time is recorded on entry.
	Arrived

	// Delivered is the final status, entered when the owner receives the
	// shipment.
	Delivered
)

// Status codes accepted by UpdateStatus. Any code c with 1 < c < 5 is valid;
// codes other than Departed and Arrived re-affirm the hand-over.
const (
	CodeHandedOver = 2
	CodeDeparted   = 3
	CodeArrived    = 4
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Prepare:    "Prepare",
		Signed:     "Signed",
		HandedOver: "HandedOver",
		Departed:   "Departed",
		Arrived:    "Arrived",
		Delivered:  "Delivered",
	}
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface; safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks that the Status is one of the defined transit states.
func (s Status) Validate() error {
	if s < Prepare || s > Delivered {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// Sign transitions the status to Signed. Only a shipment still in Prepare
// can be signed.
func (s Status) Sign() (Status, error) {
	if s != Prepare {
		return 0, errs.NewInvalidPhaseError(s.String(), Prepare.String())
	}
	return Signed, nil
}

// HandOver transitions the status to HandedOver. Requires Signed.
func (s Status) HandOver() (Status, error) {
	if s != Signed {
		return 0, errs.NewInvalidPhaseError(s.String(), Signed.String())
	}
	return HandedOver, nil
}

// Update applies a status code to a Signed shipment and returns the
// resulting status. Codes outside (1, 5) are rejected as out of range.
func (s Status) Update(code int) (Status, error) {
	if code <= 1 || code >= 5 {
		return 0, errs.NewValueIsOutOfRangeError("statusCode", code, CodeHandedOver, CodeArrived)
	}

	if s != Signed {
		return 0, errs.NewInvalidPhaseError(s.String(), Signed.String())
	}

	switch code {
	case CodeDeparted:
		return Departed, nil
	case CodeArrived:
		return Arrived, nil
	default:
		return HandedOver, nil
	}
}

// Deliver transitions the status to Delivered. Receiving an already
// delivered shipment is rejected so the pending-count bookkeeping can never
// settle the same item twice.
func (s Status) Deliver() (Status, error) {
	if s == Delivered {
		return 0, errs.NewInvalidPhaseError(s.String(), "undelivered")
	}
	return Delivered, nil
}
