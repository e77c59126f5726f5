package contract

import "custody/internal/pkg/errs"

// Phase represents the overall contract lifecycle stage.
//
// State transitions:
//
//	Prepare ──> Created ──> Signed
//
// Done is declared as the terminal stage but no operation reaches it; the
// contract is considered settled when IsSatisfied reports true while Signed.
type Phase int

const (
	// Unknown represents an invalid or undefined phase.
	Unknown Phase = iota

	// Prepare is the initial phase: the owner registers items.
	Prepare

	// Created indicates the owner fixed the supplier and the ETA bounds.
	Created

	// Signed indicates the supplier countersigned; shipments may now be
	// created.
	Signed

	// Done is declared for the settled contract but is never entered by any
	// transition.
	Done
)

func getPhaseStrings() map[Phase]string {
	return map[Phase]string{
		Unknown: "Unknown",
		Prepare: "Prepare",
		Created: "Created",
		Signed:  "Signed",
		Done:    "Done",
	}
}

// String returns the human-readable name of the phase.
// Implements the fmt.Stringer interface; safe on any value.
func (p Phase) String() string {
	if str, ok := getPhaseStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks that the Phase is one of the defined lifecycle stages.
func (p Phase) Validate() error {
	if p < Prepare || p > Done {
		return errs.NewValueIsInvalidError("phase")
	}
	return nil
}

// Create transitions the phase to Created. Only a contract still in Prepare
// can be created.
func (p Phase) Create() (Phase, error) {
	if p != Prepare {
		return 0, errs.NewInvalidPhaseError(p.String(), Prepare.String())
	}
	return Created, nil
}

// Sign transitions the phase to Signed. Requires Created.
func (p Phase) Sign() (Phase, error) {
	if p != Created {
		return 0, errs.NewInvalidPhaseError(p.String(), Created.String())
	}
	return Signed, nil
}
