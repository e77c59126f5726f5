// Package shipment contains the Shipment entity and its transit state
// machine. A shipment carries a set of item indices from an origin to a
// declared destination in the custody of a single courier.
package shipment

import (
	"errors"
	"fmt"
	"time"

	"custody/internal/core/domain/model/kernel"
	"custody/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through the NewShipment factory method.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// Shipment is the unit of transit custody.
//
// Shipment follows these invariants:
//   - The identifier is 1-based and never changes
//   - The transit status only advances through the transitions Status allows
//   - The actual departure time is set exactly once, on entering Departed
//   - The actual arrival time is set exactly once, on entering Arrived
//   - Only the assigned courier advances transit states; only the contract
//     owner may receive (enforced by the aggregate)
type Shipment struct {
	id              int
	itemIndices     []int
	origin          string
	destination     string
	currentLocation string
	courier         kernel.Identity

	// Planned departure and arrival.
	etd time.Time
	eta time.Time

	// Actual departure and arrival; zero until set.
	atd time.Time
	ata time.Time

	status Status
	access kernel.AccessGuard

	isConstructed bool
}

// NewShipment creates a Shipment in Prepare status. The identifier must be a
// 1-based arena position; origin, destination, and the courier identity are
// required. The item index list is referenced as handed in and owned by the
// item registry, not the shipment.
func NewShipment(
	id int,
	courier kernel.Identity,
	currentLocation string,
	itemIndices []int,
	origin string,
	destination string,
	etd time.Time,
	eta time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:        Prepare,
		access:        kernel.NewAccessGuard(),
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setCourier(courier),
		s.setRoute(origin, destination),
	); err != nil {
		return nil, err
	}

	s.currentLocation = currentLocation
	s.itemIndices = append([]int(nil), itemIndices...)
	s.etd = etd
	s.eta = eta

	return s, nil
}

// Validate ensures the Shipment was properly constructed through NewShipment.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the 1-based shipment identifier.
func (s *Shipment) ID() int {
	return s.id
}

// ItemIndices returns a copy of the 0-based item indices the shipment carries.
func (s *Shipment) ItemIndices() []int {
	return append([]int(nil), s.itemIndices...)
}

// Origin returns the declared origin location.
func (s *Shipment) Origin() string {
	return s.origin
}

// Destination returns the declared destination location.
func (s *Shipment) Destination() string {
	return s.destination
}

// CurrentLocation returns the last reported location.
func (s *Shipment) CurrentLocation() string {
	return s.currentLocation
}

// Courier returns the identity of the assigned courier.
func (s *Shipment) Courier() kernel.Identity {
	return s.courier
}

// ETD returns the planned departure time.
func (s *Shipment) ETD() time.Time {
	return s.etd
}

// ETA returns the planned arrival time.
func (s *Shipment) ETA() time.Time {
	return s.eta
}

// ATD returns the actual departure time; zero until the shipment departs.
func (s *Shipment) ATD() time.Time {
	return s.atd
}

// ATA returns the actual arrival time; zero until the shipment arrives.
func (s *Shipment) ATA() time.Time {
	return s.ata
}

// Status returns the current transit status.
func (s *Shipment) Status() Status {
	return s.status
}

// Sign lets the assigned courier accept the shipment, moving it from
// Prepare to Signed. Fails with Unauthorized for any other caller and with
// InvalidPhase outside Prepare.
func (s *Shipment) Sign(caller kernel.Identity) error {
	if err := s.access.Verify(caller, s.courier, "courier"); err != nil {
		return err
	}

	newStatus, err := s.status.Sign()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// HandOver records the physical hand-over of the goods to the courier,
// moving the shipment from Signed to HandedOver.
func (s *Shipment) HandOver(caller kernel.Identity) error {
	if err := s.access.Verify(caller, s.courier, "courier"); err != nil {
		return err
	}

	newStatus, err := s.status.HandOver()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// UpdateStatus applies a courier progress report. The shipment must be in
// Signed; the code must satisfy 1 < code < 5. Code 3 moves the shipment to
// Departed and records the actual departure time; code 4 requires the
// reported location to equal the declared destination (exact match), moves
// the shipment to Arrived, and records the actual arrival time; any other
// valid code re-affirms the hand-over. The current location is set to the
// reported location on every successful update.
//
// All guards run before any field changes, so a rejected update leaves the
// shipment untouched.
func (s *Shipment) UpdateStatus(caller kernel.Identity, newLocation string, code int, at time.Time) error {
	if err := s.access.Verify(caller, s.courier, "courier"); err != nil {
		return err
	}

	if newLocation == "" {
		return errs.NewValueIsRequiredError("newLocation")
	}

	newStatus, err := s.status.Update(code)
	if err != nil {
		return err
	}

	if newStatus == Arrived && newLocation != s.destination {
		return errs.NewDestinationMismatchError(newLocation, s.destination)
	}

	switch newStatus {
	case Departed:
		s.atd = at
	case Arrived:
		s.ata = at
	}

	s.status = newStatus
	s.currentLocation = newLocation
	return nil
}

// Deliver finalizes the shipment: the current location snaps to the declared
// destination and the status becomes Delivered. The owner check lives in the
// contract aggregate, which is the only caller.
func (s *Shipment) Deliver() error {
	newStatus, err := s.status.Deliver()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.currentLocation = s.destination
	return nil
}

// Clone returns an independent copy of the shipment.
func (s *Shipment) Clone() *Shipment {
	clone := *s
	clone.itemIndices = append([]int(nil), s.itemIndices...)
	return &clone
}

func (s *Shipment) setID(id int) error {
	if id < 1 {
		return errs.NewValueIsInvalidErrorWithCause("shipmentID",
			fmt.Errorf("%d is not a 1-based shipment identifier", id))
	}
	s.id = id
	return nil
}

func (s *Shipment) setCourier(courier kernel.Identity) error {
	if err := courier.Validate(); err != nil {
		return err
	}
	s.courier = courier
	return nil
}

func (s *Shipment) setRoute(origin, destination string) error {
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	s.origin = origin
	s.destination = destination
	return nil
}
