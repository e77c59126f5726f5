package kernel

import "custody/internal/pkg/errs"

// AccessGuard is the sole authorization primitive of the custody domain.
// Every role-gated operation runs exactly one Verify call before touching
// any state. The guard is pure and stateless.
type AccessGuard struct{}

// NewAccessGuard creates an AccessGuard.
func NewAccessGuard() AccessGuard {
	return AccessGuard{}
}

// Verify checks that the caller's credential matches the identity the
// operation expects for the given role. On mismatch it returns an
// UnauthorizedError naming the role; it never mutates anything.
func (AccessGuard) Verify(caller, expected Identity, role string) error {
	if err := caller.Validate(); err != nil {
		return errs.NewUnauthorizedErrorWithCause(role, caller.String(), err)
	}
	if err := expected.Validate(); err != nil {
		return errs.NewUnauthorizedErrorWithCause(role, caller.String(), err)
	}

	if !caller.IsEqual(expected) {
		return errs.NewUnauthorizedError(role, caller.String())
	}

	return nil
}
