package kernel

import (
	"fmt"

	"custody/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrIdentityIsNotConstructed indicates that an Identity was not created
// through one of the constructor functions. Returned when validating a
// zero-value Identity.
var ErrIdentityIsNotConstructed = errs.NewValueIsRequiredError(
	"Identity must be created via NewIdentity, IdentityFromCredential, or IdentityFromString",
)

// Identity is a value object representing a verified participant: an opaque
// credential plus a human-readable display name. Callers arrive with an
// Identity already authenticated by the outer layers; the domain only ever
// compares credentials, never inspects them.
//
// The zero value is invalid; use one of the constructor functions.
//
// Example:
//
//	owner, err := kernel.NewIdentity("Acme Warehousing")
//	if err != nil {
//	    // handle error
//	}
type Identity struct {
	credential uuid.UUID
	name       string
}

// NewIdentity creates an Identity with a freshly generated credential.
// The display name must not be empty.
func NewIdentity(name string) (Identity, error) {
	return IdentityFromCredential(uuid.New(), name)
}

// IdentityFromCredential creates an Identity from an existing credential.
// Used when reconstructing identities passed in by the transport layer.
func IdentityFromCredential(credential uuid.UUID, name string) (Identity, error) {
	if credential == uuid.Nil {
		return Identity{}, errs.NewValueIsRequiredError("credential")
	}
	if name == "" {
		return Identity{}, errs.NewValueIsRequiredError("name")
	}

	return Identity{credential: credential, name: name}, nil
}

// IdentityFromString parses the credential from its string form.
// Accepts the standard UUID text representations.
func IdentityFromString(credential, name string) (Identity, error) {
	id, err := uuid.Parse(credential)
	if err != nil {
		return Identity{}, errs.NewValueIsInvalidErrorWithCause("credential",
			fmt.Errorf("invalid credential format: %w", err))
	}

	return IdentityFromCredential(id, name)
}

// Validate ensures the Identity was created through a constructor.
func (i Identity) Validate() error {
	if i.credential == uuid.Nil {
		return ErrIdentityIsNotConstructed
	}
	return nil
}

// Credential returns the opaque credential.
func (i Identity) Credential() uuid.UUID {
	return i.credential
}

// Name returns the display name.
func (i Identity) Name() string {
	return i.name
}

// String returns the credential's string form. Implements fmt.Stringer.
func (i Identity) String() string {
	return i.credential.String()
}

// IsEqual reports whether two identities carry the same credential.
// Display names do not participate in the comparison.
func (i Identity) IsEqual(other Identity) bool {
	return i.credential == other.credential
}
