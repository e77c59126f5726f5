package kernel_test

import (
	"testing"

	"custody/internal/core/domain/model/kernel"
	"custody/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentity(t *testing.T) {
	t.Run("should create identity with fresh credential", func(t *testing.T) {
		id, err := kernel.NewIdentity("Acme Warehousing")

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.Equal(t, "Acme Warehousing", id.Name())
		assert.NotEqual(t, uuid.Nil, id.Credential())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := kernel.NewIdentity("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("two identities never share a credential", func(t *testing.T) {
		a, _ := kernel.NewIdentity("A")
		b, _ := kernel.NewIdentity("B")

		assert.False(t, a.IsEqual(b))
	})
}

func TestIdentityFromString(t *testing.T) {
	t.Run("should parse a standard UUID credential", func(t *testing.T) {
		id, err := kernel.IdentityFromString("550e8400-e29b-41d4-a716-446655440000", "Courier C")

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
		assert.Equal(t, "Courier C", id.Name())
	})

	t.Run("should fail on malformed credential", func(t *testing.T) {
		_, err := kernel.IdentityFromString("not-a-credential", "Courier C")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail on nil credential", func(t *testing.T) {
		_, err := kernel.IdentityFromString(uuid.Nil.String(), "Courier C")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestIdentity_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.Identity

		require.Error(t, id.Validate())
		assert.Equal(t, kernel.ErrIdentityIsNotConstructed, id.Validate())
	})
}

func TestIdentity_IsEqual(t *testing.T) {
	t.Run("same credential with different names is equal", func(t *testing.T) {
		cred := uuid.New()
		a, _ := kernel.IdentityFromCredential(cred, "Display A")
		b, _ := kernel.IdentityFromCredential(cred, "Display B")

		assert.True(t, a.IsEqual(b))
	})
}
