package kernel_test

import (
	"testing"

	"custody/internal/core/domain/model/kernel"
	"custody/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessGuard_Verify(t *testing.T) {
	guard := kernel.NewAccessGuard()
	owner, _ := kernel.NewIdentity("Owner")
	supplier, _ := kernel.NewIdentity("Supplier")

	t.Run("matching credentials pass", func(t *testing.T) {
		require.NoError(t, guard.Verify(owner, owner, "owner"))
	})

	t.Run("mismatched credentials fail with Unauthorized", func(t *testing.T) {
		err := guard.Verify(supplier, owner, "owner")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Contains(t, err.Error(), "is not the owner")
	})

	t.Run("zero-value caller fails with Unauthorized", func(t *testing.T) {
		var nobody kernel.Identity

		err := guard.Verify(nobody, owner, "owner")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("zero-value expected identity fails with Unauthorized", func(t *testing.T) {
		var unset kernel.Identity

		err := guard.Verify(owner, unset, "supplier")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

func TestQuantity(t *testing.T) {
	t.Run("zero is legal", func(t *testing.T) {
		q, err := kernel.NewQuantity(0)

		require.NoError(t, err)
		assert.Equal(t, 0, q.Value())
	})

	t.Run("positive value round-trips", func(t *testing.T) {
		q, err := kernel.NewQuantity(42)

		require.NoError(t, err)
		assert.Equal(t, 42, q.Value())
		assert.Equal(t, "42", q.String())
	})

	t.Run("negative value is rejected", func(t *testing.T) {
		_, err := kernel.NewQuantity(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
