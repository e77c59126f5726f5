package commands_test

import (
	"testing"
	"time"

	"custody/internal/core/application/usecases/commands"
	"custody/internal/core/domain/model/kernel"
	"custody/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInitContractCommand_ValidInput(t *testing.T) {
	owner, err := kernel.NewIdentity("owner")
	require.NoError(t, err)
	supplier, err := kernel.NewIdentity("supplier")
	require.NoError(t, err)

	minETA := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	maxETA := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	cmd, err := commands.NewInitContractCommand(owner, supplier, minETA, maxETA)
	require.NoError(t, err)
	assert.True(t, cmd.Caller().IsEqual(owner))
	assert.True(t, cmd.Supplier().IsEqual(supplier))
	assert.Equal(t, minETA, cmd.MinETA())
	assert.Equal(t, maxETA, cmd.MaxETA())
}

func TestNewInitContractCommand_InvalidSupplier(t *testing.T) {
	owner, err := kernel.NewIdentity("owner")
	require.NoError(t, err)

	_, err = commands.NewInitContractCommand(owner, kernel.Identity{}, time.Time{}, time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrIdentityIsNotConstructed)
}

func TestNewInitContractCommand_BoundsInverted(t *testing.T) {
	owner, err := kernel.NewIdentity("owner")
	require.NoError(t, err)
	supplier, err := kernel.NewIdentity("supplier")
	require.NoError(t, err)

	minETA := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	maxETA := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err = commands.NewInitContractCommand(owner, supplier, minETA, maxETA)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewSignContractCommand(t *testing.T) {
	supplier, err := kernel.NewIdentity("supplier")
	require.NoError(t, err)

	cmd, err := commands.NewSignContractCommand(supplier)
	require.NoError(t, err)
	assert.True(t, cmd.Caller().IsEqual(supplier))

	_, err = commands.NewSignContractCommand(kernel.Identity{})
	require.Error(t, err)
}
