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

func TestNewCreateShipmentCommand_ValidInput(t *testing.T) {
	supplier, err := kernel.NewIdentity("supplier")
	require.NoError(t, err)
	courier, err := kernel.NewIdentity("courier")
	require.NoError(t, err)

	etd := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	eta := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)

	cmd, err := commands.NewCreateShipmentCommand(
		supplier, courier, "FAC", []int{0, 2}, "FAC", "DC", etd, eta)
	require.NoError(t, err)
	assert.True(t, cmd.Caller().IsEqual(supplier))
	assert.True(t, cmd.Courier().IsEqual(courier))
	assert.Equal(t, "FAC", cmd.CurrentLocation())
	assert.Equal(t, []int{0, 2}, cmd.ItemIndices())
	assert.Equal(t, "FAC", cmd.Origin())
	assert.Equal(t, "DC", cmd.Destination())
	assert.Equal(t, etd, cmd.ETD())
	assert.Equal(t, eta, cmd.ETA())
}

func TestNewCreateShipmentCommand_ItemIndicesCopied(t *testing.T) {
	supplier, err := kernel.NewIdentity("supplier")
	require.NoError(t, err)
	courier, err := kernel.NewIdentity("courier")
	require.NoError(t, err)

	indices := []int{0, 1}
	cmd, err := commands.NewCreateShipmentCommand(
		supplier, courier, "FAC", indices, "FAC", "DC", time.Time{}, time.Time{})
	require.NoError(t, err)

	indices[0] = 99
	assert.Equal(t, []int{0, 1}, cmd.ItemIndices())
}

func TestNewCreateShipmentCommand_InvalidCourier(t *testing.T) {
	supplier, err := kernel.NewIdentity("supplier")
	require.NoError(t, err)

	_, err = commands.NewCreateShipmentCommand(
		supplier, kernel.Identity{}, "FAC", []int{0}, "FAC", "DC", time.Time{}, time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrIdentityIsNotConstructed)
}

func TestNewCreateShipmentCommand_EmptyRoute(t *testing.T) {
	supplier, err := kernel.NewIdentity("supplier")
	require.NoError(t, err)
	courier, err := kernel.NewIdentity("courier")
	require.NoError(t, err)

	_, err = commands.NewCreateShipmentCommand(
		supplier, courier, "FAC", []int{0}, "", "DC", time.Time{}, time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateShipmentCommand(
		supplier, courier, "FAC", []int{0}, "FAC", "", time.Time{}, time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateShipmentCommand_NegativeItemIndex(t *testing.T) {
	supplier, err := kernel.NewIdentity("supplier")
	require.NoError(t, err)
	courier, err := kernel.NewIdentity("courier")
	require.NoError(t, err)

	_, err = commands.NewCreateShipmentCommand(
		supplier, courier, "FAC", []int{0, -1}, "FAC", "DC", time.Time{}, time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
