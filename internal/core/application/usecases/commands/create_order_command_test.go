package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand([]commands.OrderItemInput{
		{ProductID: 1, Quantity: 2},
		{ProductID: 1, Quantity: 1},
	}, 5)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Len(t, cmd.Items(), 2)
	assert.Equal(t, int64(1), cmd.Items()[0].ProductID())
	assert.Equal(t, 2, cmd.Items()[0].Quantity())
	assert.Equal(t, []int64{1, 1}, cmd.ProductIDs())
}

func TestNewCreateOrderCommand_EmptyItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(nil, 1)

	require.ErrorIs(t, err, commands.ErrItemsAreRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_TooManyItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand([]commands.OrderItemInput{
		{ProductID: 1, Quantity: 1},
		{ProductID: 2, Quantity: 1},
	}, 1)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Contains(t, err.Error(), "items is 2")
}

func TestNewCreateOrderCommand_InvalidItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand([]commands.OrderItemInput{
		{ProductID: 0, Quantity: 1},
		{ProductID: 2, Quantity: 0},
	}, 2)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "items[0]")
	assert.Contains(t, err.Error(), "items[1]")
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
