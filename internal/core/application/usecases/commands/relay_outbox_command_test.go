package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRelayOutboxCommand(t *testing.T) {
	cmd, err := commands.NewRelayOutboxCommand(50)

	require.NoError(t, err)
	assert.Equal(t, 50, cmd.BatchSize())
	assert.NoError(t, cmd.Validate())
}

func TestNewRelayOutboxCommand_BatchSizeOutOfRange(t *testing.T) {
	for _, size := range []int{0, -1, commands.MaxRelayBatchSize + 1} {
		_, err := commands.NewRelayOutboxCommand(size)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "size %d", size)
	}
}

func TestRelayOutboxCommand_ZeroValueIsNotConstructed(t *testing.T) {
	var cmd commands.RelayOutboxCommand

	assert.ErrorIs(t, cmd.Validate(), commands.ErrRelayOutboxCommandIsNotConstructed)
}
