package commands_test

import (
	"errors"
	"testing"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOutboxMessage() ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:          kernel.NewUUID(),
		AggregateID: kernel.NewUUID(),
		EventName:   "order.created",
		Payload:     []byte(`{}`),
		OccurredAt:  time.Now().UTC(),
	}
}

func newRelayCommand(t *testing.T) commands.RelayOutboxCommand {
	t.Helper()
	cmd, err := commands.NewRelayOutboxCommand(10)
	require.NoError(t, err)
	return cmd
}

func TestRelayOutboxCommandHandler_Handle_PublishesAndMarks(t *testing.T) {
	ctx := t.Context()
	first, second := newOutboxMessage(), newOutboxMessage()

	outbox := new(MockOutboxRepository)
	publisher := new(MockMessagePublisher)
	mock.InOrder(
		outbox.On("GetUnprocessed", ctx, 10).Return([]ports.OutboxMessage{first, second}, nil).Once(),
		publisher.On("Publish", ctx, first).Return(nil).Once(),
		outbox.On("MarkProcessed", ctx, first.ID).Return(nil).Once(),
		publisher.On("Publish", ctx, second).Return(nil).Once(),
		outbox.On("MarkProcessed", ctx, second.ID).Return(nil).Once(),
	)
	observer := &countingObserver{}

	h := commands.NewRelayOutboxCommandHandler(outbox, publisher, observer, discardLogger)
	relayed, err := h.Handle(ctx, newRelayCommand(t))

	require.NoError(t, err)
	assert.Equal(t, 2, relayed)
	assert.Equal(t, 2, observer.ok)
	outbox.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestRelayOutboxCommandHandler_Handle_StopsAtFirstPublishFailure(t *testing.T) {
	ctx := t.Context()
	first, second := newOutboxMessage(), newOutboxMessage()
	brokerDown := errors.New("broker down")

	outbox := new(MockOutboxRepository)
	outbox.On("GetUnprocessed", ctx, 10).Return([]ports.OutboxMessage{first, second}, nil).Once()
	publisher := new(MockMessagePublisher)
	publisher.On("Publish", ctx, first).Return(brokerDown).Once()
	observer := &countingObserver{}

	h := commands.NewRelayOutboxCommandHandler(outbox, publisher, observer, discardLogger)
	relayed, err := h.Handle(ctx, newRelayCommand(t))

	require.ErrorIs(t, err, brokerDown)
	assert.Equal(t, 0, relayed)
	assert.Equal(t, 1, observer.failed)
	outbox.AssertNotCalled(t, "MarkProcessed", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", ctx, second)
}

func TestRelayOutboxCommandHandler_Handle_EmptyOutbox(t *testing.T) {
	ctx := t.Context()

	outbox := new(MockOutboxRepository)
	outbox.On("GetUnprocessed", ctx, 10).Return([]ports.OutboxMessage{}, nil).Once()
	publisher := new(MockMessagePublisher)

	h := commands.NewRelayOutboxCommandHandler(outbox, publisher, &countingObserver{}, discardLogger)
	relayed, err := h.Handle(ctx, newRelayCommand(t))

	require.NoError(t, err)
	assert.Zero(t, relayed)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestRelayOutboxCommandHandler_Handle_ReadFailure(t *testing.T) {
	ctx := t.Context()
	dbDown := errors.New("db down")

	outbox := new(MockOutboxRepository)
	outbox.On("GetUnprocessed", ctx, 10).Return(nil, dbDown).Once()

	h := commands.NewRelayOutboxCommandHandler(outbox, new(MockMessagePublisher), &countingObserver{}, discardLogger)
	_, err := h.Handle(ctx, newRelayCommand(t))

	assert.ErrorIs(t, err, dbDown)
}

func TestRelayOutboxCommandHandler_Handle_RejectsZeroCommand(t *testing.T) {
	h := commands.NewRelayOutboxCommandHandler(
		new(MockOutboxRepository), new(MockMessagePublisher), &countingObserver{}, discardLogger)

	_, err := h.Handle(t.Context(), commands.RelayOutboxCommand{})

	assert.ErrorIs(t, err, commands.ErrRelayOutboxCommandIsNotConstructed)
}
