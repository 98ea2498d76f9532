package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"orders/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRelayHandler struct{ mock.Mock }

func (m *mockRelayHandler) Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

var _ io.Closer = closerFunc(nil)

func relayCommand(t *testing.T) commands.RelayOutboxCommand {
	t.Helper()
	cmd, err := commands.NewRelayOutboxCommand(100)
	require.NoError(t, err)
	return cmd
}

func TestOutboxRelayJob_Run_InvokesHandler(t *testing.T) {
	cmd := relayCommand(t)
	handler := new(mockRelayHandler)
	handler.On("Handle", mock.Anything, cmd).Return(3, nil).Once()

	job := NewOutboxRelayJob(handler, DefaultOutboxRelaySchedule, cmd, slog.New(slog.DiscardHandler))
	job.Run()

	handler.AssertExpectations(t)
}

func TestOutboxRelayJob_Run_SwallowsHandlerError(t *testing.T) {
	cmd := relayCommand(t)
	handler := new(mockRelayHandler)
	handler.On("Handle", mock.Anything, cmd).Return(0, errors.New("broker down")).Once()

	job := NewOutboxRelayJob(handler, DefaultOutboxRelaySchedule, cmd, slog.New(slog.DiscardHandler))

	assert.NotPanics(t, job.Run)
	handler.AssertExpectations(t)
}

func TestOutboxRelayJob_Start_RejectsInvalidSchedule(t *testing.T) {
	job := NewOutboxRelayJob(new(mockRelayHandler), "not a schedule", relayCommand(t), slog.New(slog.DiscardHandler))

	assert.Error(t, job.Start())
}

func TestJobManager_StartAndStop(t *testing.T) {
	closed := false
	job := NewOutboxRelayJob(new(mockRelayHandler), "0 0 0 1 1 *", relayCommand(t), slog.New(slog.DiscardHandler))
	manager := NewJobManager(job, closerFunc(func() error {
		closed = true
		return nil
	}), slog.New(slog.DiscardHandler))

	require.NoError(t, manager.StartAll())
	manager.StopAll()

	assert.True(t, closed)
}

func TestJobManager_StartAll_WrapsJobError(t *testing.T) {
	job := NewOutboxRelayJob(new(mockRelayHandler), "bad", relayCommand(t), slog.New(slog.DiscardHandler))
	manager := NewJobManager(job, nil, slog.New(slog.DiscardHandler))

	err := manager.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "outbox relay job")
}
