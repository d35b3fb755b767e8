//go:build !integration

package ratewatch

import (
	"context"
	"sync"
	"testing"
	"time"

	"lendit/internal/application/dto"
	apperrors "lendit/internal/shared_kernel/errors"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type fakeSnapshotUseCase struct {
	mu        sync.Mutex
	callCount int
	appErr    *apperrors.AppError
}

func (f *fakeSnapshotUseCase) Execute(context.Context, dto.RecordRateSnapshotCommand) (dto.RecordRateSnapshotOutput, *apperrors.AppError) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.callCount++
	if f.appErr != nil {
		return dto.RecordRateSnapshotOutput{}, f.appErr
	}
	return dto.RecordRateSnapshotOutput{Recorded: 2, BestProtocol: "navi", Label: "5.30%"}, nil
}

func (f *fakeSnapshotUseCase) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.callCount
}

func TestWorkerDisabled(t *testing.T) {
	useCase := &fakeSnapshotUseCase{}
	worker := NewWorker(false, "@every 1s", useCase, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	worker.Start(ctx)

	assert.False(t, worker.Enabled())
	assert.Zero(t, useCase.calls())
}

func TestWorkerSnapshotsImmediatelyAndStopsOnCancel(t *testing.T) {
	useCase := &fakeSnapshotUseCase{}
	worker := NewWorker(true, "@every 1h", useCase, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return useCase.calls() == 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
	assert.Equal(t, 1, useCase.calls())
}

func TestWorkerRejectsBadSchedule(t *testing.T) {
	useCase := &fakeSnapshotUseCase{}
	worker := NewWorker(true, "not a schedule", useCase, zerolog.Nop())

	worker.Start(context.Background())

	assert.Zero(t, useCase.calls())
}

func TestWorkerSurvivesFailedCycle(t *testing.T) {
	useCase := &fakeSnapshotUseCase{appErr: apperrors.NewConflict("journal_disabled", "no journal", nil)}
	worker := NewWorker(true, "@every 1h", useCase, zerolog.Nop())

	worker.runCycle(context.Background())
	worker.runCycle(context.Background())

	assert.Equal(t, 2, useCase.calls())
}
