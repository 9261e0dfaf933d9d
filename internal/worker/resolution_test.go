package worker

import (
	"context"
	"testing"
	"time"

	"match-wager/internal/model"
	mocks "match-wager/mocks/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
)

func TestResolutionWorker_RunsEvaluationRounds(t *testing.T) {
	mockSvc := mocks.NewWagerService(t)

	called := make(chan struct{}, 10)
	mockSvc.On("EvaluateAll", mock.Anything).Run(func(args mock.Arguments) {
		select {
		case called <- struct{}{}:
		default:
		}
	}).Return([]*model.WagerView{}, nil)

	worker := NewResolutionWorker(mockSvc, 10*time.Millisecond, zerolog.Nop())
	worker.Start(context.Background())
	defer worker.Stop()

	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("worker never ran an evaluation round")
	}
}

func TestResolutionWorker_StopHaltsTicker(t *testing.T) {
	mockSvc := mocks.NewWagerService(t)
	mockSvc.On("EvaluateAll", mock.Anything).Return([]*model.WagerView{}, nil).Maybe()

	worker := NewResolutionWorker(mockSvc, 5*time.Millisecond, zerolog.Nop())
	worker.Start(context.Background())

	time.Sleep(20 * time.Millisecond)
	worker.Stop()

	// No rounds may run after Stop returns.
	mockSvc.Calls = nil
	time.Sleep(30 * time.Millisecond)
	mockSvc.AssertNotCalled(t, "EvaluateAll", mock.Anything)
}

func TestResolutionWorker_ContextCancelStops(t *testing.T) {
	mockSvc := mocks.NewWagerService(t)
	mockSvc.On("EvaluateAll", mock.Anything).Return([]*model.WagerView{}, nil).Maybe()

	ctx, cancel := context.WithCancel(context.Background())
	worker := NewResolutionWorker(mockSvc, 5*time.Millisecond, zerolog.Nop())
	worker.Start(ctx)

	cancel()
	time.Sleep(20 * time.Millisecond)
	worker.Stop()

	mockSvc.Calls = nil
	time.Sleep(30 * time.Millisecond)
	mockSvc.AssertNotCalled(t, "EvaluateAll", mock.Anything)
}
