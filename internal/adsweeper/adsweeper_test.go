package adsweeper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
)

func runInline(ctx context.Context, task Task) error {
	_ = task()
	return nil
}

func TestService_sweep(t *testing.T) {
	first := domain.Ad{ID: uuid.New(), Status: domain.AdStatusActive, CoinsReward: 10, TotalBudgetCoins: 100, TotalCoinsSpent: 95}
	second := domain.Ad{ID: uuid.New(), Status: domain.AdStatusActive, CoinsReward: 5, TotalBudgetCoins: 50, TotalCoinsSpent: 50}

	tests := []struct {
		name        string
		prepareMock func(repo *MockRepo, pool *MockWorkerPoolI)
	}{
		{
			name: "Exhausted ads are paused",
			prepareMock: func(repo *MockRepo, pool *MockWorkerPoolI) {
				repo.EXPECT().FindExhausted(gomock.Any(), defaultBatch).Return([]domain.Ad{first, second}, nil)
				pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).DoAndReturn(runInline).Times(2)
				repo.EXPECT().UpdateStatus(gomock.Any(), first.ID, domain.AdStatusPaused, ReasonBudgetExhausted).Return(&first, nil)
				repo.EXPECT().UpdateStatus(gomock.Any(), second.ID, domain.AdStatusPaused, ReasonBudgetExhausted).Return(nil, nil)
			},
		},
		{
			name: "Lookup failure schedules nothing",
			prepareMock: func(repo *MockRepo, pool *MockWorkerPoolI) {
				repo.EXPECT().FindExhausted(gomock.Any(), defaultBatch).Return(nil, errors.New("db error"))
			},
		},
		{
			name: "Pause failure is only logged",
			prepareMock: func(repo *MockRepo, pool *MockWorkerPoolI) {
				repo.EXPECT().FindExhausted(gomock.Any(), defaultBatch).Return([]domain.Ad{first}, nil)
				pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).DoAndReturn(runInline)
				repo.EXPECT().UpdateStatus(gomock.Any(), first.ID, domain.AdStatusPaused, ReasonBudgetExhausted).Return(nil, errors.New("db error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := NewMockRepo(ctrl)
			pool := NewMockWorkerPoolI(ctrl)
			tt.prepareMock(repo, pool)

			service := &Service{repo: repo, workerPool: pool, batch: defaultBatch}
			service.sweep(context.Background())

			_, busy := service.inFlight.Load(first.ID)
			assert.False(t, busy)
		})
	}
}

func TestService_sweep_SchedulingFailureReleasesAd(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	pool := NewMockWorkerPoolI(ctrl)
	ad := domain.Ad{ID: uuid.New()}

	repo.EXPECT().FindExhausted(gomock.Any(), defaultBatch).Return([]domain.Ad{ad}, nil).Times(2)
	pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(ErrPoolClosed)
	pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).DoAndReturn(runInline)
	repo.EXPECT().UpdateStatus(gomock.Any(), ad.ID, domain.AdStatusPaused, ReasonBudgetExhausted).Return(&ad, nil)

	service := &Service{repo: repo, workerPool: pool, batch: defaultBatch}
	service.sweep(context.Background())
	service.sweep(context.Background())
}

func TestService_sweep_SkipsAdsInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	pool := NewMockWorkerPoolI(ctrl)
	ad := domain.Ad{ID: uuid.New()}

	repo.EXPECT().FindExhausted(gomock.Any(), defaultBatch).Return([]domain.Ad{ad}, nil)

	service := &Service{repo: repo, workerPool: pool, batch: defaultBatch}
	service.inFlight.Store(ad.ID, struct{}{})
	service.sweep(context.Background())
}

func TestService_Start(t *testing.T) {
	t.Run("Zero interval disables the sweeper", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := New(NewMockRepo(ctrl), 0)
		service.Start(context.Background())
	})

	t.Run("Ticks until canceled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := NewMockRepo(ctrl)
		ad := domain.Ad{ID: uuid.New()}
		paused := make(chan struct{}, 1)

		repo.EXPECT().FindExhausted(gomock.Any(), defaultBatch).Return([]domain.Ad{ad}, nil).MinTimes(1)
		repo.EXPECT().UpdateStatus(gomock.Any(), ad.ID, domain.AdStatusPaused, ReasonBudgetExhausted).
			DoAndReturn(func(ctx context.Context, id uuid.UUID, status, reason string) (*domain.Ad, error) {
				select {
				case paused <- struct{}{}:
				default:
				}
				return &ad, nil
			}).MinTimes(1)

		ctx, cancel := context.WithCancel(context.Background())
		service := New(repo, 10*time.Millisecond)
		done := make(chan struct{})
		go func() {
			service.Start(ctx)
			close(done)
		}()

		select {
		case <-paused:
		case <-time.After(time.Second):
			t.Fatal("ad was not paused")
		}
		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("sweeper did not stop")
		}
	})
}
