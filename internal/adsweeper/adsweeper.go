package adsweeper

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
)

//go:generate mockgen -source=adsweeper.go -destination=mock_adsweeper.go -package=adsweeper

const (
	defaultBatch   = 500
	defaultWorkers = 4

	ReasonBudgetExhausted = "budget exhausted"
)

type Repo interface {
	FindExhausted(ctx context.Context, limit int) ([]domain.Ad, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status, reason string) (*domain.Ad, error)
}

// Service pauses active ads that can no longer pay a single reward.
type Service struct {
	repo       Repo
	workerPool WorkerPoolI
	interval   time.Duration
	batch      int
	inFlight   sync.Map
}

func New(repo Repo, interval time.Duration) *Service {
	return &Service{
		repo:       repo,
		workerPool: NewWorkerPool(defaultWorkers),
		interval:   interval,
		batch:      defaultBatch,
	}
}

// Start runs the sweep loop until ctx is done. A zero interval disables it.
func (s *Service) Start(ctx context.Context) {
	if s.interval <= 0 {
		zap.L().Info("ad sweeper disabled")
		return
	}
	zap.L().Info("ad sweeper started", zap.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("ad sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	ads, err := s.repo.FindExhausted(ctx, s.batch)
	if err != nil {
		zap.L().Error("failed to find exhausted ads", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, ad := range ads {
		ad := ad
		if _, loaded := s.inFlight.LoadOrStore(ad.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlight.Delete(ad.ID)
				return s.pause(ctx, ad)
			})
			if err != nil {
				s.inFlight.Delete(ad.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("failed to schedule ad sweep", zap.Error(err))
	}
}

func (s *Service) pause(ctx context.Context, ad domain.Ad) error {
	updated, err := s.repo.UpdateStatus(ctx, ad.ID, domain.AdStatusPaused, ReasonBudgetExhausted)
	if err != nil {
		return fmt.Errorf("pause ad %s: %w", ad.ID, err)
	}
	if updated == nil {
		return nil
	}
	zap.L().Info("ad paused",
		zap.String("ad", ad.ID.String()),
		zap.Int64("remaining", ad.RemainingBudget()),
		zap.Int64("coins_reward", ad.CoinsReward))
	return nil
}
