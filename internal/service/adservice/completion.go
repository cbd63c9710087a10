package adservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
)

// RecordView counts an impression of an available ad.
func (s *Service) RecordView(ctx context.Context, adID, userID uuid.UUID) (*domain.AdView, error) {
	ad, err := s.repo.FindByID(ctx, adID)
	if err != nil {
		return nil, err
	}
	if ad == nil || !ad.Available() {
		return nil, ErrAdNotAvailable
	}

	var view *domain.AdView
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		var first bool
		var err error
		view, first, err = s.repo.RecordView(ctx, adID, userID)
		if err != nil {
			return err
		}
		return s.repo.IncrementViews(ctx, adID, first)
	})
	if err != nil {
		zap.L().Error("failed to record ad view", zap.Error(err))
		return nil, err
	}
	return view, nil
}

// suspicious reports a completion that came too soon after the last paid one
// or with a watch time under half the creative. Nothing is stored, a later retry is judged afresh.
func (s *Service) suspicious(ctx context.Context, ad *domain.Ad, userID uuid.UUID, watchTimeMs int64) bool {
	if shortest := ad.MinDurationSeconds(); shortest > 0 && watchTimeMs > 0 && float64(watchTimeMs) < shortest*500 {
		return true
	}
	cooling, _ := s.limiter.Cooling(ctx, userID)
	return cooling
}

// CompleteView pays the viewer coins_reward out of the ad budget, at most once per user and ad.
// An exhausted budget rolls everything back. Only an admin flag blocks a view for good.
func (s *Service) CompleteView(ctx context.Context, adID, userID uuid.UUID, watchTimeMs int64) (*domain.AdCompletion, error) {
	ad, err := s.repo.FindByID(ctx, adID)
	if err != nil {
		return nil, err
	}
	if ad == nil || !ad.Available() {
		return nil, ErrAdNotAvailable
	}

	result := &domain.AdCompletion{Completed: true}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		view, created, err := s.repo.EnsureView(ctx, adID, userID)
		if err != nil {
			return err
		}
		if view == nil {
			return fmt.Errorf("view for ad %s vanished", adID)
		}
		if created {
			if err := s.repo.IncrementViews(ctx, adID, true); err != nil {
				return err
			}
		}

		if view.Rewarded {
			result.AlreadyRewarded = true
			return s.fillBalance(ctx, result, userID)
		}
		if view.FraudFlagged {
			result.FraudFlagged = true
			return nil
		}
		if s.suspicious(ctx, ad, userID, watchTimeMs) {
			zap.L().Warn("ad completion flagged",
				zap.String("ad", adID.String()),
				zap.String("user", userID.String()),
				zap.Int64("watch_time_ms", watchTimeMs))
			result.Suspicious = true
			return nil
		}

		completed, err := s.repo.MarkViewCompleted(ctx, view.ID, watchTimeMs)
		if err != nil {
			return err
		}
		if completed {
			if err := s.repo.IncrementCompletedViews(ctx, adID); err != nil {
				return err
			}
		}
		if ad.UserID == userID {
			return s.fillBalance(ctx, result, userID)
		}

		claimed, err := s.repo.ClaimViewReward(ctx, view.ID, ad.CoinsReward)
		if err != nil {
			return err
		}
		if !claimed {
			result.AlreadyRewarded = true
			return s.fillBalance(ctx, result, userID)
		}
		spent, err := s.repo.Spend(ctx, adID, ad.CoinsReward)
		if err != nil {
			return err
		}
		if !spent {
			return ErrBudgetExhausted
		}

		reward, err := s.rewards.Apply(ctx, domain.RewardAction{
			ActorID: userID,
			OwnerID: ad.UserID,
			Kind:    domain.TxAdReward,
			AdID:    &adID,
			Amount:  ad.CoinsReward,
		})
		if err != nil {
			return fmt.Errorf("apply ad reward: %w", err)
		}
		result.Rewarded = reward.Rewarded
		result.CoinsEarned = reward.Amount
		result.WalletBalance = reward.ActorBalance
		return nil
	})
	if err != nil {
		zap.L().Info("ad completion not paid", zap.String("ad", adID.String()), zap.Error(err))
		return nil, err
	}
	if result.Rewarded {
		// The window only starts once the payout is committed.
		_ = s.limiter.Hit(ctx, userID, s.cooldown)
	}
	return result, nil
}

func (s *Service) fillBalance(ctx context.Context, result *domain.AdCompletion, userID uuid.UUID) error {
	wallet, err := s.wallets.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	result.WalletBalance = wallet.Balance
	return nil
}
