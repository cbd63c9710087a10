package rewardservice

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/pg"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/metrics"
)

//go:generate mockgen -source=engine.go -destination=mock_engine.go -package=rewardservice

type Ledger interface {
	Post(ctx context.Context, entry domain.LedgerEntry) (*domain.Wallet, error)
}

// Engine is the only place wallet balances change in response to user actions.
type Engine struct {
	ledger    Ledger
	txManager pg.TXManager
}

func NewEngine(ledger Ledger, txManager pg.TXManager) *Engine {
	return &Engine{
		ledger:    ledger,
		txManager: txManager,
	}
}

// Apply settles the action. Both sides of a transfer commit or roll back together,
// and when ctx already carries a transaction they join the caller's.
func (e *Engine) Apply(ctx context.Context, a domain.RewardAction) (*domain.Reward, error) {
	decision, err := Decide(a)
	if err != nil {
		return nil, err
	}
	if decision.Skip {
		metrics.ObserveReward(string(a.Kind), metrics.OutcomeSkipped, 0)
		return &domain.Reward{Kind: a.Kind, Reason: decision.Reason}, nil
	}

	reward := &domain.Reward{Kind: a.Kind, Amount: decision.Amount}
	err = e.txManager.Begin(ctx, func(ctx context.Context) error {
		actor, err := e.ledger.Post(ctx, domain.LedgerEntry{
			UserID: a.ActorID,
			Type:   a.Kind,
			Amount: decision.Amount,
			PostID: a.PostID,
			AdID:   a.AdID,
		})
		if err != nil {
			return fmt.Errorf("credit actor: %w", err)
		}
		reward.ActorBalance = actor.Balance

		if decision.Minted {
			return nil
		}
		owner, err := e.ledger.Post(ctx, domain.LedgerEntry{
			UserID: a.OwnerID,
			Type:   a.Kind,
			Amount: -decision.Amount,
			PostID: a.PostID,
			AdID:   a.AdID,
		})
		if err != nil {
			return fmt.Errorf("debit owner: %w", err)
		}
		reward.OwnerBalance = &owner.Balance
		return nil
	})
	if err != nil {
		metrics.ObserveReward(string(a.Kind), metrics.OutcomeFailed, 0)
		zap.L().Error("reward failed",
			zap.String("kind", string(a.Kind)),
			zap.String("actor", a.ActorID.String()),
			zap.Error(err))
		return nil, err
	}

	reward.Rewarded = true
	metrics.ObserveReward(string(a.Kind), metrics.OutcomeRewarded, decision.Amount)
	return reward, nil
}
