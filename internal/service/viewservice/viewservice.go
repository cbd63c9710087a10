package viewservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/pg"
)

//go:generate mockgen -source=viewservice.go -destination=mock_viewservice.go -package=viewservice

type Repo interface {
	Record(ctx context.Context, postID, userID uuid.UUID) (*domain.PostView, bool, error)
	Ensure(ctx context.Context, postID, userID uuid.UUID) (*domain.PostView, bool, error)
	MarkCompleted(ctx context.Context, id int64, watchTimeMs *int64) (bool, error)
	ClaimReward(ctx context.Context, id int64) (bool, error)
}

type PostRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	IncrementViews(ctx context.Context, postID uuid.UUID, unique bool) (*domain.Post, error)
	IncrementCompletedViews(ctx context.Context, postID uuid.UUID) error
}

type RewardEngine interface {
	Apply(ctx context.Context, action domain.RewardAction) (*domain.Reward, error)
}

type WalletService interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
}

type Service struct {
	repo      Repo
	postRepo  PostRepo
	rewards   RewardEngine
	wallets   WalletService
	txManager pg.TXManager
}

func New(repo Repo, postRepo PostRepo, rewards RewardEngine, wallets WalletService, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		postRepo:  postRepo,
		rewards:   rewards,
		wallets:   wallets,
		txManager: txManager,
	}
}

var (
	ErrPostNotFound = errors.New("post not found")
	ErrNotReel      = errors.New("only reels support views")
)

const (
	MessageRewarded        = "Reel completed, coins credited"
	MessageAlreadyRewarded = "Reel already rewarded"
	MessageSelfView        = "Own reel, no reward"
)

func (s *Service) findReel(ctx context.Context, postID uuid.UUID) (*domain.Post, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.Type != domain.PostTypeReel {
		return nil, ErrNotReel
	}
	return post, nil
}

// AddView counts a reel view. Only the first view by a user moves unique_views_count.
func (s *Service) AddView(ctx context.Context, postID, userID uuid.UUID) (*domain.Post, error) {
	if _, err := s.findReel(ctx, postID); err != nil {
		return nil, err
	}

	var post *domain.Post
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		_, first, err := s.repo.Record(ctx, postID, userID)
		if err != nil {
			return err
		}
		post, err = s.postRepo.IncrementViews(ctx, postID, first)
		return err
	})
	if err != nil {
		zap.L().Error("failed to add view", zap.Error(err))
		return nil, err
	}
	return post, nil
}

// CompleteView marks the reel as watched and pays the viewer once.
// A view that was never started is created on the way.
func (s *Service) CompleteView(ctx context.Context, postID, userID uuid.UUID, watchTimeMs *int64) (*domain.ViewCompletion, error) {
	post, err := s.findReel(ctx, postID)
	if err != nil {
		return nil, err
	}

	result := &domain.ViewCompletion{Completed: true}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		view, created, err := s.repo.Ensure(ctx, postID, userID)
		if err != nil {
			return err
		}
		if view == nil {
			return fmt.Errorf("view for post %s vanished", postID)
		}
		if created {
			if _, err := s.postRepo.IncrementViews(ctx, postID, true); err != nil {
				return err
			}
		}

		completed, err := s.repo.MarkCompleted(ctx, view.ID, watchTimeMs)
		if err != nil {
			return err
		}
		if completed {
			if err := s.postRepo.IncrementCompletedViews(ctx, postID); err != nil {
				return err
			}
		}

		if post.UserID == userID {
			result.Message = MessageSelfView
			return s.fillBalance(ctx, result, userID)
		}

		claimed, err := s.repo.ClaimReward(ctx, view.ID)
		if err != nil {
			return err
		}
		if !claimed {
			result.AlreadyRewarded = true
			result.Message = MessageAlreadyRewarded
			return s.fillBalance(ctx, result, userID)
		}

		reward, err := s.rewards.Apply(ctx, domain.RewardAction{
			ActorID: userID,
			OwnerID: post.UserID,
			Kind:    domain.TxReelViewReward,
			PostID:  &postID,
		})
		if err != nil {
			return fmt.Errorf("apply reel view reward: %w", err)
		}
		if !reward.Rewarded {
			result.Message = MessageSelfView
			return s.fillBalance(ctx, result, userID)
		}
		result.Rewarded = true
		result.CoinsEarned = reward.Amount
		result.WalletBalance = reward.ActorBalance
		result.Message = MessageRewarded
		return nil
	})
	if err != nil {
		zap.L().Error("failed to complete view", zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (s *Service) fillBalance(ctx context.Context, result *domain.ViewCompletion, userID uuid.UUID) error {
	wallet, err := s.wallets.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	result.WalletBalance = wallet.Balance
	return nil
}
