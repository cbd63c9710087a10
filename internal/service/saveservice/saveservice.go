package saveservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/pg"
)

//go:generate mockgen -source=saveservice.go -destination=mock_saveservice.go -package=saveservice

type Repo interface {
	Save(ctx context.Context, userID, postID uuid.UUID) (bool, error)
	Unsave(ctx context.Context, userID, postID uuid.UUID) (bool, error)
	ListPostsByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Post, error)
}

type PostRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
}

type RewardEngine interface {
	Apply(ctx context.Context, action domain.RewardAction) (*domain.Reward, error)
}

type Service struct {
	repo      Repo
	postRepo  PostRepo
	rewards   RewardEngine
	txManager pg.TXManager
}

func New(repo Repo, postRepo PostRepo, rewards RewardEngine, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		postRepo:  postRepo,
		rewards:   rewards,
		txManager: txManager,
	}
}

var (
	ErrPostNotFound = errors.New("post not found")
	ErrAlreadySaved = errors.New("post already saved")
	ErrNotSaved     = errors.New("post not saved")
)

// Save bookmarks the post and pays the saver from the post owner once per active save.
func (s *Service) Save(ctx context.Context, postID, userID uuid.UUID) (*domain.SaveResult, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	result := &domain.SaveResult{Saved: true}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		saved, err := s.repo.Save(ctx, userID, postID)
		if err != nil {
			return err
		}
		if !saved {
			return ErrAlreadySaved
		}
		result.Reward, err = s.rewards.Apply(ctx, domain.RewardAction{
			ActorID: userID,
			OwnerID: post.UserID,
			Kind:    domain.TxSave,
			PostID:  &postID,
		})
		if err != nil {
			return fmt.Errorf("apply save reward: %w", err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrAlreadySaved) {
			zap.L().Error("failed to save post", zap.Error(err))
		}
		return nil, err
	}
	return result, nil
}

// Unsave removes the bookmark. Coins already paid stay where they are.
func (s *Service) Unsave(ctx context.Context, postID, userID uuid.UUID) (*domain.SaveResult, error) {
	removed, err := s.repo.Unsave(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, ErrNotSaved
	}
	return &domain.SaveResult{Saved: false}, nil
}

func (s *Service) GetSavedPosts(ctx context.Context, userID uuid.UUID) ([]domain.Post, error) {
	return s.repo.ListPostsByUserID(ctx, userID)
}
