package postservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/pg"
)

//go:generate mockgen -source=postservice.go -destination=mock_postservice.go -package=postservice

type Repo interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	AddLike(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	RemoveLike(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	IsLiked(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	IncrementLikes(ctx context.Context, postID uuid.UUID, delta int64) (int64, error)
	ListFeed(ctx context.Context, viewerID uuid.UUID, limit, offset int) ([]domain.FeedPost, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type RewardEngine interface {
	Apply(ctx context.Context, action domain.RewardAction) (*domain.Reward, error)
}

type Service struct {
	repo      Repo
	rewards   RewardEngine
	txManager pg.TXManager
}

func New(repo Repo, rewards RewardEngine, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		rewards:   rewards,
		txManager: txManager,
	}
}

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrAlreadyLiked    = errors.New("already liked")
	ErrNotLiked        = errors.New("not liked yet")
	ErrInvalidPostType = errors.New("invalid post type")
	ErrForbidden       = errors.New("not allowed to delete this post")
)

func (s *Service) CreatePost(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	switch post.Type {
	case "":
		post.Type = domain.PostTypePost
	case domain.PostTypePost, domain.PostTypeReel:
	default:
		return nil, ErrInvalidPostType
	}
	created, err := s.repo.Create(ctx, post)
	if err != nil {
		zap.L().Error("failed to create post", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// GetPost returns the post and whether viewerID likes it.
func (s *Service) GetPost(ctx context.Context, postID, viewerID uuid.UUID) (*domain.Post, bool, error) {
	post, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return nil, false, err
	}
	if post == nil {
		return nil, false, ErrPostNotFound
	}
	liked, err := s.repo.IsLiked(ctx, postID, viewerID)
	if err != nil {
		return nil, false, err
	}
	return post, liked, nil
}

// Like records the like and pays the liker from the post owner's wallet in one transaction.
func (s *Service) Like(ctx context.Context, postID, userID uuid.UUID) (*domain.LikeResult, error) {
	post, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	result := &domain.LikeResult{Liked: true}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		added, err := s.repo.AddLike(ctx, postID, userID)
		if err != nil {
			return err
		}
		if !added {
			return ErrAlreadyLiked
		}
		if result.LikesCount, err = s.repo.IncrementLikes(ctx, postID, 1); err != nil {
			return err
		}
		result.Reward, err = s.rewards.Apply(ctx, domain.RewardAction{
			ActorID: userID,
			OwnerID: post.UserID,
			Kind:    domain.TxLike,
			PostID:  &postID,
		})
		if err != nil {
			return fmt.Errorf("apply like reward: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Unlike removes the like. Coins already paid stay where they are.
func (s *Service) Unlike(ctx context.Context, postID, userID uuid.UUID) (*domain.LikeResult, error) {
	post, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	result := &domain.LikeResult{}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		removed, err := s.repo.RemoveLike(ctx, postID, userID)
		if err != nil {
			return err
		}
		if !removed {
			return ErrNotLiked
		}
		result.LikesCount, err = s.repo.IncrementLikes(ctx, postID, -1)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Feed lists all posts newest first, flagged with the viewer's likes.
func (s *Service) Feed(ctx context.Context, viewerID uuid.UUID, page, limit int) ([]domain.FeedPost, error) {
	if page < 1 {
		page = 1
	}
	return s.repo.ListFeed(ctx, viewerID, limit, (page-1)*limit)
}

// DeletePost is open to the author and admins. Coins already paid for the post stay paid.
func (s *Service) DeletePost(ctx context.Context, postID, userID uuid.UUID, role string) error {
	post, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.UserID != userID && role != domain.RoleAdmin {
		return ErrForbidden
	}
	deleted, err := s.repo.Delete(ctx, postID)
	if err != nil {
		zap.L().Error("failed to delete post", zap.Error(err))
		return err
	}
	if !deleted {
		return ErrPostNotFound
	}
	return nil
}
