package commentservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/pg"
)

//go:generate mockgen -source=commentservice.go -destination=mock_commentservice.go -package=commentservice

type Repo interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListByPostID(ctx context.Context, postID uuid.UUID, limit, offset int) ([]domain.Comment, error)
	CountByPostID(ctx context.Context, postID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	AddLike(ctx context.Context, commentID, userID uuid.UUID) (bool, error)
	RemoveLike(ctx context.Context, commentID, userID uuid.UUID) (bool, error)
	IncrementLikes(ctx context.Context, commentID uuid.UUID, delta int64) (int64, error)
}

type PostRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	IncrementComments(ctx context.Context, postID uuid.UUID, delta int64) error
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
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrParentNotFound  = errors.New("parent comment not found")
	ErrNestedReply     = errors.New("cannot reply to a reply")
	ErrParentMismatch  = errors.New("parent comment belongs to another post")
	ErrForbidden       = errors.New("not allowed to delete this comment")
	ErrAlreadyLiked    = errors.New("already liked")
	ErrNotLiked        = errors.New("not liked yet")
)

// AddComment creates a comment, or a reply when parentID is set. Replies go one level deep.
// A comment is paid by the post owner, a reply by the author of the parent comment.
// Every new comment is a fresh reward.
func (s *Service) AddComment(ctx context.Context, postID, userID uuid.UUID, text string, parentID *uuid.UUID) (*domain.Comment, *domain.Reward, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, nil, err
	}
	if post == nil {
		return nil, nil, ErrPostNotFound
	}

	kind, payer := domain.TxComment, post.UserID
	if parentID != nil {
		parent, err := s.repo.FindByID(ctx, *parentID)
		if err != nil {
			return nil, nil, err
		}
		switch {
		case parent == nil:
			return nil, nil, ErrParentNotFound
		case parent.ParentID != nil:
			return nil, nil, ErrNestedReply
		case parent.PostID != postID:
			return nil, nil, ErrParentMismatch
		}
		kind, payer = domain.TxReply, parent.UserID
	}

	var comment *domain.Comment
	var reward *domain.Reward
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		comment, err = s.repo.Create(ctx, &domain.Comment{PostID: postID, ParentID: parentID, UserID: userID, Text: text})
		if err != nil {
			return err
		}
		if err := s.postRepo.IncrementComments(ctx, postID, 1); err != nil {
			return err
		}
		reward, err = s.rewards.Apply(ctx, domain.RewardAction{
			ActorID: userID,
			OwnerID: payer,
			Kind:    kind,
			PostID:  &postID,
		})
		if err != nil {
			return fmt.Errorf("apply %s reward: %w", kind, err)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to add comment", zap.Error(err))
		return nil, nil, err
	}
	return comment, reward, nil
}

func (s *Service) GetComments(ctx context.Context, postID uuid.UUID, page, limit int) (*domain.CommentPage, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if page < 1 {
		page = 1
	}
	comments, err := s.repo.ListByPostID(ctx, postID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	total, err := s.repo.CountByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &domain.CommentPage{Comments: comments, Total: total, Page: page, Limit: limit}, nil
}

// DeleteComment removes the comment and its replies. The author, the post owner and admins may delete.
// Coins paid for the comment are not taken back.
func (s *Service) DeleteComment(ctx context.Context, commentID, userID uuid.UUID, role string) error {
	comment, err := s.repo.FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.UserID != userID && role != domain.RoleAdmin {
		post, err := s.postRepo.FindByID(ctx, comment.PostID)
		if err != nil {
			return err
		}
		if post == nil || post.UserID != userID {
			return ErrForbidden
		}
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		deleted, err := s.repo.Delete(ctx, commentID)
		if err != nil {
			return err
		}
		if deleted == 0 {
			return ErrCommentNotFound
		}
		return s.postRepo.IncrementComments(ctx, comment.PostID, -deleted)
	})
}

// LikeComment never rewards anyone.
func (s *Service) LikeComment(ctx context.Context, commentID, userID uuid.UUID) (*domain.LikeResult, error) {
	return s.toggleLike(ctx, commentID, userID, true)
}

func (s *Service) UnlikeComment(ctx context.Context, commentID, userID uuid.UUID) (*domain.LikeResult, error) {
	return s.toggleLike(ctx, commentID, userID, false)
}

func (s *Service) toggleLike(ctx context.Context, commentID, userID uuid.UUID, like bool) (*domain.LikeResult, error) {
	comment, err := s.repo.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}

	result := &domain.LikeResult{Liked: like}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		delta := int64(1)
		var changed bool
		var err error
		if like {
			changed, err = s.repo.AddLike(ctx, commentID, userID)
		} else {
			delta = -1
			changed, err = s.repo.RemoveLike(ctx, commentID, userID)
		}
		if err != nil {
			return err
		}
		if !changed {
			if like {
				return ErrAlreadyLiked
			}
			return ErrNotLiked
		}
		result.LikesCount, err = s.repo.IncrementLikes(ctx, commentID, delta)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
