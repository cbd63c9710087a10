package followservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/pg"
)

//go:generate mockgen -source=followservice.go -destination=mock_followservice.go -package=followservice

type Repo interface {
	Add(ctx context.Context, followerID, followedID uuid.UUID) (bool, error)
	Remove(ctx context.Context, followerID, followedID uuid.UUID) (bool, error)
	ListFollowers(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error)
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	IncrementFollowCounts(ctx context.Context, followerID, followedID uuid.UUID, delta int64) (following, followers int64, err error)
}

type Service struct {
	repo      Repo
	userRepo  UserRepo
	txManager pg.TXManager
}

func New(repo Repo, userRepo UserRepo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		userRepo:  userRepo,
		txManager: txManager,
	}
}

var (
	ErrSelfFollow   = errors.New("cannot follow yourself")
	ErrUserNotFound = errors.New("user not found")
)

// Follow adds the edge and bumps both counters. Following twice is not an error,
// the result carries AlreadyFollowing instead. Follows never move coins.
func (s *Service) Follow(ctx context.Context, followerID, followedID uuid.UUID) (*domain.FollowResult, error) {
	if followerID == followedID {
		return nil, ErrSelfFollow
	}
	if err := s.ensureUser(ctx, followedID); err != nil {
		return nil, err
	}

	result := &domain.FollowResult{Followed: true}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		added, err := s.repo.Add(ctx, followerID, followedID)
		if err != nil {
			return err
		}
		if !added {
			result.AlreadyFollowing = true
			return nil
		}
		result.FollowingCount, result.FollowersCount, err = s.userRepo.IncrementFollowCounts(ctx, followerID, followedID, 1)
		return err
	})
	if err != nil {
		zap.L().Error("failed to follow user", zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (s *Service) Unfollow(ctx context.Context, followerID, followedID uuid.UUID) (*domain.UnfollowResult, error) {
	if err := s.ensureUser(ctx, followedID); err != nil {
		return nil, err
	}

	result := &domain.UnfollowResult{Unfollowed: true}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		removed, err := s.repo.Remove(ctx, followerID, followedID)
		if err != nil {
			return err
		}
		if !removed {
			result.AlreadyNotFollowing = true
			return nil
		}
		_, _, err = s.userRepo.IncrementFollowCounts(ctx, followerID, followedID, -1)
		return err
	})
	if err != nil {
		zap.L().Error("failed to unfollow user", zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (s *Service) Followers(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListFollowers(ctx, userID)
}

func (s *Service) Following(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListFollowing(ctx, userID)
}

func (s *Service) ensureUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return nil
}
