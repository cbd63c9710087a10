package userservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/pg"
)

//go:generate mockgen -source=userservice.go -destination=mock_userservice.go -package=userservice

type Repo interface {
	FindProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	ListProfiles(ctx context.Context, limit, offset int) ([]domain.Profile, error)
	CountUsers(ctx context.Context) (int64, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, upd domain.ProfileUpdate) (*domain.Profile, error)
}

type PostRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Post, error)
}

type Service struct {
	repo     Repo
	postRepo PostRepo
}

func New(repo Repo, postRepo PostRepo) *Service {
	return &Service{
		repo:     repo,
		postRepo: postRepo,
	}
}

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrForbidden        = errors.New("not allowed to update this user")
	ErrNothingToUpdate  = errors.New("no fields to update")
	ErrUsernameTaken    = errors.New("username already taken")
	ErrUsernameTooShort = errors.New("username must be at least 3 characters")
)

// redact hides contact details from everyone but the user and admins.
func redact(p *domain.Profile, callerID uuid.UUID, role string) {
	if p.ID == callerID || role == domain.RoleAdmin {
		return
	}
	p.Email = ""
	p.Phone = ""
}

func (s *Service) GetProfile(ctx context.Context, id, callerID uuid.UUID, role string) (*domain.Profile, error) {
	profile, err := s.repo.FindProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrUserNotFound
	}
	redact(profile, callerID, role)
	return profile, nil
}

func (s *Service) ListProfiles(ctx context.Context, page, limit int, callerID uuid.UUID, role string) (*domain.ProfilePage, error) {
	if page < 1 {
		page = 1
	}
	users, err := s.repo.ListProfiles(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		redact(&users[i], callerID, role)
	}
	return &domain.ProfilePage{Users: users, Total: total, Page: page, Limit: limit}, nil
}

// UpdateProfile lets users edit themselves. Admins may edit anyone. Role and email are not editable here.
func (s *Service) UpdateProfile(ctx context.Context, id, callerID uuid.UUID, role string, upd domain.ProfileUpdate) (*domain.Profile, error) {
	if id != callerID && role != domain.RoleAdmin {
		return nil, ErrForbidden
	}
	if upd.Empty() {
		return nil, ErrNothingToUpdate
	}
	if upd.Username != nil && len(*upd.Username) < 3 {
		return nil, ErrUsernameTooShort
	}

	profile, err := s.repo.UpdateProfile(ctx, id, upd)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		zap.L().Error("failed to update profile", zap.Error(err))
		return nil, err
	}
	if profile == nil {
		return nil, ErrUserNotFound
	}
	return profile, nil
}

func (s *Service) GetUserPosts(ctx context.Context, userID uuid.UUID) ([]domain.Post, error) {
	profile, err := s.repo.FindProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrUserNotFound
	}
	return s.postRepo.ListByUser(ctx, userID)
}
