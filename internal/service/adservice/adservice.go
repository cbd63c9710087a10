package adservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/pg"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/utils"
)

//go:generate mockgen -source=adservice.go -destination=mock_adservice.go -package=adservice

type Repo interface {
	Create(ctx context.Context, ad *domain.Ad) (*domain.Ad, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Ad, error)
	ListActive(ctx context.Context, category string) ([]domain.Ad, error)
	List(ctx context.Context, filter domain.AdFilter) ([]domain.Ad, error)
	Count(ctx context.Context, filter domain.AdFilter) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status, reason string) (*domain.Ad, error)
	SoftDelete(ctx context.Context, id, deletedBy uuid.UUID) (bool, error)
	IncrementViews(ctx context.Context, id uuid.UUID, unique bool) error
	IncrementCompletedViews(ctx context.Context, id uuid.UUID) error
	Spend(ctx context.Context, id uuid.UUID, amount int64) (bool, error)
	AddLike(ctx context.Context, adID, userID uuid.UUID) (bool, error)
	RemoveLike(ctx context.Context, adID, userID uuid.UUID) (bool, error)
	IncrementLikes(ctx context.Context, adID uuid.UUID, delta int64) (int64, error)
	LikedAdIDs(ctx context.Context, userID uuid.UUID, adIDs []uuid.UUID) (map[uuid.UUID]bool, error)
	RewardedAdIDs(ctx context.Context, userID uuid.UUID, adIDs []uuid.UUID) (map[uuid.UUID]bool, error)
	RecordView(ctx context.Context, adID, userID uuid.UUID) (*domain.AdView, bool, error)
	EnsureView(ctx context.Context, adID, userID uuid.UUID) (*domain.AdView, bool, error)
	MarkViewCompleted(ctx context.Context, id int64, watchTimeMs int64) (bool, error)
	ClaimViewReward(ctx context.Context, id int64, coins int64) (bool, error)
	SetViewFraudFlag(ctx context.Context, adID, userID uuid.UUID, flagged bool) (bool, error)
	CreateComment(ctx context.Context, comment *domain.AdComment) (*domain.AdComment, error)
	FindComment(ctx context.Context, id uuid.UUID) (*domain.AdComment, error)
	ListComments(ctx context.Context, adID uuid.UUID, limit, offset int) ([]domain.AdComment, error)
	CountComments(ctx context.Context, adID uuid.UUID) (int64, error)
	SoftDeleteComment(ctx context.Context, id uuid.UUID) (bool, error)
	IncrementComments(ctx context.Context, adID uuid.UUID, delta int64) (int64, error)
}

type VendorRepo interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Vendor, error)
}

type WalletService interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	Reserve(ctx context.Context, userID, adID uuid.UUID, amount int64) (*domain.Wallet, error)
}

type RewardEngine interface {
	Apply(ctx context.Context, action domain.RewardAction) (*domain.Reward, error)
}

// Limiter keeps a per-user cooldown between paid ad completions.
type Limiter interface {
	Cooling(ctx context.Context, userID uuid.UUID) (bool, error)
	Hit(ctx context.Context, userID uuid.UUID, window time.Duration) error
}

type Service struct {
	repo       Repo
	vendorRepo VendorRepo
	wallets    WalletService
	rewards    RewardEngine
	limiter    Limiter
	txManager  pg.TXManager
	cooldown   time.Duration
}

func New(repo Repo, vendorRepo VendorRepo, wallets WalletService, rewards RewardEngine, limiter Limiter,
	txManager pg.TXManager, cooldown time.Duration) *Service {
	return &Service{
		repo:       repo,
		vendorRepo: vendorRepo,
		wallets:    wallets,
		rewards:    rewards,
		limiter:    limiter,
		txManager:  txManager,
		cooldown:   cooldown,
	}
}

var (
	ErrAdNotFound         = errors.New("ad not found")
	ErrAdNotAvailable     = errors.New("ad not available")
	ErrInvalidAd          = errors.New("invalid ad")
	ErrVendorNotValidated = errors.New("vendor profile is missing or not validated")
	ErrBudgetExhausted    = errors.New("ad budget exhausted")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrViewNotFound       = errors.New("ad view not found")
	ErrAlreadyLiked       = errors.New("already liked")
	ErrNotLiked           = errors.New("not liked yet")
	ErrEmptyComment       = errors.New("comment text is required")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrForbidden          = errors.New("not allowed to delete this comment")
)

func validateAd(ad *domain.Ad) error {
	switch {
	case strings.TrimSpace(ad.Title) == "":
		return fmt.Errorf("%w: title is required", ErrInvalidAd)
	case strings.TrimSpace(ad.Category) == "":
		return fmt.Errorf("%w: category is required", ErrInvalidAd)
	case ad.CoinsReward < 1:
		return fmt.Errorf("%w: coins_reward must be at least 1", ErrInvalidAd)
	case ad.TotalBudgetCoins < ad.CoinsReward:
		return fmt.Errorf("%w: total_budget_coins must cover coins_reward", ErrInvalidAd)
	}
	return nil
}

// CreateAd stores a pending ad and takes its whole budget out of the vendor's wallet in the same transaction.
func (s *Service) CreateAd(ctx context.Context, userID uuid.UUID, ad *domain.Ad) (*domain.Ad, error) {
	vendor, err := s.vendorRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if vendor == nil || !vendor.Validated {
		return nil, ErrVendorNotValidated
	}
	if err := validateAd(ad); err != nil {
		return nil, err
	}

	ad.VendorID = vendor.ID
	ad.UserID = userID
	ad.Status = domain.AdStatusPending
	ad.TotalCoinsSpent = 0

	var created *domain.Ad
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repo.Create(ctx, ad)
		if err != nil {
			return err
		}
		_, err = s.wallets.Reserve(ctx, userID, created.ID, created.TotalBudgetCoins)
		return err
	})
	if err != nil {
		zap.L().Info("ad not created", zap.String("user", userID.String()), zap.Error(err))
		return nil, err
	}
	zap.L().Info("ad created", zap.String("ad", created.ID.String()), zap.Int64("budget", created.TotalBudgetCoins))
	return created, nil
}

// GetFeed lists active ads annotated with the viewer's likes and rewards.
func (s *Service) GetFeed(ctx context.Context, userID uuid.UUID, category string) ([]domain.FeedAd, error) {
	ads, err := s.repo.ListActive(ctx, category)
	if err != nil {
		return nil, err
	}
	feed := make([]domain.FeedAd, 0, len(ads))
	if len(ads) == 0 {
		return feed, nil
	}
	ids := make([]uuid.UUID, len(ads))
	for i, ad := range ads {
		ids[i] = ad.ID
	}

	var liked, rewarded map[uuid.UUID]bool
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		liked, err = s.repo.LikedAdIDs(gctx, userID, ids)
		return err
	})
	g.Go(func() error {
		var err error
		rewarded, err = s.repo.RewardedAdIDs(gctx, userID, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to annotate ad feed", zap.Error(err))
		return nil, err
	}

	for _, ad := range ads {
		feed = append(feed, domain.FeedAd{Ad: ad, IsLikedByMe: liked[ad.ID], IsRewardedByMe: rewarded[ad.ID]})
	}
	return feed, nil
}

func (s *Service) GetAd(ctx context.Context, id uuid.UUID) (*domain.Ad, error) {
	ad, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ad == nil || ad.IsDeleted {
		return nil, ErrAdNotFound
	}
	return ad, nil
}

// ToggleLike likes the ad, or removes the like when it is already there. Ad likes never reward.
func (s *Service) ToggleLike(ctx context.Context, adID, userID uuid.UUID) (*domain.LikeResult, error) {
	if _, err := s.GetAd(ctx, adID); err != nil {
		return nil, err
	}

	result := &domain.LikeResult{}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		added, err := s.repo.AddLike(ctx, adID, userID)
		if err != nil {
			return err
		}
		delta := int64(1)
		if !added {
			removed, err := s.repo.RemoveLike(ctx, adID, userID)
			if err != nil {
				return err
			}
			if !removed {
				return ErrNotLiked
			}
			delta = -1
		}
		result.Liked = added
		result.LikesCount, err = s.repo.IncrementLikes(ctx, adID, delta)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListAds is the admin listing, optionally narrowed to one status.
func (s *Service) ListAds(ctx context.Context, filter domain.AdFilter) (*domain.AdPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = utils.DefaultPageLimit
	}
	if filter.Limit > utils.MaxPageLimit {
		filter.Limit = utils.MaxPageLimit
	}

	page := &domain.AdPage{Page: filter.Page, Limit: filter.Limit}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ads, err := s.repo.List(gctx, filter)
		if err != nil {
			return err
		}
		if ads == nil {
			ads = []domain.Ad{}
		}
		page.Ads = ads
		return nil
	})
	g.Go(func() error {
		total, err := s.repo.Count(gctx, filter)
		page.Total = total
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status, reason string) (*domain.Ad, error) {
	switch status {
	case domain.AdStatusActive, domain.AdStatusPaused:
		reason = ""
	case domain.AdStatusRejected:
	default:
		return nil, ErrInvalidStatus
	}
	ad, err := s.repo.UpdateStatus(ctx, id, status, reason)
	if err != nil {
		return nil, err
	}
	if ad == nil {
		return nil, ErrAdNotFound
	}
	zap.L().Info("ad status changed", zap.String("ad", id.String()), zap.String("status", status))
	return ad, nil
}

// DeleteAd hides the ad. The unspent budget is not refunded.
func (s *Service) DeleteAd(ctx context.Context, id, adminID uuid.UUID) error {
	deleted, err := s.repo.SoftDelete(ctx, id, adminID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAdNotFound
	}
	return nil
}

func (s *Service) SetFraudFlag(ctx context.Context, adID, userID uuid.UUID, flagged bool) error {
	updated, err := s.repo.SetViewFraudFlag(ctx, adID, userID, flagged)
	if err != nil {
		return err
	}
	if !updated {
		return ErrViewNotFound
	}
	return nil
}
