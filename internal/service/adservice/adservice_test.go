package adservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/pg"
)

const cooldown = 5 * time.Second

type mocks struct {
	repo    *MockRepo
	vendors *MockVendorRepo
	wallets *MockWalletService
	rewards *MockRewardEngine
	limiter *MockLimiter
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		repo:    NewMockRepo(ctrl),
		vendors: NewMockVendorRepo(ctrl),
		wallets: NewMockWalletService(ctrl),
		rewards: NewMockRewardEngine(ctrl),
		limiter: NewMockLimiter(ctrl),
	}
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()
	return New(m.repo, m.vendors, m.wallets, m.rewards, m.limiter, txManager, cooldown), m
}

func TestCreateAd(t *testing.T) {
	userID, vendorID, adID := uuid.New(), uuid.New(), uuid.New()
	validated := &domain.Vendor{ID: vendorID, UserID: userID, Validated: true}

	tests := []struct {
		name          string
		ad            domain.Ad
		prepareMock   func(m mocks)
		expectedError string
		expectedIs    error
	}{
		{
			name: "Budget is reserved",
			ad:   domain.Ad{Title: "Sale", Category: "fashion", CoinsReward: 10, TotalBudgetCoins: 100},
			prepareMock: func(m mocks) {
				m.vendors.EXPECT().FindByUserID(gomock.Any(), userID).Return(validated, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, ad *domain.Ad) (*domain.Ad, error) {
					assert.Equal(t, domain.AdStatusPending, ad.Status)
					assert.Equal(t, vendorID, ad.VendorID)
					ad.ID = adID
					return ad, nil
				})
				m.wallets.EXPECT().Reserve(gomock.Any(), userID, adID, int64(100)).Return(&domain.Wallet{Balance: 4900}, nil)
			},
		},
		{
			name: "Vendor not validated",
			ad:   domain.Ad{Title: "Sale", Category: "fashion", CoinsReward: 10, TotalBudgetCoins: 100},
			prepareMock: func(m mocks) {
				m.vendors.EXPECT().FindByUserID(gomock.Any(), userID).Return(&domain.Vendor{ID: vendorID}, nil)
			},
			expectedIs: ErrVendorNotValidated,
		},
		{
			name: "No vendor profile",
			ad:   domain.Ad{Title: "Sale", Category: "fashion", CoinsReward: 10, TotalBudgetCoins: 100},
			prepareMock: func(m mocks) {
				m.vendors.EXPECT().FindByUserID(gomock.Any(), userID).Return(nil, nil)
			},
			expectedIs: ErrVendorNotValidated,
		},
		{
			name: "Budget below reward",
			ad:   domain.Ad{Title: "Sale", Category: "fashion", CoinsReward: 10, TotalBudgetCoins: 5},
			prepareMock: func(m mocks) {
				m.vendors.EXPECT().FindByUserID(gomock.Any(), userID).Return(validated, nil)
			},
			expectedIs: ErrInvalidAd,
		},
		{
			name: "Missing title",
			ad:   domain.Ad{Category: "fashion", CoinsReward: 10, TotalBudgetCoins: 100},
			prepareMock: func(m mocks) {
				m.vendors.EXPECT().FindByUserID(gomock.Any(), userID).Return(validated, nil)
			},
			expectedError: "invalid ad: title is required",
		},
		{
			name: "Wallet cannot cover the budget",
			ad:   domain.Ad{Title: "Sale", Category: "fashion", CoinsReward: 10, TotalBudgetCoins: 100000},
			prepareMock: func(m mocks) {
				m.vendors.EXPECT().FindByUserID(gomock.Any(), userID).Return(validated, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, ad *domain.Ad) (*domain.Ad, error) {
					ad.ID = adID
					return ad, nil
				})
				m.wallets.EXPECT().Reserve(gomock.Any(), userID, adID, int64(100000)).Return(nil, errors.New("insufficient balance"))
			},
			expectedError: "insufficient balance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			ad := tt.ad
			created, err := service.CreateAd(context.Background(), userID, &ad)
			switch {
			case tt.expectedIs != nil:
				assert.ErrorIs(t, err, tt.expectedIs)
				assert.Nil(t, created)
			case tt.expectedError != "":
				assert.EqualError(t, err, tt.expectedError)
				assert.Nil(t, created)
			default:
				require.NoError(t, err)
				assert.Equal(t, adID, created.ID)
				assert.Equal(t, userID, created.UserID)
			}
		})
	}
}

func TestGetFeed(t *testing.T) {
	service, m := NewMock(t)
	userID := uuid.New()
	first, second := domain.Ad{ID: uuid.New()}, domain.Ad{ID: uuid.New()}
	ids := []uuid.UUID{first.ID, second.ID}

	m.repo.EXPECT().ListActive(gomock.Any(), "food").Return([]domain.Ad{first, second}, nil)
	m.repo.EXPECT().LikedAdIDs(gomock.Any(), userID, ids).Return(map[uuid.UUID]bool{first.ID: true}, nil)
	m.repo.EXPECT().RewardedAdIDs(gomock.Any(), userID, ids).Return(map[uuid.UUID]bool{second.ID: true}, nil)

	feed, err := service.GetFeed(context.Background(), userID, "food")
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.True(t, feed[0].IsLikedByMe)
	assert.False(t, feed[0].IsRewardedByMe)
	assert.False(t, feed[1].IsLikedByMe)
	assert.True(t, feed[1].IsRewardedByMe)
}

func TestGetFeed_Empty(t *testing.T) {
	service, m := NewMock(t)
	m.repo.EXPECT().ListActive(gomock.Any(), "").Return(nil, nil)

	feed, err := service.GetFeed(context.Background(), uuid.New(), "")
	require.NoError(t, err)
	assert.Empty(t, feed)
	assert.NotNil(t, feed)
}

func TestGetAd_Deleted(t *testing.T) {
	service, m := NewMock(t)
	adID := uuid.New()
	m.repo.EXPECT().FindByID(gomock.Any(), adID).Return(&domain.Ad{ID: adID, IsDeleted: true}, nil)

	_, err := service.GetAd(context.Background(), adID)
	assert.ErrorIs(t, err, ErrAdNotFound)
}

func TestToggleLike(t *testing.T) {
	adID, userID := uuid.New(), uuid.New()

	t.Run("Like", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), adID).Return(&domain.Ad{ID: adID}, nil)
		m.repo.EXPECT().AddLike(gomock.Any(), adID, userID).Return(true, nil)
		m.repo.EXPECT().IncrementLikes(gomock.Any(), adID, int64(1)).Return(int64(4), nil)

		result, err := service.ToggleLike(context.Background(), adID, userID)
		require.NoError(t, err)
		assert.Equal(t, &domain.LikeResult{Liked: true, LikesCount: 4}, result)
	})

	t.Run("Second toggle unlikes", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), adID).Return(&domain.Ad{ID: adID}, nil)
		m.repo.EXPECT().AddLike(gomock.Any(), adID, userID).Return(false, nil)
		m.repo.EXPECT().RemoveLike(gomock.Any(), adID, userID).Return(true, nil)
		m.repo.EXPECT().IncrementLikes(gomock.Any(), adID, int64(-1)).Return(int64(3), nil)

		result, err := service.ToggleLike(context.Background(), adID, userID)
		require.NoError(t, err)
		assert.Equal(t, &domain.LikeResult{Liked: false, LikesCount: 3}, result)
	})
}

func TestListAds(t *testing.T) {
	service, m := NewMock(t)
	filter := domain.AdFilter{Status: domain.AdStatusPending, Page: 1, Limit: 20}
	m.repo.EXPECT().List(gomock.Any(), filter).Return(nil, nil)
	m.repo.EXPECT().Count(gomock.Any(), filter).Return(int64(0), nil)

	page, err := service.ListAds(context.Background(), domain.AdFilter{Status: domain.AdStatusPending})
	require.NoError(t, err)
	assert.Equal(t, 20, page.Limit)
	assert.NotNil(t, page.Ads)
}

func TestUpdateStatus(t *testing.T) {
	adID := uuid.New()

	tests := []struct {
		name          string
		status        string
		reason        string
		prepareMock   func(m mocks)
		expectedError error
	}{
		{
			name:   "Reject with reason",
			status: domain.AdStatusRejected,
			reason: "misleading",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().UpdateStatus(gomock.Any(), adID, domain.AdStatusRejected, "misleading").
					Return(&domain.Ad{ID: adID, Status: domain.AdStatusRejected, RejectionReason: "misleading"}, nil)
			},
		},
		{
			name:   "Activation clears the reason",
			status: domain.AdStatusActive,
			reason: "stale",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().UpdateStatus(gomock.Any(), adID, domain.AdStatusActive, "").
					Return(&domain.Ad{ID: adID, Status: domain.AdStatusActive}, nil)
			},
		},
		{
			name:          "Unknown status",
			status:        "archived",
			prepareMock:   func(m mocks) {},
			expectedError: ErrInvalidStatus,
		},
		{
			name:   "Missing ad",
			status: domain.AdStatusPaused,
			prepareMock: func(m mocks) {
				m.repo.EXPECT().UpdateStatus(gomock.Any(), adID, domain.AdStatusPaused, "").Return(nil, nil)
			},
			expectedError: ErrAdNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			ad, err := service.UpdateStatus(context.Background(), adID, tt.status, tt.reason)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.status, ad.Status)
		})
	}
}

func TestDeleteAd(t *testing.T) {
	service, m := NewMock(t)
	adID, adminID := uuid.New(), uuid.New()
	m.repo.EXPECT().SoftDelete(gomock.Any(), adID, adminID).Return(true, nil)
	m.repo.EXPECT().SoftDelete(gomock.Any(), adID, adminID).Return(false, nil)

	assert.NoError(t, service.DeleteAd(context.Background(), adID, adminID))
	assert.ErrorIs(t, service.DeleteAd(context.Background(), adID, adminID), ErrAdNotFound)
}

func TestSetFraudFlag(t *testing.T) {
	service, m := NewMock(t)
	adID, userID := uuid.New(), uuid.New()
	m.repo.EXPECT().SetViewFraudFlag(gomock.Any(), adID, userID, true).Return(true, nil)
	m.repo.EXPECT().SetViewFraudFlag(gomock.Any(), adID, userID, false).Return(false, nil)

	assert.NoError(t, service.SetFraudFlag(context.Background(), adID, userID, true))
	assert.ErrorIs(t, service.SetFraudFlag(context.Background(), adID, userID, false), ErrViewNotFound)
}
