package viewservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/pg"
)

type mocks struct {
	repo     *MockRepo
	postRepo *MockPostRepo
	rewards  *MockRewardEngine
	wallets  *MockWalletService
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		repo:     NewMockRepo(ctrl),
		postRepo: NewMockPostRepo(ctrl),
		rewards:  NewMockRewardEngine(ctrl),
		wallets:  NewMockWalletService(ctrl),
	}
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	}).AnyTimes()
	return New(m.repo, m.postRepo, m.rewards, m.wallets, txManager), m
}

func TestAddView(t *testing.T) {
	postID, userID := uuid.New(), uuid.New()
	reel := &domain.Post{ID: postID, UserID: uuid.New(), Type: domain.PostTypeReel}

	tests := []struct {
		name          string
		prepareMock   func(m mocks)
		expectedViews int64
		expectedError error
	}{
		{
			name: "First view is unique",
			prepareMock: func(m mocks) {
				m.postRepo.EXPECT().FindByID(gomock.Any(), postID).Return(reel, nil)
				m.repo.EXPECT().Record(gomock.Any(), postID, userID).Return(&domain.PostView{ID: 1, ViewCount: 1}, true, nil)
				m.postRepo.EXPECT().IncrementViews(gomock.Any(), postID, true).Return(&domain.Post{ID: postID, ViewsCount: 1, UniqueViewsCount: 1}, nil)
			},
			expectedViews: 1,
		},
		{
			name: "Repeat view only bumps the total",
			prepareMock: func(m mocks) {
				m.postRepo.EXPECT().FindByID(gomock.Any(), postID).Return(reel, nil)
				m.repo.EXPECT().Record(gomock.Any(), postID, userID).Return(&domain.PostView{ID: 1, ViewCount: 2}, false, nil)
				m.postRepo.EXPECT().IncrementViews(gomock.Any(), postID, false).Return(&domain.Post{ID: postID, ViewsCount: 2, UniqueViewsCount: 1}, nil)
			},
			expectedViews: 2,
		},
		{
			name: "Plain post is rejected",
			prepareMock: func(m mocks) {
				m.postRepo.EXPECT().FindByID(gomock.Any(), postID).Return(&domain.Post{ID: postID, Type: domain.PostTypePost}, nil)
			},
			expectedError: ErrNotReel,
		},
		{
			name: "Missing post",
			prepareMock: func(m mocks) {
				m.postRepo.EXPECT().FindByID(gomock.Any(), postID).Return(nil, nil)
			},
			expectedError: ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			post, err := service.AddView(context.Background(), postID, userID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedViews, post.ViewsCount)
			assert.Equal(t, int64(1), post.UniqueViewsCount)
		})
	}
}

func TestCompleteView(t *testing.T) {
	postID, ownerID, userID := uuid.New(), uuid.New(), uuid.New()
	reel := &domain.Post{ID: postID, UserID: ownerID, Type: domain.PostTypeReel}
	watch := int64(15000)

	tests := []struct {
		name          string
		userID        uuid.UUID
		prepareMock   func(m mocks)
		expected      *domain.ViewCompletion
		expectedError string
	}{
		{
			name:   "Completion without a prior view pays 20",
			userID: userID,
			prepareMock: func(m mocks) {
				m.postRepo.EXPECT().FindByID(gomock.Any(), postID).Return(reel, nil)
				m.repo.EXPECT().Ensure(gomock.Any(), postID, userID).Return(&domain.PostView{ID: 7}, true, nil)
				m.postRepo.EXPECT().IncrementViews(gomock.Any(), postID, true).Return(reel, nil)
				m.repo.EXPECT().MarkCompleted(gomock.Any(), int64(7), &watch).Return(true, nil)
				m.postRepo.EXPECT().IncrementCompletedViews(gomock.Any(), postID).Return(nil)
				m.repo.EXPECT().ClaimReward(gomock.Any(), int64(7)).Return(true, nil)
				m.rewards.EXPECT().Apply(gomock.Any(), domain.RewardAction{ActorID: userID, OwnerID: ownerID, Kind: domain.TxReelViewReward, PostID: &postID}).
					Return(&domain.Reward{Kind: domain.TxReelViewReward, Amount: 20, Rewarded: true, ActorBalance: 20}, nil)
			},
			expected: &domain.ViewCompletion{Completed: true, Rewarded: true, CoinsEarned: 20, WalletBalance: 20, Message: MessageRewarded},
		},
		{
			name:   "Second completion is already rewarded",
			userID: userID,
			prepareMock: func(m mocks) {
				m.postRepo.EXPECT().FindByID(gomock.Any(), postID).Return(reel, nil)
				m.repo.EXPECT().Ensure(gomock.Any(), postID, userID).Return(&domain.PostView{ID: 7, Completed: true, Rewarded: true}, false, nil)
				m.repo.EXPECT().MarkCompleted(gomock.Any(), int64(7), &watch).Return(false, nil)
				m.repo.EXPECT().ClaimReward(gomock.Any(), int64(7)).Return(false, nil)
				m.wallets.EXPECT().GetOrCreate(gomock.Any(), userID).Return(&domain.Wallet{Balance: 20}, nil)
			},
			expected: &domain.ViewCompletion{Completed: true, AlreadyRewarded: true, WalletBalance: 20, Message: MessageAlreadyRewarded},
		},
		{
			name:   "Owner watching own reel",
			userID: ownerID,
			prepareMock: func(m mocks) {
				m.postRepo.EXPECT().FindByID(gomock.Any(), postID).Return(reel, nil)
				m.repo.EXPECT().Ensure(gomock.Any(), postID, ownerID).Return(&domain.PostView{ID: 8}, false, nil)
				m.repo.EXPECT().MarkCompleted(gomock.Any(), int64(8), &watch).Return(true, nil)
				m.postRepo.EXPECT().IncrementCompletedViews(gomock.Any(), postID).Return(nil)
				m.wallets.EXPECT().GetOrCreate(gomock.Any(), ownerID).Return(&domain.Wallet{Balance: 5}, nil)
			},
			expected: &domain.ViewCompletion{Completed: true, WalletBalance: 5, Message: MessageSelfView},
		},
		{
			name:   "Owner watching own reel again is still a self view",
			userID: ownerID,
			prepareMock: func(m mocks) {
				m.postRepo.EXPECT().FindByID(gomock.Any(), postID).Return(reel, nil)
				m.repo.EXPECT().Ensure(gomock.Any(), postID, ownerID).Return(&domain.PostView{ID: 8, Completed: true}, false, nil)
				m.repo.EXPECT().MarkCompleted(gomock.Any(), int64(8), &watch).Return(false, nil)
				m.wallets.EXPECT().GetOrCreate(gomock.Any(), ownerID).Return(&domain.Wallet{Balance: 5}, nil)
			},
			expected: &domain.ViewCompletion{Completed: true, WalletBalance: 5, Message: MessageSelfView},
		},
		{
			name:   "Reward failure rolls back",
			userID: userID,
			prepareMock: func(m mocks) {
				m.postRepo.EXPECT().FindByID(gomock.Any(), postID).Return(reel, nil)
				m.repo.EXPECT().Ensure(gomock.Any(), postID, userID).Return(&domain.PostView{ID: 7}, false, nil)
				m.repo.EXPECT().MarkCompleted(gomock.Any(), int64(7), &watch).Return(true, nil)
				m.postRepo.EXPECT().IncrementCompletedViews(gomock.Any(), postID).Return(nil)
				m.repo.EXPECT().ClaimReward(gomock.Any(), int64(7)).Return(true, nil)
				m.rewards.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: "apply reel view reward: db error",
		},
		{
			name:   "Plain post is rejected",
			userID: userID,
			prepareMock: func(m mocks) {
				m.postRepo.EXPECT().FindByID(gomock.Any(), postID).Return(&domain.Post{ID: postID, Type: domain.PostTypePost}, nil)
			},
			expectedError: ErrNotReel.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			result, err := service.CompleteView(context.Background(), postID, tt.userID, &watch)
			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
