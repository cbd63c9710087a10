package userservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockPostRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	postRepo := NewMockPostRepo(ctrl)
	return New(repo, postRepo), repo, postRepo
}

func strPtr(s string) *string { return &s }

func TestGetProfile(t *testing.T) {
	userID, otherID := uuid.New(), uuid.New()
	profile := func() *domain.Profile {
		return &domain.Profile{ID: userID, Email: "a@bsmart.app", Phone: "123", Username: "alice"}
	}

	tests := []struct {
		name          string
		callerID      uuid.UUID
		role          string
		found         bool
		expectedEmail string
		expectedError error
	}{
		{name: "Own profile shows contact details", callerID: userID, role: domain.RoleMember, found: true, expectedEmail: "a@bsmart.app"},
		{name: "Admin sees contact details", callerID: otherID, role: domain.RoleAdmin, found: true, expectedEmail: "a@bsmart.app"},
		{name: "Others see a redacted profile", callerID: otherID, role: domain.RoleMember, found: true},
		{name: "Unknown user", callerID: otherID, role: domain.RoleMember, expectedError: ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _ := NewMock(t)
			if tt.found {
				repo.EXPECT().FindProfile(gomock.Any(), userID).Return(profile(), nil)
			} else {
				repo.EXPECT().FindProfile(gomock.Any(), userID).Return(nil, nil)
			}

			result, err := service.GetProfile(context.Background(), userID, tt.callerID, tt.role)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedEmail, result.Email)
			assert.Equal(t, "alice", result.Username)
			if tt.expectedEmail == "" {
				assert.Empty(t, result.Phone)
			}
		})
	}
}

func TestListProfiles(t *testing.T) {
	service, repo, _ := NewMock(t)
	callerID := uuid.New()
	users := []domain.Profile{
		{ID: callerID, Email: "me@bsmart.app"},
		{ID: uuid.New(), Email: "other@bsmart.app"},
	}

	repo.EXPECT().ListProfiles(gomock.Any(), 10, 10).Return(users, nil)
	repo.EXPECT().CountUsers(gomock.Any()).Return(int64(12), nil)

	page, err := service.ListProfiles(context.Background(), 2, 10, callerID, domain.RoleMember)
	require.NoError(t, err)
	assert.Equal(t, int64(12), page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, "me@bsmart.app", page.Users[0].Email)
	assert.Empty(t, page.Users[1].Email)
}

func TestUpdateProfile(t *testing.T) {
	userID, otherID := uuid.New(), uuid.New()
	upd := domain.ProfileUpdate{Bio: strPtr("hello")}

	tests := []struct {
		name          string
		callerID      uuid.UUID
		role          string
		upd           domain.ProfileUpdate
		prepareMock   func(repo *MockRepo)
		expectedError error
	}{
		{
			name:     "Self update",
			callerID: userID,
			role:     domain.RoleMember,
			upd:      upd,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().UpdateProfile(gomock.Any(), userID, upd).Return(&domain.Profile{ID: userID, Bio: "hello"}, nil)
			},
		},
		{
			name:     "Admin updates someone else",
			callerID: otherID,
			role:     domain.RoleAdmin,
			upd:      upd,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().UpdateProfile(gomock.Any(), userID, upd).Return(&domain.Profile{ID: userID, Bio: "hello"}, nil)
			},
		},
		{
			name:          "Member updates someone else",
			callerID:      otherID,
			role:          domain.RoleMember,
			upd:           upd,
			prepareMock:   func(repo *MockRepo) {},
			expectedError: ErrForbidden,
		},
		{
			name:          "Empty update",
			callerID:      userID,
			role:          domain.RoleMember,
			prepareMock:   func(repo *MockRepo) {},
			expectedError: ErrNothingToUpdate,
		},
		{
			name:          "Short username",
			callerID:      userID,
			role:          domain.RoleMember,
			upd:           domain.ProfileUpdate{Username: strPtr("ab")},
			prepareMock:   func(repo *MockRepo) {},
			expectedError: ErrUsernameTooShort,
		},
		{
			name:     "Username taken",
			callerID: userID,
			role:     domain.RoleMember,
			upd:      domain.ProfileUpdate{Username: strPtr("bob")},
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().UpdateProfile(gomock.Any(), userID, gomock.Any()).Return(nil, &pgconn.PgError{Code: "23505"})
			},
			expectedError: ErrUsernameTaken,
		},
		{
			name:     "Unknown user",
			callerID: otherID,
			role:     domain.RoleAdmin,
			upd:      upd,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().UpdateProfile(gomock.Any(), userID, upd).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name:     "Database error",
			callerID: userID,
			role:     domain.RoleMember,
			upd:      upd,
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().UpdateProfile(gomock.Any(), userID, upd).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, _ := NewMock(t)
			tt.prepareMock(repo)

			result, err := service.UpdateProfile(context.Background(), userID, tt.callerID, tt.role, tt.upd)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "hello", result.Bio)
		})
	}
}

func TestGetUserPosts(t *testing.T) {
	service, repo, postRepo := NewMock(t)
	userID := uuid.New()
	posts := []domain.Post{{ID: uuid.New(), UserID: userID}}

	repo.EXPECT().FindProfile(gomock.Any(), userID).Return(&domain.Profile{ID: userID}, nil)
	postRepo.EXPECT().ListByUser(gomock.Any(), userID).Return(posts, nil)

	result, err := service.GetUserPosts(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, posts, result)

	missing := uuid.New()
	repo.EXPECT().FindProfile(gomock.Any(), missing).Return(nil, nil)
	_, err = service.GetUserPosts(context.Background(), missing)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
