package follows

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/dto"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/followservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/auth"
)

func NewMock(t *testing.T) (*FollowHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func newRequest(method, target, id string, body []byte, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, auth.UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestFollowUser(t *testing.T) {
	userID := uuid.New()
	targetID := uuid.New()

	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "Followed",
			body: `{"followed_user_id":"` + targetID.String() + `"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Follow(gomock.Any(), userID, targetID).Return(&domain.FollowResult{
					Followed:       true,
					FollowingCount: 1,
					FollowersCount: 5,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"followed":true,"already_following":false,"following_count":1,"followers_count":5}`,
		},
		{
			name: "Already following is still ok",
			body: `{"followed_user_id":"` + targetID.String() + `"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Follow(gomock.Any(), userID, targetID).
					Return(&domain.FollowResult{Followed: true, AlreadyFollowing: true}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"followed":true,"already_following":true,"following_count":0,"followers_count":0}`,
		},
		{
			name:         "Missing id",
			body:         `{}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"followed_user_id is required"}`,
		},
		{
			name:         "Invalid body",
			body:         `{"followed_user_id":`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Invalid request body"}`,
		},
		{
			name: "Self follow",
			body: `{"followed_user_id":"` + userID.String() + `"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Follow(gomock.Any(), userID, userID).Return(nil, followservice.ErrSelfFollow)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Cannot follow yourself"}`,
		},
		{
			name: "Unknown user",
			body: `{"followed_user_id":"` + targetID.String() + `"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Follow(gomock.Any(), userID, targetID).Return(nil, followservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			handler.FollowUser(rr, newRequest(http.MethodPost, "/api/follow", "", []byte(tt.body), userID))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestFollowByParam(t *testing.T) {
	userID := uuid.New()
	targetID := uuid.New()

	t.Run("Followed", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Follow(gomock.Any(), userID, targetID).
			Return(&domain.FollowResult{Followed: true, FollowingCount: 2, FollowersCount: 1}, nil)

		rr := httptest.NewRecorder()
		handler.FollowByParam(rr, newRequest(http.MethodPost, "/api/users/x/follow", targetID.String(), nil, userID))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp dto.FollowResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, int64(2), resp.FollowingCount)
	})

	t.Run("Already following conflicts", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Follow(gomock.Any(), userID, targetID).
			Return(&domain.FollowResult{Followed: true, AlreadyFollowing: true}, nil)

		rr := httptest.NewRecorder()
		handler.FollowByParam(rr, newRequest(http.MethodPost, "/api/users/x/follow", targetID.String(), nil, userID))

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.JSONEq(t, `{"message":"Already following"}`, rr.Body.String())
	})

	t.Run("Bad id", func(t *testing.T) {
		handler, _ := NewMock(t)

		rr := httptest.NewRecorder()
		handler.FollowByParam(rr, newRequest(http.MethodPost, "/api/users/x/follow", "abc", nil, userID))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUnfollowUser(t *testing.T) {
	userID := uuid.New()
	targetID := uuid.New()
	body := []byte(`{"followed_user_id":"` + targetID.String() + `"}`)

	t.Run("Unfollowed", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Unfollow(gomock.Any(), userID, targetID).Return(&domain.UnfollowResult{Unfollowed: true}, nil)

		rr := httptest.NewRecorder()
		handler.UnfollowUser(rr, newRequest(http.MethodPost, "/api/unfollow", "", body, userID))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"unfollowed":true,"already_not_following":false}`, rr.Body.String())
	})

	t.Run("Not following", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Unfollow(gomock.Any(), userID, targetID).
			Return(&domain.UnfollowResult{Unfollowed: true, AlreadyNotFollowing: true}, nil)

		rr := httptest.NewRecorder()
		handler.UnfollowUser(rr, newRequest(http.MethodPost, "/api/unfollow", "", body, userID))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"unfollowed":true,"already_not_following":true}`, rr.Body.String())
	})

	t.Run("Service error", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Unfollow(gomock.Any(), userID, targetID).Return(nil, errors.New("db error"))

		rr := httptest.NewRecorder()
		handler.UnfollowUser(rr, newRequest(http.MethodPost, "/api/unfollow", "", body, userID))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestFollowLists(t *testing.T) {
	userID := uuid.New()
	targetID := uuid.New()
	users := []domain.Profile{{ID: uuid.New(), Username: "bob", FollowersCount: 3}}

	t.Run("Followers", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Followers(gomock.Any(), targetID).Return(users, nil)

		rr := httptest.NewRecorder()
		handler.GetFollowers(rr, newRequest(http.MethodGet, "/api/users/x/followers", targetID.String(), nil, userID))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp dto.FollowListResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, "bob", resp.Users[0].Username)
	})

	t.Run("Following of unknown user", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Following(gomock.Any(), targetID).Return(nil, followservice.ErrUserNotFound)

		rr := httptest.NewRecorder()
		handler.GetFollowing(rr, newRequest(http.MethodGet, "/api/users/x/following", targetID.String(), nil, userID))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Empty following", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Following(gomock.Any(), targetID).Return(nil, nil)

		rr := httptest.NewRecorder()
		handler.GetFollowing(rr, newRequest(http.MethodGet, "/api/users/x/following", targetID.String(), nil, userID))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"total":0,"users":[]}`, rr.Body.String())
	})
}
