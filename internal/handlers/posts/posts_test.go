package posts

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
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/postservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/auth"
)

func NewMock(t *testing.T) (*PostHandler, *MockService) {
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

func TestCreatePost(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "Reel created",
			body: `{"caption":"Sunset","type":"reel","media":[{"file_name":"a.mp4","type":"video"}]}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreatePost(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Post) (*domain.Post, error) {
						assert.Equal(t, userID, p.UserID)
						assert.Equal(t, domain.PostTypeReel, p.Type)
						p.ID = uuid.New()
						return p, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid body",
			body:         `{"caption":`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Invalid request body"}`,
		},
		{
			name:         "Unknown type",
			body:         `{"caption":"x","type":"story"}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Service error",
			body: `{"caption":"x"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			handler.CreatePost(rr, newRequest(http.MethodPost, "/api/posts", "", []byte(tt.body), userID))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestGetPost(t *testing.T) {
	userID := uuid.New()
	postID := uuid.New()

	tests := []struct {
		name         string
		id           string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Found and liked",
			id:   postID.String(),
			prepareMock: func(service *MockService) {
				service.EXPECT().GetPost(gomock.Any(), postID, userID).
					Return(&domain.Post{ID: postID, Type: domain.PostTypePost, LikesCount: 1}, true, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Bad id",
			id:           "abc",
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Not found",
			id:   postID.String(),
			prepareMock: func(service *MockService) {
				service.EXPECT().GetPost(gomock.Any(), postID, userID).Return(nil, false, postservice.ErrPostNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			handler.GetPost(rr, newRequest(http.MethodGet, "/api/posts/"+tt.id, tt.id, nil, userID))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if rr.Code == http.StatusOK {
				var resp dto.PostDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.True(t, resp.IsLikedByMe)
				assert.Equal(t, int64(1), resp.LikesCount)
			}
		})
	}
}

func TestLikeAndUnlike(t *testing.T) {
	userID := uuid.New()
	postID := uuid.New()

	t.Run("Like pays reward", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Like(gomock.Any(), postID, userID).Return(&domain.LikeResult{
			Liked:      true,
			LikesCount: 1,
			Reward:     &domain.Reward{Kind: domain.TxLike, Amount: 10, Rewarded: true, ActorBalance: 10},
		}, nil)

		rr := httptest.NewRecorder()
		handler.LikePost(rr, newRequest(http.MethodPost, "/api/posts/x/like", postID.String(), nil, userID))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp dto.LikeResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Post liked", resp.Message)
		assert.True(t, resp.Liked)
		require.NotNil(t, resp.Reward)
		assert.Equal(t, int64(10), resp.Reward.WalletBalance)
	})

	t.Run("Like twice", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Like(gomock.Any(), postID, userID).Return(nil, postservice.ErrAlreadyLiked)

		rr := httptest.NewRecorder()
		handler.LikePost(rr, newRequest(http.MethodPost, "/api/posts/x/like", postID.String(), nil, userID))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"message":"Already liked"}`, rr.Body.String())
	})

	t.Run("Unlike", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Unlike(gomock.Any(), postID, userID).Return(&domain.LikeResult{Liked: false}, nil)

		rr := httptest.NewRecorder()
		handler.UnlikePost(rr, newRequest(http.MethodPost, "/api/posts/x/unlike", postID.String(), nil, userID))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp dto.LikeResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Post unliked", resp.Message)
		assert.Nil(t, resp.Reward)
	})

	t.Run("Unlike without like", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Unlike(gomock.Any(), postID, userID).Return(nil, postservice.ErrNotLiked)

		rr := httptest.NewRecorder()
		handler.UnlikePost(rr, newRequest(http.MethodPost, "/api/posts/x/unlike", postID.String(), nil, userID))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGetFeed(t *testing.T) {
	userID := uuid.New()

	t.Run("Feed with usernames", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Feed(gomock.Any(), userID, 2, 10).Return([]domain.FeedPost{
			{Post: domain.Post{ID: uuid.New(), Type: domain.PostTypeReel}, Username: "alice", IsLikedByMe: true},
		}, nil)

		rr := httptest.NewRecorder()
		handler.GetFeed(rr, newRequest(http.MethodGet, "/api/posts/feed?page=2&limit=10", "", nil, userID))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.FeedPostDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "alice", resp[0].Username)
		assert.True(t, resp[0].IsLikedByMe)
	})

	t.Run("Service error", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Feed(gomock.Any(), userID, 1, 20).Return(nil, errors.New("db error"))

		rr := httptest.NewRecorder()
		handler.GetFeed(rr, newRequest(http.MethodGet, "/api/posts/feed", "", nil, userID))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestDeletePost(t *testing.T) {
	userID := uuid.New()
	postID := uuid.New()

	withRole := func(r *http.Request, role string) *http.Request {
		return r.WithContext(context.WithValue(r.Context(), auth.RoleKey, role))
	}

	tests := []struct {
		name         string
		id           string
		role         string
		err          error
		callsService bool
		expectedCode int
	}{
		{name: "Author deletes", id: postID.String(), role: domain.RoleMember, callsService: true, expectedCode: http.StatusOK},
		{name: "Admin deletes", id: postID.String(), role: domain.RoleAdmin, callsService: true, expectedCode: http.StatusOK},
		{name: "Someone else", id: postID.String(), role: domain.RoleMember, err: postservice.ErrForbidden, callsService: true, expectedCode: http.StatusForbidden},
		{name: "Missing", id: postID.String(), role: domain.RoleMember, err: postservice.ErrPostNotFound, callsService: true, expectedCode: http.StatusNotFound},
		{name: "Bad id", id: "abc", role: domain.RoleMember, expectedCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			if tt.callsService {
				service.EXPECT().DeletePost(gomock.Any(), postID, userID, tt.role).Return(tt.err)
			}

			rr := httptest.NewRecorder()
			handler.DeletePost(rr, withRole(newRequest(http.MethodDelete, "/api/posts/"+tt.id, tt.id, nil, userID), tt.role))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
