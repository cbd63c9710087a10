package views

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/dto"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/viewservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/auth"
)

func NewMock(t *testing.T) (*ViewHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func newRequest(target, body string, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewBufferString(body))
	return req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, userID))
}

func TestAddView(t *testing.T) {
	userID := uuid.New()
	postID := uuid.New()

	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "Counted",
			body: `{"post_id":"` + postID.String() + `"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().AddView(gomock.Any(), postID, userID).
					Return(&domain.Post{ID: postID, ViewsCount: 3, UniqueViewsCount: 2}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"View recorded","views_count":3,"unique_views_count":2}`,
		},
		{
			name: "Legacy postId key",
			body: `{"postId":"` + postID.String() + `"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().AddView(gomock.Any(), postID, userID).Return(&domain.Post{ID: postID, ViewsCount: 1, UniqueViewsCount: 1}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "No post id",
			body:         `{}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"post_id is required"}`,
		},
		{
			name: "Not a reel",
			body: `{"post_id":"` + postID.String() + `"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().AddView(gomock.Any(), postID, userID).Return(nil, viewservice.ErrNotReel)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Only reels support views"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			handler.AddView(rr, newRequest("/api/views", tt.body, userID))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestCompleteView(t *testing.T) {
	userID := uuid.New()
	postID := uuid.New()
	watch := int64(15000)

	t.Run("Rewarded", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().CompleteView(gomock.Any(), postID, userID, &watch).Return(&domain.ViewCompletion{
			Completed:     true,
			Rewarded:      true,
			CoinsEarned:   20,
			WalletBalance: 20,
			Message:       viewservice.MessageRewarded,
		}, nil)

		rr := httptest.NewRecorder()
		handler.CompleteView(rr, newRequest("/api/views/complete", `{"post_id":"`+postID.String()+`","watch_time_ms":15000}`, userID))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp dto.ViewCompletionResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.True(t, resp.Rewarded)
		assert.Equal(t, int64(20), resp.CoinsEarned)
		assert.Equal(t, viewservice.MessageRewarded, resp.Message)
	})

	t.Run("Already rewarded", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().CompleteView(gomock.Any(), postID, userID, (*int64)(nil)).Return(&domain.ViewCompletion{
			Completed:       true,
			AlreadyRewarded: true,
			WalletBalance:   20,
			Message:         viewservice.MessageAlreadyRewarded,
		}, nil)

		rr := httptest.NewRecorder()
		handler.CompleteView(rr, newRequest("/api/views/complete", `{"postId":"`+postID.String()+`"}`, userID))

		require.Equal(t, http.StatusOK, rr.Code)
		var resp dto.ViewCompletionResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.True(t, resp.AlreadyRewarded)
		assert.Equal(t, int64(0), resp.CoinsEarned)
	})

	t.Run("Negative watch time", func(t *testing.T) {
		handler, _ := NewMock(t)

		rr := httptest.NewRecorder()
		handler.CompleteView(rr, newRequest("/api/views/complete", `{"post_id":"`+postID.String()+`","watch_time_ms":-1}`, userID))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
