package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/ads"
	authhandlers "github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/auth"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/comments"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/follows"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/posts"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/saves"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/stories"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/users"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/vendors"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/views"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/wallet"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	services := &service.Services{
		AuthService:    authhandlers.NewMockService(ctrl),
		WalletService:  wallet.NewMockService(ctrl),
		PostService:    posts.NewMockService(ctrl),
		CommentService: comments.NewMockService(ctrl),
		SaveService:    saves.NewMockService(ctrl),
		ViewService:    views.NewMockService(ctrl),
		VendorService:  vendors.NewMockService(ctrl),
		AdService:      ads.NewMockService(ctrl),
		FollowService:  follows.NewMockService(ctrl),
		UserService:    users.NewMockService(ctrl),
		StoryService:   stories.NewMockService(ctrl),
	}

	h := New(services, auth.NewJWTService("secret"))
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.AdHandler)
	assert.NotNil(t, h.FollowHandler)
	assert.NotNil(t, h.UserHandler)
	assert.NotNil(t, h.StoryHandler)
}

func newRouter(t *testing.T, jwtService auth.JWTServiceInterface) chi.Router {
	ctrl := gomock.NewController(t)

	authHandler := NewMockAuthHandler(ctrl)
	walletHandler := NewMockWalletHandler(ctrl)
	postHandler := NewMockPostHandler(ctrl)
	commentHandler := NewMockCommentHandler(ctrl)
	saveHandler := NewMockSaveHandler(ctrl)
	viewHandler := NewMockViewHandler(ctrl)
	vendorHandler := NewMockVendorHandler(ctrl)
	adHandler := NewMockAdHandler(ctrl)
	followHandler := NewMockFollowHandler(ctrl)
	userHandler := NewMockUserHandler(ctrl)
	storyHandler := NewMockStoryHandler(ctrl)

	authHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	authHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	authHandler.EXPECT().Me(gomock.Any(), gomock.Any()).AnyTimes()
	walletHandler.EXPECT().GetMyWallet(gomock.Any(), gomock.Any()).AnyTimes()
	walletHandler.EXPECT().ListTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	postHandler.EXPECT().CreatePost(gomock.Any(), gomock.Any()).AnyTimes()
	postHandler.EXPECT().GetPost(gomock.Any(), gomock.Any()).AnyTimes()
	postHandler.EXPECT().LikePost(gomock.Any(), gomock.Any()).AnyTimes()
	postHandler.EXPECT().UnlikePost(gomock.Any(), gomock.Any()).AnyTimes()
	postHandler.EXPECT().GetFeed(gomock.Any(), gomock.Any()).AnyTimes()
	postHandler.EXPECT().DeletePost(gomock.Any(), gomock.Any()).AnyTimes()
	commentHandler.EXPECT().AddComment(gomock.Any(), gomock.Any()).AnyTimes()
	commentHandler.EXPECT().GetComments(gomock.Any(), gomock.Any()).AnyTimes()
	commentHandler.EXPECT().DeleteComment(gomock.Any(), gomock.Any()).AnyTimes()
	commentHandler.EXPECT().LikeComment(gomock.Any(), gomock.Any()).AnyTimes()
	commentHandler.EXPECT().UnlikeComment(gomock.Any(), gomock.Any()).AnyTimes()
	saveHandler.EXPECT().SavePost(gomock.Any(), gomock.Any()).AnyTimes()
	saveHandler.EXPECT().UnsavePost(gomock.Any(), gomock.Any()).AnyTimes()
	saveHandler.EXPECT().GetSavedPosts(gomock.Any(), gomock.Any()).AnyTimes()
	viewHandler.EXPECT().AddView(gomock.Any(), gomock.Any()).AnyTimes()
	viewHandler.EXPECT().CompleteView(gomock.Any(), gomock.Any()).AnyTimes()
	vendorHandler.EXPECT().CreateVendor(gomock.Any(), gomock.Any()).AnyTimes()
	vendorHandler.EXPECT().GetMyVendor(gomock.Any(), gomock.Any()).AnyTimes()
	vendorHandler.EXPECT().ValidateVendor(gomock.Any(), gomock.Any()).AnyTimes()
	adHandler.EXPECT().CreateAd(gomock.Any(), gomock.Any()).AnyTimes()
	adHandler.EXPECT().GetFeed(gomock.Any(), gomock.Any()).AnyTimes()
	adHandler.EXPECT().GetAd(gomock.Any(), gomock.Any()).AnyTimes()
	adHandler.EXPECT().LikeAd(gomock.Any(), gomock.Any()).AnyTimes()
	adHandler.EXPECT().RecordView(gomock.Any(), gomock.Any()).AnyTimes()
	adHandler.EXPECT().CompleteView(gomock.Any(), gomock.Any()).AnyTimes()
	adHandler.EXPECT().ListAds(gomock.Any(), gomock.Any()).AnyTimes()
	adHandler.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).AnyTimes()
	adHandler.EXPECT().DeleteAd(gomock.Any(), gomock.Any()).AnyTimes()
	adHandler.EXPECT().SetFraudFlag(gomock.Any(), gomock.Any()).AnyTimes()
	adHandler.EXPECT().AddComment(gomock.Any(), gomock.Any()).AnyTimes()
	adHandler.EXPECT().GetComments(gomock.Any(), gomock.Any()).AnyTimes()
	adHandler.EXPECT().DeleteComment(gomock.Any(), gomock.Any()).AnyTimes()
	followHandler.EXPECT().FollowUser(gomock.Any(), gomock.Any()).AnyTimes()
	followHandler.EXPECT().FollowByParam(gomock.Any(), gomock.Any()).AnyTimes()
	followHandler.EXPECT().UnfollowUser(gomock.Any(), gomock.Any()).AnyTimes()
	followHandler.EXPECT().GetFollowers(gomock.Any(), gomock.Any()).AnyTimes()
	followHandler.EXPECT().GetFollowing(gomock.Any(), gomock.Any()).AnyTimes()
	userHandler.EXPECT().ListUsers(gomock.Any(), gomock.Any()).AnyTimes()
	userHandler.EXPECT().GetUser(gomock.Any(), gomock.Any()).AnyTimes()
	userHandler.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).AnyTimes()
	userHandler.EXPECT().GetUserPosts(gomock.Any(), gomock.Any()).AnyTimes()
	storyHandler.EXPECT().CreateStory(gomock.Any(), gomock.Any()).AnyTimes()
	storyHandler.EXPECT().GetFeed(gomock.Any(), gomock.Any()).AnyTimes()
	storyHandler.EXPECT().GetArchive(gomock.Any(), gomock.Any()).AnyTimes()
	storyHandler.EXPECT().GetItems(gomock.Any(), gomock.Any()).AnyTimes()
	storyHandler.EXPECT().ViewItem(gomock.Any(), gomock.Any()).AnyTimes()
	storyHandler.EXPECT().GetViews(gomock.Any(), gomock.Any()).AnyTimes()
	storyHandler.EXPECT().DeleteStory(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:    authHandler,
		WalletHandler:  walletHandler,
		PostHandler:    postHandler,
		CommentHandler: commentHandler,
		SaveHandler:    saveHandler,
		ViewHandler:    viewHandler,
		VendorHandler:  vendorHandler,
		AdHandler:      adHandler,
		FollowHandler:  followHandler,
		UserHandler:    userHandler,
		StoryHandler:   storyHandler,
		jwtService:     jwtService,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)
	return router
}

func TestInitRoutes(t *testing.T) {
	jwtService := auth.NewJWTService("secret")
	router := newRouter(t, jwtService)

	memberToken, err := jwtService.GenerateJWT(uuid.New(), domain.RoleMember, time.Now().Add(time.Hour))
	require.NoError(t, err)
	adminToken, err := jwtService.GenerateJWT(uuid.New(), domain.RoleAdmin, time.Now().Add(time.Hour))
	require.NoError(t, err)

	id := uuid.NewString()
	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"GET", "/health", "", http.StatusOK},
		{"GET", "/metrics", "", http.StatusOK},
		{"POST", "/api/auth/register", "", http.StatusOK},
		{"POST", "/api/auth/login", "", http.StatusOK},
		{"GET", "/api/auth/me", "", http.StatusUnauthorized},
		{"GET", "/api/auth/me", "garbage", http.StatusUnauthorized},
		{"GET", "/api/auth/me", memberToken, http.StatusOK},
		{"GET", "/api/wallet/me", "", http.StatusUnauthorized},
		{"GET", "/api/wallet/me", memberToken, http.StatusOK},
		{"POST", "/api/posts", memberToken, http.StatusOK},
		{"GET", "/api/posts/" + id, memberToken, http.StatusOK},
		{"POST", "/api/posts/" + id + "/like", "", http.StatusUnauthorized},
		{"POST", "/api/posts/" + id + "/like", memberToken, http.StatusOK},
		{"POST", "/api/posts/" + id + "/unlike", memberToken, http.StatusOK},
		{"POST", "/api/posts/" + id + "/comments", memberToken, http.StatusOK},
		{"GET", "/api/posts/" + id + "/comments", memberToken, http.StatusOK},
		{"POST", "/api/posts/" + id + "/save", memberToken, http.StatusOK},
		{"POST", "/api/posts/" + id + "/unsave", memberToken, http.StatusOK},
		{"DELETE", "/api/comments/" + id, memberToken, http.StatusOK},
		{"POST", "/api/comments/" + id + "/like", memberToken, http.StatusOK},
		{"POST", "/api/comments/" + id + "/unlike", memberToken, http.StatusOK},
		{"GET", "/api/users/" + id + "/saved", memberToken, http.StatusOK},
		{"POST", "/api/views", memberToken, http.StatusOK},
		{"POST", "/api/views/complete", memberToken, http.StatusOK},
		{"POST", "/api/vendors", memberToken, http.StatusOK},
		{"GET", "/api/vendors/me", memberToken, http.StatusOK},
		{"POST", "/api/ads", memberToken, http.StatusOK},
		{"GET", "/api/ads/feed", memberToken, http.StatusOK},
		{"GET", "/api/ads/" + id, memberToken, http.StatusOK},
		{"POST", "/api/ads/" + id + "/like", memberToken, http.StatusOK},
		{"POST", "/api/ads/" + id + "/view", memberToken, http.StatusOK},
		{"POST", "/api/ads/" + id + "/complete", "", http.StatusUnauthorized},
		{"POST", "/api/ads/" + id + "/complete", memberToken, http.StatusOK},
		{"GET", "/api/wallet", memberToken, http.StatusForbidden},
		{"GET", "/api/wallet", adminToken, http.StatusOK},
		{"PATCH", "/api/admin/vendors/" + id + "/validate", memberToken, http.StatusForbidden},
		{"PATCH", "/api/admin/vendors/" + id + "/validate", adminToken, http.StatusOK},
		{"GET", "/api/admin/ads", adminToken, http.StatusOK},
		{"PATCH", "/api/admin/ads/" + id, adminToken, http.StatusOK},
		{"DELETE", "/api/admin/ads/" + id, memberToken, http.StatusForbidden},
		{"DELETE", "/api/admin/ads/" + id, adminToken, http.StatusOK},
		{"PATCH", "/api/admin/ads/" + id + "/views/" + id + "/fraud", adminToken, http.StatusOK},
		{"GET", "/api/posts/feed", memberToken, http.StatusOK},
		{"DELETE", "/api/posts/" + id, memberToken, http.StatusOK},
		{"POST", "/api/ads/" + id + "/comments", memberToken, http.StatusOK},
		{"GET", "/api/ads/" + id + "/comments", memberToken, http.StatusOK},
		{"DELETE", "/api/ads/comments/" + id, memberToken, http.StatusOK},
		{"POST", "/api/follow", "", http.StatusUnauthorized},
		{"POST", "/api/follow", memberToken, http.StatusOK},
		{"POST", "/api/unfollow", memberToken, http.StatusOK},
		{"POST", "/api/users/" + id + "/follow", memberToken, http.StatusOK},
		{"GET", "/api/users/" + id + "/followers", memberToken, http.StatusOK},
		{"GET", "/api/users/" + id + "/following", memberToken, http.StatusOK},
		{"GET", "/api/users", memberToken, http.StatusOK},
		{"GET", "/api/users/" + id, memberToken, http.StatusOK},
		{"PUT", "/api/users/" + id, memberToken, http.StatusOK},
		{"GET", "/api/users/" + id + "/posts", memberToken, http.StatusOK},
		{"POST", "/api/stories", memberToken, http.StatusOK},
		{"GET", "/api/stories/feed", memberToken, http.StatusOK},
		{"GET", "/api/stories/archive", memberToken, http.StatusOK},
		{"GET", "/api/stories/" + id + "/items", memberToken, http.StatusOK},
		{"POST", "/api/stories/items/" + id + "/view", memberToken, http.StatusOK},
		{"GET", "/api/stories/" + id + "/views", memberToken, http.StatusOK},
		{"DELETE", "/api/stories/" + id, memberToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
