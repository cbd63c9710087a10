package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Sushil-Jadhav07/bsmart-backend/docs"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	adhandlers "github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/ads"
	authhandlers "github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/auth"
	commenthandlers "github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/comments"
	followhandlers "github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/follows"
	posthandlers "github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/posts"
	savehandlers "github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/saves"
	storyhandlers "github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/stories"
	userhandlers "github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/users"
	vendorhandlers "github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/vendors"
	viewhandlers "github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/views"
	wallethandlers "github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/wallet"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/auth"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/metrics"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/utils"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetMyWallet(w http.ResponseWriter, r *http.Request)
	ListTransactions(w http.ResponseWriter, r *http.Request)
}

type PostHandler interface {
	CreatePost(w http.ResponseWriter, r *http.Request)
	GetPost(w http.ResponseWriter, r *http.Request)
	LikePost(w http.ResponseWriter, r *http.Request)
	UnlikePost(w http.ResponseWriter, r *http.Request)
	GetFeed(w http.ResponseWriter, r *http.Request)
	DeletePost(w http.ResponseWriter, r *http.Request)
}

type CommentHandler interface {
	AddComment(w http.ResponseWriter, r *http.Request)
	GetComments(w http.ResponseWriter, r *http.Request)
	DeleteComment(w http.ResponseWriter, r *http.Request)
	LikeComment(w http.ResponseWriter, r *http.Request)
	UnlikeComment(w http.ResponseWriter, r *http.Request)
}

type SaveHandler interface {
	SavePost(w http.ResponseWriter, r *http.Request)
	UnsavePost(w http.ResponseWriter, r *http.Request)
	GetSavedPosts(w http.ResponseWriter, r *http.Request)
}

type ViewHandler interface {
	AddView(w http.ResponseWriter, r *http.Request)
	CompleteView(w http.ResponseWriter, r *http.Request)
}

type VendorHandler interface {
	CreateVendor(w http.ResponseWriter, r *http.Request)
	GetMyVendor(w http.ResponseWriter, r *http.Request)
	ValidateVendor(w http.ResponseWriter, r *http.Request)
}

type AdHandler interface {
	CreateAd(w http.ResponseWriter, r *http.Request)
	GetFeed(w http.ResponseWriter, r *http.Request)
	GetAd(w http.ResponseWriter, r *http.Request)
	LikeAd(w http.ResponseWriter, r *http.Request)
	RecordView(w http.ResponseWriter, r *http.Request)
	CompleteView(w http.ResponseWriter, r *http.Request)
	ListAds(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	DeleteAd(w http.ResponseWriter, r *http.Request)
	SetFraudFlag(w http.ResponseWriter, r *http.Request)
	AddComment(w http.ResponseWriter, r *http.Request)
	GetComments(w http.ResponseWriter, r *http.Request)
	DeleteComment(w http.ResponseWriter, r *http.Request)
}

type FollowHandler interface {
	FollowUser(w http.ResponseWriter, r *http.Request)
	FollowByParam(w http.ResponseWriter, r *http.Request)
	UnfollowUser(w http.ResponseWriter, r *http.Request)
	GetFollowers(w http.ResponseWriter, r *http.Request)
	GetFollowing(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	ListUsers(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
	UpdateUser(w http.ResponseWriter, r *http.Request)
	GetUserPosts(w http.ResponseWriter, r *http.Request)
}

type StoryHandler interface {
	CreateStory(w http.ResponseWriter, r *http.Request)
	GetFeed(w http.ResponseWriter, r *http.Request)
	GetArchive(w http.ResponseWriter, r *http.Request)
	GetItems(w http.ResponseWriter, r *http.Request)
	ViewItem(w http.ResponseWriter, r *http.Request)
	GetViews(w http.ResponseWriter, r *http.Request)
	DeleteStory(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	WalletHandler  WalletHandler
	PostHandler    PostHandler
	CommentHandler CommentHandler
	SaveHandler    SaveHandler
	ViewHandler    ViewHandler
	VendorHandler  VendorHandler
	AdHandler      AdHandler
	FollowHandler  FollowHandler
	UserHandler    UserHandler
	StoryHandler   StoryHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		WalletHandler:  wallethandlers.New(s.WalletService),
		PostHandler:    posthandlers.New(s.PostService),
		CommentHandler: commenthandlers.New(s.CommentService),
		SaveHandler:    savehandlers.New(s.SaveService),
		ViewHandler:    viewhandlers.New(s.ViewService),
		VendorHandler:  vendorhandlers.New(s.VendorService),
		AdHandler:      adhandlers.New(s.AdService),
		FollowHandler:  followhandlers.New(s.FollowService),
		UserHandler:    userhandlers.New(s.UserService),
		StoryHandler:   storyhandlers.New(s.StoryService),
		jwtService:     jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.Middleware,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", metrics.Handler())
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.NewMiddleware(h.jwtService))

			r.Get("/auth/me", h.AuthHandler.Me)
			r.Get("/wallet/me", h.WalletHandler.GetMyWallet)

			r.Route("/posts", func(r chi.Router) {
				r.Post("/", h.PostHandler.CreatePost)
				r.Get("/feed", h.PostHandler.GetFeed)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.PostHandler.GetPost)
					r.Delete("/", h.PostHandler.DeletePost)
					r.Post("/like", h.PostHandler.LikePost)
					r.Post("/unlike", h.PostHandler.UnlikePost)
					r.Post("/comments", h.CommentHandler.AddComment)
					r.Get("/comments", h.CommentHandler.GetComments)
					r.Post("/save", h.SaveHandler.SavePost)
					r.Post("/unsave", h.SaveHandler.UnsavePost)
				})
			})
			r.Route("/comments/{id}", func(r chi.Router) {
				r.Delete("/", h.CommentHandler.DeleteComment)
				r.Post("/like", h.CommentHandler.LikeComment)
				r.Post("/unlike", h.CommentHandler.UnlikeComment)
			})
			r.Post("/follow", h.FollowHandler.FollowUser)
			r.Post("/unfollow", h.FollowHandler.UnfollowUser)
			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.UserHandler.ListUsers)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.UserHandler.GetUser)
					r.Put("/", h.UserHandler.UpdateUser)
					r.Get("/posts", h.UserHandler.GetUserPosts)
					r.Get("/saved", h.SaveHandler.GetSavedPosts)
					r.Post("/follow", h.FollowHandler.FollowByParam)
					r.Get("/followers", h.FollowHandler.GetFollowers)
					r.Get("/following", h.FollowHandler.GetFollowing)
				})
			})
			r.Route("/stories", func(r chi.Router) {
				r.Post("/", h.StoryHandler.CreateStory)
				r.Get("/feed", h.StoryHandler.GetFeed)
				r.Get("/archive", h.StoryHandler.GetArchive)
				r.Post("/items/{itemID}/view", h.StoryHandler.ViewItem)
				r.Route("/{storyID}", func(r chi.Router) {
					r.Get("/items", h.StoryHandler.GetItems)
					r.Get("/views", h.StoryHandler.GetViews)
					r.Delete("/", h.StoryHandler.DeleteStory)
				})
			})
			r.Route("/views", func(r chi.Router) {
				r.Post("/", h.ViewHandler.AddView)
				r.Post("/complete", h.ViewHandler.CompleteView)
			})
			r.Route("/vendors", func(r chi.Router) {
				r.Post("/", h.VendorHandler.CreateVendor)
				r.Get("/me", h.VendorHandler.GetMyVendor)
			})
			r.Route("/ads", func(r chi.Router) {
				r.Post("/", h.AdHandler.CreateAd)
				r.Get("/feed", h.AdHandler.GetFeed)
				r.Delete("/comments/{commentID}", h.AdHandler.DeleteComment)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.AdHandler.GetAd)
					r.Post("/like", h.AdHandler.LikeAd)
					r.Post("/view", h.AdHandler.RecordView)
					r.Post("/complete", h.AdHandler.CompleteView)
					r.Post("/comments", h.AdHandler.AddComment)
					r.Get("/comments", h.AdHandler.GetComments)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireRole(domain.RoleAdmin))

				r.Get("/wallet", h.WalletHandler.ListTransactions)
				r.Route("/admin", func(r chi.Router) {
					r.Patch("/vendors/{id}/validate", h.VendorHandler.ValidateVendor)
					r.Get("/ads", h.AdHandler.ListAds)
					r.Route("/ads/{id}", func(r chi.Router) {
						r.Patch("/", h.AdHandler.UpdateStatus)
						r.Delete("/", h.AdHandler.DeleteAd)
						r.Patch("/views/{userID}/fraud", h.AdHandler.SetFraudFlag)
					})
				})
			})
		})
	})

	return r
}
