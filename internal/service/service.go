package service

import (
	"time"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/ads"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/auth"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/comments"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/follows"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/posts"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/saves"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/stories"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/users"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/vendors"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/views"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/handlers/wallet"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/pg"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/repo"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/adservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/authservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/commentservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/followservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/postservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/rewardservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/saveservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/storyservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/userservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/vendorservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/viewservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/walletservice"
	pkgauth "github.com/Sushil-Jadhav07/bsmart-backend/pkg/auth"
)

type Services struct {
	AuthService    auth.Service
	WalletService  wallet.Service
	PostService    posts.Service
	CommentService comments.Service
	SaveService    saves.Service
	ViewService    views.Service
	VendorService  vendors.Service
	AdService      ads.Service
	FollowService  follows.Service
	UserService    users.Service
	StoryService   stories.Service
}

type Options struct {
	HashService          pkgauth.HashServiceInterface
	JWTService           pkgauth.JWTServiceInterface
	Limiter              adservice.Limiter
	TokenTTL             time.Duration
	AdminEmails          []string
	VendorGrantCoins     int64
	AdCompletionCooldown time.Duration
}

func New(repo *repo.Repositories, txManager pg.TXManager, opts Options) *Services {
	walletService := walletservice.New(repo.WalletRepo, repo.TransactionRepo, txManager)
	engine := rewardservice.NewEngine(walletService, txManager)

	return &Services{
		AuthService: authservice.New(repo.UserRepo, walletService, opts.HashService, opts.JWTService,
			txManager, opts.TokenTTL, opts.AdminEmails),
		WalletService:  walletService,
		PostService:    postservice.New(repo.PostRepo, engine, txManager),
		CommentService: commentservice.New(repo.CommentRepo, repo.PostRepo, engine, txManager),
		SaveService:    saveservice.New(repo.SaveRepo, repo.PostRepo, engine, txManager),
		ViewService:    viewservice.New(repo.ViewRepo, repo.PostRepo, engine, walletService, txManager),
		VendorService:  vendorservice.New(repo.VendorRepo, repo.UserRepo, walletService, txManager, opts.VendorGrantCoins),
		AdService: adservice.New(repo.AdRepo, repo.VendorRepo, walletService, engine, opts.Limiter,
			txManager, opts.AdCompletionCooldown),
		FollowService: followservice.New(repo.FollowRepo, repo.UserRepo, txManager),
		UserService:   userservice.New(repo.UserRepo, repo.PostRepo),
		StoryService:  storyservice.New(repo.StoryRepo, txManager),
	}
}
