package repo

import (
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/adsweeper"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/pg"
	adrepo "github.com/Sushil-Jadhav07/bsmart-backend/internal/repo/ad-repo"
	commentrepo "github.com/Sushil-Jadhav07/bsmart-backend/internal/repo/comment-repo"
	followrepo "github.com/Sushil-Jadhav07/bsmart-backend/internal/repo/follow-repo"
	postrepo "github.com/Sushil-Jadhav07/bsmart-backend/internal/repo/post-repo"
	saverepo "github.com/Sushil-Jadhav07/bsmart-backend/internal/repo/save-repo"
	storyrepo "github.com/Sushil-Jadhav07/bsmart-backend/internal/repo/story-repo"
	transactionrepo "github.com/Sushil-Jadhav07/bsmart-backend/internal/repo/transaction-repo"
	userrepo "github.com/Sushil-Jadhav07/bsmart-backend/internal/repo/user-repo"
	vendorrepo "github.com/Sushil-Jadhav07/bsmart-backend/internal/repo/vendor-repo"
	viewrepo "github.com/Sushil-Jadhav07/bsmart-backend/internal/repo/view-repo"
	walletrepo "github.com/Sushil-Jadhav07/bsmart-backend/internal/repo/wallet-repo"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/adservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/authservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/commentservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/followservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/postservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/saveservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/storyservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/userservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/vendorservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/viewservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/walletservice"
)

// UserRepo serves sign-in, vendor promotion, profiles and follow counters.
type UserRepo interface {
	authservice.Repo
	vendorservice.UserRepo
	followservice.UserRepo
	userservice.Repo
}

type PostRepo interface {
	postservice.Repo
	commentservice.PostRepo
	saveservice.PostRepo
	viewservice.PostRepo
	userservice.PostRepo
}

type AdRepo interface {
	adservice.Repo
	adsweeper.Repo
}

type Repositories struct {
	UserRepo        UserRepo
	WalletRepo      walletservice.WalletRepo
	TransactionRepo walletservice.TransactionRepo
	PostRepo        PostRepo
	CommentRepo     commentservice.Repo
	SaveRepo        saveservice.Repo
	ViewRepo        viewservice.Repo
	VendorRepo      vendorservice.Repo
	AdRepo          AdRepo
	FollowRepo      followservice.Repo
	StoryRepo       storyservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		WalletRepo:      walletrepo.New(conn, txManager),
		TransactionRepo: transactionrepo.New(conn),
		PostRepo:        postrepo.New(conn),
		CommentRepo:     commentrepo.New(conn),
		SaveRepo:        saverepo.New(conn),
		ViewRepo:        viewrepo.New(conn),
		VendorRepo:      vendorrepo.New(conn),
		AdRepo:          adrepo.New(conn),
		FollowRepo:      followrepo.New(conn),
		StoryRepo:       storyrepo.New(conn),
	}
}
