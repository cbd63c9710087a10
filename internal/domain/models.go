package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleMember = "member"
	RoleVendor = "vendor"
	RoleAdmin  = "admin"
)

const (
	PostTypePost = "post"
	PostTypeReel = "reel"
)

const (
	AdStatusPending  = "pending"
	AdStatusActive   = "active"
	AdStatusPaused   = "paused"
	AdStatusRejected = "rejected"
)

const (
	TxStatusSuccess = "SUCCESS"
	TxStatusFailed  = "FAILED"
)

const DefaultCurrency = "Coins"

// TransactionType is the cause a wallet transaction is tagged with.
type TransactionType string

const (
	TxLike           TransactionType = "LIKE"
	TxComment        TransactionType = "COMMENT"
	TxReply          TransactionType = "REPLY"
	TxSave           TransactionType = "SAVE"
	TxAdReward       TransactionType = "AD_REWARD"
	TxReelViewReward TransactionType = "REEL_VIEW_REWARD"
	TxVendorGrant    TransactionType = "VENDOR_GRANT"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TxLike, TxComment, TxReply, TxSave, TxAdReward, TxReelViewReward, TxVendorGrant:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Username     string    `db:"username"`
	FullName     string    `db:"full_name"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

type Wallet struct {
	ID        int64     `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Balance   int64     `db:"balance"`
	Currency  string    `db:"currency"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Transaction struct {
	ID        int64           `db:"id"`
	UserID    uuid.UUID       `db:"user_id"`
	PostID    *uuid.UUID      `db:"post_id"`
	AdID      *uuid.UUID      `db:"ad_id"`
	Type      TransactionType `db:"type"`
	Amount    int64           `db:"amount"`
	Status    string          `db:"status"`
	CreatedAt time.Time       `db:"created_at"`
}

// LedgerEntry is one signed balance change together with the content that caused it.
type LedgerEntry struct {
	UserID uuid.UUID
	Type   TransactionType
	Amount int64
	PostID *uuid.UUID
	AdID   *uuid.UUID
}

type TransactionFilter struct {
	Type   TransactionType
	UserID *uuid.UUID
	Page   int
	Limit  int
}

func (f TransactionFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

type RewardSummary struct {
	TotalCoinsMinted    int64
	TotalCoinsFromAds   int64
	TotalCoinsFromReels int64
	TotalTransactions   int64
}

type TransactionPage struct {
	Transactions []Transaction
	Total        int64
	Page         int
	Limit        int
	Summary      RewardSummary
}

// RewardAction describes an interaction the reward engine settles.
// Amount is only read for AD_REWARD, every other kind has a fixed amount.
type RewardAction struct {
	ActorID uuid.UUID
	OwnerID uuid.UUID
	Kind    TransactionType
	PostID  *uuid.UUID
	AdID    *uuid.UUID
	Amount  int64
}

type Reward struct {
	Kind         TransactionType
	Amount       int64
	Rewarded     bool
	Reason       string
	ActorBalance int64
	OwnerBalance *int64
}

type Vendor struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	BusinessName string    `db:"business_name"`
	Description  string    `db:"description"`
	Category     string    `db:"category"`
	Phone        string    `db:"phone"`
	Address      string    `db:"address"`
	LogoURL      string    `db:"logo_url"`
	Validated    bool      `db:"validated"`
	CreatedAt    time.Time `db:"created_at"`
}

type Media struct {
	FileName string `json:"file_name"`
	Type     string `json:"type"`
}

type Post struct {
	ID                  uuid.UUID `db:"id"`
	UserID              uuid.UUID `db:"user_id"`
	Caption             string    `db:"caption"`
	Location            string    `db:"location"`
	Type                string    `db:"type"`
	Media               []Media   `db:"media"`
	LikesCount          int64     `db:"likes_count"`
	CommentsCount       int64     `db:"comments_count"`
	ViewsCount          int64     `db:"views_count"`
	UniqueViewsCount    int64     `db:"unique_views_count"`
	CompletedViewsCount int64     `db:"completed_views_count"`
	CreatedAt           time.Time `db:"created_at"`
}

type Comment struct {
	ID         uuid.UUID  `db:"id"`
	PostID     uuid.UUID  `db:"post_id"`
	ParentID   *uuid.UUID `db:"parent_id"`
	UserID     uuid.UUID  `db:"user_id"`
	Username   string     `db:"username"`
	Text       string     `db:"text"`
	LikesCount int64      `db:"likes_count"`
	CreatedAt  time.Time  `db:"created_at"`
}

type CommentPage struct {
	Comments []Comment
	Total    int64
	Page     int
	Limit    int
}

type LikeResult struct {
	Liked      bool
	LikesCount int64
	Reward     *Reward
}

type SaveResult struct {
	Saved  bool
	Reward *Reward
}

type PostView struct {
	ID          int64      `db:"id"`
	PostID      uuid.UUID  `db:"post_id"`
	UserID      uuid.UUID  `db:"user_id"`
	ViewCount   int64      `db:"view_count"`
	Completed   bool       `db:"completed"`
	CompletedAt *time.Time `db:"completed_at"`
	Rewarded    bool       `db:"rewarded"`
	RewardedAt  *time.Time `db:"rewarded_at"`
	WatchTimeMs *int64     `db:"watch_time_ms"`
}

type ViewCompletion struct {
	Completed       bool
	Rewarded        bool
	AlreadyRewarded bool
	CoinsEarned     int64
	WalletBalance   int64
	Message         string
}

// AdMedia is the normalized shape of an ad creative, whatever format the client sent.
type AdMedia struct {
	FileName        string   `json:"file_name"`
	FileURL         string   `json:"file_url"`
	MediaType       string   `json:"media_type"`
	ThumbnailURL    string   `json:"thumbnail_url,omitempty"`
	DurationSeconds float64  `json:"duration_seconds,omitempty"`
	TrimStart       *float64 `json:"trim_start,omitempty"`
	TrimEnd         *float64 `json:"trim_end,omitempty"`
}

type Ad struct {
	ID                  uuid.UUID  `db:"id"`
	VendorID            uuid.UUID  `db:"vendor_id"`
	UserID              uuid.UUID  `db:"user_id"`
	Title               string     `db:"title"`
	Description         string     `db:"description"`
	Category            string     `db:"category"`
	Tags                []string   `db:"tags"`
	Media               []AdMedia  `db:"media"`
	TargetLanguage      string     `db:"target_language"`
	TargetLocation      string     `db:"target_location"`
	CoinsReward         int64      `db:"coins_reward"`
	TotalBudgetCoins    int64      `db:"total_budget_coins"`
	TotalCoinsSpent     int64      `db:"total_coins_spent"`
	Status              string     `db:"status"`
	RejectionReason     string     `db:"rejection_reason"`
	ViewsCount          int64      `db:"views_count"`
	UniqueViewsCount    int64      `db:"unique_views_count"`
	CompletedViewsCount int64      `db:"completed_views_count"`
	LikesCount          int64      `db:"likes_count"`
	CommentsCount       int64      `db:"comments_count"`
	IsDeleted           bool       `db:"is_deleted"`
	DeletedBy           *uuid.UUID `db:"deleted_by"`
	CreatedAt           time.Time  `db:"created_at"`
}

func (a *Ad) RemainingBudget() int64 {
	return a.TotalBudgetCoins - a.TotalCoinsSpent
}

// Available reports whether viewers can still earn from the ad.
func (a *Ad) Available() bool {
	return a.Status == AdStatusActive && !a.IsDeleted
}

// MinDurationSeconds is the shortest creative duration, zero when unknown.
func (a *Ad) MinDurationSeconds() float64 {
	var shortest float64
	for _, m := range a.Media {
		d := m.DurationSeconds
		if m.TrimStart != nil && m.TrimEnd != nil && *m.TrimEnd > *m.TrimStart {
			d = *m.TrimEnd - *m.TrimStart
		}
		if d > 0 && (shortest == 0 || d < shortest) {
			shortest = d
		}
	}
	return shortest
}

type AdFilter struct {
	Status string
	Page   int
	Limit  int
}

type AdPage struct {
	Ads   []Ad
	Total int64
	Page  int
	Limit int
}

type FeedAd struct {
	Ad
	IsLikedByMe    bool
	IsRewardedByMe bool
}

type AdView struct {
	ID            int64      `db:"id"`
	AdID          uuid.UUID  `db:"ad_id"`
	UserID        uuid.UUID  `db:"user_id"`
	ViewCount     int64      `db:"view_count"`
	Completed     bool       `db:"completed"`
	CompletedAt   *time.Time `db:"completed_at"`
	Rewarded      bool       `db:"rewarded"`
	RewardedAt    *time.Time `db:"rewarded_at"`
	CoinsRewarded int64      `db:"coins_rewarded"`
	WatchTimeMs   int64      `db:"watch_time_ms"`
	FraudFlagged  bool       `db:"fraud_flagged"`
}

type AdCompletion struct {
	Completed       bool
	Rewarded        bool
	AlreadyRewarded bool
	FraudFlagged    bool
	Suspicious      bool
	CoinsEarned     int64
	WalletBalance   int64
}
