package dto

import (
	"github.com/google/uuid"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
)

// ViewRequestDTO accepts the post id as post_id or, from older clients, postId.
type ViewRequestDTO struct {
	PostID      uuid.UUID `json:"post_id"`
	PostIDAlias uuid.UUID `json:"postId" swaggerignore:"true"`
}

func (r ViewRequestDTO) ResolvedPostID() uuid.UUID {
	if r.PostID != uuid.Nil {
		return r.PostID
	}
	return r.PostIDAlias
}

type CompleteViewRequestDTO struct {
	ViewRequestDTO
	WatchTimeMs *int64 `json:"watch_time_ms,omitempty" validate:"omitempty,min=0" example:"15000"`
}

type ViewResponseDTO struct {
	Message          string `json:"message" example:"View recorded"`
	ViewsCount       int64  `json:"views_count" example:"10"`
	UniqueViewsCount int64  `json:"unique_views_count" example:"7"`
}

type ViewCompletionResponseDTO struct {
	Message         string `json:"message" example:"Reel completed, coins credited"`
	Completed       bool   `json:"completed" example:"true"`
	Rewarded        bool   `json:"rewarded" example:"true"`
	AlreadyRewarded bool   `json:"already_rewarded" example:"false"`
	CoinsEarned     int64  `json:"coins_earned" example:"20"`
	WalletBalance   int64  `json:"wallet_balance" example:"140"`
}

func FromViewCompletion(c *domain.ViewCompletion) ViewCompletionResponseDTO {
	return ViewCompletionResponseDTO{
		Message:         c.Message,
		Completed:       c.Completed,
		Rewarded:        c.Rewarded,
		AlreadyRewarded: c.AlreadyRewarded,
		CoinsEarned:     c.CoinsEarned,
		WalletBalance:   c.WalletBalance,
	}
}
