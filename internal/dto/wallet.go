package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
)

type WalletDTO struct {
	Balance  int64  `json:"balance" example:"120"`
	Currency string `json:"currency" example:"Coins"`
}

type TransactionDTO struct {
	ID        int64      `json:"id" example:"42"`
	UserID    uuid.UUID  `json:"user_id"`
	PostID    *uuid.UUID `json:"post_id,omitempty"`
	AdID      *uuid.UUID `json:"ad_id,omitempty"`
	Type      string     `json:"type" example:"LIKE"`
	Amount    int64      `json:"amount" example:"10"`
	Status    string     `json:"status" example:"SUCCESS"`
	CreatedAt time.Time  `json:"created_at" example:"2024-05-01T10:00:00Z"`
}

type MyWalletResponseDTO struct {
	Wallet       WalletDTO        `json:"wallet"`
	Transactions []TransactionDTO `json:"transactions"`
}

type RewardSummaryDTO struct {
	TotalCoinsMinted    int64 `json:"total_coins_minted" example:"1500"`
	TotalCoinsFromAds   int64 `json:"total_coins_from_ads" example:"900"`
	TotalCoinsFromReels int64 `json:"total_coins_from_reels" example:"600"`
	TotalTransactions   int64 `json:"total_transactions" example:"87"`
}

type TransactionsPageResponseDTO struct {
	Summary      RewardSummaryDTO `json:"summary"`
	Total        int64            `json:"total" example:"87"`
	Page         int              `json:"page" example:"1"`
	Limit        int              `json:"limit" example:"20"`
	Transactions []TransactionDTO `json:"transactions"`
}

// RewardDTO is attached to responses of actions that may move coins.
type RewardDTO struct {
	Type          string `json:"type" example:"LIKE"`
	Amount        int64  `json:"amount" example:"10"`
	Rewarded      bool   `json:"rewarded" example:"true"`
	Reason        string `json:"reason,omitempty" example:"self_action"`
	WalletBalance int64  `json:"wallet_balance,omitempty" example:"110"`
}

func FromWallet(w *domain.Wallet) WalletDTO {
	return WalletDTO{Balance: w.Balance, Currency: w.Currency}
}

func FromTransactions(txs []domain.Transaction) []TransactionDTO {
	out := make([]TransactionDTO, 0, len(txs))
	for _, tx := range txs {
		out = append(out, TransactionDTO{
			ID:        tx.ID,
			UserID:    tx.UserID,
			PostID:    tx.PostID,
			AdID:      tx.AdID,
			Type:      string(tx.Type),
			Amount:    tx.Amount,
			Status:    tx.Status,
			CreatedAt: tx.CreatedAt,
		})
	}
	return out
}

func FromTransactionPage(p *domain.TransactionPage) TransactionsPageResponseDTO {
	return TransactionsPageResponseDTO{
		Summary: RewardSummaryDTO{
			TotalCoinsMinted:    p.Summary.TotalCoinsMinted,
			TotalCoinsFromAds:   p.Summary.TotalCoinsFromAds,
			TotalCoinsFromReels: p.Summary.TotalCoinsFromReels,
			TotalTransactions:   p.Summary.TotalTransactions,
		},
		Total:        p.Total,
		Page:         p.Page,
		Limit:        p.Limit,
		Transactions: FromTransactions(p.Transactions),
	}
}

func FromReward(r *domain.Reward) *RewardDTO {
	if r == nil {
		return nil
	}
	return &RewardDTO{
		Type:          string(r.Kind),
		Amount:        r.Amount,
		Rewarded:      r.Rewarded,
		Reason:        r.Reason,
		WalletBalance: r.ActorBalance,
	}
}
