package wallet

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/dto"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/walletservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/auth"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/utils"
)

//go:generate mockgen -source=wallet.go -destination=mock_service.go -package=wallet

type Service interface {
	GetMyWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, []domain.Transaction, error)
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) (*domain.TransactionPage, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetMyWallet godoc
//
//	@Summary		Get my wallet
//	@Description	Current coin balance and the 50 most recent transactions of the authenticated user.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.MyWalletResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/me [get]
func (h *WalletHandler) GetMyWallet(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	wallet, transactions, err := h.walletService.GetMyWallet(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.MyWalletResponseDTO{
		Wallet:       dto.FromWallet(wallet),
		Transactions: dto.FromTransactions(transactions),
	})
}

// ListTransactions godoc
//
//	@Summary		List all wallet transactions
//	@Description	Admin page of wallet transactions with a global summary of minted coins.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			type	query		string	false	"Transaction type"	Enums(LIKE, COMMENT, REPLY, SAVE, AD_REWARD, REEL_VIEW_REWARD, VENDOR_GRANT)
//	@Param			user_id	query		string	false	"Filter by user"
//	@Param			page	query		int		false	"Page number"	default(1)
//	@Param			limit	query		int		false	"Page size"		default(20)
//	@Success		200		{object}	dto.TransactionsPageResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid filter"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin only"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet [get]
func (h *WalletHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	page, limit := utils.Pagination(r)
	filter := domain.TransactionFilter{
		Type:  domain.TransactionType(strings.ToUpper(r.URL.Query().Get("type"))),
		Page:  page,
		Limit: limit,
	}
	if raw := r.URL.Query().Get("user_id"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid user_id")
			return
		}
		filter.UserID = &userID
	}

	result, err := h.walletService.ListTransactions(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrInvalidType):
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid transaction type")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromTransactionPage(result))
}
