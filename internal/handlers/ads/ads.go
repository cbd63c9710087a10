package ads

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/dto"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/adservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/walletservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/auth"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/utils"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/validate"
)

//go:generate mockgen -source=ads.go -destination=mock_service.go -package=ads

type Service interface {
	CreateAd(ctx context.Context, userID uuid.UUID, ad *domain.Ad) (*domain.Ad, error)
	GetFeed(ctx context.Context, userID uuid.UUID, category string) ([]domain.FeedAd, error)
	GetAd(ctx context.Context, id uuid.UUID) (*domain.Ad, error)
	ToggleLike(ctx context.Context, adID, userID uuid.UUID) (*domain.LikeResult, error)
	RecordView(ctx context.Context, adID, userID uuid.UUID) (*domain.AdView, error)
	CompleteView(ctx context.Context, adID, userID uuid.UUID, watchTimeMs int64) (*domain.AdCompletion, error)
	ListAds(ctx context.Context, filter domain.AdFilter) (*domain.AdPage, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status, reason string) (*domain.Ad, error)
	DeleteAd(ctx context.Context, id, adminID uuid.UUID) error
	SetFraudFlag(ctx context.Context, adID, userID uuid.UUID, flagged bool) error
	AddComment(ctx context.Context, adID, userID uuid.UUID, text string) (*domain.AdComment, error)
	GetComments(ctx context.Context, adID uuid.UUID, page, limit int) (*domain.AdCommentPage, error)
	DeleteComment(ctx context.Context, commentID, userID uuid.UUID, role string) error
}

type AdHandler struct {
	adService Service
}

func New(adService Service) *AdHandler {
	return &AdHandler{
		adService: adService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, adservice.ErrInvalidAd):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, adservice.ErrInvalidStatus):
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status")
	case errors.Is(err, walletservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, "Insufficient balance")
	case errors.Is(err, adservice.ErrVendorNotValidated):
		utils.RespondWithError(w, http.StatusForbidden, "Vendor profile is missing or not validated")
	case errors.Is(err, adservice.ErrAdNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Ad not found")
	case errors.Is(err, adservice.ErrAdNotAvailable):
		utils.RespondWithError(w, http.StatusNotFound, "Ad not available")
	case errors.Is(err, adservice.ErrViewNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Ad view not found")
	case errors.Is(err, adservice.ErrBudgetExhausted):
		utils.RespondWithError(w, http.StatusConflict, "Ad budget exhausted")
	case errors.Is(err, adservice.ErrEmptyComment):
		utils.RespondWithError(w, http.StatusBadRequest, "Comment text is required")
	case errors.Is(err, adservice.ErrCommentNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Comment not found")
	case errors.Is(err, adservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// CreateAd godoc
//
//	@Summary		Create an ad
//	@Description	Requires a validated vendor profile. The whole budget is withdrawn from the vendor's wallet and the ad waits for admin approval.
//	@Tags			Ads
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateAdRequestDTO	true	"Ad"
//	@Success		201		{object}	dto.AdDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		403		{object}	utils.Response	"Vendor profile is missing or not validated"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/ads [post]
func (h *AdHandler) CreateAd(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req dto.CreateAdRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ad, err := h.adService.CreateAd(r.Context(), userID, req.ToDomain())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromAd(ad))
}

// GetFeed godoc
//
//	@Summary	Active ads for the caller
//	@Tags		Ads
//	@Security	BearerAuth
//	@Produce	json
//	@Param		category	query		string	false	"Category"
//	@Success	200			{array}		dto.FeedAdDTO
//	@Failure	500			{object}	utils.Response	"Internal server error"
//	@Router		/api/ads/feed [get]
func (h *AdHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	category := strings.TrimSpace(r.URL.Query().Get("category"))

	feed, err := h.adService.GetFeed(r.Context(), userID, category)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromFeed(feed))
}

// GetAd godoc
//
//	@Summary	Get an ad
//	@Tags		Ads
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Ad ID"
//	@Success	200	{object}	dto.AdDTO
//	@Failure	404	{object}	utils.Response	"Ad not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/ads/{id} [get]
func (h *AdHandler) GetAd(w http.ResponseWriter, r *http.Request) {
	adID, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ad id")
		return
	}

	ad, err := h.adService.GetAd(r.Context(), adID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromAd(ad))
}

// LikeAd godoc
//
//	@Summary		Toggle a like on an ad
//	@Description	Ad likes never pay coins.
//	@Tags			Ads
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Ad ID"
//	@Success		200	{object}	dto.LikeResponseDTO
//	@Failure		404	{object}	utils.Response	"Ad not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/ads/{id}/like [post]
func (h *AdHandler) LikeAd(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	adID, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ad id")
		return
	}

	result, err := h.adService.ToggleLike(r.Context(), adID, userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	message := "Ad liked"
	if !result.Liked {
		message = "Ad unliked"
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LikeResponseDTO{
		Message:    message,
		Liked:      result.Liked,
		LikesCount: result.LikesCount,
	})
}

// RecordView godoc
//
//	@Summary	Record an ad impression
//	@Tags		Ads
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Ad ID"
//	@Success	200	{object}	dto.AdViewResponseDTO
//	@Failure	404	{object}	utils.Response	"Ad not available"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/ads/{id}/view [post]
func (h *AdHandler) RecordView(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	adID, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ad id")
		return
	}

	view, err := h.adService.RecordView(r.Context(), adID, userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdViewResponseDTO{
		Message:   "View recorded",
		ViewCount: view.ViewCount,
	})
}

// CompleteView godoc
//
//	@Summary		Complete an ad view
//	@Description	Pays coins_reward from the ad budget once per user. Suspicious completions are not paid and may be retried.
//	@Tags			Ads
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Ad ID"
//	@Param			request	body		dto.CompleteAdRequestDTO	false	"Watch time"
//	@Success		200		{object}	dto.AdCompletionResponseDTO
//	@Failure		404		{object}	utils.Response	"Ad not available"
//	@Failure		409		{object}	utils.Response	"Ad budget exhausted"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/ads/{id}/complete [post]
func (h *AdHandler) CompleteView(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	adID, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ad id")
		return
	}

	var req dto.CompleteAdRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.adService.CompleteView(r.Context(), adID, userID, req.WatchTimeMs)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromAdCompletion(result))
}

// ListAds godoc
//
//	@Summary	List ads
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		status	query		string	false	"Status"
//	@Param		page	query		int		false	"Page"
//	@Param		limit	query		int		false	"Page size"
//	@Success	200		{object}	dto.AdListResponseDTO
//	@Failure	403		{object}	utils.Response	"Forbidden"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/ads [get]
func (h *AdHandler) ListAds(w http.ResponseWriter, r *http.Request) {
	page, limit := utils.Pagination(r)
	filter := domain.AdFilter{
		Status: strings.ToLower(strings.TrimSpace(r.URL.Query().Get("status"))),
		Page:   page,
		Limit:  limit,
	}

	result, err := h.adService.ListAds(r.Context(), filter)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromAdPage(result))
}

// UpdateStatus godoc
//
//	@Summary	Approve, pause or reject an ad
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string							true	"Ad ID"
//	@Param		request	body		dto.UpdateAdStatusRequestDTO	true	"Status"
//	@Success	200		{object}	dto.AdDTO
//	@Failure	400		{object}	utils.Response	"Invalid status"
//	@Failure	404		{object}	utils.Response	"Ad not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/ads/{id} [patch]
func (h *AdHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	adID, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ad id")
		return
	}

	var req dto.UpdateAdStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ad, err := h.adService.UpdateStatus(r.Context(), adID, strings.ToLower(req.Status), req.RejectionReason)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromAd(ad))
}

// DeleteAd godoc
//
//	@Summary	Soft delete an ad
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Ad ID"
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Ad not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/ads/{id} [delete]
func (h *AdHandler) DeleteAd(w http.ResponseWriter, r *http.Request) {
	adminID, _ := auth.UserID(r.Context())
	adID, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ad id")
		return
	}

	if err := h.adService.DeleteAd(r.Context(), adID, adminID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Ad deleted"})
}

// SetFraudFlag godoc
//
//	@Summary	Flag or clear an ad view as fraud
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Ad ID"
//	@Param		userID	path		string					true	"Viewer ID"
//	@Param		request	body		dto.FraudFlagRequestDTO	true	"Flag"
//	@Success	200		{object}	utils.Response
//	@Failure	404		{object}	utils.Response	"Ad view not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/admin/ads/{id}/views/{userID}/fraud [patch]
func (h *AdHandler) SetFraudFlag(w http.ResponseWriter, r *http.Request) {
	adID, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ad id")
		return
	}
	viewerID, err := utils.URLParamUUID(r, "userID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req dto.FraudFlagRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.adService.SetFraudFlag(r.Context(), adID, viewerID, req.FraudFlagged); err != nil {
		respondWithServiceError(w, err)
		return
	}
	message := "Fraud flag cleared"
	if req.FraudFlagged {
		message = "View flagged as fraud"
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: message})
}
