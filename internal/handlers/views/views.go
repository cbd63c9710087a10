package views

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/dto"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/viewservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/auth"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/utils"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/validate"
)

//go:generate mockgen -source=views.go -destination=mock_service.go -package=views

type Service interface {
	AddView(ctx context.Context, postID, userID uuid.UUID) (*domain.Post, error)
	CompleteView(ctx context.Context, postID, userID uuid.UUID, watchTimeMs *int64) (*domain.ViewCompletion, error)
}

type ViewHandler struct {
	viewService Service
}

func New(viewService Service) *ViewHandler {
	return &ViewHandler{
		viewService: viewService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, viewservice.ErrPostNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Post not found")
	case errors.Is(err, viewservice.ErrNotReel):
		utils.RespondWithError(w, http.StatusBadRequest, "Only reels support views")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// AddView godoc
//
//	@Summary	Record a reel view
//	@Tags		Views
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.ViewRequestDTO	true	"Reel"
//	@Success	200		{object}	dto.ViewResponseDTO
//	@Failure	400		{object}	utils.Response	"Only reels support views"
//	@Failure	404		{object}	utils.Response	"Post not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/views [post]
func (h *ViewHandler) AddView(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req dto.ViewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	postID := req.ResolvedPostID()
	if postID == uuid.Nil {
		utils.RespondWithError(w, http.StatusBadRequest, "post_id is required")
		return
	}

	post, err := h.viewService.AddView(r.Context(), postID, userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ViewResponseDTO{
		Message:          "View recorded",
		ViewsCount:       post.ViewsCount,
		UniqueViewsCount: post.UniqueViewsCount,
	})
}

// CompleteView godoc
//
//	@Summary		Complete a reel view
//	@Description	The first completion by a non-owner pays 20 coins from the reel owner.
//	@Tags			Views
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CompleteViewRequestDTO	true	"Reel"
//	@Success		200		{object}	dto.ViewCompletionResponseDTO
//	@Failure		400		{object}	utils.Response	"Only reels support views"
//	@Failure		404		{object}	utils.Response	"Post not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/views/complete [post]
func (h *ViewHandler) CompleteView(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req dto.CompleteViewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	postID := req.ResolvedPostID()
	if postID == uuid.Nil {
		utils.RespondWithError(w, http.StatusBadRequest, "post_id is required")
		return
	}

	result, err := h.viewService.CompleteView(r.Context(), postID, userID, req.WatchTimeMs)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromViewCompletion(result))
}
