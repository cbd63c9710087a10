package ads

import (
	"encoding/json"
	"net/http"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/dto"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/auth"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/utils"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/validate"
)

// AddComment godoc
//
//	@Summary		Comment on an ad
//	@Description	Ad comments never earn coins.
//	@Tags			Ads
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Ad ID"
//	@Param			request	body		dto.CreateAdCommentRequestDTO	true	"Comment"
//	@Success		201		{object}	dto.AdCommentDTO
//	@Failure		400		{object}	utils.Response	"Comment text is required"
//	@Failure		404		{object}	utils.Response	"Ad not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/ads/{id}/comments [post]
func (h *AdHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	adID, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ad id")
		return
	}

	var req dto.CreateAdCommentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := h.adService.AddComment(r.Context(), adID, userID, req.Text)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromAdComment(comment))
}

// GetComments godoc
//
//	@Summary		List comments on an ad
//	@Tags			Ads
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id		path		string	true	"Ad ID"
//	@Param			page	query		int		false	"Page"
//	@Param			limit	query		int		false	"Page size"
//	@Success		200		{object}	dto.AdCommentPageResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid ad id"
//	@Failure		404		{object}	utils.Response	"Ad not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/ads/{id}/comments [get]
func (h *AdHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	adID, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ad id")
		return
	}
	page, limit := utils.Pagination(r)

	result, err := h.adService.GetComments(r.Context(), adID, page, limit)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromAdCommentPage(result))
}

// DeleteComment godoc
//
//	@Summary		Delete an ad comment
//	@Description	Open to the comment's author and admins.
//	@Tags			Ads
//	@Security		BearerAuth
//	@Produce		json
//	@Param			commentID	path		string	true	"Comment ID"
//	@Success		200			{object}	utils.Response
//	@Failure		400			{object}	utils.Response	"Invalid comment id"
//	@Failure		403			{object}	utils.Response	"Forbidden"
//	@Failure		404			{object}	utils.Response	"Comment not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/ads/comments/{commentID} [delete]
func (h *AdHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	commentID, err := utils.URLParamUUID(r, "commentID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid comment id")
		return
	}

	if err := h.adService.DeleteComment(r.Context(), commentID, userID, auth.Role(r.Context())); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Comment deleted"})
}
