package saves

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/dto"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/saveservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/auth"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/utils"
)

//go:generate mockgen -source=saves.go -destination=mock_service.go -package=saves

type Service interface {
	Save(ctx context.Context, postID, userID uuid.UUID) (*domain.SaveResult, error)
	Unsave(ctx context.Context, postID, userID uuid.UUID) (*domain.SaveResult, error)
	GetSavedPosts(ctx context.Context, userID uuid.UUID) ([]domain.Post, error)
}

type SaveHandler struct {
	saveService Service
}

func New(saveService Service) *SaveHandler {
	return &SaveHandler{
		saveService: saveService,
	}
}

// SavePost godoc
//
//	@Summary		Save a post
//	@Description	The first save pays the saver 10 coins from the post owner.
//	@Tags			Saves
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Post ID"
//	@Success		200	{object}	dto.SaveResponseDTO
//	@Failure		404	{object}	utils.Response	"Post not found"
//	@Failure		409	{object}	utils.Response	"Post already saved"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/posts/{id}/save [post]
func (h *SaveHandler) SavePost(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	postID, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	result, err := h.saveService.Save(r.Context(), postID, userID)
	if err != nil {
		switch {
		case errors.Is(err, saveservice.ErrPostNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Post not found")
		case errors.Is(err, saveservice.ErrAlreadySaved):
			utils.RespondWithError(w, http.StatusConflict, "Post already saved")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SaveResponseDTO{
		Message: "Post saved",
		Saved:   result.Saved,
		Reward:  dto.FromReward(result.Reward),
	})
}

// UnsavePost godoc
//
//	@Summary	Remove a post from saved
//	@Tags		Saves
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Post ID"
//	@Success	200	{object}	dto.SaveResponseDTO
//	@Failure	400	{object}	utils.Response	"Post not saved"
//	@Failure	404	{object}	utils.Response	"Post not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/posts/{id}/unsave [post]
func (h *SaveHandler) UnsavePost(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	postID, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	result, err := h.saveService.Unsave(r.Context(), postID, userID)
	if err != nil {
		switch {
		case errors.Is(err, saveservice.ErrPostNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Post not found")
		case errors.Is(err, saveservice.ErrNotSaved):
			utils.RespondWithError(w, http.StatusBadRequest, "Post not saved")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SaveResponseDTO{
		Message: "Post unsaved",
		Saved:   result.Saved,
	})
}

// GetSavedPosts godoc
//
//	@Summary		List saved posts of a user
//	@Description	Members see their own list; admins may read anyone's.
//	@Tags			Saves
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"User ID"
//	@Success		200	{array}		dto.PostDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{id}/saved [get]
func (h *SaveHandler) GetSavedPosts(w http.ResponseWriter, r *http.Request) {
	callerID, _ := auth.UserID(r.Context())
	userID, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	if userID != callerID && auth.Role(r.Context()) != domain.RoleAdmin {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	posts, err := h.saveService.GetSavedPosts(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromPosts(posts))
}
