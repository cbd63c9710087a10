package follows

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/dto"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/followservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/auth"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/utils"
)

//go:generate mockgen -source=follows.go -destination=mock_service.go -package=follows

type Service interface {
	Follow(ctx context.Context, followerID, followedID uuid.UUID) (*domain.FollowResult, error)
	Unfollow(ctx context.Context, followerID, followedID uuid.UUID) (*domain.UnfollowResult, error)
	Followers(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error)
	Following(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error)
}

type FollowHandler struct {
	followService Service
}

func New(followService Service) *FollowHandler {
	return &FollowHandler{
		followService: followService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, followservice.ErrSelfFollow):
		utils.RespondWithError(w, http.StatusBadRequest, "Cannot follow yourself")
	case errors.Is(err, followservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decodeFollowed(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	var req dto.FollowRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return uuid.Nil, false
	}
	if req.FollowedUserID == uuid.Nil {
		utils.RespondWithError(w, http.StatusBadRequest, "followed_user_id is required")
		return uuid.Nil, false
	}
	return req.FollowedUserID, true
}

// FollowUser godoc
//
//	@Summary		Follow a user
//	@Description	Following an already followed user succeeds with already_following set. No coins move.
//	@Tags			Follows
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.FollowRequestDTO	true	"User to follow"
//	@Success		200		{object}	dto.FollowResponseDTO
//	@Failure		400		{object}	utils.Response	"Cannot follow yourself"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/follow [post]
func (h *FollowHandler) FollowUser(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	followedID, ok := decodeFollowed(w, r)
	if !ok {
		return
	}

	result, err := h.followService.Follow(r.Context(), userID, followedID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FollowResponseDTO(*result))
}

// FollowByParam godoc
//
//	@Summary		Follow a user by path
//	@Tags			Follows
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"User ID"
//	@Success		200	{object}	dto.FollowResponseDTO
//	@Failure		400	{object}	utils.Response	"Cannot follow yourself"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		409	{object}	utils.Response	"Already following"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{id}/follow [post]
func (h *FollowHandler) FollowByParam(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	followedID, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	result, err := h.followService.Follow(r.Context(), userID, followedID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if result.AlreadyFollowing {
		utils.RespondWithError(w, http.StatusConflict, "Already following")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FollowResponseDTO(*result))
}

// UnfollowUser godoc
//
//	@Summary		Unfollow a user
//	@Tags			Follows
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.FollowRequestDTO	true	"User to unfollow"
//	@Success		200		{object}	dto.UnfollowResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/unfollow [post]
func (h *FollowHandler) UnfollowUser(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	followedID, ok := decodeFollowed(w, r)
	if !ok {
		return
	}

	result, err := h.followService.Unfollow(r.Context(), userID, followedID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UnfollowResponseDTO(*result))
}

// GetFollowers godoc
//
//	@Summary		List a user's followers
//	@Tags			Follows
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"User ID"
//	@Success		200	{object}	dto.FollowListResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid user id"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{id}/followers [get]
func (h *FollowHandler) GetFollowers(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.followService.Followers)
}

// GetFollowing godoc
//
//	@Summary		List the users a user follows
//	@Tags			Follows
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"User ID"
//	@Success		200	{object}	dto.FollowListResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid user id"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{id}/following [get]
func (h *FollowHandler) GetFollowing(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.followService.Following)
}

func (h *FollowHandler) list(w http.ResponseWriter, r *http.Request, fetch func(context.Context, uuid.UUID) ([]domain.Profile, error)) {
	userID, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	users, err := fetch(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromFollowList(users))
}
