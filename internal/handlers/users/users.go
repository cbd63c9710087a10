package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/dto"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/userservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/auth"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/utils"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/validate"
)

//go:generate mockgen -source=users.go -destination=mock_service.go -package=users

type Service interface {
	GetProfile(ctx context.Context, id, callerID uuid.UUID, role string) (*domain.Profile, error)
	ListProfiles(ctx context.Context, page, limit int, callerID uuid.UUID, role string) (*domain.ProfilePage, error)
	UpdateProfile(ctx context.Context, id, callerID uuid.UUID, role string, upd domain.ProfileUpdate) (*domain.Profile, error)
	GetUserPosts(ctx context.Context, userID uuid.UUID) ([]domain.Post, error)
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, userservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, userservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, userservice.ErrNothingToUpdate):
		utils.RespondWithError(w, http.StatusBadRequest, "Nothing to update")
	case errors.Is(err, userservice.ErrUsernameTooShort):
		utils.RespondWithError(w, http.StatusBadRequest, "Username must be at least 3 characters")
	case errors.Is(err, userservice.ErrUsernameTaken):
		utils.RespondWithError(w, http.StatusConflict, "Username already taken")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// ListUsers godoc
//
//	@Summary		List users
//	@Description	Email and phone are only shown for the caller's own entry, or to admins.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int	false	"Page"
//	@Param			limit	query		int	false	"Page size"
//	@Success		200		{object}	dto.ProfileListResponseDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	page, limit := utils.Pagination(r)

	result, err := h.userService.ListProfiles(r.Context(), page, limit, userID, auth.Role(r.Context()))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromProfilePage(result))
}

// GetUser godoc
//
//	@Summary		Get a user profile
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"User ID"
//	@Success		200	{object}	dto.ProfileDTO
//	@Failure		400	{object}	utils.Response	"Invalid user id"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{id} [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	callerID, _ := auth.UserID(r.Context())
	id, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	profile, err := h.userService.GetProfile(r.Context(), id, callerID, auth.Role(r.Context()))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromProfile(profile))
}

// UpdateUser godoc
//
//	@Summary		Update a user profile
//	@Description	Users edit their own profile. Admins may edit anyone.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"User ID"
//	@Param			request	body		dto.UpdateProfileRequestDTO	true	"Fields to change"
//	@Success		200		{object}	dto.ProfileDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		409		{object}	utils.Response	"Username already taken"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{id} [put]
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	callerID, _ := auth.UserID(r.Context())
	id, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req dto.UpdateProfileRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := h.userService.UpdateProfile(r.Context(), id, callerID, auth.Role(r.Context()), req.ToDomain())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromProfile(profile))
}

// GetUserPosts godoc
//
//	@Summary		List a user's posts
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"User ID"
//	@Success		200	{array}		dto.PostDTO
//	@Failure		400	{object}	utils.Response	"Invalid user id"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{id}/posts [get]
func (h *UserHandler) GetUserPosts(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	posts, err := h.userService.GetUserPosts(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromPosts(posts))
}
