package posts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/dto"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/postservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/auth"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/utils"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/validate"
)

//go:generate mockgen -source=posts.go -destination=mock_service.go -package=posts

type Service interface {
	CreatePost(ctx context.Context, post *domain.Post) (*domain.Post, error)
	GetPost(ctx context.Context, postID, viewerID uuid.UUID) (*domain.Post, bool, error)
	Like(ctx context.Context, postID, userID uuid.UUID) (*domain.LikeResult, error)
	Unlike(ctx context.Context, postID, userID uuid.UUID) (*domain.LikeResult, error)
	Feed(ctx context.Context, viewerID uuid.UUID, page, limit int) ([]domain.FeedPost, error)
	DeletePost(ctx context.Context, postID, userID uuid.UUID, role string) error
}

type PostHandler struct {
	postService Service
}

func New(postService Service) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, postservice.ErrPostNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Post not found")
	case errors.Is(err, postservice.ErrAlreadyLiked):
		utils.RespondWithError(w, http.StatusBadRequest, "Already liked")
	case errors.Is(err, postservice.ErrNotLiked):
		utils.RespondWithError(w, http.StatusBadRequest, "Not liked yet")
	case errors.Is(err, postservice.ErrInvalidPostType):
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid post type")
	case errors.Is(err, postservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// CreatePost godoc
//
//	@Summary		Create a post or reel
//	@Tags			Posts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePostRequestDTO	true	"Post"
//	@Success		201		{object}	dto.PostDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/posts [post]
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req dto.CreatePostRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.postService.CreatePost(r.Context(), req.ToDomain(userID))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.FromPost(post, false))
}

// GetPost godoc
//
//	@Summary		Get a post
//	@Tags			Posts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Post ID"
//	@Success		200	{object}	dto.PostDTO
//	@Failure		400	{object}	utils.Response	"Invalid post id"
//	@Failure		404	{object}	utils.Response	"Post not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/posts/{id} [get]
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	postID, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	post, liked, err := h.postService.GetPost(r.Context(), postID, userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromPost(post, liked))
}

// LikePost godoc
//
//	@Summary		Like a post
//	@Description	The liker earns 10 coins from the post owner. Liking twice is rejected.
//	@Tags			Posts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Post ID"
//	@Success		200	{object}	dto.LikeResponseDTO
//	@Failure		400	{object}	utils.Response	"Already liked"
//	@Failure		404	{object}	utils.Response	"Post not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/posts/{id}/like [post]
func (h *PostHandler) LikePost(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, true)
}

// UnlikePost godoc
//
//	@Summary		Unlike a post
//	@Description	Removes the like. Coins already paid are kept.
//	@Tags			Posts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Post ID"
//	@Success		200	{object}	dto.LikeResponseDTO
//	@Failure		400	{object}	utils.Response	"Not liked yet"
//	@Failure		404	{object}	utils.Response	"Post not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/posts/{id}/unlike [post]
func (h *PostHandler) UnlikePost(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, false)
}

func (h *PostHandler) toggle(w http.ResponseWriter, r *http.Request, like bool) {
	userID, _ := auth.UserID(r.Context())
	postID, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	var result *domain.LikeResult
	message := "Post liked"
	if like {
		result, err = h.postService.Like(r.Context(), postID, userID)
	} else {
		message = "Post unliked"
		result, err = h.postService.Unlike(r.Context(), postID, userID)
	}
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LikeResponseDTO{
		Message:    message,
		Liked:      result.Liked,
		LikesCount: result.LikesCount,
		Reward:     dto.FromReward(result.Reward),
	})
}

// GetFeed godoc
//
//	@Summary		Post feed
//	@Description	Newest posts first, each with its author's username and whether the caller liked it.
//	@Tags			Posts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int	false	"Page"
//	@Param			limit	query		int	false	"Page size"
//	@Success		200		{array}		dto.FeedPostDTO
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/posts/feed [get]
func (h *PostHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	page, limit := utils.Pagination(r)

	feed, err := h.postService.Feed(r.Context(), userID, page, limit)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromFeedPosts(feed))
}

// DeletePost godoc
//
//	@Summary		Delete a post
//	@Description	Open to the author and admins. Coins already paid for the post stay in the ledger.
//	@Tags			Posts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Post ID"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid post id"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Post not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/posts/{id} [delete]
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	postID, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	if err := h.postService.DeletePost(r.Context(), postID, userID, auth.Role(r.Context())); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Post deleted"})
}
