package comments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/dto"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/commentservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/auth"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/utils"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/validate"
)

//go:generate mockgen -source=comments.go -destination=mock_service.go -package=comments

type Service interface {
	AddComment(ctx context.Context, postID, userID uuid.UUID, text string, parentID *uuid.UUID) (*domain.Comment, *domain.Reward, error)
	GetComments(ctx context.Context, postID uuid.UUID, page, limit int) (*domain.CommentPage, error)
	DeleteComment(ctx context.Context, commentID, userID uuid.UUID, role string) error
	LikeComment(ctx context.Context, commentID, userID uuid.UUID) (*domain.LikeResult, error)
	UnlikeComment(ctx context.Context, commentID, userID uuid.UUID) (*domain.LikeResult, error)
}

type CommentHandler struct {
	commentService Service
}

func New(commentService Service) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, commentservice.ErrPostNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Post not found")
	case errors.Is(err, commentservice.ErrCommentNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Comment not found")
	case errors.Is(err, commentservice.ErrParentNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Parent comment not found")
	case errors.Is(err, commentservice.ErrNestedReply),
		errors.Is(err, commentservice.ErrParentMismatch):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, commentservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, commentservice.ErrAlreadyLiked):
		utils.RespondWithError(w, http.StatusBadRequest, "Already liked")
	case errors.Is(err, commentservice.ErrNotLiked):
		utils.RespondWithError(w, http.StatusBadRequest, "Not liked yet")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// AddComment godoc
//
//	@Summary		Comment on a post or reply to a comment
//	@Description	Top-level comments pay the commenter, replies pay the replier. Replies to replies are rejected.
//	@Tags			Comments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Post ID"
//	@Param			request	body		dto.CreateCommentRequestDTO	true	"Comment"
//	@Success		201		{object}	dto.CommentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Post not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/posts/{id}/comments [post]
func (h *CommentHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	postID, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid post id")
		return
	}

	var req dto.CreateCommentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	comment, reward, err := h.commentService.AddComment(r.Context(), postID, userID, req.Text, req.ParentID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CommentResponseDTO{
		Comment: dto.FromComment(comment),
		Reward:  dto.FromReward(reward),
	})
}

// GetComments godoc
//
//	@Summary	List top-level comments of a post
//	@Tags		Comments
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id		path		string	true	"Post ID"
//	@Param		page	query		int		false	"Page"
//	@Param		limit	query		int		false	"Page size"
//	@Success	200		{object}	dto.CommentPageResponseDTO
//	@Failure	404		{object}	utils.Response	"Post not found"
//	@Failure	500		{object}	utils.Response	"Internal server error"
//	@Router		/api/posts/{id}/comments [get]
func (h *CommentHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	postID, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid post id")
		return
	}
	page, limit := utils.Pagination(r)

	result, err := h.commentService.GetComments(r.Context(), postID, page, limit)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromCommentPage(result))
}

// DeleteComment godoc
//
//	@Summary		Delete a comment
//	@Description	Allowed for the author, the post owner and admins. Coins already paid are kept.
//	@Tags			Comments
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Comment ID"
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Comment not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/comments/{id} [delete]
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	role := auth.Role(r.Context())
	commentID, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid comment id")
		return
	}

	if err := h.commentService.DeleteComment(r.Context(), commentID, userID, role); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Comment deleted"})
}

// LikeComment godoc
//
//	@Summary	Like a comment
//	@Tags		Comments
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Comment ID"
//	@Success	200	{object}	dto.LikeResponseDTO
//	@Failure	400	{object}	utils.Response	"Already liked"
//	@Failure	404	{object}	utils.Response	"Comment not found"
//	@Router		/api/comments/{id}/like [post]
func (h *CommentHandler) LikeComment(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, true)
}

// UnlikeComment godoc
//
//	@Summary	Unlike a comment
//	@Tags		Comments
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Comment ID"
//	@Success	200	{object}	dto.LikeResponseDTO
//	@Failure	400	{object}	utils.Response	"Not liked yet"
//	@Failure	404	{object}	utils.Response	"Comment not found"
//	@Router		/api/comments/{id}/unlike [post]
func (h *CommentHandler) UnlikeComment(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, false)
}

func (h *CommentHandler) toggle(w http.ResponseWriter, r *http.Request, like bool) {
	userID, _ := auth.UserID(r.Context())
	commentID, err := utils.URLParamUUID(r, "id")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid comment id")
		return
	}

	var result *domain.LikeResult
	message := "Comment liked"
	if like {
		result, err = h.commentService.LikeComment(r.Context(), commentID, userID)
	} else {
		message = "Comment unliked"
		result, err = h.commentService.UnlikeComment(r.Context(), commentID, userID)
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
