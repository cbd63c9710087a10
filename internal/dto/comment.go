package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
)

type CreateCommentRequestDTO struct {
	Text     string     `json:"text" validate:"required,max=1000" example:"Great shot!"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
}

type CommentDTO struct {
	ID         uuid.UUID  `json:"id"`
	PostID     uuid.UUID  `json:"post_id"`
	ParentID   *uuid.UUID `json:"parent_id,omitempty"`
	UserID     uuid.UUID  `json:"user_id"`
	Username   string     `json:"username" example:"bob"`
	Text       string     `json:"text" example:"Great shot!"`
	LikesCount int64      `json:"likes_count" example:"0"`
	CreatedAt  time.Time  `json:"created_at"`
}

type CommentResponseDTO struct {
	Comment CommentDTO `json:"comment"`
	Reward  *RewardDTO `json:"reward,omitempty"`
}

type CommentPageResponseDTO struct {
	Comments []CommentDTO `json:"comments"`
	Total    int64        `json:"total" example:"12"`
	Page     int          `json:"page" example:"1"`
	Limit    int          `json:"limit" example:"20"`
}

func FromComment(c *domain.Comment) CommentDTO {
	return CommentDTO{
		ID:         c.ID,
		PostID:     c.PostID,
		ParentID:   c.ParentID,
		UserID:     c.UserID,
		Username:   c.Username,
		Text:       c.Text,
		LikesCount: c.LikesCount,
		CreatedAt:  c.CreatedAt,
	}
}

func FromCommentPage(p *domain.CommentPage) CommentPageResponseDTO {
	comments := make([]CommentDTO, 0, len(p.Comments))
	for i := range p.Comments {
		comments = append(comments, FromComment(&p.Comments[i]))
	}
	return CommentPageResponseDTO{Comments: comments, Total: p.Total, Page: p.Page, Limit: p.Limit}
}
