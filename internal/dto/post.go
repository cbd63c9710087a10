package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
)

type MediaDTO struct {
	FileName string `json:"file_name" validate:"required" example:"beach.jpg"`
	Type     string `json:"type" validate:"omitempty,oneof=image video" example:"image"`
}

type CreatePostRequestDTO struct {
	Caption  string     `json:"caption" validate:"max=2200" example:"Sunset"`
	Location string     `json:"location" example:"Goa"`
	Type     string     `json:"type" validate:"omitempty,oneof=post reel" example:"reel"`
	Media    []MediaDTO `json:"media" validate:"dive"`
}

type PostDTO struct {
	ID                  uuid.UUID  `json:"id"`
	UserID              uuid.UUID  `json:"user_id"`
	Caption             string     `json:"caption"`
	Location            string     `json:"location"`
	Type                string     `json:"type" example:"reel"`
	Media               []MediaDTO `json:"media"`
	LikesCount          int64      `json:"likes_count" example:"3"`
	CommentsCount       int64      `json:"comments_count" example:"1"`
	ViewsCount          int64      `json:"views_count" example:"10"`
	UniqueViewsCount    int64      `json:"unique_views_count" example:"7"`
	CompletedViewsCount int64      `json:"completed_views_count" example:"5"`
	IsLikedByMe         bool       `json:"is_liked_by_me"`
	CreatedAt           time.Time  `json:"created_at"`
}

type LikeResponseDTO struct {
	Message    string     `json:"message" example:"Post liked"`
	Liked      bool       `json:"liked" example:"true"`
	LikesCount int64      `json:"likes_count" example:"4"`
	Reward     *RewardDTO `json:"reward,omitempty"`
}

type SaveResponseDTO struct {
	Message string     `json:"message" example:"Post saved"`
	Saved   bool       `json:"saved" example:"true"`
	Reward  *RewardDTO `json:"reward,omitempty"`
}

func (r CreatePostRequestDTO) ToDomain(userID uuid.UUID) *domain.Post {
	media := make([]domain.Media, 0, len(r.Media))
	for _, m := range r.Media {
		media = append(media, domain.Media{FileName: m.FileName, Type: m.Type})
	}
	return &domain.Post{
		UserID:   userID,
		Caption:  r.Caption,
		Location: r.Location,
		Type:     r.Type,
		Media:    media,
	}
}

func FromPost(p *domain.Post, likedByMe bool) PostDTO {
	media := make([]MediaDTO, 0, len(p.Media))
	for _, m := range p.Media {
		media = append(media, MediaDTO{FileName: m.FileName, Type: m.Type})
	}
	return PostDTO{
		ID:                  p.ID,
		UserID:              p.UserID,
		Caption:             p.Caption,
		Location:            p.Location,
		Type:                p.Type,
		Media:               media,
		LikesCount:          p.LikesCount,
		CommentsCount:       p.CommentsCount,
		ViewsCount:          p.ViewsCount,
		UniqueViewsCount:    p.UniqueViewsCount,
		CompletedViewsCount: p.CompletedViewsCount,
		IsLikedByMe:         likedByMe,
		CreatedAt:           p.CreatedAt,
	}
}

func FromPosts(posts []domain.Post) []PostDTO {
	out := make([]PostDTO, 0, len(posts))
	for i := range posts {
		out = append(out, FromPost(&posts[i], false))
	}
	return out
}

type FeedPostDTO struct {
	PostDTO
	Username string `json:"username" example:"alice"`
}

func FromFeedPosts(feed []domain.FeedPost) []FeedPostDTO {
	out := make([]FeedPostDTO, 0, len(feed))
	for i := range feed {
		out = append(out, FeedPostDTO{
			PostDTO:  FromPost(&feed[i].Post, feed[i].IsLikedByMe),
			Username: feed[i].Username,
		})
	}
	return out
}
