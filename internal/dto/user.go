package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
)

type ProfileDTO struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email,omitempty" example:"alice@example.com"`
	Username       string    `json:"username" example:"alice"`
	FullName       string    `json:"full_name" example:"Alice Doe"`
	Role           string    `json:"role" example:"member"`
	Bio            string    `json:"bio" example:"Coffee and sunsets"`
	AvatarURL      string    `json:"avatar_url" example:"https://cdn.example.com/alice.png"`
	Phone          string    `json:"phone,omitempty"`
	FollowersCount int64     `json:"followers_count" example:"12"`
	FollowingCount int64     `json:"following_count" example:"3"`
	PostsCount     int64     `json:"posts_count" example:"7"`
	CreatedAt      time.Time `json:"created_at"`
}

type ProfileListResponseDTO struct {
	Users []ProfileDTO `json:"users"`
	Total int64        `json:"total" example:"42"`
	Page  int          `json:"page" example:"1"`
	Limit int          `json:"limit" example:"20"`
}

type UpdateProfileRequestDTO struct {
	Username  *string `json:"username,omitempty" validate:"omitempty,min=3,max=30" example:"alice"`
	FullName  *string `json:"full_name,omitempty" validate:"omitempty,max=100" example:"Alice Doe"`
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=500" example:"Coffee and sunsets"`
	AvatarURL *string `json:"avatar_url,omitempty" validate:"omitempty,url" example:"https://cdn.example.com/alice.png"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=20" example:"+91 98765 43210"`
}

type FollowRequestDTO struct {
	FollowedUserID uuid.UUID `json:"followed_user_id" validate:"required"`
}

type FollowResponseDTO struct {
	Followed         bool  `json:"followed" example:"true"`
	AlreadyFollowing bool  `json:"already_following" example:"false"`
	FollowingCount   int64 `json:"following_count" example:"4"`
	FollowersCount   int64 `json:"followers_count" example:"13"`
}

type UnfollowResponseDTO struct {
	Unfollowed          bool `json:"unfollowed" example:"true"`
	AlreadyNotFollowing bool `json:"already_not_following" example:"false"`
}

type FollowUserDTO struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username" example:"bob"`
	FullName       string    `json:"full_name" example:"Bob Roy"`
	AvatarURL      string    `json:"avatar_url"`
	FollowersCount int64     `json:"followers_count" example:"2"`
	FollowingCount int64     `json:"following_count" example:"9"`
}

type FollowListResponseDTO struct {
	Total int             `json:"total" example:"1"`
	Users []FollowUserDTO `json:"users"`
}

func (r UpdateProfileRequestDTO) ToDomain() domain.ProfileUpdate {
	return domain.ProfileUpdate{
		Username:  r.Username,
		FullName:  r.FullName,
		Bio:       r.Bio,
		AvatarURL: r.AvatarURL,
		Phone:     r.Phone,
	}
}

func FromProfile(p *domain.Profile) ProfileDTO {
	return ProfileDTO{
		ID:             p.ID,
		Email:          p.Email,
		Username:       p.Username,
		FullName:       p.FullName,
		Role:           p.Role,
		Bio:            p.Bio,
		AvatarURL:      p.AvatarURL,
		Phone:          p.Phone,
		FollowersCount: p.FollowersCount,
		FollowingCount: p.FollowingCount,
		PostsCount:     p.PostsCount,
		CreatedAt:      p.CreatedAt,
	}
}

func FromProfilePage(p *domain.ProfilePage) ProfileListResponseDTO {
	users := make([]ProfileDTO, 0, len(p.Users))
	for i := range p.Users {
		users = append(users, FromProfile(&p.Users[i]))
	}
	return ProfileListResponseDTO{Users: users, Total: p.Total, Page: p.Page, Limit: p.Limit}
}

func FromFollowList(users []domain.Profile) FollowListResponseDTO {
	out := make([]FollowUserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, FollowUserDTO{
			ID:             u.ID,
			Username:       u.Username,
			FullName:       u.FullName,
			AvatarURL:      u.AvatarURL,
			FollowersCount: u.FollowersCount,
			FollowingCount: u.FollowingCount,
		})
	}
	return FollowListResponseDTO{Total: len(out), Users: out}
}
