package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	StoryTTL                  = 24 * time.Hour
	StoryMediaImage           = "image"
	StoryMediaReel            = "reel"
	DefaultStoryImageDuration = 15
)

// Profile is the public face of a user. Email and role are shown to the user itself and admins only.
type Profile struct {
	ID             uuid.UUID `db:"id"`
	Email          string    `db:"email"`
	Username       string    `db:"username"`
	FullName       string    `db:"full_name"`
	Role           string    `db:"role"`
	Bio            string    `db:"bio"`
	AvatarURL      string    `db:"avatar_url"`
	Phone          string    `db:"phone"`
	FollowersCount int64     `db:"followers_count"`
	FollowingCount int64     `db:"following_count"`
	PostsCount     int64     `db:"posts_count"`
	CreatedAt      time.Time `db:"created_at"`
}

// ProfileUpdate carries only the fields being changed.
type ProfileUpdate struct {
	Username  *string
	FullName  *string
	Bio       *string
	AvatarURL *string
	Phone     *string
}

func (u ProfileUpdate) Empty() bool {
	return u.Username == nil && u.FullName == nil && u.Bio == nil && u.AvatarURL == nil && u.Phone == nil
}

type ProfilePage struct {
	Users []Profile
	Total int64
	Page  int
	Limit int
}

type FollowResult struct {
	Followed         bool
	AlreadyFollowing bool
	FollowingCount   int64
	FollowersCount   int64
}

type UnfollowResult struct {
	Unfollowed          bool
	AlreadyNotFollowing bool
}

type FeedPost struct {
	Post
	Username    string
	IsLikedByMe bool
}

type AdComment struct {
	ID        uuid.UUID `db:"id"`
	AdID      uuid.UUID `db:"ad_id"`
	UserID    uuid.UUID `db:"user_id"`
	Username  string    `db:"username"`
	Text      string    `db:"text"`
	IsDeleted bool      `db:"is_deleted"`
	CreatedAt time.Time `db:"created_at"`
}

type AdCommentPage struct {
	Comments []AdComment
	Total    int64
	Page     int
	Limit    int
}

type StoryTransform struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Scale    float64 `json:"scale"`
	Rotation float64 `json:"rotation"`
}

type StoryFilter struct {
	Name      string  `json:"name"`
	Intensity float64 `json:"intensity"`
}

type StoryMedia struct {
	URL          string          `json:"url"`
	Type         string          `json:"type"`
	ThumbnailURL string          `json:"thumbnail_url,omitempty"`
	DurationSec  float64         `json:"duration_sec,omitempty"`
	Transform    *StoryTransform `json:"transform,omitempty"`
	Filter       *StoryFilter    `json:"filter,omitempty"`
}

type StoryText struct {
	Content  string  `json:"content"`
	Color    string  `json:"color,omitempty"`
	FontSize float64 `json:"font_size,omitempty"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

type StoryMention struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	X        float64   `json:"x"`
	Y        float64   `json:"y"`
}

type StoryItem struct {
	ID        uuid.UUID      `db:"id"`
	StoryID   uuid.UUID      `db:"story_id"`
	UserID    uuid.UUID      `db:"user_id"`
	Position  int            `db:"position"`
	Media     StoryMedia     `db:"media"`
	Texts     []StoryText    `db:"texts"`
	Mentions  []StoryMention `db:"mentions"`
	ExpiresAt time.Time      `db:"expires_at"`
	CreatedAt time.Time      `db:"created_at"`
}

type Story struct {
	ID         uuid.UUID  `db:"id"`
	UserID     uuid.UUID  `db:"user_id"`
	ItemsCount int        `db:"items_count"`
	ViewsCount int64      `db:"views_count"`
	ExpiresAt  time.Time  `db:"expires_at"`
	IsArchived bool       `db:"is_archived"`
	ArchivedAt *time.Time `db:"archived_at"`
	CreatedAt  time.Time  `db:"created_at"`
}

// StoryFeedEntry is one author's active story with its first item as preview.
// Seen is set once the viewer has watched every item.
type StoryFeedEntry struct {
	Story
	Username  string
	AvatarURL string
	Preview   *StoryItem
	Seen      bool
}

type StoryViewer struct {
	ViewerID  uuid.UUID
	Username  string
	AvatarURL string
	ViewedAt  time.Time
}

type StoryViews struct {
	Viewers       []StoryViewer
	TotalViews    int64
	UniqueViewers int64
}
