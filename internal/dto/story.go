package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
)

type StoryTransformDTO struct {
	X        float64 `json:"x" example:"0.5"`
	Y        float64 `json:"y" example:"0.5"`
	Scale    float64 `json:"scale" example:"1"`
	Rotation float64 `json:"rotation" example:"0"`
}

type StoryFilterDTO struct {
	Name      string  `json:"name" example:"mono"`
	Intensity float64 `json:"intensity" example:"0.8"`
}

type StoryMediaDTO struct {
	URL          string             `json:"url" validate:"required" example:"https://cdn.example.com/s1.jpg"`
	Type         string             `json:"type" validate:"required,oneof=image reel" example:"image"`
	ThumbnailURL string             `json:"thumbnail_url,omitempty"`
	DurationSec  float64            `json:"duration_sec,omitempty" example:"15"`
	Transform    *StoryTransformDTO `json:"transform,omitempty"`
	Filter       *StoryFilterDTO    `json:"filter,omitempty"`
}

type StoryTextDTO struct {
	Content  string  `json:"content" validate:"required,max=200" example:"Good morning"`
	Color    string  `json:"color,omitempty" example:"#ffffff"`
	FontSize float64 `json:"font_size,omitempty" example:"24"`
	X        float64 `json:"x" example:"0.5"`
	Y        float64 `json:"y" example:"0.2"`
}

type StoryMentionDTO struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username" example:"bob"`
	X        float64   `json:"x" example:"0.3"`
	Y        float64   `json:"y" example:"0.7"`
}

type StoryItemRequestDTO struct {
	Media    StoryMediaDTO     `json:"media"`
	Texts    []StoryTextDTO    `json:"texts" validate:"dive"`
	Mentions []StoryMentionDTO `json:"mentions"`
}

type CreateStoryRequestDTO struct {
	Items []StoryItemRequestDTO `json:"items" validate:"required,min=1,dive"`
}

type StoryDTO struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	ItemsCount int        `json:"items_count" example:"2"`
	ViewsCount int64      `json:"views_count" example:"9"`
	ExpiresAt  time.Time  `json:"expires_at"`
	IsArchived bool       `json:"is_archived" example:"false"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type StoryItemDTO struct {
	ID        uuid.UUID         `json:"id"`
	StoryID   uuid.UUID         `json:"story_id"`
	UserID    uuid.UUID         `json:"user_id"`
	Position  int               `json:"position" example:"0"`
	Media     StoryMediaDTO     `json:"media"`
	Texts     []StoryTextDTO    `json:"texts"`
	Mentions  []StoryMentionDTO `json:"mentions"`
	ExpiresAt time.Time         `json:"expires_at"`
	CreatedAt time.Time         `json:"created_at"`
}

type CreateStoryResponseDTO struct {
	Story StoryDTO       `json:"story"`
	Items []StoryItemDTO `json:"items"`
}

type StoryFeedEntryDTO struct {
	StoryDTO
	Username  string        `json:"username" example:"alice"`
	AvatarURL string        `json:"avatar_url"`
	Preview   *StoryItemDTO `json:"preview,omitempty"`
	Seen      bool          `json:"seen" example:"false"`
}

type StoryViewResponseDTO struct {
	Message string `json:"message" example:"View recorded"`
	Counted bool   `json:"counted" example:"true"`
}

type StoryViewerDTO struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username" example:"bob"`
	AvatarURL string    `json:"avatar_url"`
	ViewedAt  time.Time `json:"viewed_at"`
}

type StoryViewsResponseDTO struct {
	Viewers       []StoryViewerDTO `json:"viewers"`
	TotalViews    int64            `json:"total_views" example:"5"`
	UniqueViewers int64            `json:"unique_viewers" example:"2"`
}

func (r CreateStoryRequestDTO) ToDomain() []domain.StoryItem {
	items := make([]domain.StoryItem, 0, len(r.Items))
	for _, it := range r.Items {
		item := domain.StoryItem{
			Media: domain.StoryMedia{
				URL:          it.Media.URL,
				Type:         it.Media.Type,
				ThumbnailURL: it.Media.ThumbnailURL,
				DurationSec:  it.Media.DurationSec,
			},
		}
		if t := it.Media.Transform; t != nil {
			item.Media.Transform = &domain.StoryTransform{X: t.X, Y: t.Y, Scale: t.Scale, Rotation: t.Rotation}
		}
		if f := it.Media.Filter; f != nil {
			item.Media.Filter = &domain.StoryFilter{Name: f.Name, Intensity: f.Intensity}
		}
		for _, t := range it.Texts {
			item.Texts = append(item.Texts, domain.StoryText(t))
		}
		for _, m := range it.Mentions {
			item.Mentions = append(item.Mentions, domain.StoryMention(m))
		}
		items = append(items, item)
	}
	return items
}

func FromStory(s *domain.Story) StoryDTO {
	return StoryDTO{
		ID:         s.ID,
		UserID:     s.UserID,
		ItemsCount: s.ItemsCount,
		ViewsCount: s.ViewsCount,
		ExpiresAt:  s.ExpiresAt,
		IsArchived: s.IsArchived,
		ArchivedAt: s.ArchivedAt,
		CreatedAt:  s.CreatedAt,
	}
}

func FromStories(stories []domain.Story) []StoryDTO {
	out := make([]StoryDTO, 0, len(stories))
	for i := range stories {
		out = append(out, FromStory(&stories[i]))
	}
	return out
}

func FromStoryItem(item *domain.StoryItem) StoryItemDTO {
	media := StoryMediaDTO{
		URL:          item.Media.URL,
		Type:         item.Media.Type,
		ThumbnailURL: item.Media.ThumbnailURL,
		DurationSec:  item.Media.DurationSec,
	}
	if t := item.Media.Transform; t != nil {
		media.Transform = &StoryTransformDTO{X: t.X, Y: t.Y, Scale: t.Scale, Rotation: t.Rotation}
	}
	if f := item.Media.Filter; f != nil {
		media.Filter = &StoryFilterDTO{Name: f.Name, Intensity: f.Intensity}
	}
	texts := make([]StoryTextDTO, 0, len(item.Texts))
	for _, t := range item.Texts {
		texts = append(texts, StoryTextDTO(t))
	}
	mentions := make([]StoryMentionDTO, 0, len(item.Mentions))
	for _, m := range item.Mentions {
		mentions = append(mentions, StoryMentionDTO(m))
	}
	return StoryItemDTO{
		ID:        item.ID,
		StoryID:   item.StoryID,
		UserID:    item.UserID,
		Position:  item.Position,
		Media:     media,
		Texts:     texts,
		Mentions:  mentions,
		ExpiresAt: item.ExpiresAt,
		CreatedAt: item.CreatedAt,
	}
}

func FromStoryItems(items []domain.StoryItem) []StoryItemDTO {
	out := make([]StoryItemDTO, 0, len(items))
	for i := range items {
		out = append(out, FromStoryItem(&items[i]))
	}
	return out
}

func FromStoryFeed(feed []domain.StoryFeedEntry) []StoryFeedEntryDTO {
	out := make([]StoryFeedEntryDTO, 0, len(feed))
	for i := range feed {
		entry := StoryFeedEntryDTO{
			StoryDTO:  FromStory(&feed[i].Story),
			Username:  feed[i].Username,
			AvatarURL: feed[i].AvatarURL,
			Seen:      feed[i].Seen,
		}
		if feed[i].Preview != nil {
			preview := FromStoryItem(feed[i].Preview)
			entry.Preview = &preview
		}
		out = append(out, entry)
	}
	return out
}

func FromStoryViews(v *domain.StoryViews) StoryViewsResponseDTO {
	viewers := make([]StoryViewerDTO, 0, len(v.Viewers))
	for _, viewer := range v.Viewers {
		viewers = append(viewers, StoryViewerDTO{
			UserID:    viewer.ViewerID,
			Username:  viewer.Username,
			AvatarURL: viewer.AvatarURL,
			ViewedAt:  viewer.ViewedAt,
		})
	}
	return StoryViewsResponseDTO{Viewers: viewers, TotalViews: v.TotalViews, UniqueViewers: v.UniqueViewers}
}
