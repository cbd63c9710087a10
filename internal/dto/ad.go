package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
)

type VideoMetaDTO struct {
	SelectedStart *float64 `json:"selected_start,omitempty"`
	SelectedEnd   *float64 `json:"selected_end,omitempty"`
	FinalDuration *float64 `json:"final_duration,omitempty"`
}

type TimingWindowDTO struct {
	Start *float64 `json:"start,omitempty"`
	End   *float64 `json:"end,omitempty"`
}

// AdMediaRequestDTO is one creative as clients send it. Several generations of
// clients name the duration and trim window differently, all of them are accepted.
type AdMediaRequestDTO struct {
	FileName     string           `json:"fileName" example:"promo.mp4"`
	FileNameAlt  string           `json:"file_name" swaggerignore:"true"`
	FileURL      string           `json:"fileUrl" example:"https://cdn.example.com/promo.mp4"`
	FileURLAlt   string           `json:"file_url" swaggerignore:"true"`
	MediaType    string           `json:"media_type" validate:"omitempty,oneof=image video" example:"video"`
	ThumbnailURL string           `json:"thumbnail_url,omitempty"`
	Duration     *float64         `json:"final_duration,omitempty" example:"30"`
	Length       *float64         `json:"finalLength,omitempty" swaggerignore:"true"`
	LengthLower  *float64         `json:"finallength,omitempty" swaggerignore:"true"`
	LengthStart  *float64         `json:"finalLength-start,omitempty" swaggerignore:"true"`
	LengthEnd    *float64         `json:"finalLength-end,omitempty" swaggerignore:"true"`
	VideoMeta    *VideoMetaDTO    `json:"video_meta,omitempty"`
	TimingWindow *TimingWindowDTO `json:"timing_window,omitempty"`
}

type CreateAdRequestDTO struct {
	Title            string              `json:"title" validate:"required,max=200" example:"Summer sale"`
	Description      string              `json:"description" example:"Up to 50% off"`
	Category         string              `json:"category" validate:"required" example:"fashion"`
	Tags             []string            `json:"tags" example:"sale,summer"`
	TargetLanguage   string              `json:"target_language" example:"en"`
	TargetLocation   string              `json:"target_location" example:"Pune"`
	CoinsReward      int64               `json:"coins_reward" validate:"required,min=1" example:"10"`
	TotalBudgetCoins int64               `json:"total_budget_coins" validate:"gtefield=CoinsReward" example:"100"`
	Media            []AdMediaRequestDTO `json:"media" validate:"dive"`

	VideoURL        string  `json:"video_url,omitempty"`
	VideoFileName   string  `json:"video_fileName,omitempty"`
	ThumbnailURL    string  `json:"thumbnail_url,omitempty"`
	DurationSeconds float64 `json:"duration_seconds,omitempty"`
}

type CompleteAdRequestDTO struct {
	WatchTimeMs int64 `json:"watch_time_ms" validate:"min=0" example:"28000"`
}

type UpdateAdStatusRequestDTO struct {
	Status          string `json:"status" validate:"required" example:"active"`
	RejectionReason string `json:"rejection_reason,omitempty" example:"misleading claims"`
}

type FraudFlagRequestDTO struct {
	FraudFlagged bool `json:"fraud_flagged" example:"true"`
}

type CreateAdCommentRequestDTO struct {
	Text string `json:"text" validate:"required,max=1000" example:"Where can I buy this?"`
}

type AdMediaDTO struct {
	FileName        string   `json:"file_name"`
	FileURL         string   `json:"file_url"`
	MediaType       string   `json:"media_type" example:"video"`
	ThumbnailURL    string   `json:"thumbnail_url,omitempty"`
	DurationSeconds float64  `json:"duration_seconds,omitempty" example:"30"`
	TrimStart       *float64 `json:"trim_start,omitempty"`
	TrimEnd         *float64 `json:"trim_end,omitempty"`
}

type AdDTO struct {
	ID                  uuid.UUID    `json:"id"`
	VendorID            uuid.UUID    `json:"vendor_id"`
	UserID              uuid.UUID    `json:"user_id"`
	Title               string       `json:"title"`
	Description         string       `json:"description"`
	Category            string       `json:"category"`
	Tags                []string     `json:"tags"`
	Media               []AdMediaDTO `json:"media"`
	TargetLanguage      string       `json:"target_language"`
	TargetLocation      string       `json:"target_location"`
	CoinsReward         int64        `json:"coins_reward" example:"10"`
	TotalBudgetCoins    int64        `json:"total_budget_coins" example:"100"`
	TotalCoinsSpent     int64        `json:"total_coins_spent" example:"30"`
	Status              string       `json:"status" example:"active"`
	RejectionReason     string       `json:"rejection_reason,omitempty"`
	ViewsCount          int64        `json:"views_count"`
	UniqueViewsCount    int64        `json:"unique_views_count"`
	CompletedViewsCount int64        `json:"completed_views_count"`
	LikesCount          int64        `json:"likes_count"`
	CommentsCount       int64        `json:"comments_count"`
	CreatedAt           time.Time    `json:"created_at"`
}

type FeedAdDTO struct {
	AdDTO
	IsLikedByMe    bool `json:"is_liked_by_me"`
	IsRewardedByMe bool `json:"is_rewarded_by_me"`
}

type AdListResponseDTO struct {
	Total int64   `json:"total" example:"3"`
	Page  int     `json:"page" example:"1"`
	Limit int     `json:"limit" example:"20"`
	Ads   []AdDTO `json:"ads"`
}

type AdViewResponseDTO struct {
	Message   string `json:"message" example:"View recorded"`
	ViewCount int64  `json:"view_count" example:"2"`
}

type AdCompletionResponseDTO struct {
	Message         string `json:"message" example:"Ad completed, coins credited"`
	Completed       bool   `json:"completed" example:"true"`
	Rewarded        bool   `json:"rewarded" example:"true"`
	AlreadyRewarded bool   `json:"already_rewarded" example:"false"`
	FraudFlagged    bool   `json:"fraud_flagged" example:"false"`
	Suspicious      bool   `json:"suspicious" example:"false"`
	CoinsEarned     int64  `json:"coins_earned" example:"10"`
	WalletBalance   int64  `json:"wallet_balance" example:"130"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func firstSet(values ...*float64) *float64 {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func (m AdMediaRequestDTO) normalize() domain.AdMedia {
	media := domain.AdMedia{
		FileName:     firstNonEmpty(m.FileName, m.FileNameAlt),
		FileURL:      firstNonEmpty(m.FileURL, m.FileURLAlt),
		MediaType:    m.MediaType,
		ThumbnailURL: m.ThumbnailURL,
	}

	var meta VideoMetaDTO
	if m.VideoMeta != nil {
		meta = *m.VideoMeta
	}
	var window TimingWindowDTO
	if m.TimingWindow != nil {
		window = *m.TimingWindow
	}

	if d := firstSet(m.Duration, m.Length, m.LengthLower, meta.FinalDuration); d != nil {
		media.DurationSeconds = *d
	}
	media.TrimStart = firstSet(m.LengthStart, meta.SelectedStart, window.Start)
	media.TrimEnd = firstSet(m.LengthEnd, meta.SelectedEnd, window.End)

	if media.MediaType == "" {
		media.MediaType = "image"
		if media.DurationSeconds > 0 || media.TrimEnd != nil {
			media.MediaType = "video"
		}
	}
	return media
}

// NormalizedMedia maps every accepted media shape onto domain.AdMedia.
// The legacy flat video fields become one video item placed first.
func (r CreateAdRequestDTO) NormalizedMedia() []domain.AdMedia {
	media := make([]domain.AdMedia, 0, len(r.Media)+1)
	if r.VideoURL != "" || r.VideoFileName != "" {
		media = append(media, domain.AdMedia{
			FileName:        firstNonEmpty(r.VideoFileName, r.VideoURL),
			FileURL:         r.VideoURL,
			MediaType:       "video",
			ThumbnailURL:    r.ThumbnailURL,
			DurationSeconds: r.DurationSeconds,
		})
	}
	for _, m := range r.Media {
		media = append(media, m.normalize())
	}
	return media
}

func (r CreateAdRequestDTO) ToDomain() *domain.Ad {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return &domain.Ad{
		Title:            strings.TrimSpace(r.Title),
		Description:      r.Description,
		Category:         strings.TrimSpace(r.Category),
		Tags:             tags,
		Media:            r.NormalizedMedia(),
		TargetLanguage:   firstNonEmpty(r.TargetLanguage, "en"),
		TargetLocation:   r.TargetLocation,
		CoinsReward:      r.CoinsReward,
		TotalBudgetCoins: r.TotalBudgetCoins,
	}
}

func FromAd(a *domain.Ad) AdDTO {
	media := make([]AdMediaDTO, 0, len(a.Media))
	for _, m := range a.Media {
		media = append(media, AdMediaDTO(m))
	}
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return AdDTO{
		ID:                  a.ID,
		VendorID:            a.VendorID,
		UserID:              a.UserID,
		Title:               a.Title,
		Description:         a.Description,
		Category:            a.Category,
		Tags:                tags,
		Media:               media,
		TargetLanguage:      a.TargetLanguage,
		TargetLocation:      a.TargetLocation,
		CoinsReward:         a.CoinsReward,
		TotalBudgetCoins:    a.TotalBudgetCoins,
		TotalCoinsSpent:     a.TotalCoinsSpent,
		Status:              a.Status,
		RejectionReason:     a.RejectionReason,
		ViewsCount:          a.ViewsCount,
		UniqueViewsCount:    a.UniqueViewsCount,
		CompletedViewsCount: a.CompletedViewsCount,
		LikesCount:          a.LikesCount,
		CommentsCount:       a.CommentsCount,
		CreatedAt:           a.CreatedAt,
	}
}

func FromAdPage(p *domain.AdPage) AdListResponseDTO {
	ads := make([]AdDTO, 0, len(p.Ads))
	for i := range p.Ads {
		ads = append(ads, FromAd(&p.Ads[i]))
	}
	return AdListResponseDTO{Total: p.Total, Page: p.Page, Limit: p.Limit, Ads: ads}
}

func FromFeed(feed []domain.FeedAd) []FeedAdDTO {
	out := make([]FeedAdDTO, 0, len(feed))
	for i := range feed {
		out = append(out, FeedAdDTO{
			AdDTO:          FromAd(&feed[i].Ad),
			IsLikedByMe:    feed[i].IsLikedByMe,
			IsRewardedByMe: feed[i].IsRewardedByMe,
		})
	}
	return out
}

func FromAdCompletion(c *domain.AdCompletion) AdCompletionResponseDTO {
	resp := AdCompletionResponseDTO{
		Completed:       c.Completed,
		Rewarded:        c.Rewarded,
		AlreadyRewarded: c.AlreadyRewarded,
		FraudFlagged:    c.FraudFlagged,
		Suspicious:      c.Suspicious,
		CoinsEarned:     c.CoinsEarned,
		WalletBalance:   c.WalletBalance,
	}
	switch {
	case c.Rewarded:
		resp.Message = "Ad completed, coins credited"
	case c.AlreadyRewarded:
		resp.Message = "Ad already rewarded"
	case c.FraudFlagged:
		resp.Message = "View flagged for review"
	case c.Suspicious:
		resp.Message = "Completion not rewarded, try again later"
	default:
		resp.Message = "Ad completed"
	}
	return resp
}

type AdCommentDTO struct {
	ID        uuid.UUID `json:"id"`
	AdID      uuid.UUID `json:"ad_id"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username" example:"alice"`
	Text      string    `json:"text" example:"Where can I buy this?"`
	CreatedAt time.Time `json:"created_at"`
}

type AdCommentPageResponseDTO struct {
	Comments []AdCommentDTO `json:"comments"`
	Total    int64          `json:"total" example:"4"`
	Page     int            `json:"page" example:"1"`
	Limit    int            `json:"limit" example:"20"`
}

func FromAdComment(c *domain.AdComment) AdCommentDTO {
	return AdCommentDTO{
		ID:        c.ID,
		AdID:      c.AdID,
		UserID:    c.UserID,
		Username:  c.Username,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
}

func FromAdCommentPage(p *domain.AdCommentPage) AdCommentPageResponseDTO {
	comments := make([]AdCommentDTO, 0, len(p.Comments))
	for i := range p.Comments {
		comments = append(comments, FromAdComment(&p.Comments[i]))
	}
	return AdCommentPageResponseDTO{Comments: comments, Total: p.Total, Page: p.Page, Limit: p.Limit}
}
