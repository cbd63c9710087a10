package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/validate"
)

func ptr(v float64) *float64 { return &v }

func TestCreateAdRequestDTO_NormalizedMedia(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected []domain.AdMedia
	}{
		{
			name: "Legacy flat video fields",
			body: `{"video_url":"https://cdn/a.mp4","video_fileName":"a.mp4","thumbnail_url":"https://cdn/a.jpg","duration_seconds":30}`,
			expected: []domain.AdMedia{{
				FileName: "a.mp4", FileURL: "https://cdn/a.mp4", MediaType: "video",
				ThumbnailURL: "https://cdn/a.jpg", DurationSeconds: 30,
			}},
		},
		{
			name: "final_duration",
			body: `{"media":[{"fileName":"a.mp4","fileUrl":"https://cdn/a.mp4","final_duration":12}]}`,
			expected: []domain.AdMedia{{
				FileName: "a.mp4", FileURL: "https://cdn/a.mp4", MediaType: "video", DurationSeconds: 12,
			}},
		},
		{
			name: "finalLength with trim window",
			body: `{"media":[{"file_name":"b.mp4","file_url":"https://cdn/b.mp4","finalLength":40,"finalLength-start":5,"finalLength-end":25}]}`,
			expected: []domain.AdMedia{{
				FileName: "b.mp4", FileURL: "https://cdn/b.mp4", MediaType: "video", DurationSeconds: 40,
				TrimStart: ptr(5), TrimEnd: ptr(25),
			}},
		},
		{
			name:     "Lower case finallength",
			body:     `{"media":[{"fileName":"c.mp4","finallength":18,"media_type":"video"}]}`,
			expected: []domain.AdMedia{{FileName: "c.mp4", MediaType: "video", DurationSeconds: 18}},
		},
		{
			name: "Nested video meta and timing window",
			body: `{"media":[{"fileName":"d.mp4","video_meta":{"final_duration":20,"selected_start":2},"timing_window":{"start":1,"end":21}}]}`,
			expected: []domain.AdMedia{{
				FileName: "d.mp4", MediaType: "video", DurationSeconds: 20, TrimStart: ptr(2), TrimEnd: ptr(21),
			}},
		},
		{
			name:     "Image without duration",
			body:     `{"media":[{"fileName":"e.png","fileUrl":"https://cdn/e.png"}]}`,
			expected: []domain.AdMedia{{FileName: "e.png", FileURL: "https://cdn/e.png", MediaType: "image"}},
		},
		{
			name:     "No media",
			body:     `{}`,
			expected: []domain.AdMedia{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateAdRequestDTO
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.expected, req.NormalizedMedia())
		})
	}
}

func TestCreateAdRequestDTO_TrimDrivesMinDuration(t *testing.T) {
	var req CreateAdRequestDTO
	body := `{"title":"t","category":"c","coins_reward":10,"total_budget_coins":100,
		"media":[{"fileName":"a.mp4","finalLength":60,"finalLength-start":10,"finalLength-end":30}]}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	ad := req.ToDomain()
	assert.Equal(t, 20.0, ad.MinDurationSeconds())
	assert.Equal(t, "en", ad.TargetLanguage)
	assert.Equal(t, []string{}, ad.Tags)
}

func TestCreateAdRequestDTO_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateAdRequestDTO
		wantErr string
	}{
		{
			name: "Valid",
			req:  CreateAdRequestDTO{Title: "Sale", Category: "food", CoinsReward: 10, TotalBudgetCoins: 100},
		},
		{
			name:    "Missing reward",
			req:     CreateAdRequestDTO{Title: "Sale", Category: "food", TotalBudgetCoins: 100},
			wantErr: "coins_reward is required",
		},
		{
			name:    "Budget below reward",
			req:     CreateAdRequestDTO{Title: "Sale", Category: "food", CoinsReward: 10, TotalBudgetCoins: 5},
			wantErr: "total_budget_coins must not be less than CoinsReward",
		},
		{
			name: "Bad media type",
			req: CreateAdRequestDTO{Title: "Sale", Category: "food", CoinsReward: 1, TotalBudgetCoins: 1,
				Media: []AdMediaRequestDTO{{FileName: "x", MediaType: "audio"}}},
			wantErr: "media_type must be one of [image video]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestFromAdCompletion(t *testing.T) {
	assert.Equal(t, "Ad completed, coins credited", FromAdCompletion(&domain.AdCompletion{Completed: true, Rewarded: true}).Message)
	assert.Equal(t, "Ad already rewarded", FromAdCompletion(&domain.AdCompletion{Completed: true, AlreadyRewarded: true}).Message)
	assert.Equal(t, "View flagged for review", FromAdCompletion(&domain.AdCompletion{Completed: true, FraudFlagged: true}).Message)
	suspicious := FromAdCompletion(&domain.AdCompletion{Completed: true, Suspicious: true})
	assert.Equal(t, "Completion not rewarded, try again later", suspicious.Message)
	assert.True(t, suspicious.Suspicious)
	assert.False(t, suspicious.FraudFlagged)
	assert.Equal(t, "Ad completed", FromAdCompletion(&domain.AdCompletion{Completed: true}).Message)
}
