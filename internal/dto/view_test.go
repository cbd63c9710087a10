package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewRequestDTO_ResolvedPostID(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name string
		body string
		want uuid.UUID
	}{
		{name: "post_id", body: `{"post_id":"` + id.String() + `"}`, want: id},
		{name: "postId alias", body: `{"postId":"` + id.String() + `"}`, want: id},
		{name: "Missing", body: `{}`, want: uuid.Nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req ViewRequestDTO
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.ResolvedPostID())
		})
	}
}

func TestCompleteViewRequestDTO_Decode(t *testing.T) {
	id := uuid.New()
	var req CompleteViewRequestDTO
	require.NoError(t, json.Unmarshal([]byte(`{"postId":"`+id.String()+`","watch_time_ms":15000}`), &req))

	assert.Equal(t, id, req.ResolvedPostID())
	require.NotNil(t, req.WatchTimeMs)
	assert.Equal(t, int64(15000), *req.WatchTimeMs)
}
