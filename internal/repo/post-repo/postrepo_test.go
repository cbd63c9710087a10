package postrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
)

var postRowColumns = []string{"id", "user_id", "caption", "location", "type", "media", "likes_count", "comments_count", "views_count", "unique_views_count", "completed_views_count", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	postID := uuid.New()
	ownerID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO posts (user_id, caption, location, type, media) VALUES ($1, $2, $3, $4, $5)`)).
		WithArgs(ownerID, "sunset", "Pune", "reel", []byte(`[{"file_name":"a.mp4","type":"video"}]`)).
		WillReturnRows(pgxmock.NewRows(postRowColumns).
			AddRow(postID, ownerID, "sunset", "Pune", "reel", []byte(`[{"file_name":"a.mp4","type":"video"}]`),
				int64(0), int64(0), int64(0), int64(0), int64(0), now))

	post, err := repo.Create(context.Background(), &domain.Post{
		UserID:   ownerID,
		Caption:  "sunset",
		Location: "Pune",
		Type:     domain.PostTypeReel,
		Media:    []domain.Media{{FileName: "a.mp4", Type: "video"}},
	})
	require.NoError(t, err)
	assert.Equal(t, postID, post.ID)
	assert.Equal(t, []domain.Media{{FileName: "a.mp4", Type: "video"}}, post.Media)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByID(t *testing.T) {
	postID := uuid.New()
	ownerID := uuid.New()
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		expectNil bool
	}{
		{
			name: "Post found",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM posts WHERE id = $1`)).
					WithArgs(postID).
					WillReturnRows(pgxmock.NewRows(postRowColumns).
						AddRow(postID, ownerID, "", "", "post", []byte(`[]`), int64(3), int64(1), int64(0), int64(0), int64(0), now))
			},
		},
		{
			name: "Post missing",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM posts WHERE id = $1`)).
					WithArgs(postID).
					WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM posts WHERE id = $1`)).
					WithArgs(postID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)
			post, err := repo.FindByID(context.Background(), postID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectNil {
				assert.Nil(t, post)
			} else {
				assert.Equal(t, ownerID, post.UserID)
				assert.Equal(t, int64(3), post.LikesCount)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_AddLike(t *testing.T) {
	postID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name      string
		affected  int64
		expectNew bool
	}{
		{name: "First like inserts", affected: 1, expectNew: true},
		{name: "Duplicate like is a no-op", affected: 0, expectNew: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2) ON CONFLICT (post_id, user_id) DO NOTHING`)).
				WithArgs(postID, userID).
				WillReturnResult(pgxmock.NewResult("INSERT", tt.affected))

			inserted, err := repo.AddLike(context.Background(), postID, userID)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectNew, inserted)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_RemoveLike(t *testing.T) {
	repo, mock := NewMock(t)
	postID := uuid.New()
	userID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`)).
		WithArgs(postID, userID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	removed, err := repo.RemoveLike(context.Background(), postID, userID)
	assert.NoError(t, err)
	assert.False(t, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_IncrementLikes(t *testing.T) {
	repo, mock := NewMock(t)
	postID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE posts SET likes_count = GREATEST(likes_count + $2, 0) WHERE id = $1 RETURNING likes_count`)).
		WithArgs(postID, int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"likes_count"}).AddRow(int64(5)))

	count, err := repo.IncrementLikes(context.Background(), postID, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_IncrementViews(t *testing.T) {
	repo, mock := NewMock(t)
	postID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE posts SET views_count = views_count + 1`)).
		WithArgs(postID, true).
		WillReturnRows(pgxmock.NewRows(postRowColumns).
			AddRow(postID, uuid.New(), "", "", "reel", []byte(`[]`), int64(0), int64(0), int64(4), int64(2), int64(1), now))

	post, err := repo.IncrementViews(context.Background(), postID, true)
	require.NoError(t, err)
	assert.Equal(t, int64(4), post.ViewsCount)
	assert.Equal(t, int64(2), post.UniqueViewsCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CounterUpdates(t *testing.T) {
	repo, mock := NewMock(t)
	postID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE posts SET comments_count = GREATEST(comments_count + $2, 0) WHERE id = $1`)).
		WithArgs(postID, int64(-1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE posts SET completed_views_count = completed_views_count + 1 WHERE id = $1`)).
		WithArgs(postID).
		WillReturnError(errors.New("database error"))

	assert.NoError(t, repo.IncrementComments(context.Background(), postID, -1))
	assert.Error(t, repo.IncrementCompletedViews(context.Background(), postID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM posts WHERE user_id = $1 ORDER BY created_at DESC`)).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows(postRowColumns).
			AddRow(uuid.New(), userID, "new", "", "post", []byte(`[]`), int64(1), int64(0), int64(0), int64(0), int64(0), now).
			AddRow(uuid.New(), userID, "old", "", "reel", []byte(`[]`), int64(0), int64(2), int64(0), int64(0), int64(0), now.Add(-time.Hour)))

	posts, err := repo.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "new", posts[0].Caption)
	assert.Equal(t, int64(2), posts[1].CommentsCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListFeed(t *testing.T) {
	repo, mock := NewMock(t)
	viewerID := uuid.New()
	now := time.Now()
	feedColumns := append(append([]string{}, postRowColumns...), "username", "is_liked_by_me")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectLen int
	}{
		{
			name: "Feed with like flags",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`EXISTS (SELECT 1 FROM post_likes l WHERE l.post_id = p.id AND l.user_id = $1) AS is_liked_by_me`)).
					WithArgs(viewerID, 20, 0).
					WillReturnRows(pgxmock.NewRows(feedColumns).
						AddRow(uuid.New(), uuid.New(), "a", "", "post", []byte(`[{"file_name":"a.jpg","type":"image"}]`),
							int64(3), int64(0), int64(0), int64(0), int64(0), now, "alice", true).
						AddRow(uuid.New(), uuid.New(), "b", "", "reel", []byte(`[]`),
							int64(0), int64(0), int64(0), int64(0), int64(0), now, "bob", false))
			},
			expectLen: 2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM posts p JOIN users u ON u.id = p.user_id`)).
					WithArgs(viewerID, 20, 0).
					WillReturnError(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			feed, err := repo.ListFeed(context.Background(), viewerID, 20, 0)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, feed, tt.expectLen)
			assert.Equal(t, "alice", feed[0].Username)
			assert.True(t, feed[0].IsLikedByMe)
			assert.Equal(t, "a.jpg", feed[0].Media[0].FileName)
			assert.False(t, feed[1].IsLikedByMe)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)
	postID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM posts WHERE id = $1`)).
		WithArgs(postID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM posts WHERE id = $1`)).
		WithArgs(postID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	deleted, err := repo.Delete(context.Background(), postID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), postID)
	assert.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
