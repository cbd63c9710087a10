package commentrepo

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

var commentColumns = []string{"id", "post_id", "parent_id", "user_id", "username", "text", "likes_count", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	postID, parentID, userID, commentID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO comments (post_id, parent_id, user_id, text) VALUES ($1, $2, $3, $4) RETURNING id, user_id, likes_count, created_at`)).
		WithArgs(postID, &parentID, userID, "nice").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "likes_count", "created_at"}).AddRow(commentID, "bob", int64(0), now))

	comment, err := repo.Create(context.Background(), &domain.Comment{PostID: postID, ParentID: &parentID, UserID: userID, Text: "nice"})
	require.NoError(t, err)
	assert.Equal(t, commentID, comment.ID)
	assert.Equal(t, "bob", comment.Username)
	assert.Equal(t, now, comment.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByID(t *testing.T) {
	commentID, postID, parentID, userID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		result    *domain.Comment
	}{
		{
			name: "Reply found",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(`JOIN users u ON u.id = c.user_id WHERE c.id = $1`)).
					WithArgs(commentID).
					WillReturnRows(pgxmock.NewRows(commentColumns).
						AddRow(commentID, postID, &parentID, userID, "bob", "hi", int64(2), now))
			},
			result: &domain.Comment{ID: commentID, PostID: postID, ParentID: &parentID, UserID: userID, Username: "bob", Text: "hi", LikesCount: 2, CreatedAt: now},
		},
		{
			name: "Missing",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE c.id = $1`)).
					WithArgs(commentID).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE c.id = $1`)).
					WithArgs(commentID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)
			result, err := repo.FindByID(context.Background(), commentID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_ListByPostID(t *testing.T) {
	repo, mock := NewMock(t)
	postID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE c.post_id = $1 ORDER BY c.created_at DESC LIMIT $2 OFFSET $3`)).
		WithArgs(postID, 20, 0).
		WillReturnRows(pgxmock.NewRows(commentColumns).
			AddRow(uuid.New(), postID, nil, uuid.New(), "bob", "first", int64(0), now).
			AddRow(uuid.New(), postID, nil, uuid.New(), "eve", "second", int64(1), now))

	comments, err := repo.ListByPostID(context.Background(), postID, 20, 0)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Nil(t, comments[0].ParentID)
	assert.Equal(t, "eve", comments[1].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)
	commentID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`DELETE FROM comments WHERE id = $1 OR parent_id = $1 RETURNING id`)).
		WithArgs(commentID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	deleted, err := repo.Delete(context.Background(), commentID)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Likes(t *testing.T) {
	repo, mock := NewMock(t)
	commentID, userID := uuid.New(), uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO comment_likes (comment_id, user_id) VALUES ($1, $2) ON CONFLICT (comment_id, user_id) DO NOTHING`)).
		WithArgs(commentID, userID).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE comments SET likes_count = GREATEST(likes_count + $2, 0) WHERE id = $1 RETURNING likes_count`)).
		WithArgs(commentID, int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"likes_count"}).AddRow(int64(1)))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM comment_likes WHERE comment_id = $1 AND user_id = $2`)).
		WithArgs(commentID, userID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	added, err := repo.AddLike(context.Background(), commentID, userID)
	assert.NoError(t, err)
	assert.True(t, added)
	count, err := repo.IncrementLikes(context.Background(), commentID, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
	removed, err := repo.RemoveLike(context.Background(), commentID, userID)
	assert.NoError(t, err)
	assert.True(t, removed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
