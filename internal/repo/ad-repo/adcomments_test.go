package adrepo

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

var adCommentColumns = []string{"id", "ad_id", "user_id", "username", "text", "is_deleted", "created_at"}

func TestRepository_CreateComment(t *testing.T) {
	repo, mock := NewMock(t)
	adID, userID, commentID := uuid.New(), uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO ad_comments (ad_id, user_id, text) VALUES ($1, $2, $3)`)).
		WithArgs(adID, userID, "nice ad").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "created_at"}).AddRow(commentID, "alice", now))

	comment, err := repo.CreateComment(context.Background(), &domain.AdComment{AdID: adID, UserID: userID, Text: "nice ad"})
	require.NoError(t, err)
	assert.Equal(t, commentID, comment.ID)
	assert.Equal(t, "alice", comment.Username)
	assert.Equal(t, now, comment.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindComment(t *testing.T) {
	repo, mock := NewMock(t)
	commentID, adID, userID := uuid.New(), uuid.New(), uuid.New()
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectNil bool
		deleted   bool
	}{
		{
			name: "Soft-deleted comment is still returned",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM ad_comments c JOIN users u ON u.id = c.user_id WHERE c.id = $1`)).
					WithArgs(commentID).
					WillReturnRows(pgxmock.NewRows(adCommentColumns).AddRow(commentID, adID, userID, "alice", "hi", true, now))
			},
			deleted: true,
		},
		{
			name: "Missing comment",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE c.id = $1`)).
					WithArgs(commentID).
					WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE c.id = $1`)).
					WithArgs(commentID).
					WillReturnError(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			comment, err := repo.FindComment(context.Background(), commentID)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.expectNil {
				assert.Nil(t, comment)
				return
			}
			assert.Equal(t, tt.deleted, comment.IsDeleted)
			assert.Equal(t, adID, comment.AdID)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListComments(t *testing.T) {
	repo, mock := NewMock(t)
	adID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE c.ad_id = $1 AND NOT c.is_deleted ORDER BY c.created_at DESC LIMIT $2 OFFSET $3`)).
		WithArgs(adID, 20, 0).
		WillReturnRows(pgxmock.NewRows(adCommentColumns).
			AddRow(uuid.New(), adID, uuid.New(), "bob", "second", false, now).
			AddRow(uuid.New(), adID, uuid.New(), "alice", "first", false, now.Add(-time.Minute)))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM ad_comments WHERE ad_id = $1 AND NOT is_deleted`)).
		WithArgs(adID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))

	comments, err := repo.ListComments(context.Background(), adID, 20, 0)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "second", comments[0].Text)

	total, err := repo.CountComments(context.Background(), adID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SoftDeleteComment(t *testing.T) {
	repo, mock := NewMock(t)
	commentID, adID := uuid.New(), uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE ad_comments SET is_deleted = TRUE WHERE id = $1 AND NOT is_deleted`)).
		WithArgs(commentID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE ad_comments SET is_deleted = TRUE`)).
		WithArgs(commentID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE ads SET comments_count = GREATEST(comments_count + $2, 0)`)).
		WithArgs(adID, int64(-1)).
		WillReturnRows(pgxmock.NewRows([]string{"comments_count"}).AddRow(int64(0)))

	deleted, err := repo.SoftDeleteComment(context.Background(), commentID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.SoftDeleteComment(context.Background(), commentID)
	assert.NoError(t, err)
	assert.False(t, deleted)

	count, err := repo.IncrementComments(context.Background(), adID, -1)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
