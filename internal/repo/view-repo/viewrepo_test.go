package viewrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var viewRowColumns = []string{"id", "post_id", "user_id", "view_count", "completed", "completed_at", "rewarded", "rewarded_at", "watch_time_ms"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	return New(mockDB), mockDB
}

func TestRepository_Record(t *testing.T) {
	postID, userID := uuid.New(), uuid.New()
	query := regexp.QuoteMeta(`ON CONFLICT (post_id, user_id) DO UPDATE SET view_count = post_views.view_count + 1`)
	columns := append(append([]string{}, viewRowColumns...), "inserted")

	tests := []struct {
		name      string
		prepare   func(mock pgxmock.PgxPoolIface)
		unique    bool
		count     int64
		expectErr bool
	}{
		{
			name: "First view",
			prepare: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs(postID, userID).
					WillReturnRows(pgxmock.NewRows(columns).AddRow(int64(1), postID, userID, int64(1), false, nil, false, nil, nil, true))
			},
			unique: true,
			count:  1,
		},
		{
			name: "Repeat view",
			prepare: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs(postID, userID).
					WillReturnRows(pgxmock.NewRows(columns).AddRow(int64(1), postID, userID, int64(3), false, nil, false, nil, nil, false))
			},
			count: 3,
		},
		{
			name: "Database error",
			prepare: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(query).WithArgs(postID, userID).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.prepare(mock)
			view, unique, err := repo.Record(context.Background(), postID, userID)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.unique, unique)
			assert.Equal(t, tt.count, view.ViewCount)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Ensure(t *testing.T) {
	repo, mock := NewMock(t)
	postID, userID := uuid.New(), uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO post_views (post_id, user_id) VALUES ($1, $2) ON CONFLICT (post_id, user_id) DO NOTHING`)).
		WithArgs(postID, userID).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM post_views WHERE post_id = $1 AND user_id = $2 FOR UPDATE`)).
		WithArgs(postID, userID).
		WillReturnRows(pgxmock.NewRows(viewRowColumns).AddRow(int64(7), postID, userID, int64(2), true, nil, false, nil, nil))

	view, created, err := repo.Ensure(context.Background(), postID, userID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(7), view.ID)
	assert.True(t, view.Completed)
	assert.False(t, view.Rewarded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Flags(t *testing.T) {
	repo, mock := NewMock(t)
	watch := int64(15000)

	mock.ExpectExec(regexp.QuoteMeta(`SET completed = TRUE, completed_at = now(), watch_time_ms = COALESCE($2, watch_time_ms)`)).
		WithArgs(int64(7), &watch).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(`SET rewarded = TRUE, rewarded_at = now(), updated_at = now() WHERE id = $1 AND NOT rewarded`)).
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(`WHERE id = $1 AND NOT rewarded`)).
		WithArgs(int64(7)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	completed, err := repo.MarkCompleted(context.Background(), 7, &watch)
	assert.NoError(t, err)
	assert.True(t, completed)

	claimed, err := repo.ClaimReward(context.Background(), 7)
	assert.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = repo.ClaimReward(context.Background(), 7)
	assert.NoError(t, err)
	assert.False(t, claimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
