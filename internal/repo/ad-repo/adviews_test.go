package adrepo

import (
	"context"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var adViewRowColumns = []string{"id", "ad_id", "user_id", "view_count", "completed", "completed_at", "rewarded",
	"rewarded_at", "coins_rewarded", "watch_time_ms", "fraud_flagged"}

func TestRepository_RecordView(t *testing.T) {
	repo, mock := NewMock(t)
	adID, userID := uuid.New(), uuid.New()
	columns := append(append([]string{}, adViewRowColumns...), "inserted")

	mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT (ad_id, user_id) DO UPDATE SET view_count = ad_views.view_count + 1`)).
		WithArgs(adID, userID).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(3), adID, userID, int64(1), false, nil, false, nil, int64(0), int64(0), false, true))

	view, unique, err := repo.RecordView(context.Background(), adID, userID)
	require.NoError(t, err)
	assert.True(t, unique)
	assert.Equal(t, int64(3), view.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_EnsureView(t *testing.T) {
	repo, mock := NewMock(t)
	adID, userID := uuid.New(), uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO ad_views (ad_id, user_id) VALUES ($1, $2) ON CONFLICT (ad_id, user_id) DO NOTHING`)).
		WithArgs(adID, userID).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM ad_views WHERE ad_id = $1 AND user_id = $2 FOR UPDATE`)).
		WithArgs(adID, userID).
		WillReturnRows(pgxmock.NewRows(adViewRowColumns).
			AddRow(int64(4), adID, userID, int64(1), false, nil, false, nil, int64(0), int64(0), false))

	view, created, err := repo.EnsureView(context.Background(), adID, userID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.False(t, view.FraudFlagged)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ViewFlags(t *testing.T) {
	repo, mock := NewMock(t)
	adID, userID := uuid.New(), uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`watch_time_ms = GREATEST(watch_time_ms, $2)`)).
		WithArgs(int64(4), int64(30000)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(`WHERE id = $1 AND NOT rewarded AND NOT fraud_flagged`)).
		WithArgs(int64(4), int64(10)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE ad_views SET fraud_flagged = $3, updated_at = now() WHERE ad_id = $1 AND user_id = $2`)).
		WithArgs(adID, userID, false).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	completed, err := repo.MarkViewCompleted(context.Background(), 4, 30000)
	assert.NoError(t, err)
	assert.True(t, completed)

	claimed, err := repo.ClaimViewReward(context.Background(), 4, 10)
	assert.NoError(t, err)
	assert.True(t, claimed)

	found, err := repo.SetViewFraudFlag(context.Background(), adID, userID, false)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}
