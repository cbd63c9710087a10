package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
)

var txColumns = []string{"id", "user_id", "post_id", "ad_id", "type", "amount", "status", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	postID := uuid.New()
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Transaction recorded",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO wallet_transactions (user_id, post_id, ad_id, type, amount, status) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`)).
					WithArgs(userID, &postID, (*uuid.UUID)(nil), "LIKE", int64(-10), "SUCCESS").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), now))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO wallet_transactions`)).
					WithArgs(userID, &postID, (*uuid.UUID)(nil), "LIKE", int64(-10), "SUCCESS").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			tx := &domain.Transaction{
				UserID: userID,
				PostID: &postID,
				Type:   domain.TxLike,
				Amount: -10,
				Status: domain.TxStatusSuccess,
			}
			result, err := repo.Create(context.Background(), tx)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(7), result.ID)
				assert.Equal(t, now, result.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	adID := uuid.New()
	now := time.Now()

	rows := pgxmock.NewRows(txColumns).
		AddRow(int64(2), userID, nil, &adID, domain.TxAdReward, int64(15), "SUCCESS", now).
		AddRow(int64(1), userID, nil, &adID, domain.TxAdReward, int64(-100), "SUCCESS", now.Add(-time.Minute))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM wallet_transactions WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2`)).
		WithArgs(userID, 50).
		WillReturnRows(rows)

	result, err := repo.ListByUserID(context.Background(), userID, 50)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, int64(15), result[0].Amount)
	assert.Nil(t, result[0].PostID)
	assert.Equal(t, &adID, result[0].AdID)
	assert.Equal(t, domain.TxAdReward, result[1].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	userID := uuid.New()
	now := time.Now()

	tests := []struct {
		name      string
		filter    domain.TransactionFilter
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectLen int
		expectErr bool
	}{
		{
			name:   "No filters",
			filter: domain.TransactionFilter{Page: 1, Limit: 20},
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM wallet_transactions ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`)).
					WithArgs(20, 0).
					WillReturnRows(pgxmock.NewRows(txColumns).
						AddRow(int64(1), userID, nil, nil, domain.TxReelViewReward, int64(20), "SUCCESS", now))
			},
			expectLen: 1,
		},
		{
			name:   "Type and user filters",
			filter: domain.TransactionFilter{Type: domain.TxSave, UserID: &userID, Page: 2, Limit: 10},
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM wallet_transactions WHERE type = $1 AND user_id = $2 ORDER BY created_at DESC, id DESC LIMIT $3 OFFSET $4`)).
					WithArgs("SAVE", userID, 10, 10).
					WillReturnRows(pgxmock.NewRows(txColumns))
			},
			expectLen: 0,
		},
		{
			name:   "Query error",
			filter: domain.TransactionFilter{Page: 1, Limit: 20},
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM wallet_transactions`)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.mockSetup(mock)
			result, err := repo.List(context.Background(), tt.filter)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.expectLen)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Count(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM wallet_transactions WHERE user_id = $1`)).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(12)))

	total, err := repo.Count(context.Background(), domain.TransactionFilter{UserID: &userID})
	assert.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Summary(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM wallet_transactions WHERE status = 'SUCCESS' AND amount > 0`)).
		WillReturnRows(pgxmock.NewRows([]string{"ads", "reels"}).AddRow(int64(150), int64(60)))

	summary, err := repo.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &domain.RewardSummary{
		TotalCoinsMinted:    210,
		TotalCoinsFromAds:   150,
		TotalCoinsFromReels: 60,
	}, summary)
	assert.NoError(t, mock.ExpectationsWereMet())
}
