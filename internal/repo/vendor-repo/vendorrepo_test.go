package vendorrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/pg"
)

var vendorRowColumns = []string{"id", "user_id", "business_name", "description", "category", "phone", "address", "logo_url", "validated", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	return New(mockDB), mockDB
}

func TestRepository_FindByUserID(t *testing.T) {
	vendorID, userID := uuid.New(), uuid.New()
	now := time.Now()

	tests := []struct {
		name        string
		prepareMock func(mock pgxmock.PgxPoolIface)
		result      *domain.Vendor
		expectErr   bool
	}{
		{
			name: "Found",
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM vendors WHERE user_id = $1`)).
					WithArgs(userID).
					WillReturnRows(pgxmock.NewRows(vendorRowColumns).
						AddRow(vendorID, userID, "Acme", "", "retail", "", "", "", true, now))
			},
			result: &domain.Vendor{ID: vendorID, UserID: userID, BusinessName: "Acme", Category: "retail", Validated: true, CreatedAt: now},
		},
		{
			name: "Missing",
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM vendors WHERE user_id = $1`)).
					WithArgs(userID).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM vendors WHERE user_id = $1`)).
					WithArgs(userID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := NewMock(t)
			tt.prepareMock(mock)
			result, err := repo.FindByUserID(context.Background(), userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Create(t *testing.T) {
	userID := uuid.New()
	vendor := &domain.Vendor{UserID: userID, BusinessName: "Acme", Category: "retail"}
	query := regexp.QuoteMeta(`INSERT INTO vendors (user_id, business_name, description, category, phone, address, logo_url)`)

	t.Run("Created", func(t *testing.T) {
		repo, mock := NewMock(t)
		vendorID := uuid.New()
		mock.ExpectQuery(query).
			WithArgs(userID, "Acme", "", "retail", "", "", "").
			WillReturnRows(pgxmock.NewRows(vendorRowColumns).
				AddRow(vendorID, userID, "Acme", "", "retail", "", "", "", false, time.Now()))

		created, err := repo.Create(context.Background(), vendor)
		require.NoError(t, err)
		assert.Equal(t, vendorID, created.ID)
		assert.False(t, created.Validated)
	})

	t.Run("Duplicate user", func(t *testing.T) {
		repo, mock := NewMock(t)
		mock.ExpectQuery(query).
			WithArgs(userID, "Acme", "", "retail", "", "", "").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		created, err := repo.Create(context.Background(), vendor)
		assert.Nil(t, created)
		assert.True(t, pg.IsUniqueViolation(err))
	})
}

func TestRepository_SetValidated(t *testing.T) {
	repo, mock := NewMock(t)
	vendorID, userID := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE vendors SET validated = $2 WHERE id = $1`)).
		WithArgs(vendorID, true).
		WillReturnRows(pgxmock.NewRows(vendorRowColumns).
			AddRow(vendorID, userID, "Acme", "", "retail", "", "", "", true, time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE vendors SET validated = $2 WHERE id = $1`)).
		WithArgs(vendorID, false).
		WillReturnError(pgx.ErrNoRows)

	vendor, err := repo.SetValidated(context.Background(), vendorID, true)
	require.NoError(t, err)
	assert.True(t, vendor.Validated)

	missing, err := repo.SetValidated(context.Background(), vendorID, false)
	assert.NoError(t, err)
	assert.Nil(t, missing)
	assert.NoError(t, mock.ExpectationsWereMet())
}
