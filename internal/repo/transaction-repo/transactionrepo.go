package transactionrepo

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/pg"
)

const selectColumns = `id, user_id, post_id, ad_id, type, amount, status, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO wallet_transactions (user_id, post_id, ad_id, type, amount, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, tx.UserID, tx.PostID, tx.AdID, string(tx.Type), tx.Amount, tx.Status).
		Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		zap.L().Error("can't save wallet transaction", zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Transaction, error) {
	query := `
		SELECT ` + selectColumns + `
		FROM wallet_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch wallet transactions", zap.Error(err))
		return nil, err
	}
	return collect(rows)
}

func (r *Repository) List(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	where, args := filterClause(filter)
	args = append(args, filter.Limit, filter.Offset())
	query := fmt.Sprintf(`
		SELECT %s
		FROM wallet_transactions%s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, selectColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to list wallet transactions", zap.Error(err))
		return nil, err
	}
	return collect(rows)
}

func (r *Repository) Count(ctx context.Context, filter domain.TransactionFilter) (int64, error) {
	where, args := filterClause(filter)
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM wallet_transactions`+where, args...).Scan(&total)
	if err != nil {
		zap.L().Error("failed to count wallet transactions", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// Summary sums minted coins. Negative AD_REWARD rows are vendor budget reservations and are excluded.
func (r *Repository) Summary(ctx context.Context) (*domain.RewardSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'AD_REWARD'), 0)::bigint,
			COALESCE(SUM(amount) FILTER (WHERE type = 'REEL_VIEW_REWARD'), 0)::bigint
		FROM wallet_transactions
		WHERE status = 'SUCCESS' AND amount > 0 AND type IN ('AD_REWARD', 'REEL_VIEW_REWARD')
	`
	var summary domain.RewardSummary
	err := r.db.QueryRow(ctx, query).Scan(&summary.TotalCoinsFromAds, &summary.TotalCoinsFromReels)
	if err != nil {
		zap.L().Error("failed to summarize minted coins", zap.Error(err))
		return nil, err
	}
	summary.TotalCoinsMinted = summary.TotalCoinsFromAds + summary.TotalCoinsFromReels
	return &summary, nil
}

func filterClause(filter domain.TransactionFilter) (string, []any) {
	var conditions []string
	var args []any
	if filter.Type != "" {
		args = append(args, string(filter.Type))
		conditions = append(conditions, fmt.Sprintf("type = $%d", len(args)))
	}
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func collect(rows pgx.Rows) ([]domain.Transaction, error) {
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.PostID, &tx.AdID, &tx.Type, &tx.Amount, &tx.Status, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan wallet transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate wallet transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}
