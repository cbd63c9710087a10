package walletrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Balance, &wallet.Currency, &wallet.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	query := `
		SELECT id, user_id, balance, currency, updated_at
		FROM wallets
		WHERE user_id = $1
	`
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// GetOrCreate inserts an empty wallet unless one exists and returns the stored row.
func (r *Repository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	var wallet *domain.Wallet
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, `
			INSERT INTO wallets (user_id, balance, currency)
			VALUES ($1, 0, $2)
			ON CONFLICT (user_id) DO NOTHING
		`, userID, domain.DefaultCurrency)
		if err != nil {
			zap.L().Error("failed to create wallet", zap.Error(err))
			return err
		}

		wallet, err = scanWallet(r.db.QueryRow(ctx, `
			SELECT id, user_id, balance, currency, updated_at
			FROM wallets
			WHERE user_id = $1
		`, userID))
		if err != nil {
			zap.L().Error("failed to read wallet", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return wallet, nil
}

// Adjust adds delta to the balance in a single upsert, creating the wallet first when needed.
func (r *Repository) Adjust(ctx context.Context, userID uuid.UUID, delta int64) (*domain.Wallet, error) {
	query := `
		INSERT INTO wallets (user_id, balance, currency)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET balance = wallets.balance + EXCLUDED.balance, updated_at = now()
		RETURNING id, user_id, balance, currency, updated_at
	`
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, userID, delta, domain.DefaultCurrency))
	if err != nil {
		zap.L().Error("failed to adjust wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// Withdraw debits amount only when the balance covers it. A nil wallet means insufficient funds.
func (r *Repository) Withdraw(ctx context.Context, userID uuid.UUID, amount int64) (*domain.Wallet, error) {
	query := `
		UPDATE wallets
		SET balance = balance - $2, updated_at = now()
		WHERE user_id = $1 AND balance >= $2
		RETURNING id, user_id, balance, currency, updated_at
	`
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, userID, amount))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to withdraw from wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}
