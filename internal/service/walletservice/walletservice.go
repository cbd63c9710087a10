package walletservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/pg"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/utils"
)

//go:generate mockgen -source=walletservice.go -destination=mock_walletservice.go -package=walletservice

type WalletRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	Adjust(ctx context.Context, userID uuid.UUID, delta int64) (*domain.Wallet, error)
	Withdraw(ctx context.Context, userID uuid.UUID, amount int64) (*domain.Wallet, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Transaction, error)
	List(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)
	Count(ctx context.Context, filter domain.TransactionFilter) (int64, error)
	Summary(ctx context.Context) (*domain.RewardSummary, error)
}

type Service struct {
	walletRepo WalletRepo
	txRepo     TransactionRepo
	txManager  pg.TXManager
}

func New(walletRepo WalletRepo, txRepo TransactionRepo, txManager pg.TXManager) *Service {
	return &Service{
		walletRepo: walletRepo,
		txRepo:     txRepo,
		txManager:  txManager,
	}
}

const RecentTransactionsLimit = 50

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidType         = errors.New("invalid transaction type")
)

func (s *Service) GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetOrCreate(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// Post applies one signed balance change and appends the matching transaction row.
// Both writes share the caller's transaction when there is one.
func (s *Service) Post(ctx context.Context, entry domain.LedgerEntry) (*domain.Wallet, error) {
	if !entry.Type.Valid() {
		return nil, ErrInvalidType
	}
	var wallet *domain.Wallet
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		wallet, err = s.walletRepo.Adjust(ctx, entry.UserID, entry.Amount)
		if err != nil {
			return fmt.Errorf("adjust wallet: %w", err)
		}
		_, err = s.txRepo.Create(ctx, &domain.Transaction{
			UserID: entry.UserID,
			PostID: entry.PostID,
			AdID:   entry.AdID,
			Type:   entry.Type,
			Amount: entry.Amount,
			Status: domain.TxStatusSuccess,
		})
		if err != nil {
			return fmt.Errorf("record transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to post ledger entry", zap.String("type", string(entry.Type)), zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// Reserve takes an ad budget out of the vendor's wallet. It fails with ErrInsufficientBalance
// instead of letting the balance go negative.
func (s *Service) Reserve(ctx context.Context, userID, adID uuid.UUID, amount int64) (*domain.Wallet, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	var wallet *domain.Wallet
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		wallet, err = s.walletRepo.Withdraw(ctx, userID, amount)
		if err != nil {
			return err
		}
		if wallet == nil {
			return ErrInsufficientBalance
		}
		_, err = s.txRepo.Create(ctx, &domain.Transaction{
			UserID: userID,
			AdID:   &adID,
			Type:   domain.TxAdReward,
			Amount: -amount,
			Status: domain.TxStatusSuccess,
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("failed to reserve ad budget", zap.Error(err))
		}
		return nil, err
	}
	return wallet, nil
}

// GetMyWallet returns the user's wallet with the most recent transactions.
func (s *Service) GetMyWallet(ctx context.Context, userID uuid.UUID) (*domain.Wallet, []domain.Transaction, error) {
	wallet, err := s.walletRepo.GetOrCreate(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, nil, err
	}
	transactions, err := s.txRepo.ListByUserID(ctx, userID, RecentTransactionsLimit)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Error(err))
		return nil, nil, err
	}
	if transactions == nil {
		transactions = []domain.Transaction{}
	}
	return wallet, transactions, nil
}

// ListTransactions builds the admin page: one page of rows, the filtered total and the global reward summary.
func (s *Service) ListTransactions(ctx context.Context, filter domain.TransactionFilter) (*domain.TransactionPage, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, ErrInvalidType
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = utils.DefaultPageLimit
	}
	if filter.Limit > utils.MaxPageLimit {
		filter.Limit = utils.MaxPageLimit
	}

	page := &domain.TransactionPage{Page: filter.Page, Limit: filter.Limit}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		transactions, err := s.txRepo.List(gctx, filter)
		if err != nil {
			return err
		}
		if transactions == nil {
			transactions = []domain.Transaction{}
		}
		page.Transactions = transactions
		return nil
	})
	g.Go(func() error {
		total, err := s.txRepo.Count(gctx, filter)
		page.Total = total
		return err
	})
	g.Go(func() error {
		summary, err := s.txRepo.Summary(gctx)
		if err != nil {
			return err
		}
		page.Summary = *summary
		return nil
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to build transactions page", zap.Error(err))
		return nil, err
	}
	return page, nil
}
