package vendorservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/pg"
)

//go:generate mockgen -source=vendorservice.go -destination=mock_vendorservice.go -package=vendorservice

type Repo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Vendor, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Vendor, error)
	Create(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error)
	SetValidated(ctx context.Context, id uuid.UUID, validated bool) (*domain.Vendor, error)
}

type UserRepo interface {
	UpdateRole(ctx context.Context, id uuid.UUID, role string) error
}

type Ledger interface {
	Post(ctx context.Context, entry domain.LedgerEntry) (*domain.Wallet, error)
}

type Service struct {
	repo       Repo
	userRepo   UserRepo
	ledger     Ledger
	txManager  pg.TXManager
	grantCoins int64
}

func New(repo Repo, userRepo UserRepo, ledger Ledger, txManager pg.TXManager, grantCoins int64) *Service {
	return &Service{
		repo:       repo,
		userRepo:   userRepo,
		ledger:     ledger,
		txManager:  txManager,
		grantCoins: grantCoins,
	}
}

var (
	ErrVendorExists   = errors.New("vendor profile already exists")
	ErrVendorNotFound = errors.New("vendor not found")
)

// CreateVendor opens a vendor profile for the user, promotes members to the vendor role
// and credits the starting grant, all in one transaction.
func (s *Service) CreateVendor(ctx context.Context, userID uuid.UUID, role string, vendor *domain.Vendor) (*domain.Vendor, error) {
	vendor.UserID = userID
	var created *domain.Vendor
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repo.Create(ctx, vendor)
		if err != nil {
			return err
		}
		if role != domain.RoleAdmin {
			if err := s.userRepo.UpdateRole(ctx, userID, domain.RoleVendor); err != nil {
				return err
			}
		}
		if s.grantCoins > 0 {
			_, err = s.ledger.Post(ctx, domain.LedgerEntry{UserID: userID, Type: domain.TxVendorGrant, Amount: s.grantCoins})
		}
		return err
	})
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrVendorExists
		}
		zap.L().Error("can't create vendor", zap.Error(err))
		return nil, err
	}
	zap.L().Info("vendor created", zap.String("vendor_id", created.ID.String()))
	return created, nil
}

func (s *Service) GetMyVendor(ctx context.Context, userID uuid.UUID) (*domain.Vendor, error) {
	vendor, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}
	return vendor, nil
}

func (s *Service) Validate(ctx context.Context, vendorID uuid.UUID, validated bool) (*domain.Vendor, error) {
	vendor, err := s.repo.SetValidated(ctx, vendorID, validated)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}
	zap.L().Info("vendor validation changed", zap.String("vendor_id", vendorID.String()), zap.Bool("validated", validated))
	return vendor, nil
}
