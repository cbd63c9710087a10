package vendorrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/pg"
)

const vendorColumns = `id, user_id, business_name, description, category, phone, address, logo_url, validated, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanVendor(row pgx.Row) (*domain.Vendor, error) {
	var v domain.Vendor
	err := row.Scan(&v.ID, &v.UserID, &v.BusinessName, &v.Description, &v.Category, &v.Phone, &v.Address,
		&v.LogoURL, &v.Validated, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repository) findOne(ctx context.Context, where string, arg any) (*domain.Vendor, error) {
	vendor, err := scanVendor(r.db.QueryRow(ctx, `SELECT `+vendorColumns+` FROM vendors WHERE `+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find vendor", zap.Error(err))
		return nil, err
	}
	return vendor, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Vendor, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.Vendor, error) {
	return r.findOne(ctx, "user_id = $1", userID)
}

// Create returns the raw driver error on a duplicate user so callers can match it with pg.IsUniqueViolation.
func (r *Repository) Create(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error) {
	query := `
		INSERT INTO vendors (user_id, business_name, description, category, phone, address, logo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + vendorColumns
	created, err := scanVendor(r.db.QueryRow(ctx, query, vendor.UserID, vendor.BusinessName, vendor.Description,
		vendor.Category, vendor.Phone, vendor.Address, vendor.LogoURL))
	if err != nil {
		if !pg.IsUniqueViolation(err) {
			zap.L().Error("can't save vendor", zap.Error(err))
		}
		return nil, err
	}
	return created, nil
}

func (r *Repository) SetValidated(ctx context.Context, id uuid.UUID, validated bool) (*domain.Vendor, error) {
	vendor, err := scanVendor(r.db.QueryRow(ctx,
		`UPDATE vendors SET validated = $2 WHERE id = $1 RETURNING `+vendorColumns, id, validated))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't update vendor validation", zap.Error(err))
		return nil, err
	}
	return vendor, nil
}
