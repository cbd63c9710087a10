package adrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/pg"
)

const adColumns = `id, vendor_id, user_id, title, description, category, tags, media, target_language, target_location,
	coins_reward, total_budget_coins, total_coins_spent, status, rejection_reason, views_count, unique_views_count,
	completed_views_count, likes_count, comments_count, is_deleted, deleted_by, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanAd(row pgx.Row) (*domain.Ad, error) {
	var ad domain.Ad
	var media []byte
	err := row.Scan(&ad.ID, &ad.VendorID, &ad.UserID, &ad.Title, &ad.Description, &ad.Category, &ad.Tags, &media,
		&ad.TargetLanguage, &ad.TargetLocation, &ad.CoinsReward, &ad.TotalBudgetCoins, &ad.TotalCoinsSpent,
		&ad.Status, &ad.RejectionReason, &ad.ViewsCount, &ad.UniqueViewsCount, &ad.CompletedViewsCount,
		&ad.LikesCount, &ad.CommentsCount, &ad.IsDeleted, &ad.DeletedBy, &ad.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(media) > 0 {
		if err := json.Unmarshal(media, &ad.Media); err != nil {
			return nil, err
		}
	}
	return &ad, nil
}

func collect(rows pgx.Rows) ([]domain.Ad, error) {
	defer rows.Close()
	ads := []domain.Ad{}
	for rows.Next() {
		ad, err := scanAd(rows)
		if err != nil {
			zap.L().Error("failed to scan ad row", zap.Error(err))
			return nil, err
		}
		ads = append(ads, *ad)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ads, nil
}

func (r *Repository) Create(ctx context.Context, ad *domain.Ad) (*domain.Ad, error) {
	media, err := json.Marshal(ad.Media)
	if err != nil {
		return nil, err
	}
	if ad.Media == nil {
		media = []byte("[]")
	}
	tags := ad.Tags
	if tags == nil {
		tags = []string{}
	}
	query := `
		INSERT INTO ads (vendor_id, user_id, title, description, category, tags, media, target_language,
			target_location, coins_reward, total_budget_coins, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + adColumns
	created, err := scanAd(r.db.QueryRow(ctx, query, ad.VendorID, ad.UserID, ad.Title, ad.Description, ad.Category,
		tags, media, ad.TargetLanguage, ad.TargetLocation, ad.CoinsReward, ad.TotalBudgetCoins, ad.Status))
	if err != nil {
		zap.L().Error("can't save ad", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Ad, error) {
	ad, err := scanAd(r.db.QueryRow(ctx, `SELECT `+adColumns+` FROM ads WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find ad", zap.Error(err))
		return nil, err
	}
	return ad, nil
}

// ListActive returns the ads viewers can currently earn from, optionally narrowed to one category.
func (r *Repository) ListActive(ctx context.Context, category string) ([]domain.Ad, error) {
	query := `SELECT ` + adColumns + ` FROM ads WHERE status = $1 AND NOT is_deleted`
	args := []any{domain.AdStatusActive}
	if category != "" {
		query += ` AND category = $2`
		args = append(args, category)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list active ads", zap.Error(err))
		return nil, err
	}
	return collect(rows)
}

func filterClause(filter domain.AdFilter) (string, []any) {
	conditions := []string{"NOT is_deleted"}
	var args []any
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *Repository) List(ctx context.Context, filter domain.AdFilter) ([]domain.Ad, error) {
	where, args := filterClause(filter)
	offset := 0
	if filter.Page > 1 {
		offset = (filter.Page - 1) * filter.Limit
	}
	args = append(args, filter.Limit, offset)
	query := `SELECT ` + adColumns + ` FROM ads` + where +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list ads", zap.Error(err))
		return nil, err
	}
	return collect(rows)
}

func (r *Repository) Count(ctx context.Context, filter domain.AdFilter) (int64, error) {
	where, args := filterClause(filter)
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM ads`+where, args...).Scan(&total); err != nil {
		zap.L().Error("can't count ads", zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status, reason string) (*domain.Ad, error) {
	query := `
		UPDATE ads SET status = $2, rejection_reason = $3
		WHERE id = $1 AND NOT is_deleted
		RETURNING ` + adColumns
	ad, err := scanAd(r.db.QueryRow(ctx, query, id, status, reason))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't update ad status", zap.Error(err))
		return nil, err
	}
	return ad, nil
}

func (r *Repository) SoftDelete(ctx context.Context, id, deletedBy uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE ads SET is_deleted = TRUE, deleted_by = $2, deleted_at = now()
		WHERE id = $1 AND NOT is_deleted
	`, id, deletedBy)
	if err != nil {
		zap.L().Error("can't delete ad", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) IncrementViews(ctx context.Context, id uuid.UUID, unique bool) error {
	_, err := r.db.Exec(ctx, `
		UPDATE ads
		SET views_count = views_count + 1,
			unique_views_count = unique_views_count + CASE WHEN $2::boolean THEN 1 ELSE 0 END
		WHERE id = $1
	`, id, unique)
	if err != nil {
		zap.L().Error("can't update ad views", zap.Error(err))
	}
	return err
}

func (r *Repository) IncrementCompletedViews(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE ads SET completed_views_count = completed_views_count + 1 WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't update ad completed views", zap.Error(err))
	}
	return err
}

// Spend moves amount from the ad's remaining budget into total_coins_spent.
// It reports false, without touching the row, when the budget cannot cover the amount.
func (r *Repository) Spend(ctx context.Context, id uuid.UUID, amount int64) (bool, error) {
	var spent int64
	err := r.db.QueryRow(ctx, `
		UPDATE ads SET total_coins_spent = total_coins_spent + $2
		WHERE id = $1 AND total_coins_spent + $2 <= total_budget_coins
		RETURNING total_coins_spent
	`, id, amount).Scan(&spent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		zap.L().Error("can't spend ad budget", zap.Error(err))
		return false, err
	}
	return true, nil
}

// FindExhausted lists active ads that cannot afford one more reward.
func (r *Repository) FindExhausted(ctx context.Context, limit int) ([]domain.Ad, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+adColumns+` FROM ads
		WHERE status = $1 AND NOT is_deleted AND total_budget_coins - total_coins_spent < coins_reward
		ORDER BY created_at
		LIMIT $2
	`, domain.AdStatusActive, limit)
	if err != nil {
		zap.L().Error("can't find exhausted ads", zap.Error(err))
		return nil, err
	}
	return collect(rows)
}

func (r *Repository) AddLike(ctx context.Context, adID, userID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO ad_likes (ad_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (ad_id, user_id) DO NOTHING
	`, adID, userID)
	if err != nil {
		zap.L().Error("can't add ad like", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) RemoveLike(ctx context.Context, adID, userID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM ad_likes WHERE ad_id = $1 AND user_id = $2`, adID, userID)
	if err != nil {
		zap.L().Error("can't remove ad like", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) IncrementLikes(ctx context.Context, adID uuid.UUID, delta int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		UPDATE ads SET likes_count = GREATEST(likes_count + $2, 0)
		WHERE id = $1
		RETURNING likes_count
	`, adID, delta).Scan(&count)
	if err != nil {
		zap.L().Error("can't update ad likes count", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// LikedAdIDs returns which of adIDs the user has liked.
func (r *Repository) LikedAdIDs(ctx context.Context, userID uuid.UUID, adIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	return r.idSet(ctx, `SELECT ad_id FROM ad_likes WHERE user_id = $1 AND ad_id = ANY($2)`, userID, adIDs)
}

// RewardedAdIDs returns which of adIDs already paid the user.
func (r *Repository) RewardedAdIDs(ctx context.Context, userID uuid.UUID, adIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	return r.idSet(ctx, `SELECT ad_id FROM ad_views WHERE user_id = $1 AND ad_id = ANY($2) AND rewarded`, userID, adIDs)
}

func (r *Repository) idSet(ctx context.Context, query string, userID uuid.UUID, adIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	set := make(map[uuid.UUID]bool, len(adIDs))
	if len(adIDs) == 0 {
		return set, nil
	}
	rows, err := r.db.Query(ctx, query, userID, adIDs)
	if err != nil {
		zap.L().Error("can't load ad ids for user", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		set[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return set, nil
}
