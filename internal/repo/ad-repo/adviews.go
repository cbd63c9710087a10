package adrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
)

const adViewColumns = `id, ad_id, user_id, view_count, completed, completed_at, rewarded, rewarded_at, coins_rewarded, watch_time_ms, fraud_flagged`

func scanAdView(row pgx.Row, extra ...any) (*domain.AdView, error) {
	var v domain.AdView
	dest := []any{&v.ID, &v.AdID, &v.UserID, &v.ViewCount, &v.Completed, &v.CompletedAt, &v.Rewarded,
		&v.RewardedAt, &v.CoinsRewarded, &v.WatchTimeMs, &v.FraudFlagged}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &v, nil
}

// RecordView counts a view and reports whether it was the user's first one for the ad.
func (r *Repository) RecordView(ctx context.Context, adID, userID uuid.UUID) (*domain.AdView, bool, error) {
	query := `
		INSERT INTO ad_views (ad_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (ad_id, user_id)
		DO UPDATE SET view_count = ad_views.view_count + 1, updated_at = now()
		RETURNING ` + adViewColumns + `, (xmax = 0) AS inserted`
	var inserted bool
	view, err := scanAdView(r.db.QueryRow(ctx, query, adID, userID), &inserted)
	if err != nil {
		zap.L().Error("can't record ad view", zap.Error(err))
		return nil, false, err
	}
	return view, inserted, nil
}

// EnsureView returns the (ad, user) view row locked for update, creating it when missing.
func (r *Repository) EnsureView(ctx context.Context, adID, userID uuid.UUID) (*domain.AdView, bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO ad_views (ad_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (ad_id, user_id) DO NOTHING
	`, adID, userID)
	if err != nil {
		zap.L().Error("can't create ad view", zap.Error(err))
		return nil, false, err
	}

	view, err := scanAdView(r.db.QueryRow(ctx,
		`SELECT `+adViewColumns+` FROM ad_views WHERE ad_id = $1 AND user_id = $2 FOR UPDATE`, adID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		zap.L().Error("can't lock ad view", zap.Error(err))
		return nil, false, err
	}
	return view, tag.RowsAffected() == 1, nil
}

func (r *Repository) MarkViewCompleted(ctx context.Context, id int64, watchTimeMs int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE ad_views
		SET completed = TRUE, completed_at = now(), watch_time_ms = GREATEST(watch_time_ms, $2), updated_at = now()
		WHERE id = $1 AND NOT completed
	`, id, watchTimeMs)
	if err != nil {
		zap.L().Error("can't mark ad view completed", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ClaimViewReward flips the rewarded flag once and records the paid amount.
func (r *Repository) ClaimViewReward(ctx context.Context, id int64, coins int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE ad_views
		SET rewarded = TRUE, rewarded_at = now(), coins_rewarded = $2, updated_at = now()
		WHERE id = $1 AND NOT rewarded AND NOT fraud_flagged
	`, id, coins)
	if err != nil {
		zap.L().Error("can't claim ad view reward", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// SetViewFraudFlag is the admin override; false means the user never viewed the ad.
func (r *Repository) SetViewFraudFlag(ctx context.Context, adID, userID uuid.UUID, flagged bool) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE ad_views SET fraud_flagged = $3, updated_at = now()
		WHERE ad_id = $1 AND user_id = $2
	`, adID, userID, flagged)
	if err != nil {
		zap.L().Error("can't set ad view fraud flag", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
