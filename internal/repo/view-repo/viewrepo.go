package viewrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/pg"
)

const viewColumns = `id, post_id, user_id, view_count, completed, completed_at, rewarded, rewarded_at, watch_time_ms`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Record counts a view and reports whether it was the user's first one for the post.
func (r *Repository) Record(ctx context.Context, postID, userID uuid.UUID) (*domain.PostView, bool, error) {
	query := `
		INSERT INTO post_views (post_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (post_id, user_id)
		DO UPDATE SET view_count = post_views.view_count + 1, updated_at = now()
		RETURNING ` + viewColumns + `, (xmax = 0) AS inserted`
	var view domain.PostView
	var inserted bool
	err := r.db.QueryRow(ctx, query, postID, userID).Scan(&view.ID, &view.PostID, &view.UserID, &view.ViewCount,
		&view.Completed, &view.CompletedAt, &view.Rewarded, &view.RewardedAt, &view.WatchTimeMs, &inserted)
	if err != nil {
		zap.L().Error("can't record post view", zap.Error(err))
		return nil, false, err
	}
	return &view, inserted, nil
}

// Ensure returns the (post, user) view row locked for update, creating it first when missing.
// The flag is true when the row did not exist before.
func (r *Repository) Ensure(ctx context.Context, postID, userID uuid.UUID) (*domain.PostView, bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO post_views (post_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (post_id, user_id) DO NOTHING
	`, postID, userID)
	if err != nil {
		zap.L().Error("can't create post view", zap.Error(err))
		return nil, false, err
	}

	var view domain.PostView
	err = r.db.QueryRow(ctx, `SELECT `+viewColumns+` FROM post_views WHERE post_id = $1 AND user_id = $2 FOR UPDATE`, postID, userID).
		Scan(&view.ID, &view.PostID, &view.UserID, &view.ViewCount, &view.Completed, &view.CompletedAt,
			&view.Rewarded, &view.RewardedAt, &view.WatchTimeMs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		zap.L().Error("can't lock post view", zap.Error(err))
		return nil, false, err
	}
	return &view, tag.RowsAffected() == 1, nil
}

// MarkCompleted flips the completed flag once; false means it was already set.
func (r *Repository) MarkCompleted(ctx context.Context, id int64, watchTimeMs *int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE post_views
		SET completed = TRUE, completed_at = now(), watch_time_ms = COALESCE($2, watch_time_ms), updated_at = now()
		WHERE id = $1 AND NOT completed
	`, id, watchTimeMs)
	if err != nil {
		zap.L().Error("can't mark post view completed", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ClaimReward flips the rewarded flag once; false means the reward was already paid.
func (r *Repository) ClaimReward(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE post_views
		SET rewarded = TRUE, rewarded_at = now(), updated_at = now()
		WHERE id = $1 AND NOT rewarded
	`, id)
	if err != nil {
		zap.L().Error("can't claim post view reward", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
