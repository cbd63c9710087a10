package followrepo

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Add reports false when the edge already exists.
func (r *Repository) Add(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO follows (follower_id, followed_id)
		VALUES ($1, $2)
		ON CONFLICT (follower_id, followed_id) DO NOTHING
	`, followerID, followedID)
	if err != nil {
		zap.L().Error("can't add follow", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) Remove(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM follows WHERE follower_id = $1 AND followed_id = $2`, followerID, followedID)
	if err != nil {
		zap.L().Error("can't remove follow", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ListFollowers returns the users following userID, latest first.
func (r *Repository) ListFollowers(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error) {
	return r.list(ctx, `
		SELECT u.id, u.username, u.full_name, u.avatar_url, u.followers_count, u.following_count
		FROM follows f
		JOIN users u ON u.id = f.follower_id
		WHERE f.followed_id = $1
		ORDER BY f.created_at DESC
	`, userID)
}

// ListFollowing returns the users userID follows, latest first.
func (r *Repository) ListFollowing(ctx context.Context, userID uuid.UUID) ([]domain.Profile, error) {
	return r.list(ctx, `
		SELECT u.id, u.username, u.full_name, u.avatar_url, u.followers_count, u.following_count
		FROM follows f
		JOIN users u ON u.id = f.followed_id
		WHERE f.follower_id = $1
		ORDER BY f.created_at DESC
	`, userID)
}

func (r *Repository) list(ctx context.Context, query string, userID uuid.UUID) ([]domain.Profile, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list follows", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	users := []domain.Profile{}
	for rows.Next() {
		var u domain.Profile
		if err := rows.Scan(&u.ID, &u.Username, &u.FullName, &u.AvatarURL, &u.FollowersCount, &u.FollowingCount); err != nil {
			zap.L().Error("failed to scan follow row", zap.Error(err))
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}
