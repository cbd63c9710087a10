package userrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/pg"
)

const profileFields = `
	SELECT u.id, u.email, u.username, u.full_name, u.role, u.bio, u.avatar_url, u.phone,
		u.followers_count, u.following_count,
		(SELECT COUNT(*) FROM posts p WHERE p.user_id = u.id) AS posts_count, u.created_at
`

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(&p.ID, &p.Email, &p.Username, &p.FullName, &p.Role, &p.Bio, &p.AvatarURL, &p.Phone,
		&p.FollowersCount, &p.FollowingCount, &p.PostsCount, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (repo *Repository) FindProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	profile, err := scanProfile(repo.db.QueryRow(ctx, profileFields+` FROM users u WHERE u.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find profile", zap.Error(err))
		return nil, err
	}
	return profile, nil
}

// ListProfiles returns users newest first.
func (repo *Repository) ListProfiles(ctx context.Context, limit, offset int) ([]domain.Profile, error) {
	rows, err := repo.db.Query(ctx, profileFields+`
		FROM users u
		ORDER BY u.created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	profiles := []domain.Profile{}
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			zap.L().Error("failed to scan profile row", zap.Error(err))
			return nil, err
		}
		profiles = append(profiles, *profile)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (repo *Repository) CountUsers(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		zap.L().Error("can't count users", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// UpdateProfile leaves nil fields untouched. A taken username surfaces as the raw unique violation.
func (repo *Repository) UpdateProfile(ctx context.Context, id uuid.UUID, upd domain.ProfileUpdate) (*domain.Profile, error) {
	query := `
		WITH u AS (
			UPDATE users
			SET username = COALESCE($2, username),
				full_name = COALESCE($3, full_name),
				bio = COALESCE($4, bio),
				avatar_url = COALESCE($5, avatar_url),
				phone = COALESCE($6, phone)
			WHERE id = $1
			RETURNING *
		)` + profileFields + ` FROM u`
	profile, err := scanProfile(repo.db.QueryRow(ctx, query, id, upd.Username, upd.FullName, upd.Bio, upd.AvatarURL, upd.Phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if !pg.IsUniqueViolation(err) {
			zap.L().Error("can't update profile", zap.Error(err))
		}
		return nil, err
	}
	return profile, nil
}

// IncrementFollowCounts moves following_count of the follower and followers_count of the followed user by delta.
func (repo *Repository) IncrementFollowCounts(ctx context.Context, followerID, followedID uuid.UUID, delta int64) (following, followers int64, err error) {
	query := `
		WITH a AS (
			UPDATE users SET following_count = GREATEST(following_count + $3, 0)
			WHERE id = $1
			RETURNING following_count
		), b AS (
			UPDATE users SET followers_count = GREATEST(followers_count + $3, 0)
			WHERE id = $2
			RETURNING followers_count
		)
		SELECT a.following_count, b.followers_count FROM a, b
	`
	if err = repo.db.QueryRow(ctx, query, followerID, followedID, delta).Scan(&following, &followers); err != nil {
		zap.L().Error("can't update follow counts", zap.Error(err))
		return 0, 0, err
	}
	return following, followers, nil
}
