package adrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
)

const selectAdComment = `
	SELECT c.id, c.ad_id, c.user_id, u.username, c.text, c.is_deleted, c.created_at
	FROM ad_comments c
	JOIN users u ON u.id = c.user_id
`

func scanAdComment(row pgx.Row) (*domain.AdComment, error) {
	var c domain.AdComment
	if err := row.Scan(&c.ID, &c.AdID, &c.UserID, &c.Username, &c.Text, &c.IsDeleted, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) CreateComment(ctx context.Context, comment *domain.AdComment) (*domain.AdComment, error) {
	query := `
		WITH inserted AS (
			INSERT INTO ad_comments (ad_id, user_id, text)
			VALUES ($1, $2, $3)
			RETURNING id, user_id, created_at
		)
		SELECT i.id, u.username, i.created_at
		FROM inserted i
		JOIN users u ON u.id = i.user_id
	`
	err := r.db.QueryRow(ctx, query, comment.AdID, comment.UserID, comment.Text).
		Scan(&comment.ID, &comment.Username, &comment.CreatedAt)
	if err != nil {
		zap.L().Error("can't save ad comment", zap.Error(err))
		return nil, err
	}
	return comment, nil
}

// FindComment also returns soft-deleted comments.
func (r *Repository) FindComment(ctx context.Context, id uuid.UUID) (*domain.AdComment, error) {
	comment, err := scanAdComment(r.db.QueryRow(ctx, selectAdComment+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find ad comment", zap.Error(err))
		return nil, err
	}
	return comment, nil
}

func (r *Repository) ListComments(ctx context.Context, adID uuid.UUID, limit, offset int) ([]domain.AdComment, error) {
	rows, err := r.db.Query(ctx, selectAdComment+`
		WHERE c.ad_id = $1 AND NOT c.is_deleted
		ORDER BY c.created_at DESC
		LIMIT $2 OFFSET $3
	`, adID, limit, offset)
	if err != nil {
		zap.L().Error("can't list ad comments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	comments := []domain.AdComment{}
	for rows.Next() {
		comment, err := scanAdComment(rows)
		if err != nil {
			zap.L().Error("failed to scan ad comment row", zap.Error(err))
			return nil, err
		}
		comments = append(comments, *comment)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *Repository) CountComments(ctx context.Context, adID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM ad_comments WHERE ad_id = $1 AND NOT is_deleted`, adID).Scan(&total)
	if err != nil {
		zap.L().Error("can't count ad comments", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// SoftDeleteComment reports false when the comment is already gone.
func (r *Repository) SoftDeleteComment(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE ad_comments SET is_deleted = TRUE WHERE id = $1 AND NOT is_deleted`, id)
	if err != nil {
		zap.L().Error("can't delete ad comment", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) IncrementComments(ctx context.Context, adID uuid.UUID, delta int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		UPDATE ads SET comments_count = GREATEST(comments_count + $2, 0)
		WHERE id = $1
		RETURNING comments_count
	`, adID, delta).Scan(&count)
	if err != nil {
		zap.L().Error("can't update ad comments count", zap.Error(err))
		return 0, err
	}
	return count, nil
}
