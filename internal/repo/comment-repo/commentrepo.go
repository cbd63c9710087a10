package commentrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/pg"
)

const selectComment = `
	SELECT c.id, c.post_id, c.parent_id, c.user_id, u.username, c.text, c.likes_count, c.created_at
	FROM comments c
	JOIN users u ON u.id = c.user_id
`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanComment(row pgx.Row) (*domain.Comment, error) {
	var c domain.Comment
	err := row.Scan(&c.ID, &c.PostID, &c.ParentID, &c.UserID, &c.Username, &c.Text, &c.LikesCount, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	query := `
		WITH inserted AS (
			INSERT INTO comments (post_id, parent_id, user_id, text)
			VALUES ($1, $2, $3, $4)
			RETURNING id, user_id, likes_count, created_at
		)
		SELECT i.id, u.username, i.likes_count, i.created_at
		FROM inserted i
		JOIN users u ON u.id = i.user_id
	`
	err := r.db.QueryRow(ctx, query, comment.PostID, comment.ParentID, comment.UserID, comment.Text).
		Scan(&comment.ID, &comment.Username, &comment.LikesCount, &comment.CreatedAt)
	if err != nil {
		zap.L().Error("can't save comment", zap.Error(err))
		return nil, err
	}
	return comment, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	comment, err := scanComment(r.db.QueryRow(ctx, selectComment+` WHERE c.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find comment", zap.Error(err))
		return nil, err
	}
	return comment, nil
}

func (r *Repository) ListByPostID(ctx context.Context, postID uuid.UUID, limit, offset int) ([]domain.Comment, error) {
	rows, err := r.db.Query(ctx, selectComment+`
		WHERE c.post_id = $1
		ORDER BY c.created_at DESC
		LIMIT $2 OFFSET $3
	`, postID, limit, offset)
	if err != nil {
		zap.L().Error("can't list comments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			zap.L().Error("failed to scan comment row", zap.Error(err))
			return nil, err
		}
		comments = append(comments, *comment)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *Repository) CountByPostID(ctx context.Context, postID uuid.UUID) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM comments WHERE post_id = $1`, postID).Scan(&total); err != nil {
		zap.L().Error("can't count comments", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// Delete removes the comment with its replies and returns how many rows went away.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	var deleted int64
	err := r.db.QueryRow(ctx, `
		WITH deleted AS (
			DELETE FROM comments WHERE id = $1 OR parent_id = $1 RETURNING id
		)
		SELECT COUNT(*) FROM deleted
	`, id).Scan(&deleted)
	if err != nil {
		zap.L().Error("can't delete comment", zap.Error(err))
		return 0, err
	}
	return deleted, nil
}

func (r *Repository) AddLike(ctx context.Context, commentID, userID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO comment_likes (comment_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (comment_id, user_id) DO NOTHING
	`, commentID, userID)
	if err != nil {
		zap.L().Error("can't add comment like", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) RemoveLike(ctx context.Context, commentID, userID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM comment_likes WHERE comment_id = $1 AND user_id = $2`, commentID, userID)
	if err != nil {
		zap.L().Error("can't remove comment like", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) IncrementLikes(ctx context.Context, commentID uuid.UUID, delta int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		UPDATE comments SET likes_count = GREATEST(likes_count + $2, 0)
		WHERE id = $1
		RETURNING likes_count
	`, commentID, delta).Scan(&count)
	if err != nil {
		zap.L().Error("can't update comment likes count", zap.Error(err))
		return 0, err
	}
	return count, nil
}
