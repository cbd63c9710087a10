package saverepo

import (
	"context"
	"encoding/json"

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

// Save reports false when the post is already in the user's saved list.
func (r *Repository) Save(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO saved_posts (user_id, post_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, post_id) DO NOTHING
	`, userID, postID)
	if err != nil {
		zap.L().Error("can't save post for user", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) Unsave(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM saved_posts WHERE user_id = $1 AND post_id = $2`, userID, postID)
	if err != nil {
		zap.L().Error("can't unsave post", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ListPostsByUserID returns saved posts, most recently saved first.
func (r *Repository) ListPostsByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Post, error) {
	query := `
		SELECT p.id, p.user_id, p.caption, p.location, p.type, p.media, p.likes_count, p.comments_count,
			p.views_count, p.unique_views_count, p.completed_views_count, p.created_at
		FROM saved_posts s
		JOIN posts p ON p.id = s.post_id
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list saved posts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		var post domain.Post
		var media []byte
		err := rows.Scan(&post.ID, &post.UserID, &post.Caption, &post.Location, &post.Type, &media, &post.LikesCount,
			&post.CommentsCount, &post.ViewsCount, &post.UniqueViewsCount, &post.CompletedViewsCount, &post.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan saved post row", zap.Error(err))
			return nil, err
		}
		if len(media) > 0 {
			if err := json.Unmarshal(media, &post.Media); err != nil {
				return nil, err
			}
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}
