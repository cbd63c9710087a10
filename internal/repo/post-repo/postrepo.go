package postrepo

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/pg"
)

const postColumns = `id, user_id, caption, location, type, media, likes_count, comments_count, views_count, unique_views_count, completed_views_count, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanPost(row pgx.Row) (*domain.Post, error) {
	var post domain.Post
	var media []byte
	err := row.Scan(&post.ID, &post.UserID, &post.Caption, &post.Location, &post.Type, &media,
		&post.LikesCount, &post.CommentsCount, &post.ViewsCount, &post.UniqueViewsCount, &post.CompletedViewsCount, &post.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(media) > 0 {
		if err := json.Unmarshal(media, &post.Media); err != nil {
			return nil, err
		}
	}
	return &post, nil
}

func (r *Repository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	media, err := json.Marshal(post.Media)
	if err != nil {
		return nil, err
	}
	if post.Media == nil {
		media = []byte("[]")
	}
	query := `
		INSERT INTO posts (user_id, caption, location, type, media)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + postColumns
	created, err := scanPost(r.db.QueryRow(ctx, query, post.UserID, post.Caption, post.Location, post.Type, media))
	if err != nil {
		zap.L().Error("can't save post", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	post, err := scanPost(r.db.QueryRow(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find post", zap.Error(err))
		return nil, err
	}
	return post, nil
}

// AddLike reports false when the user already likes the post.
func (r *Repository) AddLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO post_likes (post_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (post_id, user_id) DO NOTHING
	`, postID, userID)
	if err != nil {
		zap.L().Error("can't add post like", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// RemoveLike reports false when there was no like to remove.
func (r *Repository) RemoveLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`, postID, userID)
	if err != nil {
		zap.L().Error("can't remove post like", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) IsLiked(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	var liked bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM post_likes WHERE post_id = $1 AND user_id = $2)`, postID, userID).Scan(&liked)
	if err != nil {
		zap.L().Error("can't check post like", zap.Error(err))
		return false, err
	}
	return liked, nil
}

func (r *Repository) IncrementLikes(ctx context.Context, postID uuid.UUID, delta int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		UPDATE posts SET likes_count = GREATEST(likes_count + $2, 0)
		WHERE id = $1
		RETURNING likes_count
	`, postID, delta).Scan(&count)
	if err != nil {
		zap.L().Error("can't update post likes count", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) IncrementComments(ctx context.Context, postID uuid.UUID, delta int64) error {
	_, err := r.db.Exec(ctx, `UPDATE posts SET comments_count = GREATEST(comments_count + $2, 0) WHERE id = $1`, postID, delta)
	if err != nil {
		zap.L().Error("can't update post comments count", zap.Error(err))
		return err
	}
	return nil
}

// IncrementViews bumps views_count, and unique_views_count for a first view, returning the updated post.
func (r *Repository) IncrementViews(ctx context.Context, postID uuid.UUID, unique bool) (*domain.Post, error) {
	query := `
		UPDATE posts
		SET views_count = views_count + 1,
			unique_views_count = unique_views_count + CASE WHEN $2::boolean THEN 1 ELSE 0 END
		WHERE id = $1
		RETURNING ` + postColumns
	post, err := scanPost(r.db.QueryRow(ctx, query, postID, unique))
	if err != nil {
		zap.L().Error("can't update post views", zap.Error(err))
		return nil, err
	}
	return post, nil
}

func (r *Repository) IncrementCompletedViews(ctx context.Context, postID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE posts SET completed_views_count = completed_views_count + 1 WHERE id = $1`, postID)
	if err != nil {
		zap.L().Error("can't update post completed views", zap.Error(err))
		return err
	}
	return nil
}

// ListByUser returns the user's posts, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Post, error) {
	rows, err := r.db.Query(ctx, `SELECT `+postColumns+` FROM posts WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		zap.L().Error("can't list user posts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			zap.L().Error("failed to scan post row", zap.Error(err))
			return nil, err
		}
		posts = append(posts, *post)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}

// ListFeed returns every post newest first with the author name and whether viewerID likes it.
func (r *Repository) ListFeed(ctx context.Context, viewerID uuid.UUID, limit, offset int) ([]domain.FeedPost, error) {
	query := `
		SELECT p.id, p.user_id, p.caption, p.location, p.type, p.media, p.likes_count, p.comments_count,
			p.views_count, p.unique_views_count, p.completed_views_count, p.created_at,
			u.username,
			EXISTS (SELECT 1 FROM post_likes l WHERE l.post_id = p.id AND l.user_id = $1) AS is_liked_by_me
		FROM posts p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, viewerID, limit, offset)
	if err != nil {
		zap.L().Error("can't list feed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	feed := []domain.FeedPost{}
	for rows.Next() {
		var fp domain.FeedPost
		var media []byte
		err := rows.Scan(&fp.ID, &fp.UserID, &fp.Caption, &fp.Location, &fp.Type, &media, &fp.LikesCount, &fp.CommentsCount,
			&fp.ViewsCount, &fp.UniqueViewsCount, &fp.CompletedViewsCount, &fp.CreatedAt, &fp.Username, &fp.IsLikedByMe)
		if err != nil {
			zap.L().Error("failed to scan feed row", zap.Error(err))
			return nil, err
		}
		if len(media) > 0 {
			if err := json.Unmarshal(media, &fp.Media); err != nil {
				return nil, err
			}
		}
		feed = append(feed, fp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return feed, nil
}

// Delete removes the post with its likes, comments, saves and views.
// Ledger rows keep their post_id.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete post", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
