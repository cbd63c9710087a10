package storyrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/pg"
)

const (
	storyColumns = `id, user_id, items_count, views_count, expires_at, is_archived, archived_at, created_at`
	itemColumns  = `id, story_id, user_id, position, media, texts, mentions, expires_at, created_at`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanStory(row pgx.Row, dest ...any) (*domain.Story, error) {
	var s domain.Story
	fields := append([]any{&s.ID, &s.UserID, &s.ItemsCount, &s.ViewsCount, &s.ExpiresAt, &s.IsArchived, &s.ArchivedAt, &s.CreatedAt}, dest...)
	if err := row.Scan(fields...); err != nil {
		return nil, err
	}
	return &s, nil
}

func scanItem(row pgx.Row) (*domain.StoryItem, error) {
	var item domain.StoryItem
	var media, texts, mentions []byte
	err := row.Scan(&item.ID, &item.StoryID, &item.UserID, &item.Position, &media, &texts, &mentions, &item.ExpiresAt, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(media, &item.Media); err != nil {
		return nil, err
	}
	if len(texts) > 0 {
		if err := json.Unmarshal(texts, &item.Texts); err != nil {
			return nil, err
		}
	}
	if len(mentions) > 0 {
		if err := json.Unmarshal(mentions, &item.Mentions); err != nil {
			return nil, err
		}
	}
	return &item, nil
}

func collectItems(rows pgx.Rows) ([]domain.StoryItem, error) {
	defer rows.Close()
	items := []domain.StoryItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			zap.L().Error("failed to scan story item row", zap.Error(err))
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FindActive returns the user's live story, if any.
func (r *Repository) FindActive(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.Story, error) {
	story, err := scanStory(r.db.QueryRow(ctx, `
		SELECT `+storyColumns+` FROM stories
		WHERE user_id = $1 AND NOT is_archived AND expires_at > $2
		ORDER BY created_at DESC
		LIMIT 1
	`, userID, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find active story", zap.Error(err))
		return nil, err
	}
	return story, nil
}

func (r *Repository) CreateStory(ctx context.Context, userID uuid.UUID, expiresAt time.Time) (*domain.Story, error) {
	story, err := scanStory(r.db.QueryRow(ctx, `
		INSERT INTO stories (user_id, expires_at)
		VALUES ($1, $2)
		RETURNING `+storyColumns, userID, expiresAt))
	if err != nil {
		zap.L().Error("can't save story", zap.Error(err))
		return nil, err
	}
	return story, nil
}

func (r *Repository) FindStory(ctx context.Context, id uuid.UUID) (*domain.Story, error) {
	story, err := scanStory(r.db.QueryRow(ctx, `SELECT `+storyColumns+` FROM stories WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find story", zap.Error(err))
		return nil, err
	}
	return story, nil
}

func (r *Repository) AddItem(ctx context.Context, item *domain.StoryItem) (*domain.StoryItem, error) {
	media, err := json.Marshal(item.Media)
	if err != nil {
		return nil, err
	}
	texts, err := json.Marshal(item.Texts)
	if err != nil {
		return nil, err
	}
	if item.Texts == nil {
		texts = []byte("[]")
	}
	mentions, err := json.Marshal(item.Mentions)
	if err != nil {
		return nil, err
	}
	if item.Mentions == nil {
		mentions = []byte("[]")
	}
	err = r.db.QueryRow(ctx, `
		INSERT INTO story_items (story_id, user_id, position, media, texts, mentions, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, item.StoryID, item.UserID, item.Position, media, texts, mentions, item.ExpiresAt).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		zap.L().Error("can't save story item", zap.Error(err))
		return nil, err
	}
	return item, nil
}

func (r *Repository) IncrementItems(ctx context.Context, storyID uuid.UUID, delta int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		UPDATE stories SET items_count = items_count + $2
		WHERE id = $1
		RETURNING items_count
	`, storyID, delta).Scan(&count)
	if err != nil {
		zap.L().Error("can't update story items count", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) FindItem(ctx context.Context, id uuid.UUID) (*domain.StoryItem, error) {
	item, err := scanItem(r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM story_items WHERE id = $1 AND NOT is_deleted`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find story item", zap.Error(err))
		return nil, err
	}
	return item, nil
}

func (r *Repository) ListItems(ctx context.Context, storyID uuid.UUID) ([]domain.StoryItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+itemColumns+` FROM story_items
		WHERE story_id = $1 AND NOT is_deleted
		ORDER BY position
	`, storyID)
	if err != nil {
		zap.L().Error("can't list story items", zap.Error(err))
		return nil, err
	}
	return collectItems(rows)
}

// ListPreviews returns the first item of every given story.
func (r *Repository) ListPreviews(ctx context.Context, storyIDs []uuid.UUID) (map[uuid.UUID]domain.StoryItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT ON (story_id) `+itemColumns+` FROM story_items
		WHERE story_id = ANY($1) AND NOT is_deleted
		ORDER BY story_id, position
	`, storyIDs)
	if err != nil {
		zap.L().Error("can't list story previews", zap.Error(err))
		return nil, err
	}
	items, err := collectItems(rows)
	if err != nil {
		return nil, err
	}
	previews := make(map[uuid.UUID]domain.StoryItem, len(items))
	for _, item := range items {
		previews[item.StoryID] = item
	}
	return previews, nil
}

// ArchiveExpired moves every story past its expiry into the archive.
func (r *Repository) ArchiveExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE stories SET is_archived = TRUE, archived_at = $1
		WHERE NOT is_archived AND expires_at <= $1
	`, now)
	if err != nil {
		zap.L().Error("can't archive expired stories", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ListFeed returns live stories that have items, with the author and whether viewerID has seen every item.
func (r *Repository) ListFeed(ctx context.Context, viewerID uuid.UUID, now time.Time) ([]domain.StoryFeedEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.id, s.user_id, s.items_count, s.views_count, s.expires_at, s.is_archived, s.archived_at, s.created_at,
			u.username, u.avatar_url,
			(SELECT COUNT(*) FROM story_views v WHERE v.story_id = s.id AND v.viewer_id = $1) >= s.items_count AS seen
		FROM stories s
		JOIN users u ON u.id = s.user_id
		WHERE NOT s.is_archived AND s.expires_at > $2 AND s.items_count > 0
		ORDER BY s.created_at DESC
	`, viewerID, now)
	if err != nil {
		zap.L().Error("can't list story feed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	feed := []domain.StoryFeedEntry{}
	for rows.Next() {
		var entry domain.StoryFeedEntry
		story, err := scanStory(rows, &entry.Username, &entry.AvatarURL, &entry.Seen)
		if err != nil {
			zap.L().Error("failed to scan story feed row", zap.Error(err))
			return nil, err
		}
		entry.Story = *story
		feed = append(feed, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return feed, nil
}

// RecordView reports false when viewerID has already seen the item.
func (r *Repository) RecordView(ctx context.Context, item *domain.StoryItem, viewerID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO story_views (story_id, story_item_id, owner_id, viewer_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (story_item_id, viewer_id) DO NOTHING
	`, item.StoryID, item.ID, item.UserID, viewerID)
	if err != nil {
		zap.L().Error("can't record story view", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) IncrementViews(ctx context.Context, storyID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE stories SET views_count = views_count + 1 WHERE id = $1`, storyID)
	if err != nil {
		zap.L().Error("can't update story views", zap.Error(err))
		return err
	}
	return nil
}

// ListViewers groups views per viewer, latest first.
func (r *Repository) ListViewers(ctx context.Context, storyID uuid.UUID) ([]domain.StoryViewer, error) {
	rows, err := r.db.Query(ctx, `
		SELECT v.viewer_id, u.username, u.avatar_url, MAX(v.viewed_at) AS viewed_at
		FROM story_views v
		JOIN users u ON u.id = v.viewer_id
		WHERE v.story_id = $1
		GROUP BY v.viewer_id, u.username, u.avatar_url
		ORDER BY viewed_at DESC
	`, storyID)
	if err != nil {
		zap.L().Error("can't list story viewers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	viewers := []domain.StoryViewer{}
	for rows.Next() {
		var v domain.StoryViewer
		if err := rows.Scan(&v.ViewerID, &v.Username, &v.AvatarURL, &v.ViewedAt); err != nil {
			zap.L().Error("failed to scan story viewer row", zap.Error(err))
			return nil, err
		}
		viewers = append(viewers, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return viewers, nil
}

func (r *Repository) CountViews(ctx context.Context, storyID uuid.UUID) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM story_views WHERE story_id = $1`, storyID).Scan(&total); err != nil {
		zap.L().Error("can't count story views", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// ListArchived returns the user's archived stories, most recently archived first.
func (r *Repository) ListArchived(ctx context.Context, userID uuid.UUID) ([]domain.Story, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+storyColumns+` FROM stories
		WHERE user_id = $1 AND is_archived
		ORDER BY archived_at DESC
	`, userID)
	if err != nil {
		zap.L().Error("can't list archived stories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	stories := []domain.Story{}
	for rows.Next() {
		story, err := scanStory(rows)
		if err != nil {
			zap.L().Error("failed to scan story row", zap.Error(err))
			return nil, err
		}
		stories = append(stories, *story)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stories, nil
}

// DeleteStory removes the story with its items and views.
func (r *Repository) DeleteStory(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM stories WHERE id = $1`, id)
	if err != nil {
		zap.L().Error("can't delete story", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
