package storyservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/pg"
)

//go:generate mockgen -source=storyservice.go -destination=mock_storyservice.go -package=storyservice

type Repo interface {
	FindActive(ctx context.Context, userID uuid.UUID, now time.Time) (*domain.Story, error)
	CreateStory(ctx context.Context, userID uuid.UUID, expiresAt time.Time) (*domain.Story, error)
	FindStory(ctx context.Context, id uuid.UUID) (*domain.Story, error)
	AddItem(ctx context.Context, item *domain.StoryItem) (*domain.StoryItem, error)
	IncrementItems(ctx context.Context, storyID uuid.UUID, delta int) (int, error)
	FindItem(ctx context.Context, id uuid.UUID) (*domain.StoryItem, error)
	ListItems(ctx context.Context, storyID uuid.UUID) ([]domain.StoryItem, error)
	ListPreviews(ctx context.Context, storyIDs []uuid.UUID) (map[uuid.UUID]domain.StoryItem, error)
	ArchiveExpired(ctx context.Context, now time.Time) (int64, error)
	ListFeed(ctx context.Context, viewerID uuid.UUID, now time.Time) ([]domain.StoryFeedEntry, error)
	RecordView(ctx context.Context, item *domain.StoryItem, viewerID uuid.UUID) (bool, error)
	IncrementViews(ctx context.Context, storyID uuid.UUID) error
	ListViewers(ctx context.Context, storyID uuid.UUID) ([]domain.StoryViewer, error)
	CountViews(ctx context.Context, storyID uuid.UUID) (int64, error)
	ListArchived(ctx context.Context, userID uuid.UUID) ([]domain.Story, error)
	DeleteStory(ctx context.Context, id uuid.UUID) (bool, error)
}

type Service struct {
	repo      Repo
	txManager pg.TXManager
	now       func() time.Time
}

func New(repo Repo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		now:       time.Now,
	}
}

var (
	ErrNoItems       = errors.New("story needs at least one item")
	ErrInvalidMedia  = errors.New("invalid story media")
	ErrStoryNotFound = errors.New("story not found")
	ErrItemNotFound  = errors.New("story item not found or expired")
	ErrForbidden     = errors.New("only the story owner may do this")
)

func normalizeItem(item *domain.StoryItem) error {
	if strings.TrimSpace(item.Media.URL) == "" {
		return fmt.Errorf("%w: url is required", ErrInvalidMedia)
	}
	switch item.Media.Type {
	case domain.StoryMediaImage:
		if item.Media.DurationSec <= 0 {
			item.Media.DurationSec = domain.DefaultStoryImageDuration
		}
	case domain.StoryMediaReel:
	default:
		return fmt.Errorf("%w: type must be image or reel", ErrInvalidMedia)
	}
	return nil
}

// Create appends items to the user's live story, opening a new 24 hour story when there is none.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, items []domain.StoryItem) (*domain.Story, []domain.StoryItem, error) {
	if len(items) == 0 {
		return nil, nil, ErrNoItems
	}
	for i := range items {
		if err := normalizeItem(&items[i]); err != nil {
			return nil, nil, err
		}
	}

	now := s.now()
	var story *domain.Story
	created := make([]domain.StoryItem, 0, len(items))
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		story, err = s.repo.FindActive(ctx, userID, now)
		if err != nil {
			return err
		}
		if story == nil {
			if story, err = s.repo.CreateStory(ctx, userID, now.Add(domain.StoryTTL)); err != nil {
				return err
			}
		}
		for i := range items {
			item := items[i]
			item.StoryID = story.ID
			item.UserID = userID
			item.Position = story.ItemsCount + i
			item.ExpiresAt = story.ExpiresAt
			saved, err := s.repo.AddItem(ctx, &item)
			if err != nil {
				return err
			}
			created = append(created, *saved)
		}
		story.ItemsCount, err = s.repo.IncrementItems(ctx, story.ID, len(items))
		return err
	})
	if err != nil {
		zap.L().Error("failed to create story", zap.Error(err))
		return nil, nil, err
	}
	return story, created, nil
}

func (s *Service) archiveExpired(ctx context.Context) error {
	archived, err := s.repo.ArchiveExpired(ctx, s.now())
	if err != nil {
		return err
	}
	if archived > 0 {
		zap.L().Debug("stories archived", zap.Int64("count", archived))
	}
	return nil
}

// Feed lists live stories with their first item, flagged as seen once the viewer watched every item.
func (s *Service) Feed(ctx context.Context, viewerID uuid.UUID) ([]domain.StoryFeedEntry, error) {
	if err := s.archiveExpired(ctx); err != nil {
		return nil, err
	}
	feed, err := s.repo.ListFeed(ctx, viewerID, s.now())
	if err != nil {
		return nil, err
	}
	if len(feed) == 0 {
		return feed, nil
	}
	ids := make([]uuid.UUID, len(feed))
	for i := range feed {
		ids[i] = feed[i].ID
	}
	previews, err := s.repo.ListPreviews(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range feed {
		if item, ok := previews[feed[i].ID]; ok {
			feed[i].Preview = &item
		}
	}
	return feed, nil
}

// Items returns a live story's items in order. The owner can still open it once archived.
func (s *Service) Items(ctx context.Context, storyID, viewerID uuid.UUID) ([]domain.StoryItem, error) {
	if err := s.archiveExpired(ctx); err != nil {
		return nil, err
	}
	story, err := s.repo.FindStory(ctx, storyID)
	if err != nil {
		return nil, err
	}
	if story == nil || (story.IsArchived && story.UserID != viewerID) {
		return nil, ErrStoryNotFound
	}
	return s.repo.ListItems(ctx, storyID)
}

// ViewItem counts one view per viewer and item. Owners watching their own story are not counted.
func (s *Service) ViewItem(ctx context.Context, itemID, viewerID uuid.UUID) (bool, error) {
	item, err := s.repo.FindItem(ctx, itemID)
	if err != nil {
		return false, err
	}
	if item == nil || !item.ExpiresAt.After(s.now()) {
		return false, ErrItemNotFound
	}
	if item.UserID == viewerID {
		return false, nil
	}

	var added bool
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		added, err = s.repo.RecordView(ctx, item, viewerID)
		if err != nil || !added {
			return err
		}
		return s.repo.IncrementViews(ctx, item.StoryID)
	})
	if err != nil {
		zap.L().Error("failed to record story view", zap.Error(err))
		return false, err
	}
	return added, nil
}

func (s *Service) Views(ctx context.Context, storyID, callerID uuid.UUID) (*domain.StoryViews, error) {
	if _, err := s.owned(ctx, storyID, callerID, ""); err != nil {
		return nil, err
	}
	viewers, err := s.repo.ListViewers(ctx, storyID)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.CountViews(ctx, storyID)
	if err != nil {
		return nil, err
	}
	return &domain.StoryViews{Viewers: viewers, TotalViews: total, UniqueViewers: int64(len(viewers))}, nil
}

func (s *Service) Archive(ctx context.Context, userID uuid.UUID) ([]domain.Story, error) {
	if err := s.archiveExpired(ctx); err != nil {
		return nil, err
	}
	return s.repo.ListArchived(ctx, userID)
}

// Delete is open to the owner and admins.
func (s *Service) Delete(ctx context.Context, storyID, userID uuid.UUID, role string) error {
	if _, err := s.owned(ctx, storyID, userID, role); err != nil {
		return err
	}
	deleted, err := s.repo.DeleteStory(ctx, storyID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrStoryNotFound
	}
	return nil
}

func (s *Service) owned(ctx context.Context, storyID, userID uuid.UUID, role string) (*domain.Story, error) {
	story, err := s.repo.FindStory(ctx, storyID)
	if err != nil {
		return nil, err
	}
	if story == nil {
		return nil, ErrStoryNotFound
	}
	if story.UserID != userID && role != domain.RoleAdmin {
		return nil, ErrForbidden
	}
	return story, nil
}
