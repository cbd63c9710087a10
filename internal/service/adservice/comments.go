package adservice

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
)

// AddComment never pays anyone; ad coins only flow through completions.
func (s *Service) AddComment(ctx context.Context, adID, userID uuid.UUID, text string) (*domain.AdComment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}
	if _, err := s.GetAd(ctx, adID); err != nil {
		return nil, err
	}

	var comment *domain.AdComment
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		comment, err = s.repo.CreateComment(ctx, &domain.AdComment{AdID: adID, UserID: userID, Text: text})
		if err != nil {
			return err
		}
		_, err = s.repo.IncrementComments(ctx, adID, 1)
		return err
	})
	if err != nil {
		zap.L().Error("failed to add ad comment", zap.Error(err))
		return nil, err
	}
	return comment, nil
}

func (s *Service) GetComments(ctx context.Context, adID uuid.UUID, page, limit int) (*domain.AdCommentPage, error) {
	if _, err := s.GetAd(ctx, adID); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	comments, err := s.repo.ListComments(ctx, adID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.CountComments(ctx, adID)
	if err != nil {
		return nil, err
	}
	return &domain.AdCommentPage{Comments: comments, Total: total, Page: page, Limit: limit}, nil
}

// DeleteComment hides the comment. Only its author or an admin may do it.
func (s *Service) DeleteComment(ctx context.Context, commentID, userID uuid.UUID, role string) error {
	comment, err := s.repo.FindComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil || comment.IsDeleted {
		return ErrCommentNotFound
	}
	if comment.UserID != userID && role != domain.RoleAdmin {
		return ErrForbidden
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		deleted, err := s.repo.SoftDeleteComment(ctx, commentID)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrCommentNotFound
		}
		_, err = s.repo.IncrementComments(ctx, comment.AdID, -1)
		return err
	})
}
