package stories

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/Sushil-Jadhav07/bsmart-backend/internal/domain"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/dto"
	"github.com/Sushil-Jadhav07/bsmart-backend/internal/service/storyservice"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/auth"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/utils"
	"github.com/Sushil-Jadhav07/bsmart-backend/pkg/validate"
)

//go:generate mockgen -source=stories.go -destination=mock_service.go -package=stories

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, items []domain.StoryItem) (*domain.Story, []domain.StoryItem, error)
	Feed(ctx context.Context, viewerID uuid.UUID) ([]domain.StoryFeedEntry, error)
	Items(ctx context.Context, storyID, viewerID uuid.UUID) ([]domain.StoryItem, error)
	ViewItem(ctx context.Context, itemID, viewerID uuid.UUID) (bool, error)
	Views(ctx context.Context, storyID, callerID uuid.UUID) (*domain.StoryViews, error)
	Archive(ctx context.Context, userID uuid.UUID) ([]domain.Story, error)
	Delete(ctx context.Context, storyID, userID uuid.UUID, role string) error
}

type StoryHandler struct {
	storyService Service
}

func New(storyService Service) *StoryHandler {
	return &StoryHandler{
		storyService: storyService,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storyservice.ErrNoItems), errors.Is(err, storyservice.ErrInvalidMedia):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storyservice.ErrStoryNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Story not found")
	case errors.Is(err, storyservice.ErrItemNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Story item not found or expired")
	case errors.Is(err, storyservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// CreateStory godoc
//
//	@Summary		Post story items
//	@Description	Items are appended to the caller's live story. A new story lasting 24 hours is opened when none is live.
//	@Tags			Stories
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateStoryRequestDTO	true	"Story items"
//	@Success		201		{object}	dto.CreateStoryResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/stories [post]
func (h *StoryHandler) CreateStory(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	var req dto.CreateStoryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	story, items, err := h.storyService.Create(r.Context(), userID, req.ToDomain())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateStoryResponseDTO{
		Story: dto.FromStory(story),
		Items: dto.FromStoryItems(items),
	})
}

// GetFeed godoc
//
//	@Summary		Live stories
//	@Tags			Stories
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.StoryFeedEntryDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/stories/feed [get]
func (h *StoryHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	feed, err := h.storyService.Feed(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromStoryFeed(feed))
}

// GetArchive godoc
//
//	@Summary		The caller's archived stories
//	@Tags			Stories
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.StoryDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/stories/archive [get]
func (h *StoryHandler) GetArchive(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	stories, err := h.storyService.Archive(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromStories(stories))
}

// GetItems godoc
//
//	@Summary		Items of a story
//	@Tags			Stories
//	@Security		BearerAuth
//	@Produce		json
//	@Param			storyID	path		string	true	"Story ID"
//	@Success		200		{array}		dto.StoryItemDTO
//	@Failure		400		{object}	utils.Response	"Invalid story id"
//	@Failure		404		{object}	utils.Response	"Story not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/stories/{storyID}/items [get]
func (h *StoryHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	storyID, err := utils.URLParamUUID(r, "storyID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid story id")
		return
	}

	items, err := h.storyService.Items(r.Context(), storyID, userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromStoryItems(items))
}

// ViewItem godoc
//
//	@Summary		Mark a story item as seen
//	@Description	Each viewer counts once per item. The owner's own views are not counted.
//	@Tags			Stories
//	@Security		BearerAuth
//	@Produce		json
//	@Param			itemID	path		string	true	"Story item ID"
//	@Success		200		{object}	dto.StoryViewResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid item id"
//	@Failure		404		{object}	utils.Response	"Story item not found or expired"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/stories/items/{itemID}/view [post]
func (h *StoryHandler) ViewItem(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	itemID, err := utils.URLParamUUID(r, "itemID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid item id")
		return
	}

	counted, err := h.storyService.ViewItem(r.Context(), itemID, userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	message := "View recorded"
	if !counted {
		message = "Already viewed"
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.StoryViewResponseDTO{Message: message, Counted: counted})
}

// GetViews godoc
//
//	@Summary		Who viewed a story
//	@Tags			Stories
//	@Security		BearerAuth
//	@Produce		json
//	@Param			storyID	path		string	true	"Story ID"
//	@Success		200		{object}	dto.StoryViewsResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid story id"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"Story not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/stories/{storyID}/views [get]
func (h *StoryHandler) GetViews(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	storyID, err := utils.URLParamUUID(r, "storyID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid story id")
		return
	}

	views, err := h.storyService.Views(r.Context(), storyID, userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.FromStoryViews(views))
}

// DeleteStory godoc
//
//	@Summary		Delete a story
//	@Tags			Stories
//	@Security		BearerAuth
//	@Produce		json
//	@Param			storyID	path		string	true	"Story ID"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid story id"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"Story not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/stories/{storyID} [delete]
func (h *StoryHandler) DeleteStory(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())
	storyID, err := utils.URLParamUUID(r, "storyID")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid story id")
		return
	}

	if err := h.storyService.Delete(r.Context(), storyID, userID, auth.Role(r.Context())); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Story deleted"})
}
