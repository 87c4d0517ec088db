// Package service orchestrates item operations: input validation, page
// normalization, repository calls and domain error mapping. All methods
// are single linear call chains; there is no fan-out.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/exemplar/itemsvc/internal/cache"
	"github.com/exemplar/itemsvc/internal/db"
	"github.com/exemplar/itemsvc/internal/models"
	"github.com/exemplar/itemsvc/internal/pagination"
	"github.com/exemplar/itemsvc/internal/serviceerr"
)

type Service struct {
	store db.Store
	cache *cache.ItemCache
}

func New(store db.Store, itemCache *cache.ItemCache) *Service {
	return &Service{store: store, cache: itemCache}
}

type CreateItemParams struct {
	Name        string
	Description *string
	Status      models.ItemStatus
}

type ListItemsParams struct {
	Page   pagination.PageRequest
	Status *models.ItemStatus
	Search *string
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return serviceerr.InvalidRequest(fmt.Sprintf("invalid item id %q", id))
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return serviceerr.ValidationError("name is required")
	}
	if len(name) > 255 {
		return serviceerr.ValidationError("name must be at most 255 characters")
	}
	return nil
}

// mapStoreError translates store sentinels into the service taxonomy.
// Anything unclassified becomes an opaque internal error with the cause
// retained for logging.
func mapStoreError(err error, id string) error {
	switch {
	case errors.Is(err, db.ErrNotFound):
		return serviceerr.NotFound("item", id)
	case errors.Is(err, db.ErrDuplicateName):
		return serviceerr.ConstraintViolation("an item with this name already exists")
	case errors.Is(err, db.ErrVersionConflict):
		return serviceerr.PreconditionFailed("item was modified concurrently, re-read and retry")
	}
	return serviceerr.Internal("item operation failed", err)
}

func (s *Service) Create(ctx context.Context, params CreateItemParams) (*models.Item, error) {
	if err := validateName(params.Name); err != nil {
		return nil, err
	}
	status := params.Status
	if status == "" {
		status = models.ItemStatusActive
	}

	item := &models.Item{
		Name:        params.Name,
		Description: params.Description,
		Status:      status,
	}
	if err := s.store.CreateItem(ctx, item); err != nil {
		slog.Error("failed to create item", "name", params.Name, "error", err)
		return nil, mapStoreError(err, "")
	}

	slog.Info("item created", "item_id", item.ID, "name", item.Name)
	return item, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Item, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	if cached, err := s.cache.Get(ctx, id); err != nil {
		slog.Warn("item cache lookup failed", "item_id", id, "error", err)
	} else if cached != nil {
		return cached, nil
	}

	item, err := s.store.GetItem(ctx, id)
	if err != nil {
		return nil, mapStoreError(err, id)
	}

	if err := s.cache.Set(ctx, item); err != nil {
		slog.Warn("item cache store failed", "item_id", id, "error", err)
	}
	return item, nil
}

func (s *Service) List(ctx context.Context, params ListItemsParams) (pagination.PageResult[*models.Item], error) {
	page, adjusted := params.Page.Normalize()
	if adjusted {
		slog.Debug("page request adjusted",
			"requested_page", params.Page.Page, "requested_size", params.Page.Size,
			"page", page.Page, "size", page.Size)
	}

	filters := db.ItemFilters{Status: params.Status, NameSearch: params.Search}
	items, total, err := s.store.ListItems(ctx, filters, page.Size, page.Offset())
	if err != nil {
		slog.Error("failed to list items", "error", err)
		return pagination.PageResult[*models.Item]{}, mapStoreError(err, "")
	}

	return pagination.NewPageResult(items, total, page.Page, page.Size), nil
}

func (s *Service) Update(ctx context.Context, id string, expectedVersion *int64, update db.ItemUpdate) (*models.Item, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if update.Name.Set {
		if err := validateName(update.Name.Value); err != nil {
			return nil, err
		}
	}

	item, err := s.store.UpdateItem(ctx, id, expectedVersion, &update)
	if err != nil {
		return nil, mapStoreError(err, id)
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		slog.Warn("item cache invalidation failed", "item_id", id, "error", err)
	}
	slog.Info("item updated", "item_id", id, "version", item.Version)
	return item, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	if err := s.store.DeleteItem(ctx, id); err != nil {
		return mapStoreError(err, id)
	}

	if err := s.cache.Invalidate(ctx, id); err != nil {
		slog.Warn("item cache invalidation failed", "item_id", id, "error", err)
	}
	slog.Info("item deleted", "item_id", id)
	return nil
}
