package db

import (
	"context"
	"errors"

	"github.com/exemplar/itemsvc/internal/models"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicateName   = errors.New("duplicate name")
	ErrVersionConflict = errors.New("version conflict")
)

// Store is the persistence contract, bound at compile time to the Item
// schema. Filtering supports equality and IN membership only; ordering is
// fixed to created_at DESC.
type Store interface {
	Close() error
	Ping(ctx context.Context) error

	CreateItem(ctx context.Context, item *models.Item) error
	CreateItems(ctx context.Context, items []*models.Item) error
	GetItem(ctx context.Context, id string) (*models.Item, error)
	GetItemByName(ctx context.Context, name string) (*models.Item, error)
	ListItems(ctx context.Context, filters ItemFilters, limit, offset int) ([]*models.Item, int, error)
	UpdateItem(ctx context.Context, id string, expectedVersion *int64, update *ItemUpdate) (*models.Item, error)
	DeleteItem(ctx context.Context, id string) error
	DeleteItems(ctx context.Context, ids []string) (int, error)
	ItemExists(ctx context.Context, id string) (bool, error)
	CountItems(ctx context.Context, filters ItemFilters) (int, error)
}

type ItemFilters struct {
	Status     *models.ItemStatus
	StatusIn   []models.ItemStatus
	NameSearch *string
}

// Optional distinguishes "field not supplied" from an explicit value,
// including the zero value. A set field with a nil pointer value clears a
// nullable column.
type Optional[T any] struct {
	Set   bool
	Value T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// ItemUpdate carries a partial field replacement. Unset fields keep their
// stored values. A successful update always bumps Version.
type ItemUpdate struct {
	Name        Optional[string]
	Description Optional[*string]
	Status      Optional[models.ItemStatus]
}

func (u *ItemUpdate) Empty() bool {
	return !u.Name.Set && !u.Description.Set && !u.Status.Set
}
