package dto

import (
	"fmt"
	"time"

	"github.com/exemplar/itemsvc/internal/db"
	"github.com/exemplar/itemsvc/internal/models"
)

type ItemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Version     int64     `json:"version"`
}

type CreateItemRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status,omitempty"`
}

func (r *CreateItemRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(r.Name) > 255 {
		return fmt.Errorf("name must be at most 255 characters")
	}
	if r.Status != "" {
		if _, err := models.ParseItemStatus(r.Status); err != nil {
			return err
		}
	}
	return nil
}

// UpdateItemRequest is a partial field replace. Description is tri-state
// so an explicit null clears the column. Version, when supplied, gates the
// write on an optimistic-locking check.
type UpdateItemRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description Optional[string] `json:"description"`
	Status      *string          `json:"status,omitempty"`
	Version     *int64           `json:"version,omitempty"`
}

func (r *UpdateItemRequest) Validate() error {
	if r.Name != nil {
		if *r.Name == "" {
			return fmt.Errorf("name must not be empty")
		}
		if len(*r.Name) > 255 {
			return fmt.Errorf("name must be at most 255 characters")
		}
	}
	if r.Status != nil {
		if _, err := models.ParseItemStatus(*r.Status); err != nil {
			return err
		}
	}
	return nil
}

// ToUpdate converts the request into the store's tri-state update struct.
func (r *UpdateItemRequest) ToUpdate() db.ItemUpdate {
	update := db.ItemUpdate{}
	if r.Name != nil {
		update.Name = db.Some(*r.Name)
	}
	if r.Description.Set {
		if r.Description.Null {
			update.Description = db.Some[*string](nil)
		} else {
			v := r.Description.Value
			update.Description = db.Some(&v)
		}
	}
	if r.Status != nil {
		status, _ := models.ParseItemStatus(*r.Status)
		update.Status = db.Some(status)
	}
	return update
}

type ListItemsResponse struct {
	Items         []ItemResponse `json:"items"`
	TotalElements int            `json:"total_elements"`
	TotalPages    int            `json:"total_pages"`
	CurrentPage   int            `json:"current_page"`
	PageSize      int            `json:"page_size"`
	HasNext       bool           `json:"has_next"`
	HasPrevious   bool           `json:"has_previous"`
	NextPage      int            `json:"next_page"`
	PreviousPage  int            `json:"previous_page"`
}

func ItemToResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Status:      string(item.Status),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
		Version:     item.Version,
	}
}

func ItemsToResponse(items []*models.Item) []ItemResponse {
	result := make([]ItemResponse, len(items))
	for i, item := range items {
		result[i] = ItemToResponse(item)
	}
	return result
}
