package client

import (
	"encoding/json"
	"fmt"
	"time"
)

// Item is the wire representation returned by the items API.
type Item struct {
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

// UpdateItemRequest is a partial update. Nil fields are omitted from the
// payload. ClearDescription sends an explicit null, which clears the
// stored description. Version, when set, makes the update conditional on
// the item still being at that version.
type UpdateItemRequest struct {
	Name             *string
	Description      *string
	ClearDescription bool
	Status           *string
	Version          *int64
}

func (r UpdateItemRequest) MarshalJSON() ([]byte, error) {
	payload := make(map[string]any)
	if r.Name != nil {
		payload["name"] = *r.Name
	}
	if r.ClearDescription {
		payload["description"] = nil
	} else if r.Description != nil {
		payload["description"] = *r.Description
	}
	if r.Status != nil {
		payload["status"] = *r.Status
	}
	if r.Version != nil {
		payload["version"] = *r.Version
	}
	return json.Marshal(payload)
}

// ListOptions narrows and pages a list call. Zero values are omitted so
// the server applies its defaults.
type ListOptions struct {
	StartPage int
	PageSize  int
	Status    string
	Search    string
}

type ItemPage struct {
	Items         []Item `json:"items"`
	TotalElements int    `json:"total_elements"`
	TotalPages    int    `json:"total_pages"`
	CurrentPage   int    `json:"current_page"`
	PageSize      int    `json:"page_size"`
	HasNext       bool   `json:"has_next"`
	HasPrevious   bool   `json:"has_previous"`
	NextPage      int    `json:"next_page"`
	PreviousPage  int    `json:"previous_page"`
}

type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// APIError is the decoded error envelope for any non-2xx response.
type APIError struct {
	StatusCode    int
	Code          string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlation_id"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}
